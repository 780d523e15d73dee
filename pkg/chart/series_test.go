package chart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMax(t *testing.T) {
	cases := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"empty defaults to zero", nil, 0},
		{"single", []float64{4.2}, 4.2},
		{"ordered", []float64{0, 1, 2, 3, 2, 1, 0}, 3},
		{"all negative", []float64{-3, -1, -2}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Max(tc.series); got != tc.want {
				t.Fatalf("Max(%v) = %v, want %v", tc.series, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{BarSpacing: 10, BarHeight: 100}
	points := Normalize(cfg, []float64{0, 1, 2, 3, 2, 1, 0})

	want := []Point{
		{X: 0, Fraction: 0},
		{X: 10, Fraction: 1.0 / 3},
		{X: 20, Fraction: 2.0 / 3},
		{X: 30, Fraction: 1},
		{X: 40, Fraction: 2.0 / 3},
		{X: 50, Fraction: 1.0 / 3},
		{X: 60, Fraction: 0},
	}
	if diff := cmp.Diff(want, points, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeClampsWhenMaxNotPositive(t *testing.T) {
	cfg := Config{BarSpacing: 10, BarHeight: 100}

	for _, series := range [][]float64{
		{0, 0, 0},
		{-1, -2, 0},
	} {
		for _, point := range Normalize(cfg, series) {
			if point.Fraction != 0 {
				t.Fatalf("expected clamped fraction for %v, got %v", series, point.Fraction)
			}
		}
	}
}

func TestNormalizeEmptySeries(t *testing.T) {
	if points := Normalize(Config{BarSpacing: 10}, nil); len(points) != 0 {
		t.Fatalf("expected no points, got %v", points)
	}
}

func TestNormalizeFractionWithinUnitRange(t *testing.T) {
	series := []float64{2.5, 7.5, 5, 7.5}
	for _, point := range Normalize(Config{BarSpacing: 4}, series) {
		if point.Fraction < 0 || point.Fraction > 1 {
			t.Fatalf("fraction %v outside [0,1]", point.Fraction)
		}
		if math.IsNaN(point.Fraction) {
			t.Fatalf("fraction is NaN")
		}
	}
}
