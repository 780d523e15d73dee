package chartgen

import (
	"context"
	"strings"
	"testing"
)

func TestRenderFragmentExample(t *testing.T) {
	cfg := Config{BarSpacing: 10, Color: "red", BarHeight: 100, GraphWidth: 100}
	fragment := RenderFragment(cfg, []float64{0, 1, 2, 3, 2, 1, 0})

	if got := len(fragment.FindAll("rect")); got != 7 {
		t.Fatalf("expected 7 bars, got %d", got)
	}

	labels := fragment.FindAll("text")
	want := []string{"0", "1.5", "3"}
	for i, label := range labels {
		if label.Text != want[i] {
			t.Fatalf("label %d = %q, want %q", i, label.Text, want[i])
		}
	}
}

func TestGenerateSVG(t *testing.T) {
	def := Definition{
		Title:  "Example",
		Values: []float64{1, 2, 3},
	}
	output, err := GenerateSVG(context.Background(), def)
	if err != nil {
		t.Fatalf("generate svg: %v", err)
	}
	if !strings.HasPrefix(string(output), "<svg") {
		t.Fatalf("expected svg document output")
	}
}

func TestGenerateHTML(t *testing.T) {
	def := Definition{
		Title:  "Example",
		Values: []float64{1, 2, 3},
	}
	output, err := GenerateHTML(context.Background(), def)
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}
	html := string(output)
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Fatalf("expected html page output")
	}
	if !strings.Contains(html, "<svg") {
		t.Fatalf("expected embedded chart")
	}
}
