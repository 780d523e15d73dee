package orchestrator

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-chartgen/pkg/chart"
	"github.com/goliatone/go-chartgen/pkg/chartspec"
	"github.com/goliatone/go-chartgen/pkg/render"
)

var testDefinition = chartspec.Definition{
	Title: "Revenue",
	Chart: chartspec.ChartSection{
		BarSpacing: 10,
		Color:      "red",
		BarHeight:  100,
		GraphWidth: 100,
	},
	Values: []float64{0, 1, 2, 3, 2, 1, 0},
}

func TestGenerateDefaultRenderer(t *testing.T) {
	orch := New()

	output, err := orch.Generate(context.Background(), Request{
		Definition: &testDefinition,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svg := string(output)
	if !strings.HasPrefix(svg, "<g>") {
		t.Fatalf("expected svg fragment, got %s", svg[:16])
	}
	if strings.Count(svg, "<rect") != 7 {
		t.Fatalf("expected 7 bars, got %d", strings.Count(svg, "<rect"))
	}
}

func TestGenerateDocumentOption(t *testing.T) {
	orch := New()

	output, err := orch.Generate(context.Background(), Request{
		Definition:    &testDefinition,
		RenderOptions: render.RenderOptions{Document: true},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(output), "<svg") {
		t.Fatalf("expected standalone document")
	}
}

func TestGeneratePageRenderer(t *testing.T) {
	orch := New()

	output, err := orch.Generate(context.Background(), Request{
		Definition: &testDefinition,
		Renderer:   "page",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(output)
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Fatalf("expected html page")
	}
	if !strings.Contains(html, "Revenue") {
		t.Fatalf("expected chart title in page")
	}
}

func TestGenerateNamedChartFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"revenue.yaml": {Data: []byte("title: Revenue\nvalues: [1, 2, 3]\n")},
	}
	orch := New(WithDefinitionFS(fsys))

	output, err := orch.Generate(context.Background(), Request{Chart: "revenue"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Count(string(output), "<rect") != 3 {
		t.Fatalf("expected 3 bars from stored definition")
	}

	if _, err := orch.Generate(context.Background(), Request{Chart: "missing"}); err == nil {
		t.Fatalf("expected error for unknown chart name")
	}
}

func TestGenerateRequiresInput(t *testing.T) {
	orch := New()

	if _, err := orch.Generate(context.Background(), Request{}); err == nil {
		t.Fatalf("expected error when no definition provided")
	}
	var nilCtx context.Context
	if _, err := orch.Generate(nilCtx, Request{Definition: &testDefinition}); err == nil {
		t.Fatalf("expected error for nil context")
	}
}

func TestGenerateUnknownRenderer(t *testing.T) {
	orch := New()

	_, err := orch.Generate(context.Background(), Request{
		Definition: &testDefinition,
		Renderer:   "carrier-pigeon",
	})
	if err == nil || !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Fatalf("expected renderer lookup error, got %v", err)
	}
}

func TestGenerateModelBypassesBuilder(t *testing.T) {
	orch := New(WithBuilder(failingBuilder{}))

	model := chart.Model{
		Config: chart.Config{BarSpacing: 10, Color: "red", BarHeight: 100, GraphWidth: 100},
		Series: []float64{1, 2},
	}
	output, err := orch.Generate(context.Background(), Request{Model: &model})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Count(string(output), "<rect") != 2 {
		t.Fatalf("expected bars from supplied model")
	}
}

type failingBuilder struct{}

func (failingBuilder) Build(chartspec.Definition) (chart.Model, error) {
	return chart.Model{}, context.DeadlineExceeded
}
