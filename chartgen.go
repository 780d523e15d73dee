// Package chartgen renders numeric series as scaled vertical bar charts in
// SVG, either as embeddable fragments or standalone documents, with optional
// HTML page output.
package chartgen

import (
	"context"

	"github.com/goliatone/go-chartgen/pkg/chart"
	"github.com/goliatone/go-chartgen/pkg/chartspec"
	"github.com/goliatone/go-chartgen/pkg/markup"
	"github.com/goliatone/go-chartgen/pkg/orchestrator"
	"github.com/goliatone/go-chartgen/pkg/render"
	svgrenderer "github.com/goliatone/go-chartgen/pkg/renderers/svg"
	theme "github.com/goliatone/go-theme"
)

// ThemeSelector aliases the go-theme selector contract accepted by
// WithThemeSelector.
type ThemeSelector = theme.ThemeSelector

// Config carries the scalar chart geometry and styling inputs.
type Config = chart.Config

// Model is the renderer-facing chart representation.
type Model = chart.Model

// Definition is an authored chart description (JSON/YAML).
type Definition = chartspec.Definition

// RenderOptions describes per-request overrides renderers can surface.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so callers can wire custom builders, registries, and themes.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderFragment produces the embeddable chart group for the given
// configuration and data series: one rectangle per value, axis lines, and
// tick labels at 0%, 50%, and 100% of the observed maximum.
func RenderFragment(cfg Config, data []float64) *markup.Element {
	return svgrenderer.RenderFragment(cfg, data)
}

// RenderDocument wraps the fragment in a standalone root container sized to
// fit, with the vertical axis flipped so values increase upward.
func RenderDocument(cfg Config, data []float64) *markup.Element {
	return svgrenderer.RenderDocument(cfg, data)
}

// GenerateSVG builds a chart model from the definition and renders it as SVG
// markup. It is the simplest entry point for callers that just want chart
// bytes.
func GenerateSVG(ctx context.Context, def Definition, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Definition:    &def,
		RenderOptions: render.RenderOptions{Document: true},
	})
}

// GenerateHTML renders the chart wrapped in the built-in HTML page shell.
func GenerateHTML(ctx context.Context, def Definition, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Definition: &def,
		Renderer:   "page",
	})
}

// WithThemeSelector re-exports the orchestrator theme option for callers
// configuring charts from the top-level package.
func WithThemeSelector(selector ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}
