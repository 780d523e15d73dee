// Package chart holds the renderer-facing data model: configuration, the
// numeric series, and the normalization math that scales values against the
// series maximum.
package chart

// Defaults applied by the builder when a definition leaves chart geometry
// unset.
const (
	DefaultBarSpacing = 10
	DefaultBarHeight  = 100
	DefaultColor      = "steelblue"
)

// Config carries the scalar geometry and styling inputs for a single render
// call. It is immutable once handed to a renderer.
type Config struct {
	// BarSpacing is the horizontal distance between bar origins. Bars occupy
	// 80% of it, leaving the rest as a gap.
	BarSpacing float64 `json:"barSpacing" yaml:"barSpacing"`
	// Color fills the bar rectangles.
	Color string `json:"color" yaml:"color"`
	// BarHeight is the height the series maximum scales to.
	BarHeight float64 `json:"barHeight" yaml:"barHeight"`
	// GraphWidth is the total drawable width the x-axis spans.
	GraphWidth float64 `json:"graphWidth" yaml:"graphWidth"`
}

// Point is a normalized sample: an x position plus the value's proportion of
// the series maximum, in [0, 1].
type Point struct {
	X        float64 `json:"x"`
	Fraction float64 `json:"fraction"`
}

// Model is the renderer-facing representation of a chart. Renderers treat it
// as read-only; output nodes are owned by the caller after rendering.
type Model struct {
	Title       string            `json:"title,omitempty"`
	Config      Config            `json:"config"`
	Series      []float64         `json:"series"`
	Annotations []string          `json:"annotations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
