package render

import (
	"context"

	"github.com/goliatone/go-chartgen/pkg/chart"
)

// Renderer converts a chart model into a byte representation (SVG markup,
// an HTML page, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, model chart.Model, options RenderOptions) ([]byte, error)
}
