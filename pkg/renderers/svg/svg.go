// Package svg renders chart models as scalable vector graphics markup, either
// as an embeddable fragment or as a standalone document sized to fit.
package svg

import (
	"context"
	"fmt"

	"github.com/goliatone/go-chartgen/pkg/chart"
	"github.com/goliatone/go-chartgen/pkg/markup"
	"github.com/goliatone/go-chartgen/pkg/render"
)

const (
	// barWidthRatio is the share of the spacing each bar occupies.
	barWidthRatio = 0.8
	// axisOverhang extends axis lines and tick marks past the origin so they
	// are not clipped flush with the first bar.
	axisOverhang = 2.0
	// docPadding is the extra viewport size a document adds around the
	// drawable area, split evenly between the sides.
	docPadding = 40.0
	// labelOffset pushes tick labels left of the y-axis.
	labelOffset = 4.0

	defaultAxisStroke = "black"
)

// tickFractions are the heights, as fractions of the configured bar height,
// where tick marks and value labels appear.
var tickFractions = []float64{0, 0.5, 1}

// Renderer implements render.Renderer for SVG output.
type Renderer struct{}

// New constructs the SVG renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "svg"
}

func (r *Renderer) ContentType() string {
	return "image/svg+xml"
}

// Render encodes the chart as SVG bytes: a fragment by default, or a sized
// standalone document when options request one.
func (r *Renderer) Render(ctx context.Context, model chart.Model, options render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	var root *markup.Element
	if options.Document {
		root = Document(model, options.Theme)
	} else {
		root = Fragment(model, options.Theme)
	}
	return []byte(markup.Encode(root)), nil
}

// RenderFragment produces the embeddable group node for the given
// configuration and data series.
func RenderFragment(cfg chart.Config, data []float64) *markup.Element {
	return Fragment(chart.Model{Config: cfg, Series: data}, nil)
}

// RenderDocument wraps the fragment in a root container sized to
// (graphWidth+40) × (barHeight+40) with the coordinate system flipped so
// values increase upward.
func RenderDocument(cfg chart.Config, data []float64) *markup.Element {
	return Document(chart.Model{Config: cfg, Series: data}, nil)
}

// Fragment builds the chart group: one rectangle per value, the two axis
// lines, and tick marks with value labels at 0%, 50%, and 100% of the
// observed maximum.
func Fragment(model chart.Model, theme *render.ThemeConfig) *markup.Element {
	cfg := model.Config
	max := chart.Max(model.Series)
	points := chart.Normalize(cfg, model.Series)

	barFill := cfg.Color
	if barFill == "" {
		barFill = theme.Token(render.TokenBarFill, chart.DefaultColor)
	}
	axisStroke := theme.Token(render.TokenAxisStroke, defaultAxisStroke)
	labelFill := theme.Token(render.TokenLabelFill, "")

	group := markup.Group()

	barWidth := cfg.BarSpacing * barWidthRatio
	for _, point := range points {
		group.Append(
			markup.Rect(point.X, 0, barWidth, point.Fraction*cfg.BarHeight).
				SetAttr("fill", barFill),
		)
	}

	group.Append(
		axisLine(-axisOverhang, 0, cfg.GraphWidth, 0, axisStroke),
		axisLine(0, -axisOverhang, 0, cfg.BarHeight, axisStroke),
	)

	for _, fraction := range tickFractions {
		y := fraction * cfg.BarHeight
		group.Append(axisLine(-axisOverhang, y, axisOverhang, y, axisStroke))

		label := markup.Text(-labelOffset, y, markup.FormatNumber(max*fraction)).
			SetAttr("text-anchor", "end")
		if labelFill != "" {
			label.SetAttr("fill", labelFill)
		}
		group.Append(label)
	}

	return group
}

// Document sizes a root container to fit the fragment, flips the vertical
// axis, and overlays any sanitized annotations carried by the model.
func Document(model chart.Model, theme *render.ThemeConfig) *markup.Element {
	cfg := model.Config
	margin := docPadding / 2

	root := markup.Root(cfg.GraphWidth+docPadding, cfg.BarHeight+docPadding)
	if background := theme.Token(render.TokenBackground, ""); background != "" {
		root.SetAttr("style", "background-color:"+background)
	}
	if model.Title != "" {
		title := markup.NewElement("title")
		title.Text = model.Title
		root.Append(title)
	}

	flipped := markup.Group().SetAttr("transform", fmt.Sprintf(
		"translate(%s,%s) scale(1,-1)",
		markup.FormatNumber(margin),
		markup.FormatNumber(cfg.BarHeight+margin),
	))
	flipped.Append(Fragment(model, theme))
	root.Append(flipped)

	for _, annotation := range model.Annotations {
		root.Append(markup.Raw(annotation))
	}

	return root
}

func axisLine(x1, y1, x2, y2 float64, stroke string) *markup.Element {
	return markup.Line(x1, y1, x2, y2).
		SetAttr("stroke", stroke).
		SetAttr("stroke-width", "1")
}
