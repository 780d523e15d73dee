package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the chart model pipeline.
type RenderOptions struct {
	// Document asks SVG renderers for a standalone root container sized to
	// fit the chart instead of an embeddable fragment.
	Document bool
	// Theme carries the resolved theme selection. Renderers fall back to
	// built-in colors when nil or when a token is absent.
	Theme *ThemeConfig
}
