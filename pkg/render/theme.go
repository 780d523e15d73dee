package render

import "strings"

// Theme token keys renderers look up when a chart does not pin its own
// colors.
const (
	TokenBarFill    = "chart.bar"
	TokenAxisStroke = "chart.axis"
	TokenLabelFill  = "chart.label"
	TokenBackground = "chart.background"
)

// ThemeConfig is the renderer-facing projection of a resolved theme
// selection: merged tokens, derived CSS custom properties, and an asset URL
// resolver for document-level renderers.
type ThemeConfig struct {
	// Theme and Variant echo the resolved selection.
	Theme   string
	Variant string
	// Tokens maps style token names (chart.bar, chart.axis, …) to values,
	// with variant overrides already merged over the base manifest.
	Tokens map[string]string
	// CSSVars exposes tokens as CSS custom properties ("--chart-bar") for
	// HTML renderers.
	CSSVars map[string]string
	// AssetURL resolves a logical asset key to a servable URL. Nil when the
	// theme declares no assets.
	AssetURL func(key string) string
}

// Token returns the named token value, or fallback when the config is nil or
// the token is absent.
func (c *ThemeConfig) Token(key, fallback string) string {
	if c == nil {
		return fallback
	}
	if value, ok := c.Tokens[key]; ok {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}
