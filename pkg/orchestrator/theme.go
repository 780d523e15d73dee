package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-chartgen/pkg/render"
)

// themeSelector narrows the go-theme selector surface the orchestrator
// depends on, so tests can stub it.
type themeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme and variant used when neither the request
// nor the chart definition names one.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = strings.TrimSpace(name)
		o.defaultVariant = strings.TrimSpace(variant)
	}
}

// WithThemeFallbacks seeds token values applied beneath whatever the resolved
// manifest declares, so renderers always find the chart.* tokens they expect.
func WithThemeFallbacks(tokens map[string]string) Option {
	return func(o *Orchestrator) {
		if len(tokens) == 0 {
			return
		}
		if o.fallbackTokens == nil {
			o.fallbackTokens = make(map[string]string, len(tokens))
		}
		for key, value := range tokens {
			o.fallbackTokens[key] = value
		}
	}
}

// resolveTheme turns a theme name/variant pair into the renderer-facing
// configuration: merged tokens, derived CSS variables, and an asset URL
// resolver. A nil config (no error) means no theme applies.
func (o *Orchestrator) resolveTheme(name, variant string) (*render.ThemeConfig, error) {
	if name == "" {
		name = o.defaultTheme
	}
	if variant == "" {
		variant = o.defaultVariant
	}
	if o.themeSelector == nil || name == "" {
		return nil, nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}

	config := &render.ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  mergeTokens(o.fallbackTokens, selection),
	}
	config.CSSVars = deriveCSSVars(config.Tokens)
	config.AssetURL = assetResolver(selection)
	return config, nil
}

func mergeTokens(fallbacks map[string]string, selection *theme.Selection) map[string]string {
	tokens := make(map[string]string, len(fallbacks))
	for key, value := range fallbacks {
		tokens[key] = value
	}

	manifest := selection.Manifest
	if manifest == nil {
		return tokens
	}
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}

func deriveCSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+strings.ReplaceAll(key, ".", "-")] = value
	}
	return vars
}

func assetResolver(selection *theme.Selection) func(string) string {
	manifest := selection.Manifest
	if manifest == nil {
		return nil
	}

	files := make(map[string]string, len(manifest.Assets.Files))
	for key, file := range manifest.Assets.Files {
		files[key] = file
	}
	prefix := manifest.Assets.Prefix
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, file := range variant.Assets.Files {
			files[key] = file
		}
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}
	if len(files) == 0 {
		return nil
	}

	return func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		return strings.TrimSuffix(prefix, "/") + "/" + file
	}
}
