// Package page renders a chart as a complete HTML document, embedding the
// SVG output inside a templated shell with theme-derived CSS variables.
package page

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-chartgen/pkg/chart"
	"github.com/goliatone/go-chartgen/pkg/render"
	rendertemplate "github.com/goliatone/go-chartgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-chartgen/pkg/render/template/gotemplate"
	svgrenderer "github.com/goliatone/go-chartgen/pkg/renderers/svg"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inner            render.Renderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithInnerRenderer overrides the renderer that produces the embedded chart
// markup. Defaults to the SVG renderer.
func WithInnerRenderer(renderer render.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.inner = renderer
		}
	}
}

// Renderer wraps an SVG-producing renderer and emits a full HTML page.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	inner     render.Renderer
}

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.inner == nil {
		cfg.inner = svgrenderer.New()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, inner: cfg.inner}, nil
}

func (r *Renderer) Name() string {
	return "page"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML page. The wrapped renderer always receives
// document mode so the embedded chart is self-contained.
func (r *Renderer) Render(ctx context.Context, model chart.Model, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}
	if r.inner == nil {
		return nil, fmt.Errorf("page renderer: inner renderer is nil")
	}

	innerOptions := options
	innerOptions.Document = true

	svg, err := r.inner.Render(ctx, model, innerOptions)
	if err != nil {
		return nil, fmt.Errorf("page renderer: render chart: %w", err)
	}

	title := model.Title
	if title == "" {
		title = "Chart"
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"title":    title,
		"svg":      string(svg),
		"css_vars": cssVarBlock(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func cssVarBlock(theme *render.ThemeConfig) string {
	if theme == nil || len(theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(theme.CSSVars))
	for key := range theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(theme.CSSVars[key])
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}
