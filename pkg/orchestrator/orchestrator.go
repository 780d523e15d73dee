// Package orchestrator coordinates the pipeline from an authored chart
// definition to rendered output: build the model, resolve the theme, pick a
// renderer, render.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-chartgen/pkg/chart"
	"github.com/goliatone/go-chartgen/pkg/chartspec"
	"github.com/goliatone/go-chartgen/pkg/render"
	"github.com/goliatone/go-chartgen/pkg/renderers/page"
	svgrenderer "github.com/goliatone/go-chartgen/pkg/renderers/svg"
)

const defaultRendererName = "svg"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithBuilder injects a custom chart model builder.
func WithBuilder(builder chart.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDefinitionFS supplies an fs.FS holding chart definition files so
// requests can reference charts by name.
func WithDefinitionFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.definitionFS = fsys
		o.definitionFSSpecified = true
	}
}

// Orchestrator coordinates the full pipeline from chart definition to
// rendered output. It applies sensible defaults (SVG renderer, built-in
// builder) while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	builder               chart.Builder
	registry              *render.Registry
	defaultRenderer       string
	definitionFS          fs.FS
	definitionFSSpecified bool
	store                 *chartspec.Store
	themeSelector         themeSelector
	defaultTheme          string
	defaultVariant        string
	fallbackTokens        map[string]string
	initialiseErr         error
	defaultsApplied       bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a chart.
type Request struct {
	// Definition supplies an authored chart inline. Optional when Chart or
	// Model is set.
	Definition *chartspec.Definition

	// Chart names a definition loaded from the configured definition FS.
	Chart string

	// Model bypasses the builder when the caller already has a chart model.
	Model *chart.Model

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant override the theme declared by the
	// definition.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions renderers can surface.
	// When omitted, renderers receive the zero-value struct.
	RenderOptions render.RenderOptions
}

// Generate executes the build → theme → render sequence and returns the
// rendered bytes (SVG markup for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	model, def, err := o.resolveModel(req)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		themeName := req.ThemeName
		themeVariant := req.ThemeVariant
		if themeName == "" && def != nil {
			themeName = def.Theme
			themeVariant = def.Variant
		}
		config, err := o.resolveTheme(themeName, themeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = config
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, model, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

func (o *Orchestrator) resolveModel(req Request) (chart.Model, *chartspec.Definition, error) {
	if req.Model != nil {
		return *req.Model, req.Definition, nil
	}

	def := req.Definition
	if def == nil && req.Chart != "" {
		stored, ok := o.store.Definition(req.Chart)
		if !ok {
			return chart.Model{}, nil, fmt.Errorf("orchestrator: chart %q not found", req.Chart)
		}
		def = &stored
	}
	if def == nil {
		return chart.Model{}, nil, errors.New("orchestrator: definition, chart name, or model is required")
	}

	model, err := o.builder.Build(*def)
	if err != nil {
		return chart.Model{}, nil, fmt.Errorf("orchestrator: build chart model: %w", err)
	}
	return model, def, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.builder == nil {
		o.builder = chart.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(svgrenderer.New())
		pageRenderer, err := page.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default page renderer: %w", err)
		} else {
			o.registry.MustRegister(pageRenderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.ensureDefinitionStore()

	o.defaultsApplied = true
}

func (o *Orchestrator) ensureDefinitionStore() {
	if o.store != nil {
		return
	}
	if !o.definitionFSSpecified || o.definitionFS == nil {
		o.store = &chartspec.Store{}
		return
	}

	store, err := chartspec.LoadFS(o.definitionFS)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load chart definitions: %w", err)
		return
	}
	o.store = store
}
