package chart

import (
	"strings"

	"github.com/goliatone/go-chartgen/pkg/chartspec"
	"github.com/goliatone/go-chartgen/pkg/markup"
)

// Builder converts an authored chart definition into the renderer-facing
// model. Implementations must be safe for concurrent use.
type Builder interface {
	Build(def chartspec.Definition) (Model, error)
}

type defaultBuilder struct{}

// NewBuilder returns the built-in builder: it fills geometry defaults,
// derives a graph width from the series when none is declared, and sanitizes
// annotation markup.
func NewBuilder() Builder {
	return defaultBuilder{}
}

func (defaultBuilder) Build(def chartspec.Definition) (Model, error) {
	cfg := Config{
		BarSpacing: def.Chart.BarSpacing,
		Color:      strings.TrimSpace(def.Chart.Color),
		BarHeight:  def.Chart.BarHeight,
		GraphWidth: def.Chart.GraphWidth,
	}
	if cfg.BarSpacing == 0 {
		cfg.BarSpacing = DefaultBarSpacing
	}
	if cfg.BarHeight == 0 {
		cfg.BarHeight = DefaultBarHeight
	}
	if cfg.GraphWidth == 0 {
		cfg.GraphWidth = cfg.BarSpacing * float64(len(def.Values))
	}

	model := Model{
		Title:  strings.TrimSpace(def.Title),
		Config: cfg,
		Series: append([]float64(nil), def.Values...),
	}

	for _, raw := range def.Annotations {
		cleaned := markup.Sanitize(raw)
		if cleaned == "" {
			continue
		}
		model.Annotations = append(model.Annotations, cleaned)
	}

	if len(def.Metadata) > 0 {
		model.Metadata = make(map[string]string, len(def.Metadata))
		for key, value := range def.Metadata {
			model.Metadata[key] = value
		}
	}

	return model, nil
}
