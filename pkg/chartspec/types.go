package chartspec

// ChartSection holds the bar geometry and color configuration as authored.
// Zero fields are filled with defaults by the model builder.
type ChartSection struct {
	BarSpacing float64 `json:"barSpacing" yaml:"barSpacing"`
	Color      string  `json:"color" yaml:"color"`
	BarHeight  float64 `json:"barHeight" yaml:"barHeight"`
	GraphWidth float64 `json:"graphWidth" yaml:"graphWidth"`
}

// Definition is a single chart description as authored in a JSON or YAML
// file. The zero value is renderable: the builder substitutes defaults for
// missing geometry and an empty series renders as a chart with no bars.
type Definition struct {
	// Name identifies the chart inside a Store. Optional for single-document
	// parsing.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Title is displayed by document-level renderers such as the HTML page.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Chart holds the bar geometry and color configuration.
	Chart ChartSection `json:"chart" yaml:"chart"`
	// Values is the ordered numeric series to plot.
	Values []float64 `json:"values" yaml:"values"`
	// Theme and Variant select a registered theme for token-driven styling.
	Theme   string `json:"theme,omitempty" yaml:"theme,omitempty"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
	// Annotations carries raw inline markup overlaid on the document.
	// Content is sanitized before rendering.
	Annotations []string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	// Metadata passes opaque hints through to renderers.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Store holds named definitions loaded from a filesystem.
type Store struct {
	definitions map[string]Definition
}

// Definition returns the named chart definition.
func (s *Store) Definition(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.definitions[name]
	return def, ok
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.definitions) == 0
}

// Names lists the stored definition names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.definitions))
	for name := range s.definitions {
		names = append(names, name)
	}
	return names
}
