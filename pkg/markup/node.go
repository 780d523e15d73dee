// Package markup models the vector-graphics output tree: container, rect,
// line, and text nodes with ordered attributes, plus SVG encoding and
// sanitization helpers.
package markup

import "strings"

// Attr is a single element attribute. Attributes keep insertion order so the
// encoded output stays stable across renders.
type Attr struct {
	Key   string
	Value string
}

// Element is a node in the rendered markup tree. Charts are built from four
// node kinds: container groups, rectangles, lines, and text.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// NewElement creates an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{Name: strings.TrimSpace(name)}
}

// SetAttr sets an attribute, replacing an existing value for the same key.
func (e *Element) SetAttr(key, value string) *Element {
	key = strings.TrimSpace(key)
	if key == "" {
		return e
	}
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

// Attr returns the value for key and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Append adds child nodes, skipping nils so callers can append conditionally.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		e.Children = append(e.Children, child)
	}
	return e
}

// Find returns the first descendant with the given tag name, or nil.
func (e *Element) Find(name string) *Element {
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll collects every descendant with the given tag name in document order.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	for _, child := range e.Children {
		if child.Name == name {
			out = append(out, child)
		}
		out = append(out, child.FindAll(name)...)
	}
	return out
}

// Group creates a container node.
func Group() *Element {
	return NewElement("g")
}

// Rect creates a rectangle node at (x, y) with the given dimensions.
func Rect(x, y, width, height float64) *Element {
	return NewElement("rect").
		SetAttr("x", FormatNumber(x)).
		SetAttr("y", FormatNumber(y)).
		SetAttr("width", FormatNumber(width)).
		SetAttr("height", FormatNumber(height))
}

// Line creates a line node between two points.
func Line(x1, y1, x2, y2 float64) *Element {
	return NewElement("line").
		SetAttr("x1", FormatNumber(x1)).
		SetAttr("y1", FormatNumber(y1)).
		SetAttr("x2", FormatNumber(x2)).
		SetAttr("y2", FormatNumber(y2))
}

// Text creates a text node anchored at (x, y).
func Text(x, y float64, content string) *Element {
	node := NewElement("text").
		SetAttr("x", FormatNumber(x)).
		SetAttr("y", FormatNumber(y))
	node.Text = content
	return node
}

// Raw wraps already-sanitized markup so it can be appended to a tree without
// re-encoding. Callers must run untrusted content through Sanitize first.
func Raw(content string) *Element {
	return &Element{Text: content}
}

// Root creates an svg document node sized to the given viewport.
func Root(width, height float64) *Element {
	return NewElement("svg").
		SetAttr("xmlns", "http://www.w3.org/2000/svg").
		SetAttr("width", FormatNumber(width)).
		SetAttr("height", FormatNumber(height))
}
