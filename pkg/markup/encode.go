package markup

import (
	"math"
	"strconv"
	"strings"
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// FormatNumber renders a coordinate or dimension rounded to two decimal
// places with trailing zeros trimmed, so 33.333… encodes as "33.33" and
// 100.0 as "100".
func FormatNumber(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		// Avoid "-0" for tiny negative inputs.
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// Encode serialises the element tree as markup text.
func Encode(e *Element) string {
	if e == nil {
		return ""
	}
	var builder strings.Builder
	builder.Grow(256)
	encodeElement(&builder, e)
	return builder.String()
}

// String implements fmt.Stringer via Encode.
func (e *Element) String() string {
	return Encode(e)
}

func encodeElement(builder *strings.Builder, e *Element) {
	if e.Name == "" {
		// Raw nodes pass their content through verbatim.
		builder.WriteString(e.Text)
		return
	}

	builder.WriteByte('<')
	builder.WriteString(e.Name)
	for _, attr := range e.Attrs {
		builder.WriteByte(' ')
		builder.WriteString(attr.Key)
		builder.WriteString(`="`)
		builder.WriteString(attrEscaper.Replace(attr.Value))
		builder.WriteByte('"')
	}

	if len(e.Children) == 0 && e.Text == "" {
		builder.WriteString("/>")
		return
	}

	builder.WriteByte('>')
	if e.Text != "" {
		builder.WriteString(textEscaper.Replace(e.Text))
	}
	for _, child := range e.Children {
		encodeElement(builder, child)
	}
	builder.WriteString("</")
	builder.WriteString(e.Name)
	builder.WriteByte('>')
}
