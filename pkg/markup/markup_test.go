package markup

import (
	"strings"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{100.0 / 3, "33.33"},
		{200.0 / 3, "66.67"},
		{1.5, "1.5"},
		{-2, "-2"},
		{-0.001, "0"},
		{8.125, "8.13"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEncodeSelfClosing(t *testing.T) {
	got := Encode(Rect(0, 0, 8, 100))
	want := `<rect x="0" y="0" width="8" height="100"/>`
	if got != want {
		t.Fatalf("encode rect: got %q, want %q", got, want)
	}
}

func TestEncodeNested(t *testing.T) {
	group := Group().SetAttr("fill", "red").Append(
		Line(-2, 0, 100, 0),
		Text(0, 50, "1.5"),
	)
	got := Encode(group)
	want := `<g fill="red"><line x1="-2" y1="0" x2="100" y2="0"/><text x="0" y="50">1.5</text></g>`
	if got != want {
		t.Fatalf("encode group:\n got %q\nwant %q", got, want)
	}
}

func TestEncodeEscapesAttributesAndText(t *testing.T) {
	node := Text(0, 0, `a < b & "c"`)
	node.SetAttr("data-label", `x"y<z`)
	got := Encode(node)
	if strings.Contains(got, `x"y`) {
		t.Fatalf("attribute value not escaped: %q", got)
	}
	if !strings.Contains(got, "a &lt; b &amp;") {
		t.Fatalf("text content not escaped: %q", got)
	}
}

func TestSetAttrReplacesExisting(t *testing.T) {
	node := NewElement("rect").SetAttr("fill", "red").SetAttr("fill", "blue")
	if len(node.Attrs) != 1 {
		t.Fatalf("expected one attribute, got %d", len(node.Attrs))
	}
	if value, _ := node.Attr("fill"); value != "blue" {
		t.Fatalf("expected replaced value, got %q", value)
	}
}

func TestFindAllCollectsDescendants(t *testing.T) {
	root := Root(140, 140).Append(
		Group().Append(Rect(0, 0, 8, 10), Rect(10, 0, 8, 20)),
		Rect(20, 0, 8, 30),
	)
	rects := root.FindAll("rect")
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	if root.Find("line") != nil {
		t.Fatalf("expected no line node")
	}
}

func TestSanitizeStripsScripts(t *testing.T) {
	raw := `<script>alert(1)</script><line x1="0" y1="0" x2="10" y2="10" stroke="red"/>`
	cleaned := Sanitize(raw)
	if strings.Contains(cleaned, "script") {
		t.Fatalf("script element survived sanitization: %q", cleaned)
	}
	if !strings.Contains(cleaned, "<line") {
		t.Fatalf("drawing element removed by sanitization: %q", cleaned)
	}
}

func TestSanitizeEmptyInput(t *testing.T) {
	if got := Sanitize("   "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
