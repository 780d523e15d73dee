package gotemplate

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/shell.tmpl": {Data: []byte("<main>{{ body|safe }}</main>")},
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestRenderTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("templates/shell", map[string]any{
		"body": "<svg/>",
	})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "<main><svg/></main>" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderStringAndDispatch(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.Render("{{ name }}", map[string]any{"name": "chart"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if out != "chart" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := New(
		WithFS(testFS()),
		WithGlobalData(map[string]any{"brand": "acme"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ brand }}", nil)
	if err != nil {
		t.Fatalf("render with globals: %v", err)
	}
	if out != "acme" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("templates/nope", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}
