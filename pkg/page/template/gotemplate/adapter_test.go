package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ name }}!"),
		},
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error without template source")
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("greeting", map[string]any{"name": "world"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if got != "Hello world!" {
		t.Fatalf("RenderTemplate = %q", got)
	}

	// extension already present is not doubled
	got, err = engine.RenderTemplate("greeting.tmpl", map[string]any{"name": "again"})
	if err != nil {
		t.Fatalf("render template with extension: %v", err)
	}
	if got != "Hello again!" {
		t.Fatalf("RenderTemplate = %q", got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("{{ a }}-{{ b }}", map[string]any{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "x-y" {
		t.Fatalf("RenderString = %q", got)
	}
}

func TestEngine_RenderDispatch(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	inline, err := engine.Render("inline {{ v }}", map[string]any{"v": "1"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "inline 1" {
		t.Fatalf("Render inline = %q", inline)
	}

	file, err := engine.Render("greeting", map[string]any{"name": "file"})
	if err != nil {
		t.Fatalf("render file: %v", err)
	}
	if file != "Hello file!" {
		t.Fatalf("Render file = %q", file)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithGlobalData(map[string]any{"site": "pagegen"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("{{ site }}/{{ page }}", map[string]any{"page": "index"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "pagegen/index" {
		t.Fatalf("global context not applied: %q", got)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatal("expected error for missing template")
	} else if !strings.Contains(err.Error(), "missing.tmpl") {
		t.Fatalf("error should name the template path: %v", err)
	}
}
