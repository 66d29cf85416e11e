package markdown

import (
	"strings"
	"testing"

	"github.com/calliri/go-devlog/content"
)

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer(RenderOptions{})

	html, err := renderer.Render([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestRenderer_HardWraps(t *testing.T) {
	renderer := NewRenderer(RenderOptions{})

	html, err := renderer.RenderWithOptions([]byte("line one\nline two"), RenderOptions{HardWraps: true})
	if err != nil {
		t.Fatalf("RenderWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestRenderer_GFMTableDefault(t *testing.T) {
	renderer := NewRenderer(RenderOptions{})

	html, err := renderer.Render([]byte("| A | B |\n|---|---|\n| 1 | 2 |"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "<table>") {
		t.Fatalf("expected GFM table rendering, got %q", string(html))
	}
}

func TestRenderer_RenderBlock(t *testing.T) {
	renderer := NewRenderer(RenderOptions{})

	html, err := renderer.RenderBlock(content.Markdown{Content: "**bold**"})
	if err != nil {
		t.Fatalf("RenderBlock: %v", err)
	}
	if !strings.Contains(string(html), "<strong>bold</strong>") {
		t.Fatalf("expected bold rendering, got %q", string(html))
	}

	if _, err := renderer.RenderBlock(content.Text{Content: "plain"}); err == nil {
		t.Fatalf("expected error for non-markdown block")
	}
}

func TestCollectExtensions_UnknownNamesIgnored(t *testing.T) {
	exts := collectExtensions([]string{"gfm", "bogus", "gfm"})
	if len(exts) != 1 {
		t.Fatalf("expected deduplicated known extensions, got %d", len(exts))
	}
}
