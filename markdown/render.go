package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/calliri/go-devlog/content"
)

// RenderOptions configures the HTML renderer applied to markdown
// pass-through blocks.
type RenderOptions struct {
	// Extensions names the goldmark extensions to enable; the default set
	// is GFM, linkify, and task lists. Unknown names are ignored.
	Extensions []string
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// SafeMode suppresses raw HTML in the output.
	SafeMode bool
}

// Renderer converts the content of markdown pass-through blocks into HTML
// using the goldmark engine. It is stateless; callers can share a single
// instance without locking.
type Renderer struct {
	defaults RenderOptions
}

// NewRenderer constructs a renderer with the supplied defaults.
func NewRenderer(defaults RenderOptions) *Renderer {
	return &Renderer{defaults: defaults}
}

// Render converts markdown source into HTML using the renderer defaults.
func (r *Renderer) Render(src []byte) ([]byte, error) {
	return r.RenderWithOptions(src, r.defaults)
}

// RenderWithOptions converts markdown source into HTML with per-call options.
func (r *Renderer) RenderWithOptions(src []byte, opts RenderOptions) ([]byte, error) {
	engine := newGoldmarkEngine(opts)
	var buf bytes.Buffer
	if err := engine.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBlock renders a markdown pass-through block. Other block variants
// are the rendering layer's concern and are rejected here.
func (r *Renderer) RenderBlock(block content.Block) ([]byte, error) {
	md, ok := block.(content.Markdown)
	if !ok {
		return nil, fmt.Errorf("markdown render: block type %q is not pass-through markup", block.BlockType())
	}
	return r.Render([]byte(md.Content))
}

func newGoldmarkEngine(opts RenderOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}

	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}

	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
