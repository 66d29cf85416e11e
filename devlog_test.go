package devlog

import (
	"context"
	"testing"

	"github.com/calliri/go-devlog/content"
)

func TestNew_DefaultWiring(t *testing.T) {
	module, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if module.Posts() == nil {
		t.Fatalf("expected post service configured")
	}
	if module.Parser() == nil {
		t.Fatalf("expected parser configured")
	}
	if module.Renderer() == nil {
		t.Fatalf("expected renderer configured")
	}
	if module.Logger() == nil {
		t.Fatalf("expected root logger configured")
	}
	if module.Loader() != nil {
		t.Fatalf("expected no loader when markdown ingestion is disabled")
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Markdown.Enabled = true

	if _, err := New(cfg); err == nil {
		t.Fatalf("expected config validation error")
	}
}

func TestNew_MarkdownEnabledBuildsLoader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Markdown.Enabled = true
	cfg.Features.Markdown = true
	cfg.Markdown.ContentDir = t.TempDir()

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if module.Loader() == nil {
		t.Fatalf("expected loader when markdown ingestion is enabled")
	}
}

func TestModule_EndToEnd(t *testing.T) {
	module, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	blocks, _ := module.Parser().Parse("# Hello\n\nWorld")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %#v", blocks)
	}

	post, err := content.NewPostBuilder().
		ID(1).
		Title("Hello").
		Date("2025-06-01").
		Tags([]string{"go"}).
		Content(blocks).
		Build()
	if err != nil {
		t.Fatalf("build post: %v", err)
	}

	ctx := context.Background()
	if _, err := module.Posts().Add(ctx, "hello", post); err != nil {
		t.Fatalf("add post: %v", err)
	}

	summaries := module.Posts().List(ctx)
	if len(summaries) != 1 || summaries[0].Slug != "hello" {
		t.Fatalf("summaries mismatch: %#v", summaries)
	}
}
