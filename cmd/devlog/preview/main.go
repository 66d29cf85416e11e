package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	devlog "github.com/calliri/go-devlog"
	"github.com/calliri/go-devlog/content"
	"github.com/calliri/go-devlog/markdown"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		filePath   = flag.String("file", "", "Markdown file to preview (relative to the content root)")
		strict     = flag.Bool("strict", false, "Report parser diagnostics for malformed constructs")
		renderHTML = flag.Bool("render-html", false, "Render the markdown body into HTML instead of blocks")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	cfg := devlog.DefaultConfig()
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = *contentDir
	cfg.Markdown.Strict = *strict
	cfg.Features.Markdown = true

	module, err := devlog.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	result, err := module.Loader().LoadFile(ctx, *filePath, markdown.LoadParams{})
	if err != nil {
		log.Fatalf("load markdown document: %v", err)
	}
	doc := result.Document

	fmt.Fprintf(os.Stdout, "Path: %s\nChecksum: %x\n\n", doc.FilePath, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if *renderHTML {
		html, err := module.Renderer().Render(doc.Body)
		if err != nil {
			log.Fatalf("render markdown: %v", err)
		}
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(html))
		return
	}

	blocks, diags := module.Parser().Parse(string(doc.Body))
	encoded, err := content.EncodeBlocks(blocks)
	if err != nil {
		log.Fatalf("encode blocks: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Blocks:\n%s\n", string(encoded))
	for _, diag := range diags {
		fmt.Fprintf(os.Stderr, "diagnostic: %s\n", diag)
	}
}
