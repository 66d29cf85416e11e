package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	devlog "github.com/calliri/go-devlog"
	"github.com/calliri/go-devlog/internal/commands"
	postscmd "github.com/calliri/go-devlog/internal/commands/posts"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		strict     = flag.Bool("strict", false, "Report parser diagnostics for malformed constructs")
		dryRun     = flag.Bool("dry-run", false, "Discover documents without registering posts")
		output     = flag.String("output", "", "Write a JSON export of the collection to this path")
		logLevel   = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	)

	flag.Parse()

	cfg := devlog.DefaultConfig()
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = *contentDir
	cfg.Markdown.Pattern = *pattern
	cfg.Markdown.Strict = *strict
	cfg.Features.Markdown = true
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = *logLevel

	module, err := devlog.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()
	logger := commands.CommandLogger(module.LoggerProvider(), "posts")

	importer := postscmd.NewImportDirectoryHandler(module.Loader(), module.Posts(), logger)
	importCmd := postscmd.ImportDirectoryCommand{
		Directory: ".",
		Pattern:   *pattern,
		DryRun:    *dryRun,
	}
	if err := importer.Execute(ctx, importCmd); err != nil {
		log.Fatalf("import posts: %v", err)
	}

	report := importer.Report()
	fmt.Fprintf(os.Stdout, "Imported: %d\nSkipped: %d\n", len(report.Imported), len(report.Skipped))
	for _, path := range report.Imported {
		fmt.Fprintf(os.Stdout, "  + %s\n", path)
	}
	for _, path := range report.Skipped {
		fmt.Fprintf(os.Stdout, "  - %s\n", path)
	}

	if *output != "" {
		exporter := postscmd.NewExportCollectionHandler(module.Posts(), logger)
		exportCmd := postscmd.ExportCollectionCommand{Output: *output}
		if err := exporter.Execute(ctx, exportCmd); err != nil {
			log.Fatalf("export collection: %v", err)
		}
		fmt.Fprintf(os.Stdout, "Exported collection to %s\n", *output)
	}
}
