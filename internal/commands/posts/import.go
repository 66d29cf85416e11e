package postscmd

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/calliri/go-devlog/internal/commands"
	"github.com/calliri/go-devlog/markdown"
	"github.com/calliri/go-devlog/pkg/interfaces"
	"github.com/calliri/go-devlog/posts"
)

const importDirectoryMessageType = "devlog.posts.import_directory"

// ImportDirectoryCommand requests ingestion of a directory of markdown posts.
type ImportDirectoryCommand struct {
	Directory string `json:"directory"`
	Pattern   string `json:"pattern,omitempty"`
	DryRun    bool   `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m ImportDirectoryCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Directory) == "" {
		errs["directory"] = validation.NewError("devlog.posts.import_directory.directory_required", "directory is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportReport summarises an import run.
type ImportReport struct {
	Imported []string
	Skipped  []string
	Errors   []error
}

// ImportDirectoryHandler loads markdown documents and registers them as posts.
type ImportDirectoryHandler struct {
	inner  *commands.Handler[ImportDirectoryCommand]
	report ImportReport
}

// NewImportDirectoryHandler constructs a handler wired to the provided loader and service.
func NewImportDirectoryHandler(loader *markdown.Loader, service posts.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ImportDirectoryCommand]) *ImportDirectoryHandler {
	h := &ImportDirectoryHandler{}

	exec := func(ctx context.Context, msg ImportDirectoryCommand) error {
		report, err := importDirectory(ctx, loader, service, msg)
		h.report = report
		return err
	}

	handlerOpts := []commands.HandlerOption[ImportDirectoryCommand]{
		commands.WithLogger[ImportDirectoryCommand](logger),
		commands.WithOperation[ImportDirectoryCommand]("posts.import_directory"),
	}
	handlerOpts = append(handlerOpts, opts...)

	h.inner = commands.NewHandler[ImportDirectoryCommand](exec, handlerOpts...)
	return h
}

// Execute satisfies command.Commander[ImportDirectoryCommand].Execute.
func (h *ImportDirectoryHandler) Execute(ctx context.Context, msg ImportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// Report returns the outcome of the most recent execution.
func (h *ImportDirectoryHandler) Report() ImportReport {
	return h.report
}

func importDirectory(ctx context.Context, loader *markdown.Loader, service posts.Service, msg ImportDirectoryCommand) (ImportReport, error) {
	report := ImportReport{}

	results, err := loader.LoadDirectory(ctx, msg.Directory, markdown.LoadParams{Pattern: msg.Pattern})
	if err != nil {
		return report, err
	}

	for _, result := range results {
		doc := result.Document
		slug := documentSlug(doc)

		if msg.DryRun {
			report.Skipped = append(report.Skipped, doc.FilePath)
			continue
		}

		meta := documentMetadata(doc)
		if _, err := service.AddFromMarkdown(ctx, slug, meta, string(doc.Body)); err != nil {
			if errors.Is(err, posts.ErrPostExists) {
				report.Skipped = append(report.Skipped, doc.FilePath)
				continue
			}
			report.Errors = append(report.Errors, err)
			continue
		}
		report.Imported = append(report.Imported, doc.FilePath)
	}

	if len(report.Errors) > 0 {
		return report, report.Errors[0]
	}
	return report, nil
}

func documentSlug(doc *interfaces.Document) string {
	if slug := strings.TrimSpace(doc.FrontMatter.Slug); slug != "" {
		return slug
	}
	path := doc.FilePath
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		path = path[idx+1:]
	}
	return strings.TrimSuffix(path, ".md")
}

func documentMetadata(doc *interfaces.Document) posts.Metadata {
	fm := doc.FrontMatter
	meta := posts.Metadata{
		ID:           fm.ID,
		Title:        fm.Title,
		Excerpt:      fm.Excerpt,
		Date:         fm.Date,
		Tags:         fm.Tags,
		Reactions:    fm.Reactions,
		ReadTime:     fm.ReadTime,
		HeroGradient: fm.HeroGradient,
		Slug:         fm.Slug,
		Cover:        fm.Cover,
		Summary:      fm.Summary,
		Updated:      fm.Updated,
	}
	meta.Author.Name = fm.AuthorName
	meta.Author.URL = fm.AuthorURL
	return meta
}
