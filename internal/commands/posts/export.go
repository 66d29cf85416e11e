package postscmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/calliri/go-devlog/internal/commands"
	"github.com/calliri/go-devlog/pkg/interfaces"
	"github.com/calliri/go-devlog/posts"
)

const exportCollectionMessageType = "devlog.posts.export_collection"

// ExportCollectionCommand requests a JSON export of the whole post collection.
type ExportCollectionCommand struct {
	Output string `json:"output"`
}

// Type implements command.Message.
func (ExportCollectionCommand) Type() string { return exportCollectionMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m ExportCollectionCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Output) == "" {
		errs["output"] = validation.NewError("devlog.posts.export_collection.output_required", "output path is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportCollectionHandler writes the collection envelope to the output path.
type ExportCollectionHandler struct {
	inner *commands.Handler[ExportCollectionCommand]
}

// NewExportCollectionHandler constructs a handler wired to the provided post service.
func NewExportCollectionHandler(service posts.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ExportCollectionCommand]) *ExportCollectionHandler {
	exec := func(ctx context.Context, msg ExportCollectionCommand) error {
		envelope, err := service.Export(ctx)
		if err != nil {
			return err
		}

		encoded, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return fmt.Errorf("encode export envelope: %w", err)
		}

		if dir := filepath.Dir(msg.Output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create export directory %s: %w", dir, err)
			}
		}

		if err := os.WriteFile(msg.Output, encoded, 0o644); err != nil {
			return fmt.Errorf("write export %s: %w", msg.Output, err)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportCollectionCommand]{
		commands.WithLogger[ExportCollectionCommand](logger),
		commands.WithOperation[ExportCollectionCommand]("posts.export_collection"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportCollectionHandler{
		inner: commands.NewHandler[ExportCollectionCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportCollectionCommand].Execute.
func (h *ExportCollectionHandler) Execute(ctx context.Context, msg ExportCollectionCommand) error {
	return h.inner.Execute(ctx, msg)
}
