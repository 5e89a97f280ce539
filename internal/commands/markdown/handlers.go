package markdowncmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-richtext/internal/commands"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

const (
	importFileOperation      = "markdown.import_file"
	importDirectoryOperation = "markdown.import_directory"
)

var (
	_ command.Commander[ImportFileCommand]      = (*ImportFileHandler)(nil)
	_ command.Commander[ImportDirectoryCommand] = (*ImportDirectoryHandler)(nil)
)

// ResultSink receives the outcome of a completed import command. Execute
// only reports errors, so callers that need the documents register a sink.
type ResultSink func(*interfaces.ImportResult)

// ImportFileHandler converts one markdown file via the shared command
// handler foundation.
type ImportFileHandler struct {
	inner *commands.Handler[ImportFileCommand]
}

// NewImportFileHandler creates a handler bound to the supplied import service.
func NewImportFileHandler(service interfaces.ImportService, logger interfaces.Logger, sink ResultSink, opts ...commands.HandlerOption[ImportFileCommand]) *ImportFileHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportFileCommand) error {
		result, err := service.ImportFile(ctx, msg.Path, interfaces.LoadOptions{})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"path":           msg.Path,
			"document_count": len(result.Documents),
		}).Info("markdown.command.import_file.completed")
		if sink != nil {
			sink(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportFileCommand]{
		commands.WithLogger[ImportFileCommand](baseLogger),
		commands.WithOperation[ImportFileCommand](importFileOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportFileCommand].
func (h *ImportFileHandler) Execute(ctx context.Context, msg ImportFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ImportDirectoryHandler converts a directory of markdown files via the
// shared command handler foundation.
type ImportDirectoryHandler struct {
	inner *commands.Handler[ImportDirectoryCommand]
}

// NewImportDirectoryHandler creates a handler bound to the supplied import service.
func NewImportDirectoryHandler(service interfaces.ImportService, logger interfaces.Logger, sink ResultSink, opts ...commands.HandlerOption[ImportDirectoryCommand]) *ImportDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportDirectoryCommand) error {
		loadOpts := interfaces.LoadOptions{
			Pattern:   msg.Pattern,
			Recursive: msg.Recursive,
		}
		result, err := service.ImportDirectory(ctx, msg.Directory, loadOpts)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"directory":      msg.Directory,
			"document_count": len(result.Documents),
			"error_count":    len(result.Errors),
		}).Info("markdown.command.import_directory.completed")
		if sink != nil {
			sink(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportDirectoryCommand]{
		commands.WithLogger[ImportDirectoryCommand](baseLogger),
		commands.WithOperation[ImportDirectoryCommand](importDirectoryOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportDirectoryCommand].
func (h *ImportDirectoryHandler) Execute(ctx context.Context, msg ImportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
