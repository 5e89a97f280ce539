// Package richtext converts markdown sources into rich-text documents. The
// conversion is event driven: a tokenizer walks the markdown and streams
// structural events into a builder that mutates a document through a single
// cursor, reproducing the layout conventions of rich-text editors (heading
// scale, quote margins, list grouping, table merges).
package richtext

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/internal/importer"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/logging/gologger"
	"github.com/goliatone/go-richtext/internal/markdown"
	"github.com/goliatone/go-richtext/internal/tokenizer"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

const configInvalidCode = "RICHTEXT_CONFIG_INVALID"

// Importer is the module's entry point. It owns a tokenizer, a logger, and
// the filesystem import service, and converts markdown sources on demand.
// An Importer is safe for concurrent use; every conversion builds into its
// own document.
type Importer struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	logger    interfaces.Logger
	tokenizer interfaces.Tokenizer
	service   interfaces.ImportService
}

// Option customises an Importer during construction.
type Option func(*Importer)

// WithLoggerProvider injects the provider used to derive module-scoped
// loggers, replacing the go-logger provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(i *Importer) {
		i.provider = provider
	}
}

// WithLogger injects a single logger used for every module. It takes
// precedence over any provider.
func WithLogger(logger interfaces.Logger) Option {
	return func(i *Importer) {
		i.logger = logger
	}
}

// WithTokenizer replaces the goldmark tokenizer, mainly for tests.
func WithTokenizer(tok interfaces.Tokenizer) Option {
	return func(i *Importer) {
		i.tokenizer = tok
	}
}

// New builds an Importer from the supplied configuration.
func New(cfg Config, opts ...Option) (*Importer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid richtext configuration").
			WithTextCode(configInvalidCode)
	}
	if cfg.BaseFontSize == 0 {
		cfg.BaseFontSize = document.DefaultBaseFontSize
	}

	imp := &Importer{cfg: cfg}
	for _, opt := range opts {
		opt(imp)
	}

	if imp.logger == nil && imp.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		imp.provider = provider
	}
	if imp.logger == nil {
		imp.logger = logging.ModuleLogger(imp.provider, "")
	}

	if imp.tokenizer == nil {
		imp.tokenizer = tokenizer.New(tokenizer.Config{
			Features: cfg.Features,
			Logger:   imp.moduleLogger(logging.TokenizerLogger),
		})
	}

	service, err := markdown.NewService(markdown.Config{
		BasePath:     cfg.Markdown.BasePath,
		Pattern:      cfg.Markdown.Pattern,
		Recursive:    cfg.Markdown.Recursive,
		Features:     cfg.Features,
		BaseFontSize: cfg.BaseFontSize,
		Logger:       imp.moduleLogger(logging.MarkdownLogger),
	}, imp.tokenizer)
	if err != nil {
		return nil, err
	}
	imp.service = service

	return imp, nil
}

// moduleLogger derives a namespaced logger when a provider is available and
// otherwise reuses the injected logger.
func (i *Importer) moduleLogger(derive func(interfaces.LoggerProvider) interfaces.Logger) interfaces.Logger {
	if i.provider != nil {
		return derive(i.provider)
	}
	return i.logger
}

// Import converts the markdown source into a fresh document.
func (i *Importer) Import(ctx context.Context, source []byte) (*document.Document, error) {
	doc := document.New()
	doc.SetBaseFontSize(i.cfg.BaseFontSize)
	if err := i.ImportInto(ctx, doc, source); err != nil {
		return nil, err
	}
	return doc, nil
}

// ImportInto converts the markdown source into the supplied document. The
// document is cleared first; on error it keeps whatever was built before the
// conversion stopped.
func (i *Importer) ImportInto(ctx context.Context, doc *document.Document, source []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	builder := importer.New(doc, importer.Config{
		Logger: i.moduleLogger(logging.ImporterLogger),
	})
	if err := i.tokenizer.Tokenize(source, builder); err != nil {
		return fmt.Errorf("import markdown: %w", err)
	}
	return nil
}

// Service exposes the filesystem-facing workflows (load, convert, import
// file or directory) configured from Config.Markdown.
func (i *Importer) Service() interfaces.ImportService {
	return i.service
}

// CommandLogger returns the logger namespace reserved for command handlers
// built on top of Service.
func (i *Importer) CommandLogger() interfaces.Logger {
	return i.moduleLogger(logging.CommandsLogger)
}
