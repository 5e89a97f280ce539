package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/internal/importer"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/tokenizer"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Config controls how the markdown import service discovers and converts files.
type Config struct {
	BasePath     string
	Pattern      string
	Recursive    bool
	Features     interfaces.Features
	BaseFontSize int
	Logger       interfaces.Logger
}

// Service implements interfaces.ImportService for filesystem-backed sources.
type Service struct {
	cfg       Config
	tokenizer interfaces.Tokenizer
	loader    *Loader
	logger    interfaces.Logger
}

var _ interfaces.ImportService = (*Service)(nil)

// NewService constructs an import service using an underlying loader. When
// tok is nil, a goldmark tokenizer with the configured features is created.
func NewService(cfg Config, tok interfaces.Tokenizer) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	return newService(cfg, tok, filesystem), nil
}

// NewServiceFS is NewService over a caller-supplied filesystem, used by
// tests and embedded content.
func NewServiceFS(cfg Config, tok interfaces.Tokenizer, filesystem fs.FS) *Service {
	return newService(cfg, tok, filesystem)
}

func newService(cfg Config, tok interfaces.Tokenizer, filesystem fs.FS) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	if tok == nil {
		tok = tokenizer.New(tokenizer.Config{
			Features: cfg.Features,
			Logger:   logger,
		})
	}

	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Service{
		cfg:       cfg,
		tokenizer: tok,
		loader:    loader,
		logger:    logger,
	}
}

// Load reads a single markdown source relative to the configured base path.
func (s *Service) Load(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.SourceFile, error) {
	return s.loader.LoadFile(ctx, s.normalisePath(path), opts)
}

// LoadDirectory reads every markdown source within the supplied directory.
func (s *Service) LoadDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.SourceFile, error) {
	return s.loader.LoadDirectory(ctx, s.normalisePath(dir), opts)
}

// Convert builds a rich-text document from raw markdown bytes.
func (s *Service) Convert(ctx context.Context, source []byte) (*document.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	doc := document.New()
	if s.cfg.BaseFontSize > 0 {
		doc.SetBaseFontSize(s.cfg.BaseFontSize)
	}
	builder := importer.New(doc, importer.Config{Logger: s.logger})
	if err := s.tokenizer.Tokenize(source, builder); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return doc, nil
}

// ImportFile loads and converts one source file.
func (s *Service) ImportFile(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.ImportResult, error) {
	file, err := s.Load(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	imported, err := s.importSource(ctx, file)
	if err != nil {
		return nil, err
	}

	return &interfaces.ImportResult{
		Documents: []*interfaces.ImportedDocument{imported},
	}, nil
}

// ImportDirectory loads and converts every matching source under dir.
// Conversion failures are collected per file; one bad source does not abort
// the run.
func (s *Service) ImportDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) (*interfaces.ImportResult, error) {
	files, err := s.LoadDirectory(ctx, dir, opts)
	if err != nil {
		return nil, err
	}

	result := &interfaces.ImportResult{}
	for _, file := range files {
		imported, err := s.importSource(ctx, file)
		if err != nil {
			s.logger.Warn("import failed", "path", file.Path, "error", err)
			result.Errors = append(result.Errors, fmt.Errorf("import %s: %w", file.Path, err))
			continue
		}
		result.Documents = append(result.Documents, imported)
	}
	return result, nil
}

func (s *Service) importSource(ctx context.Context, file *interfaces.SourceFile) (*interfaces.ImportedDocument, error) {
	doc, err := s.Convert(ctx, file.Body)
	if err != nil {
		return nil, err
	}

	imported := &interfaces.ImportedDocument{
		ID:       uuid.New(),
		Path:     file.Path,
		Title:    sourceTitle(file),
		Document: doc,
	}

	logging.WithImportContext(s.logger, file.Path, imported.ID.String()).Debug(
		"imported markdown source",
		"blocks", len(doc.Blocks()),
		"tables", len(doc.Tables()),
	)

	return imported, nil
}

// sourceTitle prefers the front matter title and falls back to the file name.
func sourceTitle(file *interfaces.SourceFile) string {
	if title := strings.TrimSpace(file.FrontMatter.Title); title != "" {
		return title
	}
	base := filepath.Base(file.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *Service) normalisePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) && strings.TrimSpace(s.cfg.BasePath) != "" {
		if rel, err := filepath.Rel(s.cfg.BasePath, clean); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(clean)
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
