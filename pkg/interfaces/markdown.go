package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-richtext/document"
)

// SourceFile represents a markdown file with parsed metadata and body. The
// struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type SourceFile struct {
	Path         string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so
	// repeated import runs can detect unchanged files cheaply.
	Checksum []byte
}

// FrontMatter models metadata extracted from markdown files. The Custom map
// keeps domain-specific keys available without widening the struct.
type FrontMatter struct {
	Title  string         `yaml:"title" json:"title"`
	Slug   string         `yaml:"slug" json:"slug"`
	Tags   []string       `yaml:"tags" json:"tags"`
	Author string         `yaml:"author" json:"author"`
	Date   time.Time      `yaml:"date" json:"date"`
	Draft  bool           `yaml:"draft" json:"draft"`
	Custom map[string]any `yaml:",inline" json:"custom"`
	Raw    map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how source files are discovered on disk.
type LoadOptions struct {
	Pattern   string
	Recursive *bool
}

// ImportedDocument pairs a source file with the rich-text document built
// from it.
type ImportedDocument struct {
	ID       uuid.UUID          `json:"id"`
	Path     string             `json:"path"`
	Title    string             `json:"title,omitempty"`
	Document *document.Document `json:"document"`
}

// ImportResult aggregates the outcome of one import run.
type ImportResult struct {
	Documents []*ImportedDocument `json:"documents"`
	Errors    []error             `json:"-"`
}

// ImportService exposes the file-centric workflows around the rich-text
// importer: loading markdown sources, converting them, and importing whole
// directories.
type ImportService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*SourceFile, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*SourceFile, error)
	Convert(ctx context.Context, source []byte) (*document.Document, error)
	ImportFile(ctx context.Context, path string, opts LoadOptions) (*ImportResult, error)
	ImportDirectory(ctx context.Context, dir string, opts LoadOptions) (*ImportResult, error)
}
