package richtext

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Config captures the module's construction options.
type Config struct {
	// Features selects which markdown extensions the tokenizer recognises.
	Features interfaces.Features
	// BaseFontSize is the document's reference size in points; paragraph
	// margins and heading sizes derive from it. Zero means the default.
	BaseFontSize int
	Logging      LoggingConfig
	Markdown     MarkdownConfig
}

// LoggingConfig configures the go-logger backed provider built when the
// caller does not inject a logger of their own.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	// Focus restricts output to the named logger modules.
	Focus []string
}

// MarkdownConfig configures the filesystem-facing import service.
type MarkdownConfig struct {
	BasePath  string
	Pattern   string
	Recursive bool
}

// DefaultConfig returns the configuration used when callers have no special
// requirements: all extensions on, JSON logging at info level.
func DefaultConfig() Config {
	return Config{
		Features:     interfaces.DefaultFeatures,
		BaseFontSize: document.DefaultBaseFontSize,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Markdown: MarkdownConfig{
			BasePath:  ".",
			Pattern:   "*.md",
			Recursive: true,
		},
	}
}

// Validate reports configuration mistakes before any component is built.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseFontSize, validation.Min(0)),
		validation.Field(&c.Logging),
	)
}

// Validate implements validation.Validatable.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&c.Format, validation.In("", "json", "console", "pretty")),
	)
}
