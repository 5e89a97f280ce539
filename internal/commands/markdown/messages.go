// Package markdowncmd defines the command messages and handlers for
// markdown import workflows.
package markdowncmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	importFileMessageType      = "richtext.markdown.import_file"
	importDirectoryMessageType = "richtext.markdown.import_directory"
)

// ImportFileCommand converts a single markdown file into a rich-text
// document.
type ImportFileCommand struct {
	// Path selects the markdown file, relative to the service base path.
	Path string `json:"path"`
}

// Type implements command.Message.
func (ImportFileCommand) Type() string { return importFileMessageType }

// Validate ensures a path is present before handlers execute.
func (cmd ImportFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("richtext.markdown.import_file.path_required", "path is required")
			}
			return nil
		})),
	)
}

// ImportDirectoryCommand triggers a filesystem walk for markdown documents
// under the provided Directory and converts every match.
type ImportDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load markdown files from.
	Directory string `json:"directory"`
	// Pattern overrides the service's file glob when non-empty.
	Pattern string `json:"pattern,omitempty"`
	// Recursive overrides the service's directory traversal setting.
	Recursive *bool `json:"recursive,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("richtext.markdown.import_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
