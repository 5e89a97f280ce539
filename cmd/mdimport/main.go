// Command mdimport converts markdown files into rich-text documents and
// prints them as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	richtext "github.com/goliatone/go-richtext"
	markdowncmd "github.com/goliatone/go-richtext/internal/commands/markdown"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("mdimport: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mdimport", flag.ExitOnError)
	baseDir := fs.String("base-dir", ".", "Root directory markdown paths are resolved against")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories during discovery")
	file := fs.String("file", "", "Import a single markdown file instead of a directory")
	directory := fs.String("directory", ".", "Directory to import, relative to the base directory")
	logLevel := fs.String("log-level", "warn", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")
	pretty := fs.Bool("pretty", false, "Indent the JSON output")
	tables := fs.Bool("tables", true, "Recognise pipe tables")
	taskLists := fs.Bool("task-lists", true, "Recognise checkbox list items")
	strikethrough := fs.Bool("strikethrough", true, "Recognise tilde strikethrough spans")
	autolinks := fs.Bool("autolinks", true, "Recognise bare URL autolinks")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := richtext.DefaultConfig()
	cfg.Features = selectFeatures(*tables, *taskLists, *strikethrough, *autolinks)
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	cfg.Markdown.BasePath = *baseDir
	cfg.Markdown.Pattern = *pattern
	cfg.Markdown.Recursive = *recursive

	imp, err := richtext.New(cfg)
	if err != nil {
		return fmt.Errorf("configure importer: %w", err)
	}

	var result *interfaces.ImportResult
	sink := func(r *interfaces.ImportResult) { result = r }

	ctx := context.Background()
	if *file != "" {
		handler := markdowncmd.NewImportFileHandler(imp.Service(), imp.CommandLogger(), sink)
		err = handler.Execute(ctx, markdowncmd.ImportFileCommand{Path: *file})
	} else {
		handler := markdowncmd.NewImportDirectoryHandler(imp.Service(), imp.CommandLogger(), sink)
		err = handler.Execute(ctx, markdowncmd.ImportDirectoryCommand{
			Directory: *directory,
			Pattern:   *pattern,
			Recursive: recursive,
		})
	}
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("no import result produced")
	}

	for _, importErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "mdimport: %v\n", importErr)
	}

	encoder := json.NewEncoder(out)
	if *pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d of %d sources failed to import",
			len(result.Errors), len(result.Errors)+len(result.Documents))
	}
	return nil
}

func selectFeatures(tables, taskLists, strikethrough, autolinks bool) interfaces.Features {
	var features interfaces.Features
	if tables {
		features |= interfaces.FeatureTables
	}
	if taskLists {
		features |= interfaces.FeatureTaskLists
	}
	if strikethrough {
		features |= interfaces.FeatureStrikethrough
	}
	if autolinks {
		features |= interfaces.FeatureAutolinks
	}
	return features
}
