package markdowncmd

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

type stubService struct {
	importFileCalls      []string
	importDirectoryCalls []string
	lastOpts             interfaces.LoadOptions
	result               *interfaces.ImportResult
	err                  error
}

func (s *stubService) Load(_ context.Context, path string, _ interfaces.LoadOptions) (*interfaces.SourceFile, error) {
	return &interfaces.SourceFile{Path: path}, s.err
}

func (s *stubService) LoadDirectory(_ context.Context, _ string, _ interfaces.LoadOptions) ([]*interfaces.SourceFile, error) {
	return nil, s.err
}

func (s *stubService) Convert(_ context.Context, _ []byte) (*document.Document, error) {
	return document.New(), s.err
}

func (s *stubService) ImportFile(_ context.Context, path string, opts interfaces.LoadOptions) (*interfaces.ImportResult, error) {
	s.importFileCalls = append(s.importFileCalls, path)
	s.lastOpts = opts
	return s.result, s.err
}

func (s *stubService) ImportDirectory(_ context.Context, dir string, opts interfaces.LoadOptions) (*interfaces.ImportResult, error) {
	s.importDirectoryCalls = append(s.importDirectoryCalls, dir)
	s.lastOpts = opts
	return s.result, s.err
}

func TestImportFileCommandValidation(t *testing.T) {
	if err := (ImportFileCommand{Path: "a.md"}).Validate(); err != nil {
		t.Errorf("valid command rejected: %v", err)
	}
	if err := (ImportFileCommand{}).Validate(); err == nil {
		t.Error("empty path should fail validation")
	}
	if err := (ImportFileCommand{Path: "   "}).Validate(); err == nil {
		t.Error("blank path should fail validation")
	}
}

func TestImportDirectoryCommandValidation(t *testing.T) {
	if err := (ImportDirectoryCommand{Directory: "docs"}).Validate(); err != nil {
		t.Errorf("valid command rejected: %v", err)
	}
	if err := (ImportDirectoryCommand{}).Validate(); err == nil {
		t.Error("empty directory should fail validation")
	}
}

func TestMessageTypes(t *testing.T) {
	if got := (ImportFileCommand{}).Type(); got != "richtext.markdown.import_file" {
		t.Errorf("type = %q", got)
	}
	if got := (ImportDirectoryCommand{}).Type(); got != "richtext.markdown.import_directory" {
		t.Errorf("type = %q", got)
	}
}

func TestImportFileHandlerDeliversResult(t *testing.T) {
	svc := &stubService{result: &interfaces.ImportResult{
		Documents: []*interfaces.ImportedDocument{{Path: "a.md"}},
	}}
	var delivered *interfaces.ImportResult
	h := NewImportFileHandler(svc, nil, func(r *interfaces.ImportResult) { delivered = r })

	if err := h.Execute(context.Background(), ImportFileCommand{Path: "a.md"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(svc.importFileCalls) != 1 || svc.importFileCalls[0] != "a.md" {
		t.Errorf("service calls = %v", svc.importFileCalls)
	}
	if delivered == nil || len(delivered.Documents) != 1 {
		t.Errorf("sink result = %+v", delivered)
	}
}

func TestImportFileHandlerRejectsInvalidMessage(t *testing.T) {
	svc := &stubService{result: &interfaces.ImportResult{}}
	h := NewImportFileHandler(svc, nil, nil)

	if err := h.Execute(context.Background(), ImportFileCommand{}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(svc.importFileCalls) != 0 {
		t.Error("service should not run for an invalid message")
	}
}

func TestImportDirectoryHandlerForwardsOptions(t *testing.T) {
	recursive := true
	svc := &stubService{result: &interfaces.ImportResult{}}
	h := NewImportDirectoryHandler(svc, nil, nil)

	msg := ImportDirectoryCommand{Directory: "docs", Pattern: "*.markdown", Recursive: &recursive}
	if err := h.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(svc.importDirectoryCalls) != 1 || svc.importDirectoryCalls[0] != "docs" {
		t.Errorf("service calls = %v", svc.importDirectoryCalls)
	}
	if svc.lastOpts.Pattern != "*.markdown" {
		t.Errorf("pattern = %q", svc.lastOpts.Pattern)
	}
	if svc.lastOpts.Recursive == nil || !*svc.lastOpts.Recursive {
		t.Error("recursive override lost")
	}
}

func TestImportDirectoryHandlerPropagatesServiceError(t *testing.T) {
	boom := errors.New("boom")
	svc := &stubService{err: boom}
	h := NewImportDirectoryHandler(svc, nil, nil)

	err := h.Execute(context.Background(), ImportDirectoryCommand{Directory: "docs"})
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}
