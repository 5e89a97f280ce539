// Package tokenizer turns markdown source into the structural parse event
// stream the document builder consumes. It is backed by the goldmark
// engine: the source is parsed into an AST once, then flattened into
// enter/leave/text events in document order.
package tokenizer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-richtext/event"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Goldmark implements interfaces.Tokenizer using the goldmark engine. The
// tokenizer is stateless across calls so a single instance can be reused.
type Goldmark struct {
	md     goldmark.Markdown
	logger interfaces.Logger
}

var _ interfaces.Tokenizer = (*Goldmark)(nil)

// Config carries the tokenizer's construction options.
type Config struct {
	Features interfaces.Features
	Logger   interfaces.Logger
}

// New constructs a tokenizer recognising the extensions selected by the
// feature bitmask.
func New(cfg Config) *Goldmark {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	options := []goldmark.Option{}
	if exts := collectExtensions(cfg.Features); len(exts) > 0 {
		options = append(options, goldmark.WithExtensions(exts...))
	}

	return &Goldmark{
		md:     goldmark.New(options...),
		logger: logger,
	}
}

// Tokenize parses the source and drives the listener once per event in
// document order. The first listener error stops the walk and is returned
// unchanged.
func (g *Goldmark) Tokenize(source []byte, listener event.Listener) error {
	root := g.md.Parser().Parse(text.NewReader(source))
	g.logger.Debug("tokenizing markdown", "bytes", len(source))
	e := &emitter{source: source, listener: listener}
	return e.node(root)
}

func collectExtensions(features interfaces.Features) []goldmark.Extender {
	var exts []goldmark.Extender
	if features.Has(interfaces.FeatureTables) {
		exts = append(exts, extension.Table)
	}
	if features.Has(interfaces.FeatureStrikethrough) {
		exts = append(exts, extension.Strikethrough)
	}
	if features.Has(interfaces.FeatureTaskLists) {
		exts = append(exts, extension.TaskList)
	}
	if features.Has(interfaces.FeatureAutolinks) {
		exts = append(exts, extension.Linkify)
	}
	return exts
}

// emitter walks the AST recursively, translating nodes into events.
type emitter struct {
	source   []byte
	listener event.Listener
}

func (e *emitter) node(n ast.Node) error {
	switch v := n.(type) {
	case *ast.Document:
		return e.children(n)
	case *ast.Paragraph:
		return e.block(event.BlockParagraph, nil, n)
	case *ast.TextBlock:
		// Tight list items wrap their text in a TextBlock; the builder
		// treats it like a paragraph.
		return e.block(event.BlockParagraph, nil, n)
	case *ast.Heading:
		return e.block(event.BlockHeading, event.HeadingDetail{Level: v.Level}, n)
	case *ast.Blockquote:
		return e.block(event.BlockQuote, nil, n)
	case *ast.FencedCodeBlock:
		detail := event.CodeBlockDetail{Language: string(v.Language(e.source))}
		if v.Info != nil {
			detail.Info = string(v.Info.Segment.Value(e.source))
		}
		return e.codeBlock(detail, n)
	case *ast.CodeBlock:
		return e.codeBlock(event.CodeBlockDetail{}, n)
	case *ast.List:
		return e.list(v)
	case *ast.ListItem:
		return e.listItem(v)
	case *ast.ThematicBreak:
		if err := e.listener.EnterBlock(event.BlockHorizontalRule, nil); err != nil {
			return err
		}
		return e.listener.LeaveBlock(event.BlockHorizontalRule, nil)
	case *ast.HTMLBlock:
		return e.htmlBlock(v)
	case *east.Table:
		return e.table(v)
	case *ast.Text:
		return e.text(v)
	case *ast.String:
		if len(v.Value) == 0 {
			return nil
		}
		return e.listener.Text(event.TextNormal, v.Value)
	case *ast.CodeSpan:
		return e.codeSpan(n)
	case *ast.Emphasis:
		kind := event.SpanEmphasis
		if v.Level >= 2 {
			kind = event.SpanStrong
		}
		return e.span(kind, nil, n)
	case *ast.Link:
		detail := event.LinkDetail{Href: string(v.Destination), Title: string(v.Title)}
		return e.span(event.SpanLink, detail, n)
	case *ast.AutoLink:
		return e.autoLink(v)
	case *ast.Image:
		detail := event.ImageDetail{Source: string(v.Destination), Title: string(v.Title)}
		return e.span(event.SpanImage, detail, n)
	case *ast.RawHTML:
		return e.segments(event.TextRawHTML, v.Segments)
	case *east.TaskCheckBox:
		// Reported through the enclosing list item's detail.
		return nil
	default:
		// Unknown nodes contribute their children; the builder ignores
		// kinds it does not model.
		return e.children(n)
	}
}

func (e *emitter) children(n ast.Node) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := e.node(c); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) block(kind event.BlockKind, detail event.BlockDetail, n ast.Node) error {
	if err := e.listener.EnterBlock(kind, detail); err != nil {
		return err
	}
	if err := e.children(n); err != nil {
		return err
	}
	return e.listener.LeaveBlock(kind, detail)
}

func (e *emitter) span(kind event.SpanKind, detail event.SpanDetail, n ast.Node) error {
	if err := e.listener.EnterSpan(kind, detail); err != nil {
		return err
	}
	if err := e.children(n); err != nil {
		return err
	}
	return e.listener.LeaveSpan(kind, detail)
}

func (e *emitter) codeBlock(detail event.CodeBlockDetail, n ast.Node) error {
	if err := e.listener.EnterBlock(event.BlockCode, detail); err != nil {
		return err
	}
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if err := e.listener.Text(event.TextCode, seg.Value(e.source)); err != nil {
			return err
		}
	}
	return e.listener.LeaveBlock(event.BlockCode, detail)
}

// codeSpan emits the span's literal content as code text; goldmark stores
// it as child text segments.
func (e *emitter) codeSpan(n ast.Node) error {
	if err := e.listener.EnterSpan(event.SpanCode, nil); err != nil {
		return err
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		if err := e.listener.Text(event.TextCode, t.Segment.Value(e.source)); err != nil {
			return err
		}
	}
	return e.listener.LeaveSpan(event.SpanCode, nil)
}

func (e *emitter) list(v *ast.List) error {
	if v.IsOrdered() {
		detail := event.OrderedListDetail{Start: v.Start, Delimiter: v.Marker}
		return e.block(event.BlockOrderedList, detail, v)
	}
	detail := event.UnorderedListDetail{Marker: v.Marker}
	return e.block(event.BlockUnorderedList, detail, v)
}

func (e *emitter) listItem(v *ast.ListItem) error {
	detail := event.ListItemDetail{}
	if cb := taskCheckBox(v); cb != nil {
		detail.IsTask = true
		detail.TaskChecked = cb.IsChecked
	}
	return e.block(event.BlockListItem, detail, v)
}

// taskCheckBox returns the checkbox opening the item's first text block,
// if the task list extension produced one.
func taskCheckBox(item *ast.ListItem) *east.TaskCheckBox {
	first := item.FirstChild()
	if first == nil {
		return nil
	}
	switch first.(type) {
	case *ast.TextBlock, *ast.Paragraph:
	default:
		return nil
	}
	cb, _ := first.FirstChild().(*east.TaskCheckBox)
	return cb
}

func (e *emitter) table(v *east.Table) error {
	if err := e.listener.EnterBlock(event.BlockTable, nil); err != nil {
		return err
	}
	for row := v.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *east.TableHeader:
			if err := e.tableRow(row, true); err != nil {
				return err
			}
		case *east.TableRow:
			if err := e.tableRow(row, false); err != nil {
				return err
			}
		}
	}
	return e.listener.LeaveBlock(event.BlockTable, nil)
}

func (e *emitter) tableRow(row ast.Node, header bool) error {
	if err := e.listener.EnterBlock(event.BlockTableRow, nil); err != nil {
		return err
	}
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cell, ok := c.(*east.TableCell)
		if !ok {
			continue
		}
		kind := event.BlockTableDataCell
		if header {
			kind = event.BlockTableHeaderCell
		}
		detail := event.TableCellDetail{Alignment: cellAlignment(cell.Alignment)}
		if err := e.block(kind, detail, cell); err != nil {
			return err
		}
	}
	return e.listener.LeaveBlock(event.BlockTableRow, nil)
}

func cellAlignment(a east.Alignment) event.Alignment {
	switch a {
	case east.AlignLeft:
		return event.AlignLeft
	case east.AlignCenter:
		return event.AlignCenter
	case east.AlignRight:
		return event.AlignRight
	default:
		return event.AlignDefault
	}
}

func (e *emitter) text(v *ast.Text) error {
	value := v.Segment.Value(e.source)
	if len(value) > 0 {
		if err := e.listener.Text(event.TextNormal, value); err != nil {
			return err
		}
	}
	if v.HardLineBreak() {
		return e.listener.Text(event.TextHardBreak, []byte("\n"))
	}
	if v.SoftLineBreak() {
		return e.listener.Text(event.TextSoftBreak, []byte(" "))
	}
	return nil
}

func (e *emitter) autoLink(v *ast.AutoLink) error {
	url := v.URL(e.source)
	label := v.Label(e.source)
	if v.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(url, []byte("mailto:")) {
		url = append([]byte("mailto:"), url...)
	}
	detail := event.LinkDetail{Href: string(url)}
	if err := e.listener.EnterSpan(event.SpanLink, detail); err != nil {
		return err
	}
	if err := e.listener.Text(event.TextNormal, label); err != nil {
		return err
	}
	return e.listener.LeaveSpan(event.SpanLink, detail)
}

func (e *emitter) htmlBlock(v *ast.HTMLBlock) error {
	if err := e.listener.EnterBlock(event.BlockOther, nil); err != nil {
		return err
	}
	lines := v.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if err := e.listener.Text(event.TextRawHTML, seg.Value(e.source)); err != nil {
			return err
		}
	}
	if v.HasClosure() {
		if err := e.listener.Text(event.TextRawHTML, v.ClosureLine.Value(e.source)); err != nil {
			return err
		}
	}
	return e.listener.LeaveBlock(event.BlockOther, nil)
}

func (e *emitter) segments(kind event.TextKind, segments *text.Segments) error {
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		if err := e.listener.Text(kind, seg.Value(e.source)); err != nil {
			return err
		}
	}
	return nil
}
