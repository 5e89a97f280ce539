package importer

import (
	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/event"
)

// EnterSpan implements event.Listener. Each span pushes a character-format
// snapshot; the top of the stack is applied as-is, so nested spans show
// only the innermost span's properties.
func (b *Builder) EnterSpan(kind event.SpanKind, detail event.SpanDetail) error {
	st := &b.st

	var charFormat document.CharFormat
	switch kind {
	case event.SpanEmphasis:
		charFormat.Italic = true

	case event.SpanStrong:
		charFormat.Bold = true

	case event.SpanLink:
		d, _ := detail.(event.LinkDetail)
		charFormat.AnchorHref = d.Href
		charFormat.AnchorName = d.Title
		charFormat.Foreground = document.LinkForeground
		b.logger.Debug("anchor", "href", d.Href, "title", d.Title)

	case event.SpanImage:
		st.imageSpan = true
		d, _ := detail.(event.ImageDetail)
		if st.needsInsertBlock {
			b.insertBlock()
		}
		b.logger.Debug("image", "source", d.Source, "title", d.Title)
		b.cursor.InsertImage(document.ImageFormat{Source: d.Source, Title: d.Title})

	case event.SpanCode:
		charFormat.Monospace = true

	case event.SpanStrikethrough:
		charFormat.Strikeout = true
	}

	st.spanFormats = append(st.spanFormats, charFormat)
	b.cursor.SetCharFormat(charFormat)
	return nil
}

// LeaveSpan implements event.Listener.
func (b *Builder) LeaveSpan(kind event.SpanKind, _ event.SpanDetail) error {
	st := &b.st

	var charFormat document.CharFormat
	if n := len(st.spanFormats); n > 0 {
		st.spanFormats = st.spanFormats[:n-1]
		if n > 1 {
			charFormat = st.spanFormats[n-2]
		}
	}
	b.cursor.SetCharFormat(charFormat)

	if kind == event.SpanImage {
		st.imageSpan = false
	}
	return nil
}

// Text implements event.Listener.
func (b *Builder) Text(kind event.TextKind, text []byte) error {
	st := &b.st

	if st.imageSpan {
		// Alt text; the image element already replaced it.
		return nil
	}
	if st.needsInsertBlock {
		b.insertBlock()
	}

	s := string(text)
	switch kind {
	case event.TextNormal:
		if st.htmlTagDepth > 0 {
			st.htmlAccumulator.WriteString(s)
			s = ""
		}

	case event.TextNullChar:
		// CommonMark-required replacement for NUL.
		s = "�"

	case event.TextHardBreak:
		s = "\n"

	case event.TextSoftBreak:
		s = " "

	case event.TextCode:
		// The enclosing code span or code block already set the character
		// format; the content is inserted as-is.

	case event.TextEntity:
		b.cursor.InsertMarkup(s)
		s = ""

	case event.TextRawHTML:
		opens, closes := scanTags(s)
		st.htmlTagDepth += opens - closes
		st.htmlAccumulator.WriteString(s)
		s = ""
		if st.htmlTagDepth == 0 {
			// All open tags are closed; flush the buffered markup.
			b.logger.Debug("raw html flushed", "markup", st.htmlAccumulator.String())
			b.cursor.InsertMarkup(st.htmlAccumulator.String())
			if n := len(st.spanFormats); n > 0 {
				b.cursor.SetCharFormat(st.spanFormats[n-1])
			} else {
				b.cursor.SetCharFormat(document.CharFormat{})
			}
			st.htmlAccumulator.Reset()
		}
	}

	if st.blockKind == event.BlockTableDataCell && st.table != nil {
		st.nonEmptyCells[st.tableCol] = struct{}{}
	}

	if s != "" {
		b.cursor.InsertText(s)
	}
	if b.cursor.CurrentList() != nil {
		// The list supplies the visual indent; keep the block's own
		// indent at zero to avoid doubling it.
		blockFormat := b.cursor.BlockFormat()
		blockFormat.Indent = 0
		b.cursor.SetBlockFormat(blockFormat)
	}
	return nil
}
