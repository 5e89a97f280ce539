package importer

import (
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/event"
)

// EnterBlock implements event.Listener.
func (b *Builder) EnterBlock(kind event.BlockKind, detail event.BlockDetail) error {
	st := &b.st
	st.blockKind = kind

	switch kind {
	case event.BlockParagraph:
		if len(st.listStack) == 0 {
			st.needsInsertBlock = true
		} else if st.emptyListItem {
			// The list item's own block is still empty; the first
			// paragraph reuses it instead of inserting a new one.
			st.emptyListItem = false
		} else {
			b.logger.Debug("paragraph inside list item", "depth", len(st.listStack))
			st.needsInsertBlock = true
		}

	case event.BlockQuote:
		st.blockQuoteDepth++
		b.logger.Debug("quote entered", "level", st.blockQuoteDepth)

	case event.BlockCode:
		d, _ := detail.(event.CodeBlockDetail)
		st.codeBlock = true
		st.codeLanguage = d.Language
		st.needsInsertBlock = true
		b.logger.Debug("code block entered", "language", d.Language, "quote_level", st.blockQuoteDepth)

	case event.BlockHeading:
		d, _ := detail.(event.HeadingDetail)
		blockFormat := document.BlockFormat{HeadingLevel: d.Level}
		charFormat := document.CharFormat{
			Bold: true,
			// H1 through H6: +3 down to -2 relative to the base size.
			SizeAdjustment: 4 - d.Level,
		}
		st.needsInsertBlock = false
		b.cursor.InsertBlock(blockFormat, charFormat)
		b.logger.Debug("heading entered", "level", d.Level)

	case event.BlockListItem:
		st.needsInsertBlock = false
		if len(st.listStack) == 0 {
			return nil
		}
		d, _ := detail.(event.ListItemDetail)
		list := st.listStack[len(st.listStack)-1]
		blockFormat := list.ItemAt(list.Count() - 1).Format()
		blockFormat.Marker = itemMarker(d)
		if !st.emptyList {
			b.cursor.InsertBlock(blockFormat, document.CharFormat{})
			list.Add(b.cursor.Block())
		}
		b.cursor.SetBlockFormat(blockFormat)
		// The first item reuses the block the list insertion created.
		st.emptyList = false
		st.listItem = true
		st.emptyListItem = true

	case event.BlockUnorderedList:
		d, _ := detail.(event.UnorderedListDetail)
		format := document.ListFormat{
			Indent: len(st.listStack) + 1,
			Style:  bulletStyle(d.Marker),
		}
		b.logger.Debug("unordered list entered", "marker", string(d.Marker), "depth", len(st.listStack))
		st.listStack = append(st.listStack, b.cursor.InsertList(format))
		st.emptyList = true

	case event.BlockOrderedList:
		d, _ := detail.(event.OrderedListDetail)
		format := document.ListFormat{
			Indent:       len(st.listStack) + 1,
			Style:        document.ListDecimal,
			Start:        d.Start,
			NumberSuffix: string(d.Delimiter),
		}
		b.logger.Debug("ordered list entered", "delimiter", string(d.Delimiter), "depth", len(st.listStack))
		st.listStack = append(st.listStack, b.cursor.InsertList(format))
		st.emptyList = true

	case event.BlockTable:
		st.tableColumnCount = 0
		st.tableRowCount = 0
		// Real dimensions are unknown until rows arrive; start at 1x1 and
		// grow incrementally.
		st.table = b.cursor.InsertTable(1, 1)

	case event.BlockTableRow:
		if st.table == nil {
			return nil
		}
		st.tableRowCount++
		clear(st.nonEmptyCells)
		if st.table.Rows() < st.tableRowCount {
			st.table.AppendRows(1)
		}
		st.tableCol = -1
		b.logger.Debug("table row entered", "rows", st.table.Rows())

	case event.BlockTableHeaderCell:
		if st.table == nil {
			return nil
		}
		st.tableColumnCount++
		st.tableCol++
		if st.table.Columns() < st.tableColumnCount {
			st.table.AppendColumns(1)
		}
		cell := st.table.CellAt(st.tableRowCount-1, st.tableCol)
		if cell == nil {
			b.logger.Warn("malformed table in markdown input")
			return malformedTableError(st.tableRowCount-1, st.tableCol)
		}
		format := cell.Format()
		format.Bold = true
		cell.SetFormat(format)

	case event.BlockTableDataCell:
		if st.table == nil {
			return nil
		}
		d, _ := detail.(event.TableCellDetail)
		st.tableCol++
		cell := st.table.CellAt(st.tableRowCount-1, st.tableCol)
		if cell == nil {
			b.logger.Warn("malformed table in markdown input")
			return malformedTableError(st.tableRowCount-1, st.tableCol)
		}
		b.cursor.MoveToCell(cell)
		blockFormat := b.cursor.BlockFormat()
		blockFormat.Alignment = cellAlignment(d.Alignment)
		b.cursor.SetBlockFormat(blockFormat)
		b.logger.Debug("table data cell entered", "column", st.tableCol, "alignment", blockFormat.Alignment.String())

	case event.BlockHorizontalRule:
		b.cursor.InsertBlock(document.BlockFormat{HorizontalRule: true}, document.CharFormat{})
	}

	return nil
}

// LeaveBlock implements event.Listener.
func (b *Builder) LeaveBlock(kind event.BlockKind, _ event.BlockDetail) error {
	st := &b.st

	switch kind {
	case event.BlockUnorderedList, event.BlockOrderedList:
		if n := len(st.listStack); n > 0 {
			st.listStack = st.listStack[:n-1]
		}
		b.logger.Debug("list ended", "depth", len(st.listStack))

	case event.BlockTableRow:
		b.resolveRowMerges()

	case event.BlockQuote:
		b.logger.Debug("quote ended", "level", st.blockQuoteDepth)
		st.blockQuoteDepth--
		st.needsInsertBlock = true

	case event.BlockTable:
		if st.table != nil {
			b.logger.Debug("table ended", "columns", st.table.Columns(), "rows", st.table.Rows())
		}
		st.table = nil
		b.cursor.MoveToEnd()

	case event.BlockListItem:
		st.listItem = false

	case event.BlockCode:
		st.codeBlock = false
		st.codeLanguage = ""
		st.needsInsertBlock = true

	case event.BlockHeading:
		b.applyHeadingAnchor()
		b.cursor.SetCharFormat(document.CharFormat{})
	}

	return nil
}

// applyHeadingAnchor derives a slug from the heading's text so views can
// address the block, mirroring auto heading identifiers.
func (b *Builder) applyHeadingAnchor() {
	block := b.cursor.Block()
	if block == nil {
		return
	}
	text := strings.TrimSpace(block.PlainText())
	if text == "" {
		return
	}
	anchor, err := slug.Normalize(text)
	if err != nil || anchor == "" {
		return
	}
	format := block.Format()
	format.Anchor = anchor
	block.SetFormat(format)
}

func itemMarker(d event.ListItemDetail) document.Marker {
	if !d.IsTask {
		return document.NoMarker
	}
	if d.TaskChecked {
		return document.MarkerChecked
	}
	return document.MarkerUnchecked
}

func bulletStyle(marker byte) document.ListStyle {
	switch marker {
	case '*':
		return document.ListCircle
	case '+':
		return document.ListSquare
	default: // including '-'
		return document.ListDisc
	}
}

func cellAlignment(a event.Alignment) document.Alignment {
	switch a {
	case event.AlignCenter:
		return document.AlignCenter
	case event.AlignRight:
		return document.AlignRight
	default: // including AlignDefault
		return document.AlignLeft
	}
}
