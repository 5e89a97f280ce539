package document

import (
	"encoding/json"
	"testing"
)

func TestCursorInsertBlock(t *testing.T) {
	doc := New()
	cursor := NewCursor(doc)

	b := cursor.InsertBlock(BlockFormat{TopMargin: 8}, CharFormat{Bold: true})
	cursor.InsertText("hello")

	if got := len(doc.Blocks()); got != 1 {
		t.Fatalf("expected 1 block, got %d", got)
	}
	if b.Format().TopMargin != 8 {
		t.Fatalf("block format not applied: %#v", b.Format())
	}
	runs := b.Runs()
	if len(runs) != 1 || runs[0].Text != "hello" || !runs[0].Format.Bold {
		t.Fatalf("unexpected runs: %#v", runs)
	}
}

func TestCursorMergesRunsWithSameFormat(t *testing.T) {
	doc := New()
	cursor := NewCursor(doc)
	cursor.InsertBlock(BlockFormat{}, CharFormat{})

	cursor.InsertText("one ")
	cursor.InsertText("two")
	cursor.SetCharFormat(CharFormat{Italic: true})
	cursor.InsertText(" three")

	runs := cursor.Block().Runs()
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d: %#v", len(runs), runs)
	}
	if runs[0].Text != "one two" {
		t.Fatalf("expected merged run, got %q", runs[0].Text)
	}
	if !runs[1].Format.Italic {
		t.Fatalf("expected italic run, got %#v", runs[1])
	}
}

func TestCursorInsertList(t *testing.T) {
	doc := New()
	cursor := NewCursor(doc)

	list := cursor.InsertList(ListFormat{Indent: 1, Style: ListDecimal})
	if list.Count() != 1 {
		t.Fatalf("insertList should create the first item, got %d", list.Count())
	}
	if cursor.CurrentList() != list {
		t.Fatalf("cursor should sit inside the new list")
	}

	second := cursor.InsertBlock(BlockFormat{}, CharFormat{})
	list.Add(second)
	if list.Count() != 2 || second.List() != list {
		t.Fatalf("block not claimed by list")
	}
	if got := len(doc.Lists()); got != 1 {
		t.Fatalf("expected 1 registered list, got %d", got)
	}
}

func TestTableGrowth(t *testing.T) {
	doc := New()
	cursor := NewCursor(doc)

	table := cursor.InsertTable(1, 1)
	table.AppendColumns(2)
	table.AppendRows(1)

	if table.Rows() != 2 || table.Columns() != 3 {
		t.Fatalf("unexpected shape %dx%d", table.Rows(), table.Columns())
	}
	if cell := table.CellAt(1, 2); cell == nil {
		t.Fatalf("expected cell at (1,2)")
	}
	if cell := table.CellAt(2, 0); cell != nil {
		t.Fatalf("expected nil for out-of-range row, got %#v", cell)
	}
	if cell := table.CellAt(0, 3); cell != nil {
		t.Fatalf("expected nil for out-of-range column, got %#v", cell)
	}
}

func TestTableMergeCells(t *testing.T) {
	doc := New()
	cursor := NewCursor(doc)
	table := cursor.InsertTable(2, 3)

	table.MergeCells(1, 1, 1, 2)

	anchor := table.CellAt(1, 1)
	if anchor.ColumnSpan() != 2 {
		t.Fatalf("expected column span 2, got %d", anchor.ColumnSpan())
	}
	if got := table.CellAt(1, 2); got != anchor {
		t.Fatalf("covered position should resolve to the anchor")
	}
	if !tableCellCovered(table, 1, 2) {
		t.Fatalf("cell (1,2) should be covered")
	}
	if tableCellCovered(table, 0, 2) {
		t.Fatalf("header row must stay unmerged")
	}
}

func TestCursorMoveToCell(t *testing.T) {
	doc := New()
	cursor := NewCursor(doc)
	table := cursor.InsertTable(1, 2)

	// InsertTable parks the cursor in the first cell.
	cursor.InsertText("first")
	if got := table.CellAt(0, 0).PlainText(); got != "first" {
		t.Fatalf("expected text in first cell, got %q", got)
	}

	cell := table.CellAt(0, 1)
	cell.SetFormat(CharFormat{Bold: true})
	cursor.MoveToCell(cell)
	cursor.InsertText("second")
	runs := cell.FirstBlock().Runs()
	if len(runs) != 1 || !runs[0].Format.Bold {
		t.Fatalf("cell format should become the active text format: %#v", runs)
	}

	cursor.MoveToEnd()
	cursor.InsertBlock(BlockFormat{}, CharFormat{})
	cursor.InsertText("after")
	nodes := doc.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("expected table plus trailing block, got %d nodes", len(nodes))
	}
	if b, ok := nodes[1].(*Block); !ok || b.PlainText() != "after" {
		t.Fatalf("trailing block missing: %#v", nodes[1])
	}
}

func TestDocumentClear(t *testing.T) {
	doc := New()
	cursor := NewCursor(doc)
	cursor.InsertBlock(BlockFormat{}, CharFormat{})
	cursor.InsertList(ListFormat{Indent: 1})
	id := doc.ID()

	doc.Clear()

	if len(doc.Nodes()) != 0 || len(doc.Lists()) != 0 {
		t.Fatalf("clear should drop all content")
	}
	if doc.ID() != id {
		t.Fatalf("clear must keep document identity")
	}
}

func TestDocumentMarshalJSON(t *testing.T) {
	doc := New()
	cursor := NewCursor(doc)
	cursor.InsertBlock(BlockFormat{HeadingLevel: 2}, CharFormat{Bold: true})
	cursor.InsertText("Title")
	table := cursor.InsertTable(1, 2)
	cursor.InsertText("cell")
	table.MergeCells(0, 0, 1, 2)

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Nodes []struct {
			Type  string `json:"type"`
			Block *struct {
				Format struct {
					HeadingLevel int `json:"heading_level"`
				} `json:"format"`
			} `json:"block"`
			Table *struct {
				Columns int `json:"columns"`
				Cells   []struct {
					Covered    bool `json:"covered"`
					ColumnSpan int  `json:"column_span"`
				} `json:"cells"`
			} `json:"table"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(decoded.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(decoded.Nodes))
	}
	if decoded.Nodes[0].Block == nil || decoded.Nodes[0].Block.Format.HeadingLevel != 2 {
		t.Fatalf("heading block missing from JSON: %s", raw)
	}
	tbl := decoded.Nodes[1].Table
	if tbl == nil || tbl.Columns != 2 {
		t.Fatalf("table missing from JSON: %s", raw)
	}
	if tbl.Cells[0].ColumnSpan != 2 || !tbl.Cells[1].Covered {
		t.Fatalf("merge not reflected in JSON: %s", raw)
	}
}

func tableCellCovered(t *Table, row, col int) bool {
	return t.grid[row][col].anchor != nil
}
