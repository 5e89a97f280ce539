package document

import "encoding/json"

type documentJSON struct {
	ID           string     `json:"id"`
	BaseFontSize int        `json:"base_font_size"`
	Nodes        []nodeJSON `json:"nodes"`
	Lists        []listJSON `json:"lists,omitempty"`
}

type nodeJSON struct {
	Type  string     `json:"type"`
	Block *blockJSON `json:"block,omitempty"`
	Table *tableJSON `json:"table,omitempty"`
}

type blockJSON struct {
	Format BlockFormat `json:"format"`
	Runs   []Run       `json:"runs,omitempty"`
	List   *int        `json:"list,omitempty"`
}

type tableJSON struct {
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Cells   []cellJSON `json:"cells"`
}

type cellJSON struct {
	Row        int         `json:"row"`
	Column     int         `json:"column"`
	RowSpan    int         `json:"row_span,omitempty"`
	ColumnSpan int         `json:"column_span,omitempty"`
	Covered    bool        `json:"covered,omitempty"`
	Format     CharFormat  `json:"format"`
	Blocks     []blockJSON `json:"blocks,omitempty"`
}

type listJSON struct {
	Format ListFormat `json:"format"`
	Items  int        `json:"items"`
}

// MarshalJSON renders the document as a stable, renderer-friendly tree.
func (d *Document) MarshalJSON() ([]byte, error) {
	listIndex := make(map[*List]int, len(d.lists))
	for i, l := range d.lists {
		listIndex[l] = i
	}

	out := documentJSON{
		ID:           d.id.String(),
		BaseFontSize: d.baseFontSize,
		Nodes:        make([]nodeJSON, 0, len(d.nodes)),
	}

	for _, n := range d.nodes {
		switch v := n.(type) {
		case *Block:
			out.Nodes = append(out.Nodes, nodeJSON{
				Type:  "block",
				Block: encodeBlock(v, listIndex),
			})
		case *Table:
			out.Nodes = append(out.Nodes, nodeJSON{
				Type:  "table",
				Table: encodeTable(v, listIndex),
			})
		}
	}

	for _, l := range d.lists {
		out.Lists = append(out.Lists, listJSON{Format: l.format, Items: len(l.items)})
	}

	return json.Marshal(out)
}

func encodeBlock(b *Block, listIndex map[*List]int) *blockJSON {
	enc := &blockJSON{Format: b.format, Runs: b.runs}
	if b.list != nil {
		if idx, ok := listIndex[b.list]; ok {
			enc.List = &idx
		}
	}
	return enc
}

func encodeTable(t *Table, listIndex map[*List]int) *tableJSON {
	enc := &tableJSON{Rows: t.Rows(), Columns: t.Columns()}
	for _, row := range t.grid {
		for _, cell := range row {
			cj := cellJSON{
				Row:     cell.row,
				Column:  cell.col,
				Covered: cell.anchor != nil,
				Format:  cell.format,
			}
			if cell.anchor == nil {
				cj.RowSpan = cell.rowSpan
				cj.ColumnSpan = cell.colSpan
				for _, b := range cell.blocks {
					cj.Blocks = append(cj.Blocks, *encodeBlock(b, listIndex))
				}
			}
			enc.Cells = append(enc.Cells, cj)
		}
	}
	return enc
}
