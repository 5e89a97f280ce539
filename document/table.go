package document

// Table is a rectangular grid of cells. The grid grows incrementally while
// an import discovers the table's real shape, and cells can be merged into
// column spans afterwards.
type Table struct {
	grid [][]*Cell
}

// Cell is a single table position. A cell either anchors content (possibly
// spanning several columns) or is covered by an earlier spanning cell.
type Cell struct {
	row, col int
	rowSpan  int
	colSpan  int
	anchor   *Cell
	format   CharFormat
	blocks   []*Block
}

func newTable(rows, cols int) *Table {
	t := &Table{}
	t.AppendRows(rows)
	if cols > 1 {
		t.AppendColumns(cols - 1)
	}
	return t
}

// Rows returns the current row count.
func (t *Table) Rows() int {
	return len(t.grid)
}

// Columns returns the current column count.
func (t *Table) Columns() int {
	if len(t.grid) == 0 {
		return 0
	}
	return len(t.grid[0])
}

// AppendRows grows the table by n rows of empty cells.
func (t *Table) AppendRows(n int) {
	cols := t.Columns()
	if cols == 0 {
		cols = 1
	}
	for i := 0; i < n; i++ {
		row := make([]*Cell, cols)
		r := len(t.grid)
		for c := range row {
			row[c] = newCell(r, c)
		}
		t.grid = append(t.grid, row)
	}
}

// AppendColumns grows every row by n empty cells.
func (t *Table) AppendColumns(n int) {
	for r := range t.grid {
		for i := 0; i < n; i++ {
			t.grid[r] = append(t.grid[r], newCell(r, len(t.grid[r])))
		}
	}
}

// CellAt returns the cell at the given position, resolving covered
// positions to their spanning anchor. It returns nil when the position is
// outside the current grid.
func (t *Table) CellAt(row, col int) *Cell {
	if row < 0 || row >= len(t.grid) {
		return nil
	}
	if col < 0 || col >= len(t.grid[row]) {
		return nil
	}
	cell := t.grid[row][col]
	if cell.anchor != nil {
		return cell.anchor
	}
	return cell
}

// MergeCells folds the rectangle starting at (row, col) into a single cell
// spanning rowSpan rows and colSpan columns. Out-of-range regions are
// clamped to the grid.
func (t *Table) MergeCells(row, col, rowSpan, colSpan int) {
	anchor := t.CellAt(row, col)
	if anchor == nil || rowSpan < 1 || colSpan < 1 {
		return
	}
	if row+rowSpan > t.Rows() {
		rowSpan = t.Rows() - row
	}
	if col+colSpan > t.Columns() {
		colSpan = t.Columns() - col
	}
	anchor.rowSpan = rowSpan
	anchor.colSpan = colSpan
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			cell := t.grid[r][c]
			if cell == anchor {
				continue
			}
			cell.anchor = anchor
		}
	}
}

func (*Table) node() {}

func newCell(row, col int) *Cell {
	return &Cell{
		row:     row,
		col:     col,
		rowSpan: 1,
		colSpan: 1,
		blocks:  []*Block{{}},
	}
}

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Column returns the cell's column index.
func (c *Cell) Column() int { return c.col }

// RowSpan returns the number of rows the cell spans.
func (c *Cell) RowSpan() int { return c.rowSpan }

// ColumnSpan returns the number of columns the cell spans.
func (c *Cell) ColumnSpan() int { return c.colSpan }

// Covered reports whether the cell is hidden under a spanning cell.
func (c *Cell) Covered() bool { return c.anchor != nil }

// Format returns the cell-level character format.
func (c *Cell) Format() CharFormat { return c.format }

// SetFormat replaces the cell-level character format.
func (c *Cell) SetFormat(format CharFormat) { c.format = format }

// Blocks returns the cell's content blocks.
func (c *Cell) Blocks() []*Block { return c.blocks }

// FirstBlock returns the cell's first content block.
func (c *Cell) FirstBlock() *Block {
	if len(c.blocks) == 0 {
		return nil
	}
	return c.blocks[0]
}

// PlainText concatenates the plain text of every block in the cell.
func (c *Cell) PlainText() string {
	var out string
	for _, b := range c.blocks {
		out += b.PlainText()
	}
	return out
}
