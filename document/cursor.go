package document

// Cursor is the document's single insertion point. It tracks the block new
// content lands in and the character format applied to inserted text. A
// cursor is exclusively owned by one mutation run; the package performs no
// locking.
type Cursor struct {
	doc        *Document
	cell       *Cell
	block      *Block
	charFormat CharFormat
}

// NewCursor creates a cursor positioned at the end of the document.
func NewCursor(doc *Document) *Cursor {
	c := &Cursor{doc: doc}
	c.MoveToEnd()
	return c
}

// Block returns the block the cursor currently points at, or nil when the
// document (or current cell) has no block yet.
func (c *Cursor) Block() *Block {
	return c.block
}

// InsertBlock appends a new block at the insertion point and makes it
// current. The supplied character format becomes the active text format.
func (c *Cursor) InsertBlock(blockFormat BlockFormat, charFormat CharFormat) *Block {
	b := &Block{format: blockFormat}
	if c.cell != nil {
		c.cell.blocks = append(c.cell.blocks, b)
	} else {
		c.doc.appendNode(b)
	}
	c.block = b
	c.charFormat = charFormat
	return b
}

// InsertList creates a new list, inserts the block serving as its first
// item, and returns the list.
func (c *Cursor) InsertList(format ListFormat) *List {
	l := &List{format: format}
	c.doc.registerList(l)
	first := c.InsertBlock(BlockFormat{}, CharFormat{})
	l.Add(first)
	return l
}

// InsertTable appends a table of the given shape and moves the cursor into
// its first cell.
func (c *Cursor) InsertTable(rows, cols int) *Table {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	t := newTable(rows, cols)
	c.doc.appendNode(t)
	c.MoveToCell(t.CellAt(0, 0))
	return t
}

// InsertText appends literal text under the active character format.
func (c *Cursor) InsertText(text string) {
	if text == "" {
		return
	}
	c.ensureBlock()
	c.block.appendText(text, c.charFormat)
}

// InsertImage appends an inline image element.
func (c *Cursor) InsertImage(image ImageFormat) {
	c.ensureBlock()
	c.block.appendImage(image, c.charFormat)
}

// InsertMarkup appends raw markup kept literal rather than interpreted.
func (c *Cursor) InsertMarkup(markup string) {
	if markup == "" {
		return
	}
	c.ensureBlock()
	c.block.appendMarkup(markup, c.charFormat)
}

// BlockFormat returns the current block's format, or the zero format when
// no block is current.
func (c *Cursor) BlockFormat() BlockFormat {
	if c.block == nil {
		return BlockFormat{}
	}
	return c.block.format
}

// SetBlockFormat replaces the current block's format. It is a no-op when no
// block is current.
func (c *Cursor) SetBlockFormat(format BlockFormat) {
	if c.block != nil {
		c.block.format = format
	}
}

// CharFormat returns the format applied to subsequently inserted text.
func (c *Cursor) CharFormat() CharFormat {
	return c.charFormat
}

// SetCharFormat replaces the format applied to subsequently inserted text.
func (c *Cursor) SetCharFormat(format CharFormat) {
	c.charFormat = format
}

// CurrentList returns the list containing the current block, or nil.
func (c *Cursor) CurrentList() *List {
	if c.block == nil {
		return nil
	}
	return c.block.list
}

// MoveToCell positions the cursor at the last block of the given cell and
// adopts the cell's character format.
func (c *Cursor) MoveToCell(cell *Cell) {
	if cell == nil {
		return
	}
	c.cell = cell
	c.block = nil
	if n := len(cell.blocks); n > 0 {
		c.block = cell.blocks[n-1]
	}
	c.charFormat = cell.format
}

// MoveToEnd positions the cursor after the document's final node, clearing
// the active character format.
func (c *Cursor) MoveToEnd() {
	c.cell = nil
	c.block = nil
	c.charFormat = CharFormat{}
	if n := len(c.doc.nodes); n > 0 {
		if b, ok := c.doc.nodes[n-1].(*Block); ok {
			c.block = b
		}
	}
}

// ensureBlock lazily creates an unformatted block so content inserted
// before any block event still has a home.
func (c *Cursor) ensureBlock() {
	if c.block != nil {
		return
	}
	c.InsertBlock(BlockFormat{}, c.charFormat)
}
