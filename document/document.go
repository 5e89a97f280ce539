package document

import "github.com/google/uuid"

// DefaultBaseFontSize is the point size block margins derive from when the
// caller does not supply one.
const DefaultBaseFontSize = 12

// Node is a top-level entry in the document sequence, either a *Block or a
// *Table.
type Node interface {
	node()
}

// Document is a rich-text document: an ordered sequence of blocks and
// tables, plus the lists grouping item blocks.
type Document struct {
	id           uuid.UUID
	baseFontSize int
	nodes        []Node
	lists        []*List
}

// New creates an empty document with the default base font size.
func New() *Document {
	return &Document{
		id:           uuid.New(),
		baseFontSize: DefaultBaseFontSize,
	}
}

// ID returns the document's identity.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// BaseFontSize returns the point size paragraph margins derive from.
func (d *Document) BaseFontSize() int {
	return d.baseFontSize
}

// SetBaseFontSize overrides the base font size. Values below 1 are ignored.
func (d *Document) SetBaseFontSize(size int) {
	if size > 0 {
		d.baseFontSize = size
	}
}

// Clear removes all content, keeping identity and base font size.
func (d *Document) Clear() {
	d.nodes = nil
	d.lists = nil
}

// Nodes returns the top-level blocks and tables in document order.
func (d *Document) Nodes() []Node {
	return d.nodes
}

// Blocks returns the top-level blocks in document order, skipping tables.
func (d *Document) Blocks() []*Block {
	var blocks []*Block
	for _, n := range d.nodes {
		if b, ok := n.(*Block); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Tables returns the top-level tables in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, n := range d.nodes {
		if t, ok := n.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Lists returns every list created in the document, in creation order.
func (d *Document) Lists() []*List {
	return d.lists
}

func (d *Document) appendNode(n Node) {
	d.nodes = append(d.nodes, n)
}

func (d *Document) registerList(l *List) {
	d.lists = append(d.lists, l)
}

// lastBlock returns the most recent top-level block, or nil.
func (d *Document) lastBlock() *Block {
	for i := len(d.nodes) - 1; i >= 0; i-- {
		if b, ok := d.nodes[i].(*Block); ok {
			return b
		}
	}
	return nil
}
