package document

// List groups blocks into an ordered or unordered list. Item blocks remain
// part of the document's flat block sequence; the list only records the
// grouping and supplies marker formatting.
type List struct {
	format ListFormat
	items  []*Block
}

// Format returns the list's format.
func (l *List) Format() ListFormat {
	return l.format
}

// Count returns the number of item blocks.
func (l *List) Count() int {
	return len(l.items)
}

// ItemAt returns the item block at index i, or nil when out of range.
func (l *List) ItemAt(i int) *Block {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Items returns the item blocks in document order.
func (l *List) Items() []*Block {
	return l.items
}

// Add claims the block as the list's next item.
func (l *List) Add(b *Block) {
	if b == nil {
		return
	}
	b.list = l
	l.items = append(l.items, b)
}
