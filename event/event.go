package event

// BlockKind identifies the structural block a block event refers to.
type BlockKind int

const (
	// BlockOther is reserved for block types this taxonomy does not model.
	// Listeners must ignore it without failing so new tokenizer features
	// stay forward compatible.
	BlockOther BlockKind = iota
	BlockParagraph
	BlockHeading
	BlockQuote
	BlockCode
	BlockUnorderedList
	BlockOrderedList
	BlockListItem
	BlockTable
	BlockTableRow
	BlockTableHeaderCell
	BlockTableDataCell
	BlockHorizontalRule
)

// String renders the block kind for diagnostics.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockQuote:
		return "quote"
	case BlockCode:
		return "code"
	case BlockUnorderedList:
		return "unordered_list"
	case BlockOrderedList:
		return "ordered_list"
	case BlockListItem:
		return "list_item"
	case BlockTable:
		return "table"
	case BlockTableRow:
		return "table_row"
	case BlockTableHeaderCell:
		return "table_header_cell"
	case BlockTableDataCell:
		return "table_data_cell"
	case BlockHorizontalRule:
		return "horizontal_rule"
	default:
		return "other"
	}
}

// SpanKind identifies the inline formatting region a span event refers to.
type SpanKind int

const (
	// SpanOther is reserved for span types this taxonomy does not model.
	SpanOther SpanKind = iota
	SpanEmphasis
	SpanStrong
	SpanLink
	SpanImage
	SpanCode
	SpanStrikethrough
)

// String renders the span kind for diagnostics.
func (k SpanKind) String() string {
	switch k {
	case SpanEmphasis:
		return "emphasis"
	case SpanStrong:
		return "strong"
	case SpanLink:
		return "link"
	case SpanImage:
		return "image"
	case SpanCode:
		return "code"
	case SpanStrikethrough:
		return "strikethrough"
	default:
		return "other"
	}
}

// TextKind identifies how a text fragment should be interpreted.
type TextKind int

const (
	TextNormal TextKind = iota
	// TextNullChar marks a NUL byte in the source; CommonMark requires it
	// to be replaced with U+FFFD.
	TextNullChar
	TextHardBreak
	TextSoftBreak
	TextCode
	TextEntity
	// TextRawHTML carries literal markup that must be passed through
	// rather than interpreted as markdown.
	TextRawHTML
)

// String renders the text kind for diagnostics.
func (k TextKind) String() string {
	switch k {
	case TextNormal:
		return "normal"
	case TextNullChar:
		return "nullchar"
	case TextHardBreak:
		return "hard_break"
	case TextSoftBreak:
		return "soft_break"
	case TextCode:
		return "code"
	case TextEntity:
		return "entity"
	case TextRawHTML:
		return "raw_html"
	default:
		return "normal"
	}
}

// Alignment captures the horizontal alignment requested for a table cell.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// BlockDetail is the kind-specific payload attached to a block event.
// Kinds without extra information carry a nil detail.
type BlockDetail interface {
	isBlockDetail()
}

// HeadingDetail accompanies BlockHeading events.
type HeadingDetail struct {
	// Level is the heading depth, 1 through 6.
	Level int
}

// CodeBlockDetail accompanies BlockCode events.
type CodeBlockDetail struct {
	// Language is the first word of the fence info string, empty for
	// indented code blocks.
	Language string
	// Info is the complete fence info string.
	Info string
}

// UnorderedListDetail accompanies BlockUnorderedList events.
type UnorderedListDetail struct {
	// Marker is the bullet character used in the source: '-', '*' or '+'.
	Marker byte
}

// OrderedListDetail accompanies BlockOrderedList events.
type OrderedListDetail struct {
	// Start is the ordinal of the first item.
	Start int
	// Delimiter is the character following the number: '.' or ')'.
	Delimiter byte
}

// ListItemDetail accompanies BlockListItem events.
type ListItemDetail struct {
	IsTask      bool
	TaskChecked bool
}

// TableCellDetail accompanies BlockTableDataCell events.
type TableCellDetail struct {
	Alignment Alignment
}

func (HeadingDetail) isBlockDetail()       {}
func (CodeBlockDetail) isBlockDetail()     {}
func (UnorderedListDetail) isBlockDetail() {}
func (OrderedListDetail) isBlockDetail()   {}
func (ListItemDetail) isBlockDetail()      {}
func (TableCellDetail) isBlockDetail()     {}

// SpanDetail is the kind-specific payload attached to a span event.
type SpanDetail interface {
	isSpanDetail()
}

// LinkDetail accompanies SpanLink events.
type LinkDetail struct {
	Href  string
	Title string
}

// ImageDetail accompanies SpanImage events.
type ImageDetail struct {
	Source string
	Title  string
}

func (LinkDetail) isSpanDetail()  {}
func (ImageDetail) isSpanDetail() {}

// Listener receives parse events in document order. Returning a non-nil
// error from any callback aborts the parse immediately; the tokenizer must
// not emit further events after a failure.
//
// The event stream is guaranteed well formed by the tokenizer: every enter
// has a matching leave, and nesting is strictly balanced. Listeners are not
// expected to re-validate it.
type Listener interface {
	EnterBlock(kind BlockKind, detail BlockDetail) error
	LeaveBlock(kind BlockKind, detail BlockDetail) error
	EnterSpan(kind SpanKind, detail SpanDetail) error
	LeaveSpan(kind SpanKind, detail SpanDetail) error
	Text(kind TextKind, text []byte) error
}
