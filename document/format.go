package document

// Alignment captures horizontal block alignment inside table cells.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String renders the alignment for diagnostics and JSON output.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ListStyle selects how list item markers are rendered.
type ListStyle int

const (
	ListDisc ListStyle = iota
	ListCircle
	ListSquare
	ListDecimal
)

// String renders the list style for diagnostics and JSON output.
func (s ListStyle) String() string {
	switch s {
	case ListCircle:
		return "circle"
	case ListSquare:
		return "square"
	case ListDecimal:
		return "decimal"
	default:
		return "disc"
	}
}

// Marker is the checkbox state attached to a task list item block.
type Marker int

const (
	NoMarker Marker = iota
	MarkerUnchecked
	MarkerChecked
)

// LinkForeground is the foreground color applied to anchor text. Views may
// substitute their palette's link color; the importer only needs a stable
// non-empty value.
const LinkForeground = "#0000ff"

// CharFormat describes character-level formatting carried by a text run or
// a table cell. The zero value is the unformatted state.
type CharFormat struct {
	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Strikeout bool `json:"strikeout,omitempty"`
	Monospace bool `json:"monospace,omitempty"`
	// SizeAdjustment shifts the font size relative to the document base
	// size; headings use +3 (level 1) down to -2 (level 6).
	SizeAdjustment int    `json:"size_adjustment,omitempty"`
	AnchorHref     string `json:"anchor_href,omitempty"`
	AnchorName     string `json:"anchor_name,omitempty"`
	Foreground     string `json:"foreground,omitempty"`
}

// IsZero reports whether the format carries no properties.
func (f CharFormat) IsZero() bool {
	return f == CharFormat{}
}

// BlockFormat describes block-level formatting.
type BlockFormat struct {
	HeadingLevel int `json:"heading_level,omitempty"`
	// Indent is the list nesting depth applied to the block itself. Blocks
	// that belong to a list keep this at zero because the list supplies the
	// visual indent.
	Indent       int       `json:"indent,omitempty"`
	LeftMargin   int       `json:"left_margin,omitempty"`
	RightMargin  int       `json:"right_margin,omitempty"`
	TopMargin    int       `json:"top_margin,omitempty"`
	BottomMargin int       `json:"bottom_margin,omitempty"`
	Alignment    Alignment `json:"alignment,omitempty"`
	// QuoteLevel is the number of block quote scopes enclosing the block.
	QuoteLevel int `json:"quote_level,omitempty"`
	// Code marks the block as part of a code block; CodeLanguage holds the
	// fence language when one was given.
	Code         bool   `json:"code,omitempty"`
	CodeLanguage string `json:"code_language,omitempty"`
	Marker       Marker `json:"marker,omitempty"`
	// HorizontalRule marks a block that renders as a thematic break.
	HorizontalRule bool `json:"horizontal_rule,omitempty"`
	// Anchor is the slug derived from a heading's text.
	Anchor string `json:"anchor,omitempty"`
}

// ListFormat describes a list grouping.
type ListFormat struct {
	// Indent is the nesting depth of the list, starting at 1.
	Indent int       `json:"indent"`
	Style  ListStyle `json:"style"`
	// Start is the ordinal of the first item in an ordered list.
	Start int `json:"start,omitempty"`
	// NumberSuffix follows the item number in ordered lists, "." or ")".
	NumberSuffix string `json:"number_suffix,omitempty"`
}

// ImageFormat describes an inline image element.
type ImageFormat struct {
	Source string `json:"source"`
	Title  string `json:"title,omitempty"`
}
