package importer

import (
	"strings"

	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/event"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// blockQuoteIndent is the left-margin unit, in points, applied per block
// quote level.
const blockQuoteIndent = 40

// Config carries the builder's optional dependencies.
type Config struct {
	Logger interfaces.Logger
}

// Builder implements event.Listener by translating parse events into
// mutations on a rich-text document. A builder is bound to one document for
// one import run; it is not safe for reuse or concurrent access.
type Builder struct {
	doc    *document.Document
	cursor *document.Cursor
	logger interfaces.Logger
	st     state
}

// state is the single mutable record carrying all nesting state for one
// import run. Every handler reads and writes it through the builder; no
// state lives anywhere else.
type state struct {
	// listStack holds the currently open lists, outermost first.
	listStack []*document.List
	// blockQuoteDepth equals the number of currently open quote scopes.
	blockQuoteDepth int
	// blockKind is the kind of the block most recently entered.
	blockKind event.BlockKind

	// Table construction state, valid between table enter and leave.
	table            *document.Table
	tableRowCount    int
	tableColumnCount int
	tableCol         int
	nonEmptyCells    map[int]struct{}

	// spanFormats holds one character-format snapshot per open span; the
	// top of the stack is the format in effect for new text. Formats do
	// not compose across nesting.
	spanFormats []document.CharFormat

	// Raw HTML accumulation: fragments are buffered until the number of
	// unmatched opening tags returns to zero, then flushed as one markup
	// insertion.
	htmlTagDepth    int
	htmlAccumulator strings.Builder

	needsInsertBlock bool
	imageSpan        bool
	listItem         bool
	emptyList        bool
	emptyListItem    bool
	codeBlock        bool
	codeLanguage     string

	paragraphMargin int
}

var _ event.Listener = (*Builder)(nil)

// New binds a builder to the target document. The document is cleared; its
// identity and base font size are kept.
func New(doc *document.Document, cfg Config) *Builder {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	doc.Clear()
	b := &Builder{
		doc:    doc,
		cursor: document.NewCursor(doc),
		logger: logger,
	}
	b.st.nonEmptyCells = make(map[int]struct{})
	b.st.paragraphMargin = doc.BaseFontSize() * 2 / 3
	return b
}

// Document returns the document the builder mutates.
func (b *Builder) Document() *document.Document {
	return b.doc
}

// insertBlock realises a deferred block insertion, deriving the block and
// character formats from the current nesting state.
func (b *Builder) insertBlock() {
	st := &b.st

	var charFormat document.CharFormat
	if n := len(st.spanFormats); n > 0 {
		charFormat = st.spanFormats[n-1]
	}

	var blockFormat document.BlockFormat
	if st.blockQuoteDepth > 0 {
		blockFormat.QuoteLevel = st.blockQuoteDepth
		blockFormat.LeftMargin = blockQuoteIndent * st.blockQuoteDepth
		blockFormat.RightMargin = blockQuoteIndent
	}
	if depth := len(st.listStack); depth > 0 {
		blockFormat.Indent = depth
	}
	if st.codeBlock {
		blockFormat.Code = true
		blockFormat.CodeLanguage = st.codeLanguage
		charFormat.Monospace = true
	} else {
		blockFormat.TopMargin = st.paragraphMargin
		blockFormat.BottomMargin = st.paragraphMargin
	}

	b.cursor.InsertBlock(blockFormat, charFormat)
	st.needsInsertBlock = false
}
