package document

import "strings"

// RunKind discriminates the payload carried by a Run.
type RunKind int

const (
	// RunText is a literal text fragment.
	RunText RunKind = iota
	// RunImage is an inline image element.
	RunImage
	// RunMarkup is raw markup passed through from the source, kept literal
	// rather than interpreted.
	RunMarkup
)

// Run is a contiguous fragment of block content sharing one character
// format.
type Run struct {
	Kind   RunKind     `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Format CharFormat  `json:"format,omitempty"`
	Image  ImageFormat `json:"image,omitempty"`
}

// Block is a structural unit of the document: a paragraph, heading, code
// block line group, list item body, or table cell content.
type Block struct {
	format BlockFormat
	runs   []Run
	list   *List
}

// Format returns the block's current format.
func (b *Block) Format() BlockFormat {
	return b.format
}

// SetFormat replaces the block's format.
func (b *Block) SetFormat(format BlockFormat) {
	b.format = format
}

// Runs returns the block's content runs in insertion order.
func (b *Block) Runs() []Run {
	return b.runs
}

// List returns the list the block belongs to, or nil.
func (b *Block) List() *List {
	return b.list
}

// PlainText concatenates the text of every literal run.
func (b *Block) PlainText() string {
	var sb strings.Builder
	for _, run := range b.runs {
		if run.Kind == RunText {
			sb.WriteString(run.Text)
		}
	}
	return sb.String()
}

// appendText adds literal text under the given format, extending the last
// run when the format is unchanged so runs stay maximal.
func (b *Block) appendText(text string, format CharFormat) {
	if n := len(b.runs); n > 0 {
		last := &b.runs[n-1]
		if last.Kind == RunText && last.Format == format {
			last.Text += text
			return
		}
	}
	b.runs = append(b.runs, Run{Kind: RunText, Text: text, Format: format})
}

func (b *Block) appendImage(image ImageFormat, format CharFormat) {
	b.runs = append(b.runs, Run{Kind: RunImage, Image: image, Format: format})
}

func (b *Block) appendMarkup(markup string, format CharFormat) {
	b.runs = append(b.runs, Run{Kind: RunMarkup, Text: markup, Format: format})
}

func (*Block) node() {}
