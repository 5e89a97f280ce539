package interfaces

import "github.com/goliatone/go-richtext/event"

// Features is a bitmask selecting which markdown extensions the tokenizer
// recognises. The builder treats it as opaque configuration forwarded at
// setup time.
type Features uint

const (
	// FeatureTables enables pipe tables.
	FeatureTables Features = 1 << iota
	// FeatureTaskLists enables checkbox list items.
	FeatureTaskLists
	// FeatureStrikethrough enables tilde-delimited strikethrough spans.
	FeatureStrikethrough
	// FeatureAutolinks enables permissive URL autolinking.
	FeatureAutolinks
)

// DefaultFeatures matches the extensions enabled for GitHub-flavored
// markdown sources.
const DefaultFeatures = FeatureTables | FeatureTaskLists | FeatureStrikethrough | FeatureAutolinks

// Has reports whether every bit in feature is set.
func (f Features) Has(feature Features) bool {
	return f&feature == feature
}

// Tokenizer turns markdown source into a well-formed stream of structural
// parse events delivered synchronously to the listener. A non-nil error
// from any listener callback stops the parse immediately and is returned
// unchanged.
type Tokenizer interface {
	Tokenize(source []byte, listener event.Listener) error
}
