// Package document models a rich-text document as a flat, ordered sequence
// of blocks and tables with formatted text runs, list groupings, and
// mergeable table cells. A single Cursor provides the insertion primitives
// the importer drives; the package performs no synchronization, callers own
// the document for the duration of a mutation.
package document
