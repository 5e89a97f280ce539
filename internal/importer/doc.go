// Package importer contains the event-driven document builder: it consumes
// the structural parse events a markdown tokenizer emits and incrementally
// mutates a rich-text document through a single insertion cursor, tracking
// list, quote, table, inline-span, and raw-HTML nesting state along the way.
package importer
