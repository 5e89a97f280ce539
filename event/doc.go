// Package event defines the structural parse events a markdown tokenizer
// emits while walking a document: enter/leave notifications for blocks and
// inline spans plus text fragments. Consumers implement Listener; the
// tokenizer drives it synchronously in document order.
package event
