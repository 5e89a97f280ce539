// Package markdown implements the filesystem-facing import workflows:
// discovering markdown sources, splitting front matter from the body, and
// converting bodies into rich-text documents.
package markdown
