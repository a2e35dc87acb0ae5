package mdlite

import "errors"

// Sentinel errors for library operations. Parse, ParseDocument, and Slugify
// are total and never fail; only the Service surface returns errors.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrHighlight     = errors.New("syntax highlighting failed")
)
