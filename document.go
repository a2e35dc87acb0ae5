package mdlite

// Document is the result of parsing a markdown document: extracted
// frontmatter, rendered HTML, and the raw markdown remainder. It is a pure
// value, immutable after return, sharing no state with the input.
type Document struct {
	Frontmatter *Metadata // parsed metadata, empty when no block is present
	Content     string    // rendered HTML
	RawContent  string    // markdown remainder after the frontmatter block
}

// ParseDocument extracts frontmatter and renders the remainder to HTML.
// Empty input yields an empty-valued Document; the function never fails.
func ParseDocument(markdown string) Document {
	if markdown == "" {
		return Document{Frontmatter: newMetadata()}
	}

	meta, remainder := extractFrontmatter(normalizeLineEndings(markdown))
	return Document{
		Frontmatter: meta,
		Content:     Parse(remainder),
		RawContent:  remainder,
	}
}
