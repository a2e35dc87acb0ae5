// Package mdlite converts a constrained markdown subset to HTML, extracts
// frontmatter into typed key-value metadata, and derives URL-safe slugs.
//
// # Quick Start
//
// Parse a full document with frontmatter:
//
//	doc := mdlite.ParseDocument(content)
//	fmt.Println(doc.Content)            // rendered HTML
//	title, _ := doc.Frontmatter.Get("title")
//
// Render markdown alone, or derive a slug:
//
//	html := mdlite.Parse("# Hello")
//	slug := mdlite.Slugify("Hello, World! 2025") // "hello-world-2025"
//
// # Rendering Pipeline
//
// Rendering is a fixed sequence of pattern rewrite passes applied to the
// whole document, in order:
//
//  1. ATX headings (# through ######)
//  2. Images, then links
//  3. Fenced code blocks (body HTML-escaped), then inline code (not escaped)
//  4. Bold (**) and italic (_)
//  5. Horizontal rules (---)
//  6. Paragraph wrapping around remaining text blocks
//
// The grammar is deliberately small: no nested lists, blockquotes, tables,
// footnotes, or inline HTML sanitization. Malformed constructs are left as
// literal text rather than reported; every entry point is a pure, total
// function that is safe to call from multiple goroutines.
//
// # Frontmatter
//
// A leading block delimited by `---` lines is parsed into ordered key-value
// metadata. Values are coerced to one of four kinds: string, number, boolean,
// or sequence of strings:
//
//	---
//	title: "My Post"
//	tags: [a, b]
//	featured: true
//	weight: 2
//	---
//
// Lines without a colon are dropped; the last occurrence of a duplicate key
// wins.
//
// # Syntax Highlighting
//
// Use Service with WithHighlighting to re-render fenced code blocks through
// chroma:
//
//	svc := mdlite.New(mdlite.WithHighlighting("github"))
//	doc, err := svc.Convert(ctx, mdlite.Input{Markdown: content})
package mdlite
