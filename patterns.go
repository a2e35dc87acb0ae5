package mdlite

import "regexp"

// Precompiled recognizers, one per supported construct. The set is fixed at
// process start and never mutated; every pass reads from it concurrently
// without locking.
var (
	// Frontmatter block: the document must begin with a `---` line, zero or
	// more metadata lines, and a closing `---` line.
	frontmatterBlock = regexp.MustCompile(`\A---\n((?:.*\n)*?)---(?:\n|$)`)

	// ATX heading: 1-6 hashes, at least one space, trailing content.
	headingLine = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.+)$`)

	// Image: ![alt](src). Must be rewritten before links so the link
	// recognizer never captures the `!` variant.
	imageInline = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)

	// Link: [text](url).
	linkInline = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

	// Fenced code block with optional language tag before the first newline.
	// Non-greedy across newlines so the first closing fence wins. Must be
	// rewritten before inline code so embedded backticks stay intact.
	fencedCode = regexp.MustCompile("```([A-Za-z0-9]*)\\n(?s:(.*?))```")

	// Inline code: single backticks, no embedded backticks, single line.
	inlineCode = regexp.MustCompile("`([^`\n]+)`")

	// Bold and italic spans, non-greedy, never spanning a newline.
	boldSpan   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicSpan = regexp.MustCompile(`_(.+?)_`)

	// Hard line break: trailing double space before a newline. Recognized as
	// part of the construct set but not applied by the render pipeline, which
	// leaves single newlines intact.
	hardBreak = regexp.MustCompile(`[ \t]{2,}\n`)

	// Horizontal rule: a line of three or more hyphens.
	horizontalRule = regexp.MustCompile(`(?m)^-{3,}$`)
)

// Replacement templates for the rewrites that need no computed output.
const (
	imageReplacement          = `<img src="$2" alt="$1" />`
	linkReplacement           = `<a href="$2">$1</a>`
	inlineCodeReplacement     = `<code>$1</code>`
	boldReplacement           = `<strong>$1</strong>`
	italicReplacement         = `<em>$1</em>`
	hardBreakReplacement      = "<br />\n"
	horizontalRuleReplacement = `<hr />`
)

// Text-shape helpers used outside the rewrite passes.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Blank-line separator between paragraph blocks
	blankSeparator = regexp.MustCompile(`\n\s*\n`)
)
