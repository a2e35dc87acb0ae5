package mdlite

import (
	"fmt"
	"strings"
)

// pipeline lists the rewrite passes in application order. Each pass rewrites
// all non-overlapping matches in the whole working string before the next
// pass begins, so ordering is load-bearing: images before links, fenced code
// before inline code, block constructs before paragraph wrapping.
var pipeline = []func(string) string{
	convertHeadings,
	convertImages,
	convertLinks,
	convertCodeBlocks,
	convertInlineCode,
	convertBold,
	convertItalic,
	convertHorizontalRules,
	wrapParagraphs,
}

// Parse converts the supported markdown subset to HTML. It is a pure function
// of its input: malformed constructs are left as literal text and no error is
// ever returned.
func Parse(markdown string) string {
	if markdown == "" {
		return ""
	}

	content := normalizeLineEndings(markdown)
	for _, pass := range pipeline {
		content = pass(content)
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n so the per-line recognizers
// behave on Windows and legacy Mac input.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// convertHeadings rewrites ATX headings to <h1>..<h6>, level derived from the
// hash count, content trimmed.
func convertHeadings(content string) string {
	return headingLine.ReplaceAllStringFunc(content, func(match string) string {
		parts := headingLine.FindStringSubmatch(match)
		level := len(parts[1])
		return fmt.Sprintf("<h%d>%s</h%d>", level, strings.TrimSpace(parts[2]), level)
	})
}

// convertImages rewrites ![alt](src) to <img />.
func convertImages(content string) string {
	return imageInline.ReplaceAllString(content, imageReplacement)
}

// convertLinks rewrites [text](url) to <a>.
func convertLinks(content string) string {
	return linkInline.ReplaceAllString(content, linkReplacement)
}

// convertCodeBlocks rewrites fenced code blocks to <pre><code>. The body is
// trimmed and HTML-escaped; the class attribute is omitted when the fence
// carries no language tag.
func convertCodeBlocks(content string) string {
	return fencedCode.ReplaceAllStringFunc(content, func(match string) string {
		parts := fencedCode.FindStringSubmatch(match)
		lang := parts[1]
		body := escapeHTML(strings.TrimSpace(parts[2]))
		if lang == "" {
			return "<pre><code>" + body + "</code></pre>"
		}
		return `<pre><code class="language-` + lang + `">` + body + "</code></pre>"
	})
}

// convertInlineCode rewrites `code` to <code>. The body is intentionally NOT
// HTML-escaped, unlike fenced blocks; downstream consumers depend on the
// asymmetry.
func convertInlineCode(content string) string {
	return inlineCode.ReplaceAllString(content, inlineCodeReplacement)
}

// convertBold rewrites **text** to <strong>.
func convertBold(content string) string {
	return boldSpan.ReplaceAllString(content, boldReplacement)
}

// convertItalic rewrites _text_ to <em>. The recognizer is naive about
// underscores inside words: snake_case identifiers will sprout <em> tags.
func convertItalic(content string) string {
	return italicSpan.ReplaceAllString(content, italicReplacement)
}

// convertHorizontalRules rewrites lines of three or more hyphens to <hr />.
func convertHorizontalRules(content string) string {
	return horizontalRule.ReplaceAllString(content, horizontalRuleReplacement)
}
