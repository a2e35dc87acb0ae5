package mdlite

import "strings"

// htmlEscaper rewrites the five reserved HTML characters in a single pass, so
// already-produced entities are never escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes the five reserved HTML characters, leaving every other
// character untouched. Total function: never fails.
func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
