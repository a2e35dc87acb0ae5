package mdlite

import (
	"regexp"
	"strings"
)

// Slug shape rules.
var (
	// Characters outside letter/digit/underscore/whitespace/hyphen
	slugDisallowed = regexp.MustCompile(`[^a-z0-9_\s-]`)

	// Runs of whitespace, underscores, and hyphens collapse to one hyphen
	slugSeparators = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a lowercase, hyphen-delimited, URL-safe identifier from
// arbitrary text. Empty input yields an empty string.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
