package mdlite

import "strings"

// wrapParagraphs is the final pipeline pass. It splits the working string on
// blank-line separators, drops empty blocks, and wraps the rest in <p> tags.
// A block that starts with `<` and ends with `>` is assumed to be a
// block-level element produced by an earlier pass and is left unwrapped.
func wrapParagraphs(content string) string {
	blocks := blankSeparator.Split(content, -1)
	wrapped := make([]string, 0, len(blocks))

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if strings.HasPrefix(block, "<") && strings.HasSuffix(block, ">") {
			wrapped = append(wrapped, block)
			continue
		}
		wrapped = append(wrapped, "<p>"+block+"</p>")
	}

	return strings.Join(wrapped, "\n\n")
}
