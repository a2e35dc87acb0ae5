package mdlite

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// renderedCodeBlock matches code blocks produced by the fenced-code pass.
var renderedCodeBlock = regexp.MustCompile(`(?s)<pre><code(?: class="language-([^"]*)")?>(.*?)</code></pre>`)

// htmlUnescaper reverses escapeHTML before handing source to the lexer.
var htmlUnescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// highlightCodeBlocks re-renders fenced code blocks through chroma with CSS
// classes so a stylesheet controls the colors. Unknown languages fall back to
// chroma's plaintext lexer; blocks that cannot be highlighted are left as the
// pipeline produced them.
func highlightCodeBlocks(content, styleName string) (string, error) {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true)) // CSS classes for external stylesheet control

	var firstErr error
	out := renderedCodeBlock.ReplaceAllStringFunc(content, func(match string) string {
		parts := renderedCodeBlock.FindStringSubmatch(match)
		lang := parts[1]
		source := htmlUnescaper.Replace(parts[2])

		lexer := lexers.Get(lang)
		if lexer == nil {
			lexer = lexers.Fallback
		}
		lexer = chroma.Coalesce(lexer)

		iterator, err := lexer.Tokenise(nil, source)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %v", ErrHighlight, err)
			}
			return match
		}

		var buf bytes.Buffer
		if err := formatter.Format(&buf, style, iterator); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %v", ErrHighlight, err)
			}
			return match
		}
		return strings.TrimRight(buf.String(), "\n")
	})

	if firstErr != nil {
		return content, firstErr
	}
	return out, nil
}
