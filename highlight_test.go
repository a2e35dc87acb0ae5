package mdlite

import (
	"strings"
	"testing"
)

func TestHighlightCodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("known language", func(t *testing.T) {
		t.Parallel()

		input := Parse("```go\npackage main\n```")
		got, err := highlightCodeBlocks(input, "github")
		if err != nil {
			t.Fatalf("highlightCodeBlocks() error: %v", err)
		}
		if got == input {
			t.Error("output unchanged, want chroma rewrite")
		}
		if !strings.Contains(got, "chroma") {
			t.Errorf("output missing chroma classes: %q", got)
		}
	})

	t.Run("unknown language falls back to plaintext", func(t *testing.T) {
		t.Parallel()

		input := Parse("```zzznotalang\nplain text\n```")
		got, err := highlightCodeBlocks(input, "github")
		if err != nil {
			t.Fatalf("highlightCodeBlocks() error: %v", err)
		}
		if !strings.Contains(got, "chroma") {
			t.Errorf("output missing chroma classes: %q", got)
		}
		if !strings.Contains(got, "plain text") {
			t.Errorf("output lost the source text: %q", got)
		}
	})

	t.Run("block without a language tag is rewritten", func(t *testing.T) {
		t.Parallel()

		input := Parse("```\nhello\n```")
		got, err := highlightCodeBlocks(input, "github")
		if err != nil {
			t.Fatalf("highlightCodeBlocks() error: %v", err)
		}
		if !strings.Contains(got, "chroma") {
			t.Errorf("output missing chroma classes: %q", got)
		}
	})

	t.Run("escaped entities survive the round trip", func(t *testing.T) {
		t.Parallel()

		input := Parse("```\na < b\n```")
		got, err := highlightCodeBlocks(input, "github")
		if err != nil {
			t.Fatalf("highlightCodeBlocks() error: %v", err)
		}
		if !strings.Contains(got, "&lt;") {
			t.Errorf("output does not re-escape the source: %q", got)
		}
	})

	t.Run("content without code blocks is untouched", func(t *testing.T) {
		t.Parallel()

		input := "<p>no code here</p>\n\n<code>inline</code>"
		got, err := highlightCodeBlocks(input, "github")
		if err != nil {
			t.Fatalf("highlightCodeBlocks() error: %v", err)
		}
		if got != input {
			t.Errorf("highlightCodeBlocks() = %q, want input unchanged", got)
		}
	})

	t.Run("unknown style falls back", func(t *testing.T) {
		t.Parallel()

		input := Parse("```go\nx := 1\n```")
		got, err := highlightCodeBlocks(input, "zzznotastyle")
		if err != nil {
			t.Fatalf("highlightCodeBlocks() error: %v", err)
		}
		if !strings.Contains(got, "chroma") {
			t.Errorf("output missing chroma classes: %q", got)
		}
	})
}
