package mdlite

import "testing"

func TestWrapParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text wrapped",
			input:    "hello",
			expected: "<p>hello</p>",
		},
		{
			name:     "blocks split on blank lines",
			input:    "one\n\ntwo",
			expected: "<p>one</p>\n\n<p>two</p>",
		},
		{
			name:     "multiple blank lines form one separator",
			input:    "one\n\n\n\ntwo",
			expected: "<p>one</p>\n\n<p>two</p>",
		},
		{
			name:     "whitespace-only separator",
			input:    "one\n   \ntwo",
			expected: "<p>one</p>\n\n<p>two</p>",
		},
		{
			name:     "block-level HTML left unwrapped",
			input:    "<h1>Hi</h1>",
			expected: "<h1>Hi</h1>",
		},
		{
			name:     "hr from an earlier pass not re-wrapped",
			input:    "text\n\n<hr />",
			expected: "<p>text</p>\n\n<hr />",
		},
		{
			name:     "empty blocks dropped",
			input:    "\n\none\n\n\n\n",
			expected: "<p>one</p>",
		},
		{
			name:     "blocks trimmed before wrapping",
			input:    "  padded  ",
			expected: "<p>padded</p>",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := wrapParagraphs(tt.input)
			if got != tt.expected {
				t.Errorf("wrapParagraphs(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
