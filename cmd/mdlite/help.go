package main

import (
	"fmt"
	"io"
)

// printUsage writes command usage to w.
func printUsage(w io.Writer) {
	fmt.Fprintf(w, `mdlite renders a constrained markdown subset to HTML.

Usage:
  mdlite [flags] <input.md> [output.html]
  mdlite slug <text...>

Flags:
  -o, --output PATH        output file or directory
      --stdout             print HTML to stdout instead of writing a file
      --meta PATH          write extracted frontmatter as YAML
      --highlight          syntax-highlight fenced code blocks
      --highlight-style S  chroma style for --highlight (default: github)
  -c, --config NAME        config file name or path
  -q, --quiet              only show errors
  -v, --verbose            show detailed progress
      --version            print version and exit

Examples:
  mdlite post.md                        # writes post.html
  mdlite --stdout post.md               # HTML to stdout
  mdlite --meta post.yaml post.md       # also export frontmatter
  mdlite --highlight post.md out.html   # chroma-highlighted code blocks
  mdlite slug "Hello, World! 2025"      # hello-world-2025
`)
}
