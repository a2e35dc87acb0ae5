package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mdlite "github.com/alnah/go-mdlite"
	"github.com/alnah/go-mdlite/internal/config"
	"github.com/alnah/go-mdlite/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("usage: mdlite [flags] <input.md> [output.html]")
	ErrNoSlugText       = errors.New("usage: mdlite slug <text...>")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrWriteMeta        = errors.New("failed to write metadata file")
)

// run dispatches to the slug subcommand or the render flow.
func run(flags *renderFlags, args []string, stdout, stderr io.Writer) error {
	if flags.version {
		fmt.Fprintln(stdout, Version)
		return nil
	}
	if len(args) > 0 && args[0] == "slug" {
		return runSlug(args[1:], stdout)
	}
	return runRender(flags, args, stdout, stderr)
}

// runSlug prints the slug of the joined arguments.
func runSlug(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return ErrNoSlugText
	}
	fmt.Fprintln(stdout, mdlite.Slugify(strings.Join(args, " ")))
	return nil
}

// runRender reads a markdown file, renders it, and writes the HTML plus any
// requested metadata export.
func runRender(flags *renderFlags, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return ErrNoInput
	}

	cfg := config.Default()
	if flags.common.config != "" {
		loaded, err := config.Load(flags.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	inputPath := args[0]
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	var opts []mdlite.Option
	if flags.highlight || cfg.Render.Highlight {
		style := flags.highlightStyle
		if style == "" {
			style = cfg.Render.HighlightStyle
		}
		opts = append(opts, mdlite.WithHighlighting(style))
	}

	service := mdlite.New(opts...)
	doc, err := service.Convert(context.Background(), mdlite.Input{Markdown: string(content)})
	if err != nil {
		return err
	}

	if flags.meta != "" {
		if err := writeMeta(flags.meta, doc.Frontmatter); err != nil {
			return err
		}
		if flags.common.verbose {
			fmt.Fprintf(stderr, "Wrote metadata to %s\n", flags.meta)
		}
	}

	if flags.stdout {
		fmt.Fprintln(stdout, doc.Content)
		return nil
	}

	outputPath := resolveOutputPath(flags.output, args, inputPath, cfg)
	if err := os.WriteFile(outputPath, []byte(doc.Content+"\n"), 0o644); err != nil { // #nosec G306 -- rendered HTML is not sensitive
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Created %s\n", outputPath)
	}
	return nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// resolveOutputPath picks the output file: --output flag, second positional
// argument, or the input name with the configured extension, in that order.
// A flag or argument naming an existing directory gets the derived file name
// joined onto it.
func resolveOutputPath(flagOutput string, args []string, inputPath string, cfg *config.Config) string {
	derived := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + cfg.Output.Extension

	target := flagOutput
	if target == "" && len(args) > 1 {
		target = args[1]
	}
	if target != "" {
		if info, err := os.Stat(target); err == nil && info.IsDir() {
			return filepath.Join(target, derived)
		}
		return target
	}

	dir := cfg.Output.DefaultDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, derived)
}

// writeMeta exports frontmatter as YAML, preserving key order.
func writeMeta(path string, meta *mdlite.Metadata) error {
	pairs := make([]yamlutil.KV, 0, meta.Len())
	for _, key := range meta.Keys() {
		value, _ := meta.Get(key)
		pairs = append(pairs, yamlutil.KV{Key: key, Value: value.Interface()})
	}

	data, err := yamlutil.MarshalOrdered(pairs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteMeta, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- exported metadata is not sensitive
		return fmt.Errorf("%w: %v", ErrWriteMeta, err)
	}
	return nil
}
