// Package cmd — normalize command.
// This is the main command that orchestrates the pipeline:
// load → normalize → typography → render → write.
//
// It handles flag validation, renderer selection, and single-note / --all modes.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/notepipe/core"
	"github.com/gaurav-prasanna/notepipe/core/cache"
	"github.com/gaurav-prasanna/notepipe/core/fetch"
	"github.com/gaurav-prasanna/notepipe/core/normalize"
	"github.com/gaurav-prasanna/notepipe/core/output"
	"github.com/gaurav-prasanna/notepipe/core/render"
	"github.com/gaurav-prasanna/notepipe/core/typography"
	"github.com/gaurav-prasanna/notepipe/crawl"
)

// Flag variables.
var (
	flagAll         bool
	flagJSON        bool
	flagMarkdown    bool
	flagHTML        bool
	flagPDF         bool
	flagTerm        bool
	flagFrontMatter bool
	flagOutputDir   string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <path|->",
	Short: "Normalize a note and render it in the selected format",
	Long: `Normalize reads a note (HTML from a rich-text editor, Markdown, or plain
text), converts it to typed blocks, computes its typography scale, and renders
it. Without --output_dir the result is written to stdout.

Examples:
  notepipe normalize note.html --markdown
  cat note.txt | notepipe normalize - --json
  notepipe normalize ./notes --all --html --output_dir ./out
  notepipe normalize index.md --all --pdf --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	// Mode flags.
	normalizeCmd.Flags().BoolVar(&flagAll, "all", false, "Process every note in a directory, or every note linked from a note")

	// Output format flags (mutually exclusive). Without one, the configured format is used.
	normalizeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	normalizeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	normalizeCmd.Flags().BoolVar(&flagHTML, "html", false, "Output HTML")
	normalizeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	normalizeCmd.Flags().BoolVar(&flagTerm, "term", false, "Output a styled terminal preview")

	normalizeCmd.Flags().BoolVar(&flagFrontMatter, "front_matter", false, "Strip YAML/TOML front matter from text notes")
	normalizeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: stdout for one note, current directory for --all)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := selectFormat()
	if err != nil {
		return err
	}
	if flagAll && target == fetch.StdinID {
		return fmt.Errorf("--all needs a file or directory, not stdin")
	}

	renderer, err := selectRenderer(format)
	if err != nil {
		return err
	}

	frontMatter := cfg.FrontMatter
	if cmd.Flags().Changed("front_matter") {
		frontMatter = flagFrontMatter
	}
	normalizer, err := newNormalizer(frontMatter)
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if cmd.Flags().Changed("output_dir") {
		outputDir = flagOutputDir
	}

	source := fetch.New("")
	source.Stdin = cmd.InOrStdin()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagAll {
		writer, err := output.New(outputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
		return runAll(ctx, cmd, target, source, normalizer, renderer, writer)
	}

	var writer *output.Writer
	if outputDir != "" {
		if writer, err = output.New(outputDir); err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
	}
	return runOnly(ctx, cmd, target, source, normalizer, renderer, writer)
}

// newNormalizer builds the normalizer, memoised when a cache is configured.
func newNormalizer(frontMatter bool) (core.Normalizer, error) {
	n := normalize.New(
		normalize.WithLogger(log),
		normalize.WithFrontMatter(frontMatter),
	)
	if cfg.CacheSize <= 0 {
		return n, nil
	}
	cached, err := cache.New(n, cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// runOnly processes a single note. A nil writer sends the result to stdout.
func runOnly(
	ctx context.Context,
	cmd *cobra.Command,
	id string,
	source core.NoteSource,
	normalizer core.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	data, err := processNote(ctx, id, source, normalizer, renderer)
	if err != nil {
		return err
	}

	if writer == nil {
		return output.WriteTo(cmd.OutOrStdout(), data)
	}
	path, err := writer.WriteOne(id, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// runAll discovers notes from root and processes each through the pipeline.
func runAll(
	ctx context.Context,
	cmd *cobra.Command,
	root string,
	source core.NoteSource,
	normalizer core.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fmt.Fprintf(out, "Discovering notes from %s...\n", root)

	notes, err := crawl.DiscoverAll(ctx, root)
	if err != nil {
		return fmt.Errorf("discovering notes: %w", err)
	}

	fmt.Fprintf(out, "Found %d notes to process\n", len(notes))

	treeRoot := root
	if !isDir(root) {
		treeRoot = parentDir(root)
	}

	var errCount int
	for i, path := range notes {
		fmt.Fprintf(out, "[%d/%d] Processing %s\n", i+1, len(notes), path)

		data, err := processNote(ctx, path, source, normalizer, renderer)
		if err != nil {
			fmt.Fprintf(errOut, "  ✗ Error: %v\n", err)
			log.Warn().Err(err).Str("note", path).Msg("note failed")
			errCount++
			continue
		}

		written, err := writer.WriteTree(treeRoot, path, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(errOut, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(out, "  ✓ Written: %s\n", written)
	}

	if errCount > 0 {
		fmt.Fprintf(errOut, "\n%d/%d notes failed\n", errCount, len(notes))
	}
	return nil
}

// processNote runs a single note through the full pipeline.
func processNote(
	ctx context.Context,
	id string,
	source core.NoteSource,
	normalizer core.Normalizer,
	renderer core.Renderer,
) ([]byte, error) {
	doc, err := loadDocument(ctx, id, source, normalizer)
	if err != nil {
		return nil, err
	}

	data, err := renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// loadDocument loads, normalizes and scales a note.
func loadDocument(ctx context.Context, id string, source core.NoteSource, normalizer core.Normalizer) (core.Document, error) {
	note, err := source.Load(ctx, id)
	if err != nil {
		return core.Document{}, fmt.Errorf("load: %w", err)
	}

	blocks := normalizer.Normalize(note.Raw())
	log.Debug().Str("note", id).Int("blocks", len(blocks)).Msg("normalized note")

	return core.Document{
		Meta: core.NoteMetadata{
			ID:    note.ID,
			Path:  note.Path,
			Title: note.Title,
		},
		Blocks:     blocks,
		Typography: typography.Compute(blocks),
	}, nil
}

// selectFormat checks that at most one output format flag is set and falls
// back to the configured format.
func selectFormat() (string, error) {
	var chosen []string
	for name, set := range map[string]bool{
		"json":     flagJSON,
		"markdown": flagMarkdown,
		"html":     flagHTML,
		"pdf":      flagPDF,
		"term":     flagTerm,
	} {
		if set {
			chosen = append(chosen, name)
		}
	}

	switch len(chosen) {
	case 0:
		return cfg.Format, nil
	case 1:
		return chosen[0], nil
	default:
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(chosen))
	}
}

// selectRenderer creates the Renderer for a format name.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "json":
		return render.NewJSONRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "html":
		return render.NewHTMLRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(cfg.PDF.PageSize), nil
	case "term":
		return render.NewTermRenderer(cfg.Term.Width, ""), nil
	default:
		return nil, fmt.Errorf("format %q: %w", format, core.ErrUnsupportedFormat)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func parentDir(path string) string {
	return filepath.Dir(filepath.Clean(path))
}
