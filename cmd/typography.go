package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/notepipe/core"
	"github.com/gaurav-prasanna/notepipe/core/fetch"
	"github.com/gaurav-prasanna/notepipe/core/normalize"
)

var typographyCmd = &cobra.Command{
	Use:   "typography <path|->",
	Short: "Print the density metrics and type scale of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := fetch.New("")
		source.Stdin = cmd.InOrStdin()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		n := normalize.New(normalize.WithLogger(log), normalize.WithFrontMatter(cfg.FrontMatter))
		doc, err := loadDocument(ctx, args[0], source, n)
		if err != nil {
			return err
		}
		return printScale(cmd.OutOrStdout(), doc.Typography)
	},
}

func init() {
	rootCmd.AddCommand(typographyCmd)
}

// categories in display order.
var categories = []core.Category{
	core.CategoryHeading1,
	core.CategoryHeading2,
	core.CategoryHeading3,
	core.CategoryBody,
	core.CategoryCode,
}

func printScale(w io.Writer, s core.TypographyScale) error {
	m := s.Metrics
	fmt.Fprintf(w, "scale %.2f (%s)\n", s.Scale, s.LineHeight)
	fmt.Fprintf(w, "blocks %d, chars %d, headings %d, code %t, lists %t\n\n",
		m.TotalBlocks, m.TotalChars, m.HeadingCount, m.HasCode, m.HasList)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSIZE\tLINE HEIGHT\tSPACING")
	for _, c := range categories {
		tok := s.TokenFor(c)
		fmt.Fprintf(tw, "%s\t%.3f%s\t%.2f\t%.2fem\n", c, tok.Size, tok.Unit, tok.LineHeight, tok.Spacing)
	}
	return tw.Flush()
}
