package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtesession/internal/document"
)

func newSourceCmd() *cobra.Command {
	var stats bool
	c := &cobra.Command{
		Use:   "source <file>",
		Short: "Print the structural source of a document",
		Long: `Loads a document the same way the editor does and prints the
pretty-printed source that the Source screen shows and Copy places on the
clipboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			src, err := doc.Source()
			if err != nil {
				return fmt.Errorf("encode document: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, src)
			if stats {
				st := doc.Stats()
				fmt.Fprintf(out, "blocks=%d words=%d chars=%d\n", st.Blocks, st.Words, st.Chars)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&stats, "stats", false, "also print block, word and character counts")
	return c
}
