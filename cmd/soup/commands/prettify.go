package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsawler/soup"
)

func newPrettifyCommand(opts *globalOptions) *cobra.Command {
	var (
		formatter string
		compact   bool
	)

	cmd := &cobra.Command{
		Use:   "prettify [file]",
		Short: "Re-indents a document, one tag per line.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd, args)
			if err != nil {
				return err
			}
			f, ok := soup.LookupFormatter(formatter, doc.IsXML())
			if !ok {
				return fmt.Errorf("unknown formatter %q", formatter)
			}

			out := doc.PrettifyWith(f)
			if compact {
				out = doc.Format(f) + "\n"
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&formatter, "formatter", "f", "minimal", "Output formatter: minimal, html, html5 or null.")
	cmd.Flags().BoolVar(&compact, "compact", false, "Write the document without re-indenting it.")
	return cmd
}
