package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTextCommand(opts *globalOptions) *cobra.Command {
	var (
		separator string
		strip     bool
	)

	cmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Prints the human-readable text of a document.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.GetText(separator, strip))
			return err
		},
	}
	cmd.Flags().StringVarP(&separator, "separator", "s", "", "String placed between text fragments.")
	cmd.Flags().BoolVar(&strip, "strip", false, "Trim each fragment and drop empty ones.")
	return cmd
}
