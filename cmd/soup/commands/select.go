package commands

import (
	"github.com/spf13/cobra"
)

func newSelectCommand(opts *globalOptions) *cobra.Command {
	var (
		first  bool
		asText bool
	)

	cmd := &cobra.Command{
		Use:   "select <selector> [file]",
		Short: "Prints the elements matching a CSS selector.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd, args[1:])
			if err != nil {
				return err
			}
			results, err := doc.Select(args[0])
			if err != nil {
				return err
			}
			if first && len(results) > 1 {
				results = results[:1]
			}
			opts.logger.Debug("select", "selector", args[0], "results", len(results))
			return printNodes(cmd.OutOrStdout(), results, asText)
		},
	}
	cmd.Flags().BoolVar(&first, "first", false, "Print only the first match.")
	cmd.Flags().BoolVarP(&asText, "text", "t", false, "Print the text of each result instead of its markup.")
	return cmd
}
