package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/soup"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	parser        string
	encoding      string
	noMultiValued bool
	verbose       bool

	logger *slog.Logger
}

// NewRootCommand builds the soup command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "soup",
		Short:         "soup parses HTML and XML documents and queries them from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.parser, "parser", "p", "", "Tree builder features, e.g. html.parser, html5 or xml.")
	flags.StringVar(&opts.encoding, "encoding", "", "Encoding of the input, skipping detection.")
	flags.BoolVar(&opts.noMultiValued, "no-multi-valued", false, "Keep class, rel and similar attributes as single strings.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output.")

	rootCmd.AddCommand(
		newPrettifyCommand(opts),
		newFindCommand(opts),
		newSelectCommand(opts),
		newTextCommand(opts),
	)
	return rootCmd
}

// ExecuteContext runs the command line and exits non-zero on failure.
func ExecuteContext(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load parses the file named by the first argument in args, or standard
// input when there is none.
func (o *globalOptions) load(cmd *cobra.Command, args []string) (*soup.Document, error) {
	var loader *soup.Loader
	source := "stdin"
	if len(args) > 0 && args[0] != "-" {
		source = args[0]
		loader = soup.Open(source)
	} else {
		loader = soup.FromReader(cmd.InOrStdin())
	}

	if o.parser != "" {
		loader = loader.Features(o.parser)
	}
	if o.encoding != "" {
		loader = loader.FromEncoding(o.encoding)
	}
	if o.noMultiValued {
		loader = loader.MultiValuedAttributes(nil)
	}

	doc, warnings, err := loader.Document()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		// the builder guess is expected when --parser is omitted
		if w.Type == soup.WarningGuessedParser {
			o.logger.Debug(w.Message, "source", source)
			continue
		}
		o.logger.Warn(w.Message, "source", source, "type", w.Type.String())
	}
	o.logger.Debug("parsed document",
		"source", source,
		"builder", doc.BuilderName(),
		"encoding", doc.OriginalEncoding(),
	)
	return doc, nil
}

// printNodes writes each node as markup, or as text when asText is set,
// one per line.
func printNodes(w io.Writer, nodes soup.ResultSet, asText bool) error {
	for _, n := range nodes {
		out := n.String()
		if asText {
			out = n.GetText("", false)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}
