package commands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/soup"
)

func newFindCommand(opts *globalOptions) *cobra.Command {
	var (
		attrs   []string
		classes []string
		pattern bool
		limit   int
		asText  bool
	)

	cmd := &cobra.Command{
		Use:   "find <name> [file]",
		Short: "Prints the elements with a tag name, optionally filtered by attributes.",
		Long: `Prints the elements with a tag name. Use "*" to match any tag.

Attribute filters are key=value, or a bare key to require the attribute.
With --regexp the name and values are regular expressions.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := buildQuery(args[0], attrs, classes, pattern)
			if err != nil {
				return err
			}
			query = append(query, soup.Limit(limit))

			doc, err := opts.load(cmd, args[1:])
			if err != nil {
				return err
			}
			results := doc.FindAll(query...)
			opts.logger.Debug("find", "name", args[0], "results", len(results))
			return printNodes(cmd.OutOrStdout(), results, asText)
		},
	}
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "Attribute filter, key=value or key. Repeatable.")
	cmd.Flags().StringArrayVarP(&classes, "class", "c", nil, "CSS class filter. Repeatable.")
	cmd.Flags().BoolVarP(&pattern, "regexp", "r", false, "Treat the name and values as regular expressions.")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Stop after this many results.")
	cmd.Flags().BoolVarP(&asText, "text", "t", false, "Print the text of each result instead of its markup.")
	return cmd
}

// buildQuery turns command line filters into query options.
func buildQuery(name string, attrs, classes []string, pattern bool) ([]soup.QueryOption, error) {
	matcher := func(v string) (soup.Matcher, error) {
		if !pattern {
			return soup.Eq(v), nil
		}
		re, err := regexp.Compile(v)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", v, err)
		}
		return soup.Re(re), nil
	}

	var query []soup.QueryOption
	if name != "*" {
		m, err := matcher(name)
		if err != nil {
			return nil, err
		}
		query = append(query, soup.Name(m))
	} else {
		query = append(query, soup.Name(soup.Any))
	}

	for _, a := range attrs {
		key, value, hasValue := strings.Cut(a, "=")
		if key == "" {
			return nil, fmt.Errorf("invalid attribute filter %q", a)
		}
		if !hasValue {
			query = append(query, soup.Attr(key, soup.Any))
			continue
		}
		m, err := matcher(value)
		if err != nil {
			return nil, err
		}
		query = append(query, soup.Attr(key, m))
	}
	for _, c := range classes {
		m, err := matcher(c)
		if err != nil {
			return nil, err
		}
		query = append(query, soup.Class(m))
	}
	return query, nil
}
