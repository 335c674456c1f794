package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/bsui/internal/search"
)

func newSearchCmd() *cobra.Command {
	var (
		limit int
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Query the search index",
		Long: `Query the index built from the content tree, the application routes and
the declared pages. Results are ordered by score.

Examples:
  bsui search button
  bsui search "getting started" --limit 5 -o json
  bsui search --all                   # list every indexed document`,
		Args: cobra.ArbitraryArgs,
	}

	format := addOutputFlag(cmd, "table", "table", "json", "yaml")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results (default from config)")
	cmd.Flags().BoolVar(&all, "all", false, "List every indexed document instead of searching")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if all {
			docs := a.search.Documents(cmd.Context())
			return writeStructured(out, format.String(), docs, func() error {
				t := &table{header: []string{"TYPE", "TITLE", "URL"}}
				for _, d := range docs {
					t.add(d.Type, d.Title, d.URL)
				}
				return t.write(out)
			})
		}

		query := strings.Join(args, " ")
		results := a.search.Search(cmd.Context(), query, limit)
		return writeStructured(out, format.String(), results, func() error {
			return resultTable(results).write(out)
		})
	}
	return cmd
}

func resultTable(results []search.Result) *table {
	t := &table{header: []string{"TYPE", "TITLE", "URL", "DESCRIPTION"}}
	for _, r := range results {
		t.add(r.Type, r.Title, r.URL, r.Description)
	}
	return t
}
