package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-explorer/internal/search"
	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List papers submitted in the last few days",
	Long: `Recent lists papers submitted within the last --days days, newest first.
Without criteria it covers all of arXiv; --query, --author and --category
narrow the listing the same way they narrow a search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		kw, _ := cmd.Flags().GetString("query")
		author, _ := cmd.Flags().GetString("author")
		category, _ := cmd.Flags().GetString("category")
		days, _ := cmd.Flags().GetInt("days")
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = cfg.Search.MaxResults
		}

		query := search.BuildQuery(kw, author, category, "")
		papers, err := search.Collect(cmd.Context(), client.Recent(query, days, limit))
		if err != nil {
			return err
		}

		out := search.SearchOutput{Route: "recent"}
		for _, p := range papers {
			out.Results = append(out.Results, types.ScoredPaper{Paper: p})
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return search.FormatJSON(out, cmd.OutOrStdout())
		}
		search.FormatTable(out, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	recentCmd.Flags().Int("days", 7, "window size in days")
	recentCmd.Flags().String("query", "", "restrict to these keywords")
	recentCmd.Flags().String("author", "", "restrict to an author")
	recentCmd.Flags().String("category", "", "restrict to an arXiv category")
	recentCmd.Flags().Int("limit", 0, "maximum number of results (default search.max_results)")
	recentCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(recentCmd)
}
