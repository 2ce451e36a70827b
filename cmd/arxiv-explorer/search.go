package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-explorer/internal/search"
	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search arXiv by keyword, author and category",
	Long: `Search queries arXiv for papers matching the given criteria. An author
together with a category narrows to that author's work in the category;
keywords within a category search both. Whenever keywords are given the
results are re-ranked by how often the keywords appear in the title and
abstract.

--raw sends a boolean arXiv query as-is (for example "au:hinton AND ti:capsule").
--rerun repeats a search saved earlier with --save.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "keywords to search for and rank by")
	searchCmd.Flags().String("author", "", "filter by author name")
	searchCmd.Flags().String("category", "", "filter by arXiv category (e.g. cs.LG)")
	searchCmd.Flags().String("raw", "", "explicit arXiv boolean query")
	searchCmd.Flags().Int("limit", 0, "maximum number of results (default search.max_results)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("stream", false, "print each paper as soon as it is available")
	searchCmd.Flags().String("save", "", "write the query and results to a YAML file")
	searchCmd.Flags().String("rerun", "", "repeat the search stored in a YAML file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	c, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	if c.Limit <= 0 {
		c.Limit = cfg.Search.MaxResults
	}

	w := cmd.OutOrStdout()
	raw, _ := cmd.Flags().GetString("raw")
	if raw == "" && c.IsEmpty() {
		return errors.New("give at least one of --query, --author, --category or --raw")
	}

	searcher := search.NewSearcher(client, logger)
	if stream, _ := cmd.Flags().GetBool("stream"); stream && raw == "" {
		seq, _ := searcher.Stream(c)
		return printStream(cmd, seq, w)
	}

	var out search.SearchOutput
	if raw != "" {
		out, err = runRaw(cmd, client, raw, c, cfg.Search.PageSize)
	} else {
		out, err = searcher.Search(cmd.Context(), c)
	}
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := search.WriteQueryFile(path, c, out); err != nil {
			return err
		}
		logger.Sugar().Infof("saved %d results to %s", len(out.Results), path)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return search.FormatJSON(out, w)
	}
	search.FormatTable(out, w)
	return nil
}

// criteriaFromFlags reads criteria from a saved query file when --rerun is
// set, and from the individual flags otherwise.
func criteriaFromFlags(cmd *cobra.Command) (search.Criteria, error) {
	if path, _ := cmd.Flags().GetString("rerun"); path != "" {
		qf, err := search.ReadQueryFile(path)
		if err != nil {
			return search.Criteria{}, err
		}
		c := qf.Query.ToCriteria()
		if cmd.Flags().Changed("limit") {
			c.Limit, _ = cmd.Flags().GetInt("limit")
		}
		return c, nil
	}

	var c search.Criteria
	c.Keywords, _ = cmd.Flags().GetString("query")
	c.Author, _ = cmd.Flags().GetString("author")
	c.Category, _ = cmd.Flags().GetString("category")
	c.Limit, _ = cmd.Flags().GetInt("limit")
	return c, nil
}

// runRaw pages through an explicit query in relevance order. Keywords, when
// given, rank the results the same way a regular search does.
func runRaw(cmd *cobra.Command, client *search.Client, raw string, c search.Criteria, pageSize int) (search.SearchOutput, error) {
	query := search.BuildQuery(c.Keywords, c.Author, c.Category, raw)
	seq := client.Paginated(query, pageSize, c.Limit)
	out := search.SearchOutput{Route: search.RouteExplicit}

	if terms := c.Terms(); len(terms) > 0 {
		scored, err := search.Rank(cmd.Context(), seq, terms)
		if err != nil {
			return out, err
		}
		out.Ranked = true
		out.Results = scored
		return out, nil
	}

	papers, err := search.Collect(cmd.Context(), seq)
	if err != nil {
		return out, err
	}
	for _, p := range papers {
		out.Results = append(out.Results, types.ScoredPaper{Paper: p})
	}
	return out, nil
}

func printStream(cmd *cobra.Command, seq search.Sequence, w io.Writer) error {
	n := 0
	for {
		batch, err := seq.Next(cmd.Context())
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		for _, p := range batch {
			if n > 0 {
				fmt.Fprintln(w)
			}
			search.FormatPaper(p, w)
			n++
		}
	}
	if n == 0 {
		fmt.Fprintln(w, "No results found.")
	}
	return nil
}
