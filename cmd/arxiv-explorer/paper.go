package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-explorer/internal/search"
)

var paperCmd = &cobra.Command{
	Use:   "paper <arxiv-id>",
	Short: "Show the details of one paper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		p, found, err := client.ByIdentifier(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("paper %s not found", args[0])
		}

		w := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}
		search.FormatPaper(p, w)
		return nil
	},
}

func init() {
	paperCmd.Flags().Bool("json", false, "output the paper as JSON")
	rootCmd.AddCommand(paperCmd)
}
