// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

const dateFmt = "2006-01-02"

// FormatTable writes results as a human-readable table to w.
func FormatTable(out SearchOutput, w io.Writer) {
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-5s  %-16s  %-56s  %-20s  %s\n",
		"Rank", "Score", "ID", "Title", "Authors", "Published")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, r := range out.Results {
		score := "-"
		if out.Ranked {
			score = fmt.Sprintf("%d", r.Score)
		}
		fmt.Fprintf(w, "%-4d  %-5s  %-16s  %-56s  %-20s  %s\n",
			i+1, score, r.Paper.Identifier, truncate(r.Paper.Title, 56),
			formatAuthors(r.Paper.Authors), formatDate(r.Paper))
	}

	fmt.Fprintf(w, "\n%d results (%s", len(out.Results), out.Route)
	if out.Ranked {
		fmt.Fprint(w, ", ranked by relevance")
	}
	fmt.Fprintln(w, ")")
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(out SearchOutput, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Results)
}

// FormatPaper writes the detail view of a single paper.
func FormatPaper(p types.Paper, w io.Writer) {
	fmt.Fprintf(w, "%s\n", p.Title)
	fmt.Fprintf(w, "ID:        %s\n", p.Identifier)
	if len(p.Authors) > 0 {
		fmt.Fprintf(w, "Authors:   %s\n", strings.Join(p.Authors, ", "))
	}
	if p.HasPublished() {
		fmt.Fprintf(w, "Published: %s\n", formatDate(p))
	}
	if p.PrimaryCategory != "" {
		fmt.Fprintf(w, "Category:  %s\n", p.PrimaryCategory)
	}
	if p.HTMLLink != "" {
		fmt.Fprintf(w, "Abstract:  %s\n", p.HTMLLink)
	}
	if p.PDFLink != "" {
		fmt.Fprintf(w, "PDF:       %s\n", p.PDFLink)
	}
	if p.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", p.Summary)
	}
}

func formatDate(p types.Paper) string {
	if !p.HasPublished() {
		return ""
	}
	return p.Published.UTC().Format(dateFmt)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
