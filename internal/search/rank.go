// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"sort"
	"strings"

	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

// Score counts occurrences of each term in the paper's title and summary,
// counting title occurrences twice in total: one title hit plus one summary
// hit scores 3. The weight follows that worked example rather than a 2x
// title bonus added on top of the combined count. Terms must already be
// lowercase.
func Score(p types.Paper, terms []string) int {
	title := strings.ToLower(p.Title)
	text := title + " " + strings.ToLower(p.Summary)

	score := 0
	for _, t := range terms {
		score += strings.Count(text, t)
		score += strings.Count(title, t)
	}
	return score
}

// NormalizeTerms lowercases terms and removes blanks and repeats, keeping
// first-seen order.
func NormalizeTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// RankPapers scores papers against terms and orders them by descending score.
// Equal scores keep their input order. If any paper scores above zero, the
// zero-scoring papers are dropped; if none does, every paper is returned
// with score zero in input order.
func RankPapers(papers []types.Paper, terms []string) []types.ScoredPaper {
	terms = NormalizeTerms(terms)

	scored := make([]types.ScoredPaper, len(papers))
	matched := 0
	for i, p := range papers {
		s := Score(p, terms)
		if s > 0 {
			matched++
		}
		scored[i] = types.ScoredPaper{Score: s, Paper: p}
	}
	if matched == 0 {
		return scored
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored[:matched]
}

// Rank drains seq and ranks the result with RankPapers.
func Rank(ctx context.Context, seq Sequence, terms []string) ([]types.ScoredPaper, error) {
	papers, err := Collect(ctx, seq)
	if err != nil {
		return nil, err
	}
	return RankPapers(papers, terms), nil
}
