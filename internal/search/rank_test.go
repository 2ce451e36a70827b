// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		paper types.Paper
		terms []string
		want  int
	}{
		{"title hit counts double", types.Paper{Title: "A graph model", Summary: "nothing here"}, []string{"graph"}, 2},
		{"summary hits count once", types.Paper{Title: "Other", Summary: "graph graph graph"}, []string{"graph"}, 3},
		{"case insensitive", types.Paper{Title: "GRAPH", Summary: "Graph"}, []string{"graph"}, 3},
		{"substring matches", types.Paper{Title: "Graphs", Summary: "subgraph"}, []string{"graph"}, 3},
		{"multiple terms", types.Paper{Title: "graph learning", Summary: "learning"}, []string{"graph", "learning"}, 5},
		{"no terms", types.Paper{Title: "graph"}, nil, 0},
		{"no match", types.Paper{Title: "x", Summary: "y"}, []string{"graph"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.paper, tt.terms))
		})
	}
}

func TestNormalizeTerms(t *testing.T) {
	got := NormalizeTerms([]string{"Graph", "graph", " ", "Neural", ""})
	assert.Equal(t, []string{"graph", "neural"}, got)
}

func TestRankPapers_SummaryHeavyBeatsSingleTitleHit(t *testing.T) {
	a := types.Paper{Identifier: "A", Title: "A graph approach", Summary: "unrelated"}
	b := types.Paper{Identifier: "B", Title: "Another approach", Summary: "graph graph graph"}

	ranked := RankPapers([]types.Paper{a, b}, []string{"graph"})
	require.Len(t, ranked, 2)
	assert.Equal(t, "B", ranked[0].Paper.Identifier)
	assert.Equal(t, 3, ranked[0].Score)
	assert.Equal(t, "A", ranked[1].Paper.Identifier)
	assert.Equal(t, 2, ranked[1].Score)
}

func TestRankPapers_AllZeroKeepsEverythingInOrder(t *testing.T) {
	papers := []types.Paper{
		{Identifier: "1", Title: "alpha"},
		{Identifier: "2", Title: "beta"},
		{Identifier: "3", Title: "gamma"},
	}

	ranked := RankPapers(papers, []string{"quantum"})
	require.Len(t, ranked, 3)
	for i, r := range ranked {
		assert.Equal(t, papers[i].Identifier, r.Paper.Identifier)
		assert.Zero(t, r.Score)
	}
}

func TestRankPapers_DropsZeroScoresWhenSomethingMatches(t *testing.T) {
	papers := []types.Paper{
		{Identifier: "miss", Title: "alpha"},
		{Identifier: "hit1", Title: "quantum"},
		{Identifier: "hit2", Summary: "quantum"},
	}

	ranked := RankPapers(papers, []string{"quantum"})
	require.Len(t, ranked, 2)
	assert.Equal(t, "hit1", ranked[0].Paper.Identifier)
	assert.Equal(t, "hit2", ranked[1].Paper.Identifier)
}

func TestRankPapers_TiesKeepInputOrder(t *testing.T) {
	papers := []types.Paper{
		{Identifier: "first", Summary: "graph"},
		{Identifier: "top", Title: "graph graph"},
		{Identifier: "second", Summary: "graph"},
		{Identifier: "third", Summary: "graph"},
	}

	ranked := RankPapers(papers, []string{"graph"})
	got := make([]string, len(ranked))
	for i, r := range ranked {
		got[i] = r.Paper.Identifier
	}
	assert.Equal(t, []string{"top", "first", "second", "third"}, got)
}

func TestRankPapers_Empty(t *testing.T) {
	assert.Empty(t, RankPapers(nil, []string{"graph"}))
}

func TestRank_DrainsSequence(t *testing.T) {
	inner := &batchSequence{batches: [][]types.Paper{
		{{Identifier: "x", Title: "nothing"}},
		{{Identifier: "y", Title: "graph"}},
	}}

	ranked, err := Rank(context.Background(), inner, []string{"Graph"})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "y", ranked[0].Paper.Identifier)
	assert.Equal(t, 2, inner.calls)
}
