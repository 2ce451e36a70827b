// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search turns user criteria into arXiv queries, retrieves the
// matching papers as lazy sequences, and filters or ranks them.
//
// Retrieval lives on Client; Searcher decides which Client method serves a
// given combination of criteria and whether the results are re-ranked.
package search

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

// Source is the part of Client the Searcher depends on.
type Source interface {
	ByKeywords(text string, limit int) Sequence
	ByAuthor(name string, limit int) Sequence
	ByCategory(category string, limit int) Sequence
	ByAuthorAndCategory(name, category string, limit int) Sequence
	ByExplicitQuery(query string, limit int, order SortOrder) Sequence
}

var _ Source = (*Client)(nil)

// Criteria is what a user typed into the search form.
type Criteria struct {
	Keywords string
	Author   string
	Category string
	// Limit caps the number of papers retrieved. Zero uses the source default.
	Limit int
}

// IsEmpty reports whether no criterion was given.
func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Keywords) == "" &&
		strings.TrimSpace(c.Author) == "" &&
		strings.TrimSpace(c.Category) == ""
}

// Terms returns the whitespace-separated keywords used for ranking.
func (c Criteria) Terms() []string {
	return strings.Fields(c.Keywords)
}

// Route names the retrieval path chosen for a Criteria.
type Route string

const (
	RouteAuthorCategory   Route = "author+category"
	RouteAuthor           Route = "author"
	RouteCategory         Route = "category"
	RouteKeywordsCategory Route = "keywords+category"
	RouteKeywords         Route = "keywords"
	// RouteExplicit marks results of a caller-written boolean query.
	RouteExplicit Route = "explicit"
)

// Plan picks the retrieval path for c. Precedence: author with category,
// author alone, category without keywords, keywords within a category, and
// finally keywords alone (the wildcard when blank). Results are re-ranked
// whenever keywords were given.
func Plan(c Criteria) (route Route, rank bool) {
	kw := strings.TrimSpace(c.Keywords)
	author := strings.TrimSpace(c.Author)
	category := strings.TrimSpace(c.Category)

	switch {
	case author != "" && category != "":
		route = RouteAuthorCategory
	case author != "":
		route = RouteAuthor
	case category != "" && kw == "":
		route = RouteCategory
	case category != "":
		route = RouteKeywordsCategory
	default:
		route = RouteKeywords
	}
	return route, kw != ""
}

// Searcher runs searches against a Source. It keeps no state between calls.
type Searcher struct {
	Source Source
	Logger *zap.Logger
}

// NewSearcher returns a Searcher over src.
func NewSearcher(src Source, logger *zap.Logger) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{Source: src, Logger: logger}
}

// SearchOutput holds the papers found and how they were obtained.
type SearchOutput struct {
	Route Route
	// Ranked is true when Results are ordered by relevance score.
	Ranked  bool
	Results []types.ScoredPaper
}

// Stream returns the papers for c as a lazy sequence. When c has keywords the
// sequence ranks everything on its first Next call.
func (s *Searcher) Stream(c Criteria) (Sequence, Route) {
	route, rank := Plan(c)
	seq := s.open(route, c)
	if rank {
		seq = &rankedSequence{inner: seq, terms: c.Terms()}
	}
	return seq, route
}

// Search runs c to completion.
func (s *Searcher) Search(ctx context.Context, c Criteria) (SearchOutput, error) {
	route, rank := Plan(c)
	s.Logger.Info("search",
		zap.String("route", string(route)),
		zap.Bool("ranked", rank),
		zap.String("keywords", c.Keywords),
		zap.String("author", c.Author),
		zap.String("category", c.Category))

	seq := s.open(route, c)
	out := SearchOutput{Route: route, Ranked: rank}

	if rank {
		scored, err := Rank(ctx, seq, c.Terms())
		if err != nil {
			return out, err
		}
		out.Results = scored
		return out, nil
	}

	papers, err := Collect(ctx, seq)
	if err != nil {
		return out, err
	}
	out.Results = make([]types.ScoredPaper, len(papers))
	for i, p := range papers {
		out.Results[i] = types.ScoredPaper{Paper: p}
	}
	return out, nil
}

func (s *Searcher) open(route Route, c Criteria) Sequence {
	kw := strings.TrimSpace(c.Keywords)
	author := strings.TrimSpace(c.Author)
	category := strings.TrimSpace(c.Category)

	switch route {
	case RouteAuthorCategory:
		return s.Source.ByAuthorAndCategory(author, category, c.Limit)
	case RouteAuthor:
		return s.Source.ByAuthor(author, c.Limit)
	case RouteCategory:
		return s.Source.ByCategory(category, c.Limit)
	case RouteKeywordsCategory:
		return s.Source.ByExplicitQuery(KeywordCategoryQuery(kw, category), c.Limit, SortByRelevance)
	default:
		return s.Source.ByKeywords(KeywordQuery(kw), c.Limit)
	}
}

type rankedSequence struct {
	inner Sequence
	terms []string
	done  bool
}

func (r *rankedSequence) Next(ctx context.Context) ([]types.Paper, error) {
	if r.done {
		return nil, io.EOF
	}
	r.done = true
	scored, err := Rank(ctx, r.inner, r.terms)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return nil, io.EOF
	}
	papers := make([]types.Paper, len(scored))
	for i, sp := range scored {
		papers[i] = sp.Paper
	}
	return papers, nil
}
