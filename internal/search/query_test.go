// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordQuery(t *testing.T) {
	assert.Equal(t, "graph neural networks", KeywordQuery("graph neural networks"))
	assert.Equal(t, "graph", KeywordQuery("  graph "))
	assert.Equal(t, WildcardTerm, KeywordQuery(""))
	assert.Equal(t, WildcardTerm, KeywordQuery("   "))
}

func TestFieldQueries(t *testing.T) {
	assert.Equal(t, "au:Hinton", AuthorQuery("Hinton"))
	assert.Equal(t, "cat:cs.AI", CategoryQuery("cs.AI"))
	assert.Equal(t, "au:Hinton AND cat:cs.LG", AuthorCategoryQuery("Hinton", "cs.LG"))
	assert.Equal(t, "(graph networks) AND cat:cs.LG", KeywordCategoryQuery("graph networks", "cs.LG"))
	assert.Equal(t, "cat:cs.LG", KeywordCategoryQuery("  ", "cs.LG"))
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		keywords string
		author   string
		category string
		explicit string
		want     string
	}{
		{"keywords only", "attention", "", "", "", "attention"},
		{"nothing", "", "", "", "", WildcardTerm},
		{"author only", "", "Vaswani", "", "", "au:Vaswani"},
		{"category only", "", "", "cs.CL", "", "cat:cs.CL"},
		{"author and category", "", "Vaswani", "cs.CL", "", "au:Vaswani AND cat:cs.CL"},
		{"keywords and category", "attention", "", "cs.CL", "", "(attention) AND cat:cs.CL"},
		{"explicit wins", "attention", "Vaswani", "cs.CL", "ti:transformer ANDNOT au:Smith", "ti:transformer ANDNOT au:Smith"},
		{"malformed passes through", "", "", "not a category!", "", "cat:not a category!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildQuery(tt.keywords, tt.author, tt.category, tt.explicit)
			assert.Equal(t, tt.want, got)
		})
	}
}
