// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "strings"

// WildcardTerm is sent as the free-text query when a keyword search has no
// keywords. arXiv treats an unqualified term as all:<term>.
const WildcardTerm = "all"

// Field prefixes of the arXiv search_query syntax.
const (
	fieldAuthor   = "au:"
	fieldCategory = "cat:"
	opAnd         = " AND "
)

// SortOrder selects how arXiv orders matches. Results are always descending.
type SortOrder string

const (
	SortByRelevance     SortOrder = "relevance"
	SortBySubmittedDate SortOrder = "submittedDate"
)

// KeywordQuery returns the free text unchanged, or WildcardTerm when it is blank.
func KeywordQuery(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return WildcardTerm
	}
	return text
}

// AuthorQuery returns the au: clause for name.
func AuthorQuery(name string) string {
	return fieldAuthor + strings.TrimSpace(name)
}

// CategoryQuery returns the cat: clause for category.
func CategoryQuery(category string) string {
	return fieldCategory + strings.TrimSpace(category)
}

// AuthorCategoryQuery returns the conjunction of the author and category clauses.
func AuthorCategoryQuery(name, category string) string {
	return AuthorQuery(name) + opAnd + CategoryQuery(category)
}

// KeywordCategoryQuery restricts a parenthesized free-text clause to a
// category. Blank keywords leave only the category clause.
func KeywordCategoryQuery(text, category string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return CategoryQuery(category)
	}
	return "(" + text + ")" + opAnd + CategoryQuery(category)
}

// BuildQuery turns any combination of criteria into one search_query string.
// An explicit boolean query wins over the other fields. Values are passed
// through verbatim; arXiv decides what is valid.
func BuildQuery(keywords, author, category, explicit string) string {
	keywords = strings.TrimSpace(keywords)
	author = strings.TrimSpace(author)
	category = strings.TrimSpace(category)

	switch {
	case strings.TrimSpace(explicit) != "":
		return strings.TrimSpace(explicit)
	case author != "" && category != "":
		return AuthorCategoryQuery(author, category)
	case author != "":
		return AuthorQuery(author)
	case category != "":
		return KeywordCategoryQuery(keywords, category)
	default:
		return KeywordQuery(keywords)
	}
}
