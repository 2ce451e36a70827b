// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "fmt"

// RetrievalError reports a failed exchange with the arXiv API: a transport
// failure, a non-200 status, an unparseable feed, or an error entry in the
// feed. It is never retried here.
type RetrievalError struct {
	// Op names the retrieval step, e.g. "query" or "lookup".
	Op string
	// Query is the search_query or id_list that was sent.
	Query string
	Err   error
}

func (e *RetrievalError) Error() string {
	if e.Query == "" {
		return fmt.Sprintf("arXiv %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("arXiv %s %q: %v", e.Op, e.Query, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// APIError is the message carried by an error entry in an arXiv feed
// (entries whose id points under /api/errors).
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return "arXiv API error: " + e.Message }
