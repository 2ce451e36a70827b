// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for arxiv-explorer: the paper
// record produced by the search pipeline and the configuration of each stage.
package types

import "time"

// UntitledPaper is the title given to entries that carry no title.
const UntitledPaper = "Untitled"

// Paper is one arXiv entry as seen by the search pipeline. A Paper is built
// once from a feed entry and never modified afterwards; optional fields fall
// back to their zero value when the entry lacks them.
type Paper struct {
	// Identifier is the arXiv short ID including any version suffix
	// (e.g. "2401.12345v2"), taken from the entry URI after "/abs/".
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the paper title with whitespace collapsed; UntitledPaper when absent.
	Title string `json:"title" yaml:"title"`

	// Summary is the abstract. Empty when absent.
	Summary string `json:"summary" yaml:"summary"`

	// Authors lists author display names in feed order. Never nil after parsing.
	Authors []string `json:"authors" yaml:"authors"`

	// Published is the first-version submission time. The zero value means
	// the entry carried no usable date.
	Published time.Time `json:"published,omitzero" yaml:"published,omitempty"`

	// PrimaryCategory is the arXiv category code (e.g. "cs.LG"), if reported.
	PrimaryCategory string `json:"primary_category,omitempty" yaml:"primary_category,omitempty"`

	// HTMLLink is the abstract page URL.
	HTMLLink string `json:"html_link,omitempty" yaml:"html_link,omitempty"`

	// PDFLink is the first link typed application/pdf or containing "pdf".
	PDFLink string `json:"pdf_link,omitempty" yaml:"pdf_link,omitempty"`
}

// HasPublished reports whether the paper carries a submission date.
func (p Paper) HasPublished() bool { return !p.Published.IsZero() }

// ScoredPaper pairs a paper with its relevance score. It only exists in the
// output of the relevance ranker.
type ScoredPaper struct {
	Score int   `json:"score" yaml:"score"`
	Paper Paper `json:"paper" yaml:"paper"`
}
