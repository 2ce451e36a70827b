// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

const (
	absMarker      = "/abs/"
	errorIDMarker  = "/api/errors"
	pdfMediaType   = "application/pdf"
	pdfLinkMarker  = "pdf"
	arxivNamespace = "arxiv"
)

// feedPage is one parsed arXiv response.
type feedPage struct {
	Papers []types.Paper
	// TotalResults is opensearch:totalResults, or -1 when the feed omits it.
	TotalResults int
}

// parseFeed decodes an arXiv Atom response. A feed containing an error entry
// is reported as an *APIError.
func parseFeed(data []byte) (feedPage, error) {
	fp := &atom.Parser{}
	feed, err := fp.Parse(bytes.NewReader(data))
	if err != nil {
		return feedPage{}, fmt.Errorf("parsing arXiv feed: %w", err)
	}

	page := feedPage{
		Papers:       make([]types.Paper, 0, len(feed.Entries)),
		TotalResults: totalResults(feed.Extensions),
	}
	for _, entry := range feed.Entries {
		if entry == nil {
			continue
		}
		if strings.Contains(entry.ID, errorIDMarker) {
			return feedPage{}, &APIError{Message: strings.TrimSpace(entry.Summary)}
		}
		page.Papers = append(page.Papers, paperFromEntry(entry))
	}
	return page, nil
}

// paperFromEntry builds a Paper, substituting the documented fallback for
// every field the entry lacks.
func paperFromEntry(entry *atom.Entry) types.Paper {
	p := types.Paper{
		Identifier:      extractArxivID(entry.ID),
		Title:           collapseSpace(entry.Title),
		Summary:         strings.TrimSpace(entry.Summary),
		Authors:         make([]string, 0, len(entry.Authors)),
		PrimaryCategory: primaryCategory(entry),
	}
	if p.Title == "" {
		p.Title = types.UntitledPaper
	}

	for _, a := range entry.Authors {
		if a == nil {
			continue
		}
		if name := strings.TrimSpace(a.Name); name != "" {
			p.Authors = append(p.Authors, name)
		}
	}

	if entry.PublishedParsed != nil {
		p.Published = *entry.PublishedParsed
	} else if t, err := time.Parse(time.RFC3339, strings.TrimSpace(entry.Published)); err == nil {
		p.Published = t
	}

	p.HTMLLink, p.PDFLink = selectLinks(entry.Links)
	if p.HTMLLink == "" && strings.Contains(entry.ID, absMarker) {
		p.HTMLLink = strings.TrimSpace(entry.ID)
	}
	return p
}

// extractArxivID returns everything after "/abs/" in the entry URI,
// version suffix included ("http://arxiv.org/abs/2401.12345v2" → "2401.12345v2").
// URIs without the marker fall back to their last path segment.
func extractArxivID(idURL string) string {
	idURL = strings.TrimSpace(idURL)
	if idx := strings.LastIndex(idURL, absMarker); idx >= 0 {
		return strings.Trim(idURL[idx+len(absMarker):], "/")
	}
	idURL = strings.TrimRight(idURL, "/")
	if idx := strings.LastIndex(idURL, "/"); idx >= 0 {
		return idURL[idx+1:]
	}
	return idURL
}

// selectLinks picks the abstract page (rel="alternate") and the first PDF link.
func selectLinks(links []*atom.Link) (html, pdf string) {
	for _, l := range links {
		if l == nil || l.Href == "" {
			continue
		}
		if html == "" && (l.Rel == "alternate" || l.Rel == "") && l.Type != pdfMediaType {
			html = l.Href
		}
		if pdf == "" && (l.Type == pdfMediaType || strings.Contains(l.Href, pdfLinkMarker)) {
			pdf = l.Href
		}
	}
	return html, pdf
}

// primaryCategory reads <arxiv:primary_category term="..."/>, falling back to
// the first Atom category.
func primaryCategory(entry *atom.Entry) string {
	if exts, ok := entry.Extensions[arxivNamespace]; ok {
		for _, e := range exts["primary_category"] {
			if term := strings.TrimSpace(e.Attrs["term"]); term != "" {
				return term
			}
		}
	}
	for _, c := range entry.Categories {
		if c != nil && c.Term != "" {
			return c.Term
		}
	}
	return ""
}

func totalResults(exts ext.Extensions) int {
	for _, ns := range exts {
		for _, e := range ns["totalResults"] {
			if n, err := strconv.Atoi(strings.TrimSpace(e.Value)); err == nil {
				return n
			}
		}
	}
	return -1
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
