// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-explorer/internal/httputil"
	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

// Client retrieves papers from the arXiv API. A Client holds no per-search
// state: every method returns a fresh Sequence, so one Client can serve any
// number of independent searches.
type Client struct {
	HTTP   *http.Client
	Config types.SearchConfig
	Logger *zap.Logger

	// Sleep pauses between page requests. Tests replace it to avoid real waits.
	Sleep func(ctx context.Context, d time.Duration) error
	// Now supplies the clock for recency cutoffs.
	Now func() time.Time
}

// NewClient returns a Client for cfg. Zero values in cfg are replaced with
// the defaults from types.DefaultConfig; a nil logger discards output.
// PageDelay can be raised but never switched off: a non-positive value gets
// the default.
func NewClient(cfg types.SearchConfig, logger *zap.Logger) *Client {
	def := types.DefaultConfig().Search
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = def.MaxResults
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.PageDelay <= 0 {
		cfg.PageDelay = def.PageDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
		Sleep:  sleepContext,
		Now:    time.Now,
	}
}

// ByKeywords searches all fields for text, best matches first. Blank text
// searches for WildcardTerm.
func (c *Client) ByKeywords(text string, limit int) Sequence {
	return c.query(KeywordQuery(text), SortByRelevance, c.Config.PageSize, limit)
}

// ByAuthor returns an author's papers, newest first.
func (c *Client) ByAuthor(name string, limit int) Sequence {
	return c.query(AuthorQuery(name), SortBySubmittedDate, c.Config.PageSize, limit)
}

// ByCategory returns papers in an arXiv category (e.g. "cs.AI"), newest first.
func (c *Client) ByCategory(category string, limit int) Sequence {
	return c.query(CategoryQuery(category), SortBySubmittedDate, c.Config.PageSize, limit)
}

// ByAuthorAndCategory returns an author's papers within one category, newest first.
func (c *Client) ByAuthorAndCategory(name, category string, limit int) Sequence {
	return c.query(AuthorCategoryQuery(name, category), SortBySubmittedDate, c.Config.PageSize, limit)
}

// ByExplicitQuery runs a caller-written boolean query in the given order.
func (c *Client) ByExplicitQuery(query string, limit int, order SortOrder) Sequence {
	if order == "" {
		order = SortByRelevance
	}
	return c.query(query, order, c.Config.PageSize, limit)
}

// Recent returns papers matching query that were submitted within the last
// windowDays days (UTC), newest first.
func (c *Client) Recent(query string, windowDays, limit int) Sequence {
	cutoff := Cutoff(c.Now(), windowDays)
	return FilterRecent(c.query(KeywordQuery(query), SortBySubmittedDate, c.Config.PageSize, limit), cutoff)
}

// Paginated walks a relevance-ordered result set pageSize entries at a time
// until totalDesired papers have been produced or a page comes back empty.
// Consecutive page requests are separated by Config.PageDelay.
func (c *Client) Paginated(query string, pageSize, totalDesired int) Sequence {
	if pageSize <= 0 {
		pageSize = c.Config.PageSize
	}
	return c.query(query, SortByRelevance, pageSize, totalDesired)
}

// ByIdentifier looks up a single paper. The boolean is false when arXiv has
// no entry for id; that is not an error.
func (c *Client) ByIdentifier(ctx context.Context, id string) (types.Paper, bool, error) {
	params := url.Values{}
	params.Set("id_list", id)
	params.Set("max_results", "1")

	page, err := c.fetch(ctx, "lookup", id, params)
	if err != nil {
		return types.Paper{}, false, err
	}
	if len(page.Papers) == 0 {
		c.Logger.Debug("arXiv lookup found nothing", zap.String("id", id))
		return types.Paper{}, false, nil
	}
	return page.Papers[0], true, nil
}

func (c *Client) query(q string, order SortOrder, pageSize, limit int) Sequence {
	if limit <= 0 {
		limit = c.Config.MaxResults
	}
	if pageSize > limit {
		pageSize = limit
	}
	return &pager{
		client:   c,
		query:    q,
		order:    order,
		pageSize: pageSize,
		limit:    limit,
		seen:     make(map[string]struct{}),
	}
}

// fetch issues one request and parses the response. Every failure comes back
// as a *RetrievalError.
func (c *Client) fetch(ctx context.Context, op, q string, params url.Values) (feedPage, error) {
	u := c.Config.BaseURL + "?" + params.Encode()
	body, err := httputil.Get(ctx, c.HTTP, u, c.Config.UserAgent)
	if err != nil {
		return feedPage{}, &RetrievalError{Op: op, Query: q, Err: err}
	}
	page, err := parseFeed(body)
	if err != nil {
		return feedPage{}, &RetrievalError{Op: op, Query: q, Err: err}
	}
	return page, nil
}

// pager is the Sequence behind every search. Each Next issues at most one
// request.
type pager struct {
	client   *Client
	query    string
	order    SortOrder
	pageSize int
	limit    int

	start    int
	produced int
	requests int
	done     bool
	seen     map[string]struct{}
}

func (p *pager) Next(ctx context.Context) ([]types.Paper, error) {
	for !p.done {
		if p.produced >= p.limit {
			p.done = true
			break
		}
		if p.requests > 0 {
			p.client.Logger.Debug("waiting before next arXiv page",
				zap.Duration("delay", p.client.Config.PageDelay))
			if err := p.client.Sleep(ctx, p.client.Config.PageDelay); err != nil {
				p.done = true
				return nil, err
			}
		}

		n := min(p.pageSize, p.limit-p.produced)
		params := url.Values{}
		params.Set("search_query", p.query)
		params.Set("start", strconv.Itoa(p.start))
		params.Set("max_results", strconv.Itoa(n))
		params.Set("sortBy", string(p.order))
		params.Set("sortOrder", "descending")

		page, err := p.client.fetch(ctx, "query", p.query, params)
		p.requests++
		if err != nil {
			p.done = true
			return nil, err
		}
		p.client.Logger.Debug("arXiv page",
			zap.String("query", p.query),
			zap.Int("start", p.start),
			zap.Int("max_results", n),
			zap.Int("entries", len(page.Papers)),
			zap.Int("total_results", page.TotalResults))

		if len(page.Papers) == 0 {
			p.done = true
			break
		}
		p.start += n
		if page.TotalResults >= 0 && p.start >= page.TotalResults {
			p.done = true
		}

		batch := make([]types.Paper, 0, len(page.Papers))
		for _, paper := range page.Papers {
			if p.produced+len(batch) >= p.limit {
				break
			}
			if paper.Identifier != "" {
				if _, dup := p.seen[paper.Identifier]; dup {
					continue
				}
				p.seen[paper.Identifier] = struct{}{}
			}
			batch = append(batch, paper)
		}
		p.produced += len(batch)
		if len(batch) > 0 {
			return batch, nil
		}
	}
	return nil, io.EOF
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
