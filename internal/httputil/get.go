// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes bounds how much of a response body Get will read.
var MaxBodyBytes int64 = 32 << 20

// StatusError is returned by Get when the server answers with anything other
// than 200 OK. A 429 is reported like any other status: callers decide
// whether to try again.
type StatusError struct {
	StatusCode int
	URL        string
	// Snippet holds the first bytes of the response body, for diagnostics.
	Snippet string
}

func (e *StatusError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.StatusCode, e.Snippet)
}

// Get issues a single GET request for rawURL and returns the response body.
// The request carries userAgent when it is non-empty. Transport failures are
// returned wrapped; non-200 responses produce a *StatusError.
func Get(ctx context.Context, client *http.Client, rawURL, userAgent string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			URL:        rawURL,
			Snippet:    strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", rawURL, err)
	}
	return body, nil
}
