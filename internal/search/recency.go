// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"io"
	"time"

	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

// Cutoff returns now minus days, in UTC.
func Cutoff(now time.Time, days int) time.Time {
	return now.UTC().AddDate(0, 0, -days)
}

// FilterRecent passes through papers published at or after cutoff from a
// sequence sorted newest first. The first paper older than cutoff ends the
// sequence; nothing after it is read. Papers without a publication date are
// dropped without ending the sequence.
func FilterRecent(seq Sequence, cutoff time.Time) Sequence {
	return &recentSequence{inner: seq, cutoff: cutoff}
}

type recentSequence struct {
	inner  Sequence
	cutoff time.Time
	done   bool
}

func (r *recentSequence) Next(ctx context.Context) ([]types.Paper, error) {
	for !r.done {
		batch, err := r.inner.Next(ctx)
		if err != nil {
			r.done = true
			return nil, err
		}

		kept := make([]types.Paper, 0, len(batch))
		for _, p := range batch {
			if !p.HasPublished() {
				continue
			}
			if p.Published.Before(r.cutoff) {
				r.done = true
				break
			}
			kept = append(kept, p)
		}
		if len(kept) > 0 {
			return kept, nil
		}
	}
	return nil, io.EOF
}
