// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"io"

	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

// Sequence is a lazy, finite stream of papers. Each call to Next returns the
// next batch; once the stream is exhausted Next returns io.EOF and keeps doing
// so. A Sequence cannot be restarted, and no remote call happens until Next
// is called.
type Sequence interface {
	Next(ctx context.Context) ([]types.Paper, error)
}

// Collect drains seq into a slice.
func Collect(ctx context.Context, seq Sequence) ([]types.Paper, error) {
	var all []types.Paper
	for {
		batch, err := seq.Next(ctx)
		if errors.Is(err, io.EOF) {
			return all, nil
		}
		if err != nil {
			return all, err
		}
		all = append(all, batch...)
	}
}

// Take reads from seq until n papers have been collected or seq ends. It
// stops calling Next as soon as n is reached, so a paginated source issues no
// further requests.
func Take(ctx context.Context, seq Sequence, n int) ([]types.Paper, error) {
	var out []types.Paper
	for len(out) < n {
		batch, err := seq.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, err
		}
		out = append(out, batch...)
	}
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// FromSlice wraps an in-memory list as a single-batch Sequence.
func FromSlice(papers []types.Paper) Sequence {
	return &sliceSequence{papers: papers}
}

type sliceSequence struct {
	papers []types.Paper
	done   bool
}

func (s *sliceSequence) Next(_ context.Context) ([]types.Paper, error) {
	if s.done || len(s.papers) == 0 {
		s.done = true
		return nil, io.EOF
	}
	s.done = true
	return s.papers, nil
}
