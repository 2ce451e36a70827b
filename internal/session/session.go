// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the per-visitor state of the web front-end: the
// reading history and the favorites list. State values are plain data; the
// web layer decides where they are stored.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

// DefaultHistorySize is how many papers the reading history keeps.
const DefaultHistorySize = 10

// State travels in a cookie of about 4 KB, so the favorites list and the
// stored titles are bounded.
const (
	MaxFavorites  = 10
	MaxTitleBytes = 64
)

const ellipsis = "…"

// ErrFavoritesFull is returned by AddFavorite once MaxFavorites is reached.
var ErrFavoritesFull = errors.New("favorites list is full")

// Entry identifies a paper in the history or favorites.
type Entry struct {
	Identifier string `json:"arxiv_id"`
	Title      string `json:"title"`
}

// State is everything remembered about one visitor.
type State struct {
	History   []Entry `json:"reading_history,omitempty"`
	Favorites []Entry `json:"favorites,omitempty"`
}

// Visit records that e was viewed. The paper moves to the front of the
// history, replacing any earlier visit, and the history is cut to max
// entries (DefaultHistorySize when max <= 0).
func (s *State) Visit(e Entry, max int) {
	if max <= 0 {
		max = DefaultHistorySize
	}
	history := make([]Entry, 0, len(s.History)+1)
	history = append(history, e.clipped())
	for _, h := range s.History {
		if h.Identifier != e.Identifier {
			history = append(history, h)
		}
	}
	if len(history) > max {
		history = history[:max]
	}
	s.History = history
}

// AddFavorite appends e unless it is already a favorite. It reports whether
// the list changed, and fails with ErrFavoritesFull when there is no room.
func (s *State) AddFavorite(e Entry) (bool, error) {
	if s.IsFavorite(e.Identifier) {
		return false, nil
	}
	if len(s.Favorites) >= MaxFavorites {
		return false, ErrFavoritesFull
	}
	s.Favorites = append(s.Favorites, e.clipped())
	return true, nil
}

// clipped returns e with its title cut to at most MaxTitleBytes, on a rune
// boundary.
func (e Entry) clipped() Entry {
	if len(e.Title) <= MaxTitleBytes {
		return e
	}
	cut := MaxTitleBytes - len(ellipsis)
	for cut > 0 && !utf8.RuneStart(e.Title[cut]) {
		cut--
	}
	e.Title = e.Title[:cut] + ellipsis
	return e
}

// RemoveFavorite drops the favorite with the given identifier and reports
// whether it was present.
func (s *State) RemoveFavorite(id string) bool {
	i := slices.IndexFunc(s.Favorites, func(f Entry) bool { return f.Identifier == id })
	if i < 0 {
		return false
	}
	s.Favorites = slices.Delete(s.Favorites, i, i+1)
	return true
}

// IsFavorite reports whether id is in the favorites list.
func (s *State) IsFavorite(id string) bool {
	return slices.ContainsFunc(s.Favorites, func(f Entry) bool { return f.Identifier == id })
}

// Marshal encodes s for storage in a session.
func (s State) Marshal() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding session state: %w", err)
	}
	return string(data), nil
}

// Unmarshal decodes a value produced by Marshal. An empty string yields an
// empty State.
func Unmarshal(v string) (State, error) {
	var s State
	if v == "" {
		return s, nil
	}
	if err := json.Unmarshal([]byte(v), &s); err != nil {
		return State{}, fmt.Errorf("decoding session state: %w", err)
	}
	return s, nil
}
