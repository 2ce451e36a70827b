// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string) Entry { return Entry{Identifier: id, Title: "Title " + id} }

func historyIDs(s State) []string {
	out := make([]string, len(s.History))
	for i, h := range s.History {
		out[i] = h.Identifier
	}
	return out
}

func TestVisit_MostRecentFirst(t *testing.T) {
	var s State
	s.Visit(entry("a"), 10)
	s.Visit(entry("b"), 10)
	s.Visit(entry("c"), 10)
	assert.Equal(t, []string{"c", "b", "a"}, historyIDs(s))
}

func TestVisit_RevisitMovesToFront(t *testing.T) {
	var s State
	s.Visit(entry("a"), 10)
	s.Visit(entry("b"), 10)
	s.Visit(Entry{Identifier: "a", Title: "New title"}, 10)

	assert.Equal(t, []string{"a", "b"}, historyIDs(s))
	assert.Equal(t, "New title", s.History[0].Title)
}

func TestVisit_CapsHistory(t *testing.T) {
	var s State
	for i := 0; i < 15; i++ {
		s.Visit(entry(fmt.Sprint(i)), 0)
	}
	require.Len(t, s.History, DefaultHistorySize)
	assert.Equal(t, "14", s.History[0].Identifier)
	assert.Equal(t, "5", s.History[DefaultHistorySize-1].Identifier)

	s.Visit(entry("x"), 3)
	assert.Equal(t, []string{"x", "14", "13"}, historyIDs(s))
}

func TestFavorites(t *testing.T) {
	var s State
	addFavorite(t, &s, entry("a"), true)
	addFavorite(t, &s, entry("b"), true)
	addFavorite(t, &s, entry("a"), false)
	assert.Len(t, s.Favorites, 2, "duplicates are ignored")

	assert.True(t, s.IsFavorite("b"))
	assert.True(t, s.RemoveFavorite("a"))
	assert.False(t, s.RemoveFavorite("a"))
	assert.False(t, s.IsFavorite("a"))
	assert.Equal(t, []Entry{entry("b")}, s.Favorites)
}

func TestFavorites_Capped(t *testing.T) {
	var s State
	for i := 0; i < MaxFavorites; i++ {
		addFavorite(t, &s, entry(fmt.Sprint(i)), true)
	}

	added, err := s.AddFavorite(entry("one-too-many"))
	assert.ErrorIs(t, err, ErrFavoritesFull)
	assert.False(t, added)
	assert.Len(t, s.Favorites, MaxFavorites)

	added, err = s.AddFavorite(entry("3"))
	require.NoError(t, err, "re-adding an existing favorite is not an error")
	assert.False(t, added)

	require.True(t, s.RemoveFavorite("0"))
	addFavorite(t, &s, entry("one-too-many"), true)
}

func TestLongTitlesAreClipped(t *testing.T) {
	long := Entry{Identifier: "x", Title: strings.Repeat("é", 200)}

	var s State
	s.Visit(long, 0)
	addFavorite(t, &s, long, true)

	for _, e := range []Entry{s.History[0], s.Favorites[0]} {
		assert.LessOrEqual(t, len(e.Title), MaxTitleBytes)
		assert.True(t, utf8.ValidString(e.Title))
		assert.True(t, strings.HasSuffix(e.Title, "…"))
	}

	short := entry("y")
	s.Visit(short, 0)
	assert.Equal(t, short, s.History[0])
}

// A full state must still fit a browser cookie once signed and encoded.
func TestFullStateFitsCookie(t *testing.T) {
	var s State
	title := strings.Repeat("w", 200)
	for i := 0; i < DefaultHistorySize; i++ {
		s.Visit(Entry{Identifier: fmt.Sprintf("2401.%05dv12", i), Title: title}, 0)
	}
	for i := 0; i < MaxFavorites; i++ {
		addFavorite(t, &s, Entry{Identifier: fmt.Sprintf("2301.%05dv12", i), Title: title}, true)
	}

	v, err := s.Marshal()
	require.NoError(t, err)
	// The cookie store base64-encodes twice and adds a timestamp and MAC.
	assert.Less(t, len(v)*16/9+200, 4096)
}

func addFavorite(t *testing.T, s *State, e Entry, wantAdded bool) {
	t.Helper()
	added, err := s.AddFavorite(e)
	require.NoError(t, err)
	require.Equal(t, wantAdded, added)
}

func TestMarshalRoundTrip(t *testing.T) {
	var s State
	s.Visit(entry("2401.12345v2"), 10)
	addFavorite(t, &s, entry("2301.00001v1"), true)

	v, err := s.Marshal()
	require.NoError(t, err)
	assert.Contains(t, v, `"arxiv_id":"2401.12345v2"`)

	got, err := Unmarshal(v)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestUnmarshal(t *testing.T) {
	s, err := Unmarshal("")
	require.NoError(t, err)
	assert.Empty(t, s.History)

	_, err = Unmarshal("{not json")
	assert.Error(t, err)
}
