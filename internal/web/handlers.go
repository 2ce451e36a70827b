// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-explorer/internal/search"
	"github.com/pdiddy/arxiv-explorer/internal/session"
	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

const (
	stateKey          = "state"
	defaultRecentDays = 7
	maxLimit          = 2000
)

type searchResponse struct {
	Query    string              `json:"query"`
	Author   string              `json:"author"`
	Category string              `json:"category"`
	Route    search.Route        `json:"route,omitempty"`
	Ranked   bool                `json:"ranked"`
	Papers   []types.ScoredPaper `json:"papers"`
}

type paperResponse struct {
	ArxivID  string       `json:"arxiv_id"`
	Paper    *types.Paper `json:"paper"`
	Favorite bool         `json:"favorite"`
}

type favoriteRequest struct {
	ArxivID string `json:"arxiv_id" form:"arxiv_id" binding:"required"`
	Title   string `json:"title" form:"title"`
}

func (s *Server) handleHome(c *gin.Context) {
	st := s.loadState(c)
	c.JSON(http.StatusOK, gin.H{
		"reading_history": nonNil(st.History),
		"favorites":       nonNil(st.Favorites),
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	criteria := search.Criteria{
		Keywords: strings.TrimSpace(c.Query("query")),
		Author:   strings.TrimSpace(c.Query("author")),
		Category: strings.TrimSpace(c.Query("category")),
	}
	resp := searchResponse{
		Query:    criteria.Keywords,
		Author:   criteria.Author,
		Category: criteria.Category,
		Papers:   []types.ScoredPaper{},
	}
	if criteria.IsEmpty() {
		c.JSON(http.StatusOK, resp)
		return
	}

	limit, ok := s.limitParam(c)
	if !ok {
		return
	}
	criteria.Limit = limit

	out, err := s.searcher.Search(c.Request.Context(), criteria)
	if err != nil {
		s.retrievalFailed(c, "search", err)
		return
	}
	resp.Route = out.Route
	resp.Ranked = out.Ranked
	if out.Results != nil {
		resp.Papers = out.Results
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRecent(c *gin.Context) {
	days := defaultRecentDays
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}
	limit, ok := s.limitParam(c)
	if !ok {
		return
	}

	query := search.BuildQuery(c.Query("query"), c.Query("author"), c.Query("category"), "")
	papers, err := search.Collect(c.Request.Context(), s.papers.Recent(query, days, limit))
	if err != nil {
		s.retrievalFailed(c, "recent", err)
		return
	}
	if papers == nil {
		papers = []types.Paper{}
	}
	c.JSON(http.StatusOK, gin.H{
		"query":  query,
		"days":   days,
		"papers": papers,
	})
}

func (s *Server) handlePaper(c *gin.Context) {
	id := strings.Trim(c.Param("id"), "/")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing arXiv id"})
		return
	}

	paper, found, err := s.papers.ByIdentifier(c.Request.Context(), id)
	if err != nil {
		s.retrievalFailed(c, "lookup", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, paperResponse{ArxivID: id})
		return
	}

	st := s.loadState(c)
	st.Visit(session.Entry{Identifier: id, Title: paper.Title}, s.cfg.HistorySize)
	if err := s.saveState(c, st); err != nil {
		s.logger.Warn("failed to save reading history", zap.String("id", id), zap.Error(err))
	}

	c.JSON(http.StatusOK, paperResponse{
		ArxivID:  id,
		Paper:    &paper,
		Favorite: st.IsFavorite(id),
	})
}

func (s *Server) handleListFavorites(c *gin.Context) {
	st := s.loadState(c)
	c.JSON(http.StatusOK, gin.H{"favorites": nonNil(st.Favorites)})
}

func (s *Server) handleAddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arxiv_id is required"})
		return
	}
	req.ArxivID = strings.TrimSpace(req.ArxivID)
	if req.ArxivID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arxiv_id is required"})
		return
	}

	st := s.loadState(c)
	added, err := st.AddFavorite(session.Entry{Identifier: req.ArxivID, Title: strings.TrimSpace(req.Title)})
	if errors.Is(err, session.ErrFavoritesFull) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     fmt.Sprintf("at most %d favorites can be kept, remove one first", session.MaxFavorites),
			"favorites": nonNil(st.Favorites),
		})
		return
	}
	if err := s.saveState(c, st); err != nil {
		s.logger.Error("failed to save favorites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save session"})
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"favorites": nonNil(st.Favorites)})
}

func (s *Server) handleRemoveFavorite(c *gin.Context) {
	id := strings.Trim(c.Param("id"), "/")

	st := s.loadState(c)
	if !st.RemoveFavorite(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not a favorite", "arxiv_id": id})
		return
	}
	if err := s.saveState(c, st); err != nil {
		s.logger.Error("failed to save favorites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": nonNil(st.Favorites)})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// limitParam reads ?limit=, falling back to the configured maximum. It writes
// a 400 response and returns false when the value is unusable.
func (s *Server) limitParam(c *gin.Context) (int, bool) {
	v := c.Query("limit")
	if v == "" {
		return s.maxResults, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > maxLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 2000"})
		return 0, false
	}
	return n, true
}

func (s *Server) retrievalFailed(c *gin.Context, op string, err error) {
	_ = c.Error(err)
	s.logger.Error("arXiv retrieval failed", zap.String("op", op), zap.Error(err))

	var re *search.RetrievalError
	if errors.As(err, &re) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "arXiv is unavailable, try again later"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// loadState returns the visitor's state. Unreadable state starts over empty.
func (s *Server) loadState(c *gin.Context) session.State {
	raw, _ := sessions.Default(c).Get(stateKey).(string)
	st, err := session.Unmarshal(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable session state", zap.Error(err))
		return session.State{}
	}
	return st
}

func (s *Server) saveState(c *gin.Context, st session.State) error {
	v, err := st.Marshal()
	if err != nil {
		return err
	}
	sess := sessions.Default(c)
	sess.Set(stateKey, v)
	return sess.Save()
}

func nonNil(entries []session.Entry) []session.Entry {
	if entries == nil {
		return []session.Entry{}
	}
	return entries
}
