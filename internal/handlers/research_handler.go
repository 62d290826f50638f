package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "coinpulse/internal/errors"
	"coinpulse/internal/research"
)

// ResearchHandler serves the research dashboard content.
type ResearchHandler struct {
	service *research.Service
}

// NewResearchHandler creates a new ResearchHandler.
func NewResearchHandler(service *research.Service) *ResearchHandler {
	return &ResearchHandler{service: service}
}

// GetSentiment handles the market sentiment gauge.
// @Summary     Market sentiment
// @Description Fear/greed style gauge with a per-asset breakdown
// @Tags        research
// @Produce     json
// @Success     200 {object} research.MarketSentiment "Sentiment gauge"
// @Router      /research/sentiment [get]
func (h *ResearchHandler) GetSentiment(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Sentiment())
}

// GetFeed handles the social-style feed.
// @Summary     Social feed
// @Description Synthesized social posts referencing catalog assets
// @Tags        research
// @Produce     json
// @Param       limit query int false "Max posts (default 20)"
// @Success     200 {object} map[string][]research.FeedPost "Feed posts"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Router      /research/feed [get]
func (h *ResearchHandler) GetFeed(c *gin.Context) {
	limit, err := parseLimit(c, "limit")
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": h.service.Feed(limit)})
}

// GetCalendar handles the economic calendar.
// @Summary     Economic calendar
// @Description Upcoming synthesized economic events
// @Tags        research
// @Produce     json
// @Param       days query int false "Days ahead (default 7)"
// @Success     200 {object} map[string][]research.CalendarEvent "Calendar events"
// @Failure     400 {object} ErrorResponse "Invalid days"
// @Router      /research/calendar [get]
func (h *ResearchHandler) GetCalendar(c *gin.Context) {
	days, err := parseLimit(c, "days")
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": h.service.Calendar(days)})
}

// GetAnalysis handles the per-asset narrative analysis.
// @Summary     Asset analysis
// @Description Narrative writeup for a single asset
// @Tags        research
// @Produce     json
// @Param       id path string true "Asset ID (e.g. bitcoin)"
// @Success     200 {object} research.Analysis "Analysis"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /research/analysis/{id} [get]
func (h *ResearchHandler) GetAnalysis(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Asset ID is required"))
		return
	}

	analysis, err := h.service.Analysis(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}
