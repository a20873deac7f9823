// internal/api/handlers/search.go
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/searchgate/backend/internal/models"
	"github.com/searchgate/backend/internal/services"
	"github.com/searchgate/backend/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	maxQueryLength = 2000
	searchTimeout  = 30 * time.Second
)

type SearchHandler struct {
	searchService *services.SearchService
	logger        *logrus.Logger
}

func NewSearchHandler(searchService *services.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// HandleSearch processes full search requests
func (h *SearchHandler) HandleSearch(c *gin.Context) {
	startTime := time.Now()

	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid search request")
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	// Validate and sanitize query
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Query cannot be empty", nil)
		return
	}

	if len(req.Query) > maxQueryLength {
		utils.ErrorResponse(c, http.StatusBadRequest, "Query too long (max 2000 characters)", nil)
		return
	}

	if req.MaxResults < 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "max_results must be positive", nil)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"query":      req.Query,
		"user_agent": c.GetHeader("User-Agent"),
		"ip_address": c.ClientIP(),
	}).Info("Processing search request")

	ctx, cancel := context.WithTimeout(c.Request.Context(), searchTimeout)
	defer cancel()

	response, err := h.searchService.Search(ctx, req)
	if err != nil {
		h.logger.WithError(err).Error("Search failed")
		utils.ErrorResponse(c, http.StatusBadGateway, "Search failed", err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"results_count": len(response.Results),
		"response_time": time.Since(startTime).Milliseconds(),
	}).Info("Search completed successfully")

	c.JSON(http.StatusOK, response)
}

// HandleQuickSearch processes bare-query searches with provider defaults
func (h *SearchHandler) HandleQuickSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Query parameter 'query' is required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), searchTimeout)
	defer cancel()

	response, err := h.searchService.QuickSearch(ctx, query)
	if err != nil {
		h.logger.WithError(err).Error("Quick search failed")
		utils.ErrorResponse(c, http.StatusBadGateway, "Quick search failed", err)
		return
	}

	c.JSON(http.StatusOK, response)
}
