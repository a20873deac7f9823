// internal/services/search.go
package services

import (
	"context"
	"fmt"

	"github.com/searchgate/backend/internal/models"
	"github.com/searchgate/backend/internal/tavily"
	"github.com/sirupsen/logrus"
)

// SearchClient is the provider handle injected into the service. The Tavily
// client satisfies it; tests substitute a double.
type SearchClient interface {
	Search(ctx context.Context, params tavily.SearchParams) (*tavily.SearchResponse, error)
}

type SearchService struct {
	client SearchClient
	logger *logrus.Logger
}

func NewSearchService(client SearchClient, logger *logrus.Logger) *SearchService {
	return &SearchService{
		client: client,
		logger: logger,
	}
}

// Search performs a full provider search for a validated request and maps
// the reply onto the public schema. Every returned result carries title,
// url, content and score; a reply missing any of them fails the whole call.
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	req.ApplyDefaults()

	params := tavily.SearchParams{
		Query:             req.Query,
		SearchDepth:       req.SearchDepth,
		MaxResults:        req.MaxResults,
		IncludeAnswer:     *req.IncludeAnswer,
		IncludeRawContent: req.IncludeRawContent,
		IncludeImages:     req.IncludeImages,
		IncludeDomains:    req.IncludeDomains,
		ExcludeDomains:    req.ExcludeDomains,
	}

	s.logger.WithFields(logrus.Fields{
		"query":        req.Query,
		"search_depth": req.SearchDepth,
		"max_results":  req.MaxResults,
	}).Debug("Starting provider search")

	providerResp, err := s.client.Search(ctx, params)
	if err != nil {
		s.logger.WithError(err).Error("Tavily search failed")
		return nil, fmt.Errorf("tavily search error: %w", err)
	}

	results, err := s.convertResults(providerResp.Results)
	if err != nil {
		s.logger.WithError(err).Error("Provider returned malformed results")
		return nil, fmt.Errorf("tavily search error: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"query":         req.Query,
		"results_count": len(results),
		"has_answer":    providerResp.Answer != "",
	}).Debug("Search completed")

	return &models.SearchResponse{
		Query:   req.Query,
		Answer:  providerResp.Answer,
		Results: results,
	}, nil
}

// QuickSearch invokes the provider with only the query, leaving every other
// parameter to the provider's own defaults. The reply is passed through
// without remapping.
func (s *SearchService) QuickSearch(ctx context.Context, query string) (*models.QuickSearchResponse, error) {
	providerResp, err := s.client.Search(ctx, tavily.SearchParams{Query: query})
	if err != nil {
		s.logger.WithError(err).Error("Tavily quick search failed")
		return nil, fmt.Errorf("tavily search error: %w", err)
	}

	return &models.QuickSearchResponse{
		Query:   query,
		Answer:  providerResp.Answer,
		Results: providerResp.Results,
	}, nil
}

// convertResults maps provider entries onto the public schema, preserving
// order. Provider entries must carry all required fields.
func (s *SearchService) convertResults(providerResults []tavily.Result) ([]models.SearchResult, error) {
	results := make([]models.SearchResult, 0, len(providerResults))
	for i, r := range providerResults {
		if err := validateProviderResult(r); err != nil {
			return nil, fmt.Errorf("malformed result at index %d: %w", i, err)
		}

		results = append(results, models.SearchResult{
			Title:         r.Title,
			URL:           r.URL,
			Content:       r.Content,
			Score:         *r.Score,
			PublishedDate: r.PublishedDate,
		})
	}
	return results, nil
}

func validateProviderResult(r tavily.Result) error {
	if r.Title == "" {
		return fmt.Errorf("missing title")
	}
	if r.URL == "" {
		return fmt.Errorf("missing url")
	}
	if r.Content == "" {
		return fmt.Errorf("missing content")
	}
	if r.Score == nil {
		return fmt.Errorf("missing score")
	}
	return nil
}
