package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/searchgate/backend/internal/services"
	"github.com/searchgate/backend/internal/tavily"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSearchClient struct {
	callCount int
	response  *tavily.SearchResponse
	err       error
}

func (m *mockSearchClient) Search(ctx context.Context, params tavily.SearchParams) (*tavily.SearchResponse, error) {
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func floatPtr(f float64) *float64 { return &f }

func setupRouter(mock *mockSearchClient) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	service := services.NewSearchService(mock, logger)
	handler := NewSearchHandler(service, logger)

	router := gin.New()
	router.GET("/health", handler.HandleHealth)
	router.POST("/search", handler.HandleSearch)
	router.GET("/quick-search", handler.HandleQuickSearch)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	router := setupRouter(&mockSearchClient{})

	w := performRequest(router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"message"`)
}

func TestHandleSearch_Success(t *testing.T) {
	mock := &mockSearchClient{
		response: &tavily.SearchResponse{
			Query:  "latest robotics 2025",
			Answer: "Mock answer",
			Results: []tavily.Result{{
				Title:   "Test",
				URL:     "http://test.com",
				Content: "...",
				Score:   floatPtr(0.9),
			}},
		},
	}
	router := setupRouter(mock)

	w := performRequest(router, "POST", "/search",
		`{"query": "latest robotics 2025", "search_depth": "advanced", "max_results": 5}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mock.callCount)
	assert.Contains(t, w.Body.String(), `"query":"latest robotics 2025"`)
	assert.Contains(t, w.Body.String(), `"title":"Test"`)
	assert.Contains(t, w.Body.String(), `"url":"http://test.com"`)
	assert.Contains(t, w.Body.String(), `"content":"..."`)
	assert.Contains(t, w.Body.String(), `"score":0.9`)
}

func TestHandleSearch_EmptyResults(t *testing.T) {
	mock := &mockSearchClient{response: &tavily.SearchResponse{Query: "q"}}
	router := setupRouter(mock)

	w := performRequest(router, "POST", "/search", `{"query": "q"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":[]`)
}

func TestHandleSearch_MissingQuery(t *testing.T) {
	mock := &mockSearchClient{}
	router := setupRouter(mock)

	w := performRequest(router, "POST", "/search", `{"max_results": 5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, mock.callCount, "provider must not be invoked on validation failure")
}

func TestHandleSearch_BlankQuery(t *testing.T) {
	mock := &mockSearchClient{}
	router := setupRouter(mock)

	w := performRequest(router, "POST", "/search", `{"query": "   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, mock.callCount)
}

func TestHandleSearch_InvalidJSON(t *testing.T) {
	mock := &mockSearchClient{}
	router := setupRouter(mock)

	w := performRequest(router, "POST", "/search", `{"query": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, mock.callCount)
}

func TestHandleSearch_UpstreamFailure(t *testing.T) {
	mock := &mockSearchClient{err: errors.New("Tavily API is down")}
	router := setupRouter(mock)

	w := performRequest(router, "POST", "/search", `{"query": "anything"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Tavily API is down")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestHandleSearch_Idempotent(t *testing.T) {
	mock := &mockSearchClient{
		response: &tavily.SearchResponse{
			Query:  "q",
			Answer: "stable answer",
			Results: []tavily.Result{{
				Title:   "t",
				URL:     "http://a.com",
				Content: "c",
				Score:   floatPtr(0.5),
			}},
		},
	}
	router := setupRouter(mock)

	first := performRequest(router, "POST", "/search", `{"query": "q"}`)
	second := performRequest(router, "POST", "/search", `{"query": "q"}`)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestHandleQuickSearch_Success(t *testing.T) {
	mock := &mockSearchClient{
		response: &tavily.SearchResponse{
			Query:  "test query",
			Answer: "This is a mock summary",
			Results: []tavily.Result{{
				Title:   "Mock Title",
				URL:     "https://example.com",
				Content: "Mock content snippet",
				Score:   floatPtr(0.95),
			}},
		},
	}
	router := setupRouter(mock)

	w := performRequest(router, "GET", "/quick-search?query=test%20query", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"query":"test query"`)
	assert.Contains(t, w.Body.String(), `"answer"`)
	assert.Contains(t, w.Body.String(), `"Mock Title"`)
}

func TestHandleQuickSearch_MissingQuery(t *testing.T) {
	mock := &mockSearchClient{}
	router := setupRouter(mock)

	w := performRequest(router, "GET", "/quick-search", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, mock.callCount)
}

func TestHandleQuickSearch_UpstreamFailure(t *testing.T) {
	mock := &mockSearchClient{err: errors.New("Tavily API is down")}
	router := setupRouter(mock)

	w := performRequest(router, "GET", "/quick-search?query=anything", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Tavily API is down")
}
