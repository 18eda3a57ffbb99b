// Package search implements the web search backend behind the webSearch
// capability, using the Tavily HTTP API.
package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
	"github.com/peng15653830a/springai-chat-sub004/internal/domain/entity"
)

// tavilyRequest is the Tavily search API request body.
type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
}

// tavilyResponse is the Tavily search API response body.
type tavilyResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string  `json:"title"`
		URL     string  `json:"url"`
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

// tavilyService calls the Tavily API. It satisfies domain.SearchService.
type tavilyService struct {
	cfg    config.SearchConfig
	client *http.Client
	logger *slog.Logger
}

// NewTavilyService creates the search service from configuration.
func NewTavilyService(cfg config.SearchConfig, logger *slog.Logger) domain.SearchService {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &tavilyService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// IsAvailable reports whether search is enabled and configured.
func (s *tavilyService) IsAvailable() bool {
	return s.cfg.Enabled && s.cfg.APIKey != ""
}

// Search runs one query and returns ranked results. An unavailable backend
// yields an empty slice, not an error.
func (s *tavilyService) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if !s.IsAvailable() {
		s.logger.Warn("search service unavailable, returning no results")
		return nil, nil
	}

	body, err := sonic.Marshal(tavilyRequest{
		APIKey:        s.cfg.APIKey,
		Query:         query,
		SearchDepth:   "basic",
		IncludeAnswer: true,
		MaxResults:    s.cfg.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	results, err := parseTavilyResponse(payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info("search completed", "query_len", len(query), "results", len(results))
	return results, nil
}

// parseTavilyResponse converts the API payload into domain results. The AI
// answer summary, when present, leads the list without a URL so it is never
// rendered as a clickable source.
func parseTavilyResponse(payload []byte) ([]entity.SearchResult, error) {
	var tr tavilyResponse
	if err := sonic.Unmarshal(payload, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]entity.SearchResult, 0, len(tr.Results)+1)
	if tr.Answer != "" {
		results = append(results, entity.SearchResult{
			Title:   "AI Summary",
			Content: tr.Answer,
		})
	}
	for _, item := range tr.Results {
		score := item.Score
		results = append(results, entity.SearchResult{
			Title:   item.Title,
			URL:     item.URL,
			Score:   &score,
			Content: item.Content,
		})
	}
	return results, nil
}
