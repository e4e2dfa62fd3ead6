// cmd/factweave/newsdata.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// NewsDataClient talks to the NewsData.io latest-news API.
type NewsDataClient struct {
	apiKey    string
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// newsDataArticle is one article as the provider returns it.
type newsDataArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SourceID    string `json:"source_id"`
	Link        string `json:"link"`
}

// newsDataResponse is the provider's response envelope.
type newsDataResponse struct {
	Status  string            `json:"status"`
	Results []newsDataArticle `json:"results"`
}

// NewNewsDataClient creates a NewsData client. An empty key leaves the client
// unconfigured; callers must check Configured before issuing requests.
func NewNewsDataClient(apiKey, userAgent string) *NewsDataClient {
	return &NewsDataClient{
		apiKey:    apiKey,
		baseURL:   "https://newsdata.io/api/1/news",
		userAgent: userAgent,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Configured reports whether an API key is present.
func (c *NewsDataClient) Configured() bool {
	return c.apiKey != ""
}

// Latest issues one request against the latest-news endpoint with the given
// provider parameters (category, q, country). Exactly one attempt is made.
func (c *NewsDataClient) Latest(ctx context.Context, params url.Values) ([]newsDataArticle, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, NewAgentError(ErrorTypeNews, ErrNewsRequest, "rate limiter wait", err)
	}

	query := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("apikey", c.apiKey)
	query.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, NewAgentError(ErrorTypeNews, ErrNewsRequest, "build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewAgentError(ErrorTypeNews, ErrNewsRequest, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAgentError(ErrorTypeNews, ErrNewsStatus,
			fmt.Sprintf("NewsData API returned status %s", resp.Status), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewAgentError(ErrorTypeNews, ErrNewsRequest, "read response", err)
	}

	var parsed newsDataResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ParseError{Source: "newsdata", Reason: "invalid JSON", Inner: err}
	}
	if parsed.Status != "success" {
		return nil, &ParseError{Source: "newsdata", Reason: fmt.Sprintf("unexpected status %q", parsed.Status)}
	}

	return parsed.Results, nil
}
