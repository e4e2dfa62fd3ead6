// cmd/factweave/search.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// SearchResult is one ranked web search hit.
type SearchResult struct {
	Title string
	Body  string
	URL   string
}

// Searcher performs a free-text web search.
type Searcher interface {
	Search(ctx context.Context, query string, max int) ([]SearchResult, error)
}

// DuckDuckGoClient queries the DuckDuckGo HTML endpoint and scrapes the
// result list. No API key required.
type DuckDuckGoClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// NewDuckDuckGoClient creates a search client.
func NewDuckDuckGoClient(userAgent string) *DuckDuckGoClient {
	return &DuckDuckGoClient{
		baseURL:   "https://html.duckduckgo.com/html/",
		userAgent: userAgent,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Search issues one query and returns up to max results.
func (c *DuckDuckGoClient) Search(ctx context.Context, query string, max int) ([]SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, NewAgentError(ErrorTypeSearch, ErrSearchFetch, "rate limiter wait", err)
	}

	form := url.Values{"q": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, NewAgentError(ErrorTypeSearch, ErrSearchFetch, "build request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewAgentError(ErrorTypeSearch, ErrSearchFetch, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAgentError(ErrorTypeSearch, ErrSearchStatus,
			fmt.Sprintf("unexpected status %s", resp.Status), nil)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ParseError{Source: "duckduckgo", Reason: "invalid HTML", Inner: err}
	}

	var results []SearchResult
	doc.Find(".result").EachWithBreak(func(i int, s *goquery.Selection) bool {
		anchor := s.Find("a.result__a").First()
		href, _ := anchor.Attr("href")
		result := SearchResult{
			Title: strings.TrimSpace(anchor.Text()),
			Body:  strings.TrimSpace(s.Find(".result__snippet").First().Text()),
			URL:   cleanResultURL(href),
		}
		if result.URL == "" {
			return true
		}
		results = append(results, result)
		return len(results) < max
	})

	return results, nil
}

// cleanResultURL unwraps DuckDuckGo's redirect links into the target URL.
func cleanResultURL(href string) string {
	if href == "" {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	if parsed.Scheme == "" {
		return "https:" + href
	}
	return href
}
