// cmd/factweave/feeds.go
package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedScanner retrieves claims from configured RSS feeds.
type FeedScanner struct {
	sources   []FeedSource
	parser    *gofeed.Parser
	client    *http.Client
	userAgent string
}

// feedResult carries one source's outcome through the fan-out.
type feedResult struct {
	source string
	claims []Claim
	err    error
}

// NewFeedScanner creates a feed scanner over the given sources.
func NewFeedScanner(sources []FeedSource, userAgent string) *FeedScanner {
	return &FeedScanner{
		sources: sources,
		parser:  gofeed.NewParser(),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: userAgent,
	}
}

// ScanAll fetches every active source concurrently and merges the claims,
// deduplicating by title across the batch. Per-source failures are logged
// and skipped.
func (f *FeedScanner) ScanAll(ctx context.Context) []Claim {
	results := make(chan feedResult, len(f.sources))
	var wg sync.WaitGroup

	for _, source := range f.sources {
		if source.Paused {
			continue
		}
		wg.Add(1)
		go func(s FeedSource) {
			defer wg.Done()
			claims, err := f.scanSource(ctx, s)
			results <- feedResult{source: s.Name, claims: claims, err: err}
		}(source)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	seenTitles := make(map[string]bool)
	var claims []Claim
	for result := range results {
		if result.err != nil {
			GetLogger().Warning("Feed %s failed: %v", result.source, result.err)
			continue
		}
		for _, claim := range result.claims {
			if seenTitles[claim.Text] {
				continue
			}
			seenTitles[claim.Text] = true
			claims = append(claims, claim)
		}
	}
	return claims
}

// scanSource fetches and parses a single feed.
func (f *FeedScanner) scanSource(ctx context.Context, source FeedSource) ([]Claim, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, NewAgentError(ErrorTypeNews, ErrNewsRequest, "build feed request", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, NewAgentError(ErrorTypeNews, ErrNewsRequest, "feed request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAgentError(ErrorTypeNews, ErrNewsStatus, "unexpected feed status "+resp.Status, nil)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, &ParseError{Source: "rss", Reason: "invalid feed", Inner: err}
	}

	var claims []Claim
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}
		content := item.Description
		if content == "" {
			content = item.Title
		}
		claims = append(claims, Claim{
			Text:   item.Title,
			Source: source.Name,
			Status: StatusUnverified,
			Evidence: []Evidence{{
				Source:  source.Name,
				Content: content,
				URL:     item.Link,
			}},
		})
	}
	return claims, nil
}
