// cmd/factweave/scan.go
package main

import (
	"context"
	"net/url"
)

// categoryMapping maps application categories to NewsData API categories.
var categoryMapping = map[string]string{
	"general-news":  "top",
	"politics":      "politics",
	"health":        "health",
	"crisis":        "world",
	"finance":       "business",
	"tech-ai":       "technology",
	"science":       "science",
	"crime":         "crime",
	"international": "world",
	"social":        "entertainment",
}

// mockHeadlines provides fallback claims when the provider is unavailable.
var mockHeadlines = map[string]string{
	"general-news":  "Breaking: Major developments in global affairs.",
	"politics":      "Election results show surprising turnout.",
	"health":        "New health guidelines announced by WHO.",
	"crisis":        "Emergency response teams deployed to affected areas.",
	"finance":       "Stock markets show mixed signals amid economic uncertainty.",
	"tech-ai":       "AI breakthrough announced by leading tech company.",
	"science":       "Scientists discover new insights into climate patterns.",
	"crime":         "Law enforcement reports decrease in crime rates.",
	"international": "International summit addresses global challenges.",
	"social":        "Viral social media trend sparks global conversation.",
}

// crisisQuery drives the crisis-oriented scan.
const crisisQuery = "crisis OR war OR disaster OR emergency OR earthquake OR attack"

// ScanAgent gathers claims from the news provider and configured RSS feeds.
type ScanAgent struct {
	news  *NewsDataClient
	feeds *FeedScanner
}

// NewScanAgent creates a scan agent.
func NewScanAgent(news *NewsDataClient, feeds *FeedScanner) *ScanAgent {
	return &ScanAgent{news: news, feeds: feeds}
}

// ScanByCategory scans news for an application category. Provider failures
// degrade to mock claims; the result is never empty and never an error.
func (a *ScanAgent) ScanByCategory(ctx context.Context, category string) []Claim {
	apiCategory, ok := categoryMapping[category]
	if !ok {
		apiCategory = "top"
	}

	var claims []Claim
	if a.news != nil && a.news.Configured() {
		GetLogger().Info("Fetching %s news (API category: %s)", category, apiCategory)
		articles, err := a.news.Latest(ctx, url.Values{"category": {apiCategory}})
		if err != nil {
			GetLogger().Error("Failed to fetch %s news: %v", category, err)
		} else {
			claims = claimsFromArticles(articles)
			GetLogger().Info("Fetched %d articles for %s", len(claims), category)
		}
	} else {
		GetLogger().Info("Using mock data for %s (no NEWSDATA_API_KEY)", category)
	}

	if len(claims) == 0 {
		claims = mockClaimsByCategory(category)
	}
	return claims
}

// Scan scans latest news for crisis topics. Same degrade contract as
// ScanByCategory, with a single hardcoded mock claim as the fallback.
func (a *ScanAgent) Scan(ctx context.Context) []Claim {
	var claims []Claim
	if a.news != nil && a.news.Configured() {
		GetLogger().Info("Scanning news with NewsData API")
		articles, err := a.news.Latest(ctx, url.Values{"q": {crisisQuery}, "country": {"us"}})
		if err != nil {
			GetLogger().Error("Failed to scan news: %v", err)
		} else {
			claims = claimsFromArticles(articles)
			GetLogger().Info("Scanned %d news articles", len(claims))
		}
	} else {
		GetLogger().Info("Using mock data (no NEWSDATA_API_KEY)")
	}

	if len(claims) == 0 {
		GetLogger().Info("Returning mock crisis data")
		claims = append(claims, Claim{
			Text:   "Breaking: Major earthquake reported in Japan.",
			Source: "social_media_mock",
			Status: StatusUnverified,
		})
	}
	return claims
}

// ScanFeeds ingests the configured RSS feeds. Returns nothing when no feeds
// are configured or every fetch fails; never an error.
func (a *ScanAgent) ScanFeeds(ctx context.Context) []Claim {
	if a.feeds == nil {
		return nil
	}
	return a.feeds.ScanAll(ctx)
}

// claimsFromArticles maps provider articles into claims, deduplicating by
// title within the batch.
func claimsFromArticles(articles []newsDataArticle) []Claim {
	seenTitles := make(map[string]bool)
	var claims []Claim
	for _, article := range articles {
		title := article.Title
		if title == "" {
			title = "No title"
		}
		if seenTitles[title] {
			continue
		}
		seenTitles[title] = true

		source := article.SourceID
		if source == "" {
			source = "newsdata"
		}
		content := article.Description
		if content == "" {
			content = title
		}

		claims = append(claims, Claim{
			Text:   title,
			Source: source,
			Status: StatusUnverified,
			Evidence: []Evidence{{
				Source:  source,
				Content: content,
				URL:     article.Link,
			}},
		})
	}
	return claims
}

// mockClaimsByCategory generates a mock claim for a category.
func mockClaimsByCategory(category string) []Claim {
	text, ok := mockHeadlines[category]
	if !ok {
		text = "Latest news update."
	}
	return []Claim{{
		Text:   text,
		Source: "mock_data",
		Status: StatusUnverified,
	}}
}
