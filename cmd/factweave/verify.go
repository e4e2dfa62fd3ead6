// cmd/factweave/verify.go
package main

import (
	"context"
	"fmt"
)

// verify limits: two search strategies, two hits per query, three kept total.
const (
	maxSearchQueries = 2
	resultsPerQuery  = 2
	maxSearchResults = 3
)

// VerifyAgent enriches a claim with evidence from a user link, an uploaded
// image, and fact-checking web searches. External failures never escape;
// they are recorded as evidence entries instead.
type VerifyAgent struct {
	fetcher *PageFetcher
	search  Searcher
}

// NewVerifyAgent creates a verify agent.
func NewVerifyAgent(fetcher *PageFetcher, search Searcher) *VerifyAgent {
	return &VerifyAgent{fetcher: fetcher, search: search}
}

// Verify mutates and returns the same claim.
func (a *VerifyAgent) Verify(ctx context.Context, claim *Claim, link string, imageContent []byte) *Claim {
	GetLogger().Info("Verifying claim: %s", claim.Text)

	if link != "" {
		a.verifyLink(ctx, claim, link)
	}

	if len(imageContent) > 0 {
		// Placeholder until vision analysis lands.
		GetLogger().Info("Received image upload (%d bytes)", len(imageContent))
		claim.Evidence = append(claim.Evidence, Evidence{
			Source:  "User Image",
			Content: fmt.Sprintf("Image received (%d bytes). Vision analysis not yet implemented.", len(imageContent)),
			URL:     "Uploaded Image",
		})
		if claim.Text == "" {
			claim.Text = "Verify uploaded image content"
		}
	}

	if claim.Text != "" {
		a.searchEvidence(ctx, claim)
	}

	return claim
}

// verifyLink fetches the link and appends extracted content as evidence. A
// failed fetch is itself recorded as evidence; it does not synthesize claim
// text, only the success path does.
func (a *VerifyAgent) verifyLink(ctx context.Context, claim *Claim, link string) {
	GetLogger().Info("Fetching content from link: %s", link)
	extract, err := a.fetcher.Fetch(ctx, link)
	if err != nil {
		GetLogger().Error("Failed to fetch link %s: %v", link, err)
		claim.Evidence = append(claim.Evidence, Evidence{
			Source:  "User Link",
			Content: fmt.Sprintf("Failed to fetch content from %s: %v", link, err),
			URL:     link,
		})
		return
	}

	claim.Evidence = append(claim.Evidence, Evidence{
		Source:  "User Link: " + extract.Title,
		Content: "Extracted content: " + extract.Text,
		URL:     link,
	})
	if claim.Text == "" {
		claim.Text = "Check content from " + link
	}
	GetLogger().Info("Successfully extracted content from link")
}

// searchEvidence runs the fact-checking searches and appends deduplicated
// results as evidence. Total failure is recorded as a single evidence entry.
func (a *VerifyAgent) searchEvidence(ctx context.Context, claim *Claim) {
	queries := []string{
		claim.Text + " fact check",
		claim.Text + " snopes",
	}

	GetLogger().Info("Searching for fact-checking evidence: %s", claim.Text)

	var all []SearchResult
	var lastErr error
	for _, query := range queries[:maxSearchQueries] {
		results, err := a.search.Search(ctx, query, resultsPerQuery)
		if err != nil {
			lastErr = err
			continue
		}
		all = append(all, results...)
		if len(all) >= maxSearchResults {
			break
		}
	}

	if len(all) == 0 && lastErr != nil {
		GetLogger().Error("Web search failed: %v", lastErr)
		claim.Evidence = append(claim.Evidence, Evidence{
			Source:  "Search Error",
			Content: fmt.Sprintf("Failed to perform web search: %v", lastErr),
			URL:     "",
		})
		return
	}

	seenURLs := make(map[string]bool)
	kept := 0
	for _, result := range all {
		if result.URL == "" || seenURLs[result.URL] {
			continue
		}
		seenURLs[result.URL] = true
		source := result.Title
		if source == "" {
			source = "Unknown"
		}
		claim.Evidence = append(claim.Evidence, Evidence{
			Source:  source,
			Content: result.Body,
			URL:     result.URL,
		})
		kept++
		if kept >= maxSearchResults {
			break
		}
	}
	GetLogger().Info("Found %d fact-checking results", kept)
}
