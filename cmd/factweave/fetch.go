// cmd/factweave/fetch.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// maxExtractChars bounds the plain-text excerpt taken from a fetched page.
const maxExtractChars = 1000

// PageExtract is the bounded result of fetching a user-supplied link.
type PageExtract struct {
	Title string
	Text  string
}

// PageFetcher retrieves and extracts content from web pages.
type PageFetcher struct {
	client    *http.Client
	userAgent string
}

// NewPageFetcher creates a page fetcher with a 10 second bound per fetch.
func NewPageFetcher(userAgent string) *PageFetcher {
	return &PageFetcher{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves a page and extracts its title and the first 1000 characters
// of visible text. Exactly one attempt is made.
func (f *PageFetcher) Fetch(ctx context.Context, link string) (*PageExtract, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, NewAgentError(ErrorTypeFetch, ErrFetchRequest, "build request", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, NewAgentError(ErrorTypeFetch, ErrFetchRequest, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAgentError(ErrorTypeFetch, ErrFetchStatus,
			fmt.Sprintf("unexpected status %s", resp.Status), nil)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &ParseError{Source: "page", Reason: "charset detection failed", Inner: err}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, &ParseError{Source: "page", Reason: "invalid HTML", Inner: err}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = link
	}

	doc.Find("script, style, noscript").Remove()
	text := collapseWhitespace(doc.Find("body").Text())
	if text == "" {
		text = collapseWhitespace(doc.Text())
	}
	if runes := []rune(text); len(runes) > maxExtractChars {
		text = string(runes[:maxExtractChars])
	}

	return &PageExtract{Title: title, Text: text}, nil
}

// collapseWhitespace squeezes runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
