// cmd/factweave/feeds_test.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Wire</title>
<item><title>Wildfire spreads north</title><link>http://wire/fire</link><description>Containment at ten percent.</description></item>
<item><title>Wildfire spreads north</title><link>http://wire/fire-dup</link><description>Duplicate headline.</description></item>
<item><title>Markets close flat</title><link>http://wire/markets</link><description></description></item>
<item><title></title><link>http://wire/untitled</link><description>No headline.</description></item>
</channel></rss>`

func TestScanAllParsesAndDeduplicates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testFeedXML)
	}))
	defer srv.Close()

	scanner := NewFeedScanner([]FeedSource{{Name: "wire", URL: srv.URL}}, "test")
	claims := scanner.ScanAll(context.Background())

	require.Len(t, claims, 2, "duplicate and untitled items dropped")

	byTitle := make(map[string]Claim)
	for _, c := range claims {
		byTitle[c.Text] = c
	}
	fire, ok := byTitle["Wildfire spreads north"]
	require.True(t, ok)
	assert.Equal(t, "wire", fire.Source)
	require.Len(t, fire.Evidence, 1)
	assert.Equal(t, "Containment at ten percent.", fire.Evidence[0].Content)
	assert.Equal(t, "http://wire/fire", fire.Evidence[0].URL)

	markets, ok := byTitle["Markets close flat"]
	require.True(t, ok)
	assert.Equal(t, "Markets close flat", markets.Evidence[0].Content, "empty description falls back to title")
}

func TestScanAllUnreachableFeed(t *testing.T) {
	scanner := NewFeedScanner([]FeedSource{{Name: "down", URL: "http://127.0.0.1:1/feed"}}, "test")

	claims := scanner.ScanAll(context.Background())

	assert.Empty(t, claims)
}

func TestScanAllSkipsPausedSources(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		fmt.Fprint(w, testFeedXML)
	}))
	defer srv.Close()

	scanner := NewFeedScanner([]FeedSource{{Name: "paused", URL: srv.URL, Paused: true}}, "test")
	claims := scanner.ScanAll(context.Background())

	assert.Empty(t, claims)
	assert.False(t, called)
}

func TestScanFeedsWithoutScanner(t *testing.T) {
	agent := NewScanAgent(testNewsClient("", ""), nil)
	assert.Empty(t, agent.ScanFeeds(context.Background()))
}
