// cmd/factweave/scan_test.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsDataServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, payload)
	}))
}

func testNewsClient(key, baseURL string) *NewsDataClient {
	c := NewNewsDataClient(key, "test")
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

func TestScanByCategoryMockFallbackWithoutKey(t *testing.T) {
	agent := NewScanAgent(testNewsClient("", ""), nil)

	claims := agent.ScanByCategory(context.Background(), "health")

	require.NotEmpty(t, claims, "scan must always return at least one claim")
	assert.Equal(t, "New health guidelines announced by WHO.", claims[0].Text)
	assert.Equal(t, "mock_data", claims[0].Source)
	assert.Equal(t, StatusUnverified, claims[0].Status)
}

func TestScanByCategoryUnknownCategoryFallsThrough(t *testing.T) {
	agent := NewScanAgent(testNewsClient("", ""), nil)

	claims := agent.ScanByCategory(context.Background(), "sports")

	require.NotEmpty(t, claims)
	assert.Equal(t, "Latest news update.", claims[0].Text)
}

func TestScanByCategoryDeduplicatesTitles(t *testing.T) {
	srv := newsDataServer(t, `{"status":"success","results":[
		{"title":"Same headline","description":"first","source_id":"alpha","link":"http://a"},
		{"title":"Same headline","description":"second","source_id":"beta","link":"http://b"},
		{"title":"Other headline","description":"third","source_id":"gamma","link":"http://c"}
	]}`)
	defer srv.Close()

	agent := NewScanAgent(testNewsClient("key", srv.URL), nil)
	claims := agent.ScanByCategory(context.Background(), "politics")

	require.Len(t, claims, 2)
	assert.Equal(t, "Same headline", claims[0].Text)
	assert.Equal(t, "alpha", claims[0].Source, "first article wins the title")
	assert.Equal(t, "Other headline", claims[1].Text)
}

func TestScanByCategoryNetworkErrorFallsBack(t *testing.T) {
	agent := NewScanAgent(testNewsClient("key", "http://127.0.0.1:1"), nil)

	claims := agent.ScanByCategory(context.Background(), "finance")

	require.NotEmpty(t, claims)
	assert.Equal(t, "mock_data", claims[0].Source)
}

func TestScanByCategoryBadPayloadFallsBack(t *testing.T) {
	srv := newsDataServer(t, `{"status":"error","results":[]}`)
	defer srv.Close()

	agent := NewScanAgent(testNewsClient("key", srv.URL), nil)
	claims := agent.ScanByCategory(context.Background(), "science")

	require.NotEmpty(t, claims)
	assert.Equal(t, "mock_data", claims[0].Source)
}

func TestScanCrisisMockFallback(t *testing.T) {
	agent := NewScanAgent(testNewsClient("", ""), nil)

	claims := agent.Scan(context.Background())

	require.Len(t, claims, 1)
	assert.Equal(t, "Breaking: Major earthquake reported in Japan.", claims[0].Text)
	assert.Equal(t, "social_media_mock", claims[0].Source)
	assert.Empty(t, claims[0].Evidence)
}

func TestScanMapsArticlesToClaims(t *testing.T) {
	srv := newsDataServer(t, `{"status":"success","results":[
		{"title":"Storm hits coast","description":"Heavy winds reported.","source_id":"wire","link":"http://wire/storm"}
	]}`)
	defer srv.Close()

	agent := NewScanAgent(testNewsClient("key", srv.URL), nil)
	claims := agent.Scan(context.Background())

	require.Len(t, claims, 1)
	claim := claims[0]
	assert.Equal(t, "Storm hits coast", claim.Text)
	assert.Equal(t, "wire", claim.Source)
	require.Len(t, claim.Evidence, 1)
	assert.Equal(t, "Heavy winds reported.", claim.Evidence[0].Content)
	assert.Equal(t, "http://wire/storm", claim.Evidence[0].URL)
}

func TestClaimsFromArticlesDescriptionFallsBackToTitle(t *testing.T) {
	claims := claimsFromArticles([]newsDataArticle{
		{Title: "Bare headline", SourceID: "", Link: "http://x"},
	})

	require.Len(t, claims, 1)
	assert.Equal(t, "newsdata", claims[0].Source)
	assert.Equal(t, "Bare headline", claims[0].Evidence[0].Content)
}

func TestNewsDataClientParseError(t *testing.T) {
	srv := newsDataServer(t, `not json at all`)
	defer srv.Close()

	client := testNewsClient("key", srv.URL)
	_, err := client.Latest(context.Background(), url.Values{"category": {"top"}})

	require.Error(t, err)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestNewsDataClientUnconfigured(t *testing.T) {
	assert.False(t, testNewsClient("", "").Configured())
	assert.True(t, testNewsClient("key", "").Configured())
}
