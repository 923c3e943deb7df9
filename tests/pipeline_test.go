package tests

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nk-zt/deflow/pkg/deflow"
	"github.com/nk-zt/deflow/pkg/deflow/pipe"
)

// TestURLProcessing runs every URL through the same deferred chain: validate
// the scheme, fetch a mock title, measure it, and collapse failures to
// "invalid" without ever surfacing an error.
func TestURLProcessing(t *testing.T) {
	urls := []string{
		// valid by structure (never actually fetched)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",

		// invalid by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processURLs(urls)
	require.Len(t, results, len(urls))

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}

	assert.Equal(t, 2, invalidCount)
	assert.Equal(t, fmt.Sprintf("title length: %d", len("Mock Page Title for https://www.example.com")), results[0])
}

func processURLs(urls []string) []string {
	ctx := context.Background()
	results := make([]string, 0, len(urls))

	for _, url := range urls {
		chain := pipe.Map(
			pipe.Try(
				pipe.Of(url).Assert(hasHTTPScheme, "URL must start with http:// or https://"),
				mockFetchTitle,
			),
			func(_ context.Context, title string) int { return len(title) },
		)

		results = append(results, describe(chain.RunSafe(ctx)))
	}

	return results
}

func describe(res deflow.SafeResult[int]) string {
	if !res.Ok {
		return "invalid"
	}
	return fmt.Sprintf("title length: %d", res.Value)
}

// mockFetchTitle simulates fetching a page title without network access.
func mockFetchTitle(_ context.Context, url string) (string, error) {
	return "Mock Page Title for " + url, nil
}

func hasHTTPScheme(_ context.Context, url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// TestChainIsReusable re-runs a single chain description against a shared
// counter to confirm each terminal call is an independent execution.
func TestChainIsReusable(t *testing.T) {
	ctx := context.Background()

	executions := 0
	chain := pipe.From(func(_ context.Context) (int, error) {
		executions++
		return executions * 10, nil
	}).If(
		func(_ context.Context, n int) (bool, error) { return n > 10, nil },
		func(_ context.Context, n int) (int, error) { return n + 1, nil },
	)

	first, err := chain.Run(ctx)
	require.NoError(t, err)
	second, err := chain.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 10, first)
	assert.Equal(t, 21, second)
	assert.Equal(t, 2, executions)
}
