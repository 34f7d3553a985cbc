// Package weather answers one-shot weather questions through the Tavily
// search API and projects a small set of conditions out of the answer text.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	tavilygo "github.com/diverged/tavily-go"
	tavilymodels "github.com/diverged/tavily-go/models"
)

// Report is the projected result of a weather search. Every field may be
// empty: the answer is free text and carries no guarantee that any given
// condition appears in it. Callers must check before use.
type Report struct {
	Answer        string
	Temperature   string
	Wind          string
	Precipitation string
}

// Found reports whether the search produced an answer at all.
func (r *Report) Found() bool {
	return r.Answer != ""
}

// Client performs weather lookups. The API key is injected at construction;
// nothing is read from the environment at request time.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a weather client using the given Tavily API key.
func New(apiKey string) *Client {
	return &Client{apiKey: apiKey, httpClient: http.DefaultClient}
}

// WithBaseURL overrides the Tavily endpoint, for tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithHTTPClient sets the HTTP client used for the search request. The
// client's timeout bounds the whole lookup.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// Current performs a single search for the weather at location, optionally
// pinned to a date, and projects conditions out of the answer. An answer
// with no recognizable conditions is a normal result, not an error; only
// transport failures return one.
func (c *Client) Current(ctx context.Context, location, date string) (*Report, error) {
	query := fmt.Sprintf("current weather in %s", location)
	if date != "" {
		query = fmt.Sprintf("weather in %s on %s", location, date)
	}

	client := tavilygo.NewClient(c.apiKey)
	if c.baseURL != "" {
		client.BaseURL = c.baseURL
	}
	if c.httpClient != nil {
		client.HTTPClient = c.httpClient
	}

	resp, err := tavilygo.Search(client, tavilymodels.SearchRequest{
		Query:         query,
		SearchDepth:   "basic",
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, fmt.Errorf("weather search for %q: %w", location, err)
	}

	answer := strings.TrimSpace(resp.Answer)
	return &Report{
		Answer:        answer,
		Temperature:   extractTemperature(answer),
		Wind:          extractWind(answer),
		Precipitation: extractPrecipitation(answer),
	}, nil
}
