// Package events queries NASA's EONET v3 API for recent natural events
// (storms, wildfires, volcanoes and the like). EONET requires no credential.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://eonet.gsfc.nasa.gov/api/v3"

// Query bounds an events lookup. Zero values fall back to the defaults.
type Query struct {
	Limit  int    // maximum number of events (default 5)
	Days   int    // look-back window in days (default 20)
	Status string // "open", "closed" or "all" (default "open")
}

// Normalized returns q with defaults applied to zero-value fields.
func (q Query) Normalized() Query {
	if q.Limit <= 0 {
		q.Limit = 5
	}
	if q.Days <= 0 {
		q.Days = 20
	}
	if q.Status == "" {
		q.Status = "open"
	}
	return q
}

// Event is the projected subset of an EONET event. Everything else in the
// response is discarded.
type Event struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Date       string   `json:"date,omitempty"`
}

// eonetResponse mirrors just the parts of the EONET payload we read.
type eonetResponse struct {
	Events []struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		Categories []struct {
			Title string `json:"title"`
		} `json:"categories"`
		Geometry []struct {
			Date string `json:"date"`
		} `json:"geometry"`
	} `json:"events"`
}

// Client fetches events from EONET.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an EONET client. A zero timeout falls back to 15 seconds.
func New(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithBaseURL overrides the EONET endpoint, for tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Recent returns events matching q, most recent first as EONET orders them.
func (c *Client) Recent(ctx context.Context, q Query) ([]Event, error) {
	q = q.Normalized()

	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("days", strconv.Itoa(q.Days))
	params.Set("status", q.Status)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building events request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying EONET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("EONET returned status %d", resp.StatusCode)
	}

	var payload eonetResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding EONET response: %w", err)
	}

	events := make([]Event, 0, len(payload.Events))
	for _, e := range payload.Events {
		ev := Event{ID: e.ID, Title: e.Title, Categories: make([]string, 0, len(e.Categories))}
		for _, cat := range e.Categories {
			ev.Categories = append(ev.Categories, cat.Title)
		}
		// Geometry entries are chronological; the last one is the most
		// recent known position of the event.
		if n := len(e.Geometry); n > 0 {
			ev.Date = e.Geometry[n-1].Date
		}
		events = append(events, ev)
	}
	return events, nil
}
