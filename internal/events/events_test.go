package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const eonetPayload = `{
  "title": "EONET Events",
  "events": [
    {
      "id": "EONET_1234",
      "title": "Tropical Storm Alba",
      "categories": [{"id": "severeStorms", "title": "Severe Storms"}],
      "geometry": [
        {"date": "2025-03-01T00:00:00Z", "type": "Point", "coordinates": [1, 2]},
        {"date": "2025-03-03T06:00:00Z", "type": "Point", "coordinates": [3, 4]}
      ]
    },
    {
      "id": "EONET_5678",
      "title": "Wildfire, Cascade Range",
      "categories": [{"id": "wildfires", "title": "Wildfires"}],
      "geometry": []
    }
  ]
}`

func TestRecentProjectsEvents(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"limit":  q.Get("limit"),
			"days":   q.Get("days"),
			"status": q.Get("status"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(eonetPayload))
	}))
	defer srv.Close()

	client := New(5 * time.Second).WithBaseURL(srv.URL)
	events, err := client.Recent(context.Background(), Query{Limit: 5, Days: 20, Status: "open"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["limit"] != "5" || gotQuery["days"] != "20" || gotQuery["status"] != "open" {
		t.Errorf("unexpected query parameters: %v", gotQuery)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != "EONET_1234" || events[0].Title != "Tropical Storm Alba" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if len(events[0].Categories) != 1 || events[0].Categories[0] != "Severe Storms" {
		t.Errorf("unexpected categories: %v", events[0].Categories)
	}
	if events[0].Date != "2025-03-03T06:00:00Z" {
		t.Errorf("expected most recent geometry date, got %q", events[0].Date)
	}
	if events[1].Date != "" {
		t.Errorf("expected empty date for event without geometry, got %q", events[1].Date)
	}
}

func TestRecentAppliesDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("limit") != "5" || q.Get("days") != "20" || q.Get("status") != "open" {
			t.Errorf("expected default parameters, got %v", q)
		}
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	defer srv.Close()

	client := New(0).WithBaseURL(srv.URL)
	events, err := client.Recent(context.Background(), Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestRecentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(5 * time.Second).WithBaseURL(srv.URL)
	if _, err := client.Recent(context.Background(), Query{}); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}
