package gamma

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestListEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events" {
			t.Errorf("Expected path /events, got %s", r.URL.Path)
		}

		events := []Event{
			{
				ID:     "1",
				Title:  "Lakers vs Celtics",
				Active: true,
				Slug:   "nba-lal-bos",
			},
			{
				ID:     "2",
				Title:  "NBA Championship Winner 2026",
				Active: true,
				Slug:   "nba-champ-2026",
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	events, err := client.ListEvents(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}

	if len(events) != 2 {
		t.Errorf("Expected 2 events, got %d", len(events))
	}

	if events[0].Title != "Lakers vs Celtics" {
		t.Errorf("Wrong title: got %s", events[0].Title)
	}
}

func TestListEventsWithFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("active") != "true" {
			t.Errorf("Expected active=true, got %s", query.Get("active"))
		}
		if query.Get("tag") != "NBA" {
			t.Errorf("Expected tag=NBA, got %s", query.Get("tag"))
		}
		if query.Get("limit") != "10" {
			t.Errorf("Expected limit=10, got %s", query.Get("limit"))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Event{})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.ListEvents(context.Background(), &EventsFilter{
		Active: BoolPtr(true),
		Tag:    "NBA",
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
}

func TestListMarkets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/markets" {
			t.Errorf("Expected path /markets, got %s", r.URL.Path)
		}

		markets := []Market{
			{
				ID:               "1",
				Question:         "Will the Lakers beat the Celtics?",
				Active:           true,
				OutcomesRaw:      `["Yes", "No"]`,
				OutcomePricesRaw: `["0.65", "0.35"]`,
				ClobTokenIDsRaw:  `["token1", "token2"]`,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(markets)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	markets, err := client.ListMarkets(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListMarkets failed: %v", err)
	}

	if len(markets) != 1 {
		t.Errorf("Expected 1 market, got %d", len(markets))
	}

	if markets[0].Question != "Will the Lakers beat the Celtics?" {
		t.Errorf("Wrong question: got %s", markets[0].Question)
	}

	if got := markets[0].Outcomes(); len(got) != 2 || got[0] != "Yes" {
		t.Errorf("Wrong outcomes: %v", got)
	}
}

func TestGetEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/123" {
			t.Errorf("Expected path /events/123, got %s", r.URL.Path)
		}

		event := Event{
			ID:    "123",
			Title: "Single Event",
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(event)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	event, err := client.GetEvent(context.Background(), "123")
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}

	if event.ID != "123" {
		t.Errorf("Wrong ID: got %s", event.ID)
	}
}

func TestListAllOpenEvents(t *testing.T) {
	pages := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		query := r.URL.Query()
		if query.Get("tag") != "NBA" {
			t.Errorf("Expected tag=NBA, got %s", query.Get("tag"))
		}
		if query.Get("closed") != "false" {
			t.Errorf("Expected closed=false, got %s", query.Get("closed"))
		}

		// First page full, second page short: pagination stops there.
		n := 100
		if query.Get("offset") != "" && query.Get("offset") != "0" {
			n = 3
		}
		events := make([]Event, n)
		for i := range events {
			events[i] = Event{ID: "x", Active: true}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	events, err := client.ListAllOpenEvents(context.Background(), "NBA")
	if err != nil {
		t.Fatalf("ListAllOpenEvents failed: %v", err)
	}
	if len(events) != 103 {
		t.Errorf("Expected 103 events, got %d", len(events))
	}
	if pages != 2 {
		t.Errorf("Expected 2 pages, got %d", pages)
	}
}

func TestMarketMethods(t *testing.T) {
	market := Market{
		OutcomesRaw:      `["Yes", "No"]`,
		OutcomePricesRaw: `["0.65", "0.35"]`,
		ClobTokenIDsRaw:  `["yes-token", "no-token"]`,
		Active:           true,
	}

	if got := market.Outcomes(); len(got) != 2 || got[1] != "No" {
		t.Errorf("Outcomes wrong: %v", got)
	}

	if got := market.OutcomePrices(); len(got) != 2 || got[0] != "0.65" {
		t.Errorf("OutcomePrices wrong: %v", got)
	}

	if got := market.ClobTokenIDs(); len(got) != 2 || got[0] != "yes-token" {
		t.Errorf("ClobTokenIDs wrong: %v", got)
	}

	if !market.IsOpen() {
		t.Error("Market should be open")
	}

	market.Closed = true
	if market.IsOpen() {
		t.Error("Closed market should not be open")
	}
}

func TestEventMethods(t *testing.T) {
	event := Event{
		Active:   true,
		Closed:   false,
		Archived: false,
	}

	if !event.IsOpen() {
		t.Error("Event should be open")
	}

	event.Archived = true
	if event.IsOpen() {
		t.Error("Archived event should not be open")
	}
}

func TestJSONFloat(t *testing.T) {
	var payload struct {
		A JSONFloat `json:"a"`
		B JSONFloat `json:"b"`
		C JSONFloat `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a": 1.5, "b": "2.5", "c": ""}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.A.Float64() != 1.5 || payload.B.Float64() != 2.5 || payload.C.Float64() != 0 {
		t.Errorf("JSONFloat wrong: %v %v %v", payload.A, payload.B, payload.C)
	}
}

func TestClientWithOptions(t *testing.T) {
	customClient := &http.Client{Timeout: 60 * time.Second}

	client := NewClient(
		WithBaseURL("https://custom.api.com"),
		WithHTTPClient(customClient),
		WithRateLimit(5.0, 2),
	)

	if client.baseURL != "https://custom.api.com" {
		t.Errorf("Wrong base URL: %s", client.baseURL)
	}

	if client.httpClient != customClient {
		t.Error("Custom HTTP client not set")
	}
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Bad Request"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.ListEvents(context.Background(), nil)
	if err == nil {
		t.Error("Expected error for bad request")
	}
}
