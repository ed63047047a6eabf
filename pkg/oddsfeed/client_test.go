package oddsfeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOdds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sports/basketball_nba/odds" {
			t.Errorf("Expected odds path, got %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("apiKey") != "test-key" {
			t.Errorf("Expected apiKey=test-key, got %s", query.Get("apiKey"))
		}
		if query.Get("markets") != "h2h" {
			t.Errorf("Expected markets=h2h, got %s", query.Get("markets"))
		}
		if query.Get("regions") != "us" {
			t.Errorf("Expected regions=us, got %s", query.Get("regions"))
		}
		if query.Get("oddsFormat") != "american" {
			t.Errorf("Expected oddsFormat=american, got %s", query.Get("oddsFormat"))
		}

		w.Header().Set("x-requests-remaining", "480")
		w.Header().Set("x-requests-used", "20")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Event{
			{
				ID:           "abc",
				SportKey:     "basketball_nba",
				CommenceTime: time.Date(2026, 1, 14, 19, 0, 0, 0, time.UTC),
				HomeTeam:     "Los Angeles Lakers",
				AwayTeam:     "Boston Celtics",
				Bookmakers: []Bookmaker{
					{
						Key:   "draftkings",
						Title: "DraftKings",
						Markets: []Market{
							{
								Key: MarketH2H,
								Outcomes: []Outcome{
									{Name: "Los Angeles Lakers", Price: -120},
									{Name: "Boston Celtics", Price: 100},
								},
							},
						},
					},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	resp, err := client.Odds(context.Background(), "basketball_nba", MarketH2H)
	if err != nil {
		t.Fatalf("Odds failed: %v", err)
	}

	if len(resp.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(resp.Events))
	}
	ev := resp.Events[0]
	if ev.HomeTeam != "Los Angeles Lakers" || ev.AwayTeam != "Boston Celtics" {
		t.Errorf("Wrong teams: %s / %s", ev.HomeTeam, ev.AwayTeam)
	}
	if len(ev.Bookmakers) != 1 || ev.Bookmakers[0].Markets[0].Outcomes[0].Price != -120 {
		t.Errorf("Wrong bookmaker lines: %+v", ev.Bookmakers)
	}

	if resp.Quota.Remaining != 480 || resp.Quota.Used != 20 {
		t.Errorf("Quota = %+v, want 480/20", resp.Quota)
	}
}

func TestOutrights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("markets") != MarketOutrights {
			t.Errorf("Expected markets=outrights, got %s", r.URL.Query().Get("markets"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Event{})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	if _, err := client.Outrights(context.Background(), "basketball_nba_championship_winner"); err != nil {
		t.Fatalf("Outrights failed: %v", err)
	}
}

func TestSports(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sports" {
			t.Errorf("Expected path /sports, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Sport{
			{Key: "basketball_nba", Title: "NBA", Active: true},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	sports, err := client.Sports(context.Background())
	if err != nil {
		t.Fatalf("Sports failed: %v", err)
	}
	if len(sports) != 1 || sports[0].Key != "basketball_nba" {
		t.Errorf("Wrong sports: %+v", sports)
	}
}

func TestAPIErrorKeepsQuota(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-requests-remaining", "0")
		w.Header().Set("x-requests-used", "500")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("quota exceeded"))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	if _, err := client.Odds(context.Background(), "basketball_nba", MarketH2H); err == nil {
		t.Error("Expected error for unauthorized response")
	}
}

func TestQuotaFromHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("x-requests-remaining", "42")
	h.Set("x-requests-used", "8")

	q := quotaFromHeaders(h)
	if q.Remaining != 42 || q.Used != 8 {
		t.Errorf("quota = %+v, want 42/8", q)
	}

	// Missing headers read as zero.
	q = quotaFromHeaders(http.Header{})
	if q.Remaining != 0 || q.Used != 0 {
		t.Errorf("quota = %+v, want zeros", q)
	}
}
