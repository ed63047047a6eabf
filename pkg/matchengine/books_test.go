package matchengine

import (
	"testing"

	"github.com/edgewire/edgewire/pkg/oddsfeed"
)

func quoteEvent() *oddsfeed.Event {
	return &oddsfeed.Event{
		HomeTeam: "Los Angeles Lakers",
		AwayTeam: "Boston Celtics",
		Bookmakers: []oddsfeed.Bookmaker{
			{
				Key:   "draftkings",
				Title: "DraftKings",
				Markets: []oddsfeed.Market{
					{
						Key: oddsfeed.MarketH2H,
						Outcomes: []oddsfeed.Outcome{
							{Name: "Los Angeles Lakers", Price: -120},
							{Name: "Boston Celtics", Price: 100},
						},
					},
				},
			},
			{
				Key:   "fanduel",
				Title: "FanDuel",
				Markets: []oddsfeed.Market{
					{
						Key: oddsfeed.MarketH2H,
						Outcomes: []oddsfeed.Outcome{
							{Name: "Home", Price: -115},
							{Name: "Away", Price: -105},
						},
					},
				},
			},
		},
	}
}

func TestBestQuotePicksHighestDecimal(t *testing.T) {
	sel := NewQuoteSelector()
	ev := quoteEvent()

	// Lakers: -115 (FanDuel, via Home label) beats -120 (DraftKings).
	q := sel.BestQuote(ev, "Lakers", oddsfeed.MarketH2H)
	if q == nil {
		t.Fatal("no quote found for Lakers")
	}
	if q.Bookmaker != "FanDuel" || q.Price != -115 {
		t.Errorf("got %s %v, want FanDuel -115", q.Bookmaker, q.Price)
	}

	// Celtics: +100 (DraftKings) beats -105 (FanDuel, via Away label).
	q = sel.BestQuote(ev, "Celtics", oddsfeed.MarketH2H)
	if q == nil {
		t.Fatal("no quote found for Celtics")
	}
	if q.Bookmaker != "DraftKings" || q.Price != 100 {
		t.Errorf("got %s %v, want DraftKings +100", q.Bookmaker, q.Price)
	}
}

func TestBestQuoteMarketKeyFilter(t *testing.T) {
	sel := NewQuoteSelector()
	if q := sel.BestQuote(quoteEvent(), "Lakers", oddsfeed.MarketOutrights); q != nil {
		t.Errorf("expected no outright quote, got %+v", q)
	}
}

func TestBestQuoteUnknownOutcome(t *testing.T) {
	sel := NewQuoteSelector()
	if q := sel.BestQuote(quoteEvent(), "Miami Heat", oddsfeed.MarketH2H); q != nil {
		t.Errorf("expected no quote for Heat, got %+v", q)
	}
}

func TestBestQuoteSkipsZeroPrice(t *testing.T) {
	sel := NewQuoteSelector()
	ev := &oddsfeed.Event{
		HomeTeam: "Los Angeles Lakers",
		AwayTeam: "Boston Celtics",
		Bookmakers: []oddsfeed.Bookmaker{
			{
				Title: "BadBook",
				Markets: []oddsfeed.Market{
					{
						Key:      oddsfeed.MarketH2H,
						Outcomes: []oddsfeed.Outcome{{Name: "Los Angeles Lakers", Price: 0}},
					},
				},
			},
		},
	}
	if q := sel.BestQuote(ev, "Lakers", oddsfeed.MarketH2H); q != nil {
		t.Errorf("expected zero-price line to be skipped, got %+v", q)
	}
}

func TestBestQuoteDraw(t *testing.T) {
	sel := NewSoccerQuoteSelector()
	ev := &oddsfeed.Event{
		HomeTeam: "Arsenal",
		AwayTeam: "Chelsea",
		Bookmakers: []oddsfeed.Bookmaker{
			{
				Title: "DraftKings",
				Markets: []oddsfeed.Market{
					{
						Key: oddsfeed.MarketH2H3Way,
						Outcomes: []oddsfeed.Outcome{
							{Name: "Arsenal", Price: 120},
							{Name: "Draw", Price: 230},
							{Name: "Chelsea", Price: 240},
						},
					},
				},
			},
		},
	}

	q := sel.BestQuote(ev, "Draw", oddsfeed.MarketH2H3Way)
	if q == nil {
		t.Fatal("no draw quote found")
	}
	if q.Price != 230 {
		t.Errorf("draw price = %v, want 230", q.Price)
	}

	// A team lookup must never land on the draw line.
	q = sel.BestQuote(ev, "Arsenal FC", oddsfeed.MarketH2H3Way)
	if q == nil {
		t.Fatal("no Arsenal quote found")
	}
	if q.Price != 120 {
		t.Errorf("Arsenal price = %v, want 120", q.Price)
	}
}
