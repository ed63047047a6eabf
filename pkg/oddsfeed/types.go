// Package oddsfeed provides a client for The Odds API (v4), which
// aggregates live lines from licensed sportsbooks.
package oddsfeed

import "time"

// Market keys recognized by the feed.
const (
	MarketH2H       = "h2h"
	MarketH2H3Way   = "h2h_3_way"
	MarketOutrights = "outrights"
	MarketTotals    = "totals"
	MarketSpreads   = "spreads"
)

// Event is one sporting event with lines from one or more bookmakers.
// For outright (futures) sports the team fields are empty and the
// entrants live in the market outcomes.
type Event struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one book's current lines on an event.
type Bookmaker struct {
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	LastUpdate time.Time `json:"last_update"`
	Markets    []Market  `json:"markets"`
}

// Market is one priced market (h2h, h2h_3_way, outrights, ...) at one
// bookmaker.
type Market struct {
	Key        string    `json:"key"`
	LastUpdate time.Time `json:"last_update"`
	Outcomes   []Outcome `json:"outcomes"`
}

// Outcome is one priced side. Price is in American odds format.
type Outcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Point float64 `json:"point,omitempty"`
}

// Sport describes one sport key the feed carries.
type Sport struct {
	Key          string `json:"key"`
	Group        string `json:"group"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Active       bool   `json:"active"`
	HasOutrights bool   `json:"has_outrights"`
}

// Quota is the API usage state reported on every response via the
// x-requests-remaining and x-requests-used headers.
type Quota struct {
	Remaining int `json:"remaining"`
	Used      int `json:"used"`
}

// OddsResponse bundles one odds fetch with the quota headers that
// accompanied it.
type OddsResponse struct {
	Events []Event
	Quota  Quota
}
