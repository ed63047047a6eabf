// Package gamma provides a read-only client for the Polymarket Gamma
// Markets API, which serves event and market metadata including live
// outcome prices.
package gamma

import (
	"encoding/json"
	"strconv"
	"time"
)

// Event is a Polymarket event: a container for one or more markets
// that resolve on the same real-world occurrence (a game, a season
// award, a championship field).
type Event struct {
	ID           string    `json:"id"`
	Ticker       string    `json:"ticker"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Active       bool      `json:"active"`
	Closed       bool      `json:"closed"`
	Archived     bool      `json:"archived"`
	New          bool      `json:"new"`
	Featured     bool      `json:"featured"`
	Restricted   bool      `json:"restricted"`
	Liquidity    JSONFloat `json:"liquidity"`
	Volume       JSONFloat `json:"volume"`
	Volume24hr   JSONFloat `json:"volume24hr"`
	OpenInterest JSONFloat `json:"openInterest"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Competitive  JSONFloat `json:"competitive"`
	Markets      []Market  `json:"markets,omitempty"`
	Tags         []Tag     `json:"tags,omitempty"`
	CommentCount int       `json:"commentCount"`
}

// Market is a single prediction market within an event. For grouped
// futures events (championship fields) each entrant gets its own
// market, named by GroupItemTitle.
type Market struct {
	ID             string    `json:"id"`
	Question       string    `json:"question"`
	ConditionID    string    `json:"conditionId"`
	Slug           string    `json:"slug"`
	GroupItemTitle string    `json:"groupItemTitle"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	GameStartTime  time.Time `json:"gameStartTime"`
	Active         bool      `json:"active"`
	Closed         bool      `json:"closed"`
	Archived       bool      `json:"archived"`

	// Outcome names, prices, and CLOB token IDs arrive as JSON-encoded
	// arrays inside strings, not as arrays.
	OutcomesRaw      string `json:"outcomes"`
	OutcomePricesRaw string `json:"outcomePrices"`
	ClobTokenIDsRaw  string `json:"clobTokenIds"`

	Liquidity    JSONFloat `json:"liquidity"`
	Volume       JSONFloat `json:"volume"`
	Volume24hr   JSONFloat `json:"volume24hr"`
	OpenInterest JSONFloat `json:"openInterest"`
	Spread       JSONFloat `json:"spread"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	EventID string `json:"eventID"`
	Tags    []Tag  `json:"tags,omitempty"`
}

// Tag is a category tag (sport, league).
type Tag struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Slug      string `json:"slug"`
	ForceShow bool   `json:"forceShow"`
}

// JSONFloat handles fields the API serves sometimes as numbers and
// sometimes as strings.
type JSONFloat float64

func (j *JSONFloat) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*j = JSONFloat(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*j = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*j = JSONFloat(f)
	return nil
}

func (j JSONFloat) Float64() float64 {
	return float64(j)
}

// EventsFilter contains filter parameters for listing events.
type EventsFilter struct {
	Active    *bool
	Closed    *bool
	Archived  *bool
	Slug      string
	Tag       string
	TagID     string // numeric tag ID (e.g. "82" for EPL)
	StartDate string // ISO 8601, start_date_min
	EndDate   string // ISO 8601, end_date_max
	Limit     int
	Offset    int
	Order     string // "asc" or "desc"
	SortBy    string // "volume", "liquidity", ...
}

// MarketsFilter contains filter parameters for listing markets.
type MarketsFilter struct {
	Active      *bool
	Closed      *bool
	ConditionID string
	Slug        string
	EventID     string
	Limit       int
	Offset      int
}

// BoolPtr returns a pointer to a bool.
func BoolPtr(b bool) *bool {
	return &b
}

// IsOpen reports whether the event is still trading.
func (e *Event) IsOpen() bool {
	return e.Active && !e.Closed && !e.Archived
}

// IsOpen reports whether the market is still trading.
func (m *Market) IsOpen() bool {
	return m.Active && !m.Closed && !m.Archived
}

// Outcomes returns the outcome names decoded from the serialized
// array, or nil when the field is empty or malformed.
func (m *Market) Outcomes() []string {
	var outcomes []string
	if m.OutcomesRaw == "" {
		return nil
	}
	json.Unmarshal([]byte(m.OutcomesRaw), &outcomes)
	return outcomes
}

// OutcomePrices returns the outcome prices decoded from the serialized
// array, still as strings.
func (m *Market) OutcomePrices() []string {
	var prices []string
	if m.OutcomePricesRaw == "" {
		return nil
	}
	json.Unmarshal([]byte(m.OutcomePricesRaw), &prices)
	return prices
}

// ClobTokenIDs returns the CLOB token IDs decoded from the serialized
// array.
func (m *Market) ClobTokenIDs() []string {
	var ids []string
	if m.ClobTokenIDsRaw == "" {
		return nil
	}
	json.Unmarshal([]byte(m.ClobTokenIDsRaw), &ids)
	return ids
}
