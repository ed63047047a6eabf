// Package matchengine matches prediction-market contracts against
// sportsbook lines for the same real-world outcome and prices the
// difference as expected value.
//
// The engine is a pure function over in-memory inputs: it performs no
// I/O, mutates nothing shared, and is safe to re-run on every request.
// Malformed or partial input always degrades to fewer opportunities,
// never to an error.
package matchengine

import (
	"time"

	"github.com/google/uuid"
)

// Context selects which strategies run and what labels get stamped on
// output.
type Context struct {
	Sport  string `json:"sport"`
	League string `json:"league,omitempty"`
}

// MarketType tags the structural shape of a contract.
type MarketType string

const (
	MarketTypeGame       MarketType = "game"
	MarketTypePlayerProp MarketType = "player_prop"
	MarketTypeFutures    MarketType = "futures"
	MarketTypeTotal      MarketType = "total"
	MarketTypeOther      MarketType = "other"
)

// Category tags what a market resolves on.
type Category string

const (
	CategoryChampionship Category = "championship"
	CategoryConference   Category = "conference"
	CategoryDivision     Category = "division"
	CategoryPlayoffs     Category = "playoffs"
	CategoryMVP          Category = "mvp"
	CategoryAwards       Category = "awards"
	CategoryStatLeader   Category = "stat_leader"
	CategoryWinTotals    Category = "win_totals"
	CategoryGames        Category = "games"
	CategoryOther        Category = "other"
)

// Timeframe buckets a contract's resolution date relative to now.
type Timeframe string

const (
	TimeframeToday   Timeframe = "today"
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeFutures Timeframe = "futures"
	TimeframeAll     Timeframe = "all"
)

// Quality is a display bucketing of EV%.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityMarginal  Quality = "marginal"
)

// Opportunity is one prediction-market contract outcome, optionally
// paired with the best competing sportsbook quote for the same
// outcome. Sportsbook and EV fields are absent when no book match
// exists; such records represent "prediction-market-only"
// opportunities.
type Opportunity struct {
	ID        string    `json:"id"`
	Sport     string    `json:"sport"`
	League    string    `json:"league,omitempty"`
	Matchup   string    `json:"matchup"`
	Outcome   string    `json:"outcome"`
	EventTime time.Time `json:"eventTime"`

	// Prediction-market side. Price is a probability in [0,1].
	PolymarketPrice float64 `json:"polymarketPrice"`
	PolymarketProb  float64 `json:"polymarketProbability"` // percent
	PolymarketID    string  `json:"polymarketId"`
	PolymarketURL   string  `json:"polymarketUrl,omitempty"`

	// Best sportsbook quote, if any.
	SportsbookName  string  `json:"sportsbookName,omitempty"`
	SportsbookOdds  float64 `json:"sportsbookOdds,omitempty"` // American
	SportsbookProb  float64 `json:"sportsbookProbability,omitempty"` // percent
	DecimalOdds     float64 `json:"sportsbookDecimalOdds,omitempty"`
	TrueProbability float64 `json:"trueProbability,omitempty"` // fraction

	// EV for the reference stake. Pointers so a genuine 0 survives
	// serialization while unmatched records omit the fields entirely.
	EVDollars      *float64 `json:"evDollars,omitempty"`
	EVPercent      *float64 `json:"evPercent,omitempty"`
	ProfitIfWin    float64  `json:"profitIfWin,omitempty"`
	ExpectedProfit float64  `json:"expectedProfit,omitempty"`

	Quality    Quality    `json:"quality,omitempty"`
	MarketType MarketType `json:"marketType"`
	Timeframe  Timeframe  `json:"timeframe"`
	Category   Category   `json:"category"`
}

// HasSportsbook reports whether a book quote was matched.
func (o *Opportunity) HasSportsbook() bool {
	return o.SportsbookName != ""
}

// opportunityNamespace seeds deterministic IDs so the same
// matchup+outcome+contract always hashes to the same identifier
// across matching passes.
var opportunityNamespace = uuid.MustParse("9f2c1a84-52b7-4c57-9e11-6b1f0d3a7c42")

// opportunityID derives a stable ID from the matchup, outcome, and
// contract identity.
func opportunityID(matchup, outcome, marketID string) string {
	return uuid.NewSHA1(opportunityNamespace, []byte(matchup+"|"+outcome+"|"+marketID)).String()
}
