package matchengine

import (
	"regexp"
	"strings"
	"time"

	"github.com/edgewire/edgewire/pkg/oddsfeed"
	"github.com/edgewire/edgewire/pkg/polymarket/gamma"
)

// DefaultStake is the reference stake EV figures are quoted for.
const DefaultStake = 100.0

// minPricePercent is the liquidity floor: contracts priced below 1%
// are noise, not opportunities, and are excluded from every strategy.
const minPricePercent = 1.0

// Config tunes a matching pass.
type Config struct {
	// Stake is the reference stake in dollars. Defaults to DefaultStake.
	Stake float64
	// IncludeUnmatched emits opportunities with sportsbook fields
	// omitted when no book line exists for the outcome.
	IncludeUnmatched bool
	// Now overrides the clock (timeframe bucketing). Defaults to
	// time.Now.
	Now func() time.Time
}

// Engine runs the matching strategies. Stateless between calls; safe
// for concurrent use across independent inputs.
type Engine struct {
	stake            float64
	includeUnmatched bool
	now              func() time.Time

	sel       *QuoteSelector
	soccerSel *QuoteSelector
}

// NewEngine creates an engine. A nil config uses defaults.
func NewEngine(cfg *Config) *Engine {
	e := &Engine{
		stake:     DefaultStake,
		now:       time.Now,
		sel:       NewQuoteSelector(),
		soccerSel: NewSoccerQuoteSelector(),
	}
	if cfg != nil {
		if cfg.Stake > 0 {
			e.stake = cfg.Stake
		}
		e.includeUnmatched = cfg.IncludeUnmatched
		if cfg.Now != nil {
			e.now = cfg.Now
		}
	}
	return e
}

// FindOpportunities runs the strategies appropriate for the context's
// sport, deduplicates across them, and sorts by event time with EV%
// as the tie-break.
func (e *Engine) FindOpportunities(events []gamma.Event, quotes []oddsfeed.Event, ctx Context) []Opportunity {
	var opps []Opportunity
	if strings.EqualFold(ctx.Sport, "soccer") {
		opps = e.MatchSoccer(events, quotes, ctx)
	} else {
		opps = append(e.MatchGames(events, quotes, ctx), e.MatchOutrights(events, quotes, ctx)...)
	}

	opps = Dedupe(opps)
	SortByEventTime(opps)
	return opps
}

// --- team extraction -------------------------------------------------

// beatPattern captures "Will X beat/defeat/win against Y" questions.
var beatPattern = regexp.MustCompile(`(?i)^will\s+(?:the\s+)?(.+?)\s+(?:beat|defeat|win\s+against)\s+(?:the\s+)?(.+?)\s*\??$`)

// winPattern captures single-entrant "Will X win ..." questions.
var winPattern = regexp.MustCompile(`(?i)^will\s+(?:the\s+)?(.+?)\s+win\b`)

// vsSeparators split "X vs Y" style titles.
var vsSeparators = []string{" vs. ", " vs ", " v. ", " v ", " - ", " — "}

// questionTeams extracts the two competitors from a head-to-head
// question. The first capture is the side "Yes" resolves on.
func questionTeams(question string) (team1, team2 string, ok bool) {
	m := beatPattern.FindStringSubmatch(strings.TrimSpace(question))
	if m == nil {
		return "", "", false
	}
	return cleanTeamName(m[1]), cleanTeamName(m[2]), true
}

// titleTeams extracts the two competitors from a "X vs Y" or "X - Y"
// title.
func titleTeams(title string) (team1, team2 string, ok bool) {
	for _, sep := range vsSeparators {
		if idx := strings.Index(title, sep); idx > 0 {
			t1 := cleanTeamName(title[:idx])
			t2 := cleanTeamName(title[idx+len(sep):])
			if t1 != "" && t2 != "" {
				return t1, t2, true
			}
		}
	}
	return "", "", false
}

// cleanTeamName trims question/title residue from a captured name.
func cleanTeamName(s string) string {
	s = strings.TrimSpace(s)
	for _, cut := range []string{"?", ":", " end in a draw", " on 20"} {
		if idx := strings.Index(strings.ToLower(s), cut); idx > 0 {
			s = s[:idx]
		}
	}
	// Drop trailing date/qualifier fragments like "(Jan 14)".
	if idx := strings.Index(s, "("); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// winEntrant extracts the entrant from a "Will X win ..." futures
// question.
func winEntrant(question string) (string, bool) {
	m := winPattern.FindStringSubmatch(strings.TrimSpace(question))
	if m == nil {
		return "", false
	}
	name := cleanTeamName(m[1])
	return name, name != ""
}

// --- shared market plumbing ------------------------------------------

// marketEventTime picks the best available timestamp for a market's
// real-world event: the scheduled game start when the venue provides
// one, else the parent event's start, else the resolution date.
func marketEventTime(ev *gamma.Event, m *gamma.Market) time.Time {
	switch {
	case !m.GameStartTime.IsZero():
		return m.GameStartTime
	case !ev.StartDate.IsZero():
		return ev.StartDate
	default:
		return m.EndDate
	}
}

// marketResolution picks the market's resolution date for timeframe
// bucketing.
func marketResolution(ev *gamma.Event, m *gamma.Market) time.Time {
	if !m.EndDate.IsZero() {
		return m.EndDate
	}
	return ev.EndDate
}

// isYesNo reports whether the outcome entry set is a plain Yes/No
// binary market.
func isYesNo(entries []OutcomeEntry) bool {
	if len(entries) != 2 {
		return false
	}
	a := strings.ToLower(entries[0].Name)
	b := strings.ToLower(entries[1].Name)
	return (a == "yes" && b == "no") || (a == "no" && b == "yes")
}

// yesPrice returns the price of the "Yes" outcome, if present.
func yesPrice(entries []OutcomeEntry) (float64, bool) {
	for _, en := range entries {
		if strings.EqualFold(en.Name, "yes") {
			return en.Price, true
		}
	}
	return 0, false
}

// usablePrice applies the sub-1% liquidity floor.
func usablePrice(price float64) bool {
	return price*100 >= minPricePercent
}

// polymarketURL builds the public market URL from an event slug.
func polymarketURL(ev *gamma.Event) string {
	if ev.Slug == "" {
		return ""
	}
	return "https://polymarket.com/event/" + ev.Slug
}

// emit assembles an Opportunity from a contract outcome and an
// optional best book quote. Returns nil when the quote's odds are
// unusable (zero American price).
func (e *Engine) emit(ctx Context, ev *gamma.Event, m *gamma.Market, matchup, outcome string, eventTime time.Time, price float64, quote *BookQuote, mt MarketType) *Opportunity {
	opp := &Opportunity{
		ID:              opportunityID(matchup, outcome, m.ID),
		Sport:           ctx.Sport,
		League:          ctx.League,
		Matchup:         matchup,
		Outcome:         outcome,
		EventTime:       eventTime,
		PolymarketPrice: price,
		PolymarketProb:  price * 100,
		PolymarketID:    m.ID,
		PolymarketURL:   polymarketURL(ev),
		MarketType:      mt,
		Timeframe:       ClassifyTimeframe(marketResolution(ev, m), e.now()),
		Category:        ClassifyCategory(ev.Title),
	}

	if quote == nil {
		return opp
	}

	res := ComputeEV(e.stake, price, quote.Price)
	if res == nil {
		return nil
	}

	opp.SportsbookName = quote.Bookmaker
	opp.SportsbookOdds = quote.Price
	opp.DecimalOdds = res.DecimalOdds.InexactFloat64()
	opp.TrueProbability = res.TrueProb.InexactFloat64()
	opp.SportsbookProb = res.TrueProb.Mul(hundred).InexactFloat64()
	opp.ProfitIfWin = res.ProfitIfWin.InexactFloat64()
	opp.ExpectedProfit = res.ExpectedProfit.InexactFloat64()
	ev2 := res.EV.InexactFloat64()
	evp := res.EVPercent.InexactFloat64()
	opp.EVDollars = &ev2
	opp.EVPercent = &evp
	opp.Quality = res.Quality
	return opp
}
