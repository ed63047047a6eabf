package matchengine

import (
	"strings"

	"github.com/edgewire/edgewire/pkg/oddsfeed"
	"github.com/edgewire/edgewire/pkg/polymarket/gamma"
)

// Outright strategy: futures fields (championship, conference, MVP,
// award, stat-leader markets) where each sub-market prices one entrant.
// Game and win-total markets never go through this path; the
// head-to-head strategy owns games, and win totals have no outright
// book equivalent.

// outrightCategories are the futures categories the strategy accepts.
var outrightCategories = map[Category]bool{
	CategoryChampionship: true,
	CategoryConference:   true,
	CategoryDivision:     true,
	CategoryPlayoffs:     true,
	CategoryMVP:          true,
	CategoryAwards:       true,
	CategoryStatLeader:   true,
}

// venueOnlyKeywords mark markets the books simply do not carry; those
// are emitted without sportsbook fields even when unmatched output is
// off, so the field is still visible downstream.
var venueOnlyKeywords = []string{
	"mvp", "rookie of the year", "coach of the year", "sixth man",
	"most improved", "defensive player", "cy young", "draft",
	"all-star", "in-season tournament", "play-in",
}

func isVenueOnly(title string) bool {
	t := strings.ToLower(title)
	for _, kw := range venueOnlyKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// outrightEntrant names the entrant a sub-market prices: the grouped
// item title when the venue provides one, else the subject of a
// "Will X win ..." question.
func outrightEntrant(m *gamma.Market) (string, bool) {
	if t := strings.TrimSpace(m.GroupItemTitle); t != "" {
		return t, true
	}
	return winEntrant(m.Question)
}

// entrantPrice finds the contract price for an entrant: the "Yes" side
// of a binary market, else an outcome named after the entrant.
func entrantPrice(entries []OutcomeEntry, entrant string) (float64, bool) {
	if p, ok := yesPrice(entries); ok {
		return p, true
	}
	for _, en := range entries {
		if NamesMatch(en.Name, entrant) {
			return en.Price, true
		}
	}
	return 0, false
}

// bestOutrightQuote scans every sportsbook event for the entrant,
// preferring outright markets and falling back to h2h, keeping the
// most generous quote found anywhere.
func (e *Engine) bestOutrightQuote(quotes []oddsfeed.Event, entrant string) *BookQuote {
	var best *BookQuote
	for i := range quotes {
		q := e.sel.BestQuote(&quotes[i], entrant, oddsfeed.MarketOutrights)
		if q == nil {
			q = e.sel.BestQuote(&quotes[i], entrant, oddsfeed.MarketH2H)
		}
		if q != nil && (best == nil || q.DecimalOdds > best.DecimalOdds) {
			best = q
		}
	}
	return best
}

// MatchOutrights runs the futures strategy over one sport's contracts
// and quotes. Output is sorted by EV% descending; futures have no
// meaningful event time to order by.
func (e *Engine) MatchOutrights(events []gamma.Event, quotes []oddsfeed.Event, ctx Context) []Opportunity {
	var out []Opportunity
	for i := range events {
		ev := &events[i]
		if ev.Closed {
			continue
		}
		category := ClassifyCategory(ev.Title)
		if !outrightCategories[category] {
			continue
		}
		venueOnly := isVenueOnly(ev.Title)

		for j := range ev.Markets {
			m := &ev.Markets[j]
			if m.Closed || !m.Active {
				continue
			}

			entrant, ok := outrightEntrant(m)
			if !ok {
				continue
			}
			entries := ParseOutcomes(m)
			price, ok := entrantPrice(entries, entrant)
			if !ok || !usablePrice(price) {
				continue
			}

			quote := e.bestOutrightQuote(quotes, entrant)
			if quote == nil && !e.includeUnmatched && !venueOnly {
				continue
			}

			opp := e.emit(ctx, ev, m, ev.Title, entrant, marketResolution(ev, m), price, quote, MarketTypeFutures)
			if opp != nil {
				out = append(out, *opp)
			}
		}
	}

	out = Dedupe(out)
	SortByEVPercent(out)
	return out
}
