package matchengine

import (
	"regexp"
	"strings"

	"github.com/edgewire/edgewire/pkg/oddsfeed"
	"github.com/edgewire/edgewire/pkg/polymarket/gamma"
)

// Head-to-head strategy: bilateral moneyline markets (one team to beat
// another). Candidates come from "Will X beat Y?" questions and
// "X vs Y" event titles; everything that is not a plain moneyline
// (player props, partial-game lines, spreads, totals) is rejected
// before matching.

// decimalLine flags spread/total questions like "by 6.5 points".
var decimalLine = regexp.MustCompile(`\d+\.\d`)

// nonMoneylineKeywords reject sub-markets that share an event with the
// moneyline but price something else.
var nonMoneylineKeywords = []string{
	// player props
	"points", "rebounds", "assists", "yards", "touchdowns", "strikeouts",
	"passing", "rushing", "receiving", "triple-double", "double-double",
	"record a", "score a goal", "first basket", "first touchdown",
	// partial game
	"1st half", "first half", "2nd half", "second half",
	"1st quarter", "quarter", "1st period", "period",
	"first 5 innings", "1st 5 innings", "first five innings",
	// spreads and totals
	"spread", "cover", "over/under", "o/u", "combined", "total score",
	"total points", "by more than", "margin", "+",
}

// isMoneylineQuestion reports whether a question is a plain
// full-game moneyline.
func isMoneylineQuestion(question string) bool {
	q := strings.ToLower(question)
	if decimalLine.MatchString(q) {
		return false
	}
	for _, kw := range nonMoneylineKeywords {
		if strings.Contains(q, kw) {
			return false
		}
	}
	return true
}

// h2hPrice finds the contract price for team1 winning: an outcome
// named after the team when the market lists team outcomes, else the
// "Yes" side of a binary market whose question resolves on team1.
func h2hPrice(entries []OutcomeEntry, team1 string, yesIsTeam1 bool) (float64, bool) {
	for _, en := range entries {
		// Yes/No labels go through the binary path below; "No" would
		// otherwise containment-match any team name embedding it.
		if strings.EqualFold(en.Name, "yes") || strings.EqualFold(en.Name, "no") {
			continue
		}
		if NamesMatch(en.Name, team1) {
			return en.Price, true
		}
	}
	if yesIsTeam1 && isYesNo(entries) {
		return yesPrice(entries)
	}
	return 0, false
}

// findGameEvent locates the sportsbook event whose declared teams are
// the two given competitors, in either home/away order.
func findGameEvent(quotes []oddsfeed.Event, team1, team2 string, match func(a, b string) bool) *oddsfeed.Event {
	for i := range quotes {
		ev := &quotes[i]
		if (match(ev.HomeTeam, team1) && match(ev.AwayTeam, team2)) ||
			(match(ev.HomeTeam, team2) && match(ev.AwayTeam, team1)) {
			return ev
		}
	}
	return nil
}

// probsDisagree applies the sanity filter: when the two venues price
// the same outcome on opposite sides of even money by a wide margin,
// one of them is about a different question (usually a name collision)
// and the pairing is discarded rather than reported as huge EV.
func probsDisagree(contractPrice float64, quote *BookQuote) bool {
	pmPct := contractPrice * 100
	bookPct := 100 / quote.DecimalOdds
	return (pmPct < 45 && bookPct > 55) || (pmPct > 55 && bookPct < 45)
}

// MatchGames runs the head-to-head strategy over one sport's contracts
// and quotes.
func (e *Engine) MatchGames(events []gamma.Event, quotes []oddsfeed.Event, ctx Context) []Opportunity {
	var out []Opportunity
	for i := range events {
		ev := &events[i]
		if ev.Closed {
			continue
		}
		for j := range ev.Markets {
			m := &ev.Markets[j]
			if m.Closed || !m.Active {
				continue
			}
			if !isMoneylineQuestion(m.Question) {
				continue
			}

			team1, team2, fromQuestion := questionTeams(m.Question)
			if !fromQuestion {
				var ok bool
				team1, team2, ok = titleTeams(ev.Title)
				if !ok {
					continue
				}
			}

			entries := ParseOutcomes(m)
			price, ok := h2hPrice(entries, team1, fromQuestion)
			if !ok || !usablePrice(price) {
				continue
			}

			var quote *BookQuote
			if bookEv := findGameEvent(quotes, team1, team2, NamesMatch); bookEv != nil {
				quote = e.sel.BestQuote(bookEv, team1, oddsfeed.MarketH2H)
			}
			if quote == nil && !e.includeUnmatched {
				continue
			}
			if quote != nil && probsDisagree(price, quote) {
				continue
			}

			matchup := team1 + " vs " + team2
			opp := e.emit(ctx, ev, m, matchup, team1, marketEventTime(ev, m), price, quote, MarketTypeGame)
			if opp != nil {
				out = append(out, *opp)
			}
		}
	}

	out = Dedupe(out)
	SortByEventTime(out)
	return out
}
