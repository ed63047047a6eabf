package matchengine

import (
	"strings"

	"github.com/edgewire/edgewire/pkg/oddsfeed"
	"github.com/edgewire/edgewire/pkg/polymarket/gamma"
)

// Soccer strategy: three-way match markets (team1 / draw / team2).
// Name matching runs through the soccer normalizer, which folds
// diacritics and club suffixes, since the venue and the books disagree
// about "FC" and accents far more than about North American team names.

// soccerCandidate is one priced side of a match market.
type soccerCandidate struct {
	outcome string
	price   float64
}

// drawQuestion flags "Will X vs Y end in a draw?" style questions.
func drawQuestion(q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(q, "end in a draw") || strings.Contains(q, "end in draw") ||
		strings.Contains(q, "be a draw")
}

// soccerCandidates extracts the priced sides of a match market. A
// market listing named outcomes yields one candidate per non-Yes/No
// outcome; a binary market yields the side its question resolves on
// (a named winner, or the draw).
func soccerCandidates(m *gamma.Market, entries []OutcomeEntry) []soccerCandidate {
	if !isYesNo(entries) {
		var cands []soccerCandidate
		for _, en := range entries {
			name := strings.TrimSpace(en.Name)
			if name == "" || strings.EqualFold(name, "yes") || strings.EqualFold(name, "no") {
				continue
			}
			cands = append(cands, soccerCandidate{outcome: name, price: en.Price})
		}
		return cands
	}

	price, ok := yesPrice(entries)
	if !ok {
		return nil
	}
	if drawQuestion(m.Question) {
		return []soccerCandidate{{outcome: "Draw", price: price}}
	}
	if team, _, ok := questionTeams(m.Question); ok {
		return []soccerCandidate{{outcome: team, price: price}}
	}
	if team, ok := winEntrant(m.Question); ok {
		return []soccerCandidate{{outcome: team, price: price}}
	}
	return nil
}

// MatchSoccer runs the three-way strategy over one league's contracts
// and quotes.
func (e *Engine) MatchSoccer(events []gamma.Event, quotes []oddsfeed.Event, ctx Context) []Opportunity {
	var out []Opportunity
	for i := range events {
		ev := &events[i]
		if ev.Closed {
			continue
		}

		team1, team2, ok := titleTeams(ev.Title)
		if !ok {
			continue
		}
		matchup := team1 + " vs " + team2
		bookEv := findGameEvent(quotes, team1, team2, NamesMatchSoccer)

		for j := range ev.Markets {
			m := &ev.Markets[j]
			if m.Closed || !m.Active {
				continue
			}

			entries := ParseOutcomes(m)
			for _, cand := range soccerCandidates(m, entries) {
				if !usablePrice(cand.price) {
					continue
				}

				var quote *BookQuote
				if bookEv != nil {
					quote = e.soccerSel.BestQuote(bookEv, cand.outcome, oddsfeed.MarketH2H3Way)
					if quote == nil {
						quote = e.soccerSel.BestQuote(bookEv, cand.outcome, oddsfeed.MarketH2H)
					}
				}
				if quote == nil && !e.includeUnmatched {
					continue
				}

				opp := e.emit(ctx, ev, m, matchup, cand.outcome, marketEventTime(ev, m), cand.price, quote, MarketTypeGame)
				if opp != nil {
					out = append(out, *opp)
				}
			}
		}
	}

	out = Dedupe(out)
	SortByEventTime(out)
	return out
}
