package matchengine

import (
	"strings"

	"github.com/edgewire/edgewire/pkg/oddsfeed"
)

// BookQuote is the single most generous sportsbook quote found for an
// outcome across all bookmakers on an event.
type BookQuote struct {
	Bookmaker   string
	Price       float64 // American odds
	DecimalOdds float64
}

// QuoteSelector scans sportsbook events for the best quote on a named
// outcome. The matcher decides name equivalence (standard or soccer
// normalization).
type QuoteSelector struct {
	matcher func(a, b string) bool
}

// NewQuoteSelector builds a selector over the standard name matcher.
func NewQuoteSelector() *QuoteSelector {
	return &QuoteSelector{matcher: NamesMatch}
}

// NewSoccerQuoteSelector builds a selector over the soccer matcher.
func NewSoccerQuoteSelector() *QuoteSelector {
	return &QuoteSelector{matcher: NamesMatchSoccer}
}

// isDrawName reports whether a label denotes the draw outcome.
func isDrawName(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "draw" || s == "tie"
}

// BestQuote returns the highest-decimal-odds quote for outcomeName in
// the given market key across every bookmaker on the event, or nil
// when no bookmaker carries the outcome. Ties keep the first-seen
// bookmaker. "Home"/"Away" line labels are resolved against the
// event's declared teams before comparison; "Draw" is matched
// literally (accepting "tie").
func (s *QuoteSelector) BestQuote(ev *oddsfeed.Event, outcomeName, marketKey string) *BookQuote {
	wantDraw := isDrawName(outcomeName)

	var best *BookQuote
	for _, bm := range ev.Bookmakers {
		for _, market := range bm.Markets {
			if market.Key != marketKey {
				continue
			}
			for _, outcome := range market.Outcomes {
				name := outcome.Name
				switch strings.ToLower(strings.TrimSpace(name)) {
				case "home":
					name = ev.HomeTeam
				case "away":
					name = ev.AwayTeam
				}

				if wantDraw {
					if !isDrawName(outcome.Name) {
						continue
					}
				} else if isDrawName(outcome.Name) || !s.matcher(name, outcomeName) {
					continue
				}

				if outcome.Price == 0 {
					continue
				}
				dec := AmericanToDecimal(outcome.Price).InexactFloat64()
				if best == nil || dec > best.DecimalOdds {
					best = &BookQuote{
						Bookmaker:   bm.Title,
						Price:       outcome.Price,
						DecimalOdds: dec,
					}
				}
			}
		}
	}
	return best
}
