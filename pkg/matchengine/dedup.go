package matchengine

import (
	"sort"
	"strings"
)

// dedupKey identifies one real-world matchup+outcome regardless of
// which sub-market or bookmaker pass produced the candidate.
func dedupKey(o *Opportunity) string {
	return strings.ToLower(o.Matchup) + "|" + strings.ToLower(o.Outcome)
}

// evPct unwraps the optional EV%, with unmatched records sorting below
// any real value.
func evPct(o *Opportunity) float64 {
	if o.EVPercent == nil {
		return -1e18
	}
	return *o.EVPercent
}

// Dedupe collapses candidates that refer to the same matchup+outcome.
// For each key it keeps the earliest-timed candidate; on equal times
// the one with the higher EV% survives. Input order is otherwise
// preserved.
func Dedupe(opps []Opportunity) []Opportunity {
	if len(opps) < 2 {
		return opps
	}

	best := make(map[string]int, len(opps))
	order := make([]string, 0, len(opps))

	for i := range opps {
		key := dedupKey(&opps[i])
		j, seen := best[key]
		if !seen {
			best[key] = i
			order = append(order, key)
			continue
		}
		kept := &opps[j]
		cand := &opps[i]
		switch {
		case cand.EventTime.Before(kept.EventTime):
			best[key] = i
		case cand.EventTime.Equal(kept.EventTime) && evPct(cand) > evPct(kept):
			best[key] = i
		}
	}

	out := make([]Opportunity, 0, len(order))
	for _, key := range order {
		out = append(out, opps[best[key]])
	}
	return out
}

// SortByEventTime orders ascending by event time, breaking ties by
// EV% descending. Zero event times (outrights with no scheduled game)
// sort last.
func SortByEventTime(opps []Opportunity) {
	sort.SliceStable(opps, func(i, j int) bool {
		a, b := &opps[i], &opps[j]
		switch {
		case a.EventTime.IsZero() != b.EventTime.IsZero():
			return !a.EventTime.IsZero()
		case !a.EventTime.Equal(b.EventTime):
			return a.EventTime.Before(b.EventTime)
		default:
			return evPct(a) > evPct(b)
		}
	})
}

// SortByEVPercent orders descending by EV%.
func SortByEVPercent(opps []Opportunity) {
	sort.SliceStable(opps, func(i, j int) bool {
		return evPct(&opps[i]) > evPct(&opps[j])
	})
}

// FilterPositiveEV keeps opportunities with positive EV against a real
// sportsbook line, plus any prediction-market-only records (no
// comparison available, so nothing to judge them against).
func FilterPositiveEV(opps []Opportunity) []Opportunity {
	out := opps[:0:0]
	for _, o := range opps {
		if !o.HasSportsbook() || (o.EVPercent != nil && *o.EVPercent > 0) {
			out = append(out, o)
		}
	}
	return out
}
