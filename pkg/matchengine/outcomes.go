package matchengine

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/edgewire/edgewire/pkg/polymarket/gamma"
)

// OutcomeEntry is one parsed (name, price) pair from a contract's
// serialized outcome arrays. TokenID is populated when the token array
// is present and parallel.
type OutcomeEntry struct {
	Name    string
	Price   float64
	TokenID string
}

// ParseOutcomes decodes a market's serialized outcome, price, and
// token arrays into typed entries. The venue serializes these as
// JSON-ish strings that sometimes use single quotes; decoding tries
// strict JSON first and falls back to a naive comma split. A malformed
// price parses to 0, which downstream logic treats as "no usable
// price". Never fails: worst case is an empty slice.
func ParseOutcomes(m *gamma.Market) []OutcomeEntry {
	names := parseStringArray(m.OutcomesRaw)
	if len(names) == 0 {
		return nil
	}
	prices := parseStringArray(m.OutcomePricesRaw)
	tokens := parseStringArray(m.ClobTokenIDsRaw)

	entries := make([]OutcomeEntry, len(names))
	for i, name := range names {
		entries[i].Name = name
		if i < len(prices) {
			if p, err := strconv.ParseFloat(strings.TrimSpace(prices[i]), 64); err == nil {
				entries[i].Price = p
			}
		}
		if i < len(tokens) {
			entries[i].TokenID = tokens[i]
		}
	}
	return entries
}

// parseStringArray decodes a serialized array of strings. Accepts
// strict JSON, JSON with single quotes, and as a last resort a comma
// split with surrounding-quote stripping.
func parseStringArray(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return out
	}
	if err := json.Unmarshal([]byte(strings.ReplaceAll(raw, "'", `"`)), &out); err == nil {
		return out
	}

	// Naive fallback: strip brackets, split on commas, trim quotes.
	raw = strings.Trim(raw, "[]")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out = make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `"'`)
		out = append(out, p)
	}
	return out
}
