package matchengine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a free-text competitor name: lower-case,
// collapsed whitespace, punctuation stripped except '&'.
func Normalize(name string) string {
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '&':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// foldDiacritics strips combining marks (NFD, remove Mn, NFC).
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSoccer is the club-name variant of Normalize. Soccer names
// collide on "FC"/"CF" tokens, ampersands, and accented characters
// ("Atlético"), so it additionally folds diacritics, expands '&' to
// "and", and drops fc/cf tokens.
func NormalizeSoccer(name string) string {
	folded, _, err := transform.String(foldDiacritics, name)
	if err == nil {
		name = folded
	}
	name = strings.ReplaceAll(name, "&", " and ")
	name = Normalize(name)

	fields := strings.Fields(name)
	kept := fields[:0]
	for _, f := range fields {
		if f == "fc" || f == "cf" {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// NamesMatch reports whether two free-text names refer to the same
// competitor: equal after normalization, one contains the other, or
// either is a registered alias of the other. Matching is symmetric.
//
// Containment is intentionally permissive; short names can false-match
// ("bulls" vs "chicago bulls" is the desired behavior, but so matches
// any name embedding "bulls"). The alias tables carry the precision
// burden for abbreviations and city-only references.
func NamesMatch(a, b string) bool {
	return namesMatchNormalized(Normalize(a), Normalize(b))
}

// NamesMatchSoccer is NamesMatch under the soccer normalizer.
func NamesMatchSoccer(a, b string) bool {
	return namesMatchNormalized(NormalizeSoccer(a), NormalizeSoccer(b))
}

func namesMatchNormalized(na, nb string) bool {
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	return aliasesMatch(na, nb)
}

// aliasesMatch consults the static alias tables in both directions.
func aliasesMatch(na, nb string) bool {
	if canon, ok := aliasIndex[na]; ok && canon == canonicalOf(nb) {
		return true
	}
	if canon, ok := aliasIndex[nb]; ok && canon == canonicalOf(na) {
		return true
	}
	// Two different aliases of the same canonical name.
	ca, aOK := aliasIndex[na]
	cb, bOK := aliasIndex[nb]
	return aOK && bOK && ca == cb
}

// canonicalOf resolves a normalized name to its canonical table entry,
// or to itself when unlisted.
func canonicalOf(n string) string {
	if canon, ok := aliasIndex[n]; ok {
		return canon
	}
	return n
}
