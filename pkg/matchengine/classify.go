package matchengine

import (
	"strings"
	"time"
)

// Classification is heuristic keyword matching over free text. Each
// classifier is an ordered list of (predicate, result) rules evaluated
// top to bottom; the first hit wins, so more specific rules (conference,
// division) sit above the generic ones they would also satisfy. All
// classifiers are total: malformed input lands in the other/all bucket.

type categoryRule struct {
	match  func(title string) bool
	result Category
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var categoryRules = []categoryRule{
	{func(t string) bool { return strings.Contains(t, "conference") && containsAny(t, "champion", "finals", "winner") }, CategoryConference},
	{func(t string) bool { return strings.Contains(t, "division") }, CategoryDivision},
	{func(t string) bool { return containsAny(t, "champion", "championship", "win the finals", "finals winner", "world series", "super bowl winner", "stanley cup") }, CategoryChampionship},
	{func(t string) bool { return strings.Contains(t, "mvp") || strings.Contains(t, "most valuable player") }, CategoryMVP},
	{func(t string) bool { return containsAny(t, "playoff", "postseason", "make the play") }, CategoryPlayoffs},
	{func(t string) bool { return containsAny(t, "award", "rookie of the year", "coach of the year", "defensive player of the year", "sixth man", "most improved", "cy young", "heisman") }, CategoryAwards},
	{func(t string) bool { return containsAny(t, "lead the league", "scoring title", "leader", "most points", "most goals", "most home runs") }, CategoryStatLeader},
	{func(t string) bool { return containsAny(t, "win total", "regular season wins", "wins this season") }, CategoryWinTotals},
	{func(t string) bool { return containsAny(t, " vs ", " vs. ", " beat ", " defeat ", "win against") }, CategoryGames},
}

// ClassifyCategory labels a market/event title.
func ClassifyCategory(title string) Category {
	t := strings.ToLower(title)
	for _, rule := range categoryRules {
		if rule.match(t) {
			return rule.result
		}
	}
	return CategoryOther
}

type marketTypeRule struct {
	match  func(q string) bool
	result MarketType
}

var marketTypeRules = []marketTypeRule{
	// Player/statistical questions first: they often also contain
	// over/under or team-name wording.
	{func(q string) bool {
		return containsAny(q, "points", "rebounds", "assists", "yards", "touchdowns", "strikeouts", "passing", "rushing", "receiving", "triple-double", "double-double", "record a", "score 2", "score 3", "score 4", "score 5")
	}, MarketTypePlayerProp},
	{func(q string) bool { return containsAny(q, "over/under", "o/u", "combined score", "total goals", "total score") }, MarketTypeTotal},
	{func(q string) bool {
		return containsAny(q, "champion", "championship", "mvp", "finals", "world series", "super bowl", "stanley cup", "award")
	}, MarketTypeFutures},
	{func(q string) bool { return containsAny(q, " beat ", " defeat ", "win against", " vs ", " vs. ") }, MarketTypeGame},
}

// ClassifyMarketType labels a sub-market question by structural shape.
func ClassifyMarketType(question string) MarketType {
	q := strings.ToLower(question)
	for _, rule := range marketTypeRules {
		if rule.match(q) {
			return rule.result
		}
	}
	return MarketTypeOther
}

// ClassifyTimeframe buckets a resolution date relative to now:
// past -> all, same calendar day -> today, through Sunday -> week,
// through end of month -> month, beyond -> futures. A zero (i.e.
// unparseable) date buckets to all.
func ClassifyTimeframe(resolution, now time.Time) Timeframe {
	if resolution.IsZero() {
		return TimeframeAll
	}
	resolution = resolution.In(now.Location())

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if resolution.Before(startOfDay) {
		return TimeframeAll
	}

	endOfDay := startOfDay.AddDate(0, 0, 1)
	if resolution.Before(endOfDay) {
		return TimeframeToday
	}

	// ISO week runs Monday through Sunday.
	daysToSunday := (7 - int(now.Weekday())) % 7
	endOfWeek := startOfDay.AddDate(0, 0, daysToSunday+1)
	if resolution.Before(endOfWeek) {
		return TimeframeWeek
	}

	endOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	if resolution.Before(endOfMonth) {
		return TimeframeMonth
	}

	return TimeframeFutures
}
