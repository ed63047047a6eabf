package matchengine

import (
	"testing"
	"time"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		title string
		want  Category
	}{
		{"NBA Championship Winner 2026", CategoryChampionship},
		{"World Series Winner", CategoryChampionship},
		{"Eastern Conference Champion", CategoryConference},
		{"NFC East Division Winner", CategoryDivision},
		{"NBA MVP 2025-26", CategoryMVP},
		{"Will the Heat make the playoffs?", CategoryPlayoffs},
		{"NBA Rookie of the Year", CategoryAwards},
		{"NBA scoring title leader", CategoryStatLeader},
		{"Celtics regular season wins", CategoryWinTotals},
		{"Lakers vs Celtics", CategoryGames},
		{"Will the Lakers beat the Celtics?", CategoryGames},
		{"something unrecognizable", CategoryOther},
	}

	for _, tt := range tests {
		if got := ClassifyCategory(tt.title); got != tt.want {
			t.Errorf("ClassifyCategory(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestClassifyMarketType(t *testing.T) {
	tests := []struct {
		question string
		want     MarketType
	}{
		{"Will the Lakers beat the Celtics?", MarketTypeGame},
		{"Will LeBron James score 30+ points?", MarketTypePlayerProp},
		{"Will the combined score exceed 220?", MarketTypeTotal},
		{"Will the Celtics win the championship?", MarketTypeFutures},
		{"Will it rain tomorrow?", MarketTypeOther},
	}

	for _, tt := range tests {
		if got := ClassifyMarketType(tt.question); got != tt.want {
			t.Errorf("ClassifyMarketType(%q) = %v, want %v", tt.question, got, tt.want)
		}
	}
}

func TestClassifyTimeframe(t *testing.T) {
	// Wednesday, mid-month.
	now := time.Date(2026, time.January, 14, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		resolution time.Time
		want       Timeframe
	}{
		{"zero date", time.Time{}, TimeframeAll},
		{"yesterday", now.AddDate(0, 0, -1), TimeframeAll},
		{"later today", time.Date(2026, time.January, 14, 23, 0, 0, 0, time.UTC), TimeframeToday},
		{"this sunday", time.Date(2026, time.January, 18, 12, 0, 0, 0, time.UTC), TimeframeWeek},
		{"next monday", time.Date(2026, time.January, 19, 12, 0, 0, 0, time.UTC), TimeframeMonth},
		{"end of month", time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC), TimeframeMonth},
		{"next month", time.Date(2026, time.February, 2, 12, 0, 0, 0, time.UTC), TimeframeFutures},
		{"next season", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), TimeframeFutures},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTimeframe(tt.resolution, now); got != tt.want {
				t.Errorf("ClassifyTimeframe(%v) = %v, want %v", tt.resolution, got, tt.want)
			}
		})
	}
}

func TestClassifyTimeframeOnSunday(t *testing.T) {
	// On a Sunday the week bucket covers only the rest of that day.
	now := time.Date(2026, time.January, 18, 10, 0, 0, 0, time.UTC)

	if got := ClassifyTimeframe(time.Date(2026, time.January, 18, 20, 0, 0, 0, time.UTC), now); got != TimeframeToday {
		t.Errorf("same sunday = %v, want %v", got, TimeframeToday)
	}
	if got := ClassifyTimeframe(time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC), now); got != TimeframeMonth {
		t.Errorf("following tuesday = %v, want %v", got, TimeframeMonth)
	}
}
