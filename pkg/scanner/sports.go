package scanner

// SportConfig binds one sport's identifiers across the two venues: the
// Polymarket tag its events carry and the odds feed keys for its game
// and futures lines.
type SportConfig struct {
	// Key is the internal sport name ("basketball", "soccer", ...).
	Key string
	// League labels output records ("nba", "epl", ...).
	League string
	// GammaTag is the Polymarket events tag.
	GammaTag string
	// OddsKey is the odds feed sport key for game lines.
	OddsKey string
	// OddsMarkets are the market keys requested for game lines.
	OddsMarkets string
	// OutrightKeys are odds feed sport keys for futures fields.
	OutrightKeys []string
}

// DefaultSports covers the leagues both venues carry liquid markets
// for. Keyed by league.
var DefaultSports = map[string]SportConfig{
	"nba": {
		Key:         "basketball",
		League:      "nba",
		GammaTag:    "NBA",
		OddsKey:     "basketball_nba",
		OddsMarkets: "h2h",
		OutrightKeys: []string{
			"basketball_nba_championship_winner",
		},
	},
	"nfl": {
		Key:         "football",
		League:      "nfl",
		GammaTag:    "NFL",
		OddsKey:     "americanfootball_nfl",
		OddsMarkets: "h2h",
		OutrightKeys: []string{
			"americanfootball_nfl_super_bowl_winner",
		},
	},
	"mlb": {
		Key:         "baseball",
		League:      "mlb",
		GammaTag:    "MLB",
		OddsKey:     "baseball_mlb",
		OddsMarkets: "h2h",
		OutrightKeys: []string{
			"baseball_mlb_world_series_winner",
		},
	},
	"nhl": {
		Key:         "hockey",
		League:      "nhl",
		GammaTag:    "NHL",
		OddsKey:     "icehockey_nhl",
		OddsMarkets: "h2h",
		OutrightKeys: []string{
			"icehockey_nhl_championship_winner",
		},
	},
	"epl": {
		Key:         "soccer",
		League:      "epl",
		GammaTag:    "EPL",
		OddsKey:     "soccer_epl",
		OddsMarkets: "h2h,h2h_3_way",
	},
}

// SelectSports resolves league names against DefaultSports, keeping
// only known leagues. An empty request selects everything.
func SelectSports(leagues []string) []SportConfig {
	if len(leagues) == 0 {
		leagues = []string{"nba", "nfl", "mlb", "nhl", "epl"}
	}
	var out []SportConfig
	for _, l := range leagues {
		if sc, ok := DefaultSports[l]; ok {
			out = append(out, sc)
		}
	}
	return out
}
