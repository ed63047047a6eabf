package matchengine

// Static alias tables, keyed by canonical full team name. The two data
// sources author names independently: the prediction market tends to
// use full club names while sportsbooks mix abbreviations, city-only
// references, and mascots. These mappings are plain data, built into
// an immutable lookup index once at process start.
var teamAliases = map[string][]string{
	// NBA
	"Atlanta Hawks":          {"atl", "hawks", "atlanta"},
	"Boston Celtics":         {"bos", "celtics", "boston"},
	"Brooklyn Nets":          {"bkn", "nets", "brooklyn"},
	"Charlotte Hornets":      {"cha", "hornets", "charlotte"},
	"Chicago Bulls":          {"chi", "bulls", "chicago"},
	"Cleveland Cavaliers":    {"cle", "cavaliers", "cavs", "cleveland"},
	"Dallas Mavericks":       {"dal", "mavericks", "mavs", "dallas"},
	"Denver Nuggets":         {"den", "nuggets", "denver"},
	"Detroit Pistons":        {"det", "pistons", "detroit"},
	"Golden State Warriors":  {"gsw", "warriors", "golden state", "dubs"},
	"Houston Rockets":        {"hou", "rockets", "houston"},
	"Indiana Pacers":         {"ind", "pacers", "indiana"},
	"Los Angeles Clippers":   {"lac", "clippers", "la clippers"},
	"Los Angeles Lakers":     {"lal", "lakers", "la lakers"},
	"Memphis Grizzlies":      {"mem", "grizzlies", "memphis"},
	"Miami Heat":             {"mia", "heat", "miami"},
	"Milwaukee Bucks":        {"mil", "bucks", "milwaukee"},
	"Minnesota Timberwolves": {"min", "timberwolves", "minnesota"},
	"New Orleans Pelicans":   {"nop", "pelicans", "new orleans", "pels"},
	"New York Knicks":        {"nyk", "knicks", "new york"},
	"Oklahoma City Thunder":  {"okc", "thunder", "oklahoma city"},
	"Orlando Magic":          {"orl", "magic", "orlando"},
	"Philadelphia 76ers":     {"phi", "76ers", "sixers", "philadelphia"},
	"Phoenix Suns":           {"phx", "suns", "phoenix"},
	"Portland Trail Blazers": {"por", "trail blazers", "blazers", "portland"},
	"Sacramento Kings":       {"sac", "kings", "sacramento"},
	"San Antonio Spurs":      {"sas", "spurs", "san antonio"},
	"Toronto Raptors":        {"tor", "raptors", "toronto"},
	"Utah Jazz":              {"uta", "jazz", "utah"},
	"Washington Wizards":     {"was", "wizards", "wiz"},

	// NFL
	"Arizona Cardinals":     {"ari", "cardinals", "arizona"},
	"Atlanta Falcons":       {"falcons"},
	"Baltimore Ravens":      {"bal", "ravens", "baltimore"},
	"Buffalo Bills":         {"buf", "bills", "buffalo"},
	"Carolina Panthers":     {"car", "panthers", "carolina"},
	"Chicago Bears":         {"bears"},
	"Cincinnati Bengals":    {"cin", "bengals", "cincinnati"},
	"Cleveland Browns":      {"browns"},
	"Dallas Cowboys":        {"cowboys"},
	"Denver Broncos":        {"broncos"},
	"Detroit Lions":         {"lions"},
	"Green Bay Packers":     {"gb", "packers", "green bay"},
	"Houston Texans":        {"texans"},
	"Indianapolis Colts":    {"colts", "indianapolis"},
	"Jacksonville Jaguars":  {"jax", "jaguars", "jags", "jacksonville"},
	"Kansas City Chiefs":    {"kc", "chiefs", "kansas city"},
	"Las Vegas Raiders":     {"lv", "raiders", "las vegas"},
	"Los Angeles Chargers":  {"chargers", "la chargers"},
	"Los Angeles Rams":      {"rams", "la rams"},
	"Miami Dolphins":        {"dolphins", "fins"},
	"Minnesota Vikings":     {"vikings"},
	"New England Patriots":  {"ne", "patriots", "pats", "new england"},
	"New Orleans Saints":    {"no", "saints"},
	"New York Giants":       {"nyg", "giants"},
	"New York Jets":         {"nyj", "jets"},
	"Philadelphia Eagles":   {"eagles"},
	"Pittsburgh Steelers":   {"pit", "steelers", "pittsburgh"},
	"San Francisco 49ers":   {"sf", "49ers", "niners", "san francisco"},
	"Seattle Seahawks":      {"sea", "seahawks", "seattle"},
	"Tampa Bay Buccaneers":  {"tb", "buccaneers", "bucs", "tampa bay", "tampa"},
	"Tennessee Titans":      {"ten", "titans", "tennessee"},
	"Washington Commanders": {"wsh", "commanders"},

	// MLB
	"Arizona Diamondbacks":  {"diamondbacks", "dbacks"},
	"Atlanta Braves":        {"braves"},
	"Baltimore Orioles":     {"orioles", "os"},
	"Boston Red Sox":        {"red sox"},
	"Chicago Cubs":          {"cubs"},
	"Chicago White Sox":     {"white sox"},
	"Cincinnati Reds":       {"reds"},
	"Cleveland Guardians":   {"guardians"},
	"Colorado Rockies":      {"col", "rockies", "colorado"},
	"Detroit Tigers":        {"tigers"},
	"Houston Astros":        {"astros"},
	"Kansas City Royals":    {"royals"},
	"Los Angeles Angels":    {"laa", "angels"},
	"Los Angeles Dodgers":   {"lad", "dodgers", "la dodgers"},
	"Miami Marlins":         {"marlins"},
	"Milwaukee Brewers":     {"brewers"},
	"Minnesota Twins":       {"twins"},
	"New York Mets":         {"nym", "mets"},
	"New York Yankees":      {"nyy", "yankees", "yanks"},
	"Oakland Athletics":     {"oak", "athletics", "as", "oakland"},
	"Philadelphia Phillies": {"phillies"},
	"Pittsburgh Pirates":    {"pirates"},
	"San Diego Padres":      {"sd", "padres", "san diego"},
	"San Francisco Giants":  {"sf giants"},
	"Seattle Mariners":      {"mariners"},
	"St. Louis Cardinals":   {"stl", "st louis"},
	"Tampa Bay Rays":        {"rays"},
	"Texas Rangers":         {"tex", "texas"},
	"Toronto Blue Jays":     {"blue jays", "jays"},
	"Washington Nationals":  {"nationals", "nats"},

	// NHL
	"Anaheim Ducks":         {"ana", "ducks", "anaheim"},
	"Boston Bruins":         {"bruins"},
	"Buffalo Sabres":        {"sabres"},
	"Calgary Flames":        {"cgy", "flames", "calgary"},
	"Carolina Hurricanes":   {"hurricanes", "canes"},
	"Chicago Blackhawks":    {"blackhawks"},
	"Colorado Avalanche":    {"avalanche", "avs"},
	"Columbus Blue Jackets": {"cbj", "blue jackets", "columbus"},
	"Dallas Stars":          {"stars"},
	"Detroit Red Wings":     {"red wings", "wings"},
	"Edmonton Oilers":       {"edm", "oilers", "edmonton"},
	"Florida Panthers":      {"fla", "florida"},
	"Los Angeles Kings":     {"lak", "la kings"},
	"Minnesota Wild":        {"wild"},
	"Montreal Canadiens":    {"mtl", "canadiens", "habs", "montreal"},
	"Nashville Predators":   {"nsh", "predators", "preds", "nashville"},
	"New Jersey Devils":     {"njd", "devils", "new jersey"},
	"New York Islanders":    {"nyi", "islanders", "isles"},
	"New York Rangers":      {"nyr"},
	"Ottawa Senators":       {"ott", "senators", "sens", "ottawa"},
	"Philadelphia Flyers":   {"flyers"},
	"Pittsburgh Penguins":   {"penguins", "pens"},
	"San Jose Sharks":       {"sjs", "sharks", "san jose"},
	"Seattle Kraken":        {"kraken"},
	"St. Louis Blues":       {"blues"},
	"Tampa Bay Lightning":   {"lightning", "bolts"},
	"Toronto Maple Leafs":   {"maple leafs", "leafs"},
	"Utah Hockey Club":      {"utah hc"},
	"Vancouver Canucks":     {"van", "canucks", "vancouver"},
	"Vegas Golden Knights":  {"vgk", "golden knights", "vegas"},
	"Washington Capitals":   {"capitals", "caps"},
	"Winnipeg Jets":         {"wpg", "winnipeg"},

	// Soccer. Club names come through the soccer normalizer, so these
	// entries are stored without fc/cf tokens or accents.
	"Arsenal":                  {"ars", "gunners"},
	"Aston Villa":              {"avl", "villa"},
	"Bournemouth":              {"afc bournemouth", "cherries"},
	"Brentford":                {"bre"},
	"Brighton and Hove Albion": {"brighton", "bha"},
	"Chelsea":                  {"che"},
	"Crystal Palace":           {"cry", "palace"},
	"Everton":                  {"eve", "toffees"},
	"Fulham":                   {"ful"},
	"Ipswich Town":             {"ips", "ipswich"},
	"Leicester City":           {"lei", "leicester"},
	"Liverpool":                {"liv"},
	"Manchester City":          {"mci", "man city"},
	"Manchester United":        {"mun", "man united", "man utd"},
	"Newcastle United":         {"new", "newcastle", "magpies"},
	"Nottingham Forest":        {"nfo", "forest"},
	"Southampton":              {"sou", "soton"},
	"Tottenham Hotspur":        {"tot", "tottenham"},
	"West Ham United":          {"whu", "west ham"},
	"Wolverhampton Wanderers":  {"wol", "wolves"},

	"Atletico Madrid":     {"atleti", "atletico"},
	"Barcelona":           {"bar", "barca"},
	"Real Madrid":         {"rma", "madrid"},
	"Sevilla":             {"sev"},
	"Real Sociedad":       {"la real"},
	"Athletic Bilbao":     {"athletic club"},
	"Bayern Munich":       {"bayern", "fcb"},
	"Borussia Dortmund":   {"bvb", "dortmund"},
	"RB Leipzig":          {"leipzig"},
	"Bayer Leverkusen":    {"leverkusen"},
	"Juventus":            {"juve"},
	"Inter Milan":         {"inter", "internazionale"},
	"AC Milan":            {"milan"},
	"Napoli":              {"ssc napoli"},
	"AS Roma":             {"roma"},
	"Paris Saint-Germain": {"psg", "paris sg", "paris saint germain"},
	"Olympique Marseille": {"marseille", "om"},
	"Olympique Lyonnais":  {"lyon", "ol"},
}

// aliasIndex maps every normalized alias (and every normalized
// canonical name) to its normalized canonical form. Built once; never
// mutated afterwards.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]string {
	idx := make(map[string]string, len(teamAliases)*4)
	for canonical, aliases := range teamAliases {
		nc := Normalize(canonical)
		idx[nc] = nc
		for _, alias := range aliases {
			idx[Normalize(alias)] = nc
		}
	}
	return idx
}
