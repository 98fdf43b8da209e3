package domain

import (
	"strings"
	"unicode"
)

// Sport is a classification bucket for teams, players and leagues
type Sport string

// enum of sports, SportOther is the default bucket
const (
	SportBasketball       Sport = "basketball"
	SportAmericanFootball Sport = "american_football"
	SportFootball         Sport = "football"
	SportBaseball         Sport = "baseball"
	SportHockey           Sport = "hockey"
	SportMotorRacing      Sport = "motor_racing"
	SportTennis           Sport = "tennis"
	SportOther            Sport = "other"
)

// SportOrder is the fixed order sports are checked in and presented in
var SportOrder = []Sport{
	SportBasketball, SportAmericanFootball, SportFootball, SportBaseball,
	SportHockey, SportMotorRacing, SportTennis, SportOther,
}

var sportKeywords = map[Sport][]string{
	SportBasketball: {"nba", "wnba", "euroleague", "basketball", "ncaa basketball", "lakers", "celtics", "warriors",
		"bulls", "knicks", "heat", "nets", "spurs", "mavericks", "nuggets", "suns", "bucks", "76ers", "sixers",
		"clippers", "rockets", "thunder", "cavaliers", "raptors", "grizzlies", "pelicans", "timberwolves",
		"hawks", "hornets", "magic", "pistons", "pacers", "wizards", "trail blazers", "lebron", "lebron james",
		"stephen curry", "kevin durant", "giannis", "jokic", "doncic", "wembanyama"},
	SportAmericanFootball: {"nfl", "american football", "ncaa football", "super bowl", "chiefs", "patriots",
		"cowboys", "eagles", "packers", "49ers", "steelers", "ravens", "bills", "broncos", "seahawks",
		"dolphins", "bengals", "vikings", "lions", "commanders", "mahomes", "patrick mahomes", "travis kelce",
		"josh allen", "lamar jackson"},
	SportFootball: {"football", "soccer", "premier league", "epl", "la liga", "laliga", "serie a", "bundesliga",
		"ligue 1", "mls", "champions league", "uefa", "fifa", "world cup", "real madrid", "barcelona",
		"manchester united", "manchester city", "arsenal", "chelsea", "liverpool", "tottenham", "juventus",
		"ac milan", "inter milan", "bayern", "bayern munich", "borussia dortmund", "psg", "paris saint germain",
		"atletico madrid", "inter miami", "messi", "lionel messi", "ronaldo", "cristiano ronaldo", "mbappe",
		"kylian mbappe", "haaland", "erling haaland"},
	SportBaseball: {"mlb", "baseball", "world series", "yankees", "dodgers", "red sox", "mets", "cubs", "astros",
		"braves", "phillies", "padres", "cardinals", "blue jays", "mariners", "orioles", "guardians",
		"shohei ohtani", "ohtani", "aaron judge"},
	SportHockey: {"nhl", "hockey", "ice hockey", "stanley cup", "maple leafs", "bruins", "canadiens", "oilers",
		"penguins", "blackhawks", "red wings", "flyers", "avalanche", "golden knights", "lightning",
		"connor mcdavid", "mcdavid", "sidney crosby"},
	SportMotorRacing: {"f1", "formula 1", "formula one", "nascar", "indycar", "motogp", "grand prix",
		"motor racing", "motorsport", "ferrari", "red bull racing", "mclaren", "mercedes amg", "verstappen",
		"max verstappen", "lewis hamilton", "hamilton", "leclerc", "charles leclerc", "lando norris", "norris"},
	SportTennis: {"tennis", "atp", "wta", "wimbledon", "roland garros", "french open", "us open",
		"australian open", "davis cup", "djokovic", "novak djokovic", "nadal", "rafael nadal", "alcaraz",
		"carlos alcaraz", "sinner", "jannik sinner", "federer", "swiatek", "iga swiatek", "sabalenka",
		"aryna sabalenka", "coco gauff"},
}

// ClassifySport maps a team, player or league name to a sport bucket by keyword membership.
// The function is total: unmatched names land in SportOther.
func ClassifySport(name string) Sport {
	norm := " " + normalizeName(name) + " "
	if strings.TrimSpace(norm) == "" {
		return SportOther
	}
	for _, sport := range SportOrder {
		for _, kw := range sportKeywords[sport] {
			if strings.Contains(norm, " "+kw+" ") {
				return sport
			}
		}
	}
	return SportOther
}

// Title returns the section heading for a sport
func (s Sport) Title() string {
	switch s {
	case SportBasketball:
		return "BASKETBALL"
	case SportAmericanFootball:
		return "AMERICAN FOOTBALL"
	case SportFootball:
		return "FOOTBALL"
	case SportBaseball:
		return "BASEBALL"
	case SportHockey:
		return "HOCKEY"
	case SportMotorRacing:
		return "MOTOR RACING"
	case SportTennis:
		return "TENNIS"
	default:
		return "MORE SPORTS"
	}
}

// Label returns a human readable sport name used in search queries
func (s Sport) Label() string {
	switch s {
	case SportOther:
		return "sports"
	case SportAmericanFootball:
		return "NFL football"
	case SportMotorRacing:
		return "motor racing"
	default:
		return string(s)
	}
}

// normalizeName lowercases and replaces punctuation with spaces
func normalizeName(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}
