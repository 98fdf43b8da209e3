package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// ErrUnknownTool is returned by Parse for names outside of the tool set
var ErrUnknownTool = errors.New("unknown tool")

// Kind is a tool name, the set is closed
type Kind string

// enum of all tool kinds
const (
	KindUpcomingGames Kind = "upcoming_games"
	KindGameTimes     Kind = "game_times"
	KindTVSchedule    Kind = "tv_schedule"
	KindRecentResults Kind = "recent_results"
	KindLiveScores    Kind = "live_scores"
	KindTeamStandings Kind = "team_standings"
	KindPlayerNews    Kind = "player_news"
	KindInjuryUpdates Kind = "injury_updates"
	KindPlayerStats   Kind = "player_stats"
)

// AllKinds lists every tool kind
var AllKinds = []Kind{
	KindUpcomingGames, KindGameTimes, KindTVSchedule,
	KindRecentResults, KindLiveScores, KindTeamStandings,
	KindPlayerNews, KindInjuryUpdates, KindPlayerStats,
}

var descriptions = map[Kind]string{
	KindUpcomingGames: "Get upcoming games for specified teams.",
	KindGameTimes:     "Convert game start times to the user's timezone.",
	KindTVSchedule:    "Get TV channel or streaming information for games.",
	KindRecentResults: "Get recent game results and scores for teams.",
	KindLiveScores:    "Get live scores for games in progress.",
	KindTeamStandings: "Get current league standings.",
	KindPlayerNews:    "Get latest news about specific players.",
	KindInjuryUpdates: "Get injury reports for teams.",
	KindPlayerStats:   "Get recent performance statistics for players.",
}

// Valid reports whether k is a known tool
func (k Kind) Valid() bool {
	_, ok := descriptions[k]
	return ok
}

// Description returns the tool description shown to the provider
func (k Kind) Description() string { return descriptions[k] }

// Args is the typed argument set of a tool, implemented only by this package
type Args interface {
	normalize()
	subjects() []string // team, league or player names used for sport detection
}

// UpcomingArgs are arguments of upcoming_games
type UpcomingArgs struct {
	Teams []string `json:"teams" jsonschema:"description=Team names"`
	Date  string   `json:"date,omitempty" jsonschema:"default=today,description=Day to look at"`
}

// GameTimesArgs are arguments of game_times
type GameTimesArgs struct {
	Games    string `json:"games" jsonschema:"description=Games to convert times for"`
	Timezone string `json:"timezone,omitempty" jsonschema:"default=America/Los_Angeles,description=IANA timezone"`
}

// GamesArgs are arguments of tv_schedule
type GamesArgs struct {
	Games string `json:"games" jsonschema:"description=Games to look up broadcast info for"`
}

// ResultsArgs are arguments of recent_results
type ResultsArgs struct {
	Teams        []string `json:"teams" jsonschema:"description=Team names"`
	LookbackDays int      `json:"lookback_days,omitempty" jsonschema:"default=1,minimum=1,maximum=14,description=How many days back to look"`
}

// LeaguesArgs are arguments of live_scores and team_standings
type LeaguesArgs struct {
	Leagues []string `json:"leagues" jsonschema:"description=League names such as NBA or Premier League"`
}

// PlayersArgs are arguments of player_news and player_stats
type PlayersArgs struct {
	PlayerNames []string `json:"player_names" jsonschema:"description=Player full names"`
}

// TeamsArgs are arguments of injury_updates
type TeamsArgs struct {
	Teams []string `json:"teams" jsonschema:"description=Team names"`
}

func (a *UpcomingArgs) normalize() {
	a.Teams = trimAll(a.Teams)
	if a.Date = strings.TrimSpace(a.Date); a.Date == "" {
		a.Date = "today"
	}
}

func (a *GameTimesArgs) normalize() {
	a.Games = strings.TrimSpace(a.Games)
	if a.Timezone = strings.TrimSpace(a.Timezone); a.Timezone == "" {
		a.Timezone = "America/Los_Angeles"
	}
}

func (a *GamesArgs) normalize() { a.Games = strings.TrimSpace(a.Games) }

func (a *ResultsArgs) normalize() {
	a.Teams = trimAll(a.Teams)
	a.LookbackDays = max(1, min(a.LookbackDays, 14))
}

func (a *LeaguesArgs) normalize() { a.Leagues = trimAll(a.Leagues) }
func (a *PlayersArgs) normalize() { a.PlayerNames = trimAll(a.PlayerNames) }
func (a *TeamsArgs) normalize()   { a.Teams = trimAll(a.Teams) }

func (a *UpcomingArgs) subjects() []string  { return a.Teams }
func (a *GameTimesArgs) subjects() []string { return []string{a.Games} }
func (a *GamesArgs) subjects() []string     { return []string{a.Games} }
func (a *ResultsArgs) subjects() []string   { return a.Teams }
func (a *LeaguesArgs) subjects() []string   { return a.Leagues }
func (a *PlayersArgs) subjects() []string   { return a.PlayerNames }
func (a *TeamsArgs) subjects() []string     { return a.Teams }

// newArgs returns an empty argument set for the kind
func newArgs(k Kind) Args {
	switch k {
	case KindUpcomingGames:
		return &UpcomingArgs{}
	case KindGameTimes:
		return &GameTimesArgs{}
	case KindTVSchedule:
		return &GamesArgs{}
	case KindRecentResults:
		return &ResultsArgs{}
	case KindLiveScores, KindTeamStandings:
		return &LeaguesArgs{}
	case KindPlayerNews, KindPlayerStats:
		return &PlayersArgs{}
	case KindInjuryUpdates:
		return &TeamsArgs{}
	default:
		return nil
	}
}

// Request is a tool invocation with typed arguments
type Request struct {
	Kind Kind
	Args Args
}

// Parse decodes raw json arguments of the named tool into its typed argument set.
// Empty raw arguments decode to defaults.
func Parse(name string, raw json.RawMessage) (Request, error) {
	kind := Kind(strings.TrimSpace(name))
	args := newArgs(kind)
	if args == nil {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, args); err != nil {
			return Request{}, fmt.Errorf("decode %s args: %w", kind, err)
		}
	}
	args.normalize()
	return Request{Kind: kind, Args: args}, nil
}

// Key is the canonical cache key of the request
func (r Request) Key() string {
	data, err := json.Marshal(r.Args)
	if err != nil {
		return string(r.Kind)
	}
	return string(r.Kind) + ":" + strings.ToLower(string(data))
}

// Definition describes a tool for the capability provider
type Definition struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
}

// Definitions renders tool definitions for the given kinds, unknown kinds are skipped
func Definitions(kinds []Kind) []Definition {
	reflector := jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true, Anonymous: true}
	res := make([]Definition, 0, len(kinds))
	for _, k := range kinds {
		args := newArgs(k)
		if args == nil {
			continue
		}
		schema := reflector.Reflect(args)
		schema.Version = ""
		res = append(res, Definition{Name: string(k), Description: k.Description(), Parameters: schema})
	}
	return res
}

func trimAll(values []string) []string {
	res := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}
