package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
)

// ErrNoData is returned when a source has nothing for the query
var ErrNoData = errors.New("no data")

// ErrUnknownLeague is returned for leagues without a known TheSportsDB id
var ErrUnknownLeague = errors.New("unknown league")

// Event is a scheduled or finished game
type Event struct {
	ID        string
	League    string
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
	Start     time.Time
	Venue     string
	TVStation string
	Status    string
}

// Finished reports whether both scores are known
func (e Event) Finished() bool { return e.HomeScore != nil && e.AwayScore != nil }

// Standing is a row of a league table
type Standing struct {
	Rank   int
	Team   string
	Played int
	Win    int
	Draw   int
	Loss   int
	Points int
}

// Team is a TheSportsDB team record
type Team struct {
	ID     string
	Name   string
	Sport  string
	League string
}

// leagueIDs maps lowercase league names and aliases to TheSportsDB league ids
var leagueIDs = map[string]string{
	"nba": "4387", "national basketball association": "4387",
	"nfl": "4391", "national football league": "4391",
	"mlb": "4424", "major league baseball": "4424",
	"nhl": "4380", "national hockey league": "4380",
	"epl": "4328", "premier league": "4328", "english premier league": "4328",
	"la liga": "4335", "laliga": "4335",
	"serie a": "4332", "bundesliga": "4331", "ligue 1": "4334",
	"mls": "4346", "major league soccer": "4346",
	"f1": "4370", "formula 1": "4370", "formula one": "4370",
	"champions league": "4480", "uefa champions league": "4480",
}

// sportNames maps sport buckets to TheSportsDB strSport values
var sportNames = map[domain.Sport]string{
	domain.SportBasketball:       "Basketball",
	domain.SportAmericanFootball: "American Football",
	domain.SportFootball:         "Soccer",
	domain.SportBaseball:         "Baseball",
	domain.SportHockey:           "Ice Hockey",
	domain.SportMotorRacing:      "Motorsport",
	domain.SportTennis:           "Tennis",
}

// SportsDB is a client of TheSportsDB v1 json api
type SportsDB struct {
	client *resty.Client
	teams  *expirable.LRU[string, Team]
}

// SportsDBParams configures SportsDB
type SportsDBParams struct {
	Endpoint string // e.g. https://www.thesportsdb.com/api/v1/json
	APIKey   string
	Timeout  time.Duration
}

// NewSportsDB makes a client, team lookups are cached for a day
func NewSportsDB(params SportsDBParams) *SportsDB {
	if params.Timeout <= 0 {
		params.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(params.Endpoint, "/")+"/"+params.APIKey).
		SetTimeout(params.Timeout).
		SetHeader("Accept", "application/json")
	return &SportsDB{client: client, teams: expirable.NewLRU[string, Team](512, nil, 24*time.Hour)}
}

// FindTeam looks a team up by name, preferring a team of the given sport
func (s *SportsDB) FindTeam(ctx context.Context, name string, sport domain.Sport) (Team, error) {
	key := strings.ToLower(strings.TrimSpace(name)) + "|" + string(sport)
	if team, ok := s.teams.Get(key); ok {
		return team, nil
	}

	var resp struct {
		Teams []struct {
			ID     string `json:"idTeam"`
			Name   string `json:"strTeam"`
			Sport  string `json:"strSport"`
			League string `json:"strLeague"`
		} `json:"teams"`
	}
	if err := s.get(ctx, "/searchteams.php", map[string]string{"t": name}, &resp); err != nil {
		return Team{}, err
	}
	if len(resp.Teams) == 0 {
		return Team{}, fmt.Errorf("team %q: %w", name, ErrNoData)
	}

	pick := resp.Teams[0]
	if want, ok := sportNames[sport]; ok {
		for _, t := range resp.Teams {
			if strings.EqualFold(t.Sport, want) {
				pick = t
				break
			}
		}
	}
	team := Team{ID: pick.ID, Name: pick.Name, Sport: pick.Sport, League: pick.League}
	s.teams.Add(key, team)
	return team, nil
}

// NextEvents returns upcoming events of the team, soonest first
func (s *SportsDB) NextEvents(ctx context.Context, team string, sport domain.Sport) ([]Event, error) {
	t, err := s.FindTeam(ctx, team, sport)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Events []sportsDBEvent `json:"events"`
	}
	if err := s.get(ctx, "/eventsnext.php", map[string]string{"id": t.ID}, &resp); err != nil {
		return nil, err
	}
	return convertEvents(resp.Events, false), nil
}

// LastEvents returns finished events of the team, most recent first
func (s *SportsDB) LastEvents(ctx context.Context, team string, sport domain.Sport) ([]Event, error) {
	t, err := s.FindTeam(ctx, team, sport)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Results []sportsDBEvent `json:"results"`
	}
	if err := s.get(ctx, "/eventslast.php", map[string]string{"id": t.ID}, &resp); err != nil {
		return nil, err
	}
	return convertEvents(resp.Results, true), nil
}

// Standings returns the current table of a league, ordered by rank
func (s *SportsDB) Standings(ctx context.Context, league string) ([]Standing, error) {
	id, ok := leagueIDs[strings.ToLower(strings.TrimSpace(league))]
	if !ok {
		return nil, fmt.Errorf("league %q: %w", league, ErrUnknownLeague)
	}
	var resp struct {
		Table []struct {
			Rank   string `json:"intRank"`
			Team   string `json:"strTeam"`
			Played string `json:"intPlayed"`
			Win    string `json:"intWin"`
			Draw   string `json:"intDraw"`
			Loss   string `json:"intLoss"`
			Points string `json:"intPoints"`
		} `json:"table"`
	}
	if err := s.get(ctx, "/lookuptable.php", map[string]string{"l": id}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Table) == 0 {
		return nil, fmt.Errorf("standings %q: %w", league, ErrNoData)
	}

	res := make([]Standing, 0, len(resp.Table))
	for _, row := range resp.Table {
		res = append(res, Standing{
			Rank: atoi(row.Rank), Team: row.Team, Played: atoi(row.Played),
			Win: atoi(row.Win), Draw: atoi(row.Draw), Loss: atoi(row.Loss), Points: atoi(row.Points),
		})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Rank < res[j].Rank })
	return res, nil
}

func (s *SportsDB) get(ctx context.Context, path string, params map[string]string, result any) error {
	resp, err := s.client.R().SetContext(ctx).SetQueryParams(params).Get(path)
	if err != nil {
		return fmt.Errorf("sportsdb %s: %w", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("sportsdb %s: unexpected status %d", path, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("sportsdb %s: decode: %w", path, err)
	}
	return nil
}

type sportsDBEvent struct {
	ID        string  `json:"idEvent"`
	League    string  `json:"strLeague"`
	HomeTeam  string  `json:"strHomeTeam"`
	AwayTeam  string  `json:"strAwayTeam"`
	HomeScore *string `json:"intHomeScore"`
	AwayScore *string `json:"intAwayScore"`
	Timestamp string  `json:"strTimestamp"`
	Date      string  `json:"dateEvent"`
	Time      string  `json:"strTime"`
	Venue     string  `json:"strVenue"`
	TVStation string  `json:"strTVStation"`
	Status    string  `json:"strStatus"`
}

func convertEvents(events []sportsDBEvent, recentFirst bool) []Event {
	res := make([]Event, 0, len(events))
	for _, e := range events {
		res = append(res, Event{
			ID: e.ID, League: e.League, HomeTeam: e.HomeTeam, AwayTeam: e.AwayTeam,
			HomeScore: score(e.HomeScore), AwayScore: score(e.AwayScore),
			Start: eventTime(e), Venue: e.Venue, TVStation: e.TVStation, Status: e.Status,
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		if recentFirst {
			return res[i].Start.After(res[j].Start)
		}
		return res[i].Start.Before(res[j].Start)
	})
	return res
}

// eventTime parses the UTC timestamp, falling back to date and time fields
func eventTime(e sportsDBEvent) time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, e.Timestamp); err == nil {
			return t.UTC()
		}
	}
	if t, err := time.Parse("2006-01-02 15:04:05", e.Date+" "+e.Time); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", e.Date); err == nil {
		return t.UTC()
	}
	lgr.Printf("[DEBUG] sportsdb event %s has no parsable time", e.ID)
	return time.Time{}
}

func score(s *string) *int {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &v
}

func atoi(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}
