package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/gr-siqueira/sport-agent/pkg/content"
	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/sources"
)

const eventLayout = "Mon Jan 2 15:04 MST"

// Instruction is the text sent to the provider when no data source could answer
func Instruction(req Request) string {
	switch a := req.Args.(type) {
	case *UpcomingArgs:
		return fmt.Sprintf("List upcoming games for %s on %s. Include opponent, time, and TV channel.", list(a.Teams), a.Date)
	case *GameTimesArgs:
		return fmt.Sprintf("Convert these game times to %s timezone: %s", a.Timezone, a.Games)
	case *GamesArgs:
		return fmt.Sprintf("Provide TV channel or streaming service information for: %s", a.Games)
	case *ResultsArgs:
		return fmt.Sprintf("Provide scores and brief highlights for %s games in the last %d day(s).", list(a.Teams), a.LookbackDays)
	case *LeaguesArgs:
		if req.Kind == KindLiveScores {
			return fmt.Sprintf("List current in-progress games in %s with live scores.", list(a.Leagues))
		}
		return fmt.Sprintf("Provide current standings/rankings for %s.", list(a.Leagues))
	case *PlayersArgs:
		if req.Kind == KindPlayerStats {
			return fmt.Sprintf("Provide recent performance stats (last 5 games) for %s.", list(a.PlayerNames))
		}
		return fmt.Sprintf("Provide latest news and updates about %s.", list(a.PlayerNames))
	case *TeamsArgs:
		return fmt.Sprintf("Provide injury report and return-to-play timelines for %s.", list(a.Teams))
	}
	return fmt.Sprintf("Provide a short update for %s.", req.Kind)
}

// searchQuery synthesizes a web search query for the request
func searchQuery(req Request, sport domain.Sport) string {
	label := ""
	if sport != domain.SportOther {
		label = " " + sport.Label()
	}
	switch a := req.Args.(type) {
	case *UpcomingArgs:
		return fmt.Sprintf("%s%s next game schedule %s", list(a.Teams), label, a.Date)
	case *GameTimesArgs:
		return fmt.Sprintf("%s start time %s", a.Games, a.Timezone)
	case *GamesArgs:
		return fmt.Sprintf("%s TV channel streaming", a.Games)
	case *ResultsArgs:
		if a.LookbackDays > 1 {
			return fmt.Sprintf("%s%s results last %d days", list(a.Teams), label, a.LookbackDays)
		}
		return fmt.Sprintf("%s%s score last night", list(a.Teams), label)
	case *LeaguesArgs:
		if req.Kind == KindLiveScores {
			return fmt.Sprintf("%s live scores", list(a.Leagues))
		}
		return fmt.Sprintf("%s standings", list(a.Leagues))
	case *PlayersArgs:
		if req.Kind == KindPlayerStats {
			return fmt.Sprintf("%s%s stats last 5 games", list(a.PlayerNames), label)
		}
		return fmt.Sprintf("%s%s latest news", list(a.PlayerNames), label)
	case *TeamsArgs:
		return fmt.Sprintf("%s%s injury report", list(a.Teams), label)
	}
	return string(req.Kind)
}

// staticAnswer is the last resort text, always non-empty
func staticAnswer(req Request, limit int) string {
	topic := strings.ReplaceAll(string(req.Kind), "_", " ")
	subjects := "your selection"
	if req.Args != nil {
		if s := list(req.Args.subjects()); s != "" {
			subjects = s
		}
	}
	if res := content.Compact(fmt.Sprintf("No %s information is available right now for %s.", topic, subjects), limit); res != "" {
		return res
	}
	return "No information available."
}

func formatUpcoming(team string, events []sources.Event, date string, now time.Time) (string, error) {
	var day time.Time
	switch date {
	case "", "today", "upcoming", "next":
	case "tomorrow":
		day = now.UTC().AddDate(0, 0, 1)
	default:
		if d, err := time.Parse("2006-01-02", date); err == nil {
			day = d
		}
	}

	var parts []string
	for _, e := range events {
		if !day.IsZero() && e.Start.Format("2006-01-02") != day.Format("2006-01-02") {
			continue
		}
		s := fmt.Sprintf("%s vs %s, %s", e.HomeTeam, e.AwayTeam, e.Start.Format(eventLayout))
		if e.TVStation != "" {
			s += " on " + e.TVStation
		}
		parts = append(parts, s)
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no upcoming games for %s: %w", team, sources.ErrNoData)
	}
	return team + ": " + strings.Join(parts, ", then "), nil
}

func formatResults(team string, events []sources.Event, since time.Time) (string, error) {
	var parts []string
	for _, e := range events {
		if !e.Finished() || e.Start.Before(since) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d-%d %s (%s)", e.HomeTeam, *e.HomeScore, *e.AwayScore, e.AwayTeam, e.Start.Format("Jan 2")))
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no recent results for %s: %w", team, sources.ErrNoData)
	}
	return strings.Join(parts, ", "), nil
}

func formatStandings(league string, table []sources.Standing) string {
	parts := make([]string, 0, 5)
	for i, row := range table {
		if i == 5 {
			break
		}
		record := fmt.Sprintf("%d-%d", row.Win, row.Loss)
		if row.Draw > 0 || row.Points > 0 {
			record = fmt.Sprintf("%d pts", row.Points)
		}
		parts = append(parts, fmt.Sprintf("%d. %s %s", row.Rank, row.Team, record))
	}
	return league + " standings: " + strings.Join(parts, ", ")
}

func formatHeadlines(subject string, headlines []sources.Headline) string {
	parts := make([]string, 0, 2)
	for i, h := range headlines {
		if i == 2 {
			break
		}
		s := h.Title
		if h.Source != "" {
			s += " (" + h.Source + ")"
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return ""
	}
	return subject + ": " + strings.Join(parts, ". ")
}

func formatSearch(results []sources.SearchResult) string {
	parts := make([]string, 0, 3)
	for _, r := range results {
		if r.Snippet == "" {
			continue
		}
		parts = append(parts, r.Snippet)
		if len(parts) == 3 {
			break
		}
	}
	return strings.Join(parts, " ")
}

func list(values []string) string { return strings.Join(values, ", ") }
