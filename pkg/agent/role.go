package agent

import (
	"github.com/gr-siqueira/sport-agent/pkg/tools"
)

// Role configures a task node: its prompt, the tools it may use and the slot it writes
type Role struct {
	Name            string
	Slot            string
	Prompt          string // text/template with sprig functions, see promptData for fields
	SynthesisPrompt string
	Tools           []tools.Kind
}

// built-in roles of the digest graph
var (
	ScheduleRole = Role{
		Name: "schedule",
		Slot: "schedule",
		Prompt: `You are a sports schedule assistant.
Today is {{ .Date }}.
Find upcoming games for these teams: {{ join ", " .Teams }}.
User timezone: {{ .Timezone }}.
Use tools to get game schedules, times, and broadcast information.`,
		SynthesisPrompt: "Based on the schedule information, create a concise summary of today's and upcoming games.",
		Tools:           []tools.Kind{tools.KindUpcomingGames, tools.KindGameTimes, tools.KindTVSchedule},
	}

	ScoresRole = Role{
		Name: "scores",
		Slot: "scores",
		Prompt: `You are a sports scores analyst.
Get recent results for these teams: {{ join ", " .Teams }}.
Also check standings in these leagues: {{ join ", " .Leagues }}.
Use tools to get scores, live games, and standings.`,
		SynthesisPrompt: "Summarize recent scores, highlight key results, and mention current standings.",
		Tools:           []tools.Kind{tools.KindRecentResults, tools.KindLiveScores, tools.KindTeamStandings},
	}

	PlayerRole = Role{
		Name: "player",
		Slot: "player_news",
		Prompt: `You are a sports news reporter.
Get news and updates for these players: {{ .Players | join ", " | default "none" }}.
Also check injury reports for teams: {{ join ", " .Teams }}.
Use tools to gather player news, injury updates, and performance stats.`,
		SynthesisPrompt: "Summarize player news, injury updates, and notable performances.",
		Tools:           []tools.Kind{tools.KindPlayerNews, tools.KindInjuryUpdates, tools.KindPlayerStats},
	}
)

// DefaultRoles returns built-in roles in graph declaration order
func DefaultRoles() []Role {
	return []Role{ScheduleRole, ScoresRole, PlayerRole}
}

func (r Role) allows(kind tools.Kind) bool {
	for _, k := range r.Tools {
		if k == kind {
			return true
		}
	}
	return false
}
