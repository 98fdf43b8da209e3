package digest

import (
	"sort"
	"strings"
	"time"

	"github.com/gr-siqueira/sport-agent/pkg/content"
	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/graph"
)

// DefaultExcerptLimit is the length of raw outputs in the fallback layout
const DefaultExcerptLimit = 400

// Section is a part of the fallback layout filled from a single output slot
type Section struct {
	Title string
	Slot  string
}

// DefaultSections is the fallback layout for the built-in roles
var DefaultSections = []Section{
	{Title: "YESTERDAY'S RESULTS", Slot: "scores"},
	{Title: "TODAY'S SCHEDULE", Slot: "schedule"},
	{Title: "PLAYER NEWS", Slot: "player_news"},
}

// Synthesizer composes the final digest from node outputs without calling the provider.
// Tracked teams and players are grouped by sport, each sport section lists the first
// two sentences mentioning every entity. Without any matching sentence the digest falls
// back to a fixed layout of raw outputs.
type Synthesizer struct {
	slots        []string
	sections     []Section
	excerptLimit int
}

// NewSynthesizer makes a synthesizer reading outputs in the order of slots
func NewSynthesizer(slots []string, sections []Section, excerptLimit int) *Synthesizer {
	if excerptLimit <= 0 {
		excerptLimit = DefaultExcerptLimit
	}
	return &Synthesizer{slots: slots, sections: sections, excerptLimit: excerptLimit}
}

// Synthesize implements graph.Synthesizer
func (s *Synthesizer) Synthesize(in graph.Input, outputs map[string]string) string {
	header := "SPORTS DIGEST FOR " + strings.ToUpper(localDate(in))
	if body := s.bySport(in.Prefs, outputs); body != "" {
		return header + "\n\n" + body
	}
	return header + "\n\n" + s.fallback(outputs)
}

func (s *Synthesizer) bySport(prefs domain.Preferences, outputs map[string]string) string {
	var sentences []string
	for _, slot := range s.orderedSlots(outputs) {
		sentences = append(sentences, content.Sentences(outputs[slot])...)
	}
	if len(sentences) == 0 {
		return ""
	}

	groups := map[domain.Sport][]string{}
	for _, e := range prefs.Entities() {
		sport := domain.ClassifySport(e)
		groups[sport] = append(groups[sport], e)
	}

	var parts []string
	for _, sport := range domain.SportOrder {
		var lines []string
		used := map[string]bool{}
		for _, entity := range groups[sport] {
			matched := mentions(sentences, entity, used, 2)
			if len(matched) == 0 {
				continue
			}
			lines = append(lines, entity+": "+strings.Join(matched, " "))
		}
		if len(lines) > 0 {
			parts = append(parts, sport.Title()+"\n"+strings.Join(lines, "\n"))
		}
	}
	return strings.Join(parts, "\n\n")
}

func (s *Synthesizer) fallback(outputs map[string]string) string {
	parts := make([]string, 0, len(s.sections))
	for _, sec := range s.sections {
		text := content.Compact(outputs[sec.Slot], s.excerptLimit)
		if text == "" {
			text = "No updates available."
		}
		parts = append(parts, sec.Title+"\n"+text)
	}
	return strings.Join(parts, "\n\n")
}

// orderedSlots returns configured slots followed by any unknown slots present in outputs
func (s *Synthesizer) orderedSlots(outputs map[string]string) []string {
	res := make([]string, 0, len(outputs))
	known := map[string]bool{}
	for _, slot := range s.slots {
		known[slot] = true
		if _, ok := outputs[slot]; ok {
			res = append(res, slot)
		}
	}
	var extra []string
	for slot := range outputs {
		if !known[slot] {
			extra = append(extra, slot)
		}
	}
	sort.Strings(extra)
	return append(res, extra...)
}

// mentions returns up to n sentences containing entity, skipping sentences already used in the section
func mentions(sentences []string, entity string, used map[string]bool, n int) []string {
	needle := strings.ToLower(entity)
	var res []string
	for _, s := range sentences {
		if used[s] || !strings.Contains(strings.ToLower(s), needle) {
			continue
		}
		used[s] = true
		res = append(res, s)
		if len(res) == n {
			break
		}
	}
	return res
}

func localDate(in graph.Input) string {
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	if loc, err := time.LoadLocation(in.Prefs.Timezone); err == nil {
		date = date.In(loc)
	}
	return date.Format("Monday, January 2, 2006")
}
