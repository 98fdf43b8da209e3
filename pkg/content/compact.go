package content

import (
	"strings"
	"unicode"
)

// DefaultLimit is the compaction limit used when a non-positive limit is passed
const DefaultLimit = 200

// Compact collapses whitespace and, if the text is longer than limit runes, cuts it at the last
// word boundary not exceeding the limit and strips trailing punctuation left by the cut.
// The result never exceeds limit runes, never ends in a partial word and Compact(Compact(s)) == Compact(s).
func Compact(text string, limit int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	cleaned := strings.Join(strings.Fields(text), " ")
	runes := []rune(cleaned)
	if len(runes) <= limit {
		return cleaned
	}

	cut := limit
	if runes[limit] != ' ' {
		// step back to the last space inside the window, a word longer than the window is dropped
		cut = -1
		for i := limit - 1; i >= 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		if cut < 0 {
			return ""
		}
	}
	return strings.TrimRight(string(runes[:cut]), ",.;- ")
}

// Sentences splits text into trimmed sentences ending with '.', '!' or '?'.
// A trailing fragment without terminal punctuation is returned as the last sentence.
func Sentences(text string) []string {
	var res []string
	var sb strings.Builder
	runes := []rune(strings.Join(strings.Fields(text), " "))
	for i, r := range runes {
		sb.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// a terminator ends a sentence only before whitespace or at the end of text, keeps "3.5" and "U.S.A" intact
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(sb.String()); s != "" {
			res = append(res, s)
		}
		sb.Reset()
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		res = append(res, s)
	}
	return res
}
