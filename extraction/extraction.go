// Package extraction turns a free-text adverse-event report into the
// structured fields of a models.Report using deterministic rule tables.
// There is no learned model involved: every field is resolved by literal cue
// matching with a field-specific tie-break policy.
package extraction

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/medwatch-dev/medwatch/database/models"
	databasetypes "github.com/medwatch-dev/medwatch/database/types"
)

// Extract derives the structured fields from a report text. It is total over
// its input: absence of a match degrades to nil or "unknown", never to an
// error. ID and CreatedAt are left unset and get assigned by the store.
func Extract(text string) models.Report {
	return models.Report{
		Drug:          extractDrug(text),
		AdverseEvents: extractAdverseEvents(text),
		Severity:      extractSeverity(text),
		Outcome:       extractOutcome(text),
		RawText:       text,
	}
}

// extractDrug captures the run of capitalized tokens immediately following a
// drug cue word. The first cue (by position) with a non-empty capture wins.
//
// The heuristic is inherited and intentionally naive: a capitalized token
// after "on" or "after" is taken at face value.
func extractDrug(text string) *string {
	tokens := strings.Fields(text)

	for i, tok := range tokens {
		if !isDrugCue(tok) {
			continue
		}

		var name []string
		for _, next := range tokens[i+1:] {
			word, terminal := splitToken(next)
			if word == "" || !startsUpper(word) {
				break
			}
			name = append(name, word)
			if terminal {
				break
			}
		}

		if len(name) > 0 {
			drug := strings.Join(name, " ")
			return &drug
		}
	}

	return nil
}

// extractAdverseEvents scans for every known symptom keyword and returns each
// matched keyword exactly once, ordered by its first occurrence in the text.
func extractAdverseEvents(text string) databasetypes.StringArray {
	lower := strings.ToLower(text)

	type match struct {
		pos     int
		keyword string
	}

	var found []match
	for _, keyword := range eventKeywords {
		if pos := indexWord(lower, keyword); pos >= 0 {
			found = append(found, match{pos: pos, keyword: keyword})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].pos < found[j].pos
	})

	events := databasetypes.StringArray{}
	for _, m := range found {
		events = append(events, m.keyword)
	}
	return events
}

// extractSeverity resolves by priority order, not by position: if a report
// mentions both "severe" and "mild" the more severe classification wins.
func extractSeverity(text string) models.Severity {
	lower := strings.ToLower(text)

	severity := models.SeverityUnknown
	best := 0
	for cue, s := range severityCues {
		if indexWord(lower, cue) < 0 {
			continue
		}
		if rank := severityRank[s]; rank > best {
			best = rank
			severity = s
		}
	}
	return severity
}

// extractOutcome resolves with longest-match-wins across all outcome cues.
// Equal cue lengths break by earliest position in the text, then by table
// order.
func extractOutcome(text string) models.Outcome {
	lower := strings.ToLower(text)

	outcome := models.OutcomeUnknown
	bestLen := 0
	bestPos := -1
	for _, cue := range outcomeCues {
		pos := indexWord(lower, cue.phrase)
		if pos < 0 {
			continue
		}
		if len(cue.phrase) > bestLen || (len(cue.phrase) == bestLen && pos < bestPos) {
			bestLen = len(cue.phrase)
			bestPos = pos
			outcome = cue.outcome
		}
	}
	return outcome
}

func isDrugCue(tok string) bool {
	word, _ := splitToken(tok)
	for _, cue := range drugCues {
		if strings.EqualFold(word, cue) {
			return true
		}
	}
	return false
}

// splitToken strips surrounding punctuation from a whitespace-delimited token
// and reports whether the token carried trailing punctuation, which ends a
// capture run.
func splitToken(tok string) (string, bool) {
	word := strings.TrimLeft(tok, `("'`)
	trimmed := strings.TrimRight(word, `.,;:!?)"'`)
	return trimmed, trimmed != word
}

func startsUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

// indexWord returns the byte offset of the first whole-word occurrence of
// phrase in text, or -1. Both arguments are expected in lower case already.
func indexWord(text, phrase string) int {
	for start := 0; start <= len(text)-len(phrase); {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return -1
		}
		idx += start
		if isWordBoundary(text, idx, len(phrase)) {
			return idx
		}
		start = idx + 1
	}
	return -1
}

func isWordBoundary(text string, idx, length int) bool {
	if idx > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:idx])
		if unicode.IsLetter(before) {
			return false
		}
	}
	if idx+length < len(text) {
		after, _ := utf8.DecodeRuneInString(text[idx+length:])
		if unicode.IsLetter(after) {
			return false
		}
	}
	return true
}
