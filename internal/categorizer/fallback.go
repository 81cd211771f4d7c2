package categorizer

import (
	"strings"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

// fallbackArea is where generic legislative-process events land when
// nothing more specific applies: plenary sessions, committee procedure,
// and chamber events with no recognizable theme.
const fallbackArea = "Jurídico"

// fallback classifies an event from its type, location and source when no
// area's keyword score cleared the threshold. The comparisons run on
// accent-stripped lower-case fields so "Audiência" and "Audiencia" behave
// the same; the theme scans still run against the normalized search text.
func (s *Selector) fallback(ev models.Event, text string) string {
	eventType := StripAccents(strings.ToLower(ev.EventType))
	location := StripAccents(strings.ToLower(ev.Location))

	switch {
	case strings.Contains(eventType, "audiencia"):
		return scanThemes(s.rules.HearingThemes, text)
	case strings.Contains(eventType, "sessao"):
		// Plenary sessions are legislative procedure by definition.
		return fallbackArea
	case strings.Contains(eventType, "reuniao"):
		return scanThemes(s.rules.CommitteeThemes, text)
	}

	switch {
	case strings.Contains(location, "plenario"):
		return fallbackArea
	case strings.Contains(location, "comissao"):
		return scanThemes(s.rules.CommitteeThemes, text)
	}

	switch strings.ToLower(ev.Source) {
	case models.SourceCamara, models.SourceSenado:
		return fallbackArea
	}
	return ""
}

// scanThemes returns the area of the first rule with a term present in the
// text, or the generic fallback when none matches. First-rule-wins keeps
// the scan deterministic.
func scanThemes(rules []ThemeRule, text string) string {
	for _, rule := range rules {
		for _, term := range rule.Terms {
			if strings.Contains(text, term) {
				return rule.Area
			}
		}
	}
	return fallbackArea
}
