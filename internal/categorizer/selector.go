package categorizer

import (
	"errors"
	"strings"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

// DefaultThreshold is the minimum relevance score an area must reach to be
// assigned directly. Tunable via configuration; lowering it categorizes
// more events at the cost of weaker matches.
const DefaultThreshold = 0.1

// ErrNoUsableAreas is returned when the area catalog has no area with a
// parseable keyword list. That is a configuration problem callers must
// surface before processing, not something scored around per event.
var ErrNoUsableAreas = errors.New("area catalog has no areas with usable keywords")

// Selector scores events against a fixed snapshot of the area catalog.
// It is safe for concurrent use: the snapshot and rule tables are never
// mutated after construction.
type Selector struct {
	areas     []models.Area
	rules     *Rules
	threshold float64
}

// NewSelector builds a selector over a snapshot of the given areas.
// A nil rules argument uses the built-in tables; a non-positive threshold
// uses DefaultThreshold.
func NewSelector(areas []models.Area, rules *Rules, threshold float64) (*Selector, error) {
	usable := 0
	for _, a := range areas {
		if len(SplitKeywords(a.Keywords)) > 0 {
			usable++
		}
	}
	if usable == 0 {
		return nil, ErrNoUsableAreas
	}

	if rules == nil {
		rules = DefaultRules()
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	snapshot := make([]models.Area, len(areas))
	copy(snapshot, areas)

	return &Selector{areas: snapshot, rules: rules, threshold: threshold}, nil
}

// Select returns the best technical area for the event, or "" when no
// confident assignment exists. The empty result is data, not an error:
// the event stays uncategorized.
//
// Areas are scored in catalog order with a strict-greater comparison, so
// when two areas tie the one listed first wins. Catalog order is the
// deliberate, stable tie-break.
func (s *Selector) Select(ev models.Event) string {
	if strings.TrimSpace(ev.Name) == "" {
		return ""
	}

	text := SearchText(ev.Name, ev.Theme, ev.EventType, ev.Location, ev.Source)

	var best string
	var bestScore float64
	for _, area := range s.areas {
		if score := Score(s.rules, text, area); score > bestScore {
			bestScore = score
			best = area.Name
		}
	}

	if bestScore >= s.threshold {
		return best
	}
	return s.fallback(ev, text)
}

// Threshold reports the configured minimum score.
func (s *Selector) Threshold() float64 {
	return s.threshold
}
