package categorizer

import "github.com/rajindersingh041/agenda-congresso/internal/models"

// CategorizeOne returns the area for a single event, or "" when no
// confident assignment exists. Calling it twice with the same event and
// the same selector always returns the same result.
func (s *Selector) CategorizeOne(ev models.Event) string {
	return s.Select(ev)
}

// CategorizeBatch applies the selector to every event and returns a new
// slice in input order. When the selector returns an area the event's Area
// field is set; otherwise the existing value is left untouched, so a
// low-confidence re-run never clears a previous categorization. Events are
// scored independently of each other.
func (s *Selector) CategorizeBatch(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	for i, ev := range events {
		if area := s.Select(ev); area != "" {
			ev.Area = area
		}
		out[i] = ev
	}
	return out
}
