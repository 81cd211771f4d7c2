// Package extractor implements the open-data clients for both chambers.
// Each client produces normalized Event records; categorization and
// persistence happen downstream.
package extractor

import (
	"context"
	"strings"
	"time"

	"github.com/rajindersingh041/agenda-congresso/internal/categorizer"
	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

// Extractor is one chamber's event source.
type Extractor interface {
	// Source identifies the chamber (models.SourceCamara / SourceSenado).
	Source() string
	// Events returns the chamber's calendar between the two dates.
	Events(ctx context.Context, from, to time.Time) ([]models.Event, error)
}

const apiDateLayout = "2006-01-02"

// displayDateTime renders a parsed timestamp the way the dashboard shows
// it. The stored value is a display string, not a machine timestamp.
func displayDateTime(t time.Time) string {
	return t.Format("02/01/2006") + " às " + t.Format("15:04")
}

// normalizeStatus folds the chambers' free-text situation values into the
// fixed status set.
func normalizeStatus(raw string) string {
	if raw == "" {
		return models.StatusInProgress
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "encerrada"), strings.Contains(lower, "finalizada"):
		return models.StatusFinished
	case strings.Contains(lower, "cancelada"):
		return models.StatusCancelled
	case strings.Contains(lower, "agendada"), strings.Contains(lower, "convocada"):
		return models.StatusScheduled
	default:
		return models.StatusInProgress
	}
}

// normalizeEventType folds the chambers' event-type labels into the
// values the categorizer's contextual fallback keys on. Comparison is
// accent-insensitive because the feeds are not consistent about accents.
func normalizeEventType(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	lower := categorizer.StripAccents(strings.ToLower(raw))
	switch {
	case strings.Contains(lower, "audiencia"):
		return "Audiência Pública"
	case strings.Contains(lower, "sessao"):
		return "Sessão"
	case strings.Contains(lower, "reuniao"):
		return "Reunião"
	case strings.Contains(lower, "palestra"):
		return "Palestra"
	default:
		return raw
	}
}
