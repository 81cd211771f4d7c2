package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

// Senado is the client for the Senado open-data agenda. Its endpoints are
// less regular than the Câmara's: the payload may be wrapped in "dados",
// in "eventos", or be a bare array, and timestamps come in several
// layouts.
type Senado struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewSenado builds a Senado client.
func NewSenado(baseURL, userAgent string, timeout time.Duration) *Senado {
	return &Senado{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Source implements Extractor.
func (s *Senado) Source() string { return models.SourceSenado }

type senadoEvent struct {
	ID        json.Number `json:"id"`
	Title     string      `json:"titulo"`
	Name      string      `json:"nome"`
	StartDate string      `json:"dataInicio"`
	Date      string      `json:"data"`
	EndDate   string      `json:"dataFim"`
	Situation string      `json:"situacao"`
	EventType string      `json:"tipo"`
	Location  string      `json:"local"`
	Link      string      `json:"link"`
}

type senadoPayload struct {
	Dados   []senadoEvent `json:"dados"`
	Eventos []senadoEvent `json:"eventos"`
}

// Events implements Extractor: committee agendas, the plenary agenda and
// the general agenda. Individual endpoint failures are skipped; the
// extraction only errors when every endpoint failed.
func (s *Senado) Events(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	endpoints := []string{
		s.baseURL + "/api/agenda/comissoes",
		s.baseURL + "/api/agenda/plenario",
		s.baseURL + "/api/agenda",
	}

	params := url.Values{}
	params.Set("dataInicio", from.Format(apiDateLayout))
	params.Set("dataFim", to.Format(apiDateLayout))

	var events []models.Event
	var lastErr error
	failed := 0
	for _, endpoint := range endpoints {
		raw, err := s.fetch(ctx, endpoint+"?"+params.Encode())
		if err != nil {
			failed++
			lastErr = err
			continue
		}
		events = append(events, s.mapEvents(raw)...)
	}
	if failed == len(endpoints) {
		return nil, fmt.Errorf("all senado endpoints failed: %w", lastErr)
	}
	return events, nil
}

func (s *Senado) fetch(ctx context.Context, endpoint string) ([]senadoEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("got non-200 response: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return decodeSenadoPayload(body)
}

// decodeSenadoPayload accepts the wrapped and the bare-array shapes.
func decodeSenadoPayload(body []byte) ([]senadoEvent, error) {
	var wrapped senadoPayload
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if len(wrapped.Dados) > 0 {
			return wrapped.Dados, nil
		}
		return wrapped.Eventos, nil
	}

	var bare []senadoEvent
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}
	return nil, fmt.Errorf("payload is neither a wrapped object nor an event array")
}

func (s *Senado) mapEvents(raw []senadoEvent) []models.Event {
	events := make([]models.Event, 0, len(raw))
	for _, r := range raw {
		name := r.Title
		if name == "" {
			name = r.Name
		}
		if name == "" {
			name = "Evento do Senado"
		}

		externalID := r.ID.String()
		if externalID == "" {
			// Some agenda entries carry no ID; derive a stable one from
			// the title so re-ingestion still upserts.
			h := fnv.New64a()
			h.Write([]byte(name))
			externalID = strconv.FormatUint(h.Sum64(), 10)
		}

		start := r.StartDate
		if start == "" {
			start = r.Date
		}
		location := r.Location
		if location == "" {
			location = "Senado Federal"
		}

		events = append(events, models.Event{
			ExternalID: "senado_" + externalID,
			Name:       name,
			StartDate:  formatSenadoDateTime(start),
			EndDate:    formatSenadoDateTime(r.EndDate),
			Status:     normalizeStatus(r.Situation),
			EventType:  normalizeEventType(r.EventType, "Evento do Senado"),
			Location:   location,
			Link:       r.Link,
			Source:     models.SourceSenado,
		})
	}
	return events
}

var senadoDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

func formatSenadoDateTime(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range senadoDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return displayDateTime(t)
		}
	}
	return raw
}
