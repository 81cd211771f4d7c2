package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

// Committee acronyms polled for events. The open-data API pages per
// organ, so the client fans out one request per committee.
const camaraCommitteeAcronyms = "CCJC,CD,CE,CFT,CI,CMO,CREDN,CTASP,CUTI"

// Camara is the client for dadosabertos.camara.leg.br.
type Camara struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewCamara builds a Câmara client.
func NewCamara(baseURL, userAgent string, timeout time.Duration) *Camara {
	return &Camara{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Source implements Extractor.
func (c *Camara) Source() string { return models.SourceCamara }

type camaraOrgan struct {
	ID int64 `json:"id"`
}

type camaraEvent struct {
	ID            int64  `json:"id"`
	Title         string `json:"titulo"`
	StartDateTime string `json:"dataHoraInicio"`
	EndDateTime   string `json:"dataHoraFim"`
	Situation     string `json:"situacao"`
	Theme         string `json:"tema"`
	EventType     string `json:"descricaoTipo"`
	Location      struct {
		Name string `json:"nome"`
	} `json:"localCamara"`
}

type camaraPage[T any] struct {
	Dados []T `json:"dados"`
}

// Events implements Extractor: committee events plus plenary sessions.
// A failing committee is skipped; only a fully failed extraction is an
// error.
func (c *Camara) Events(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	var events []models.Event

	committees, err := c.committees(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list committees: %w", err)
	}
	for _, organ := range committees {
		organEvents, err := c.organEvents(ctx, organ.ID, from, to)
		if err != nil {
			// One broken committee must not sink the whole cycle.
			continue
		}
		events = append(events, organEvents...)
	}

	plenary, err := c.plenarySessions(ctx, from, to)
	if err != nil && len(events) == 0 {
		return nil, fmt.Errorf("failed to fetch plenary sessions: %w", err)
	}
	events = append(events, plenary...)

	return events, nil
}

func (c *Camara) committees(ctx context.Context, from, to time.Time) ([]camaraOrgan, error) {
	params := url.Values{}
	params.Set("sigla", camaraCommitteeAcronyms)
	params.Set("dataInicio", from.Format(apiDateLayout))
	params.Set("dataFim", to.Format(apiDateLayout))

	var page camaraPage[camaraOrgan]
	if err := c.getJSON(ctx, c.baseURL+"/orgaos?"+params.Encode(), &page); err != nil {
		return nil, err
	}
	return page.Dados, nil
}

func (c *Camara) organEvents(ctx context.Context, organID int64, from, to time.Time) ([]models.Event, error) {
	params := url.Values{}
	params.Set("dataInicio", from.Format(apiDateLayout))
	params.Set("dataFim", to.Format(apiDateLayout))
	params.Set("itens", "100")

	endpoint := fmt.Sprintf("%s/orgaos/%d/eventos?%s", c.baseURL, organID, params.Encode())
	var page camaraPage[camaraEvent]
	if err := c.getJSON(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return c.mapEvents(page.Dados), nil
}

func (c *Camara) plenarySessions(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	params := url.Values{}
	params.Set("dataInicio", from.Format(apiDateLayout))
	params.Set("dataFim", to.Format(apiDateLayout))
	params.Set("tipo", "Sessão Plenária")
	params.Set("itens", "100")

	var page camaraPage[camaraEvent]
	if err := c.getJSON(ctx, c.baseURL+"/eventos?"+params.Encode(), &page); err != nil {
		return nil, err
	}
	return c.mapEvents(page.Dados), nil
}

func (c *Camara) mapEvents(raw []camaraEvent) []models.Event {
	events := make([]models.Event, 0, len(raw))
	for _, r := range raw {
		name := r.Title
		if name == "" {
			name = "Evento sem título"
		}
		location := "Local não informado"
		if r.Location.Name != "" {
			location = r.Location.Name + " - Câmara dos Deputados"
		}
		events = append(events, models.Event{
			ExternalID: "camara_" + strconv.FormatInt(r.ID, 10),
			Name:       name,
			StartDate:  formatCamaraDateTime(r.StartDateTime),
			EndDate:    formatCamaraDateTime(r.EndDateTime),
			Status:     normalizeStatus(r.Situation),
			Theme:      r.Theme,
			EventType:  normalizeEventType(r.EventType, "Evento"),
			Location:   location,
			Link:       fmt.Sprintf("https://www.camara.leg.br/eventos/%d", r.ID),
			Source:     models.SourceCamara,
		})
	}
	return events
}

// Câmara timestamps arrive as "2006-01-02T15:04"; unparseable values are
// passed through untouched rather than dropped.
func formatCamaraDateTime(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return displayDateTime(t)
		}
	}
	return raw
}

func (c *Camara) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("got non-200 response: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
