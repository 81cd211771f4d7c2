package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

func TestDecodeSenadoPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
		len  int
	}{
		{"wrapped in dados", `{"dados": [{"id": 1, "titulo": "a"}]}`, 1},
		{"wrapped in eventos", `{"eventos": [{"id": 1}, {"id": 2}]}`, 2},
		{"bare array", `[{"id": 3, "titulo": "c"}]`, 1},
		{"empty object", `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := decodeSenadoPayload([]byte(tt.body))
			require.NoError(t, err)
			assert.Len(t, events, tt.len)
		})
	}

	_, err := decodeSenadoPayload([]byte(`"just a string"`))
	assert.Error(t, err)
}

func TestSenadoEvents(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/agenda/comissoes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dados": [{
			"id": 91001,
			"titulo": "Reunião da Comissão de Educação",
			"dataInicio": "2026-09-03T09:30:00",
			"situacao": "Agendada",
			"tipo": "Reunião Ordinária",
			"local": "Ala Alexandre Costa"
		}]}`))
	})
	mux.HandleFunc("/api/agenda/plenario", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/api/agenda", func(w http.ResponseWriter, r *http.Request) {
		// Entry without an ID: the external ID must be derived from the
		// title, stable across runs.
		w.Write([]byte(`{"eventos": [{"titulo": "Agenda do Presidente", "data": "03/09/2026"}]}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewSenado(srv.URL, "test-agent", 5*time.Second)
	from := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	events, err := client.Events(context.Background(), from, from.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, events, 2)

	meeting := events[0]
	assert.Equal(t, "senado_91001", meeting.ExternalID)
	assert.Equal(t, "Reunião da Comissão de Educação", meeting.Name)
	assert.Equal(t, "03/09/2026 às 09:30", meeting.StartDate)
	assert.Equal(t, models.StatusScheduled, meeting.Status)
	assert.Equal(t, "Reunião", meeting.EventType)
	assert.Equal(t, "Ala Alexandre Costa", meeting.Location)
	assert.Equal(t, models.SourceSenado, meeting.Source)

	general := events[1]
	assert.Equal(t, "Agenda do Presidente", general.Name)
	assert.NotEmpty(t, general.ExternalID)
	assert.Equal(t, "03/09/2026 às 00:00", general.StartDate)
	assert.Equal(t, "Senado Federal", general.Location)

	// Same payload, same derived ID.
	again, err := client.Events(context.Background(), from, from.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, general.ExternalID, again[1].ExternalID)
}

func TestSenadoEvents_AllEndpointsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewSenado(srv.URL, "test-agent", 5*time.Second)
	_, err := client.Events(context.Background(), time.Now(), time.Now())
	assert.Error(t, err)
}
