package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rajindersingh041/agenda-congresso/internal/config"
	"github.com/rajindersingh041/agenda-congresso/internal/database"
	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

type App struct {
	cfg   *config.Config
	store *database.Store
	logs  *database.LogStore
}

func main() {
	log.Println("--- Starting Agenda API Service ---")
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found, relying on environment")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := database.ConnectPostgres(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer pool.Close()
	log.Println("Successfully connected to Postgres pool")

	var logs *database.LogStore
	if host := os.Getenv("CLICKHOUSE_HOST"); host != "" {
		ch, err := database.ConnectClickHouse(host)
		if err != nil {
			log.Printf("WARN: ClickHouse unavailable, /api/logs will be empty: %v", err)
		} else {
			defer ch.Close()
			logs = database.NewLogStore(ch)
		}
	}

	app := &App{cfg: cfg, store: database.NewStore(pool), logs: logs}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", app.handleHealth)
	mux.HandleFunc("GET /api/areas", app.handleListAreas)
	mux.HandleFunc("GET /api/areas/contadores", app.handleAreaCounters)
	mux.HandleFunc("GET /api/eventos", app.handleListEvents)
	mux.HandleFunc("GET /api/eventos/nao-categorizados", app.handleUncategorized)
	mux.HandleFunc("GET /api/eventos/novos", app.handleRecentEvents)
	mux.HandleFunc("GET /api/eventos/buscar", app.handleSearchEvents)
	mux.HandleFunc("POST /api/eventos/{id}/categorizar", app.handleManualCategorize)
	mux.HandleFunc("PUT /api/eventos/{id}", app.handleUpdateEvent)
	mux.HandleFunc("GET /api/proposicoes", app.handleListPropositions)
	mux.HandleFunc("POST /api/proposicoes", app.handleCreateProposition)
	mux.HandleFunc("PUT /api/proposicoes/{id}", app.handleUpdateProposition)
	mux.HandleFunc("DELETE /api/proposicoes/{id}", app.handleDeleteProposition)
	mux.HandleFunc("GET /api/estatisticas", app.handleStats)
	mux.HandleFunc("GET /api/logs", app.handleRunLogs)
	mux.Handle("GET /metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.API.Port)
	log.Printf("Starting API service on port %s...", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"erro": message})
}

func (app *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"hora":   time.Now().Format(time.RFC3339),
	})
}

func (app *App) handleListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := app.store.ListAreas(r.Context())
	if err != nil {
		log.Printf("ERROR: Failed to list areas: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar áreas")
		return
	}
	writeJSON(w, http.StatusOK, areas)
}

func (app *App) handleAreaCounters(w http.ResponseWriter, r *http.Request) {
	counters, err := app.store.AreaCounters(r.Context())
	if err != nil {
		log.Printf("ERROR: Failed to count events per area: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar contadores")
		return
	}
	writeJSON(w, http.StatusOK, counters)
}

// handleListEvents serves /api/eventos with optional area and limit
// query parameters. The limit is capped by max_events_per_page.
func (app *App) handleListEvents(w http.ResponseWriter, r *http.Request) {
	limit := app.cfg.API.MaxEventsPerPage
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "parâmetro limit inválido")
			return
		}
		if n < limit {
			limit = n
		}
	}

	events, err := app.store.ListEvents(r.Context(), r.URL.Query().Get("area"), limit)
	if err != nil {
		log.Printf("ERROR: Failed to list events: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar eventos")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (app *App) handleUncategorized(w http.ResponseWriter, r *http.Request) {
	events, err := app.store.ListUncategorized(r.Context(), app.cfg.API.MaxEventsPerPage)
	if err != nil {
		log.Printf("ERROR: Failed to list uncategorized events: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar eventos")
		return
	}
	total, err := app.store.CountUncategorized(r.Context())
	if err != nil {
		log.Printf("ERROR: Failed to count uncategorized events: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar eventos")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":   total,
		"eventos": events,
	})
}

func (app *App) handleRecentEvents(w http.ResponseWriter, r *http.Request) {
	hours := 24
	if raw := r.URL.Query().Get("horas"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "parâmetro horas inválido")
			return
		}
		hours = n
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	events, err := app.store.RecentEvents(r.Context(), since)
	if err != nil {
		log.Printf("ERROR: Failed to list recent events: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar eventos")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (app *App) handleSearchEvents(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeError(w, http.StatusBadRequest, "parâmetro q é obrigatório")
		return
	}
	events, err := app.store.SearchEvents(r.Context(), term)
	if err != nil {
		log.Printf("ERROR: Failed to search events: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar eventos")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// handleManualCategorize assigns an area to one event directly. The
// choice must be one of the catalog areas; it overrides whatever the
// automatic heuristic decided.
func (app *App) handleManualCategorize(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Area string `json:"area_tecnica"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Area == "" {
		writeError(w, http.StatusBadRequest, "corpo inválido, esperado {\"area_tecnica\": \"...\"}")
		return
	}

	areas, err := app.store.ListAreas(r.Context())
	if err != nil {
		log.Printf("ERROR: Failed to list areas: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao validar área")
		return
	}
	known := false
	for _, a := range areas {
		if a.Name == body.Area {
			known = true
			break
		}
	}
	if !known {
		writeError(w, http.StatusBadRequest, "área técnica desconhecida: "+body.Area)
		return
	}

	externalID := r.PathValue("id")
	found, err := app.store.SetEventArea(r.Context(), externalID, body.Area)
	if err != nil {
		log.Printf("ERROR: Failed to set area for %s: %v", externalID, err)
		writeError(w, http.StatusInternalServerError, "erro ao atualizar evento")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "evento não encontrado: "+externalID)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"evento_id_externo": externalID,
		"area_tecnica":      body.Area,
	})
}

func (app *App) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch models.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "corpo inválido")
		return
	}
	if patch.IsEmpty() {
		writeError(w, http.StatusBadRequest, "nenhum campo para atualizar")
		return
	}

	externalID := r.PathValue("id")
	found, err := app.store.UpdateEvent(r.Context(), externalID, patch)
	if err != nil {
		log.Printf("ERROR: Failed to update event %s: %v", externalID, err)
		writeError(w, http.StatusInternalServerError, "erro ao atualizar evento")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "evento não encontrado: "+externalID)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"evento_id_externo": externalID})
}

func (app *App) handleListPropositions(w http.ResponseWriter, r *http.Request) {
	props, err := app.store.PropositionsByArea(r.Context(), r.URL.Query().Get("area"))
	if err != nil {
		log.Printf("ERROR: Failed to list propositions: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar proposições")
		return
	}
	writeJSON(w, http.StatusOK, props)
}

func (app *App) handleCreateProposition(w http.ResponseWriter, r *http.Request) {
	var p models.Proposition
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "corpo inválido")
		return
	}
	if p.BillNumber == "" || p.Area == "" {
		writeError(w, http.StatusBadRequest, "numero_projeto e area_tecnica são obrigatórios")
		return
	}

	id, err := app.store.InsertProposition(r.Context(), p)
	if err != nil {
		log.Printf("ERROR: Failed to insert proposition: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao gravar proposição")
		return
	}
	p.ID = id
	writeJSON(w, http.StatusCreated, p)
}

func (app *App) handleUpdateProposition(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}
	var p models.Proposition
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "corpo inválido")
		return
	}

	found, err := app.store.UpdateProposition(r.Context(), id, p)
	if err != nil {
		log.Printf("ERROR: Failed to update proposition %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "erro ao atualizar proposição")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "proposição não encontrada")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (app *App) handleDeleteProposition(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}
	found, err := app.store.DeleteProposition(r.Context(), id)
	if err != nil {
		log.Printf("ERROR: Failed to delete proposition %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "erro ao remover proposição")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "proposição não encontrada")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *App) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := app.store.PropositionStats(r.Context(), r.URL.Query().Get("area"))
	if err != nil {
		log.Printf("ERROR: Failed to aggregate proposition stats: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar estatísticas")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (app *App) handleRunLogs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "parâmetro limit inválido")
			return
		}
		limit = n
	}

	entries, err := app.logs.RecentRunLogs(r.Context(), limit)
	if err != nil {
		log.Printf("ERROR: Failed to read run logs: %v", err)
		writeError(w, http.StatusInternalServerError, "erro ao consultar logs")
		return
	}
	if entries == nil {
		entries = []models.RunLog{}
	}
	writeJSON(w, http.StatusOK, entries)
}
