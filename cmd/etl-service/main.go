package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rajindersingh041/agenda-congresso/internal/categorizer"
	"github.com/rajindersingh041/agenda-congresso/internal/config"
	"github.com/rajindersingh041/agenda-congresso/internal/database"
	"github.com/rajindersingh041/agenda-congresso/internal/extractor"
	"github.com/rajindersingh041/agenda-congresso/internal/metrics"
	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

type ETL struct {
	cfg        *config.Config
	store      *database.Store
	logs       *database.LogStore
	rules      *categorizer.Rules
	extractors []extractor.Extractor
	metrics    *metrics.Metrics
}

func main() {
	log.Println("--- Starting Agenda ETL Service ---")
	once := flag.Bool("once", false, "run a single ETL cycle and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found, relying on environment")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	rules, err := categorizer.LoadRules(cfg.Categorizer.RulesPath)
	if err != nil {
		log.Fatalf("Error loading categorization rules: %v", err)
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
			log.Printf("WARN: ClickHouse unavailable, run logs disabled: %v", err)
		} else {
			defer ch.Close()
			logs = database.NewLogStore(ch)
		}
	}

	etl := &ETL{
		cfg:   cfg,
		store: database.NewStore(pool),
		logs:  logs,
		rules: rules,
		extractors: []extractor.Extractor{
			extractor.NewCamara(cfg.Camara.BaseURL, cfg.Camara.UserAgent, cfg.Camara.Timeout),
			extractor.NewSenado(cfg.Senado.BaseURL, cfg.Senado.UserAgent, cfg.Senado.Timeout),
		},
		metrics: metrics.New(),
	}

	if *once {
		etl.runCycle(ctx)
		return
	}

	go serveMetrics()

	log.Printf("Full cycle every %s, status refresh every %s, lookahead %d days",
		cfg.ETL.UpdateInterval, cfg.ETL.StatusInterval, cfg.ETL.LookaheadDays)

	updateTicker := time.NewTicker(cfg.ETL.UpdateInterval)
	defer updateTicker.Stop()
	statusTicker := time.NewTicker(cfg.ETL.StatusInterval)
	defer statusTicker.Stop()

	etl.runCycle(ctx)
	for {
		select {
		case <-updateTicker.C:
			etl.runCycle(ctx)
		case <-statusTicker.C:
			etl.refreshStatuses(ctx)
		}
	}
}

func serveMetrics() {
	port := os.Getenv("METRICS_PORT")
	if port == "" {
		port = "9090"
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Printf("Serving metrics on :%s/metrics", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Printf("WARN: Metrics server stopped: %v", err)
	}
}

// runCycle performs one full extraction: fetch from both chambers,
// categorize, and upsert. A failing chamber is skipped; the cycle only
// counts as an error when nothing could be extracted at all.
func (e *ETL) runCycle(ctx context.Context) {
	start := time.Now()
	log.Println("Starting full ETL cycle...")

	from := time.Now()
	to := from.AddDate(0, 0, e.cfg.ETL.LookaheadDays)

	var events []models.Event
	var failures []string
	for _, ext := range e.extractors {
		extracted, err := ext.Events(ctx, from, to)
		if err != nil {
			log.Printf("ERROR: Extraction from %s failed: %v", ext.Source(), err)
			failures = append(failures, fmt.Sprintf("%s: %v", ext.Source(), err))
			continue
		}
		log.Printf("Extracted %d events from %s", len(extracted), ext.Source())
		e.metrics.ExtractedTotal.WithLabelValues(ext.Source()).Add(float64(len(extracted)))
		events = append(events, extracted...)
	}

	if len(events) == 0 && len(failures) == len(e.extractors) {
		e.finishRun(ctx, models.RunKindFullETL, models.RunStatusError, 0, 0,
			strings.Join(failures, "; "), start)
		return
	}

	categorized, err := e.categorize(ctx, events)
	if err != nil {
		log.Printf("ERROR: Categorization failed: %v", err)
		e.finishRun(ctx, models.RunKindFullETL, models.RunStatusError, 0, 0, err.Error(), start)
		return
	}

	inserted, updated, err := e.store.UpsertEvents(ctx, categorized)
	if err != nil {
		log.Printf("ERROR: Upsert failed: %v", err)
		e.finishRun(ctx, models.RunKindFullETL, models.RunStatusError, 0, 0, err.Error(), start)
		return
	}
	e.metrics.InsertedTotal.Add(float64(inserted))
	e.metrics.UpdatedTotal.Add(float64(updated))

	if backlog, err := e.store.CountUncategorized(ctx); err == nil {
		e.metrics.UncategorizedCount.Set(float64(backlog))
	}

	details := ""
	if len(failures) > 0 {
		details = "partial: " + strings.Join(failures, "; ")
	}
	log.Printf("ETL cycle done: %d inserted, %d updated in %s",
		inserted, updated, time.Since(start).Round(time.Millisecond))
	e.finishRun(ctx, models.RunKindFullETL, models.RunStatusSuccess, inserted, updated, details, start)
}

// categorize fills the technical area of each event, using a fresh
// snapshot of the area catalog so keyword edits take effect without a
// restart.
func (e *ETL) categorize(ctx context.Context, events []models.Event) ([]models.Event, error) {
	areas, err := e.store.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load area catalog: %w", err)
	}
	selector, err := categorizer.NewSelector(areas, e.rules, e.cfg.Categorizer.Threshold)
	if err != nil {
		return nil, err
	}

	categorized := selector.CategorizeBatch(events)
	for _, ev := range categorized {
		if ev.Area != "" {
			e.metrics.CategorizedTotal.WithLabelValues(ev.Area).Inc()
		}
	}
	return categorized, nil
}

// refreshStatuses marks scheduled events whose start date is already in
// the past as in progress.
func (e *ETL) refreshStatuses(ctx context.Context) {
	log.Println("Starting status refresh...")
	events, err := e.store.ListEventsByStatus(ctx, models.StatusScheduled)
	if err != nil {
		log.Printf("ERROR: Status refresh query failed: %v", err)
		e.finishRun(ctx, models.RunKindStatusRefresh, models.RunStatusError, 0, 0, err.Error(), time.Now())
		return
	}

	updated := 0
	now := time.Now()
	for _, ev := range events {
		start, ok := parseDisplayDate(ev.StartDate)
		if !ok || !start.Before(now) {
			continue
		}
		changed, err := e.store.SetEventStatus(ctx, ev.ExternalID, models.StatusInProgress)
		if err != nil {
			log.Printf("WARN: Failed to refresh status of %s: %v", ev.ExternalID, err)
			continue
		}
		if changed {
			updated++
		}
	}

	log.Printf("Status refresh done: %d events moved to %q", updated, models.StatusInProgress)
	e.finishRun(ctx, models.RunKindStatusRefresh, models.RunStatusSuccess, 0, updated, "", now)
}

// parseDisplayDate reads a display-formatted start date. Date-only
// values count from the end of that day so events are not flipped
// before they happened. Free-form dates that never parsed are skipped.
func parseDisplayDate(display string) (time.Time, bool) {
	if t, err := time.Parse("02/01/2006 às 15:04", display); err == nil {
		return t, true
	}
	t, err := time.Parse("02/01/2006", display)
	if err != nil {
		return time.Time{}, false
	}
	return t.Add(24*time.Hour - time.Second), true
}

func (e *ETL) finishRun(ctx context.Context, kind, status string, inserted, updated int, details string, start time.Time) {
	e.metrics.RunsTotal.WithLabelValues(status).Inc()
	e.metrics.RunDuration.Observe(time.Since(start).Seconds())

	entry := models.RunLog{
		Timestamp:     time.Now(),
		Kind:          kind,
		Status:        status,
		NewEvents:     inserted,
		UpdatedEvents: updated,
		Details:       details,
	}
	if err := e.logs.InsertRunLog(ctx, entry); err != nil {
		log.Printf("WARN: Failed to record run log: %v", err)
	}
}
