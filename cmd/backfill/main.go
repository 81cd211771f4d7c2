// Command backfill re-runs the categorizer over stored events that have
// no technical area yet. Run it after editing area keywords or the rules
// file so the backlog picks up the new vocabulary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/rajindersingh041/agenda-congresso/internal/categorizer"
	"github.com/rajindersingh041/agenda-congresso/internal/config"
	"github.com/rajindersingh041/agenda-congresso/internal/database"
	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

func main() {
	log.Println("--- Starting Recategorization Backfill ---")
	batchSize := flag.Int("batch", 500, "events fetched per pass")
	dryRun := flag.Bool("dry-run", false, "report what would change without writing")
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
	store := database.NewStore(pool)

	var logs *database.LogStore
	if host := os.Getenv("CLICKHOUSE_HOST"); host != "" {
		if ch, err := database.ConnectClickHouse(host); err == nil {
			defer ch.Close()
			logs = database.NewLogStore(ch)
		} else {
			log.Printf("WARN: ClickHouse unavailable, run log disabled: %v", err)
		}
	}

	areas, err := store.ListAreas(ctx)
	if err != nil {
		log.Fatalf("Failed to load area catalog: %v", err)
	}
	selector, err := categorizer.NewSelector(areas, rules, cfg.Categorizer.Threshold)
	if err != nil {
		log.Fatalf("Failed to build selector: %v", err)
	}

	start := time.Now()
	scanned, assigned := 0, 0
	for {
		events, err := store.ListUncategorized(ctx, *batchSize)
		if err != nil {
			log.Fatalf("Failed to list uncategorized events: %v", err)
		}
		if len(events) == 0 {
			break
		}
		scanned += len(events)

		progress := 0
		for _, ev := range selector.CategorizeBatch(events) {
			if ev.Area == "" {
				continue
			}
			if *dryRun {
				log.Printf("[dry-run] %s -> %s (%s)", ev.ExternalID, ev.Area, ev.Name)
				continue
			}
			found, err := store.SetEventArea(ctx, ev.ExternalID, ev.Area)
			if err != nil {
				log.Printf("WARN: Failed to update %s: %v", ev.ExternalID, err)
				continue
			}
			if found {
				assigned++
				progress++
			}
		}

		// Still-uncategorized rows come back on the next pass; without
		// progress (or in dry-run) another pass would loop forever.
		if *dryRun || progress == 0 {
			break
		}
	}

	log.Printf("Backfill done: %d events scanned, %d categorized in %s",
		scanned, assigned, time.Since(start).Round(time.Millisecond))

	if !*dryRun {
		entry := models.RunLog{
			Timestamp:     time.Now(),
			Kind:          models.RunKindBackfill,
			Status:        models.RunStatusSuccess,
			UpdatedEvents: assigned,
			Details:       fmt.Sprintf("%d eventos avaliados", scanned),
		}
		if err := logs.InsertRunLog(ctx, entry); err != nil {
			log.Printf("WARN: Failed to record run log: %v", err)
		}
	}
}
