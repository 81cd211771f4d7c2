package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres establishes the shared pool, pings with retries, runs the
// schema init and seeds the technical-area catalog. Credentials come from
// POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_HOST and POSTGRES_DB.
func ConnectPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:5432/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		host,
		os.Getenv("POSTGRES_DB"),
	)

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}
	config.MaxConns = 20
	config.MinConns = 2
	config.MaxConnIdleTime = 5 * time.Minute
	config.MaxConnLifetime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute
	config.ConnConfig.ConnectTimeout = 10 * time.Second

	var pool *pgxpool.Pool
	for i := 0; i < 5; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, config)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
			pool = nil
		}
		fmt.Printf("Failed to connect to postgres pool (attempt %d): %v\n", i+1, err)
		time.Sleep(3 * time.Second)
	}
	if pool == nil {
		return nil, fmt.Errorf("failed to connect to postgres pool after retries: %w", err)
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(initCtx, initSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run init sql: %w", err)
	}
	if err := seedAreas(initCtx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to seed technical areas: %w", err)
	}

	return pool, nil
}

func seedAreas(ctx context.Context, pool *pgxpool.Pool) error {
	for _, a := range seedAreaData {
		_, err := pool.Exec(ctx, `
			INSERT INTO areas_tecnicas (nome, descricao, palavras_chave)
			VALUES ($1, $2, $3)
			ON CONFLICT (nome) DO NOTHING`,
			a.Name, a.Description, a.Keywords,
		)
		if err != nil {
			return fmt.Errorf("area %q: %w", a.Name, err)
		}
	}
	return nil
}
