package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/ClickHouse/clickhouse-go/v2"
)

// ConnectClickHouse opens the run-log analytics store and creates its
// table. Shared by the ETL (writer) and the API (reader).
func ConnectClickHouse(host string) (*sql.DB, error) {
	if host == "" {
		host = "localhost"
	}
	dsn := fmt.Sprintf("clickhouse://%s:%s@%s:9000/%s?dial_timeout=%s",
		os.Getenv("CLICKHOUSE_USER"),
		os.Getenv("CLICKHOUSE_PASSWORD"),
		host,
		os.Getenv("CLICKHOUSE_DB"),
		"10s",
	)
	db, err := sql.Open("clickhouse", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open clickhouse db: %w", err)
	}
	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(time.Hour)
	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			if _, err = db.Exec(runLogSQL); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to create run-log table: %w", err)
			}
			return db, nil
		}
		log.Printf("Failed to ping clickhouse (attempt %d): %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to ping clickhouse after retries: %w", err)
}
