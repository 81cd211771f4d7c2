package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

// LogStore wraps the ClickHouse run-log stream. A nil LogStore is valid
// and turns both operations into no-ops, so the ETL can run without the
// analytics store configured.
type LogStore struct {
	db *sql.DB
}

// NewLogStore returns a LogStore over an already-connected database.
func NewLogStore(db *sql.DB) *LogStore {
	return &LogStore{db: db}
}

// InsertRunLog appends one ETL run outcome.
func (l *LogStore) InsertRunLog(ctx context.Context, entry models.RunLog) error {
	if l == nil || l.db == nil {
		return nil
	}
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO logs_atualizacao
			(Timestamp, TipoAtualizacao, Status, EventosNovos, EventosAtualizados, Detalhes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Timestamp, entry.Kind, entry.Status,
		int32(entry.NewEvents), int32(entry.UpdatedEvents), entry.Details,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run log: %w", err)
	}
	return nil
}

// RecentRunLogs returns the latest ETL runs, newest first.
func (l *LogStore) RecentRunLogs(ctx context.Context, limit int) ([]models.RunLog, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	rows, err := l.db.QueryContext(ctx, `
		SELECT Timestamp, TipoAtualizacao, Status, EventosNovos, EventosAtualizados, Detalhes
		FROM logs_atualizacao
		ORDER BY Timestamp DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run logs: %w", err)
	}
	defer rows.Close()

	var logs []models.RunLog
	for rows.Next() {
		var entry models.RunLog
		var newEvents, updatedEvents int32
		if err := rows.Scan(
			&entry.Timestamp, &entry.Kind, &entry.Status,
			&newEvents, &updatedEvents, &entry.Details,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run log row: %w", err)
		}
		entry.NewEvents = int(newEvents)
		entry.UpdatedEvents = int(updatedEvents)
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after run log iteration: %w", err)
	}
	return logs, nil
}
