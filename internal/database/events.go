package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

// Store wraps the Postgres pool with the queries the services need.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store over an already-connected pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const upsertEventSQL = `
INSERT INTO eventos (
    evento_id_externo, nome, data_inicio, data_fim, situacao,
    tema, tipo_evento, local_evento, link_evento, area_tecnica, fonte,
    data_atualizacao
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, CURRENT_TIMESTAMP)
ON CONFLICT (evento_id_externo) DO UPDATE SET
    nome             = EXCLUDED.nome,
    data_inicio      = EXCLUDED.data_inicio,
    data_fim         = EXCLUDED.data_fim,
    situacao         = EXCLUDED.situacao,
    tema             = EXCLUDED.tema,
    tipo_evento      = EXCLUDED.tipo_evento,
    local_evento     = EXCLUDED.local_evento,
    link_evento      = EXCLUDED.link_evento,
    area_tecnica     = CASE
                          WHEN EXCLUDED.area_tecnica <> '' THEN EXCLUDED.area_tecnica
                          ELSE eventos.area_tecnica
                       END,
    fonte            = EXCLUDED.fonte,
    data_atualizacao = CURRENT_TIMESTAMP
RETURNING (xmax = 0)`

// UpsertEvents writes a batch of events keyed on the external ID and
// reports how many were new vs. updated. An incoming empty area never
// clears a stored one, so re-ingestion after a low-confidence
// categorization run cannot uncategorize events.
func (s *Store) UpsertEvents(ctx context.Context, events []models.Event) (inserted, updated int, err error) {
	if len(events) == 0 {
		return 0, 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(upsertEventSQL,
			e.ExternalID, e.Name, e.StartDate, e.EndDate, e.Status,
			e.Theme, e.EventType, e.Location, e.Link, e.Area, e.Source,
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range events {
		var isNew bool
		if err := results.QueryRow().Scan(&isNew); err != nil {
			return inserted, updated, fmt.Errorf("failed to upsert event batch: %w", err)
		}
		if isNew {
			inserted++
		} else {
			updated++
		}
	}
	return inserted, updated, nil
}

const selectEventSQL = `
SELECT evento_id_externo, nome,
       COALESCE(data_inicio, ''), COALESCE(data_fim, ''), COALESCE(situacao, ''),
       COALESCE(tema, ''), COALESCE(tipo_evento, ''), COALESCE(local_evento, ''),
       COALESCE(link_evento, ''), COALESCE(area_tecnica, ''), COALESCE(fonte, '')
FROM eventos`

func scanEvents(rows pgx.Rows) ([]models.Event, error) {
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ExternalID, &e.Name, &e.StartDate, &e.EndDate, &e.Status,
			&e.Theme, &e.EventType, &e.Location, &e.Link, &e.Area, &e.Source,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after event row iteration: %w", err)
	}
	return events, nil
}

// ListEvents returns events ordered by start date, optionally filtered by
// area. An empty area returns everything up to limit.
func (s *Store) ListEvents(ctx context.Context, area string, limit int) ([]models.Event, error) {
	var rows pgx.Rows
	var err error
	if area != "" {
		rows, err = s.pool.Query(ctx, selectEventSQL+`
			WHERE area_tecnica = $1 ORDER BY data_inicio DESC LIMIT $2`, area, limit)
	} else {
		rows, err = s.pool.Query(ctx, selectEventSQL+`
			ORDER BY data_inicio DESC LIMIT $1`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return scanEvents(rows)
}

// ListUncategorized returns the backlog of events the categorizer could
// not place.
func (s *Store) ListUncategorized(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := s.pool.Query(ctx, selectEventSQL+`
		WHERE area_tecnica IS NULL OR area_tecnica = ''
		ORDER BY data_inicio DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query uncategorized events: %w", err)
	}
	return scanEvents(rows)
}

// CountUncategorized reports the size of the uncategorized backlog.
func (s *Store) CountUncategorized(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM eventos
		WHERE area_tecnica IS NULL OR area_tecnica = ''`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count uncategorized events: %w", err)
	}
	return n, nil
}

// SearchEvents matches a term against name, theme and event type.
func (s *Store) SearchEvents(ctx context.Context, term string) ([]models.Event, error) {
	pattern := "%" + term + "%"
	rows, err := s.pool.Query(ctx, selectEventSQL+`
		WHERE nome ILIKE $1 OR tema ILIKE $1 OR tipo_evento ILIKE $1
		ORDER BY data_inicio DESC LIMIT 50`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	return scanEvents(rows)
}

// RecentEvents returns events first seen at or after the cutoff.
func (s *Store) RecentEvents(ctx context.Context, since time.Time) ([]models.Event, error) {
	rows, err := s.pool.Query(ctx, selectEventSQL+`
		WHERE data_criacao >= $1 ORDER BY data_criacao DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent events: %w", err)
	}
	return scanEvents(rows)
}

// ListEventsByStatus returns events in the given status, for the ETL's
// status-refresh pass.
func (s *Store) ListEventsByStatus(ctx context.Context, status string) ([]models.Event, error) {
	rows, err := s.pool.Query(ctx, selectEventSQL+`
		WHERE situacao = $1 ORDER BY data_inicio DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by status: %w", err)
	}
	return scanEvents(rows)
}

// SetEventArea writes an area directly, bypassing the categorizer. Used by
// the manual-override endpoint: an operator's choice is never re-scored.
func (s *Store) SetEventArea(ctx context.Context, externalID, area string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE eventos
		SET area_tecnica = $1, data_atualizacao = CURRENT_TIMESTAMP
		WHERE evento_id_externo = $2`, area, externalID)
	if err != nil {
		return false, fmt.Errorf("failed to set event area: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetEventStatus updates only the lifecycle status of an event.
func (s *Store) SetEventStatus(ctx context.Context, externalID, status string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE eventos
		SET situacao = $1, data_atualizacao = CURRENT_TIMESTAMP
		WHERE evento_id_externo = $2`, status, externalID)
	if err != nil {
		return false, fmt.Errorf("failed to set event status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateEvent applies a partial update; nil patch fields are untouched.
func (s *Store) UpdateEvent(ctx context.Context, externalID string, patch models.EventPatch) (bool, error) {
	if patch.IsEmpty() {
		return false, nil
	}

	set := make([]string, 0, 9)
	args := make([]any, 0, 10)
	add := func(column string, value *string) {
		if value != nil {
			args = append(args, *value)
			set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	add("nome", patch.Name)
	add("data_inicio", patch.StartDate)
	add("data_fim", patch.EndDate)
	add("situacao", patch.Status)
	add("tema", patch.Theme)
	add("tipo_evento", patch.EventType)
	add("local_evento", patch.Location)
	add("link_evento", patch.Link)
	add("area_tecnica", patch.Area)

	args = append(args, externalID)
	query := fmt.Sprintf(`
		UPDATE eventos
		SET %s, data_atualizacao = CURRENT_TIMESTAMP
		WHERE evento_id_externo = $%d`, strings.Join(set, ", "), len(args))

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update event: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
