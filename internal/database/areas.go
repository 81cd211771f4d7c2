package database

import (
	"context"
	"fmt"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

// ListAreas returns the technical-area catalog ordered by name. That
// ordering is the catalog order the categorizer uses as its tie-break, so
// every caller must load areas through here.
func (s *Store) ListAreas(ctx context.Context) ([]models.Area, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT nome, COALESCE(descricao, ''), COALESCE(palavras_chave, '')
		FROM areas_tecnicas ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("failed to query areas: %w", err)
	}
	defer rows.Close()

	var areas []models.Area
	for rows.Next() {
		var a models.Area
		if err := rows.Scan(&a.Name, &a.Description, &a.Keywords); err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after area row iteration: %w", err)
	}
	return areas, nil
}

// AreaCounters returns per-area event totals broken down by status, for
// the dashboard cards. Areas with no events still appear with zeroes.
func (s *Store) AreaCounters(ctx context.Context) ([]models.AreaCounter, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT a.nome,
		       COUNT(e.id),
		       COUNT(e.id) FILTER (WHERE e.situacao = $1),
		       COUNT(e.id) FILTER (WHERE e.situacao = $2),
		       COUNT(e.id) FILTER (WHERE e.situacao = $3)
		FROM areas_tecnicas a
		LEFT JOIN eventos e ON e.area_tecnica = a.nome
		GROUP BY a.nome
		ORDER BY a.nome`,
		models.StatusInProgress, models.StatusFinished, models.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to query area counters: %w", err)
	}
	defer rows.Close()

	var counters []models.AreaCounter
	for rows.Next() {
		var c models.AreaCounter
		if err := rows.Scan(&c.Area, &c.TotalEvents, &c.InProgress, &c.Finished, &c.Cancelled); err != nil {
			return nil, fmt.Errorf("failed to scan area counter row: %w", err)
		}
		counters = append(counters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after area counter iteration: %w", err)
	}
	return counters, nil
}
