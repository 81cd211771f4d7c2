package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

const selectPropositionSQL = `
SELECT id, numero_projeto, ementa, casa_iniciadora, forma_apreciacao,
       COALESCE(eixo_tematico, ''), situacao, cabe_analise,
       COALESCE(prazo_analise, ''), analise_realizada,
       COALESCE(documento_analise, ''), posicionamento_cnm, prioridade,
       COALESCE(observacao, ''), area_tecnica,
       aprovacao_camara, aprovacao_senado, sancionado_presidencia,
       data_criacao, data_atualizacao
FROM proposicoes`

func scanPropositions(rows pgx.Rows) ([]models.Proposition, error) {
	defer rows.Close()

	var props []models.Proposition
	for rows.Next() {
		var p models.Proposition
		if err := rows.Scan(
			&p.ID, &p.BillNumber, &p.Summary, &p.OriginChamber, &p.ReviewProcedure,
			&p.ThematicAxis, &p.Status, &p.NeedsAnalysis,
			&p.AnalysisDeadline, &p.AnalysisDone,
			&p.AnalysisDocument, &p.Position, &p.Priority,
			&p.Notes, &p.Area,
			&p.CamaraApproval, &p.SenadoApproval, &p.Sanctioned,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan proposition row: %w", err)
		}
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after proposition row iteration: %w", err)
	}
	return props, nil
}

// PropositionsByArea returns the tracked bills of one technical area,
// newest first.
func (s *Store) PropositionsByArea(ctx context.Context, area string) ([]models.Proposition, error) {
	rows, err := s.pool.Query(ctx, selectPropositionSQL+`
		WHERE area_tecnica = $1 ORDER BY data_criacao DESC`, area)
	if err != nil {
		return nil, fmt.Errorf("failed to query propositions: %w", err)
	}
	return scanPropositions(rows)
}

// InsertProposition stores a new bill record and returns its ID.
func (s *Store) InsertProposition(ctx context.Context, p models.Proposition) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO proposicoes (
			numero_projeto, ementa, casa_iniciadora, forma_apreciacao,
			eixo_tematico, situacao, cabe_analise, prazo_analise,
			analise_realizada, documento_analise, posicionamento_cnm,
			prioridade, observacao, area_tecnica
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		p.BillNumber, p.Summary, p.OriginChamber, p.ReviewProcedure,
		p.ThematicAxis, p.Status, p.NeedsAnalysis, p.AnalysisDeadline,
		p.AnalysisDone, p.AnalysisDocument, p.Position,
		p.Priority, p.Notes, p.Area,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert proposition: %w", err)
	}
	return id, nil
}

// UpdateProposition overwrites the review metadata of an existing bill.
func (s *Store) UpdateProposition(ctx context.Context, id int64, p models.Proposition) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE proposicoes SET
			numero_projeto = $1, ementa = $2, casa_iniciadora = $3,
			forma_apreciacao = $4, eixo_tematico = $5, situacao = $6,
			cabe_analise = $7, prazo_analise = $8, analise_realizada = $9,
			documento_analise = $10, posicionamento_cnm = $11, prioridade = $12,
			observacao = $13, aprovacao_camara = $14, aprovacao_senado = $15,
			sancionado_presidencia = $16, data_atualizacao = CURRENT_TIMESTAMP
		WHERE id = $17`,
		p.BillNumber, p.Summary, p.OriginChamber,
		p.ReviewProcedure, p.ThematicAxis, p.Status,
		p.NeedsAnalysis, p.AnalysisDeadline, p.AnalysisDone,
		p.AnalysisDocument, p.Position, p.Priority,
		p.Notes, p.CamaraApproval, p.SenadoApproval,
		p.Sanctioned, id)
	if err != nil {
		return false, fmt.Errorf("failed to update proposition: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteProposition removes a bill record.
func (s *Store) DeleteProposition(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM proposicoes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete proposition: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// PropositionStats aggregates bill outcomes by CNM position. An empty
// area aggregates over every area.
func (s *Store) PropositionStats(ctx context.Context, area string) (models.PropositionStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'FAVORÁVEL'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'DESFAVORÁVEL'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'NEUTRO'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'FAVORÁVEL' AND aprovacao_camara = 'APROVADO'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'DESFAVORÁVEL' AND aprovacao_camara = 'APROVADO'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'NEUTRO' AND aprovacao_camara = 'APROVADO'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'FAVORÁVEL' AND aprovacao_senado = 'APROVADO'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'DESFAVORÁVEL' AND aprovacao_senado = 'APROVADO'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'NEUTRO' AND aprovacao_senado = 'APROVADO'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'FAVORÁVEL' AND sancionado_presidencia = 'SIM'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'DESFAVORÁVEL' AND sancionado_presidencia = 'SIM'),
			COUNT(*) FILTER (WHERE posicionamento_cnm = 'NEUTRO' AND sancionado_presidencia = 'SIM')
		FROM proposicoes`

	var row pgx.Row
	if area != "" {
		row = s.pool.QueryRow(ctx, query+` WHERE area_tecnica = $1`, area)
	} else {
		row = s.pool.QueryRow(ctx, query)
	}

	var st models.PropositionStats
	err := row.Scan(
		&st.Favorable, &st.Unfavorable, &st.Neutral,
		&st.CamaraPassedFavorable, &st.CamaraPassedUnfavorable, &st.CamaraPassedNeutral,
		&st.SenadoPassedFavorable, &st.SenadoPassedUnfavorable, &st.SenadoPassedNeutral,
		&st.SanctionedFavorable, &st.SanctionedUnfavorable, &st.SanctionedNeutral,
	)
	if err != nil {
		return models.PropositionStats{}, fmt.Errorf("failed to query proposition stats: %w", err)
	}
	return st, nil
}
