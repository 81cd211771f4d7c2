package models

import "time"

// Run-log kinds and statuses written by the ETL service.
const (
	RunKindFullETL       = "ETL_COMPLETO"
	RunKindStatusRefresh = "ATUALIZACAO_SITUACOES"
	RunKindBackfill      = "RECATEGORIZACAO"

	RunStatusSuccess = "SUCESSO"
	RunStatusError   = "ERRO"
)

// RunLog records the outcome of one ETL cycle. Stored in ClickHouse as an
// append-only stream and surfaced at /api/logs.
type RunLog struct {
	Timestamp     time.Time `json:"data_atualizacao"`
	Kind          string    `json:"tipo_atualizacao"`
	Status        string    `json:"status"`
	NewEvents     int       `json:"eventos_novos"`
	UpdatedEvents int       `json:"eventos_atualizados"`
	Details       string    `json:"detalhes,omitempty"`
}
