package models

// Event statuses as published by both chambers' calendars.
const (
	StatusScheduled  = "Agendada"
	StatusInProgress = "Em Andamento"
	StatusFinished   = "Encerrada"
	StatusCancelled  = "Cancelada"
)

// Known event sources.
const (
	SourceCamara = "camara"
	SourceSenado = "senado"
)

// Event represents one legislative activity (committee meeting, public
// hearing or plenary session) as ingested from a chamber's open-data API.
// ExternalID is stable across re-ingestion runs and is the upsert key.
// StartDate/EndDate are display-formatted strings ("02/01/2006 às 15:04"),
// not parsed timestamps. Area is empty until the categorizer fills it.
type Event struct {
	ExternalID string `json:"evento_id_externo"`
	Name       string `json:"nome"`
	StartDate  string `json:"data_inicio"`
	EndDate    string `json:"data_fim"`
	Status     string `json:"situacao"`
	Theme      string `json:"tema,omitempty"`
	EventType  string `json:"tipo_evento,omitempty"`
	Location   string `json:"local_evento,omitempty"`
	Link       string `json:"link_evento,omitempty"`
	Area       string `json:"area_tecnica,omitempty"`
	Source     string `json:"fonte"`
}

// EventPatch carries a partial update for an event. Nil fields are left
// untouched by the update.
type EventPatch struct {
	Name      *string `json:"nome,omitempty"`
	StartDate *string `json:"data_inicio,omitempty"`
	EndDate   *string `json:"data_fim,omitempty"`
	Status    *string `json:"situacao,omitempty"`
	Theme     *string `json:"tema,omitempty"`
	EventType *string `json:"tipo_evento,omitempty"`
	Location  *string `json:"local_evento,omitempty"`
	Link      *string `json:"link_evento,omitempty"`
	Area      *string `json:"area_tecnica,omitempty"`
}

// IsEmpty reports whether the patch carries no changes at all.
func (p EventPatch) IsEmpty() bool {
	return p.Name == nil && p.StartDate == nil && p.EndDate == nil &&
		p.Status == nil && p.Theme == nil && p.EventType == nil &&
		p.Location == nil && p.Link == nil && p.Area == nil
}
