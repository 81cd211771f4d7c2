package models

import "time"

// CNM position values on a tracked bill.
const (
	PositionFavorable   = "FAVORÁVEL"
	PositionUnfavorable = "DESFAVORÁVEL"
	PositionNeutral     = "NEUTRO"
)

// Proposition is a tracked legislative bill with the internal review
// metadata attached by the technical areas.
type Proposition struct {
	ID               int64     `json:"id"`
	BillNumber       string    `json:"numero_projeto"`
	Summary          string    `json:"ementa"`
	OriginChamber    string    `json:"casa_iniciadora"`
	ReviewProcedure  string    `json:"forma_apreciacao"`
	ThematicAxis     string    `json:"eixo_tematico,omitempty"`
	Status           string    `json:"situacao"`
	NeedsAnalysis    string    `json:"cabe_analise"`
	AnalysisDeadline string    `json:"prazo_analise,omitempty"`
	AnalysisDone     string    `json:"analise_realizada"`
	AnalysisDocument string    `json:"documento_analise,omitempty"`
	Position         string    `json:"posicionamento_cnm"`
	Priority         string    `json:"prioridade"`
	Notes            string    `json:"observacao,omitempty"`
	Area             string    `json:"area_tecnica"`
	CamaraApproval   string    `json:"aprovacao_camara"`
	SenadoApproval   string    `json:"aprovacao_senado"`
	Sanctioned       string    `json:"sancionado_presidencia"`
	CreatedAt        time.Time `json:"data_criacao"`
	UpdatedAt        time.Time `json:"data_atualizacao"`
}

// PropositionStats aggregates bill outcomes for one area, broken down by
// the CNM position and how far the bill advanced.
type PropositionStats struct {
	Favorable               int `json:"cnm_favoravel"`
	Unfavorable             int `json:"cnm_desfavoravel"`
	Neutral                 int `json:"cnm_neutro"`
	CamaraPassedFavorable   int `json:"camara_cnm_favoravel"`
	CamaraPassedUnfavorable int `json:"camara_cnm_desfavoravel"`
	CamaraPassedNeutral     int `json:"camara_cnm_neutro"`
	SenadoPassedFavorable   int `json:"senado_cnm_favoravel"`
	SenadoPassedUnfavorable int `json:"senado_cnm_desfavoravel"`
	SenadoPassedNeutral     int `json:"senado_cnm_neutro"`
	SanctionedFavorable     int `json:"presidencia_cnm_favoravel"`
	SanctionedUnfavorable   int `json:"presidencia_cnm_desfavoravel"`
	SanctionedNeutral       int `json:"presidencia_cnm_neutro"`
}
