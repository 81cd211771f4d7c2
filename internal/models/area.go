package models

// Area is one technical area of the municipal-policy catalog. Name is the
// stable identifier that events and propositions reference. Keywords is a
// comma-separated list of free-text terms used by the categorizer; entries
// may be multi-word phrases.
type Area struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Keywords    string `json:"palavras_chave"`
}

// AreaCounter pairs an area with its event counters for the dashboard.
type AreaCounter struct {
	Area          string `json:"area_tecnica"`
	TotalEvents   int    `json:"total_eventos"`
	InProgress    int    `json:"eventos_andamento"`
	Finished      int    `json:"eventos_encerrados"`
	Cancelled     int    `json:"eventos_cancelados"`
}
