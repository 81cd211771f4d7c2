package database

import "github.com/rajindersingh041/agenda-congresso/internal/models"

// Schema owned by the agenda services, embedded in the Go code. The upsert
// key for events is evento_id_externo, stable across re-ingestion runs.
const initSQL = `
CREATE TABLE IF NOT EXISTS eventos (
    id                SERIAL PRIMARY KEY,
    evento_id_externo TEXT UNIQUE NOT NULL,
    nome              TEXT NOT NULL,
    data_inicio       TEXT,
    data_fim          TEXT,
    situacao          TEXT,
    tema              TEXT,
    tipo_evento       TEXT,
    local_evento      TEXT,
    link_evento       TEXT,
    area_tecnica      TEXT,
    fonte             TEXT,
    data_criacao      TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
    data_atualizacao  TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_eventos_area ON eventos (area_tecnica);
CREATE INDEX IF NOT EXISTS idx_eventos_fonte ON eventos (fonte);

CREATE TABLE IF NOT EXISTS areas_tecnicas (
    id             SERIAL PRIMARY KEY,
    nome           TEXT UNIQUE NOT NULL,
    descricao      TEXT,
    palavras_chave TEXT,
    data_criacao   TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS proposicoes (
    id                     SERIAL PRIMARY KEY,
    numero_projeto         TEXT NOT NULL,
    ementa                 TEXT NOT NULL,
    casa_iniciadora        TEXT NOT NULL,
    forma_apreciacao       TEXT NOT NULL,
    eixo_tematico          TEXT,
    situacao               TEXT NOT NULL,
    cabe_analise           TEXT NOT NULL,
    prazo_analise          TEXT,
    analise_realizada      TEXT NOT NULL,
    documento_analise      TEXT,
    posicionamento_cnm     TEXT NOT NULL,
    prioridade             TEXT NOT NULL,
    observacao             TEXT,
    area_tecnica           TEXT NOT NULL,
    aprovacao_camara       TEXT DEFAULT 'PENDENTE',
    aprovacao_senado       TEXT DEFAULT 'PENDENTE',
    sancionado_presidencia TEXT DEFAULT 'PENDENTE',
    data_criacao           TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
    data_atualizacao       TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_proposicoes_area ON proposicoes (area_tecnica);
`

// Run-log table owned by the ETL, on ClickHouse. Append-only analytics
// stream, never updated in place.
const runLogSQL = `
CREATE TABLE IF NOT EXISTS logs_atualizacao (
    Timestamp          DateTime,
    TipoAtualizacao    String,
    Status             String,
    EventosNovos       Int32,
    EventosAtualizados Int32,
    Detalhes           String
) ENGINE = MergeTree()
ORDER BY Timestamp;
`

// seedAreaData is the CNM technical-area catalog inserted once at schema
// init. Keywords are the comma-separated lists the categorizer scores
// against; catalog order at read time is ORDER BY nome.
var seedAreaData = []models.Area{
	{Name: "Assistência Social e Segurança Alimentar e Nutricional", Description: "Políticas de assistência social e segurança alimentar", Keywords: "assistência social, segurança alimentar, bolsa família, creas, cras"},
	{Name: "Consórcios Públicos", Description: "Gestão de consórcios intermunicipais", Keywords: "consórcio, intermunicipal, associação pública"},
	{Name: "Contabilidade Pública", Description: "Contabilidade e gestão financeira pública", Keywords: "contabilidade, gestão financeira, prestação de contas"},
	{Name: "Cultura", Description: "Políticas culturais e patrimônio", Keywords: "cultura, patrimônio, arte, teatro, museu"},
	{Name: "Defesa Civil", Description: "Proteção e defesa civil", Keywords: "defesa civil, emergência, desastre, calamidade"},
	{Name: "Desenvolvimento Rural", Description: "Desenvolvimento rural e agricultura familiar", Keywords: "desenvolvimento rural, agricultura familiar, assentamento"},
	{Name: "Educação", Description: "Políticas educacionais", Keywords: "educação, escola, creche, ensino fundamental"},
	{Name: "Finanças", Description: "Gestão financeira e tributária", Keywords: "finanças, tributo, imposto, receita"},
	{Name: "Jurídico", Description: "Assuntos jurídicos e legislativos", Keywords: "jurídico, advocacia, processo, legislação"},
	{Name: "Meio Ambiente e Saneamento", Description: "Políticas ambientais e saneamento básico", Keywords: "meio ambiente, saneamento, esgoto, água, resíduos"},
	{Name: "Mulheres", Description: "Políticas para mulheres e igualdade de gênero", Keywords: "mulheres, gênero, igualdade, combate à violência"},
	{Name: "Obras, Transferências e Parcerias", Description: "Obras públicas e parcerias", Keywords: "obras, transferências, parcerias, convênios"},
	{Name: "Orçamento Público", Description: "Orçamento e planejamento público", Keywords: "orçamento, planejamento, lei orçamentária"},
	{Name: "Planejamento Territorial e Habitação", Description: "Planejamento urbano e habitação", Keywords: "planejamento territorial, habitação, urbanismo"},
	{Name: "Previdência", Description: "Previdência social e benefícios", Keywords: "previdência, aposentadoria, benefícios"},
	{Name: "Saúde", Description: "Políticas de saúde pública", Keywords: "saúde, hospital, posto de saúde, atenção básica"},
	{Name: "Transporte e Mobilidade", Description: "Transporte público e mobilidade urbana", Keywords: "transporte, mobilidade, ônibus, metrô"},
	{Name: "Turismo", Description: "Políticas de turismo e lazer", Keywords: "turismo, hotel, pousada, atrativo turístico"},
}
