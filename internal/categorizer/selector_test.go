package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

func testAreas() []models.Area {
	return []models.Area{
		{Name: "Educação", Description: "Políticas educacionais", Keywords: "educação,escola,ensino"},
		{Name: "Saúde", Description: "Políticas de saúde pública", Keywords: "saúde,hospital"},
	}
}

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	sel, err := NewSelector(testAreas(), DefaultRules(), DefaultThreshold)
	require.NoError(t, err)
	return sel
}

func TestNewSelector_EmptyCatalog(t *testing.T) {
	_, err := NewSelector(nil, DefaultRules(), DefaultThreshold)
	assert.ErrorIs(t, err, ErrNoUsableAreas)
}

func TestNewSelector_NoUsableKeywords(t *testing.T) {
	areas := []models.Area{
		{Name: "Vazia", Keywords: ""},
		{Name: "Só Vírgulas", Keywords: ", ,"},
	}
	_, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	assert.ErrorIs(t, err, ErrNoUsableAreas)
}

func TestNewSelector_SnapshotsCatalog(t *testing.T) {
	areas := testAreas()
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	ev := models.Event{Name: "Reforma da escola municipal"}
	require.Equal(t, "Educação", sel.Select(ev))

	// Mutating the caller's slice must not affect the selector.
	areas[0].Keywords = "turismo"
	assert.Equal(t, "Educação", sel.Select(ev))
}

func TestSelect_EmptyNameGuard(t *testing.T) {
	sel := newTestSelector(t)

	// The guard fires before scoring and before any fallback, even when
	// other fields would classify confidently.
	assert.Empty(t, sel.Select(models.Event{Name: "", EventType: "Sessão"}))
	assert.Empty(t, sel.Select(models.Event{Name: "   ", Location: "Plenário"}))
}

func TestSelect_KeywordScoreWins(t *testing.T) {
	sel := newTestSelector(t)

	ev := models.Event{
		Name:      "Audiência sobre financiamento da escola municipal",
		EventType: "Audiência Pública",
	}
	assert.Equal(t, "Educação", sel.Select(ev))
}

func TestSelect_Idempotent(t *testing.T) {
	sel := newTestSelector(t)

	ev := models.Event{Name: "Mutirão de vacinação no hospital regional"}
	first := sel.Select(ev)
	second := sel.Select(ev)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSelect_AccentInsensitive(t *testing.T) {
	areas := []models.Area{{Name: "Educação", Keywords: "educacao"}}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	// Accented text against an unaccented keyword.
	assert.Equal(t, "Educação", sel.Select(models.Event{Name: "Plano de educação municipal"}))

	areas = []models.Area{{Name: "Educação", Keywords: "educação"}}
	sel, err = NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	// Unaccented text against an accented keyword.
	assert.Equal(t, "Educação", sel.Select(models.Event{Name: "Plano de educacao municipal"}))
}

func TestSelect_TieBreakIsCatalogOrder(t *testing.T) {
	areas := []models.Area{
		{Name: "Primeira", Keywords: "orçamento"},
		{Name: "Segunda", Keywords: "orçamento"},
	}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	ev := models.Event{Name: "Discussão do orçamento anual"}
	for range 10 {
		assert.Equal(t, "Primeira", sel.Select(ev))
	}
}

func TestSelect_ThresholdBoundaryIsInclusive(t *testing.T) {
	areas := []models.Area{{Name: "Educação", Keywords: "educação"}}
	// "escola" only hits the related tier, scoring exactly 0.5.
	sel, err := NewSelector(areas, DefaultRules(), 0.5)
	require.NoError(t, err)

	assert.Equal(t, "Educação", sel.Select(models.Event{Name: "Visita à escola"}))
}

func TestSelect_BelowThresholdWithoutFallbackContext(t *testing.T) {
	sel := newTestSelector(t)

	// No keyword hits, no event type, no location, unknown source.
	ev := models.Event{Name: "Cerimônia de posse", Source: "diário oficial"}
	assert.Empty(t, sel.Select(ev))
}

func TestFallback_HearingSubClassification(t *testing.T) {
	// Catalog that cannot score this event, forcing the fallback path.
	areas := []models.Area{{Name: "Turismo", Keywords: "turismo,hotel"}}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	ev := models.Event{
		Name:      "Audiência sobre a rede de hospitais",
		EventType: "Audiência Pública",
	}
	assert.Equal(t, "Saúde", sel.Select(ev))
}

func TestFallback_HearingDefaultsToJuridico(t *testing.T) {
	areas := []models.Area{{Name: "Turismo", Keywords: "turismo"}}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	ev := models.Event{Name: "Encontro com prefeitos", EventType: "Audiência Pública"}
	assert.Equal(t, "Jurídico", sel.Select(ev))
}

func TestFallback_PlenarySessionIsJuridico(t *testing.T) {
	areas := []models.Area{{Name: "Turismo", Keywords: "turismo"}}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	ev := models.Event{Name: "Ordem do Dia", EventType: "Sessão Deliberativa"}
	assert.Equal(t, "Jurídico", sel.Select(ev))
}

func TestFallback_CommitteeMeetingScansThemes(t *testing.T) {
	areas := []models.Area{{Name: "Turismo", Keywords: "turismo"}}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	ev := models.Event{Name: "Discussão da tributação municipal", EventType: "Reunião"}
	assert.Equal(t, "Finanças", sel.Select(ev))
}

func TestFallback_CommitteeMeetingDefaultsToJuridico(t *testing.T) {
	sel := newTestSelector(t)

	ev := models.Event{Name: "Reunião Geral", EventType: "Reunião", Location: "Sala 4"}
	assert.Equal(t, "Jurídico", sel.Select(ev))
}

func TestFallback_LocationPlenario(t *testing.T) {
	areas := []models.Area{{Name: "Turismo", Keywords: "turismo"}}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	ev := models.Event{Name: "Homenagem aos municípios", Location: "Plenário Ulysses Guimarães"}
	assert.Equal(t, "Jurídico", sel.Select(ev))
}

func TestFallback_LocationComissaoUsesCommitteeThemes(t *testing.T) {
	areas := []models.Area{{Name: "Turismo", Keywords: "turismo"}}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	ev := models.Event{Name: "Debate sobre previdência dos servidores", Location: "Comissão de Assuntos Sociais"}
	assert.Equal(t, "Saúde", sel.Select(ev))
}

func TestFallback_KnownSourceDefaultsToJuridico(t *testing.T) {
	areas := []models.Area{{Name: "Turismo", Keywords: "turismo"}}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	assert.Equal(t, "Jurídico", sel.Select(models.Event{Name: "Agenda do dia", Source: "camara"}))
	assert.Equal(t, "Jurídico", sel.Select(models.Event{Name: "Agenda do dia", Source: "senado"}))
	assert.Empty(t, sel.Select(models.Event{Name: "Agenda do dia", Source: "boletim"}))
}

func TestFallback_AccentsInTypeAndLocation(t *testing.T) {
	areas := []models.Area{{Name: "Turismo", Keywords: "turismo"}}
	sel, err := NewSelector(areas, DefaultRules(), DefaultThreshold)
	require.NoError(t, err)

	// Feeds without accents must take the same fallback branches.
	assert.Equal(t, "Jurídico", sel.Select(models.Event{Name: "Ordem do Dia", EventType: "Sessao Solene"}))
	assert.Equal(t, "Jurídico", sel.Select(models.Event{Name: "Homenagem", Location: "Plenario 2"}))
}
