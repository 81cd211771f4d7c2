package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

func TestCategorizeBatch_FillsAreas(t *testing.T) {
	sel := newTestSelector(t)

	events := []models.Event{
		{ExternalID: "camara_1", Name: "Reforma da escola municipal"},
		{ExternalID: "camara_2", Name: "Mutirão no hospital regional"},
	}
	out := sel.CategorizeBatch(events)

	require.Len(t, out, 2)
	assert.Equal(t, "Educação", out[0].Area)
	assert.Equal(t, "Saúde", out[1].Area)
}

func TestCategorizeBatch_PreservesOrder(t *testing.T) {
	sel := newTestSelector(t)

	events := []models.Event{
		{ExternalID: "a", Name: "Mutirão no hospital"},
		{ExternalID: "b", Name: "Cerimônia de posse", Source: "boletim"},
		{ExternalID: "c", Name: "Reforma da escola"},
	}
	out := sel.CategorizeBatch(events)

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ExternalID)
	assert.Equal(t, "b", out[1].ExternalID)
	assert.Equal(t, "c", out[2].ExternalID)
}

func TestCategorizeBatch_MonotonicOnLowConfidence(t *testing.T) {
	sel := newTestSelector(t)

	// No keyword match and no fallback context: the selector yields
	// nothing, so the previously assigned area must survive.
	events := []models.Event{
		{ExternalID: "x", Name: "Cerimônia de posse", Source: "boletim", Area: "Saúde"},
	}
	out := sel.CategorizeBatch(events)

	require.Len(t, out, 1)
	assert.Equal(t, "Saúde", out[0].Area)
}

func TestCategorizeBatch_LeavesUncategorizableEmpty(t *testing.T) {
	sel := newTestSelector(t)

	out := sel.CategorizeBatch([]models.Event{
		{ExternalID: "x", Name: "", EventType: "Sessão"},
	})

	require.Len(t, out, 1)
	assert.Empty(t, out[0].Area)
}

func TestCategorizeBatch_DoesNotMutateInput(t *testing.T) {
	sel := newTestSelector(t)

	events := []models.Event{{ExternalID: "a", Name: "Reforma da escola"}}
	_ = sel.CategorizeBatch(events)

	assert.Empty(t, events[0].Area)
}

func TestCategorizeOne_MatchesSelect(t *testing.T) {
	sel := newTestSelector(t)

	ev := models.Event{Name: "Audiência sobre a merenda escolar", EventType: "Audiência Pública"}
	assert.Equal(t, sel.Select(ev), sel.CategorizeOne(ev))
}
