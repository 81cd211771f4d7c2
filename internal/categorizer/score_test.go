package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{"plain list", "educação,escola,ensino", []string{"educação", "escola", "ensino"}},
		{"trims and lowers", " Educação , Escola ", []string{"educação", "escola"}},
		{"drops empties", "saúde,,hospital,", []string{"saúde", "hospital"}},
		{"empty string", "", nil},
		{"only commas", ",,,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitKeywords(tt.csv)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_ExactMatch(t *testing.T) {
	area := models.Area{Name: "Educação", Keywords: "educação,escola,ensino"}
	// One exact hit out of three keywords.
	score := Score(DefaultRules(), "debate sobre a escola municipal", area)
	assert.InDelta(t, 1.0/3.0, score, 1e-9)
}

func TestScore_VariationMatch_AccentStripped(t *testing.T) {
	area := models.Area{Name: "Educação", Keywords: "educacao"}
	// Keyword has no accent, text does: only the variation tier can hit.
	score := Score(DefaultRules(), "política de educação básica", area)
	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestScore_VariationMatch_Radical(t *testing.T) {
	area := models.Area{Name: "Obras", Keywords: "construção"}
	// "construcao" is absent but its radical "cons" appears in "construir".
	score := Score(DefaultRules(), "plano para construir novas creches", area)
	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestScore_RelatedMatch(t *testing.T) {
	area := models.Area{Name: "Educação", Keywords: "educação"}
	// No exact or variation hit; "escola" is a related term for "educação".
	score := Score(DefaultRules(), "visita dos alunos escola estadual", area)
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestScore_FirstTierWins_NoDoubleCounting(t *testing.T) {
	area := models.Area{Name: "Educação", Keywords: "escola"}
	// Exact hit must contribute 1.0 even though variation would also match.
	score := Score(DefaultRules(), "reforma da escola e das escolas rurais", area)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScore_NoKeywords(t *testing.T) {
	area := models.Area{Name: "Vazia", Keywords: " , ,"}
	assert.Zero(t, Score(DefaultRules(), "qualquer texto", area))
}

func TestScore_NoMatches(t *testing.T) {
	area := models.Area{Name: "Turismo", Keywords: "turismo,hotel,pousada"}
	assert.Zero(t, Score(DefaultRules(), "sessão deliberativa ordinária", area))
}

func TestScore_MixedTiers(t *testing.T) {
	area := models.Area{Name: "Saúde", Keywords: "saúde,hospital,vacina,zzz"}
	// saúde exact (1.0) + hospital exact (1.0) + vacina/zzz miss.
	score := Score(DefaultRules(), "saúde no hospital regional", area)
	assert.InDelta(t, 2.0/4.0, score, 1e-9)
}

func TestScore_MultiWordKeywordPhrase(t *testing.T) {
	area := models.Area{Name: "Meio Ambiente e Saneamento", Keywords: "meio ambiente,saneamento"}
	score := Score(DefaultRules(), "política nacional de meio ambiente", area)
	assert.InDelta(t, 1.0/2.0, score, 1e-9)
}

func TestScore_RelatedMatchForPhraseKeyword(t *testing.T) {
	area := models.Area{Name: "Meio Ambiente e Saneamento", Keywords: "meio ambiente"}
	// "sustentabilidade" is a related term for "meio ambiente".
	score := Score(DefaultRules(), "fórum de sustentabilidade urbana", area)
	assert.InDelta(t, 0.5, score, 1e-9)
}
