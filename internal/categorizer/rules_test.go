package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	assert.Contains(t, rules.Synonyms, "educação")
	assert.Contains(t, rules.Synonyms["educação"], "escola")
	require.NotEmpty(t, rules.HearingThemes)
	require.NotEmpty(t, rules.CommitteeThemes)

	// Both fallback tables end at Jurídico territory only via the scan
	// default, so Jurídico must be a known area in each.
	var hearingHasJuridico, committeeHasJuridico bool
	for _, r := range rules.HearingThemes {
		if r.Area == "Jurídico" {
			hearingHasJuridico = true
		}
	}
	for _, r := range rules.CommitteeThemes {
		if r.Area == "Jurídico" {
			committeeHasJuridico = true
		}
	}
	assert.True(t, hearingHasJuridico)
	assert.True(t, committeeHasJuridico)
}

func TestLoadRules_EmptyPathReturnsDefaults(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules)
}

func TestLoadRules_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `synonyms:
  habitação:
    - moradia
    - aluguel social
hearing_themes:
  - area: Planejamento Territorial e Habitação
    terms:
      - habitação
      - moradia
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	// Overridden sections replaced wholesale.
	assert.Equal(t, []string{"moradia", "aluguel social"}, rules.Synonyms["habitação"])
	assert.NotContains(t, rules.Synonyms, "educação")
	require.Len(t, rules.HearingThemes, 1)
	assert.Equal(t, "Planejamento Territorial e Habitação", rules.HearingThemes[0].Area)

	// Untouched section keeps its defaults.
	assert.Equal(t, DefaultRules().CommitteeThemes, rules.CommitteeThemes)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRules_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("synonyms: [broken"), 0o644))

	_, err := LoadRules(path)
	assert.Error(t, err)
}
