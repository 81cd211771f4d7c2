package categorizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ThemeRule maps one area to the terms that imply it. Rules are scanned in
// slice order and the first hit wins, so the order in the table (or in an
// override file) is part of the contract.
type ThemeRule struct {
	Area  string   `yaml:"area"`
	Terms []string `yaml:"terms"`
}

// Rules holds the domain-data tables the engine consults: the synonym
// table used by the related-term matcher and the two theme tables used by
// the contextual fallback. They are data, not logic, and can be replaced
// wholesale from a YAML file without touching the engine.
type Rules struct {
	Synonyms        map[string][]string `yaml:"synonyms"`
	HearingThemes   []ThemeRule         `yaml:"hearing_themes"`
	CommitteeThemes []ThemeRule         `yaml:"committee_themes"`
}

// DefaultRules returns the built-in tables.
func DefaultRules() *Rules {
	return &Rules{
		Synonyms: map[string][]string{
			"educação":       {"escola", "universidade", "ensino", "aluno", "professor"},
			"saúde":          {"hospital", "medicamento", "vacina", "doença", "tratamento"},
			"meio ambiente":  {"sustentabilidade", "poluição", "natureza", "ecologia"},
			"economia":       {"finanças", "orçamento", "imposto", "dinheiro", "mercado"},
			"segurança":      {"polícia", "crime", "violência", "proteção"},
			"infraestrutura": {"obra", "construção", "transporte", "estrada"},
			"cultura":        {"arte", "teatro", "museu", "patrimônio"},
			"esporte":        {"atividade física", "competição", "treino"},
			"tecnologia":     {"digital", "inovação", "software", "internet"},
		},
		HearingThemes: []ThemeRule{
			{Area: "Educação", Terms: []string{"educação", "escola", "universidade", "ensino"}},
			{Area: "Saúde", Terms: []string{"saúde", "hospital", "medicamento", "vacina"}},
			{Area: "Meio Ambiente e Saneamento", Terms: []string{"meio ambiente", "saneamento", "água", "esgoto"}},
			{Area: "Transporte e Mobilidade", Terms: []string{"transporte", "mobilidade", "trânsito"}},
			{Area: "Finanças", Terms: []string{"finanças", "orçamento", "imposto", "tributo"}},
			{Area: "Jurídico", Terms: []string{"jurídico", "legislação", "lei", "direito"}},
		},
		CommitteeThemes: []ThemeRule{
			{Area: "Educação", Terms: []string{"educação", "cultura", "esporte"}},
			{Area: "Saúde", Terms: []string{"saúde", "previdência"}},
			{Area: "Meio Ambiente e Saneamento", Terms: []string{"meio ambiente", "agricultura"}},
			{Area: "Finanças", Terms: []string{"finanças", "orçamento", "tributação"}},
			{Area: "Jurídico", Terms: []string{"constituição", "justiça", "cidadania"}},
			{Area: "Transporte e Mobilidade", Terms: []string{"transporte", "infraestrutura"}},
		},
	}
}

// LoadRules reads rule tables from a YAML file. An empty path returns the
// defaults. Sections missing from the file keep their default contents, so
// an override file only needs the table it changes.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()

	clean := strings.TrimSpace(path)
	if clean == "" {
		return rules, nil
	}

	data, err := os.ReadFile(filepath.Clean(clean))
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var override Rules
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", clean, err)
	}

	if len(override.Synonyms) > 0 {
		rules.Synonyms = override.Synonyms
	}
	if len(override.HearingThemes) > 0 {
		rules.HearingThemes = override.HearingThemes
	}
	if len(override.CommitteeThemes) > 0 {
		rules.CommitteeThemes = override.CommitteeThemes
	}
	return rules, nil
}
