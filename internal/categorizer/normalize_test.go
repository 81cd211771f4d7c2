package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchText_JoinsFieldsInOrder(t *testing.T) {
	text := SearchText("Sessão Deliberativa", "Orçamento", "Sessão", "Plenário", "camara")
	assert.Equal(t, "sessão deliberativa orçamento sessão plenário camara", text)
}

func TestSearchText_SkipsEmptyFields(t *testing.T) {
	text := SearchText("Reunião Ordinária", "", "", "Sala 2", "")
	assert.Equal(t, "reunião ordinária sala 2", text)
}

func TestSearchText_AllEmpty(t *testing.T) {
	assert.Equal(t, "", SearchText("", "", "", "", ""))
}

func TestStripAccents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"educação", "educacao"},
		{"saúde", "saude"},
		{"ção ã é í õ ü", "cao a e i o u"},
		{"Plenário", "Plenario"},
		{"sem acento", "sem acento"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripAccents(tt.in), "input %q", tt.in)
	}
}
