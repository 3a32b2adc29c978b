//go:build unit

package slug_test

import (
	"strings"
	"testing"

	"oficina-criativa/internal/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestFallback(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Curso Extra! 2024", expected: "curso-extra-2024"},
		{name: "leading plus stripped", input: "+5000 Atividades", expected: "5000-atividades"},
		{name: "whitespace runs collapse", input: "  Kit   Sala \t de  Aula ", expected: "kit-sala-de-aula"},
		{name: "existing hyphens kept", input: "pre-escolar", expected: "pre-escolar"},
		{name: "empty input", input: "", expected: ""},
		{name: "only stripped characters", input: "!!!???", expected: ""},
		{name: "accents are stripped not transliterated", input: "Alfabetização", expected: "alfabetizao"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slug.Fallback(tc.input))
		})
	}

	t.Run("never exceeds max length", func(t *testing.T) {
		long := strings.Repeat("abc ", 100)
		got := slug.Fallback(long)
		assert.LessOrEqual(t, len(got), slug.MaxLength)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, slug.Fallback("Moldes Novos!"), slug.Fallback("Moldes Novos!"))
	})
}
