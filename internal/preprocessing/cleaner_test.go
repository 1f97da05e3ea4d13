package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"lowercases", "PRODUTO EXCELENTE", "produto excelente"},
		{"keeps accents", "Entrega RÁPIDA e ótima", "entrega rápida e ótima"},
		{"strips url", "veja https://example.com/review agora", "veja agora"},
		{"strips bare www", "veja www.example.com agora", "veja agora"},
		{"strips email", "contato suporte@loja.com respondeu", "contato respondeu"},
		{"expands contraction", "vc é top", "você é top"},
		{"expands pq", "não gostei pq quebrou", "não gostei porque quebrou"},
		{"expands pro", "mandei pro suporte", "mandei para o suporte"},
		{"collapses punctuation run", "chegou atrasado!!!", "chegou atrasado"},
		{"keeps single punctuation", "chegou atrasado!", "chegou atrasado!"},
		{"collapses whitespace", "bom   produto \t mesmo", "bom produto mesmo"},
		{"drops symbols", "ótimo produto ®™ recomendo", "ótimo produto recomendo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	samples := []string{
		"",
		"Produto horrível, nunca mais compro!!!",
		"vc não vai se arrepender, veja www.loja.com",
		"Entrega rápida, tá tudo certo né",
		"ótimo!!! recomendo muito... 😀",
	}

	for _, sample := range samples {
		once := Clean(sample)
		assert.Equal(t, once, Clean(once), "clean should be idempotent for %q", sample)
	}
}

func TestTokenize(t *testing.T) {
	t.Run("drops stopwords and short tokens", func(t *testing.T) {
		tokens := Tokenize("o celular chegou muito rapido na loja", true)
		assert.Equal(t, []string{"celular", "rapido"}, tokens)
	})

	t.Run("keeps stopwords when asked", func(t *testing.T) {
		tokens := Tokenize("o celular chegou", false)
		// "o" still falls to the length filter.
		assert.Equal(t, []string{"celular", "chegou"}, tokens)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, Tokenize("", true))
	})
}

func TestExtractEmojis(t *testing.T) {
	assert.Equal(t, []string{"😀👍"}, ExtractEmojis("adorei 😀👍"))
	assert.Empty(t, ExtractEmojis("sem emojis aqui"))
}

func TestWordFrequencies(t *testing.T) {
	texts := []string{
		"celular bom celular rapido",
		"celular rapido demais",
	}

	freqs := WordFrequencies(texts, 2)

	assert.Len(t, freqs, 2)
	assert.Equal(t, "celular", freqs[0].Word)
	assert.Equal(t, 3, freqs[0].Count)
	assert.Equal(t, "rapido", freqs[1].Word)
	assert.Equal(t, 2, freqs[1].Count)
}
