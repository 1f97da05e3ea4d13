package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/reviewpulse/internal/models"
)

func TestParseCSV(t *testing.T) {
	data := `avaliacao,nota,sentimento,review_id
"Produto excelente, recomendo",5,positivo,rev-001
"Chegou quebrado",1,negativo,rev-002
`

	reviews, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, "rev-001", reviews[0].ReviewID)
	assert.Equal(t, "Produto excelente, recomendo", reviews[0].Text)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, models.SentimentPositive, reviews[0].Sentiment)

	assert.Equal(t, "rev-002", reviews[1].ReviewID)
	assert.Equal(t, models.SentimentNegative, reviews[1].Sentiment)
}

func TestParseCSV_GeneratesMissingIDs(t *testing.T) {
	data := `avaliacao,nota,sentimento
"Produto bom",4,positivo
"Produto ruim",2,negativo
`

	reviews, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.NotEmpty(t, reviews[0].ReviewID)
	assert.NotEmpty(t, reviews[1].ReviewID)
	assert.NotEqual(t, reviews[0].ReviewID, reviews[1].ReviewID)
}

func TestParseCSV_ClampsRatings(t *testing.T) {
	data := `avaliacao,nota,sentimento
"Nota fora da escala",9,positivo
"Nota zero",0,negativo
`

	reviews, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, models.MaxRating, reviews[0].Rating)
	assert.Equal(t, models.MinRating, reviews[1].Rating)
}

func TestParseCSV_SkipsUnparseableRatings(t *testing.T) {
	data := `avaliacao,nota,sentimento
"Nota quebrada",abc,positivo
"Nota boa",4,positivo
`

	reviews, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Nota boa", reviews[0].Text)
}

func TestParseCSV_MissingRequiredColumn(t *testing.T) {
	data := `avaliacao,sentimento
"Sem nota",positivo
`

	_, err := ParseCSV(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nota")
}

func TestParseCSV_HeaderIsCaseInsensitive(t *testing.T) {
	data := `Avaliacao, Nota ,Sentimento
"Produto bom",4,positivo
`

	reviews, err := ParseCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}
