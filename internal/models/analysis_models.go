package models

// ReviewAnalysis is the full per-review scoring record published downstream.
type ReviewAnalysis struct {
	Review
	CleanedText string            `json:"cleaned_text"`
	Category    CategoryResult    `json:"category_result"`
	Churn       ChurnResult       `json:"churn_analysis"`
	Opportunity OpportunityResult `json:"opportunity_analysis"`
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Summary is the dataset-level reduction consumed by the dashboard.
type Summary struct {
	TotalReviews     int                   `json:"total_avaliacoes"`
	MeanRating       float64               `json:"nota_media"`
	RatingHistogram  map[int]int           `json:"distribuicao_notas"`
	SentimentCounts  map[Sentiment]int     `json:"distribuicao_sentimentos"`
	Categories       map[string]int        `json:"distribuicao_categorias"`
	MeanConfidence   float64               `json:"confianca_media"`
	Churn            ChurnStatistics       `json:"churn"`
	Opportunity      OpportunityStatistics `json:"oportunidades"`
	TopOpportunities []ScoredOpportunity   `json:"top_oportunidades"`
	CriticalReviews  []ReviewAnalysis      `json:"avaliacoes_criticas"`
	TopWords         []WordCount           `json:"termos_frequentes"`
	Emojis           []string              `json:"emojis"`
}
