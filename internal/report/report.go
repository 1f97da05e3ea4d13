// Package report renders a dataset summary as a Markdown document and as
// HTML for the dashboard.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Markdown writes the aggregate summary as a Markdown report.
func Markdown(summary models.Summary) string {
	var b strings.Builder

	b.WriteString("# Análise de Avaliações\n\n")
	fmt.Fprintf(&b, "Total de avaliações: **%d**\n\n", summary.TotalReviews)

	if summary.TotalReviews == 0 {
		b.WriteString("Nenhuma avaliação no dataset.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Nota média: **%.2f** | Confiança média de categoria: **%.2f**\n\n",
		summary.MeanRating, summary.MeanConfidence)

	b.WriteString("## Sentimentos\n\n")
	for _, sentiment := range []models.Sentiment{models.SentimentPositive, models.SentimentNegative} {
		fmt.Fprintf(&b, "- %s: %d\n", sentiment, summary.SentimentCounts[sentiment])
	}
	b.WriteString("\n")

	b.WriteString("## Categorias\n\n")
	for _, name := range sortedKeys(summary.Categories) {
		fmt.Fprintf(&b, "- %s: %d\n", name, summary.Categories[name])
	}
	b.WriteString("\n")

	b.WriteString("## Risco de Churn\n\n")
	fmt.Fprintf(&b, "- Alto risco: %d (%.1f%%)\n", summary.Churn.HighRisk, summary.Churn.PctHighRisk)
	fmt.Fprintf(&b, "- Médio risco: %d (%.1f%%)\n", summary.Churn.MediumRisk, summary.Churn.PctMediumRisk)
	fmt.Fprintf(&b, "- Baixo risco: %d\n", summary.Churn.LowRisk)
	fmt.Fprintf(&b, "- Sem risco: %d\n", summary.Churn.NoRisk)
	fmt.Fprintf(&b, "- Score médio: %.2f\n\n", summary.Churn.MeanScore)

	b.WriteString("## Oportunidades\n\n")
	fmt.Fprintf(&b, "- Alta oportunidade: %d (%.1f%%)\n",
		summary.Opportunity.HighOpportunity, summary.Opportunity.PctHigh)
	fmt.Fprintf(&b, "- Média oportunidade: %d\n", summary.Opportunity.MediumOpportunity)
	fmt.Fprintf(&b, "- Advogados da marca: %d | Clientes fiéis: %d\n",
		summary.Opportunity.BrandAdvocates, summary.Opportunity.LoyalCustomers)
	fmt.Fprintf(&b, "- Score médio: %.2f\n\n", summary.Opportunity.MeanScore)

	if len(summary.TopOpportunities) > 0 {
		b.WriteString("## Top Oportunidades\n\n")
		for i, scored := range summary.TopOpportunities {
			fmt.Fprintf(&b, "%d. [%.2f] (%s) %s\n",
				i+1,
				scored.Opportunity.OpportunityScore,
				scored.Opportunity.CustomerProfile,
				truncate(scored.Review.Text, 120))
		}
		b.WriteString("\n")
	}

	if len(summary.CriticalReviews) > 0 {
		b.WriteString("## Avaliações Críticas\n\n")
		for i, analysis := range summary.CriticalReviews {
			fmt.Fprintf(&b, "%d. [%.2f] %s\n",
				i+1,
				analysis.Churn.ChurnScore,
				truncate(analysis.Text, 120))
		}
		b.WriteString("\n")
	}

	if len(summary.TopWords) > 0 {
		b.WriteString("## Termos Frequentes\n\n")
		for _, wc := range summary.TopWords {
			fmt.Fprintf(&b, "- %s (%d)\n", wc.Word, wc.Count)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML renders the Markdown report to HTML.
func HTML(summary models.Summary) []byte {
	return blackfriday.Run([]byte(Markdown(summary)))
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
