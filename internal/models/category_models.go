package models

// CategoryOther is returned when no category keyword matches the text.
const CategoryOther = "Outros"

type CategoryResult struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}
