package models

type OpportunityLevel string

const (
	OpportunityNone   OpportunityLevel = "sem_oportunidade"
	OpportunityLow    OpportunityLevel = "baixa_oportunidade"
	OpportunityMedium OpportunityLevel = "media_oportunidade"
	OpportunityHigh   OpportunityLevel = "alta_oportunidade"
)

type OpportunityType string

const (
	TypeUpsell      OpportunityType = "upsell"
	TypeCrossSell   OpportunityType = "cross_sell"
	TypeLoyalty     OpportunityType = "fidelidade"
	TypeAdvocate    OpportunityType = "advogado_marca"
	TypeExceptional OpportunityType = "satisfacao_excepcional"
)

// OpportunitySignal keys the per-signal match counts.
type OpportunitySignal string

const (
	SignalUpsell      OpportunitySignal = "upsell"
	SignalCrossSell   OpportunitySignal = "cross_sell"
	SignalLoyalty     OpportunitySignal = "loyalty"
	SignalAdvocate    OpportunitySignal = "brand_advocate"
	SignalExceptional OpportunitySignal = "exceptional_satisfaction"
)

type CustomerProfile string

const (
	ProfileCommon          CustomerProfile = "cliente_comum"
	ProfileSatisfied       CustomerProfile = "cliente_satisfeito"
	ProfileHighlySatisfied CustomerProfile = "altamente_satisfeito"
	ProfileLoyal           CustomerProfile = "cliente_fiel"
	ProfileAdvocate        CustomerProfile = "advogado_marca"
)

type OpportunityResult struct {
	OpportunityScore float64                   `json:"opportunity_score"`
	OpportunityLevel OpportunityLevel          `json:"opportunity_level"`
	OpportunityTypes []OpportunityType         `json:"opportunity_types"`
	CustomerProfile  CustomerProfile           `json:"customer_profile"`
	SignalsDetected  map[OpportunitySignal]int `json:"signals_detected"`
	IsHighValue      bool                      `json:"is_high_value"`
}

type OpportunityStatistics struct {
	TotalReviews      int     `json:"total_avaliacoes"`
	HighOpportunity   int     `json:"alta_oportunidade"`
	MediumOpportunity int     `json:"media_oportunidade"`
	LowOpportunity    int     `json:"baixa_oportunidade"`
	NoOpportunity     int     `json:"sem_oportunidade"`
	PctHigh           float64 `json:"percentual_alta_oportunidade"`
	BrandAdvocates    int     `json:"advogados_marca"`
	LoyalCustomers    int     `json:"clientes_fieis"`
	MeanScore         float64 `json:"score_medio"`
}

// ScoredOpportunity pairs a review with its opportunity result for top-N listings.
type ScoredOpportunity struct {
	Review      Review            `json:"review"`
	Opportunity OpportunityResult `json:"opportunity"`
}
