package models

type RiskLevel string

const (
	RiskNone   RiskLevel = "sem_risco"
	RiskLow    RiskLevel = "baixo_risco"
	RiskMedium RiskLevel = "medio_risco"
	RiskHigh   RiskLevel = "alto_risco"
)

// Severity buckets churn-signal phrases by weight.
type Severity string

const (
	SeverityHigh   Severity = "alta_gravidade"
	SeverityMedium Severity = "media_gravidade"
	SeverityLow    Severity = "baixa_gravidade"
)

// ProblemAspect tags the part of the shopping experience a complaint targets.
type ProblemAspect string

const (
	AspectQuality  ProblemAspect = "qualidade"
	AspectDelivery ProblemAspect = "entrega"
	AspectService  ProblemAspect = "atendimento"
	AspectPrice    ProblemAspect = "preco"
)

type ChurnResult struct {
	ChurnScore      float64          `json:"churn_score"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	ProblemAspects  []ProblemAspect  `json:"problem_aspects"`
	MainReasons     []string         `json:"main_reasons"`
	SignalsDetected map[Severity]int `json:"signals_detected"`
	IsCritical      bool             `json:"is_critical"`
}

type ChurnStatistics struct {
	TotalReviews  int     `json:"total_avaliacoes"`
	HighRisk      int     `json:"alto_risco"`
	MediumRisk    int     `json:"medio_risco"`
	LowRisk       int     `json:"baixo_risco"`
	NoRisk        int     `json:"sem_risco"`
	PctHighRisk   float64 `json:"percentual_alto_risco"`
	PctMediumRisk float64 `json:"percentual_medio_risco"`
	MeanScore     float64 `json:"score_medio"`
}
