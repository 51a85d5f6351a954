package models

// Risk levels reported by the analyzer.
const (
	RiskLevelLow      = "low"
	RiskLevelMedium   = "medium"
	RiskLevelHigh     = "high"
	RiskLevelCritical = "critical"
)

// Risk is a single identified risk and its business impact.
type Risk struct {
	Issue   string `json:"issue"`
	Impact  string `json:"impact"`
	Urgency string `json:"urgency"`
}

// RecommendedAction is a concrete follow-up for a human team.
type RecommendedAction struct {
	Action   string `json:"action"`
	Owner    string `json:"owner"`
	Priority int    `json:"priority"`
}

// RiskAnalysis is the analyzer's assessment of a run. The pipeline treats the
// analyzer as total: it always gets a result, never an error.
type RiskAnalysis struct {
	Summary                 string              `json:"summary"`
	RiskLevel               string              `json:"risk_level"`
	Risks                   []Risk              `json:"risks"`
	RecommendedActions      []RecommendedAction `json:"recommended_actions"`
	EstimatedResolutionTime string              `json:"estimated_resolution_time,omitempty"`
	CanProceedWithWarnings  bool                `json:"can_proceed_with_warnings"`
}
