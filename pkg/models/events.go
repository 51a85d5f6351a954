package models

// TriggerEvent is the payload that starts an onboarding run, typically posted
// by the CRM when an opportunity closes won.
type TriggerEvent struct {
	EventType     string `json:"event_type"`
	AccountID     string `json:"account_id"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// OnboardingResponse is the webhook response for one completed run.
type OnboardingResponse struct {
	CorrelationID      string              `json:"correlation_id"`
	AccountID          string              `json:"account_id"`
	Decision           Decision            `json:"decision"`
	Stage              Stage               `json:"stage"`
	RiskLevel          string              `json:"risk_level,omitempty"`
	Summary            string              `json:"summary,omitempty"`
	Violations         map[string][]string `json:"violations"`
	Warnings           map[string][]string `json:"warnings"`
	APIErrors          []ErrorRecord       `json:"api_errors,omitempty"`
	ActionsTaken       []Action            `json:"actions_taken"`
	NotificationsSent  []SentNotification  `json:"notifications_sent"`
	RecommendedActions []RecommendedAction `json:"recommended_actions,omitempty"`
	Provisioning       *ProvisionResult    `json:"provisioning,omitempty"`
}

// TaskUpdateRequest is the payload for a task status change.
type TaskUpdateRequest struct {
	Status      TaskStatus `json:"status"`
	CompletedBy string     `json:"completed_by,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}
