package models

import "time"

// Stage marks the pipeline position of a workflow run, for diagnostics only.
type Stage string

const (
	StageInitializing       Stage = "initializing"
	StageFetchingCRM        Stage = "fetching_crm"
	StageFetchingContract   Stage = "fetching_contract"
	StageFetchingBilling    Stage = "fetching_billing"
	StageValidating         Stage = "validating"
	StageAnalyzingRisk      Stage = "analyzing_risk"
	StageBlocked            Stage = "blocked"
	StageEscalationRequired Stage = "escalation_required"
	StageReadyToProvision   Stage = "ready_to_provision"
	StageProvisioning       Stage = "provisioning"
	StageProvisioned        Stage = "provisioned"
	StageNotifying          Stage = "sending_notifications"
	StageComplete           Stage = "complete"
)

// Decision is the ternary outcome of a workflow run.
type Decision string

const (
	DecisionPending  Decision = "PENDING"
	DecisionProceed  Decision = "PROCEED"
	DecisionEscalate Decision = "ESCALATE"
	DecisionBlock    Decision = "BLOCK"
)

// Action is one entry in the run's audit trail of side effects.
type Action struct {
	Type    string            `json:"type"`
	Details map[string]string `json:"details,omitempty"`
}

// SentNotification records a notification dispatched during the run.
type SentNotification struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// WorkflowState is the single record threaded through every pipeline stage.
// Each field is written by exactly one stage in pipeline order; the pipeline
// owns the state exclusively for the duration of one run and hands back the
// final snapshot to the caller.
type WorkflowState struct {
	AccountID     string `json:"account_id"`
	CorrelationID string `json:"correlation_id"`
	EventType     string `json:"event_type"`

	Stage Stage `json:"stage"`

	// Fetched entities. nil means absent: either genuinely not found or the
	// fetch failed (in which case an ErrorRecord explains why).
	Account     *Account     `json:"account,omitempty"`
	User        *User        `json:"user,omitempty"`
	Opportunity *Opportunity `json:"opportunity,omitempty"`
	Contract    *Contract    `json:"contract,omitempty"`
	Invoice     *Invoice     `json:"invoice,omitempty"`

	APIErrors  []ErrorRecord       `json:"api_errors,omitempty"`
	Violations map[string][]string `json:"violations"`
	Warnings   map[string][]string `json:"warnings"`

	Decision     Decision         `json:"decision"`
	RiskAnalysis *RiskAnalysis    `json:"risk_analysis,omitempty"`
	Provisioning *ProvisionResult `json:"provisioning,omitempty"`

	ActionsTaken      []Action           `json:"actions_taken"`
	NotificationsSent []SentNotification `json:"notifications_sent"`
	Summary           string             `json:"summary,omitempty"`

	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// AddViolation records a blocking rule finding for a domain.
func (s *WorkflowState) AddViolation(domain, msg string) {
	if s.Violations == nil {
		s.Violations = map[string][]string{}
	}
	s.Violations[domain] = append(s.Violations[domain], msg)
}

// AddWarning records a non-blocking rule finding for a domain.
func (s *WorkflowState) AddWarning(domain, msg string) {
	if s.Warnings == nil {
		s.Warnings = map[string][]string{}
	}
	s.Warnings[domain] = append(s.Warnings[domain], msg)
}

// RecordAPIError appends a collaborator failure, stamping the current stage.
func (s *WorkflowState) RecordAPIError(rec ErrorRecord) {
	rec.Stage = s.Stage
	s.APIErrors = append(s.APIErrors, rec)
}

// RecordAction appends an audit-trail entry for a side effect.
func (s *WorkflowState) RecordAction(actionType string, details map[string]string) {
	s.ActionsTaken = append(s.ActionsTaken, Action{Type: actionType, Details: details})
}

// RecordNotification appends an audit-trail entry for a dispatched notification.
func (s *WorkflowState) RecordNotification(channel, recipient, message string) {
	s.NotificationsSent = append(s.NotificationsSent, SentNotification{
		Channel:   channel,
		Recipient: recipient,
		Message:   message,
	})
}

// ViolationCount is the total number of violations across all domains.
func (s *WorkflowState) ViolationCount() int {
	n := 0
	for _, msgs := range s.Violations {
		n += len(msgs)
	}
	return n
}

// WarningCount is the total number of warnings across all domains.
func (s *WorkflowState) WarningCount() int {
	n := 0
	for _, msgs := range s.Warnings {
		n += len(msgs)
	}
	return n
}

// AccountName returns the display name for notifications and reports,
// falling back to the account ID when the account record is absent.
func (s *WorkflowState) AccountName() string {
	if s.Account != nil && s.Account.Name != "" {
		return s.Account.Name
	}
	return s.AccountID
}
