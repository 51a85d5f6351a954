// Package engine runs the onboarding pipeline. A run is a fixed sequence of
// stages over one WorkflowState: fetch from the external systems, validate,
// analyze risk, decide, then act on the decision. The pipeline itself never
// fails; every collaborator problem is captured on the state and folded into
// the final decision.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"onboarding-agent/internal/integrations"
	"onboarding-agent/internal/logging"
	"onboarding-agent/internal/notify"
	"onboarding-agent/internal/provisioning"
	"onboarding-agent/internal/risk"
	"onboarding-agent/pkg/models"
)

// Engine wires the pipeline stages to their collaborators.
type Engine struct {
	crm         integrations.CRMClient
	contracts   integrations.ContractClient
	billing     integrations.BillingClient
	analyzer    risk.Analyzer
	provisioner *provisioning.Service
	notifier    *notify.Service
	logger      *logging.Logger
	now         func() time.Time
}

// New creates an Engine.
func New(
	crm integrations.CRMClient,
	contracts integrations.ContractClient,
	billing integrations.BillingClient,
	analyzer risk.Analyzer,
	provisioner *provisioning.Service,
	notifier *notify.Service,
	logger *logging.Logger,
) *Engine {
	return &Engine{
		crm:         crm,
		contracts:   contracts,
		billing:     billing,
		analyzer:    analyzer,
		provisioner: provisioner,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// SetClock overrides the time source, for tests.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Run executes one onboarding run for the event and returns the final state.
// A missing correlation ID is generated so every run is traceable.
func (e *Engine) Run(ctx context.Context, event models.TriggerEvent) *models.WorkflowState {
	correlationID := event.CorrelationID
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	state := &models.WorkflowState{
		AccountID:     event.AccountID,
		CorrelationID: correlationID,
		EventType:     event.EventType,
		Stage:         models.StageInitializing,
		Decision:      models.DecisionPending,
		Violations:    map[string][]string{},
		Warnings:      map[string][]string{},
		StartedAt:     e.now().UTC(),
	}

	e.logger.Info("onboarding run started",
		"account_id", state.AccountID,
		"correlation_id", state.CorrelationID,
		"event_type", state.EventType)

	e.fetchCRM(ctx, state)
	e.fetchContract(ctx, state)
	e.fetchBilling(ctx, state)
	e.validate(state)
	e.analyzeRisk(ctx, state)
	e.decide(state)
	if state.Decision == models.DecisionProceed {
		e.provision(ctx, state)
	}
	e.sendNotifications(ctx, state)
	e.summarize(state)

	state.CompletedAt = e.now().UTC()
	e.logger.Info("onboarding run complete",
		"account_id", state.AccountID,
		"correlation_id", state.CorrelationID,
		"decision", string(state.Decision),
		"stage", string(state.Stage),
		"duration", state.CompletedAt.Sub(state.StartedAt).String())
	return state
}
