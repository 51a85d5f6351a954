package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-agent/internal/integrations"
	"onboarding-agent/internal/logging"
	"onboarding-agent/internal/notify"
	"onboarding-agent/internal/provisioning"
	"onboarding-agent/internal/risk"
	"onboarding-agent/pkg/models"
)

type testStack struct {
	engine      *Engine
	provisioner *provisioning.Service
	recorder    *notify.Recorder
}

func newTestStack(faults integrations.FaultConfig) *testStack {
	logger := logging.NewLogger()
	recorder := notify.NewRecorder(logger)
	provisioner := provisioning.NewService(logger)

	eng := New(
		integrations.NewMockCRM(faults, logger),
		integrations.NewMockContractSystem(faults, logger),
		integrations.NewMockBilling(faults, logger),
		&risk.RuleBased{},
		provisioner,
		notify.NewService(recorder, notify.Channels{
			CS:      "#cs-onboarding",
			Alerts:  "#cs-onboarding-alerts",
			Finance: "#finance-alerts",
		}),
		logger,
	)
	return &testStack{engine: eng, provisioner: provisioner, recorder: recorder}
}

func run(t *testing.T, stack *testStack, accountID string) *models.WorkflowState {
	t.Helper()
	return stack.engine.Run(context.Background(), models.TriggerEvent{
		EventType: "opportunity_closed_won",
		AccountID: accountID,
	})
}

func TestRun_CleanAccount_Proceeds(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})
	state := run(t, stack, "ACME-001")

	assert.Equal(t, models.DecisionProceed, state.Decision)
	assert.Equal(t, models.StageComplete, state.Stage)
	assert.Zero(t, state.ViolationCount())
	assert.Zero(t, state.WarningCount())
	assert.Empty(t, state.APIErrors)

	require.NotNil(t, state.Provisioning)
	assert.Equal(t, models.TierEnterprise, state.Provisioning.Tier)
	assert.True(t, stack.provisioner.IsProvisioned("ACME-001"))

	// Success Slack message plus a welcome email to the account owner.
	sent := stack.recorder.Sent("ACME-001")
	require.Len(t, sent, 2)
	assert.Equal(t, notify.TypeSlack, sent[0].Type)
	assert.Equal(t, "#cs-onboarding", sent[0].Recipient)
	assert.Equal(t, notify.TypeEmail, sent[1].Type)
	assert.Equal(t, "cs.manager@platform.demo", sent[1].Recipient)
}

func TestRun_OpenOpportunityAndUnsignedContract_Blocks(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})
	state := run(t, stack, "BETA-002")

	assert.Equal(t, models.DecisionBlock, state.Decision)
	assert.Greater(t, state.ViolationCount(), 1)
	assert.Nil(t, state.Provisioning)
	assert.False(t, stack.provisioner.IsProvisioned("BETA-002"))

	// Blocked alert plus a finance escalation for the overdue invoice.
	sent := stack.recorder.Sent("BETA-002")
	require.Len(t, sent, 2)
	assert.Equal(t, "#cs-onboarding-alerts", sent[0].Recipient)
	assert.Equal(t, "#finance-alerts", sent[1].Recipient)
}

func TestRun_DraftContract_Blocks(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})
	state := run(t, stack, "GAMMA-003")

	assert.Equal(t, models.DecisionBlock, state.Decision)
	assert.Contains(t, state.Violations["contract"], "Contract is still in DRAFT - not yet sent for signatures")
	// Missing invoice is a warning, never a violation.
	assert.Empty(t, state.Violations["invoice"])
	assert.Contains(t, state.Warnings["invoice"], "No invoice found for this account")

	// No overdue invoice, so no finance escalation.
	sent := stack.recorder.Sent("GAMMA-003")
	require.Len(t, sent, 1)
	assert.Equal(t, "#cs-onboarding-alerts", sent[0].Recipient)
}

func TestRun_OverdueInvoiceOnly_Escalates(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})
	state := run(t, stack, "DELTA-004")

	assert.Equal(t, models.DecisionEscalate, state.Decision)
	assert.Zero(t, state.ViolationCount())
	assert.Greater(t, state.WarningCount(), 0)
	assert.Nil(t, state.Provisioning)

	sent := stack.recorder.Sent("DELTA-004")
	require.Len(t, sent, 1)
	assert.Equal(t, "#cs-onboarding", sent[0].Recipient)
}

func TestRun_DeletedAccount_Blocks(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})
	state := run(t, stack, "DELETED-005")

	assert.Equal(t, models.DecisionBlock, state.Decision)
	assert.Contains(t, state.Violations["account"], "Account is marked as deleted")
	assert.Nil(t, state.Provisioning)
}

func TestRun_UnknownAccount_Blocks(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})
	state := run(t, stack, "MISSING-999")

	assert.Equal(t, models.DecisionBlock, state.Decision)
	assert.Contains(t, state.Violations["account"], "Account data missing")
	assert.Contains(t, state.Violations["user"], "User data missing")
	assert.Contains(t, state.Violations["opportunity"], "Opportunity data missing")
	assert.Contains(t, state.Violations["contract"], "Contract data missing - cannot verify signatures")
	assert.Empty(t, state.APIErrors)
}

func TestRun_SentinelAccount_RecordsAPIErrorsAndBlocks(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})
	state := run(t, stack, integrations.AccountAuthError)

	assert.Equal(t, models.DecisionBlock, state.Decision)
	require.NotEmpty(t, state.APIErrors)
	// Every failing system is folded into the violation map.
	for _, rec := range state.APIErrors {
		assert.Contains(t, state.Violations[rec.System], rec.Format())
	}
}

func TestRun_ForcedBillingFault_BlocksWithBillingViolation(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{Billing: integrations.FaultServerError})
	state := run(t, stack, "ACME-001")

	assert.Equal(t, models.DecisionBlock, state.Decision)
	require.Len(t, state.APIErrors, 1)
	rec := state.APIErrors[0]
	assert.Equal(t, "billing", rec.System)
	assert.Equal(t, models.ErrorCategoryServerError, rec.Category)
	assert.Contains(t, state.Violations["billing"], rec.Format())
	assert.Nil(t, state.Provisioning)
}

func TestRun_GeneratesCorrelationID(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})
	state := run(t, stack, "ACME-001")
	assert.NotEmpty(t, state.CorrelationID)
}

func TestDecide_Precedence(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})

	tests := []struct {
		name      string
		mutate    func(s *models.WorkflowState)
		decision  models.Decision
		wantStage models.Stage
	}{
		{
			name:      "clean run proceeds",
			mutate:    func(s *models.WorkflowState) {},
			decision:  models.DecisionProceed,
			wantStage: models.StageReadyToProvision,
		},
		{
			name: "warnings escalate",
			mutate: func(s *models.WorkflowState) {
				s.AddWarning("invoice", "invoice open")
			},
			decision:  models.DecisionEscalate,
			wantStage: models.StageEscalationRequired,
		},
		{
			name: "violations outrank warnings",
			mutate: func(s *models.WorkflowState) {
				s.AddWarning("invoice", "invoice open")
				s.AddViolation("contract", "contract draft")
			},
			decision:  models.DecisionBlock,
			wantStage: models.StageBlocked,
		},
		{
			name: "api errors outrank everything",
			mutate: func(s *models.WorkflowState) {
				s.AddWarning("invoice", "invoice open")
				s.RecordAPIError(models.ErrorRecord{
					System:     "crm",
					Category:   models.ErrorCategoryAuth,
					Code:       "INVALID_SESSION_ID",
					Message:    "Session expired",
					HTTPStatus: 401,
				})
			},
			decision:  models.DecisionBlock,
			wantStage: models.StageBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &models.WorkflowState{
				AccountID:  "TEST-1",
				Violations: map[string][]string{},
				Warnings:   map[string][]string{},
			}
			tt.mutate(state)
			stack.engine.decide(state)
			assert.Equal(t, tt.decision, state.Decision)
			assert.Equal(t, tt.wantStage, state.Stage)
		})
	}
}

func TestDecide_APIErrorFoldIsIdempotent(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})
	state := &models.WorkflowState{
		AccountID:  "TEST-1",
		Violations: map[string][]string{},
		Warnings:   map[string][]string{},
	}
	state.RecordAPIError(models.ErrorRecord{
		System:     "billing",
		Category:   models.ErrorCategoryServerError,
		Code:       "UNEXPECTED_ERROR",
		Message:    "An unexpected error has occurred",
		HTTPStatus: 500,
	})

	stack.engine.decide(state)
	first := len(state.Violations["billing"])
	stack.engine.decide(state)

	assert.Equal(t, first, len(state.Violations["billing"]))
	assert.Equal(t, models.DecisionBlock, state.Decision)
}

func TestRun_ProvisioningIsIdempotentAcrossRuns(t *testing.T) {
	stack := newTestStack(integrations.FaultConfig{})

	first := run(t, stack, "ACME-001")
	second := run(t, stack, "ACME-001")

	require.NotNil(t, first.Provisioning)
	require.NotNil(t, second.Provisioning)
	assert.Equal(t, first.Provisioning.TenantID, second.Provisioning.TenantID)
}
