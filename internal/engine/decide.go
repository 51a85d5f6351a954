package engine

import "onboarding-agent/pkg/models"

// decide maps the run's findings to the ternary decision. Precedence is
// fixed: collaborator failures block, then rule violations block, then
// warnings escalate, and only a clean run proceeds.
func (e *Engine) decide(state *models.WorkflowState) {
	foldAPIErrors(state)

	switch {
	case state.ViolationCount() > 0:
		state.Decision = models.DecisionBlock
		state.Stage = models.StageBlocked
	case state.WarningCount() > 0:
		state.Decision = models.DecisionEscalate
		state.Stage = models.StageEscalationRequired
	default:
		state.Decision = models.DecisionProceed
		state.Stage = models.StageReadyToProvision
	}

	e.logger.Info("decision made",
		"account_id", state.AccountID,
		"decision", string(state.Decision),
		"violations", state.ViolationCount(),
		"warnings", state.WarningCount(),
		"api_errors", len(state.APIErrors))
}

// foldAPIErrors converts each collaborator failure into a violation keyed by
// the failing system, so a partial fetch can never proceed. The fold is
// idempotent: running decide twice over the same state adds nothing.
func foldAPIErrors(state *models.WorkflowState) {
	for _, rec := range state.APIErrors {
		msg := rec.Format()
		if !contains(state.Violations[rec.System], msg) {
			state.AddViolation(rec.System, msg)
		}
	}
}

func contains(msgs []string, msg string) bool {
	for _, m := range msgs {
		if m == msg {
			return true
		}
	}
	return false
}
