package risk

import (
	"context"
	"fmt"

	"onboarding-agent/internal/validation"
	"onboarding-agent/pkg/models"
)

// RuleBased is the deterministic analysis strategy. It is always available
// and never returns an error.
type RuleBased struct{}

// Analyze derives a risk assessment from the run's violations and warnings.
func (a *RuleBased) Analyze(ctx context.Context, state *models.WorkflowState) (*models.RiskAnalysis, error) {
	violations := state.ViolationCount()
	warnings := state.WarningCount()

	analysis := &models.RiskAnalysis{
		RiskLevel:               riskLevel(violations, warnings),
		Risks:                   identifyRisks(state),
		RecommendedActions:      recommendActions(state),
		EstimatedResolutionTime: estimateResolution(violations, warnings),
		CanProceedWithWarnings:  violations == 0,
	}
	analysis.Summary = summarize(state, violations, warnings)
	return analysis, nil
}

func riskLevel(violations, warnings int) string {
	switch {
	case violations > 2:
		return models.RiskLevelCritical
	case violations > 0:
		return models.RiskLevelHigh
	case warnings > 3:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

func identifyRisks(state *models.WorkflowState) []models.Risk {
	var risks []models.Risk

	if len(state.Violations[validation.DomainAccount]) > 0 {
		risks = append(risks, models.Risk{
			Issue:   "Account data is missing or invalid",
			Impact:  "Cannot identify the customer or their requirements",
			Urgency: "high",
		})
	}
	if len(state.Violations[validation.DomainContract]) > 0 {
		risks = append(risks, models.Risk{
			Issue:   "Contract issues detected",
			Impact:  "Legal agreement not in place - cannot proceed with provisioning",
			Urgency: "high",
		})
	}
	if len(state.Violations[validation.DomainOpportunity]) > 0 {
		risks = append(risks, models.Risk{
			Issue:   "Opportunity not in Closed Won status",
			Impact:  "Deal may not be finalized - premature onboarding risk",
			Urgency: "high",
		})
	}
	if len(state.Warnings[validation.DomainInvoice]) > 0 && state.Invoice != nil {
		switch state.Invoice.Status {
		case models.InvoiceStatusOverdue:
			risks = append(risks, models.Risk{
				Issue:   "Invoice is overdue",
				Impact:  "Payment not received - may need finance escalation",
				Urgency: "high",
			})
		case models.InvoiceStatusPending, models.InvoiceStatusOpen:
			risks = append(risks, models.Risk{
				Issue:   "Invoice pending payment",
				Impact:  "Provisioning may need to wait for payment",
				Urgency: "medium",
			})
		}
	}
	if len(state.Warnings[validation.DomainContract]) > 0 && state.Contract != nil &&
		state.Contract.Status == models.ContractStatusDraft {
		risks = append(risks, models.Risk{
			Issue:   "Contract still in draft status",
			Impact:  "Contract not yet sent for signature",
			Urgency: "medium",
		})
	}

	return risks
}

func recommendActions(state *models.WorkflowState) []models.RecommendedAction {
	var actions []models.RecommendedAction
	priority := 1

	if len(state.Violations[validation.DomainAccount]) > 0 {
		actions = append(actions, models.RecommendedAction{
			Action:   "Verify account exists in the CRM and has required fields",
			Owner:    "Sales Operations",
			Priority: priority,
		})
		priority++
	}
	if len(state.Violations[validation.DomainContract]) > 0 || len(state.Warnings[validation.DomainContract]) > 0 {
		actions = append(actions, models.RecommendedAction{
			Action:   "Review contract status and expedite signature if needed",
			Owner:    "Legal/CS",
			Priority: priority,
		})
		priority++
	}
	if state.Invoice != nil &&
		(state.Invoice.Status == models.InvoiceStatusOverdue || state.Invoice.Status == models.InvoiceStatusOpen ||
			state.Invoice.Status == models.InvoiceStatusPending) {
		actions = append(actions, models.RecommendedAction{
			Action:   "Follow up on invoice payment status",
			Owner:    "Finance",
			Priority: priority,
		})
		priority++
	}

	violations := state.ViolationCount()
	warnings := state.WarningCount()
	if len(actions) == 0 && warnings > 0 {
		actions = append(actions, models.RecommendedAction{
			Action:   "Review warnings and confirm acceptable to proceed",
			Owner:    "Customer Success",
			Priority: 1,
		})
	}
	if violations == 0 && warnings == 0 {
		actions = append(actions, models.RecommendedAction{
			Action:   "Proceed with automated provisioning",
			Owner:    "System",
			Priority: 1,
		})
	}

	return actions
}

func estimateResolution(violations, warnings int) string {
	switch {
	case violations == 0 && warnings == 0:
		return "Immediate - ready to provision"
	case violations == 0:
		return "< 1 hour if warnings acceptable"
	case violations <= 2:
		return "1-4 hours depending on issue complexity"
	default:
		return "4-24 hours - multiple critical issues"
	}
}

func summarize(state *models.WorkflowState, violations, warnings int) string {
	name := state.AccountName()
	switch {
	case violations > 0:
		return fmt.Sprintf("Onboarding for %s is BLOCKED due to %d critical issue(s) that must be resolved.", name, violations)
	case warnings > 0:
		return fmt.Sprintf("Onboarding for %s can proceed with caution. %d warning(s) identified for review.", name, warnings)
	default:
		return fmt.Sprintf("Onboarding for %s is ready to proceed. All checks passed.", name)
	}
}
