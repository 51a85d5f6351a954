package engine

import (
	"context"
	"fmt"

	"onboarding-agent/internal/validation"
	"onboarding-agent/pkg/models"
)

func (e *Engine) fetchCRM(ctx context.Context, state *models.WorkflowState) {
	state.Stage = models.StageFetchingCRM

	account, rec := e.crm.GetAccount(ctx, state.AccountID)
	if rec != nil {
		state.RecordAPIError(*rec)
	}
	state.Account = account

	// Related records only make sense when the account itself resolved.
	if account != nil {
		if account.OwnerID != "" {
			user, rec := e.crm.GetUser(ctx, account.OwnerID)
			if rec != nil {
				state.RecordAPIError(*rec)
			}
			state.User = user
		}
		opp, rec := e.crm.GetOpportunityByAccount(ctx, state.AccountID)
		if rec != nil {
			state.RecordAPIError(*rec)
		}
		state.Opportunity = opp
	}

	e.logger.Info("crm data fetched",
		"account_id", state.AccountID,
		"has_account", account != nil,
		"has_user", state.User != nil,
		"has_opportunity", state.Opportunity != nil)
}

func (e *Engine) fetchContract(ctx context.Context, state *models.WorkflowState) {
	state.Stage = models.StageFetchingContract

	contract, rec := e.contracts.GetContractByAccount(ctx, state.AccountID)
	if rec != nil {
		state.RecordAPIError(*rec)
	}
	state.Contract = contract

	e.logger.Info("contract data fetched",
		"account_id", state.AccountID, "has_contract", contract != nil)
}

func (e *Engine) fetchBilling(ctx context.Context, state *models.WorkflowState) {
	state.Stage = models.StageFetchingBilling

	invoice, rec := e.billing.GetInvoiceByAccount(ctx, state.AccountID)
	if rec != nil {
		state.RecordAPIError(*rec)
	}
	state.Invoice = invoice

	e.logger.Info("billing data fetched",
		"account_id", state.AccountID, "has_invoice", invoice != nil)
}

func (e *Engine) validate(state *models.WorkflowState) {
	state.Stage = models.StageValidating

	merge := func(domain string, result validation.Result) {
		for _, msg := range result.Violations {
			state.AddViolation(domain, msg)
		}
		for _, msg := range result.Warnings {
			state.AddWarning(domain, msg)
		}
	}

	merge(validation.DomainAccount, validation.CheckAccount(state.Account))
	merge(validation.DomainUser, validation.CheckUser(state.User))
	merge(validation.DomainOpportunity, validation.CheckOpportunity(state.Opportunity))
	merge(validation.DomainContract, validation.CheckContract(state.Contract))
	merge(validation.DomainInvoice, validation.CheckInvoice(state.Invoice))

	e.logger.Info("validation complete",
		"account_id", state.AccountID,
		"violations", state.ViolationCount(),
		"warnings", state.WarningCount())
}

func (e *Engine) analyzeRisk(ctx context.Context, state *models.WorkflowState) {
	state.Stage = models.StageAnalyzingRisk

	analysis, err := e.analyzer.Analyze(ctx, state)
	if err != nil {
		// Risk analysis is advisory; the decision below stands without it.
		e.logger.Warn("risk analysis failed", "account_id", state.AccountID, "error", err.Error())
		return
	}
	state.RiskAnalysis = analysis

	e.logger.Info("risk analysis complete",
		"account_id", state.AccountID,
		"risk_level", string(analysis.RiskLevel),
		"can_proceed", analysis.CanProceedWithWarnings)
}

func (e *Engine) provision(ctx context.Context, state *models.WorkflowState) {
	state.Stage = models.StageProvisioning

	tier := models.TierStarter
	if state.Contract != nil && state.Contract.KeyTerms.SLATier != "" {
		tier = state.Contract.KeyTerms.SLATier
	}

	result := e.provisioner.Provision(state.AccountID, tier, state.AccountName())
	state.Provisioning = result
	state.RecordAction("provision", map[string]string{
		"tenant_id": result.TenantID,
		"tier":      result.Tier,
		"status":    result.Status,
	})
	state.Stage = models.StageProvisioned

	e.logger.Info("provisioning complete",
		"account_id", state.AccountID, "tenant_id", result.TenantID, "tier", result.Tier)

	if n, err := e.notifier.NotifySuccess(ctx, state.AccountName(), state.AccountID, result.TenantID, state.CorrelationID); err == nil {
		state.RecordNotification(n.Type, n.Recipient,
			fmt.Sprintf("Success notification sent for %s", state.AccountName()))
	}

	if state.User != nil && state.User.Email != "" {
		firstName := state.User.FirstName
		if firstName == "" {
			firstName = "Customer"
		}
		if n, err := e.notifier.SendWelcomeEmail(ctx, state.User.Email, firstName,
			state.AccountName(), result.TenantID, state.AccountID, state.CorrelationID); err == nil {
			state.RecordNotification(n.Type, n.Recipient,
				fmt.Sprintf("Welcome email sent to %s", n.Recipient))
		}
	}
}

func (e *Engine) sendNotifications(ctx context.Context, state *models.WorkflowState) {
	state.Stage = models.StageNotifying

	switch state.Decision {
	case models.DecisionBlock:
		if n, err := e.notifier.NotifyBlocked(ctx, state.AccountName(), state.AccountID,
			state.Violations, state.CorrelationID); err == nil {
			state.RecordNotification(n.Type, n.Recipient,
				fmt.Sprintf("Blocked notification sent for %s", state.AccountName()))
		}
		if inv := state.Invoice; inv != nil && inv.Status == models.InvoiceStatusOverdue {
			amount := inv.AmountRemaining
			if amount == 0 {
				amount = inv.Total
			}
			if n, err := e.notifier.NotifyFinanceOverdue(ctx, state.AccountName(), state.AccountID,
				inv.InvoiceID, amount, inv.DaysOverdue, state.CorrelationID); err == nil {
				state.RecordNotification(n.Type, n.Recipient,
					fmt.Sprintf("Overdue invoice escalation for %s", state.AccountName()))
			}
		}

	case models.DecisionEscalate:
		if n, err := e.notifier.NotifyEscalation(ctx, state.AccountName(), state.AccountID,
			state.Warnings, state.CorrelationID); err == nil {
			state.RecordNotification(n.Type, n.Recipient,
				fmt.Sprintf("Escalation notification sent for %s", state.AccountName()))
		}
	}

	e.logger.Info("notifications dispatched",
		"account_id", state.AccountID,
		"decision", string(state.Decision),
		"count", len(state.NotificationsSent))
}

func (e *Engine) summarize(state *models.WorkflowState) {
	if state.RiskAnalysis != nil && state.RiskAnalysis.Summary != "" {
		state.Summary = state.RiskAnalysis.Summary
	} else {
		switch state.Decision {
		case models.DecisionBlock:
			state.Summary = fmt.Sprintf("Onboarding for %s is BLOCKED due to %d critical issue(s).",
				state.AccountName(), state.ViolationCount())
		case models.DecisionEscalate:
			state.Summary = fmt.Sprintf("Onboarding for %s needs review. %d warning(s) identified.",
				state.AccountName(), state.WarningCount())
		default:
			state.Summary = fmt.Sprintf("Onboarding for %s is ready to proceed. All checks passed.",
				state.AccountName())
		}
	}
	state.Stage = models.StageComplete
}
