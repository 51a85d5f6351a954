// Package integrations contains the mocked external system clients the
// pipeline fetches from. Each fetch distinguishes three outcomes: the record,
// an explicit "not found" (nil record, nil failure), or a structured failure
// (*models.ErrorRecord). Clients never return a Go error across the stage
// boundary.
package integrations

import (
	"context"

	"onboarding-agent/pkg/models"
)

// System identifiers used on error records and folded violation lists.
const (
	SystemCRM      = "crm"
	SystemContract = "contracts"
	SystemBilling  = "billing"
)

// CRMClient reads account, user and opportunity records from the CRM.
type CRMClient interface {
	GetAccount(ctx context.Context, accountID string) (*models.Account, *models.ErrorRecord)
	GetUser(ctx context.Context, userID string) (*models.User, *models.ErrorRecord)
	GetOpportunityByAccount(ctx context.Context, accountID string) (*models.Opportunity, *models.ErrorRecord)
}

// ContractClient reads contract records from the contract system, the source
// of truth for signatures.
type ContractClient interface {
	GetContractByAccount(ctx context.Context, accountID string) (*models.Contract, *models.ErrorRecord)
}

// BillingClient reads invoice records from the billing system.
type BillingClient interface {
	GetInvoiceByAccount(ctx context.Context, accountID string) (*models.Invoice, *models.ErrorRecord)
}
