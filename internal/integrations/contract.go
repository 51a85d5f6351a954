package integrations

import (
	"context"

	"onboarding-agent/internal/logging"
	"onboarding-agent/pkg/models"
)

// MockContractSystem is an in-memory stand-in for the contract lifecycle
// management API.
type MockContractSystem struct {
	fault     FaultKind
	logger    *logging.Logger
	contracts map[string]*models.Contract // keyed by account ID
}

// NewMockContractSystem creates a MockContractSystem seeded with demo data.
func NewMockContractSystem(faults FaultConfig, logger *logging.Logger) *MockContractSystem {
	return &MockContractSystem{
		fault:     faults.Contract,
		logger:    logger,
		contracts: contractRecords(),
	}
}

// GetContractByAccount retrieves the contract for an account.
func (c *MockContractSystem) GetContractByAccount(ctx context.Context, accountID string) (*models.Contract, *models.ErrorRecord) {
	if rec := checkFault(SystemContract, c.fault, accountID); rec != nil {
		c.logger.Warn("contracts.contract.error", "account_id", accountID, "code", rec.Code)
		return nil, rec
	}
	contract, ok := c.contracts[accountID]
	if !ok {
		c.logger.Info("contracts.contract.not_found", "account_id", accountID)
		return nil, nil
	}
	return contract, nil
}

func contractRecords() map[string]*models.Contract {
	return map[string]*models.Contract{
		"ACME-001": {
			ContractID:    "CTR-001",
			ExternalID:    "ACME-001",
			Name:          "ACME Corp - Enterprise Service Agreement",
			Status:        models.ContractStatusExecuted,
			CreatedDate:   "2023-12-01",
			SentDate:      "2023-12-15",
			SignedDate:    "2023-12-20",
			EffectiveDate: "2024-01-01",
			ExpiryDate:    "2024-12-31",
			Signatories: []models.Signatory{
				{ID: "SIG-001", Name: "John Smith", Email: "john.smith@acme.com", Role: "CEO", Company: "ACME Corp", Signed: true, SignedDate: "2023-12-18"},
				{ID: "SIG-002", Name: "Sarah Johnson", Email: "sarah.johnson@platform.demo", Role: "CS Manager", Signed: true, SignedDate: "2023-12-20"},
			},
			KeyTerms: models.ContractTerms{
				PaymentTerms: "Net 30",
				AutoRenewal:  true,
				SLATier:      models.TierEnterprise,
				SupportHours: "24/7",
			},
		},
		"BETA-002": {
			ContractID:  "CTR-002",
			ExternalID:  "BETA-002",
			Name:        "Beta Industries - Growth Service Agreement",
			Status:      models.ContractStatusPendingSignature,
			CreatedDate: "2024-01-05",
			SentDate:    "2024-01-10",
			Signatories: []models.Signatory{
				{ID: "SIG-003", Name: "Jane Doe", Email: "jane.doe@beta.com", Role: "CFO", Company: "Beta Industries", Signed: false},
				{ID: "SIG-004", Name: "Sarah Johnson", Email: "sarah.johnson@platform.demo", Role: "CS Manager", Signed: true, SignedDate: "2024-01-10"},
			},
			KeyTerms: models.ContractTerms{
				PaymentTerms: "Net 45",
				SLATier:      models.TierGrowth,
				SupportHours: "Business Hours",
			},
		},
		"GAMMA-003": {
			ContractID:  "CTR-003",
			ExternalID:  "GAMMA-003",
			Name:        "Gamma Startup - Starter Agreement",
			Status:      models.ContractStatusDraft,
			CreatedDate: "2024-01-18",
			KeyTerms: models.ContractTerms{
				PaymentTerms: "Net 30",
				SLATier:      models.TierStarter,
				SupportHours: "Business Hours",
			},
		},
		"DELTA-004": {
			ContractID:    "CTR-004",
			ExternalID:    "DELTA-004",
			Name:          "Delta Logistics - Growth Service Agreement",
			Status:        models.ContractStatusExecuted,
			CreatedDate:   "2024-01-10",
			SentDate:      "2024-01-15",
			SignedDate:    "2024-01-22",
			EffectiveDate: "2024-02-01",
			ExpiryDate:    "2025-01-31",
			Signatories: []models.Signatory{
				{ID: "SIG-005", Name: "Ray Ortiz", Email: "ray.ortiz@delta.example", Role: "COO", Company: "Delta Logistics", Signed: true, SignedDate: "2024-01-20"},
				{ID: "SIG-006", Name: "Sarah Johnson", Email: "sarah.johnson@platform.demo", Role: "CS Manager", Signed: true, SignedDate: "2024-01-22"},
			},
			KeyTerms: models.ContractTerms{
				PaymentTerms: "Net 30",
				AutoRenewal:  true,
				SLATier:      models.TierGrowth,
				SupportHours: "Business Hours",
			},
		},
	}
}
