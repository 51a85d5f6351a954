package integrations

import (
	"context"

	"onboarding-agent/internal/logging"
	"onboarding-agent/pkg/models"
)

// MockCRM is an in-memory stand-in for the CRM REST API. Lookup misses are
// "not found" (nil, nil); forced faults and sentinel accounts produce
// structured failures the way the real API would.
type MockCRM struct {
	fault  FaultKind
	logger *logging.Logger

	accounts      map[string]*models.Account
	users         map[string]*models.User
	opportunities map[string]*models.Opportunity // keyed by account ID
}

// NewMockCRM creates a MockCRM seeded with the demo account catalogue.
func NewMockCRM(faults FaultConfig, logger *logging.Logger) *MockCRM {
	return &MockCRM{
		fault:         faults.CRM,
		logger:        logger,
		accounts:      crmAccounts(),
		users:         crmUsers(),
		opportunities: crmOpportunities(),
	}
}

// GetAccount retrieves an account by ID.
func (c *MockCRM) GetAccount(ctx context.Context, accountID string) (*models.Account, *models.ErrorRecord) {
	if rec := checkFault(SystemCRM, c.fault, accountID); rec != nil {
		c.logger.Warn("crm.account.error", "account_id", accountID, "code", rec.Code)
		return nil, rec
	}
	account, ok := c.accounts[accountID]
	if !ok {
		c.logger.Info("crm.account.not_found", "account_id", accountID)
		return nil, nil
	}
	return account, nil
}

// GetUser retrieves a user by ID.
func (c *MockCRM) GetUser(ctx context.Context, userID string) (*models.User, *models.ErrorRecord) {
	if rec := checkFault(SystemCRM, c.fault, userID); rec != nil {
		return nil, rec
	}
	user, ok := c.users[userID]
	if !ok {
		return nil, nil
	}
	return user, nil
}

// GetOpportunityByAccount retrieves the opportunity linked to an account.
func (c *MockCRM) GetOpportunityByAccount(ctx context.Context, accountID string) (*models.Opportunity, *models.ErrorRecord) {
	if rec := checkFault(SystemCRM, c.fault, accountID); rec != nil {
		return nil, rec
	}
	opp, ok := c.opportunities[accountID]
	if !ok {
		return nil, nil
	}
	return opp, nil
}

func crmAccounts() map[string]*models.Account {
	return map[string]*models.Account{
		"ACME-001": {
			ID:                "0018Z00003ACMEQ",
			Name:              "ACME Corp",
			BillingCountry:    "United States",
			BillingCity:       "San Francisco",
			BillingState:      "CA",
			Industry:          "Technology",
			OwnerID:           "0058Z000001OWNER",
			Type:              "Customer",
			Website:           "https://acme.com",
			NumberOfEmployees: 500,
			AnnualRevenue:     50000000,
		},
		"BETA-002": {
			ID:             "0018Z00003BETAQ",
			Name:           "Beta Industries",
			BillingCountry: "Canada",
			BillingCity:    "Toronto",
			BillingState:   "ON",
			Industry:       "Manufacturing",
			OwnerID:        "0058Z000001OWNER",
			Type:           "Prospect",
		},
		"GAMMA-003": {
			// Missing billing country triggers a warning downstream.
			ID:       "0018Z00003GAMMAQ",
			Name:     "Gamma Startup",
			Industry: "Fintech",
			OwnerID:  "0058Z000001OWNER",
			Type:     "Customer",
		},
		"DELTA-004": {
			ID:                "0018Z00003DELTAQ",
			Name:              "Delta Logistics",
			BillingCountry:    "United States",
			BillingCity:       "Chicago",
			BillingState:      "IL",
			Industry:          "Logistics",
			OwnerID:           "0058Z000001OWNER",
			Type:              "Customer",
			NumberOfEmployees: 120,
		},
		"DELETED-005": {
			ID:      "0018Z00003DELQ",
			Name:    "Deleted Corp",
			Deleted: true,
		},
	}
}

func crmUsers() map[string]*models.User {
	return map[string]*models.User{
		"0058Z000001OWNER": {
			ID:         "0058Z000001OWNER",
			Username:   "cs.manager@platform.demo",
			Email:      "cs.manager@platform.demo",
			FirstName:  "Sarah",
			LastName:   "Johnson",
			Name:       "Sarah Johnson",
			Title:      "Customer Success Manager",
			Department: "Customer Success",
			Active:     true,
			ProfileID:  "00e8Z000001PROFILE",
			TimeZone:   "America/New_York",
			ManagerID:  "0058Z000001MANAGER",
		},
		"INACTIVE-USER": {
			ID:        "INACTIVE-USER",
			Username:  "inactive@platform.demo",
			Email:     "inactive@platform.demo",
			Name:      "Inactive User",
			Active:    false,
			ProfileID: "00e8Z000001PROFILE",
		},
	}
}

func crmOpportunities() map[string]*models.Opportunity {
	return map[string]*models.Opportunity{
		"ACME-001": {
			ID:          "0068Z000001OPPACME",
			Name:        "ACME Corp - Enterprise Deal",
			AccountID:   "0018Z00003ACMEQ",
			Stage:       "Closed Won",
			Amount:      150000,
			CloseDate:   "2024-01-15",
			OwnerID:     "0058Z000001OWNER",
			ContractID:  "8008Z000000CONTR",
			Closed:      true,
			Won:         true,
			Probability: 100,
		},
		"BETA-002": {
			// Not won yet: blocks onboarding.
			ID:          "0068Z000001OPPBETA",
			Name:        "Beta Industries - Growth Plan",
			AccountID:   "0018Z00003BETAQ",
			Stage:       "Negotiation",
			Amount:      75000,
			CloseDate:   "2024-02-28",
			OwnerID:     "0058Z000001OWNER",
			Probability: 60,
		},
		"GAMMA-003": {
			// Missing contract linkage triggers a warning.
			ID:        "0068Z000001OPPGAMMA",
			Name:      "Gamma Startup - Pilot",
			AccountID: "0018Z00003GAMMAQ",
			Stage:     "Closed Won",
			Amount:    25000,
			CloseDate: "2024-01-20",
			OwnerID:   "0058Z000001OWNER",
			Closed:    true,
			Won:       true,
		},
		"DELTA-004": {
			ID:          "0068Z000001OPPDELTA",
			Name:        "Delta Logistics - Growth Plan",
			AccountID:   "0018Z00003DELTAQ",
			Stage:       "Closed Won",
			Amount:      60000,
			CloseDate:   "2024-02-01",
			OwnerID:     "0058Z000001OWNER",
			ContractID:  "8008Z000000CONTRD",
			Closed:      true,
			Won:         true,
			Probability: 100,
		},
	}
}
