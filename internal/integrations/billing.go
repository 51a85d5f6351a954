package integrations

import (
	"context"
	"time"

	"onboarding-agent/internal/logging"
	"onboarding-agent/pkg/models"
)

// MockBilling is an in-memory stand-in for the billing system's invoice API.
// Open invoices past their due date are reported as OVERDUE with the day
// count, the same mapping the real API adapter performs.
type MockBilling struct {
	fault    FaultKind
	logger   *logging.Logger
	invoices map[string]*models.Invoice // keyed by account ID
	now      func() time.Time
}

// NewMockBilling creates a MockBilling seeded with demo invoices.
func NewMockBilling(faults FaultConfig, logger *logging.Logger) *MockBilling {
	return &MockBilling{
		fault:    faults.Billing,
		logger:   logger,
		invoices: billingInvoices(),
		now:      time.Now,
	}
}

// GetInvoiceByAccount retrieves the invoice for an account.
func (c *MockBilling) GetInvoiceByAccount(ctx context.Context, accountID string) (*models.Invoice, *models.ErrorRecord) {
	if rec := checkFault(SystemBilling, c.fault, accountID); rec != nil {
		c.logger.Warn("billing.invoice.error", "account_id", accountID, "code", rec.Code)
		return nil, rec
	}
	invoice, ok := c.invoices[accountID]
	if !ok {
		c.logger.Info("billing.invoice.not_found", "account_id", accountID)
		return nil, nil
	}
	return c.withOverdueMapping(invoice), nil
}

// withOverdueMapping returns a copy with OPEN invoices past due reported as
// OVERDUE, so callers never see a stale OPEN status.
func (c *MockBilling) withOverdueMapping(inv *models.Invoice) *models.Invoice {
	out := *inv
	if out.Status != models.InvoiceStatusOpen || out.DueDate == "" {
		return &out
	}
	due, err := time.Parse("2006-01-02", out.DueDate)
	if err != nil {
		return &out
	}
	if today := c.now().UTC().Truncate(24 * time.Hour); today.After(due) {
		out.Status = models.InvoiceStatusOverdue
		out.DaysOverdue = int(today.Sub(due).Hours() / 24)
	}
	return &out
}

func billingInvoices() map[string]*models.Invoice {
	return map[string]*models.Invoice{
		"ACME-001": {
			InvoiceID:       "INV-2024-001",
			InternalID:      "1001",
			ExternalID:      "ACME-001-INV",
			AccountID:       "ACME-001",
			Status:          models.InvoiceStatusPaid,
			StatusDetail:    "Paid In Full",
			Currency:        "USD",
			Subtotal:        150000,
			Total:           150000,
			AmountPaid:      150000,
			AmountRemaining: 0,
			InvoiceDate:     "2024-01-01",
			DueDate:         "2024-01-31",
			Terms:           "Net 30",
			CustomerName:    "ACME Corp",
			CustomerEmail:   "billing@acme.com",
		},
		"BETA-002": {
			InvoiceID:       "INV-2024-002",
			InternalID:      "1002",
			ExternalID:      "BETA-002-INV",
			AccountID:       "BETA-002",
			Status:          models.InvoiceStatusOpen,
			StatusDetail:    "Open",
			Currency:        "USD",
			Subtotal:        75000,
			Total:           75000,
			AmountPaid:      0,
			AmountRemaining: 75000,
			InvoiceDate:     "2024-01-15",
			DueDate:         "2024-02-14",
			Terms:           "Net 45",
			CustomerName:    "Beta Industries",
			CustomerEmail:   "ap@beta.com",
		},
		// GAMMA-003 has no invoice yet: lookups report not found.
		"DELTA-004": {
			InvoiceID:       "INV-2024-004",
			InternalID:      "1004",
			ExternalID:      "DELTA-004-INV",
			AccountID:       "DELTA-004",
			Status:          models.InvoiceStatusOpen,
			StatusDetail:    "Open",
			Currency:        "USD",
			Subtotal:        60000,
			Total:           60000,
			AmountPaid:      0,
			AmountRemaining: 60000,
			InvoiceDate:     "2024-02-01",
			DueDate:         "2024-03-02",
			Terms:           "Net 30",
			CustomerName:    "Delta Logistics",
			CustomerEmail:   "finance@delta.example",
		},
	}
}
