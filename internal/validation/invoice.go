package validation

import (
	"fmt"

	"onboarding-agent/pkg/models"
)

var validInvoiceStatuses = map[string]bool{
	models.InvoiceStatusPaid:      true,
	models.InvoiceStatusOpen:      true,
	models.InvoiceStatusPending:   true,
	models.InvoiceStatusOverdue:   true,
	models.InvoiceStatusDraft:     true,
	models.InvoiceStatusVoided:    true,
	models.InvoiceStatusCancelled: true,
}

// CheckInvoice validates the billing-system invoice record. A missing invoice
// is only a warning: billing may simply not have issued one yet.
//
// Tier 1 (violations): payment validity.
// Tier 2 (warnings): payment and data readiness.
func CheckInvoice(invoice *models.Invoice) Result {
	var r Result

	if invoice == nil {
		r.warning("No invoice found for this account")
		return r
	}

	status := invoice.Status
	invoiceID := invoice.InvoiceID
	if invoiceID == "" {
		invoiceID = "Unknown"
	}

	if invoice.InvoiceID == "" {
		r.violation("Invoice ID is missing")
	}
	if !validInvoiceStatuses[status] {
		r.violation(fmt.Sprintf("Invalid invoice status: %s", status))
	}
	if status == models.InvoiceStatusVoided {
		r.violation(fmt.Sprintf("Invoice %s has been voided", invoiceID))
	}
	if status == models.InvoiceStatusCancelled {
		r.violation(fmt.Sprintf("Invoice %s has been cancelled", invoiceID))
	}

	switch status {
	case models.InvoiceStatusOpen:
		r.warning(fmt.Sprintf("Invoice %s is open with $%.2f remaining", invoiceID, invoice.AmountRemaining))
	case models.InvoiceStatusOverdue:
		r.warning(fmt.Sprintf("Invoice %s is %d days overdue ($%.2f outstanding) - escalate to Finance",
			invoiceID, invoice.DaysOverdue, invoice.AmountRemaining))
	case models.InvoiceStatusDraft:
		r.warning(fmt.Sprintf("Invoice %s is still in draft/pending approval - not yet sent to customer", invoiceID))
	}

	if invoice.Total == 0 {
		r.warning("Invoice total amount is missing")
	}
	if invoice.DueDate == "" {
		r.warning("Invoice due date is missing")
	}
	if invoice.CustomerEmail == "" {
		r.warning("Customer email missing on invoice - cannot send reminders")
	}

	// Large outstanding balance on an issued invoice.
	if invoice.Total > 0 && invoice.AmountRemaining > 0 &&
		status != models.InvoiceStatusPaid && status != models.InvoiceStatusDraft {
		paidPct := (invoice.Total - invoice.AmountRemaining) / invoice.Total * 100
		if paidPct < 50 {
			r.warning(fmt.Sprintf("Less than 50%% of invoice paid (%.0f%%)", paidPct))
		}
	}

	return r
}
