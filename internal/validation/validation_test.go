package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"onboarding-agent/pkg/models"
)

func completeAccount() *models.Account {
	return &models.Account{
		ID:             "0018Z00003ACMEQ",
		Name:           "ACME Corp",
		BillingCountry: "United States",
		Industry:       "Technology",
		OwnerID:        "0058Z000001OWNER",
	}
}

func TestCheckAccount(t *testing.T) {
	t.Run("complete account is clean", func(t *testing.T) {
		r := CheckAccount(completeAccount())
		assert.Empty(t, r.Violations)
		assert.Empty(t, r.Warnings)
	})

	t.Run("nil account is a violation", func(t *testing.T) {
		r := CheckAccount(nil)
		assert.Equal(t, []string{"Account data missing"}, r.Violations)
	})

	t.Run("deleted account is a violation", func(t *testing.T) {
		a := completeAccount()
		a.Deleted = true
		r := CheckAccount(a)
		assert.Contains(t, r.Violations, "Account is marked as deleted")
	})

	t.Run("missing billing country is only a warning", func(t *testing.T) {
		a := completeAccount()
		a.BillingCountry = ""
		r := CheckAccount(a)
		assert.Empty(t, r.Violations)
		assert.Contains(t, r.Warnings, "Billing country missing; tax/provisioning may fail")
	})
}

func TestCheckUser(t *testing.T) {
	user := &models.User{
		ID:        "U-1",
		Username:  "cs@demo",
		Email:     "cs@demo",
		FirstName: "Sarah",
		LastName:  "Johnson",
		Title:     "CSM",
		Active:    true,
		ProfileID: "P-1",
	}

	t.Run("inactive user is a violation", func(t *testing.T) {
		inactive := *user
		inactive.Active = false
		r := CheckUser(&inactive)
		assert.Contains(t, r.Violations, "User is inactive")
	})

	t.Run("portal user without account is a violation", func(t *testing.T) {
		portal := *user
		portal.PortalEnabled = true
		r := CheckUser(&portal)
		assert.Contains(t, r.Violations, "Portal user must be associated with an account")
	})

	t.Run("missing department and timezone are warnings", func(t *testing.T) {
		r := CheckUser(user)
		assert.Empty(t, r.Violations)
		assert.Contains(t, r.Warnings, "User department missing")
		assert.Contains(t, r.Warnings, "User time zone missing")
	})
}

func TestCheckOpportunity(t *testing.T) {
	t.Run("closed won with all fields is clean", func(t *testing.T) {
		r := CheckOpportunity(&models.Opportunity{
			ID:         "O-1",
			AccountID:  "A-1",
			Stage:      "Closed Won",
			Amount:     150000,
			CloseDate:  "2024-01-15",
			OwnerID:    "U-1",
			ContractID: "C-1",
		})
		assert.Empty(t, r.Violations)
		assert.Empty(t, r.Warnings)
	})

	t.Run("open stage is not won", func(t *testing.T) {
		r := CheckOpportunity(&models.Opportunity{ID: "O-1", AccountID: "A-1", Stage: "Negotiation"})
		assert.Contains(t, r.Violations, "Opportunity not won (stage: Negotiation)")
	})

	t.Run("unknown stage is invalid and not won", func(t *testing.T) {
		r := CheckOpportunity(&models.Opportunity{ID: "O-1", AccountID: "A-1", Stage: "Daydreaming"})
		assert.Contains(t, r.Violations, "Invalid opportunity stage: Daydreaming")
		assert.Contains(t, r.Violations, "Opportunity not won (stage: Daydreaming)")
	})

	t.Run("won without contract linkage warns", func(t *testing.T) {
		r := CheckOpportunity(&models.Opportunity{
			ID: "O-1", AccountID: "A-1", Stage: "Closed Won",
			Amount: 25000, CloseDate: "2024-01-20", OwnerID: "U-1",
		})
		assert.Empty(t, r.Violations)
		assert.Contains(t, r.Warnings, "Closed Won opportunity not linked to a contract")
	})
}

func TestCheckContract(t *testing.T) {
	executed := func() *models.Contract {
		return &models.Contract{
			ContractID:    "CTR-1",
			Status:        models.ContractStatusExecuted,
			EffectiveDate: "2024-01-01",
			ExpiryDate:    "2024-12-31",
			Signatories: []models.Signatory{
				{ID: "S-1", Name: "John Smith", Signed: true},
			},
		}
	}

	t.Run("executed contract is clean", func(t *testing.T) {
		r := CheckContract(executed())
		assert.Empty(t, r.Violations)
		assert.Empty(t, r.Warnings)
	})

	t.Run("status comparison is case-insensitive", func(t *testing.T) {
		c := executed()
		c.Status = "executed"
		r := CheckContract(c)
		assert.Empty(t, r.Violations)
	})

	t.Run("draft blocks", func(t *testing.T) {
		c := executed()
		c.Status = models.ContractStatusDraft
		r := CheckContract(c)
		assert.Contains(t, r.Violations, "Contract is still in DRAFT - not yet sent for signatures")
	})

	t.Run("pending signature blocks and lists pending signers", func(t *testing.T) {
		c := executed()
		c.Status = models.ContractStatusPendingSignature
		c.Signatories = append(c.Signatories, models.Signatory{ID: "S-2", Name: "Jane Doe", Signed: false})
		r := CheckContract(c)
		assert.Contains(t, r.Violations, "Contract sent but awaiting signatures - cannot proceed")
		assert.Contains(t, r.Warnings, "Signatures still pending from: Jane Doe")
	})

	t.Run("expired blocks", func(t *testing.T) {
		c := executed()
		c.Status = models.ContractStatusExpired
		r := CheckContract(c)
		assert.Contains(t, r.Violations, "Contract has EXPIRED - needs renewal")
	})

	t.Run("nil contract is a violation", func(t *testing.T) {
		r := CheckContract(nil)
		assert.Contains(t, r.Violations, "Contract data missing - cannot verify signatures")
	})
}

func TestCheckInvoice(t *testing.T) {
	paid := func() *models.Invoice {
		return &models.Invoice{
			InvoiceID:       "INV-1",
			AccountID:       "A-1",
			Status:          models.InvoiceStatusPaid,
			Total:           150000,
			AmountPaid:      150000,
			AmountRemaining: 0,
			DueDate:         "2024-01-31",
			CustomerEmail:   "billing@acme.com",
		}
	}

	t.Run("paid invoice is clean", func(t *testing.T) {
		r := CheckInvoice(paid())
		assert.Empty(t, r.Violations)
		assert.Empty(t, r.Warnings)
	})

	t.Run("missing invoice is only a warning", func(t *testing.T) {
		r := CheckInvoice(nil)
		assert.Empty(t, r.Violations)
		assert.Equal(t, []string{"No invoice found for this account"}, r.Warnings)
	})

	t.Run("voided invoice is a violation", func(t *testing.T) {
		inv := paid()
		inv.Status = models.InvoiceStatusVoided
		r := CheckInvoice(inv)
		assert.Contains(t, r.Violations, "Invoice INV-1 has been voided")
	})

	t.Run("overdue invoice warns with escalation hint", func(t *testing.T) {
		inv := paid()
		inv.Status = models.InvoiceStatusOverdue
		inv.DaysOverdue = 12
		inv.AmountPaid = 0
		inv.AmountRemaining = 150000
		r := CheckInvoice(inv)
		assert.Empty(t, r.Violations)
		assert.Contains(t, r.Warnings,
			"Invoice INV-1 is 12 days overdue ($150000.00 outstanding) - escalate to Finance")
		assert.Contains(t, r.Warnings, "Less than 50% of invoice paid (0%)")
	})

	t.Run("unknown status is a violation", func(t *testing.T) {
		inv := paid()
		inv.Status = "MYSTERY"
		r := CheckInvoice(inv)
		assert.Contains(t, r.Violations, "Invalid invoice status: MYSTERY")
	})
}
