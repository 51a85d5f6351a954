package validation

import "onboarding-agent/pkg/models"

// CheckAccount validates the CRM account record.
//
// Tier 1 (violations): hard requirements for provisioning.
// Tier 2 (warnings): business readiness.
func CheckAccount(account *models.Account) Result {
	var r Result

	if account == nil {
		r.violation("Account data missing")
		return r
	}

	if account.ID == "" {
		r.violation("Account ID is required")
	}
	if account.Name == "" {
		r.violation("Account name is required")
	}
	if account.Deleted {
		r.violation("Account is marked as deleted")
	}

	if account.BillingCountry == "" {
		r.warning("Billing country missing; tax/provisioning may fail")
	}
	if account.Industry == "" {
		r.warning("Industry not set; segmentation limited")
	}
	if account.OwnerID == "" {
		r.warning("Account has no assigned owner")
	}

	return r
}
