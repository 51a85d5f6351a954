package validation

import "onboarding-agent/pkg/models"

// CheckUser validates the account owner's user record.
//
// Tier 1 (violations): identity and access.
// Tier 2 (warnings): operational readiness.
func CheckUser(user *models.User) Result {
	var r Result

	if user == nil {
		r.violation("User data missing")
		return r
	}

	if user.ID == "" {
		r.violation("User ID is required")
	}
	if user.Username == "" {
		r.violation("User username is required")
	}
	if user.Email == "" {
		r.violation("User email is required")
	}
	if !user.Active {
		r.violation("User is inactive")
	}
	if user.ProfileID == "" {
		r.violation("User profile is required")
	}
	// Portal users must be tied to an account.
	if user.PortalEnabled && user.AccountID == "" {
		r.violation("Portal user must be associated with an account")
	}

	if user.FirstName == "" || user.LastName == "" {
		r.warning("User full name incomplete")
	}
	if user.Title == "" {
		r.warning("User title missing")
	}
	if user.Department == "" {
		r.warning("User department missing")
	}
	if user.TimeZone == "" {
		r.warning("User time zone missing")
	}
	if user.ManagerID == "" {
		r.warning("User has no manager (escalation risk)")
	}

	return r
}
