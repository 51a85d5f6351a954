package validation

import (
	"fmt"

	"onboarding-agent/pkg/models"
)

var wonStages = map[string]bool{"Closed Won": true}

var openStages = map[string]bool{
	"Prospecting":       true,
	"Qualification":     true,
	"Needs Analysis":    true,
	"Value Proposition": true,
	"Negotiation":       true,
	"Proposal":          true,
}

// CheckOpportunity validates the CRM opportunity record.
//
// Tier 1 (violations): deal validity; the deal must be won before onboarding.
// Tier 2 (warnings): commercial readiness of a won deal.
func CheckOpportunity(opp *models.Opportunity) Result {
	var r Result

	if opp == nil {
		r.violation("Opportunity data missing")
		return r
	}

	if opp.ID == "" {
		r.violation("Opportunity ID is required")
	}
	if opp.AccountID == "" {
		r.violation("Opportunity account linkage is required")
	}
	if opp.Stage == "" {
		r.violation("Opportunity stage is required")
	}
	if opp.Stage != "" && !wonStages[opp.Stage] && !openStages[opp.Stage] {
		r.violation(fmt.Sprintf("Invalid opportunity stage: %s", opp.Stage))
	}
	if opp.Stage != "" && !wonStages[opp.Stage] {
		r.violation(fmt.Sprintf("Opportunity not won (stage: %s)", opp.Stage))
	}

	if wonStages[opp.Stage] {
		if opp.Amount == 0 {
			r.warning("Closed Won opportunity has no amount")
		}
		if opp.CloseDate == "" {
			r.warning("Closed Won opportunity missing close date")
		}
		if opp.OwnerID == "" {
			r.warning("Closed Won opportunity has no owner")
		}
		if opp.ContractID == "" {
			r.warning("Closed Won opportunity not linked to a contract")
		}
	}

	return r
}
