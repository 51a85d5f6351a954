package validation

import (
	"fmt"
	"strings"

	"onboarding-agent/pkg/models"
)

var validContractStatuses = map[string]bool{
	models.ContractStatusDraft:            true,
	models.ContractStatusSent:             true,
	models.ContractStatusPendingSignature: true,
	models.ContractStatusSigned:           true,
	models.ContractStatusExecuted:         true,
	models.ContractStatusExpired:          true,
	models.ContractStatusVoided:           true,
}

// Statuses that allow onboarding to proceed.
var proceedContractStatuses = map[string]bool{
	models.ContractStatusExecuted: true,
	models.ContractStatusSigned:   true,
}

// CheckContract validates the contract-system record, the source of truth for
// signatures.
//
// Tier 1 (violations): lifecycle validity; onboarding requires a signed or
// executed contract.
// Tier 2 (warnings): business readiness.
func CheckContract(contract *models.Contract) Result {
	var r Result

	if contract == nil {
		r.violation("Contract data missing - cannot verify signatures")
		return r
	}

	status := strings.ToUpper(contract.Status)

	if contract.ContractID == "" {
		r.violation("Contract ID is missing")
	}
	if status != "" && !validContractStatuses[status] {
		r.violation(fmt.Sprintf("Invalid contract status: %s", status))
	}
	if status != "" && validContractStatuses[status] && !proceedContractStatuses[status] {
		switch status {
		case models.ContractStatusDraft:
			r.violation("Contract is still in DRAFT - not yet sent for signatures")
		case models.ContractStatusSent, models.ContractStatusPendingSignature:
			r.violation("Contract sent but awaiting signatures - cannot proceed")
		case models.ContractStatusExpired:
			r.violation("Contract has EXPIRED - needs renewal")
		case models.ContractStatusVoided:
			r.violation("Contract has been VOIDED - cannot proceed")
		default:
			r.violation(fmt.Sprintf("Contract status '%s' does not allow onboarding", status))
		}
	}

	if contract.EffectiveDate == "" {
		r.warning("Contract has no effective date set")
	}
	if contract.ExpiryDate == "" {
		r.warning("Contract has no expiry date - renewal tracking limited")
	}
	if pending := contract.PendingSignatories(); len(pending) > 0 {
		names := make([]string, len(pending))
		for i, s := range pending {
			names[i] = s.Name
		}
		r.warning(fmt.Sprintf("Signatures still pending from: %s", strings.Join(names, ", ")))
	}

	return r
}
