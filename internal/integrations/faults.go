package integrations

import (
	"fmt"
	"time"

	"onboarding-agent/pkg/models"
)

// FaultKind names a failure a client can be forced to produce.
type FaultKind string

const (
	FaultNone          FaultKind = ""
	FaultAuth          FaultKind = "auth"
	FaultAuthorization FaultKind = "authorization"
	FaultValidation    FaultKind = "validation"
	FaultRateLimit     FaultKind = "rate_limit"
	FaultServerError   FaultKind = "server_error"
)

// FaultConfig forces deterministic failures per system. It is passed into
// client constructors; there is no shared mutable simulator state, so wiring
// a faulty client for one run never affects another.
type FaultConfig struct {
	CRM      FaultKind
	Contract FaultKind
	Billing  FaultKind
}

// Sentinel account IDs that trigger a simulated failure on lookup, matching
// the demo scenario catalogue.
const (
	AccountAuthError   = "AUTH-ERROR"
	AccountPermError   = "PERM-ERROR"
	AccountServerError = "SERVER-ERROR"
)

// sentinelFault maps the special account IDs to the fault they force.
func sentinelFault(accountID string) FaultKind {
	switch accountID {
	case AccountAuthError:
		return FaultAuth
	case AccountPermError:
		return FaultAuthorization
	case AccountServerError:
		return FaultServerError
	}
	return FaultNone
}

// faultCode holds the per-system wire codes for each fault kind, mirroring
// the error vocabularies of the real APIs being mocked.
var faultCodes = map[string]map[FaultKind]struct {
	code    string
	message string
	status  int
}{
	SystemCRM: {
		FaultAuth:          {"INVALID_SESSION_ID", "Session expired or invalid. Please re-authenticate.", 401},
		FaultAuthorization: {"INSUFFICIENT_ACCESS", "Insufficient privileges to read Account", 403},
		FaultValidation:    {"FIELD_CUSTOM_VALIDATION_EXCEPTION", "Validation failed for field 'Name'", 400},
		FaultRateLimit:     {"REQUEST_LIMIT_EXCEEDED", "API rate limit exceeded. Limit: 100000 requests per 24 hours.", 429},
		FaultServerError:   {"SERVER_ERROR", "Service temporarily unavailable. Please try again later.", 500},
	},
	SystemContract: {
		FaultAuth:          {"UNAUTHORIZED", "Invalid or expired API key", 401},
		FaultAuthorization: {"FORBIDDEN", "Access denied: cannot read contract", 403},
		FaultValidation:    {"VALIDATION_ERROR", "Validation failed for request", 400},
		FaultRateLimit:     {"RATE_LIMIT_EXCEEDED", "Rate limit exceeded. Limit: 100 requests per minute.", 429},
		FaultServerError:   {"INTERNAL_ERROR", "Internal server error", 500},
	},
	SystemBilling: {
		FaultAuth:          {"INVALID_LOGIN", "Invalid login credentials. Check your token-based authentication settings.", 401},
		FaultAuthorization: {"INSUFFICIENT_PERMISSION", "You do not have permission to read invoice records", 403},
		FaultValidation:    {"INVALID_FIELD_VALUE", "Invalid value for field 'entity'", 400},
		FaultRateLimit:     {"EXCEEDED_CONCURRENCY_LIMIT", "Request limit exceeded. Maximum concurrent requests: 10", 429},
		FaultServerError:   {"UNEXPECTED_ERROR", "An unexpected error has occurred", 500},
	},
}

var faultCategories = map[FaultKind]models.ErrorCategory{
	FaultAuth:          models.ErrorCategoryAuth,
	FaultAuthorization: models.ErrorCategoryAuthorization,
	FaultValidation:    models.ErrorCategoryValidation,
	FaultRateLimit:     models.ErrorCategoryRateLimit,
	FaultServerError:   models.ErrorCategoryServerError,
}

// newFault builds the ErrorRecord a system reports for a forced fault kind.
func newFault(system string, kind FaultKind) *models.ErrorRecord {
	spec, ok := faultCodes[system][kind]
	if !ok {
		spec = struct {
			code    string
			message string
			status  int
		}{"SERVER_ERROR", fmt.Sprintf("Simulated %s failure", system), 500}
	}
	return &models.ErrorRecord{
		System:     system,
		Category:   faultCategories[kind],
		Code:       spec.code,
		Message:    spec.message,
		HTTPStatus: spec.status,
		Timestamp:  time.Now().UTC(),
	}
}

// checkFault returns the failure a client must report before any lookup:
// either the fault forced by configuration or the one triggered by a
// sentinel account ID.
func checkFault(system string, forced FaultKind, accountID string) *models.ErrorRecord {
	if forced != FaultNone {
		return newFault(system, forced)
	}
	if kind := sentinelFault(accountID); kind != FaultNone {
		return newFault(system, kind)
	}
	return nil
}
