// Package validation holds the business-rule checks run against fetched
// entities. Each check is a pure function over one entity and classifies its
// findings into two tiers: violations block provisioning, warnings escalate
// for human review. Checks never call a collaborator and never inspect API
// errors; absence of a required entity is itself a finding.
package validation

// Domains used as keys in the violation and warning maps.
const (
	DomainAccount     = "account"
	DomainUser        = "user"
	DomainOpportunity = "opportunity"
	DomainContract    = "contract"
	DomainInvoice     = "invoice"
)

// Result is the outcome of one domain's checks.
type Result struct {
	Violations []string
	Warnings   []string
}

func (r *Result) violation(msg string) { r.Violations = append(r.Violations, msg) }
func (r *Result) warning(msg string)   { r.Warnings = append(r.Warnings, msg) }
