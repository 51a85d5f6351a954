// Package models defines the domain models for the onboarding service
package models

// Account is a CRM account record.
type Account struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	BillingCountry    string  `json:"billing_country,omitempty"`
	BillingCity       string  `json:"billing_city,omitempty"`
	BillingState      string  `json:"billing_state,omitempty"`
	Industry          string  `json:"industry,omitempty"`
	OwnerID           string  `json:"owner_id,omitempty"`
	Deleted           bool    `json:"deleted"`
	Type              string  `json:"type,omitempty"`
	Website           string  `json:"website,omitempty"`
	NumberOfEmployees int     `json:"number_of_employees,omitempty"`
	AnnualRevenue     float64 `json:"annual_revenue,omitempty"`
}

// User is the CRM user who owns the account (usually the CS manager).
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Name          string `json:"name,omitempty"`
	Title         string `json:"title,omitempty"`
	Department    string `json:"department,omitempty"`
	Active        bool   `json:"active"`
	ProfileID     string `json:"profile_id,omitempty"`
	TimeZone      string `json:"time_zone,omitempty"`
	ManagerID     string `json:"manager_id,omitempty"`
	PortalEnabled bool   `json:"portal_enabled,omitempty"`
	AccountID     string `json:"account_id,omitempty"`
}

// Opportunity is the CRM deal record that triggers onboarding when won.
type Opportunity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AccountID   string  `json:"account_id"`
	Stage       string  `json:"stage"`
	Amount      float64 `json:"amount,omitempty"`
	CloseDate   string  `json:"close_date,omitempty"`
	OwnerID     string  `json:"owner_id,omitempty"`
	ContractID  string  `json:"contract_id,omitempty"`
	Closed      bool    `json:"closed"`
	Won         bool    `json:"won"`
	Probability int     `json:"probability,omitempty"`
}

// Contract lifecycle statuses reported by the contract system.
const (
	ContractStatusDraft            = "DRAFT"
	ContractStatusSent             = "SENT"
	ContractStatusPendingSignature = "PENDING_SIGNATURE"
	ContractStatusSigned           = "SIGNED"
	ContractStatusExecuted         = "EXECUTED"
	ContractStatusExpired          = "EXPIRED"
	ContractStatusVoided           = "VOIDED"
)

// Signatory is one party on a contract.
type Signatory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role,omitempty"`
	Company    string `json:"company,omitempty"`
	Signed     bool   `json:"signed"`
	SignedDate string `json:"signed_date,omitempty"`
}

// ContractTerms are the commercial key terms extracted from the contract.
type ContractTerms struct {
	PaymentTerms string `json:"payment_terms,omitempty"`
	AutoRenewal  bool   `json:"auto_renewal,omitempty"`
	SLATier      string `json:"sla_tier,omitempty"`
	SupportHours string `json:"support_hours,omitempty"`
}

// Contract is the contract-system record, the source of truth for signatures.
type Contract struct {
	ContractID    string        `json:"contract_id"`
	ExternalID    string        `json:"external_id,omitempty"`
	Name          string        `json:"name,omitempty"`
	Status        string        `json:"status"`
	CreatedDate   string        `json:"created_date,omitempty"`
	SentDate      string        `json:"sent_date,omitempty"`
	SignedDate    string        `json:"signed_date,omitempty"`
	EffectiveDate string        `json:"effective_date,omitempty"`
	ExpiryDate    string        `json:"expiry_date,omitempty"`
	Signatories   []Signatory   `json:"signatories,omitempty"`
	KeyTerms      ContractTerms `json:"key_terms"`
}

// PendingSignatories returns the signatories who have not signed yet.
func (c *Contract) PendingSignatories() []Signatory {
	var pending []Signatory
	for _, s := range c.Signatories {
		if !s.Signed {
			pending = append(pending, s)
		}
	}
	return pending
}

// Invoice statuses after mapping the billing system's status codes.
const (
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusOpen      = "OPEN"
	InvoiceStatusPending   = "PENDING"
	InvoiceStatusOverdue   = "OVERDUE"
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusVoided    = "VOIDED"
	InvoiceStatusCancelled = "CANCELLED"
)

// Invoice is the billing-system invoice record for the account.
type Invoice struct {
	InvoiceID       string  `json:"invoice_id"`
	InternalID      string  `json:"internal_id,omitempty"`
	ExternalID      string  `json:"external_id,omitempty"`
	AccountID       string  `json:"account_id"`
	Status          string  `json:"status"`
	StatusDetail    string  `json:"status_detail,omitempty"`
	DaysOverdue     int     `json:"days_overdue,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	Subtotal        float64 `json:"subtotal,omitempty"`
	TaxTotal        float64 `json:"tax_total,omitempty"`
	Total           float64 `json:"total"`
	AmountPaid      float64 `json:"amount_paid"`
	AmountRemaining float64 `json:"amount_remaining"`
	InvoiceDate     string  `json:"invoice_date,omitempty"`
	DueDate         string  `json:"due_date,omitempty"`
	Terms           string  `json:"terms,omitempty"`
	CustomerName    string  `json:"customer_name,omitempty"`
	CustomerEmail   string  `json:"customer_email,omitempty"`
}
