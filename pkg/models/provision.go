package models

import "time"

// Service tiers derived from contract key terms.
const (
	TierStarter    = "Starter"
	TierGrowth     = "Growth"
	TierEnterprise = "Enterprise"
)

// TierConfig is the platform configuration applied to a tenant.
type TierConfig struct {
	MaxUsers     int      `json:"max_users"`
	Features     []string `json:"features"`
	StorageGB    int      `json:"storage_gb"`
	APIRateLimit int      `json:"api_rate_limit"`
}

// ProvisionResult describes a provisioned tenant. Provisioning is idempotent
// per account: repeated calls return the same result.
type ProvisionResult struct {
	TenantID        string      `json:"tenant_id"`
	AccountID       string      `json:"account_id"`
	Status          string      `json:"status"`
	Tier            string      `json:"tier"`
	ProvisionedAt   time.Time   `json:"provisioned_at"`
	Config          TierConfig  `json:"config"`
	AdminURL        string      `json:"admin_url,omitempty"`
	OnboardingTasks TaskSummary `json:"onboarding_tasks"`
}
