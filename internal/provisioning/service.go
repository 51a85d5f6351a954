// Package provisioning is a mock tenant-provisioning system with an
// onboarding task checklist. In production this would call the platform's
// provisioning API and a task tracker; here everything lives in memory so
// demo runs are self-contained and repeatable.
package provisioning

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"onboarding-agent/internal/logging"
	"onboarding-agent/pkg/models"
)

var tierConfigs = map[string]models.TierConfig{
	models.TierEnterprise: {
		MaxUsers:     100,
		Features:     []string{"analytics", "api_access", "sso", "custom_reports", "dedicated_support"},
		StorageGB:    500,
		APIRateLimit: 10000,
	},
	models.TierGrowth: {
		MaxUsers:     25,
		Features:     []string{"analytics", "api_access", "standard_reports"},
		StorageGB:    100,
		APIRateLimit: 5000,
	},
	models.TierStarter: {
		MaxUsers:     5,
		Features:     []string{"analytics", "basic_reports"},
		StorageGB:    25,
		APIRateLimit: 1000,
	},
}

// account holds the provisioning record and checklist for one tenant.
type account struct {
	mu     sync.Mutex
	result *models.ProvisionResult
	tasks  []*models.OnboardingTask
}

// Service provisions tenants and tracks their onboarding checklists.
// All state is in-memory and safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	accounts map[string]*account
	logger   *logging.Logger
	now      func() time.Time
}

// NewService creates an empty provisioning store.
func NewService(logger *logging.Logger) *Service {
	return &Service{
		accounts: make(map[string]*account),
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock overrides the time source, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Provision creates a tenant for the account, or returns the existing record
// when the account is already provisioned. Unknown tiers fall back to Starter.
func (s *Service) Provision(accountID, tier, customerName string) *models.ProvisionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acct, ok := s.accounts[accountID]; ok {
		s.logger.Info("account already provisioned", "account_id", accountID)
		return acct.result
	}

	cfg, ok := tierConfigs[tier]
	if !ok {
		tier = models.TierStarter
		cfg = tierConfigs[models.TierStarter]
	}

	now := s.now().UTC()
	tenantID := "TEN-" + strings.ToUpper(uuid.New().String()[:8])
	tasks := buildChecklist(accountID, tenantID, tier, customerName, now)

	result := &models.ProvisionResult{
		TenantID:        tenantID,
		AccountID:       accountID,
		Status:          "ACTIVE",
		Tier:            tier,
		ProvisionedAt:   now,
		Config:          cfg,
		AdminURL:        fmt.Sprintf("https://app.onboarding.demo/admin/%s", tenantID),
		OnboardingTasks: summarize(tasks),
	}

	s.accounts[accountID] = &account{result: result, tasks: tasks}
	s.logger.Info("tenant provisioned",
		"account_id", accountID, "tenant_id", tenantID, "tier", tier, "tasks", len(tasks))
	return result
}

// IsProvisioned reports whether the account has an active tenant.
func (s *Service) IsProvisioned(accountID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[accountID]
	return ok
}

// Status returns the provisioning record, or nil when not provisioned.
func (s *Service) Status(accountID string) *models.ProvisionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if acct, ok := s.accounts[accountID]; ok {
		return acct.result
	}
	return nil
}

// ListTasks returns copies of every checklist task for the account.
func (s *Service) ListTasks(accountID string) []models.OnboardingTask {
	acct := s.account(accountID)
	if acct == nil {
		return nil
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	return copyTasks(acct.tasks)
}

// GetTask returns one task by ID, or nil when it does not exist.
func (s *Service) GetTask(accountID, taskID string) *models.OnboardingTask {
	acct := s.account(accountID)
	if acct == nil {
		return nil
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	for _, t := range acct.tasks {
		if t.ID == taskID {
			c := *t
			return &c
		}
	}
	return nil
}

// UpdateTaskStatus moves a task to the given status, stamping completion
// metadata when the new status is completed. Any valid status is accepted
// from any current status; the checklist is a tracking tool, not a state
// machine, and CS corrections must always be possible.
func (s *Service) UpdateTaskStatus(accountID, taskID string, status models.TaskStatus, completedBy, notes string) (*models.OnboardingTask, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid task status %q", status)
	}
	acct := s.account(accountID)
	if acct == nil {
		return nil, fmt.Errorf("account %s is not provisioned", accountID)
	}

	acct.mu.Lock()
	defer acct.mu.Unlock()
	for _, t := range acct.tasks {
		if t.ID != taskID {
			continue
		}
		t.Status = status
		if status == models.TaskStatusCompleted {
			now := s.now().UTC()
			t.CompletedAt = &now
			if completedBy == "" {
				completedBy = "unknown"
			}
			t.CompletedBy = completedBy
		}
		if notes != "" {
			t.Notes = notes
		}
		acct.result.OnboardingTasks = summarize(acct.tasks)
		s.logger.Info("task status updated",
			"account_id", accountID, "task_id", taskID, "status", string(status))
		c := *t
		return &c, nil
	}
	return nil, fmt.Errorf("task %s not found for account %s", taskID, accountID)
}

// PendingTasks returns open tasks for the given owner.
func (s *Service) PendingTasks(accountID string, owner models.TaskOwner) []models.OnboardingTask {
	acct := s.account(accountID)
	if acct == nil {
		return nil
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	var out []models.OnboardingTask
	for _, t := range acct.tasks {
		if t.Owner == owner && t.Open() {
			out = append(out, *t)
		}
	}
	return out
}

// OverdueTasks returns open tasks whose due date has passed.
func (s *Service) OverdueTasks(accountID string) []models.OnboardingTask {
	acct := s.account(accountID)
	if acct == nil {
		return nil
	}
	today := s.now().UTC().Truncate(24 * time.Hour)

	acct.mu.Lock()
	defer acct.mu.Unlock()
	var out []models.OnboardingTask
	for _, t := range acct.tasks {
		if t.Open() && t.DueDate != nil && t.DueDate.Before(today) {
			out = append(out, *t)
		}
	}
	return out
}

// BlockedTasks returns tasks in the blocked status.
func (s *Service) BlockedTasks(accountID string) []models.OnboardingTask {
	acct := s.account(accountID)
	if acct == nil {
		return nil
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	var out []models.OnboardingTask
	for _, t := range acct.tasks {
		if t.Status == models.TaskStatusBlocked {
			out = append(out, *t)
		}
	}
	return out
}

// Summary recomputes and returns the checklist summary for the account.
func (s *Service) Summary(accountID string) *models.TaskSummary {
	acct := s.account(accountID)
	if acct == nil {
		return nil
	}
	acct.mu.Lock()
	defer acct.mu.Unlock()
	sum := summarize(acct.tasks)
	return &sum
}

// Deprovision removes the tenant and its checklist.
func (s *Service) Deprovision(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[accountID]; ok {
		delete(s.accounts, accountID)
		s.logger.Info("tenant deprovisioned", "account_id", accountID)
	}
}

// Reset clears all provisioned accounts. Used by the demo reset endpoint
// and tests.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make(map[string]*account)
}

func (s *Service) account(accountID string) *account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts[accountID]
}

func copyTasks(tasks []*models.OnboardingTask) []models.OnboardingTask {
	out := make([]models.OnboardingTask, len(tasks))
	for i, t := range tasks {
		out[i] = *t
	}
	return out
}

// summarize aggregates checklist progress. Next actions are pending tasks
// whose dependencies (if any) are all completed, capped at three. Callers
// must hold the account lock.
func summarize(tasks []*models.OnboardingTask) models.TaskSummary {
	byID := make(map[string]*models.OnboardingTask, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	sum := models.TaskSummary{TotalTasks: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusCompleted:
			sum.Completed++
		case models.TaskStatusPending:
			sum.Pending++
		case models.TaskStatusInProgress:
			sum.InProgress++
		case models.TaskStatusBlocked:
			sum.Blocked++
		}
	}
	if sum.TotalTasks > 0 {
		sum.CompletionPercentage = int(float64(sum.Completed)/float64(sum.TotalTasks)*100 + 0.5)
	}

	for _, t := range tasks {
		if t.Status != models.TaskStatusPending {
			continue
		}
		ready := true
		for _, dep := range t.DependsOn {
			if d, ok := byID[dep]; !ok || d.Status != models.TaskStatusCompleted {
				ready = false
				break
			}
		}
		if ready {
			sum.NextActions = append(sum.NextActions, models.NextAction{
				TaskID:  t.ID,
				Name:    t.Name,
				Owner:   t.Owner,
				DueDate: t.DueDate,
			})
			if len(sum.NextActions) == 3 {
				break
			}
		}
	}
	return sum
}
