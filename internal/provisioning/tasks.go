package provisioning

import (
	"fmt"
	"time"

	"onboarding-agent/pkg/models"
)

// buildChecklist creates the standard onboarding checklist for a new tenant.
// The four automated tasks are created already completed; the rest carry due
// dates relative to provisioning time. SSO setup only applies to Enterprise
// and custom reports to Enterprise and Growth, the others are skipped.
func buildChecklist(accountID, tenantID, tier, customerName string, now time.Time) []*models.OnboardingTask {
	id := func(n int) string { return fmt.Sprintf("%s-T%03d", accountID, n) }
	due := func(days int) *time.Time {
		d := now.AddDate(0, 0, days).Truncate(24 * time.Hour)
		return &d
	}

	done := func(n int, name, desc string, deps ...string) *models.OnboardingTask {
		completed := now
		return &models.OnboardingTask{
			ID:          id(n),
			Name:        name,
			Description: desc,
			Category:    models.TaskCategoryAutomated,
			Owner:       models.TaskOwnerSystem,
			Status:      models.TaskStatusCompleted,
			CompletedAt: &completed,
			CompletedBy: "onboarding_agent",
			DependsOn:   deps,
		}
	}

	ssoTask := &models.OnboardingTask{
		ID:          id(7),
		Name:        "Configure SSO Integration",
		Description: "SSO not included in this tier",
		Category:    models.TaskCategoryTechnical,
		Owner:       models.TaskOwnerCSTeam,
		Status:      models.TaskStatusSkipped,
		Notes:       "Skipped - not in tier",
		DependsOn:   []string{id(6)},
	}
	if tier == models.TierEnterprise {
		ssoTask.Description = "Work with customer IT to set up Single Sign-On"
		ssoTask.Status = models.TaskStatusPending
		ssoTask.DueDate = due(7)
		ssoTask.Notes = "Requires customer IT involvement"
	}

	reportsTask := &models.OnboardingTask{
		ID:          id(8),
		Name:        "Create Custom Reports",
		Description: "Custom reports not included",
		Category:    models.TaskCategoryCSAction,
		Owner:       models.TaskOwnerCSTeam,
		Status:      models.TaskStatusSkipped,
		DependsOn:   []string{id(6)},
	}
	if tier == models.TierEnterprise || tier == models.TierGrowth {
		reportsTask.Description = "Set up custom reporting dashboards per customer requirements"
		reportsTask.Status = models.TaskStatusPending
		reportsTask.DueDate = due(10)
	}

	return []*models.OnboardingTask{
		done(1, "Create Tenant",
			fmt.Sprintf("Provision tenant %s in the platform", tenantID)),
		done(2, "Generate API Credentials",
			"Create API key and secret for programmatic access", id(1)),
		done(3, "Send Welcome Email",
			fmt.Sprintf("Send welcome email to %s with login instructions", customerName), id(1)),
		done(4, "Send Training Materials",
			"Email getting started guides and video tutorials", id(3)),
		{
			ID:          id(5),
			Name:        "Schedule Kickoff Call",
			Description: "Reach out to customer to schedule initial kickoff meeting",
			Category:    models.TaskCategoryCSAction,
			Owner:       models.TaskOwnerCSTeam,
			Status:      models.TaskStatusPending,
			DueDate:     due(1),
			DependsOn:   []string{id(3)},
		},
		{
			ID:          id(6),
			Name:        "Conduct Kickoff Call",
			Description: "30-min call to review goals, timeline, and success metrics",
			Category:    models.TaskCategoryCSAction,
			Owner:       models.TaskOwnerCSTeam,
			Status:      models.TaskStatusPending,
			DueDate:     due(3),
			DependsOn:   []string{id(5)},
		},
		ssoTask,
		reportsTask,
		{
			ID:          id(9),
			Name:        "Verify Login Access",
			Description: "Customer confirms they can log into the platform",
			Category:    models.TaskCategoryCustomerAction,
			Owner:       models.TaskOwnerCustomer,
			Status:      models.TaskStatusPending,
			DueDate:     due(2),
			DependsOn:   []string{id(3)},
		},
		{
			ID:          id(10),
			Name:        "Complete Platform Tour",
			Description: "Customer completes the in-app guided tour",
			Category:    models.TaskCategoryCustomerAction,
			Owner:       models.TaskOwnerCustomer,
			Status:      models.TaskStatusPending,
			DueDate:     due(5),
			DependsOn:   []string{id(9)},
		},
		{
			ID:          id(11),
			Name:        "Invite Team Members",
			Description: "Customer invites their team to the platform",
			Category:    models.TaskCategoryCustomerAction,
			Owner:       models.TaskOwnerCustomer,
			Status:      models.TaskStatusPending,
			DueDate:     due(7),
			DependsOn:   []string{id(9)},
		},
		{
			ID:          id(12),
			Name:        "Create First Campaign",
			Description: "Customer creates their first campaign/project",
			Category:    models.TaskCategoryCustomerAction,
			Owner:       models.TaskOwnerCustomer,
			Status:      models.TaskStatusPending,
			DueDate:     due(14),
			DependsOn:   []string{id(10)},
		},
		{
			ID:          id(13),
			Name:        "30-Day Check-in",
			Description: "CS reaches out to review progress and address any issues",
			Category:    models.TaskCategoryCSAction,
			Owner:       models.TaskOwnerCSTeam,
			Status:      models.TaskStatusPending,
			DueDate:     due(30),
			DependsOn:   []string{id(6)},
		},
		{
			ID:          id(14),
			Name:        "Onboarding Complete",
			Description: "Mark onboarding as complete and transition to BAU support",
			Category:    models.TaskCategoryCSAction,
			Owner:       models.TaskOwnerCSTeam,
			Status:      models.TaskStatusPending,
			DueDate:     due(45),
			DependsOn:   []string{id(12), id(13)},
		},
	}
}
