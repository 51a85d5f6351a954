package provisioning

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-agent/internal/logging"
	"onboarding-agent/pkg/models"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(logging.NewLogger())
}

func taskByID(tasks []models.OnboardingTask, id string) *models.OnboardingTask {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

func TestProvision_CreatesChecklist(t *testing.T) {
	s := newService(t)
	result := s.Provision("ACME-001", models.TierEnterprise, "ACME Corp")

	assert.Equal(t, "ACME-001", result.AccountID)
	assert.Equal(t, "ACTIVE", result.Status)
	assert.Equal(t, models.TierEnterprise, result.Tier)
	assert.Contains(t, result.AdminURL, result.TenantID)
	assert.Equal(t, 100, result.Config.MaxUsers)
	assert.Contains(t, result.Config.Features, "sso")

	tasks := s.ListTasks("ACME-001")
	require.Len(t, tasks, 14)

	completed := 0
	for _, task := range tasks {
		if task.Status == models.TaskStatusCompleted {
			completed++
			assert.Equal(t, models.TaskCategoryAutomated, task.Category)
			assert.Equal(t, "onboarding_agent", task.CompletedBy)
			require.NotNil(t, task.CompletedAt)
		}
	}
	assert.Equal(t, 4, completed)
	assert.Equal(t, 14, result.OnboardingTasks.TotalTasks)
	assert.Equal(t, 4, result.OnboardingTasks.Completed)
	assert.Equal(t, 29, result.OnboardingTasks.CompletionPercentage)
}

func TestProvision_IsIdempotent(t *testing.T) {
	s := newService(t)
	first := s.Provision("ACME-001", models.TierEnterprise, "ACME Corp")
	second := s.Provision("ACME-001", models.TierStarter, "Someone Else")

	assert.Equal(t, first.TenantID, second.TenantID)
	assert.Equal(t, models.TierEnterprise, second.Tier)
}

func TestProvision_UnknownTierFallsBackToStarter(t *testing.T) {
	s := newService(t)
	result := s.Provision("X-1", "Platinum", "X Corp")
	assert.Equal(t, models.TierStarter, result.Tier)
	assert.Equal(t, 5, result.Config.MaxUsers)
}

func TestProvision_TierDependentTasks(t *testing.T) {
	s := newService(t)

	t.Run("enterprise gets sso and custom reports", func(t *testing.T) {
		s.Provision("ENT-1", models.TierEnterprise, "Ent Corp")
		tasks := s.ListTasks("ENT-1")
		sso := taskByID(tasks, "ENT-1-T007")
		require.NotNil(t, sso)
		assert.Equal(t, models.TaskStatusPending, sso.Status)
		require.NotNil(t, sso.DueDate)

		reports := taskByID(tasks, "ENT-1-T008")
		require.NotNil(t, reports)
		assert.Equal(t, models.TaskStatusPending, reports.Status)
	})

	t.Run("growth skips sso but keeps custom reports", func(t *testing.T) {
		s.Provision("GRW-1", models.TierGrowth, "Growth Corp")
		tasks := s.ListTasks("GRW-1")
		assert.Equal(t, models.TaskStatusSkipped, taskByID(tasks, "GRW-1-T007").Status)
		assert.Equal(t, models.TaskStatusPending, taskByID(tasks, "GRW-1-T008").Status)
	})

	t.Run("starter skips both", func(t *testing.T) {
		s.Provision("STR-1", models.TierStarter, "Starter Corp")
		tasks := s.ListTasks("STR-1")
		assert.Equal(t, models.TaskStatusSkipped, taskByID(tasks, "STR-1-T007").Status)
		assert.Equal(t, models.TaskStatusSkipped, taskByID(tasks, "STR-1-T008").Status)
	})
}

func TestUpdateTaskStatus(t *testing.T) {
	s := newService(t)
	s.Provision("ACME-001", models.TierEnterprise, "ACME Corp")

	t.Run("completion stamps metadata", func(t *testing.T) {
		task, err := s.UpdateTaskStatus("ACME-001", "ACME-001-T005", models.TaskStatusCompleted, "sarah", "done on call")
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusCompleted, task.Status)
		assert.Equal(t, "sarah", task.CompletedBy)
		assert.Equal(t, "done on call", task.Notes)
		require.NotNil(t, task.CompletedAt)
	})

	t.Run("completion without actor records unknown", func(t *testing.T) {
		task, err := s.UpdateTaskStatus("ACME-001", "ACME-001-T006", models.TaskStatusCompleted, "", "")
		require.NoError(t, err)
		assert.Equal(t, "unknown", task.CompletedBy)
	})

	t.Run("any transition is accepted", func(t *testing.T) {
		// Corrections move tasks backwards; the checklist never rejects that.
		task, err := s.UpdateTaskStatus("ACME-001", "ACME-001-T006", models.TaskStatusPending, "", "")
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusPending, task.Status)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := s.UpdateTaskStatus("ACME-001", "ACME-001-T005", models.TaskStatus("done"), "", "")
		assert.Error(t, err)
	})

	t.Run("unknown task errors", func(t *testing.T) {
		_, err := s.UpdateTaskStatus("ACME-001", "ACME-001-T099", models.TaskStatusCompleted, "", "")
		assert.Error(t, err)
	})

	t.Run("unprovisioned account errors", func(t *testing.T) {
		_, err := s.UpdateTaskStatus("NOPE-1", "NOPE-1-T001", models.TaskStatusCompleted, "", "")
		assert.Error(t, err)
	})
}

func TestPendingTasksByOwner(t *testing.T) {
	s := newService(t)
	s.Provision("ACME-001", models.TierEnterprise, "ACME Corp")

	for _, task := range s.PendingTasks("ACME-001", models.TaskOwnerCustomer) {
		assert.Equal(t, models.TaskOwnerCustomer, task.Owner)
		assert.True(t, task.Open())
	}
	// Automated tasks complete at provisioning time; nothing stays open for
	// the system owner.
	assert.Empty(t, s.PendingTasks("ACME-001", models.TaskOwnerSystem))
}

func TestOverdueTasks(t *testing.T) {
	s := newService(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return base })
	s.Provision("ACME-001", models.TierEnterprise, "ACME Corp")

	assert.Empty(t, s.OverdueTasks("ACME-001"))

	// A week later the kickoff scheduling and call tasks are past due.
	s.SetClock(func() time.Time { return base.AddDate(0, 0, 8) })
	overdue := s.OverdueTasks("ACME-001")
	require.NotEmpty(t, overdue)
	for _, task := range overdue {
		assert.True(t, task.Open())
		require.NotNil(t, task.DueDate)
	}

	// Completed tasks are never overdue.
	_, err := s.UpdateTaskStatus("ACME-001", "ACME-001-T005", models.TaskStatusCompleted, "sarah", "")
	require.NoError(t, err)
	for _, task := range s.OverdueTasks("ACME-001") {
		assert.NotEqual(t, "ACME-001-T005", task.ID)
	}
}

func TestSummary_NextActionsRespectDependencies(t *testing.T) {
	s := newService(t)
	s.Provision("ACME-001", models.TierEnterprise, "ACME Corp")

	summary := s.Summary("ACME-001")
	require.NotNil(t, summary)
	require.NotEmpty(t, summary.NextActions)
	assert.LessOrEqual(t, len(summary.NextActions), 3)

	// T006 depends on pending T005, so it can never be a next action yet.
	for _, action := range summary.NextActions {
		assert.NotEqual(t, "ACME-001-T006", action.TaskID)
	}
}

func TestDeprovisionAndReset(t *testing.T) {
	s := newService(t)
	s.Provision("ACME-001", models.TierEnterprise, "ACME Corp")
	s.Provision("BETA-002", models.TierGrowth, "Beta Industries")

	s.Deprovision("ACME-001")
	assert.False(t, s.IsProvisioned("ACME-001"))
	assert.True(t, s.IsProvisioned("BETA-002"))
	assert.Nil(t, s.ListTasks("ACME-001"))

	s.Reset()
	assert.False(t, s.IsProvisioned("BETA-002"))
}

func TestUpdateTaskStatus_ConcurrentUpdates(t *testing.T) {
	s := newService(t)
	s.Provision("ACME-001", models.TierEnterprise, "ACME Corp")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			taskID := fmt.Sprintf("ACME-001-T%03d", 5+i%10)
			_, _ = s.UpdateTaskStatus("ACME-001", taskID, models.TaskStatusInProgress, "", "")
		}(i)
	}
	wg.Wait()

	summary := s.Summary("ACME-001")
	require.NotNil(t, summary)
	assert.Equal(t, 14, summary.TotalTasks)
	assert.Equal(t, summary.Completed+summary.Pending+summary.InProgress+summary.Blocked,
		14-skippedCount(s.ListTasks("ACME-001")))
}

func skippedCount(tasks []models.OnboardingTask) int {
	n := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusSkipped {
			n++
		}
	}
	return n
}
