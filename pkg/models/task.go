package models

import "time"

// TaskStatus is the lifecycle state of an onboarding task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusSkipped    TaskStatus = "skipped"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted,
		TaskStatusBlocked, TaskStatusSkipped:
		return true
	}
	return false
}

// TaskCategory groups onboarding tasks by the kind of work involved.
type TaskCategory string

const (
	TaskCategoryAutomated      TaskCategory = "automated"
	TaskCategoryCSAction       TaskCategory = "cs_action"
	TaskCategoryCustomerAction TaskCategory = "customer_action"
	TaskCategoryTechnical      TaskCategory = "technical"
)

// TaskOwner identifies who is responsible for completing a task.
type TaskOwner string

const (
	TaskOwnerSystem   TaskOwner = "system"
	TaskOwnerCSTeam   TaskOwner = "cs_team"
	TaskOwnerCustomer TaskOwner = "customer"
)

// OnboardingTask is one item of the post-provisioning checklist. Tasks are
// created in a fixed batch at provisioning time and are never deleted, only
// transitioned. DependsOn is advisory ordering metadata: it feeds the
// next-actions hint but completion is never gated on it.
type OnboardingTask struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Category    TaskCategory `json:"category"`
	Owner       TaskOwner    `json:"owner"`
	Status      TaskStatus   `json:"status"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	CompletedBy string       `json:"completed_by,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	DependsOn   []string     `json:"depends_on,omitempty"`
}

// Open reports whether the task still needs action.
func (t *OnboardingTask) Open() bool {
	return t.Status == TaskStatusPending || t.Status == TaskStatusInProgress
}

// NextAction is a task surfaced as immediately actionable.
type NextAction struct {
	TaskID  string     `json:"task_id"`
	Name    string     `json:"name"`
	Owner   TaskOwner  `json:"owner"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

// TaskSummary aggregates checklist progress for reports and API responses.
type TaskSummary struct {
	TotalTasks           int          `json:"total_tasks"`
	Completed            int          `json:"completed"`
	Pending              int          `json:"pending"`
	InProgress           int          `json:"in_progress"`
	Blocked              int          `json:"blocked"`
	CompletionPercentage int          `json:"completion_percentage"`
	NextActions          []NextAction `json:"next_actions,omitempty"`
}
