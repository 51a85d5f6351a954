package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"onboarding-agent/pkg/models"
)

// ListTasks returns the full onboarding checklist for an account.
// (GET /api/v1/accounts/:accountID/tasks)
func (s *Server) ListTasks(c echo.Context) error {
	accountID := c.Param("accountID")
	if !s.Provisioner.IsProvisioned(accountID) {
		return echo.NewHTTPError(http.StatusNotFound, "Account "+accountID+" is not provisioned")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"account_id": accountID,
		"tasks":      s.Provisioner.ListTasks(accountID),
	})
}

// TaskSummary returns checklist progress for an account.
// (GET /api/v1/accounts/:accountID/tasks/summary)
func (s *Server) TaskSummary(c echo.Context) error {
	accountID := c.Param("accountID")
	summary := s.Provisioner.Summary(accountID)
	if summary == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Account "+accountID+" is not provisioned")
	}
	return c.JSON(http.StatusOK, summary)
}

// PendingTasks returns open tasks, optionally filtered by owner.
// (GET /api/v1/accounts/:accountID/tasks/pending?owner=cs_team)
func (s *Server) PendingTasks(c echo.Context) error {
	accountID := c.Param("accountID")
	if !s.Provisioner.IsProvisioned(accountID) {
		return echo.NewHTTPError(http.StatusNotFound, "Account "+accountID+" is not provisioned")
	}

	owner := models.TaskOwner(strings.ToLower(c.QueryParam("owner")))
	var tasks []models.OnboardingTask
	if owner == "" {
		for _, o := range []models.TaskOwner{models.TaskOwnerSystem, models.TaskOwnerCSTeam, models.TaskOwnerCustomer} {
			tasks = append(tasks, s.Provisioner.PendingTasks(accountID, o)...)
		}
	} else {
		tasks = s.Provisioner.PendingTasks(accountID, owner)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"account_id": accountID,
		"tasks":      tasks,
	})
}

// OverdueTasks returns open tasks past their due date.
// (GET /api/v1/accounts/:accountID/tasks/overdue)
func (s *Server) OverdueTasks(c echo.Context) error {
	accountID := c.Param("accountID")
	if !s.Provisioner.IsProvisioned(accountID) {
		return echo.NewHTTPError(http.StatusNotFound, "Account "+accountID+" is not provisioned")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"account_id": accountID,
		"tasks":      s.Provisioner.OverdueTasks(accountID),
	})
}

// NextTasks returns the immediately actionable tasks from the summary.
// (GET /api/v1/accounts/:accountID/tasks/next)
func (s *Server) NextTasks(c echo.Context) error {
	accountID := c.Param("accountID")
	summary := s.Provisioner.Summary(accountID)
	if summary == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Account "+accountID+" is not provisioned")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"account_id":   accountID,
		"next_actions": summary.NextActions,
	})
}

// UpdateTask changes the status of one checklist task.
// (PATCH /api/v1/accounts/:accountID/tasks/:taskID)
func (s *Server) UpdateTask(c echo.Context) error {
	accountID := c.Param("accountID")
	taskID := c.Param("taskID")

	var req models.TaskUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if !req.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task status: "+string(req.Status))
	}

	task, err := s.Provisioner.UpdateTaskStatus(accountID, taskID, req.Status, req.CompletedBy, req.Notes)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, task)
}
