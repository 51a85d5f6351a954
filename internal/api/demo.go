package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"onboarding-agent/pkg/models"
)

// Scenario describes one seeded demo account and its expected outcome.
type Scenario struct {
	AccountID   string `json:"account_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Expected    string `json:"expected_decision"`
}

var demoScenarios = []Scenario{
	{
		AccountID:   "ACME-001",
		Name:        "Happy path",
		Description: "Complete account, executed contract, paid invoice",
		Expected:    string(models.DecisionProceed),
	},
	{
		AccountID:   "BETA-002",
		Name:        "Multiple blockers",
		Description: "Open opportunity, unsigned contract, overdue invoice",
		Expected:    string(models.DecisionBlock),
	},
	{
		AccountID:   "GAMMA-003",
		Name:        "Draft contract",
		Description: "Contract still in draft, account missing billing country, no invoice",
		Expected:    string(models.DecisionBlock),
	},
	{
		AccountID:   "DELTA-004",
		Name:        "Overdue invoice only",
		Description: "Everything valid except an overdue invoice warning",
		Expected:    string(models.DecisionEscalate),
	},
	{
		AccountID:   "DELETED-005",
		Name:        "Deleted account",
		Description: "Account exists but is soft-deleted in the CRM",
		Expected:    string(models.DecisionBlock),
	},
	{
		AccountID:   "MISSING-999",
		Name:        "Unknown account",
		Description: "No such account in any system",
		Expected:    string(models.DecisionBlock),
	},
}

// ListScenarios lists the seeded demo scenarios.
// (GET /api/v1/demo/scenarios)
func (s *Server) ListScenarios(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"scenarios": demoScenarios})
}

// RunScenario runs the pipeline for one demo account.
// (POST /api/v1/demo/run/:accountID)
func (s *Server) RunScenario(c echo.Context) error {
	accountID := c.Param("accountID")
	state := s.Engine.Run(c.Request().Context(), models.TriggerEvent{
		EventType: "demo_run",
		AccountID: accountID,
	})
	return c.JSON(http.StatusOK, toResponse(state))
}

// RunAllScenarios runs every demo scenario in sequence.
// (POST /api/v1/demo/run-all)
func (s *Server) RunAllScenarios(c echo.Context) error {
	ctx := c.Request().Context()
	results := make([]models.OnboardingResponse, 0, len(demoScenarios))
	for _, sc := range demoScenarios {
		state := s.Engine.Run(ctx, models.TriggerEvent{
			EventType: "demo_run",
			AccountID: sc.AccountID,
		})
		results = append(results, toResponse(state))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"results": results})
}

// ListNotifications returns the recorded outbound notifications, optionally
// filtered by account.
// (GET /api/v1/demo/notifications?account_id=ACME-001)
func (s *Server) ListNotifications(c echo.Context) error {
	sent := s.Recorder.Sent(c.QueryParam("account_id"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":         len(sent),
		"notifications": sent,
	})
}

// ResetDemo clears provisioned tenants and notification history so demo runs
// start from a clean slate.
// (POST /api/v1/demo/reset)
func (s *Server) ResetDemo(c echo.Context) error {
	s.Provisioner.Reset()
	s.Recorder.Clear()
	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}
