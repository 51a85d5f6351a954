package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"onboarding-agent/pkg/models"
)

// HandleOnboardingWebhook runs the onboarding pipeline for a trigger event.
// (POST /api/v1/webhook/onboarding)
func (s *Server) HandleOnboardingWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	var event models.TriggerEvent
	if err := c.Bind(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if event.AccountID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "account_id is required")
	}
	if event.EventType == "" {
		event.EventType = "opportunity_closed_won"
	}

	state := s.Engine.Run(ctx, event)

	// Report generation is best-effort; a failed write never fails the run.
	if s.Reports != nil {
		if _, err := s.Reports.GenerateRunReports(state); err != nil {
			s.Logger.Warn("report generation failed",
				"account_id", state.AccountID, "error", err.Error())
		}
	}

	return c.JSON(http.StatusOK, toResponse(state))
}

func toResponse(state *models.WorkflowState) models.OnboardingResponse {
	resp := models.OnboardingResponse{
		CorrelationID:     state.CorrelationID,
		AccountID:         state.AccountID,
		Decision:          state.Decision,
		Stage:             state.Stage,
		Summary:           state.Summary,
		Violations:        state.Violations,
		Warnings:          state.Warnings,
		APIErrors:         state.APIErrors,
		ActionsTaken:      state.ActionsTaken,
		NotificationsSent: state.NotificationsSent,
		Provisioning:      state.Provisioning,
	}
	if ra := state.RiskAnalysis; ra != nil {
		resp.RiskLevel = string(ra.RiskLevel)
		resp.RecommendedActions = ra.RecommendedActions
	}
	return resp
}
