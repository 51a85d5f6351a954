// Package api contains the HTTP handlers for the onboarding service REST API.
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"onboarding-agent/internal/engine"
	"onboarding-agent/internal/logging"
	"onboarding-agent/internal/notify"
	"onboarding-agent/internal/provisioning"
	"onboarding-agent/internal/reports"
)

// Server holds the dependencies for the API server.
type Server struct {
	Engine      *engine.Engine
	Provisioner *provisioning.Service
	Recorder    *notify.Recorder
	Reports     *reports.Generator
	Logger      *logging.Logger
}

// NewServer creates a new Server.
func NewServer(eng *engine.Engine, provisioner *provisioning.Service, recorder *notify.Recorder, gen *reports.Generator, logger *logging.Logger) *Server {
	return &Server{
		Engine:      eng,
		Provisioner: provisioner,
		Recorder:    recorder,
		Reports:     gen,
		Logger:      logger,
	}
}

// Register mounts all routes on the echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.HandleHealth)

	v1 := e.Group("/api/v1")
	v1.POST("/webhook/onboarding", s.HandleOnboardingWebhook)

	v1.GET("/accounts/:accountID/tasks", s.ListTasks)
	v1.GET("/accounts/:accountID/tasks/summary", s.TaskSummary)
	v1.GET("/accounts/:accountID/tasks/pending", s.PendingTasks)
	v1.GET("/accounts/:accountID/tasks/overdue", s.OverdueTasks)
	v1.GET("/accounts/:accountID/tasks/next", s.NextTasks)
	v1.PATCH("/accounts/:accountID/tasks/:taskID", s.UpdateTask)

	demo := v1.Group("/demo")
	demo.GET("/scenarios", s.ListScenarios)
	demo.POST("/run/:accountID", s.RunScenario)
	demo.POST("/run-all", s.RunAllScenarios)
	demo.GET("/notifications", s.ListNotifications)
	demo.POST("/reset", s.ResetDemo)
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

// HandleHealth returns basic health status (always returns 200 OK).
func (s *Server) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Service:   "onboarding-agent",
		Version:   "1.0.0",
	})
}
