package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"onboarding-agent/internal/api"
	"onboarding-agent/internal/config"
	"onboarding-agent/internal/engine"
	"onboarding-agent/internal/integrations"
	"onboarding-agent/internal/logging"
	"onboarding-agent/internal/mcp"
	"onboarding-agent/internal/notify"
	"onboarding-agent/internal/provisioning"
	"onboarding-agent/internal/reports"
	"onboarding-agent/internal/risk"
)

func main() {
	// Initialize logging
	logger := logging.NewLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		log.Fatalf("Configuration loading failed: %v", err)
	}
	logger.Info("Configuration loaded",
		"addr", cfg.Server.Addr,
		"analyzer_endpoint", cfg.Analyzer.Endpoint,
		"config_file", viper.ConfigFileUsed(),
	)

	logger.Info("Starting Customer Onboarding Service")

	// External system clients with configured fault injection
	faults := integrations.FaultConfig{
		CRM:      integrations.FaultKind(cfg.Faults.CRM),
		Contract: integrations.FaultKind(cfg.Faults.Contract),
		Billing:  integrations.FaultKind(cfg.Faults.Billing),
	}
	crm := integrations.NewMockCRM(faults, logger)
	contracts := integrations.NewMockContractSystem(faults, logger)
	billing := integrations.NewMockBilling(faults, logger)

	analyzer := risk.New(risk.Config{
		Endpoint: cfg.Analyzer.Endpoint,
		Model:    cfg.Analyzer.Model,
		APIKey:   cfg.Analyzer.APIKey,
	}, logger)

	provisioner := provisioning.NewService(logger)
	recorder := notify.NewRecorder(logger)
	notifier := notify.NewService(recorder, notify.Channels{
		CS:      cfg.Notifications.CSChannel,
		Alerts:  cfg.Notifications.AlertChannel,
		Finance: cfg.Notifications.FinanceChannel,
	})

	gen, err := reports.NewGenerator(cfg.Reports.OutputDir, logger)
	if err != nil {
		logger.Error("Failed to initialize report generator: %v", err)
		log.Fatalf("Report generator initialization failed: %v", err)
	}

	eng := engine.New(crm, contracts, billing, analyzer, provisioner, notifier, logger)

	logger.Info("Service layer initialized")

	// Create Echo server
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Mount REST API handlers
	apiServer := api.NewServer(eng, provisioner, recorder, gen, logger)
	apiServer.Register(e)

	logger.Info("REST API handlers mounted")

	// Mount MCP protocol handlers
	mcpServer := mcp.NewServer(eng, provisioner)
	mcpHandlers := http.NewServeMux()
	mcp.MountHTTPHandlers(mcpHandlers, mcpServer.GetMCPServer())
	e.Any("/mcp/*", echo.WrapHandler(mcpHandlers))

	logger.Info("MCP protocol handlers mounted")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown handling
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", cfg.Server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for shutdown signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			logger.Error("Server error: %v", err)
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		logger.Info("Shutdown signal received: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error: %v", err)
			if err := server.Close(); err != nil {
				logger.Error("Server close error: %v", err)
			}
		}

		logger.Info("Server stopped gracefully")
	}
}
