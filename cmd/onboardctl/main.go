// onboardctl runs onboarding scenarios from the command line against the
// in-process mock systems. Useful for demos and for inspecting pipeline
// behavior without standing up the HTTP server.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"onboarding-agent/internal/config"
	"onboarding-agent/internal/engine"
	"onboarding-agent/internal/integrations"
	"onboarding-agent/internal/logging"
	"onboarding-agent/internal/notify"
	"onboarding-agent/internal/provisioning"
	"onboarding-agent/internal/reports"
	"onboarding-agent/internal/risk"
	"onboarding-agent/pkg/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "onboardctl",
		Short:        "Run customer onboarding workflows against the mock systems",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newScenariosCmd(), newTasksCmd())
	return root
}

// buildStack wires the engine and its collaborators the same way the server
// does, minus the HTTP surface.
func buildStack() (*engine.Engine, *provisioning.Service, *logging.Logger, error) {
	logger := logging.NewLogger()
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

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
	notifier := notify.NewService(notify.NewRecorder(logger), notify.Channels{
		CS:      cfg.Notifications.CSChannel,
		Alerts:  cfg.Notifications.AlertChannel,
		Finance: cfg.Notifications.FinanceChannel,
	})

	return engine.New(crm, contracts, billing, analyzer, provisioner, notifier, logger), provisioner, logger, nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <account-id>",
		Short: "Run the onboarding pipeline for an account and print the run report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, _, err := buildStack()
			if err != nil {
				return err
			}
			state := eng.Run(cmd.Context(), models.TriggerEvent{
				EventType: "cli_run",
				AccountID: args[0],
			})
			fmt.Fprintln(cmd.OutOrStdout(), reports.RenderMarkdown(state, time.Now().UTC()))
			return nil
		},
	}
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "Run every seeded demo scenario and print the decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, _, err := buildStack()
			if err != nil {
				return err
			}
			accounts := []string{"ACME-001", "BETA-002", "GAMMA-003", "DELTA-004", "DELETED-005", "MISSING-999"}
			out := cmd.OutOrStdout()
			for _, accountID := range accounts {
				state := eng.Run(cmd.Context(), models.TriggerEvent{
					EventType: "cli_run",
					AccountID: accountID,
				})
				fmt.Fprintf(out, "%-12s %-8s violations=%d warnings=%d\n",
					accountID, state.Decision, state.ViolationCount(), state.WarningCount())
			}
			return nil
		},
	}
}

func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks <account-id>",
		Short: "Run onboarding for an account and list its checklist tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, provisioner, _, err := buildStack()
			if err != nil {
				return err
			}
			accountID := args[0]
			state := eng.Run(cmd.Context(), models.TriggerEvent{
				EventType: "cli_run",
				AccountID: accountID,
			})
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Decision: %s\n", state.Decision)
			if !provisioner.IsProvisioned(accountID) {
				fmt.Fprintln(out, "Account was not provisioned; no tasks created.")
				return nil
			}
			for _, t := range provisioner.ListTasks(accountID) {
				due := ""
				if t.DueDate != nil {
					due = t.DueDate.Format("2006-01-02")
				}
				fmt.Fprintf(out, "%-16s %-12s %-10s %-28s %s\n",
					t.ID, t.Status, t.Owner, t.Name, due)
			}
			return nil
		},
	}
}
