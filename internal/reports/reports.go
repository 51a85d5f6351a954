// Package reports renders run artifacts: a Markdown run report, HTML email
// previews and a JSON audit record, written to a configurable directory.
package reports

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"onboarding-agent/internal/logging"
	"onboarding-agent/pkg/models"
)

// Generator writes run reports to an output directory.
type Generator struct {
	dir    string
	logger *logging.Logger
	now    func() time.Time
}

// NewGenerator creates a report generator rooted at dir, creating the
// directory when needed.
func NewGenerator(dir string, logger *logging.Logger) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}
	return &Generator{dir: dir, logger: logger, now: time.Now}, nil
}

// SetClock overrides the time source, for tests.
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// GenerateRunReports writes every artifact for a completed run and returns
// the written paths keyed by artifact kind.
func (g *Generator) GenerateRunReports(state *models.WorkflowState) (map[string]string, error) {
	stamp := g.now().UTC().Format("20060102_150405")
	files := map[string]string{}

	mdPath := filepath.Join(g.dir, fmt.Sprintf("run_report_%s_%s.md", state.AccountID, stamp))
	if err := os.WriteFile(mdPath, []byte(RenderMarkdown(state, g.now().UTC())), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write markdown report: %w", err)
	}
	files["markdown"] = mdPath

	switch state.Decision {
	case models.DecisionBlock:
		path := filepath.Join(g.dir, fmt.Sprintf("email_blocked_%s_%s.html", state.AccountID, stamp))
		html, err := renderBlockedEmail(state, g.now().UTC())
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write blocked email: %w", err)
		}
		files["email_html"] = path

	case models.DecisionProceed:
		path := filepath.Join(g.dir, fmt.Sprintf("email_success_%s_%s.html", state.AccountID, stamp))
		html, err := renderSuccessEmail(state, g.now().UTC())
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write success email: %w", err)
		}
		files["email_html"] = path
	}

	audit, err := RenderAuditJSON(state, g.now().UTC())
	if err != nil {
		return nil, err
	}
	auditPath := filepath.Join(g.dir, fmt.Sprintf("audit_%s_%s.json", state.AccountID, stamp))
	if err := os.WriteFile(auditPath, audit, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write audit record: %w", err)
	}
	files["audit_json"] = auditPath

	g.logger.Info("run reports generated",
		"account_id", state.AccountID,
		"correlation_id", state.CorrelationID,
		"files", len(files))
	return files, nil
}

// RenderAuditJSON serializes the run outcome as a pretty-printed audit record.
func RenderAuditJSON(state *models.WorkflowState, generatedAt time.Time) ([]byte, error) {
	record := struct {
		CorrelationID     string                    `json:"correlation_id"`
		AccountID         string                    `json:"account_id"`
		AccountName       string                    `json:"account_name"`
		Decision          models.Decision           `json:"decision"`
		Stage             models.Stage              `json:"stage"`
		GeneratedAt       time.Time                 `json:"generated_at"`
		RiskAnalysis      *models.RiskAnalysis      `json:"risk_analysis,omitempty"`
		Violations        map[string][]string       `json:"violations"`
		Warnings          map[string][]string       `json:"warnings"`
		APIErrors         []models.ErrorRecord      `json:"api_errors,omitempty"`
		ActionsTaken      []models.Action           `json:"actions_taken"`
		NotificationsSent []models.SentNotification `json:"notifications_sent"`
		Provisioning      *models.ProvisionResult   `json:"provisioning,omitempty"`
	}{
		CorrelationID:     state.CorrelationID,
		AccountID:         state.AccountID,
		AccountName:       state.AccountName(),
		Decision:          state.Decision,
		Stage:             state.Stage,
		GeneratedAt:       generatedAt,
		RiskAnalysis:      state.RiskAnalysis,
		Violations:        state.Violations,
		Warnings:          state.Warnings,
		APIErrors:         state.APIErrors,
		ActionsTaken:      state.ActionsTaken,
		NotificationsSent: state.NotificationsSent,
		Provisioning:      state.Provisioning,
	}
	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit record: %w", err)
	}
	return out, nil
}
