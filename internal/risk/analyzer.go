// Package risk assesses a workflow run and produces a human-readable summary,
// risk level and recommended actions. Two strategies exist: an LLM-backed
// analyzer and a deterministic rule-based one. The pipeline only ever sees
// the Analyzer interface and always gets a result.
package risk

import (
	"context"

	"onboarding-agent/internal/logging"
	"onboarding-agent/pkg/models"
)

// Analyzer produces a risk assessment for a workflow run.
type Analyzer interface {
	Analyze(ctx context.Context, state *models.WorkflowState) (*models.RiskAnalysis, error)
}

// Config selects and configures the analysis strategy.
type Config struct {
	// Endpoint of the LLM service. Empty selects rule-based analysis only.
	Endpoint string
	Model    string
	APIKey   string
}

// New builds the analyzer for cfg. When an LLM endpoint is configured the
// returned analyzer calls it first and falls back to rule-based analysis on
// any failure, so callers never branch on LLM availability.
func New(cfg Config, logger *logging.Logger) Analyzer {
	rules := &RuleBased{}
	if cfg.Endpoint == "" {
		return rules
	}
	return &fallbackAnalyzer{
		primary:  NewLLMAnalyzer(cfg.Endpoint, cfg.Model, cfg.APIKey),
		fallback: rules,
		logger:   logger,
	}
}

// fallbackAnalyzer tries the primary strategy and falls back on error.
type fallbackAnalyzer struct {
	primary  Analyzer
	fallback Analyzer
	logger   *logging.Logger
}

func (a *fallbackAnalyzer) Analyze(ctx context.Context, state *models.WorkflowState) (*models.RiskAnalysis, error) {
	analysis, err := a.primary.Analyze(ctx, state)
	if err == nil {
		return analysis, nil
	}
	a.logger.Warn("risk.llm.fallback", "account_id", state.AccountID, "error", err)
	return a.fallback.Analyze(ctx, state)
}
