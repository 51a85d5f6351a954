package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Run from a directory without a config file so only defaults apply.
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "gpt-4o-mini", cfg.Analyzer.Model)
	assert.Empty(t, cfg.Analyzer.Endpoint)
	assert.Empty(t, cfg.Faults.CRM)
	assert.Equal(t, "#cs-onboarding", cfg.Notifications.CSChannel)
	assert.Equal(t, "#cs-onboarding-alerts", cfg.Notifications.AlertChannel)
	assert.Equal(t, "#finance-alerts", cfg.Notifications.FinanceChannel)
	assert.Equal(t, "reports_output", cfg.Reports.OutputDir)
}
