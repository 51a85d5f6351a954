package reports

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"onboarding-agent/pkg/models"
)

// RenderMarkdown builds the human-readable run report.
func RenderMarkdown(state *models.WorkflowState, generatedAt time.Time) string {
	var b strings.Builder
	timestamp := generatedAt.Format("2006-01-02 15:04:05 UTC")
	duration := state.CompletedAt.Sub(state.StartedAt)
	if duration < 0 {
		duration = 0
	}

	riskLevel := "N/A"
	summary := "No summary available"
	var recommended []models.RecommendedAction
	if ra := state.RiskAnalysis; ra != nil {
		riskLevel = strings.ToUpper(string(ra.RiskLevel))
		if ra.Summary != "" {
			summary = ra.Summary
		}
		recommended = ra.RecommendedActions
	}

	b.WriteString("# Onboarding Run Report\n\n")
	b.WriteString("## Summary\n\n")
	b.WriteString("| Field | Value |\n|-------|-------|\n")
	fmt.Fprintf(&b, "| **Account** | %s (`%s`) |\n", state.AccountName(), state.AccountID)
	fmt.Fprintf(&b, "| **Correlation ID** | `%s` |\n", state.CorrelationID)
	fmt.Fprintf(&b, "| **Timestamp** | %s |\n", timestamp)
	fmt.Fprintf(&b, "| **Decision** | **%s** |\n", state.Decision)
	fmt.Fprintf(&b, "| **Final Stage** | %s |\n", state.Stage)
	fmt.Fprintf(&b, "| **Risk Level** | %s |\n", riskLevel)
	fmt.Fprintf(&b, "| **Duration** | %dms |\n\n", duration.Milliseconds())

	b.WriteString("---\n\n## Risk Analysis\n\n### Summary\n")
	b.WriteString(summary + "\n\n### Recommended Actions\n")
	if len(recommended) == 0 {
		b.WriteString("_None_\n")
	}
	for i, action := range recommended {
		owner := action.Owner
		if owner == "" {
			owner = "TBD"
		}
		fmt.Fprintf(&b, "%d. %s _(Owner: %s)_\n", i+1, action.Action, owner)
	}

	b.WriteString("\n---\n\n## Validation Results\n\n### Critical Violations (Blocking)\n")
	b.WriteString(findingsMarkdown(state.Violations))
	b.WriteString("\n### Warnings (Non-blocking)\n")
	b.WriteString(findingsMarkdown(state.Warnings))

	b.WriteString("\n---\n\n## Actions Taken\n")
	if len(state.ActionsTaken) == 0 {
		b.WriteString("_None_\n")
	}
	for _, action := range state.ActionsTaken {
		details, _ := json.Marshal(action.Details)
		fmt.Fprintf(&b, "- %s: %s\n", action.Type, details)
	}

	b.WriteString("\n---\n\n## Notifications Sent\n")
	if len(state.NotificationsSent) == 0 {
		b.WriteString("_None_\n")
	}
	for _, n := range state.NotificationsSent {
		fmt.Fprintf(&b, "- %s -> %s\n", n.Channel, n.Recipient)
	}

	b.WriteString("\n---\n\n## Provisioning\n")
	if p := state.Provisioning; p != nil {
		b.WriteString("\n| Field | Value |\n|-------|-------|\n")
		fmt.Fprintf(&b, "| Tenant ID | `%s` |\n", p.TenantID)
		fmt.Fprintf(&b, "| Status | %s |\n", p.Status)
		fmt.Fprintf(&b, "| Tier | %s |\n", p.Tier)
	} else {
		b.WriteString("_Not provisioned_\n")
	}

	b.WriteString("\n---\n\n## Audit Information\n\n")
	fmt.Fprintf(&b, "- **Run ID**: `%s`\n", state.CorrelationID)
	fmt.Fprintf(&b, "- **Generated**: %s\n", timestamp)
	b.WriteString("\n---\n\n_This report was automatically generated by the onboarding service._\n")

	return b.String()
}

func findingsMarkdown(findings map[string][]string) string {
	total := 0
	for _, msgs := range findings {
		total += len(msgs)
	}
	if total == 0 {
		return "_None_\n"
	}

	domains := make([]string, 0, len(findings))
	for domain := range findings {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	var b strings.Builder
	for _, domain := range domains {
		for _, msg := range findings[domain] {
			fmt.Fprintf(&b, "- **%s**: %s\n", domain, msg)
		}
	}
	return b.String()
}
