package reports

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"onboarding-agent/pkg/models"
)

// emailSection is one titled block in the email body.
type emailSection struct {
	Title   string
	Content template.HTML
}

var emailTmpl = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Subject}}</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
  <div style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
    <div style="background: #3d5a80; padding: 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 24px;">Customer Onboarding</h1>
    </div>
    <div style="padding: 20px 30px; border-bottom: 1px solid #eee;">
      <h2 style="color: #333; margin: 0; font-size: 20px;">{{.Subject}}</h2>
      <p style="color: #888; margin: 5px 0 0 0; font-size: 12px;">To: {{.To}}</p>
    </div>
    <div style="padding: 30px;">
      {{range .Sections}}
      <div style="margin-bottom: 20px;">
        <h3 style="color: #333; margin-bottom: 10px; font-size: 16px;">{{.Title}}</h3>
        <div style="color: #555; line-height: 1.6;">{{.Content}}</div>
      </div>
      {{end}}
    </div>
    <div style="background-color: #f9f9f9; padding: 20px 30px; border-top: 1px solid #eee;">
      <p style="color: #888; font-size: 12px; margin: 0; text-align: center;">{{.Footer}}</p>
      <p style="color: #aaa; font-size: 11px; margin: 10px 0 0 0; text-align: center;">Generated: {{.GeneratedAt}}</p>
    </div>
  </div>
</body>
</html>`))

func renderEmail(to, subject string, sections []emailSection, generatedAt time.Time) (string, error) {
	var b strings.Builder
	err := emailTmpl.Execute(&b, struct {
		To          string
		Subject     string
		Sections    []emailSection
		Footer      string
		GeneratedAt string
	}{
		To:          to,
		Subject:     subject,
		Sections:    sections,
		Footer:      "This is an automated message from the customer onboarding service.",
		GeneratedAt: generatedAt.Format("2006-01-02 15:04:05 UTC"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return b.String(), nil
}

func renderBlockedEmail(state *models.WorkflowState, generatedAt time.Time) (string, error) {
	var recommended []models.RecommendedAction
	if state.RiskAnalysis != nil {
		recommended = state.RiskAnalysis.RecommendedActions
	}

	var actions strings.Builder
	actions.WriteString("<ol>")
	for _, a := range recommended {
		owner := a.Owner
		if owner == "" {
			owner = "TBD"
		}
		fmt.Fprintf(&actions, "<li>%s <span style='color: #888;'>(%s)</span></li>",
			template.HTMLEscapeString(a.Action), template.HTMLEscapeString(owner))
	}
	actions.WriteString("</ol>")

	sections := []emailSection{
		{
			Title: "Onboarding Status: BLOCKED",
			Content: template.HTML(fmt.Sprintf(
				"<p>The onboarding process for <strong>%s</strong> has been blocked due to critical issues that require resolution.</p>",
				template.HTMLEscapeString(state.AccountName()))),
		},
		{Title: "Critical Violations", Content: findingsHTML(state.Violations, "#dc3545")},
		{Title: "Warnings", Content: findingsHTML(state.Warnings, "#b8860b")},
		{Title: "Recommended Actions", Content: template.HTML(actions.String())},
	}

	subject := fmt.Sprintf("Onboarding BLOCKED - %s", state.AccountName())
	return renderEmail("cs-team@onboarding.demo", subject, sections, generatedAt)
}

func renderSuccessEmail(state *models.WorkflowState, generatedAt time.Time) (string, error) {
	tenantID, tier := "N/A", "N/A"
	if p := state.Provisioning; p != nil {
		tenantID = p.TenantID
		tier = p.Tier
	}

	sections := []emailSection{
		{
			Title: "Onboarding Complete",
			Content: template.HTML(fmt.Sprintf(
				"<p><strong>%s</strong> has been successfully onboarded and provisioned.</p>",
				template.HTMLEscapeString(state.AccountName()))),
		},
		{
			Title: "Provisioning Details",
			Content: template.HTML(fmt.Sprintf(
				"<table><tr><td><strong>Tenant ID:</strong></td><td><code>%s</code></td></tr>"+
					"<tr><td><strong>Tier:</strong></td><td>%s</td></tr>"+
					"<tr><td><strong>Status:</strong></td><td>Active</td></tr></table>",
				template.HTMLEscapeString(tenantID), template.HTMLEscapeString(tier))),
		},
		{
			Title: "Next Steps",
			Content: template.HTML("<ol><li>Schedule kickoff call with customer</li>" +
				"<li>Verify customer received welcome email</li>" +
				"<li>Assign dedicated onboarding specialist</li>" +
				"<li>Set up first training session</li></ol>"),
		},
	}

	subject := fmt.Sprintf("Onboarding Complete - %s", state.AccountName())
	return renderEmail("cs-team@onboarding.demo", subject, sections, generatedAt)
}

func findingsHTML(findings map[string][]string, color string) template.HTML {
	total := 0
	for _, msgs := range findings {
		total += len(msgs)
	}
	if total == 0 {
		return template.HTML("<p style='color: #28a745;'>None</p>")
	}

	domains := make([]string, 0, len(findings))
	for domain := range findings {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	var b strings.Builder
	b.WriteString("<ul>")
	for _, domain := range domains {
		for _, msg := range findings[domain] {
			fmt.Fprintf(&b, "<li style='color: %s;'><strong>%s:</strong> %s</li>",
				color, template.HTMLEscapeString(domain), template.HTMLEscapeString(msg))
		}
	}
	b.WriteString("</ul>")
	return template.HTML(b.String())
}
