package notify

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Channels holds the Slack channel routing for each audience.
type Channels struct {
	CS      string
	Alerts  string
	Finance string
}

// Service renders the standard onboarding notifications and hands them to a
// Notifier for delivery. Each method returns the notification it sent so
// callers can record it in the run's audit trail.
type Service struct {
	notifier Notifier
	channels Channels
}

// NewService creates a notification service on top of the given transport.
func NewService(notifier Notifier, channels Channels) *Service {
	return &Service{notifier: notifier, channels: channels}
}

// NotifyBlocked alerts the CS team that onboarding hit blocking violations.
func (s *Service) NotifyBlocked(ctx context.Context, accountName, accountID string, violations map[string][]string, correlationID string) (Notification, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "*Onboarding BLOCKED* for %s\n\n", accountName)
	b.WriteString("The automated onboarding process has encountered critical issues that require immediate attention.\n\n")
	b.WriteString("*Violations:*\n")
	b.WriteString(formatFindings(violations))
	b.WriteString("\n*Next Steps:*\n")
	b.WriteString("1. Review the violations above\n")
	b.WriteString("2. Resolve data issues in source systems\n")
	b.WriteString("3. Re-trigger onboarding when resolved\n")

	n := Notification{
		Type:          TypeSlack,
		Recipient:     s.channels.Alerts,
		Message:       b.String(),
		Urgency:       "high",
		AccountID:     accountID,
		CorrelationID: correlationID,
	}
	return n, s.notifier.Send(ctx, n)
}

// NotifyEscalation asks the CS team to review warnings before proceeding.
func (s *Service) NotifyEscalation(ctx context.Context, accountName, accountID string, warnings map[string][]string, correlationID string) (Notification, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "*Onboarding Needs Review* for %s\n\n", accountName)
	b.WriteString("The automated onboarding process has identified issues that may require your attention.\n\n")
	b.WriteString("*Warnings:*\n")
	b.WriteString(formatFindings(warnings))
	b.WriteString("\n*Recommended Actions:*\n")
	b.WriteString("- Review warnings and determine if manual intervention needed\n")
	b.WriteString("- Approve to proceed or resolve issues first\n")

	n := Notification{
		Type:          TypeSlack,
		Recipient:     s.channels.CS,
		Message:       b.String(),
		Urgency:       "medium",
		AccountID:     accountID,
		CorrelationID: correlationID,
	}
	return n, s.notifier.Send(ctx, n)
}

// NotifySuccess tells the CS team a tenant is live.
func (s *Service) NotifySuccess(ctx context.Context, accountName, accountID, tenantID, correlationID string) (Notification, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "*Onboarding Complete* for %s\n\n", accountName)
	b.WriteString("The customer has been successfully provisioned and is ready to use the platform.\n\n")
	fmt.Fprintf(&b, "*Details:*\n- Tenant ID: `%s`\n- Status: Active\n\n", tenantID)
	b.WriteString("*Next Steps:*\n")
	b.WriteString("- Schedule kickoff call with customer\n")
	b.WriteString("- Send welcome email with login credentials\n")
	b.WriteString("- Assign to onboarding specialist\n")

	n := Notification{
		Type:          TypeSlack,
		Recipient:     s.channels.CS,
		Message:       b.String(),
		Urgency:       "low",
		AccountID:     accountID,
		CorrelationID: correlationID,
	}
	return n, s.notifier.Send(ctx, n)
}

// NotifyFinanceOverdue escalates an overdue invoice to the finance team.
func (s *Service) NotifyFinanceOverdue(ctx context.Context, accountName, accountID, invoiceID string, amount float64, daysOverdue int, correlationID string) (Notification, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "*Overdue Invoice Alert* for %s\n\n", accountName)
	b.WriteString("An onboarding is blocked due to an overdue invoice.\n\n")
	fmt.Fprintf(&b, "*Invoice Details:*\n- Invoice ID: `%s`\n- Amount: $%.2f\n- Days Overdue: %d\n\n",
		invoiceID, amount, daysOverdue)
	b.WriteString("*Impact:*\nCustomer onboarding cannot proceed until payment is resolved.\n")

	n := Notification{
		Type:          TypeSlack,
		Recipient:     s.channels.Finance,
		Message:       b.String(),
		Urgency:       "high",
		AccountID:     accountID,
		CorrelationID: correlationID,
	}
	return n, s.notifier.Send(ctx, n)
}

// SendWelcomeEmail sends the customer their login details.
func (s *Service) SendWelcomeEmail(ctx context.Context, customerEmail, customerName, accountName, tenantID, accountID, correlationID string) (Notification, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", customerName)
	fmt.Fprintf(&b, "Welcome aboard, %s! Your account has been provisioned and you're ready to get started.\n\n", accountName)
	fmt.Fprintf(&b, "Here are your account details:\n- Tenant ID: %s\n- Login URL: https://app.onboarding.demo/login\n\n", tenantID)
	b.WriteString("Getting Started:\n")
	b.WriteString("1. Log in using your email address\n")
	b.WriteString("2. Complete the platform tour\n")
	b.WriteString("3. Set up your first campaign\n\n")
	b.WriteString("Your Customer Success Manager will reach out shortly to schedule a kickoff call.\n\n")
	b.WriteString("If you have any questions, don't hesitate to reach out.\n")

	n := Notification{
		Type:          TypeEmail,
		Recipient:     customerEmail,
		Subject:       fmt.Sprintf("Welcome aboard, %s!", accountName),
		Message:       b.String(),
		Template:      "customer_welcome",
		AccountID:     accountID,
		CorrelationID: correlationID,
	}
	return n, s.notifier.Send(ctx, n)
}

// formatFindings renders a findings map as a stable bullet list.
func formatFindings(findings map[string][]string) string {
	domains := make([]string, 0, len(findings))
	for domain := range findings {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	var b strings.Builder
	for _, domain := range domains {
		for _, msg := range findings[domain] {
			fmt.Fprintf(&b, "- *%s*: %s\n", domain, msg)
		}
	}
	return b.String()
}
