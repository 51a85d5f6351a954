// Package notify delivers Slack and email notifications for onboarding
// outcomes. The transport is mocked behind the Notifier interface; in
// production this would use the Slack Web API and an email provider.
package notify

import (
	"context"
	"sync"
	"time"

	"onboarding-agent/internal/logging"
)

// Notification kinds.
const (
	TypeSlack = "slack"
	TypeEmail = "email"
)

// Notification is one outbound message, Slack or email.
type Notification struct {
	Type          string    `json:"type"`
	Recipient     string    `json:"recipient"`
	Subject       string    `json:"subject,omitempty"`
	Message       string    `json:"message"`
	Urgency       string    `json:"urgency,omitempty"`
	Template      string    `json:"template,omitempty"`
	AccountID     string    `json:"account_id,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	SentAt        time.Time `json:"sent_at"`
}

// Notifier delivers a notification.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// Recorder is an in-memory Notifier that stores everything it sends,
// so demos and tests can inspect outbound traffic. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	sent   []Notification
	logger *logging.Logger
}

// NewRecorder creates an empty Recorder.
func NewRecorder(logger *logging.Logger) *Recorder {
	return &Recorder{logger: logger}
}

// Send records the notification and logs the delivery.
func (r *Recorder) Send(_ context.Context, n Notification) error {
	if n.SentAt.IsZero() {
		n.SentAt = time.Now().UTC()
	}
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()

	r.logger.Info("notification sent",
		"type", n.Type, "recipient", n.Recipient,
		"account_id", n.AccountID, "urgency", n.Urgency)
	return nil
}

// Sent returns notifications sent so far, newest last. An empty accountID
// returns everything.
func (r *Recorder) Sent(accountID string) []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if accountID == "" {
		out := make([]Notification, len(r.sent))
		copy(out, r.sent)
		return out
	}
	var out []Notification
	for _, n := range r.sent {
		if n.AccountID == accountID {
			out = append(out, n)
		}
	}
	return out
}

// Clear drops the notification history.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}
