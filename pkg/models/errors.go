package models

import (
	"fmt"
	"time"
)

// ErrorCategory classifies a collaborator failure.
type ErrorCategory string

const (
	ErrorCategoryAuth          ErrorCategory = "auth"
	ErrorCategoryAuthorization ErrorCategory = "authorization"
	ErrorCategoryValidation    ErrorCategory = "validation"
	ErrorCategoryNotFound      ErrorCategory = "not_found"
	ErrorCategoryRateLimit     ErrorCategory = "rate_limit"
	ErrorCategoryServerError   ErrorCategory = "server_error"
)

// ErrorRecord captures a failure reported by an external system. It is data,
// not a Go error: fetch stages record it on the workflow state and continue.
// A not_found category never appears here; absence is a business fact handled
// by validation, not an API error.
type ErrorRecord struct {
	System     string        `json:"system"`
	Category   ErrorCategory `json:"category"`
	Code       string        `json:"code"`
	Message    string        `json:"message"`
	HTTPStatus int           `json:"http_status"`
	Stage      Stage         `json:"stage,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Format renders the record the way it appears in violation lists and reports.
func (e ErrorRecord) Format() string {
	return fmt.Sprintf("[%s] %s (HTTP %d)", e.Code, e.Message, e.HTTPStatus)
}
