package risk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"onboarding-agent/pkg/models"
)

const analysisSystemPrompt = `You are an assistant helping Customer Success teams understand onboarding issues.
Analyze the onboarding state and respond with JSON:
{"summary": "...", "risk_level": "low|medium|high|critical",
 "risks": [{"issue": "...", "impact": "...", "urgency": "low|medium|high"}],
 "recommended_actions": [{"action": "...", "owner": "...", "priority": 1}],
 "estimated_resolution_time": "...", "can_proceed_with_warnings": true}`

// LLMAnalyzer is an HTTP implementation of the Analyzer interface that calls
// a chat-completion style endpoint.
type LLMAnalyzer struct {
	url    string
	model  string
	apiKey string
	client *http.Client
}

// NewLLMAnalyzer creates a new LLMAnalyzer.
func NewLLMAnalyzer(url, model, apiKey string) *LLMAnalyzer {
	return &LLMAnalyzer{
		url:    url,
		model:  model,
		apiKey: apiKey,
		client: http.DefaultClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the run context to the LLM and parses its JSON verdict.
func (a *LLMAnalyzer) Analyze(ctx context.Context, state *models.WorkflowState) (*models.RiskAnalysis, error) {
	reqBody := chatRequest{
		Model:       a.model,
		Temperature: 0.3,
		Messages: []chatMessage{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: "Analyze this onboarding state:\n\n" + buildContext(state)},
		},
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("risk analysis failed: status code %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("risk analysis returned no choices")
	}

	var analysis models.RiskAnalysis
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	return &analysis, nil
}

// buildContext renders the run state as plain text for the model.
func buildContext(state *models.WorkflowState) string {
	var b strings.Builder

	if a := state.Account; a != nil {
		fmt.Fprintf(&b, "ACCOUNT:\n- Name: %s\n- Industry: %s\n- Country: %s\n\n",
			orUnknown(a.Name), orUnknown(a.Industry), orUnknown(a.BillingCountry))
	} else {
		b.WriteString("ACCOUNT: Missing\n\n")
	}
	if o := state.Opportunity; o != nil {
		fmt.Fprintf(&b, "OPPORTUNITY:\n- Stage: %s\n- Amount: $%.2f\n- Close Date: %s\n\n",
			orUnknown(o.Stage), o.Amount, orUnknown(o.CloseDate))
	} else {
		b.WriteString("OPPORTUNITY: Missing\n\n")
	}
	if c := state.Contract; c != nil {
		fmt.Fprintf(&b, "CONTRACT:\n- Status: %s\n- Effective Date: %s\n\n",
			orUnknown(c.Status), orUnknown(c.EffectiveDate))
	} else {
		b.WriteString("CONTRACT: Missing\n\n")
	}
	if i := state.Invoice; i != nil {
		fmt.Fprintf(&b, "INVOICE:\n- Status: %s\n- Amount Remaining: $%.2f\n- Due Date: %s\n\n",
			orUnknown(i.Status), i.AmountRemaining, orUnknown(i.DueDate))
	} else {
		b.WriteString("INVOICE: Not found\n\n")
	}

	if len(state.Violations) > 0 {
		b.WriteString("BLOCKING VIOLATIONS:\n")
		for domain, msgs := range state.Violations {
			for _, msg := range msgs {
				fmt.Fprintf(&b, "- [%s] %s\n", domain, msg)
			}
		}
		b.WriteString("\n")
	}
	if len(state.Warnings) > 0 {
		b.WriteString("WARNINGS:\n")
		for domain, msgs := range state.Warnings {
			for _, msg := range msgs {
				fmt.Fprintf(&b, "- [%s] %s\n", domain, msg)
			}
		}
	}

	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
