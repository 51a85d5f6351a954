package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"onboarding-agent/internal/engine"
	"onboarding-agent/internal/provisioning"
	"onboarding-agent/pkg/models"
)

// Server exposes the onboarding pipeline and task checklist as MCP tools so
// assistants can drive onboarding runs conversationally.
type Server struct {
	mcpServer   *server.MCPServer
	engine      *engine.Engine
	provisioner *provisioning.Service
}

func NewServer(eng *engine.Engine, provisioner *provisioning.Service) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			"Customer Onboarding",
			"1.0.0",
			server.WithToolCapabilities(true),
		),
		engine:      eng,
		provisioner: provisioner,
	}

	s.registerTools()
	return s
}

func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"run_onboarding",
			mcp.WithDescription("Run the onboarding pipeline for an account and return the decision"),
			mcp.WithString("account_id", mcp.Required(), mcp.Description("The CRM account ID")),
		),
		s.handleRunOnboarding,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_tasks",
			mcp.WithDescription("List the onboarding checklist for a provisioned account"),
			mcp.WithString("account_id", mcp.Required(), mcp.Description("The CRM account ID")),
		),
		s.handleListTasks,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"update_task_status",
			mcp.WithDescription("Update the status of one onboarding task"),
			mcp.WithString("account_id", mcp.Required(), mcp.Description("The CRM account ID")),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("The task ID, e.g. ACME-001-T005")),
			mcp.WithString("status", mcp.Required(), mcp.Description("New status: pending, in_progress, completed, blocked or skipped")),
			mcp.WithString("completed_by", mcp.Description("Who completed the task")),
			mcp.WithString("notes", mcp.Description("Optional notes")),
		),
		s.handleUpdateTaskStatus,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"overdue_tasks",
			mcp.WithDescription("List open onboarding tasks past their due date"),
			mcp.WithString("account_id", mcp.Required(), mcp.Description("The CRM account ID")),
		),
		s.handleOverdueTasks,
	)
}

func (s *Server) handleRunOnboarding(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	accountID, ok := args["account_id"].(string)
	if !ok || accountID == "" {
		return mcp.NewToolResultError("Missing required parameter: account_id"), nil
	}

	state := s.engine.Run(ctx, models.TriggerEvent{
		EventType: "mcp_tool",
		AccountID: accountID,
	})

	jsonBytes, _ := json.Marshal(state)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleListTasks(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	accountID, ok := args["account_id"].(string)
	if !ok || accountID == "" {
		return mcp.NewToolResultError("Missing required parameter: account_id"), nil
	}

	if !s.provisioner.IsProvisioned(accountID) {
		return mcp.NewToolResultError(fmt.Sprintf("Account %s is not provisioned", accountID)), nil
	}

	jsonBytes, _ := json.Marshal(s.provisioner.ListTasks(accountID))
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleUpdateTaskStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	accountID, _ := args["account_id"].(string)
	taskID, _ := args["task_id"].(string)
	status, _ := args["status"].(string)
	if accountID == "" || taskID == "" || status == "" {
		return mcp.NewToolResultError("Missing required parameters: account_id, task_id, status"), nil
	}
	completedBy, _ := args["completed_by"].(string)
	notes, _ := args["notes"].(string)

	task, err := s.provisioner.UpdateTaskStatus(accountID, taskID, models.TaskStatus(status), completedBy, notes)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update task: %v", err)), nil
	}

	jsonBytes, _ := json.Marshal(task)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleOverdueTasks(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	accountID, ok := args["account_id"].(string)
	if !ok || accountID == "" {
		return mcp.NewToolResultError("Missing required parameter: account_id"), nil
	}

	if !s.provisioner.IsProvisioned(accountID) {
		return mcp.NewToolResultError(fmt.Sprintf("Account %s is not provisioned", accountID)), nil
	}

	jsonBytes, _ := json.Marshal(s.provisioner.OverdueTasks(accountID))
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func MountHTTPHandlers(mux *http.ServeMux, mcpServer *server.MCPServer) {
	// Use SSE server for /mcp/sse and /mcp/message endpoints
	sseServer := server.NewSSEServer(mcpServer, server.WithStaticBasePath("/mcp"))

	mux.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		// Direct POST for tool calls
		if r.Method == http.MethodPost {
			sseServer.ServeHTTP(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// SSE endpoints
	mux.HandleFunc("/mcp/sse", sseServer.ServeHTTP)
	mux.HandleFunc("/mcp/message", sseServer.ServeHTTP)
}
