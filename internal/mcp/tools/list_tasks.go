package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

type ListService interface {
	ListTasks(ctx context.Context, listID string) (json.RawMessage, error)
}

type ListTasksHandler struct {
	Service ListService
}

func (h *ListTasksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listID, err := requireString(req.GetArguments(), "list_id")
	if err != nil {
		return nil, err
	}
	tasks, err := h.Service.ListTasks(ctx, listID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := prettyJSON(tasks)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}
