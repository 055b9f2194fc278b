package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/taskbridge/clickup-mcp/internal/clickup"
)

type CreateService interface {
	CreateTask(ctx context.Context, listID string, params clickup.TaskParams) (json.RawMessage, error)
}

type CreateTaskHandler struct {
	Service CreateService
}

func (h *CreateTaskHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	listID, err := requireString(args, "list_id")
	if err != nil {
		return nil, err
	}
	name, err := requireString(args, "name")
	if err != nil {
		return nil, err
	}
	description, err := optionalString(args, "description")
	if err != nil {
		return nil, err
	}
	assignees, err := optionalIntSlice(args, "assignees")
	if err != nil {
		return nil, err
	}
	task, err := h.Service.CreateTask(ctx, listID, clickup.TaskParams{
		Name:        name,
		Description: description,
		Assignees:   assignees,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := prettyJSON(task)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}
