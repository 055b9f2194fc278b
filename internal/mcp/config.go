package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/taskbridge/clickup-mcp/internal/clickup"
	"github.com/taskbridge/clickup-mcp/internal/config"
	"github.com/taskbridge/clickup-mcp/internal/logging"
	"github.com/taskbridge/clickup-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	HTTPToken    string
	Logger       logging.Logger
}

// DefaultConfig wires the ClickUp client into the two task tools.
func DefaultConfig(client *clickup.Client, logger logging.Logger) Config {
	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"list_tasks":  &tools.ListTasksHandler{Service: client},
			"create_task": &tools.CreateTaskHandler{Service: client},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
			server.WithStateLess(true),
		},
		HTTPToken: config.MCPHTTPToken(),
		Logger:    logger,
	}
}
