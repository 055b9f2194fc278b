package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/taskbridge/clickup-mcp/internal/logging"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler

	log       logging.Logger
	httpToken string
}

func New(cfg Config) *Server {
	log := logging.New(cfg.Logger.Logr())

	mcpServer := server.NewMCPServer(
		"clickup-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"list_tasks": mcp.NewTool("list_tasks",
			mcp.WithDescription("List the tasks in a ClickUp list. Returns the raw task objects as reported by the ClickUp API."),
			mcp.WithString("list_id",
				mcp.Required(),
				mcp.Description("ID of the ClickUp list to read tasks from"),
			),
		),
		"create_task": mcp.NewTool("create_task",
			mcp.WithDescription("Create a new task in a ClickUp list. Returns the created task object as reported by the ClickUp API."),
			mcp.WithString("list_id",
				mcp.Required(),
				mcp.Description("ID of the ClickUp list the task is created in"),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Name of the task"),
			),
			mcp.WithString("description",
				mcp.Description("Optional description of the task"),
			),
			mcp.WithArray("assignees",
				mcp.Description("Optional ClickUp user IDs to assign to the task"),
				mcp.Items(map[string]any{"type": "integer"}),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			log.Info("skipping adapter without a tool definition", "tool", name)
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	s := &Server{
		MCP:       mcpServer,
		HTTP:      httpServer,
		log:       log,
		httpToken: cfg.HTTPToken,
	}
	s.Handler = s.routes()
	return s
}

// ServeStdio serves the MCP protocol on stdin/stdout until the client closes
// the stream. Signal handling is owned by the library.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP over stdio")
	return server.ServeStdio(s.MCP)
}
