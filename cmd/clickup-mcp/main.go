package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskbridge/clickup-mcp/internal/clickup"
	"github.com/taskbridge/clickup-mcp/internal/config"
	"github.com/taskbridge/clickup-mcp/internal/logging"
	"github.com/taskbridge/clickup-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "clickup-mcp",
		Short: "MCP server exposing ClickUp task tools",
		RunE:  run,
	}

	root.PersistentFlags().String("transport", "stdio", "MCP transport (stdio or http)")
	root.PersistentFlags().String("host", "127.0.0.1", "HTTP listen host")
	root.PersistentFlags().Int("port", 8000, "HTTP listen port")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("clickup-mcp: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	apiKey := config.ClickUpAPIKey()
	if apiKey == "" {
		return fmt.Errorf("CLICKUP_API_KEY environment variable is required")
	}

	logger := logging.New(logging.NewLogr(config.LogLevel()).WithName("clickup-mcp"))
	client := clickup.New(config.ClickUpAPIURL(), apiKey,
		clickup.WithHTTPClient(&http.Client{Timeout: config.ClickUpTimeout()}),
		clickup.WithLogger(logger.WithName("clickup")),
	)
	srv := mcp.New(mcp.DefaultConfig(client, logger))

	transport, _ := cmd.Flags().GetString("transport")
	switch transport {
	case "stdio":
		return srv.ServeStdio()
	case "http":
		return serveHTTP(cmd, srv, logger)
	default:
		return fmt.Errorf("unsupported transport %q (expected stdio or http)", transport)
	}
}

func serveHTTP(cmd *cobra.Command, srv *mcp.Server, logger logging.Logger) error {
	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	addr := host + ":" + strconv.Itoa(port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
