package main

import (
	"context"
	"fmt"

	"github.com/aretw0/dynurl/internal/cli"
	"github.com/aretw0/dynurl/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the engine as MCP tools (rewrite_path, list_tokens) so agents can
resolve path templates with the same settings as the HTTP service.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Logs go to Stderr.
- sse: Uses Server-Sent Events over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		if transport != "stdio" && transport != "sse" {
			return fmt.Errorf("unknown transport %q: supported are stdio, sse", transport)
		}

		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if err := settings.Validate(); err != nil {
			return err
		}
		logger := newLogger(settings)

		rt, err := cli.NewRuntime(settings, logger, engineHooks(settings, logger)...)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cli.WithInterrupt(context.Background())
		defer ctx.Stop()

		if err := rt.Watch(ctx); err != nil {
			return err
		}

		srv := mcp.NewServer(rt.Engine, mcp.WithLogger(logger))

		switch transport {
		case "sse":
			logger.Info("Starting dynurl MCP server (SSE)", "port", port)
			if err := srv.ServeSSE(ctx, port); err != nil {
				return fmt.Errorf("mcp server: %w", err)
			}
			logger.Info("MCP server stopped gracefully", "signal", ctx.Signal())
			return nil
		default:
			logger.Info("Starting dynurl MCP server (stdio)")
			return srv.ServeStdio()
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
