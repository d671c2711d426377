// Package toolserver exposes the tool registry over the Model Context
// Protocol on stdin/stdout.
package toolserver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pthm/promptopt/internal/logger"
	"github.com/pthm/promptopt/internal/tools"
	"github.com/pthm/promptopt/internal/version"
)

// ServerName is the implementation name announced during initialization
const ServerName = "prompt-optimizer"

// Server wraps an MCP server with every tool of a registry registered
type Server struct {
	mcpServer *server.MCPServer
	log       logger.Logger
}

// New builds an MCP server exposing each tool in registry
func New(registry *tools.Registry, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{
		mcpServer: server.NewMCPServer(
			ServerName,
			version.Short(),
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		log: log,
	}

	for _, t := range registry.Tools() {
		s.mcpServer.AddTool(Definition(t), s.handler(t))
		log.Debug("Registered tool", "name", t.Name())
	}
	return s
}

// MCP returns the underlying protocol server
func (s *Server) MCP() *server.MCPServer {
	return s.mcpServer
}

// Definition converts a tool's metadata into its protocol schema
func Definition(t tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description())}
	for _, p := range t.Params() {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}
		if len(p.Enum) > 0 {
			props = append(props, mcp.Enum(p.Enum...))
		}
		opts = append(opts, mcp.WithString(p.Name, props...))
	}
	return mcp.NewTool(t.Name(), opts...)
}

func (s *Server) handler(t tools.Tool) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := t.Call(req.GetArguments())
		if err != nil {
			s.log.Warn("Tool call failed", "tool", t.Name(), "error", err)
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}
		s.log.Debug("Tool call succeeded", "tool", t.Name())
		return mcp.NewToolResultText(res.Text()), nil
	}
}

// Listen serves requests read from in and writes responses to out until
// in is exhausted or ctx is done. Cancellation is not an error.
func (s *Server) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.Info("MCP server listening on stdio", "name", ServerName, "version", version.Short())

	stdio := server.NewStdioServer(s.mcpServer)
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	s.log.Info("MCP server stopped")
	return nil
}
