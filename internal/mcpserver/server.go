// Package mcpserver exposes the qualification calculators as Model Context
// Protocol tools, so conversational agents can invoke them directly.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mortgage-prequal/internal/common/logger"
	"mortgage-prequal/internal/dispatcher"
	"mortgage-prequal/pkg/registry"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the dispatcher and serves its tools over MCP. Tool names,
// descriptions and input schemas come from the tool registry document.
type Server struct {
	dispatcher *dispatcher.Dispatcher
	mcpServer  *server.MCPServer
	logger     logger.Logger
}

func NewServer(d *dispatcher.Dispatcher, reg *registry.ToolRegistry, version string, log logger.Logger) (*Server, error) {
	s := &Server{
		dispatcher: d,
		mcpServer:  server.NewMCPServer("mortgage-prequal", version),
		logger:     log,
	}
	if err := s.registerTools(reg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) registerTools(reg *registry.ToolRegistry) error {
	for _, t := range reg.Tools {
		schema, err := json.Marshal(t.InputSchema)
		if err != nil {
			return fmt.Errorf("marshal input schema for %s: %w", t.Name, err)
		}
		tool := mcp.NewToolWithRawSchema(t.Name, t.Description, schema)
		s.mcpServer.AddTool(tool, s.toolHandler(t.Name))
	}
	return nil
}

// toolHandler bridges an MCP call into a dispatch. The envelope body travels
// back verbatim; a non-200 envelope becomes an MCP tool error.
func (s *Server) toolHandler(toolName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env := s.dispatcher.Dispatch(ctx, toolName, request.GetArguments())
		if env.StatusCode != http.StatusOK {
			return mcp.NewToolResultError(env.Body), nil
		}
		return mcp.NewToolResultText(env.Body), nil
	}
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and shuts down
// gracefully when the context is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer,
		server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", map[string]interface{}{"address": addr})
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}
