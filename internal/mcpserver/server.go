// Package mcpserver exposes the template registry, prompt builder and
// generation client as Model Context Protocol tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/joestump/scribo/internal/build"
	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/keystore"
)

// Generator is the part of client.Client the server needs.
type Generator interface {
	Generate(ctx context.Context, kind catalog.Kind, prompt, apiKey string) (string, error)
}

// Server wraps the MCP server with scribo's registry and generator.
type Server struct {
	reg       *catalog.Registry
	gen       Generator
	keys      keystore.KeyStore
	mcpServer *server.MCPServer
}

// New creates the MCP server. keys supplies the API key when a
// generate_content call carries none.
func New(reg *catalog.Registry, gen Generator, keys keystore.KeyStore) *Server {
	s := &Server{reg: reg, gen: gen, keys: keys}
	s.mcpServer = server.NewMCPServer(
		"scribo",
		build.Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()
	s.registerResources()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the protocol on stdin/stdout until EOF.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// formatTool renders one tool's configuration as markdown.
func formatTool(c catalog.ToolConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n%s\n\n", c.Icon, c.Name, c.Description)
	b.WriteString("## Templates\n")
	for _, t := range c.Templates {
		fmt.Fprintf(&b, "\n### %s (`%s`)\n%s\n", t.Name, t.ID, t.Prompt)
	}
	fmt.Fprintf(&b, "\n## Platforms\n%s\n", strings.Join(c.Platforms, ", "))
	fmt.Fprintf(&b, "\n## %s\n%s\n", c.DurationLabel, strings.Join(c.Durations, ", "))
	fmt.Fprintf(&b, "\n## Audiences\n%s\n", strings.Join(c.Audiences, ", "))
	return b.String()
}
