package mcpserver

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const templatesURI = "scribo://templates"

func (s *Server) registerResources() {
	res := mcp.NewResource(templatesURI,
		"Content templates",
		mcp.WithMIMEType("text/markdown"),
		mcp.WithResourceDescription("Every content tool with its templates and select options"),
	)
	s.mcpServer.AddResource(res, s.handleTemplatesResource)
}

func (s *Server) handleTemplatesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	parts := make([]string, 0, len(s.reg.Tools()))
	for _, c := range s.reg.Tools() {
		parts = append(parts, formatTool(c))
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      templatesURI,
			MIMEType: "text/markdown",
			Text:     strings.Join(parts, "\n---\n\n"),
		},
	}, nil
}
