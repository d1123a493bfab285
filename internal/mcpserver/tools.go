package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/client"
	"github.com/joestump/scribo/internal/prompt"
)

func kindsList() string {
	names := make([]string, 0, len(catalog.Kinds()))
	for _, k := range catalog.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func formOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("tool",
			mcp.Required(),
			mcp.Description("Content tool: "+kindsList()),
		),
		mcp.WithString("template", mcp.Description("Template id from list_templates; omit to send the topic as is")),
		mcp.WithString("topic", mcp.Description("What the content is about")),
		mcp.WithString("platform", mcp.Description("Target platform")),
		mcp.WithString("duration", mcp.Description("Duration, length, quantity or number, depending on the tool")),
		mcp.WithString("audience", mcp.Description("Target audience")),
	}
}

func (s *Server) registerTools() {
	listTool := mcp.NewTool("list_templates",
		mcp.WithDescription("List the templates and select options of a content tool"),
		mcp.WithString("tool",
			mcp.Required(),
			mcp.Description("Content tool: "+kindsList()),
		),
	)
	s.mcpServer.AddTool(listTool, s.handleListTemplates)

	buildOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Build the prompt a template produces for the given fields, without calling a model"),
	}, formOptions()...)
	s.mcpServer.AddTool(mcp.NewTool("build_prompt", buildOpts...), s.handleBuildPrompt)

	genOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Build the prompt and generate content with the scribo backend"),
	}, formOptions()...)
	genOpts = append(genOpts, mcp.WithString("api_key", mcp.Description("Gemini API key; defaults to the stored key")))
	s.mcpServer.AddTool(mcp.NewTool("generate_content", genOpts...), s.handleGenerateContent)
}

func (s *Server) toolArg(request mcp.CallToolRequest) (catalog.ToolConfig, error) {
	kind, err := catalog.ParseKind(request.GetString("tool", ""))
	if err != nil {
		return catalog.ToolConfig{}, fmt.Errorf("tool must be one of: %s", kindsList())
	}
	c, _ := s.reg.Tool(kind)
	return c, nil
}

func (s *Server) buildArgs(request mcp.CallToolRequest) (catalog.Kind, string, error) {
	c, err := s.toolArg(request)
	if err != nil {
		return "", "", err
	}
	templateID := request.GetString("template", "")
	if templateID != "" {
		if _, ok := c.Template(templateID); !ok {
			return "", "", fmt.Errorf("unknown template %q for %s", templateID, c.Kind)
		}
	}
	text := prompt.Build(s.reg, c.Kind, templateID, prompt.Fields{
		Topic:    request.GetString("topic", ""),
		Platform: request.GetString("platform", ""),
		Duration: request.GetString("duration", ""),
		Audience: request.GetString("audience", ""),
	})
	return c.Kind, text, nil
}

func (s *Server) handleListTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := s.toolArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatTool(c)), nil
}

func (s *Server) handleBuildPrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, text, err := s.buildArgs(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleGenerateContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, text, err := s.buildArgs(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("topic or template required"), nil
	}

	apiKey := strings.TrimSpace(request.GetString("api_key", ""))
	if apiKey == "" && s.keys != nil {
		apiKey, err = s.keys.Load(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load API key: %v", err)), nil
		}
	}

	content, err := s.gen.Generate(ctx, kind, text, apiKey)
	if errors.Is(err, client.ErrMissingAPIKey) {
		return mcp.NewToolResultError(client.MissingKeyMessage + " Run `scribo key set` or pass api_key."), nil
	}
	if err != nil {
		return mcp.NewToolResultError(client.Message(err)), nil
	}
	return mcp.NewToolResultText(content), nil
}
