package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// AskInput is the input schema for the portfolio_ask tool.
type AskInput struct {
	Question  string `json:"question" jsonschema:"the question about Sandip Baste's professional profile"`
	SessionID string `json:"session_id,omitempty" jsonschema:"session identifier to correlate a conversation"`
}

// AskOutput is the output schema for the portfolio_ask tool.
type AskOutput struct {
	Answer    string   `json:"answer"`
	SessionID string   `json:"session_id"`
	Sources   []string `json:"sources"`
	URL       string   `json:"url,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "portfolio_ask",
		Description: "Ask about Sandip Baste's skills, projects, experience, education or contact details",
	}, s.handleAsk)
}

// handleAsk handles the portfolio_ask tool invocation. The pipeline is
// total, so the tool never returns an error to the client.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	envelope := s.ports.Assistant.Answer(ctx, domain.AskRequest{
		Message:   input.Question,
		SessionID: input.SessionID,
	})

	return nil, AskOutput{
		Answer:    envelope.Response,
		SessionID: envelope.SessionID,
		Sources:   envelope.Sources,
		URL:       envelope.URL,
	}, nil
}
