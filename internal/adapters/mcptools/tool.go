// Package mcptools exposes the portal operations as MCP tools over stdio so
// a tool-invoking agent can ask about coursework on the student's behalf.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kmilner/schoology-mcp/internal/domain"
)

type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// resultFromError turns session problems into labeled tool failures the
// agent can read and relay, since the remediation (sign in again) is on the
// human side. Anything else stays a plain error for the protocol layer.
func resultFromError(err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrNoCookies) {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return nil, err
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}

	return mcp.NewToolResultText(string(payload)), nil
}
