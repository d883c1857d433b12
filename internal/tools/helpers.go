// Package tools implements the MCP tool handlers for FundVerse. Each
// handler group is a struct holding its dependencies; registration lives in
// the server package.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// toolError returns a tool result carrying an error message for the client.
func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// toolJSON marshals v as indented JSON into a tool result. A nil v renders
// as the JSON null, which is how absent records are reported.
func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

// callLogger returns a logger scoped to one tool invocation. The generated
// call id ties together every line the invocation emits.
func callLogger(log zerolog.Logger, tool string) zerolog.Logger {
	return log.With().Str("tool", tool).Str("call_id", uuid.NewString()).Logger()
}
