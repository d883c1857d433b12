package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/fundverse/backend/internal/storage"
)

// DocTools holds references needed by the document tool handlers.
type DocTools struct {
	Store *storage.Store
	Log   zerolog.Logger
}

// --- Input types ---

type UploadDocInput struct {
	IdeaID      uint64 `json:"idea_id" jsonschema:"Idea the document belongs to"`
	Name        string `json:"name" jsonschema:"File name of the document"`
	ContentType string `json:"content_type" jsonschema:"MIME type of the document"`
	Data        []byte `json:"data" jsonschema:"Document bytes, base64 encoded"`
	UploadedAt  uint64 `json:"uploaded_at" jsonschema:"Upload time as a unix timestamp"`
}

type GetDocInput struct {
	ID uint64 `json:"id" jsonschema:"Document id to look up"`
}

// --- Handlers ---

// UploadDoc stores a document under an idea and returns the new doc id, or
// null when the idea does not exist.
func (t *DocTools) UploadDoc(_ context.Context, _ *mcp.CallToolRequest, input UploadDocInput) (*mcp.CallToolResult, any, error) {
	log := callLogger(t.Log, "upload_doc")

	id, ok, err := t.Store.UploadDoc(input.IdeaID, input.Name, input.ContentType, input.Data, input.UploadedAt)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		log.Debug().Uint64("idea_id", input.IdeaID).Msg("idea not found")
		return toolJSON(nil)
	}

	log.Info().Uint64("id", id).Uint64("idea_id", input.IdeaID).Str("name", input.Name).Msg("doc uploaded")
	return toolJSON(map[string]uint64{"id": id})
}

// GetDoc returns the document with the given id, or null if it does not
// exist.
func (t *DocTools) GetDoc(_ context.Context, _ *mcp.CallToolRequest, input GetDocInput) (*mcp.CallToolResult, any, error) {
	log := callLogger(t.Log, "get_doc")

	doc, err := t.Store.GetDoc(input.ID)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		log.Debug().Uint64("id", input.ID).Msg("doc not found")
		return toolJSON(nil)
	}

	return toolJSON(doc)
}
