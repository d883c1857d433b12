package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/fundverse/backend/internal/storage"
)

// IdeaTools holds references needed by the idea tool handlers.
type IdeaTools struct {
	Store *storage.Store
	Log   zerolog.Logger
}

// --- Input types ---

type CreateIdeaInput struct {
	Title                string `json:"title" jsonschema:"Title of the idea"`
	Description          string `json:"description" jsonschema:"What the idea is about"`
	FundingGoal          uint64 `json:"funding_goal" jsonschema:"Target amount to raise, must be greater than zero"`
	LegalEntity          string `json:"legal_entity" jsonschema:"Legal entity behind the idea"`
	ContactInfo          string `json:"contact_info" jsonschema:"How to reach the submitter"`
	Category             string `json:"category" jsonschema:"Category the idea belongs to"`
	BusinessRegistration uint8  `json:"business_registration,omitempty" jsonschema:"Business registration flag or code"`
}

type GetIdeaInput struct {
	ID uint64 `json:"id" jsonschema:"Idea id to look up"`
}

// --- Handlers ---

// CreateIdea validates and stores a new idea. A submission with any missing
// field or a zero funding goal fails the whole request rather than
// returning a value.
func (t *IdeaTools) CreateIdea(_ context.Context, _ *mcp.CallToolRequest, input CreateIdeaInput) (result *mcp.CallToolResult, out any, err error) {
	log := callLogger(t.Log, "create_idea")

	defer func() {
		if r := recover(); r != nil {
			invalid, ok := r.(*storage.InvalidInputError)
			if !ok {
				panic(r)
			}
			log.Warn().Str("title", input.Title).Msg("idea rejected")
			result, out, err = nil, nil, invalid
		}
	}()

	id, err := t.Store.CreateIdea(storage.NewIdea{
		Title:                input.Title,
		Description:          input.Description,
		FundingGoal:          input.FundingGoal,
		LegalEntity:          input.LegalEntity,
		ContactInfo:          input.ContactInfo,
		Category:             input.Category,
		BusinessRegistration: input.BusinessRegistration,
	})
	if err != nil {
		return nil, nil, err
	}

	log.Info().Uint64("id", id).Str("title", input.Title).Msg("idea created")
	return toolJSON(map[string]uint64{"id": id})
}

// GetIdea returns the idea with the given id, or null if it does not exist.
func (t *IdeaTools) GetIdea(_ context.Context, _ *mcp.CallToolRequest, input GetIdeaInput) (*mcp.CallToolResult, any, error) {
	log := callLogger(t.Log, "get_idea_by_id")

	idea, err := t.Store.GetIdea(input.ID)
	if err != nil {
		return nil, nil, err
	}
	if idea == nil {
		log.Debug().Uint64("id", input.ID).Msg("idea not found")
		return toolJSON(nil)
	}

	return toolJSON(idea)
}
