package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/fundverse/backend/internal/models"
	"github.com/fundverse/backend/internal/storage"
	"github.com/fundverse/backend/internal/views"
)

// CampaignTools holds references needed by the campaign tool handlers.
type CampaignTools struct {
	Store *storage.Store
	Views *views.Composer
	Log   zerolog.Logger
}

// --- Input types ---

type CreateCampaignInput struct {
	IdeaID  uint64 `json:"idea_id" jsonschema:"Idea the campaign funds"`
	Goal    uint64 `json:"goal" jsonschema:"Target amount to raise, must be greater than zero"`
	EndDate uint64 `json:"end_date" jsonschema:"Campaign deadline as a unix timestamp in seconds"`
}

type CampaignsByStatusInput struct {
	Status string `json:"status" jsonschema:"Campaign status to filter by: active or ended"`
}

type CampaignWithIdeaInput struct {
	CampaignID uint64 `json:"campaign_id" jsonschema:"Campaign id to look up"`
}

// --- Handlers ---

// CreateCampaign starts a campaign for an existing idea. Rejections (bad
// goal, unknown idea) come back as tool errors the client can act on.
func (t *CampaignTools) CreateCampaign(_ context.Context, _ *mcp.CallToolRequest, input CreateCampaignInput) (*mcp.CallToolResult, any, error) {
	log := callLogger(t.Log, "create_campaign")

	id, err := t.Store.CreateCampaign(input.IdeaID, input.Goal, input.EndDate)
	if errors.Is(err, storage.ErrGoalNotPositive) || errors.Is(err, storage.ErrIdeaNotFound) {
		log.Warn().Uint64("idea_id", input.IdeaID).Err(err).Msg("campaign rejected")
		return toolError("%v", err), nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	log.Info().Uint64("id", id).Uint64("idea_id", input.IdeaID).Msg("campaign created")
	return toolJSON(map[string]uint64{"id": id})
}

// GetCampaignCards returns a card for every campaign whose idea still
// resolves.
func (t *CampaignTools) GetCampaignCards(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	cards, err := t.Views.CampaignCards()
	if err != nil {
		return nil, nil, err
	}
	return toolJSON(cards)
}

// GetCampaignCardsByStatus returns the cards currently in the given status.
func (t *CampaignTools) GetCampaignCardsByStatus(_ context.Context, _ *mcp.CallToolRequest, input CampaignsByStatusInput) (*mcp.CallToolResult, any, error) {
	status, ok := models.ParseCampaignStatus(input.Status)
	if !ok {
		return toolError("Unknown status %q: use active or ended", input.Status), nil, nil
	}

	cards, err := t.Views.CampaignCardsByStatus(status)
	if err != nil {
		return nil, nil, err
	}
	return toolJSON(cards)
}

// GetCampaignWithIdea returns a campaign card together with its full idea,
// or null when either record is missing.
func (t *CampaignTools) GetCampaignWithIdea(_ context.Context, _ *mcp.CallToolRequest, input CampaignWithIdeaInput) (*mcp.CallToolResult, any, error) {
	log := callLogger(t.Log, "get_campaign_with_idea")

	pair, err := t.Views.CampaignWithIdea(input.CampaignID)
	if err != nil {
		return nil, nil, err
	}
	if pair == nil {
		log.Debug().Uint64("campaign_id", input.CampaignID).Msg("campaign or idea not found")
		return toolJSON(nil)
	}

	return toolJSON(pair)
}
