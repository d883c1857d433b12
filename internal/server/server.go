package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/fundverse/backend/internal/storage"
	"github.com/fundverse/backend/internal/tools"
	"github.com/fundverse/backend/internal/views"
)

// New creates a fully configured MCP server with all tools registered.
func New(store *storage.Store, log zerolog.Logger) *mcp.Server {
	composer := views.New(store)

	it := &tools.IdeaTools{Store: store, Log: log}
	dt := &tools.DocTools{Store: store, Log: log}
	ct := &tools.CampaignTools{Store: store, Views: composer, Log: log}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "fundverse-backend",
		Version: "0.1.0",
	}, nil)

	// Idea tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_idea",
		Description: "Submit a new idea; all fields are required and funding_goal must be > 0",
	}, it.CreateIdea)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_idea_by_id",
		Description: "Fetch an idea by id (null if it does not exist)",
	}, it.GetIdea)

	// Document tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "upload_doc",
		Description: "Attach a document to an idea (null if the idea does not exist)",
	}, dt.UploadDoc)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_doc",
		Description: "Fetch a document by id (null if it does not exist)",
	}, dt.GetDoc)

	// Campaign tools
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_campaign",
		Description: "Start a funding campaign for an existing idea with a positive goal",
	}, ct.CreateCampaign)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_campaign_cards",
		Description: "List campaign cards joined with their ideas, with days left until each deadline",
	}, ct.GetCampaignCards)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_campaign_cards_by_status",
		Description: "List campaign cards filtered by status (active or ended)",
	}, ct.GetCampaignCardsByStatus)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_campaign_with_idea",
		Description: "Fetch a campaign card together with its full idea record (null if either is missing)",
	}, ct.GetCampaignWithIdea)

	return srv
}
