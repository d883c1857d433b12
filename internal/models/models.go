package models

import "strings"

// Idea is a funding proposal, the root of the foreign-key graph. DocIDs
// lists the documents attached to it, in upload order.
type Idea struct {
	ID                   uint64   `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	FundingGoal          uint64   `json:"funding_goal"`
	CurrentFunding       uint64   `json:"current_funding"`
	LegalEntity          string   `json:"legal_entity"`
	Status               *string  `json:"status"`
	ContactInfo          string   `json:"contact_info"`
	Category             string   `json:"category"`
	BusinessRegistration uint8    `json:"business_registration"`
	CreatedAt            uint64   `json:"created_at"`
	UpdatedAt            uint64   `json:"updated_at"`
	DocIDs               []uint64 `json:"doc_ids"`
}

// Idea lifecycle labels.
const (
	IdeaStatusPending  = "pending"
	IdeaStatusApproved = "approved"
	IdeaStatusRejected = "rejected"
)

// Campaign is a time-bounded funding drive for exactly one idea. EndDate is
// seconds since epoch.
type Campaign struct {
	ID           uint64 `json:"id"`
	IdeaID       uint64 `json:"idea_id"`
	AmountRaised uint64 `json:"amount_raised"`
	Goal         uint64 `json:"goal"`
	EndDate      uint64 `json:"end_date"`
}

// Doc is an uploaded file attached to an idea.
type Doc struct {
	ID          uint64 `json:"id"`
	IdeaID      uint64 `json:"idea_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
	UploadedAt  uint64 `json:"uploaded_at"`
}

// CampaignCard is a read-time summary of a campaign joined with its idea's
// display fields. It is computed on demand and never persisted. A negative
// DaysLeft means the campaign is over.
type CampaignCard struct {
	ID           uint64 `json:"id"`
	IdeaID       uint64 `json:"idea_id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	AmountRaised uint64 `json:"amount_raised"`
	Goal         uint64 `json:"goal"`
	EndDate      uint64 `json:"end_date"`
	DaysLeft     int64  `json:"days_left"`
}

// CampaignWithIdea pairs a card with the full idea record behind it.
type CampaignWithIdea struct {
	Campaign CampaignCard `json:"campaign"`
	Idea     Idea         `json:"idea"`
}

// CampaignStatus classifies a campaign relative to the current time.
type CampaignStatus string

const (
	StatusActive CampaignStatus = "active"
	StatusEnded  CampaignStatus = "ended"
)

// ParseCampaignStatus maps the wire form of a status filter onto the enum.
func ParseCampaignStatus(s string) (CampaignStatus, bool) {
	switch strings.ToLower(s) {
	case string(StatusActive):
		return StatusActive, true
	case string(StatusEnded):
		return StatusEnded, true
	}
	return "", false
}
