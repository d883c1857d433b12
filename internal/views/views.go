// Package views derives presentation records from stored campaigns and
// ideas. Cards join the two and carry a countdown relative to a single
// moment sampled once per request.
package views

import (
	"fmt"
	"time"

	"github.com/fundverse/backend/internal/models"
	"github.com/fundverse/backend/internal/storage"
)

const secondsPerDay = 86_400

// Composer builds campaign cards from the store.
type Composer struct {
	store *storage.Store
	now   func() time.Time
}

// New returns a Composer reading from st.
func New(st *storage.Store) *Composer {
	return &Composer{store: st, now: time.Now}
}

// SetNow overrides the clock used to compute countdowns and status.
func (c *Composer) SetNow(now func() time.Time) {
	c.now = now
}

// Card joins a campaign with its idea as of the given moment. DaysLeft is
// the whole days between now and the deadline, truncated toward zero, so a
// campaign that ended within the last day still reads 0.
func Card(campaign models.Campaign, idea *models.Idea, now int64) models.CampaignCard {
	return models.CampaignCard{
		ID:           campaign.ID,
		IdeaID:       campaign.IdeaID,
		Title:        idea.Title,
		Category:     idea.Category,
		AmountRaised: campaign.AmountRaised,
		Goal:         campaign.Goal,
		EndDate:      campaign.EndDate,
		DaysLeft:     (int64(campaign.EndDate) - now) / secondsPerDay,
	}
}

// Classify reports whether a card is still active as of the given moment.
// Active requires both a non-negative countdown and a deadline not yet
// passed; everything else is ended.
func Classify(card models.CampaignCard, now int64) models.CampaignStatus {
	if card.DaysLeft >= 0 && int64(card.EndDate) >= now {
		return models.StatusActive
	}
	return models.StatusEnded
}

// CampaignCards returns a card for every campaign whose idea resolves, in
// campaign id order. Campaigns whose idea is missing are skipped.
func (c *Composer) CampaignCards() ([]models.CampaignCard, error) {
	cards, _, err := c.cards()
	return cards, err
}

// CampaignCardsByStatus returns the cards matching status. The same moment
// is used to compute each countdown and to classify it, so a card can never
// land in the wrong bucket.
func (c *Composer) CampaignCardsByStatus(status models.CampaignStatus) ([]models.CampaignCard, error) {
	cards, now, err := c.cards()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.CampaignCard, 0, len(cards))
	for _, card := range cards {
		if Classify(card, now) == status {
			filtered = append(filtered, card)
		}
	}
	return filtered, nil
}

// CampaignWithIdea returns a card for the campaign together with its full
// idea record, or nil if either side is missing.
func (c *Composer) CampaignWithIdea(campaignID uint64) (*models.CampaignWithIdea, error) {
	campaign, err := c.store.GetCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, nil
	}
	idea, err := c.store.GetIdea(campaign.IdeaID)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, nil
	}
	return &models.CampaignWithIdea{
		Campaign: Card(*campaign, idea, c.now().Unix()),
		Idea:     *idea,
	}, nil
}

func (c *Composer) cards() ([]models.CampaignCard, int64, error) {
	campaigns, err := c.store.ListCampaigns()
	if err != nil {
		return nil, 0, err
	}

	now := c.now().Unix()
	cards := make([]models.CampaignCard, 0, len(campaigns))
	for _, campaign := range campaigns {
		idea, err := c.store.GetIdea(campaign.IdeaID)
		if err != nil {
			return nil, 0, fmt.Errorf("resolve idea for campaign %d: %w", campaign.ID, err)
		}
		if idea == nil {
			continue
		}
		cards = append(cards, Card(campaign, idea, now))
	}
	return cards, now, nil
}
