package storage

import (
	"database/sql"
	"fmt"

	"github.com/fundverse/backend/internal/models"
)

// CreateCampaign inserts a campaign for an existing idea and returns its
// assigned id. The goal is checked before the idea reference: a zero goal
// fails with ErrGoalNotPositive even when the idea is missing too.
func (s *Store) CreateCampaign(ideaID, goal, endDate uint64) (uint64, error) {
	if goal == 0 {
		return 0, ErrGoalNotPositive
	}
	ok, err := s.ideaExists(ideaID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrIdeaNotFound
	}

	res, err := s.db.Exec(`INSERT INTO campaigns (idea_id, amount_raised, goal, end_date)
		VALUES (?, 0, ?, ?)`, ideaID, goal, endDate)
	if err != nil {
		return 0, fmt.Errorf("insert campaign: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("campaign id: %w", err)
	}
	return uint64(id), nil
}

// GetCampaign returns the campaign with the given id, or nil if no such
// campaign exists.
func (s *Store) GetCampaign(id uint64) (*models.Campaign, error) {
	var c models.Campaign
	err := s.db.QueryRow("SELECT id, idea_id, amount_raised, goal, end_date FROM campaigns WHERE id = ?", id).
		Scan(&c.ID, &c.IdeaID, &c.AmountRaised, &c.Goal, &c.EndDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign %d: %w", id, err)
	}
	return &c, nil
}

// ListCampaigns returns all campaigns in id order.
func (s *Store) ListCampaigns() ([]models.Campaign, error) {
	rows, err := s.db.Query("SELECT id, idea_id, amount_raised, goal, end_date FROM campaigns ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.IdeaID, &c.AmountRaised, &c.Goal, &c.EndDate); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// CountCampaigns reports how many campaigns are stored.
func (s *Store) CountCampaigns() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM campaigns").Scan(&n); err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	return n, nil
}
