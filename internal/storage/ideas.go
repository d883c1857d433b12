package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fundverse/backend/internal/models"
)

const ideaColumns = "id, title, description, funding_goal, current_funding, legal_entity, status, contact_info, category, business_registration, created_at, updated_at, doc_ids"

// invalidIdeaInput is the exact message a rejected submission aborts with.
const invalidIdeaInput = "Invalid input: all fields must be provided and funding_goal must be > 0."

// NewIdea carries the caller-supplied fields of an idea submission.
type NewIdea struct {
	Title                string
	Description          string
	FundingGoal          uint64
	LegalEntity          string
	ContactInfo          string
	Category             string
	BusinessRegistration uint8
}

func (in NewIdea) validate() {
	if in.Title == "" || in.Description == "" || in.LegalEntity == "" ||
		in.ContactInfo == "" || in.Category == "" || in.FundingGoal == 0 {
		panic(&InvalidInputError{Reason: invalidIdeaInput})
	}
}

// CreateIdea validates and inserts a new idea, returning its assigned id.
// Invalid input panics with *InvalidInputError before anything is written;
// storage failures come back as ordinary errors.
func (s *Store) CreateIdea(in NewIdea) (uint64, error) {
	in.validate()

	now := uint64(s.now().UnixNano())
	res, err := s.db.Exec(`INSERT INTO ideas (title, description, funding_goal, current_funding, legal_entity, status, contact_info, category, business_registration, created_at, updated_at, doc_ids)
		VALUES (?, ?, ?, 0, ?, ?, ?, ?, ?, ?, ?, '[]')`,
		in.Title, in.Description, in.FundingGoal, in.LegalEntity,
		models.IdeaStatusPending, in.ContactInfo, in.Category,
		in.BusinessRegistration, now, now)
	if err != nil {
		return 0, fmt.Errorf("insert idea: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("idea id: %w", err)
	}
	return uint64(id), nil
}

// GetIdea returns the idea with the given id, or nil if no such idea exists.
func (s *Store) GetIdea(id uint64) (*models.Idea, error) {
	row := s.db.QueryRow("SELECT "+ideaColumns+" FROM ideas WHERE id = ?", id)
	idea, err := scanIdea(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get idea %d: %w", id, err)
	}
	return idea, nil
}

// CountIdeas reports how many ideas are stored.
func (s *Store) CountIdeas() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM ideas").Scan(&n); err != nil {
		return 0, fmt.Errorf("count ideas: %w", err)
	}
	return n, nil
}

func (s *Store) ideaExists(id uint64) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM ideas WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check idea %d: %w", id, err)
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (*models.Idea, error) {
	var idea models.Idea
	var docIDs []byte
	err := row.Scan(&idea.ID, &idea.Title, &idea.Description, &idea.FundingGoal,
		&idea.CurrentFunding, &idea.LegalEntity, &idea.Status, &idea.ContactInfo,
		&idea.Category, &idea.BusinessRegistration, &idea.CreatedAt,
		&idea.UpdatedAt, &docIDs)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(docIDs, &idea.DocIDs); err != nil {
		return nil, fmt.Errorf("decode doc_ids: %w", err)
	}
	if idea.DocIDs == nil {
		idea.DocIDs = []uint64{}
	}
	return &idea, nil
}
