// Package seed populates an empty database with demo ideas and campaigns.
// Seeding is idempotent: a database that already holds ideas is left alone.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fundverse/backend/internal/storage"
)

// Entry describes one idea to seed, with optional campaigns attached to it.
type Entry struct {
	Title                string          `yaml:"title"`
	Description          string          `yaml:"description"`
	FundingGoal          uint64          `yaml:"funding_goal"`
	LegalEntity          string          `yaml:"legal_entity"`
	ContactInfo          string          `yaml:"contact_info"`
	Category             string          `yaml:"category"`
	BusinessRegistration uint8           `yaml:"business_registration"`
	Campaigns            []CampaignEntry `yaml:"campaigns"`
}

// CampaignEntry describes a campaign relative to seeding time. EndInDays
// may be negative to seed an already ended campaign.
type CampaignEntry struct {
	Goal      uint64 `yaml:"goal"`
	EndInDays int64  `yaml:"end_in_days"`
}

// File is the shape of a seed YAML file.
type File struct {
	Entries []Entry `yaml:"entries"`
}

// Result reports what a seeding run did.
type Result struct {
	Skipped   bool
	Ideas     int
	Campaigns int
}

// Builtin returns the demo dataset: one running campaign and one that has
// already ended.
func Builtin() []Entry {
	return []Entry{
		{
			Title:       "Eco-Friendly Water Bottles",
			Description: "Reusable bottles made from recycled materials",
			FundingGoal: 100_000,
			LegalEntity: "EcoCorp LLC",
			ContactInfo: "contact@ecocorp.example",
			Category:    "Environment",
			Campaigns:   []CampaignEntry{{Goal: 100_000, EndInDays: 7}},
		},
		{
			Title:       "Indie Pixel Art Game",
			Description: "A cozy RPG with retro pixel art",
			FundingGoal: 100_000,
			LegalEntity: "IndieStudio Ltd",
			ContactInfo: "hello@indiestudio.example",
			Category:    "Gaming",
			Campaigns:   []CampaignEntry{{Goal: 100_000, EndInDays: -5}},
		},
	}
}

// LoadFile reads seed entries from a YAML file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return f.Entries, nil
}

// Run seeds the store with entries unless it already holds ideas. Campaign
// deadlines are computed from the wall clock at run time.
func Run(st *storage.Store, entries []Entry) (result Result, err error) {
	n, err := st.CountIdeas()
	if err != nil {
		return Result{}, err
	}
	if n > 0 {
		return Result{Skipped: true}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			invalid, ok := r.(*storage.InvalidInputError)
			if !ok {
				panic(r)
			}
			result, err = Result{}, fmt.Errorf("seed entry rejected: %w", invalid)
		}
	}()

	now := time.Now().Unix()
	for _, e := range entries {
		ideaID, err := st.CreateIdea(storage.NewIdea{
			Title:                e.Title,
			Description:          e.Description,
			FundingGoal:          e.FundingGoal,
			LegalEntity:          e.LegalEntity,
			ContactInfo:          e.ContactInfo,
			Category:             e.Category,
			BusinessRegistration: e.BusinessRegistration,
		})
		if err != nil {
			return Result{}, fmt.Errorf("seed idea %q: %w", e.Title, err)
		}
		result.Ideas++

		for _, c := range e.Campaigns {
			end := now + c.EndInDays*86_400
			if end < 0 {
				end = 0
			}
			if _, err := st.CreateCampaign(ideaID, c.Goal, uint64(end)); err != nil {
				return Result{}, fmt.Errorf("seed campaign for %q: %w", e.Title, err)
			}
			result.Campaigns++
		}
	}
	return result, nil
}
