package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fundverse/backend/internal/models"
	"github.com/fundverse/backend/internal/storage"
	"github.com/fundverse/backend/internal/views"
)

func tempStore(t *testing.T) *storage.Store {
	t.Helper()
	st, err := storage.Open(filepath.Join(t.TempDir(), "fundverse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRunBuiltin(t *testing.T) {
	st := tempStore(t)

	result, err := Run(st, Builtin())
	require.NoError(t, err)
	require.False(t, result.Skipped)
	require.Equal(t, 2, result.Ideas)
	require.Equal(t, 2, result.Campaigns)

	idea, err := st.GetIdea(1)
	require.NoError(t, err)
	require.NotNil(t, idea)
	require.Equal(t, "Eco-Friendly Water Bottles", idea.Title)

	// One campaign still running, one already over.
	composer := views.New(st)
	active, err := composer.CampaignCardsByStatus(models.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "Eco-Friendly Water Bottles", active[0].Title)

	ended, err := composer.CampaignCardsByStatus(models.StatusEnded)
	require.NoError(t, err)
	require.Len(t, ended, 1)
	require.Equal(t, "Indie Pixel Art Game", ended[0].Title)
}

func TestRunIdempotent(t *testing.T) {
	st := tempStore(t)

	_, err := Run(st, Builtin())
	require.NoError(t, err)

	result, err := Run(st, Builtin())
	require.NoError(t, err)
	require.True(t, result.Skipped)

	n, err := st.CountIdeas()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `entries:
  - title: Community Garden
    description: Raised beds for the neighborhood
    funding_goal: 5000
    legal_entity: Greenway e.V.
    contact_info: garden@greenway.example
    category: Community
    campaigns:
      - goal: 5000
        end_in_days: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Community Garden", entries[0].Title)
	require.Equal(t, uint64(5000), entries[0].FundingGoal)
	require.Len(t, entries[0].Campaigns, 1)
	require.Equal(t, int64(30), entries[0].Campaigns[0].EndInDays)

	st := tempStore(t)
	result, err := Run(st, entries)
	require.NoError(t, err)
	require.Equal(t, 1, result.Ideas)
	require.Equal(t, 1, result.Campaigns)
}

func TestRunRejectsInvalidEntry(t *testing.T) {
	st := tempStore(t)

	entries := []Entry{{
		Title:       "No goal",
		Description: "missing its funding goal",
		LegalEntity: "Test Co",
		ContactInfo: "test@example.com",
		Category:    "Test",
	}}
	_, err := Run(st, entries)
	require.Error(t, err)
	require.Contains(t, err.Error(), "seed entry rejected")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
