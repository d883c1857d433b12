package storage

import (
	"testing"
	"time"

	"github.com/fundverse/backend/internal/models"
)

func TestCreateAndGetIdea(t *testing.T) {
	st := tempStore(t)

	id, err := st.CreateIdea(validIdea())
	if err != nil {
		t.Fatalf("CreateIdea: %v", err)
	}
	if id != 1 {
		t.Errorf("first idea id = %d, want 1", id)
	}

	idea, err := st.GetIdea(id)
	if err != nil {
		t.Fatalf("GetIdea: %v", err)
	}
	if idea == nil {
		t.Fatal("GetIdea returned nil for stored idea")
	}
	if idea.ID != id {
		t.Errorf("ID = %d, want %d", idea.ID, id)
	}
	if idea.Title != "Solar Charger" {
		t.Errorf("Title = %q, want %q", idea.Title, "Solar Charger")
	}
	if idea.FundingGoal != 50_000 {
		t.Errorf("FundingGoal = %d, want 50000", idea.FundingGoal)
	}
	if idea.CurrentFunding != 0 {
		t.Errorf("CurrentFunding = %d, want 0", idea.CurrentFunding)
	}
	if idea.Status == nil || *idea.Status != models.IdeaStatusPending {
		t.Errorf("Status = %v, want %q", idea.Status, models.IdeaStatusPending)
	}
	if idea.BusinessRegistration != 1 {
		t.Errorf("BusinessRegistration = %d, want 1", idea.BusinessRegistration)
	}
	if idea.CreatedAt == 0 || idea.CreatedAt != idea.UpdatedAt {
		t.Errorf("timestamps: created=%d updated=%d, want equal and nonzero", idea.CreatedAt, idea.UpdatedAt)
	}
	if idea.DocIDs == nil || len(idea.DocIDs) != 0 {
		t.Errorf("DocIDs = %v, want empty non-nil slice", idea.DocIDs)
	}
}

func TestCreateIdeaSequentialIDs(t *testing.T) {
	st := tempStore(t)
	for want := uint64(1); want <= 3; want++ {
		if got := mustCreateIdea(t, st); got != want {
			t.Errorf("idea id = %d, want %d", got, want)
		}
	}
}

func TestCreateIdeaInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewIdea)
	}{
		{"empty title", func(in *NewIdea) { in.Title = "" }},
		{"empty description", func(in *NewIdea) { in.Description = "" }},
		{"zero funding goal", func(in *NewIdea) { in.FundingGoal = 0 }},
		{"empty legal entity", func(in *NewIdea) { in.LegalEntity = "" }},
		{"empty contact info", func(in *NewIdea) { in.ContactInfo = "" }},
		{"empty category", func(in *NewIdea) { in.Category = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := tempStore(t)
			in := validIdea()
			tt.mutate(&in)

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("CreateIdea did not panic")
				}
				invalid, ok := r.(*InvalidInputError)
				if !ok {
					t.Fatalf("panic value = %T, want *InvalidInputError", r)
				}
				want := "Invalid input: all fields must be provided and funding_goal must be > 0."
				if invalid.Error() != want {
					t.Errorf("message = %q, want %q", invalid.Error(), want)
				}
				if n, err := st.CountIdeas(); err != nil || n != 0 {
					t.Errorf("CountIdeas = %d (err %v), want 0", n, err)
				}
			}()
			st.CreateIdea(in)
		})
	}
}

func TestGetIdeaMissing(t *testing.T) {
	st := tempStore(t)
	idea, err := st.GetIdea(42)
	if err != nil {
		t.Fatalf("GetIdea: %v", err)
	}
	if idea != nil {
		t.Errorf("GetIdea = %+v, want nil", idea)
	}
}

func TestIdeaTimestampsFromClock(t *testing.T) {
	st := tempStore(t)
	fixed := time.Unix(1_700_000_000, 42)
	st.SetNow(func() time.Time { return fixed })

	id := mustCreateIdea(t, st)
	idea, err := st.GetIdea(id)
	if err != nil || idea == nil {
		t.Fatalf("GetIdea: idea=%v err=%v", idea, err)
	}
	want := uint64(fixed.UnixNano())
	if idea.CreatedAt != want || idea.UpdatedAt != want {
		t.Errorf("timestamps = %d/%d, want %d", idea.CreatedAt, idea.UpdatedAt, want)
	}
}
