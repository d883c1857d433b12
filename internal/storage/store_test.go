package storage

import (
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fundverse.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func validIdea() NewIdea {
	return NewIdea{
		Title:                "Solar Charger",
		Description:          "Portable charger powered by sunlight",
		FundingGoal:          50_000,
		LegalEntity:          "SunWorks LLC",
		ContactInfo:          "team@sunworks.example",
		Category:             "Energy",
		BusinessRegistration: 1,
	}
}

func mustCreateIdea(t *testing.T, st *Store) uint64 {
	t.Helper()
	id, err := st.CreateIdea(validIdea())
	if err != nil {
		t.Fatalf("CreateIdea: %v", err)
	}
	return id
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "fundverse.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	st.Close()
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fundverse.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	ideaID := mustCreateIdea(t, st)
	campaignID, err := st.CreateCampaign(ideaID, 1000, 1_900_000_000)
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	docID, ok, err := st.UploadDoc(ideaID, "pitch.pdf", "application/pdf", []byte("deck"), 1_755_000_000)
	if err != nil || !ok {
		t.Fatalf("UploadDoc: ok=%v err=%v", ok, err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	idea, err := st.GetIdea(ideaID)
	if err != nil {
		t.Fatalf("GetIdea: %v", err)
	}
	if idea == nil {
		t.Fatal("idea gone after reopen")
	}
	if len(idea.DocIDs) != 1 || idea.DocIDs[0] != docID {
		t.Errorf("DocIDs = %v, want [%d]", idea.DocIDs, docID)
	}
	campaign, err := st.GetCampaign(campaignID)
	if err != nil {
		t.Fatalf("GetCampaign: %v", err)
	}
	if campaign == nil {
		t.Fatal("campaign gone after reopen")
	}
	doc, err := st.GetDoc(docID)
	if err != nil {
		t.Fatalf("GetDoc: %v", err)
	}
	if doc == nil {
		t.Fatal("doc gone after reopen")
	}
	if string(doc.Data) != "deck" {
		t.Errorf("doc data = %q, want %q", doc.Data, "deck")
	}

	// Ids keep counting from where the previous handle stopped.
	next := mustCreateIdea(t, st)
	if next != ideaID+1 {
		t.Errorf("next idea id = %d, want %d", next, ideaID+1)
	}
}
