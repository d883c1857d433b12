package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fundverse/backend/internal/models"
)

// UploadDoc stores a document for an idea and records the doc id in the
// idea's doc_ids list. The upload timestamp is supplied by the caller and
// stored verbatim. It returns (0, false, nil) when the idea does not
// exist. The idea's updated_at is left untouched: attaching a document is
// bookkeeping, not an edit.
func (s *Store) UploadDoc(ideaID uint64, name, contentType string, data []byte, uploadedAt uint64) (uint64, bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, false, fmt.Errorf("begin upload: %w", err)
	}
	defer tx.Rollback()

	var rawIDs []byte
	err = tx.QueryRow("SELECT doc_ids FROM ideas WHERE id = ?", ideaID).Scan(&rawIDs)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load idea %d: %w", ideaID, err)
	}

	if data == nil {
		data = []byte{}
	}
	res, err := tx.Exec(`INSERT INTO docs (idea_id, name, content_type, data, uploaded_at)
		VALUES (?, ?, ?, ?, ?)`,
		ideaID, name, contentType, data, uploadedAt)
	if err != nil {
		return 0, false, fmt.Errorf("insert doc: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("doc id: %w", err)
	}

	var docIDs []uint64
	if err := json.Unmarshal(rawIDs, &docIDs); err != nil {
		return 0, false, fmt.Errorf("decode doc_ids: %w", err)
	}
	docIDs = append(docIDs, uint64(id))
	encoded, err := json.Marshal(docIDs)
	if err != nil {
		return 0, false, fmt.Errorf("encode doc_ids: %w", err)
	}
	if _, err := tx.Exec("UPDATE ideas SET doc_ids = ? WHERE id = ?", encoded, ideaID); err != nil {
		return 0, false, fmt.Errorf("update doc_ids: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit upload: %w", err)
	}
	return uint64(id), true, nil
}

// GetDoc returns the document with the given id, or nil if no such document
// exists.
func (s *Store) GetDoc(id uint64) (*models.Doc, error) {
	var d models.Doc
	err := s.db.QueryRow("SELECT id, idea_id, name, content_type, data, uploaded_at FROM docs WHERE id = ?", id).
		Scan(&d.ID, &d.IdeaID, &d.Name, &d.ContentType, &d.Data, &d.UploadedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get doc %d: %w", id, err)
	}
	return &d, nil
}

// CountDocs reports how many documents are stored.
func (s *Store) CountDocs() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM docs").Scan(&n); err != nil {
		return 0, fmt.Errorf("count docs: %w", err)
	}
	return n, nil
}
