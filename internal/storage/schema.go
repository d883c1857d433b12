package storage

// Schema is the SQL schema for the FundVerse database. The CHECK
// constraints restate invariants the Go layer already enforces before any
// insert reaches SQLite.
const Schema = `
-- AUTOINCREMENT keeps identifiers strictly increasing and never reused,
-- even if rows are ever deleted.
CREATE TABLE IF NOT EXISTS ideas (
    id                    INTEGER PRIMARY KEY AUTOINCREMENT,
    title                 TEXT NOT NULL,
    description           TEXT NOT NULL,
    funding_goal          INTEGER NOT NULL CHECK (funding_goal > 0),
    current_funding       INTEGER NOT NULL DEFAULT 0,
    legal_entity          TEXT NOT NULL,
    status                TEXT,
    contact_info          TEXT NOT NULL,
    category              TEXT NOT NULL,
    business_registration INTEGER NOT NULL DEFAULT 0,
    created_at            INTEGER NOT NULL,
    updated_at            INTEGER NOT NULL,
    doc_ids               TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS campaigns (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    idea_id       INTEGER NOT NULL REFERENCES ideas(id),
    amount_raised INTEGER NOT NULL DEFAULT 0,
    goal          INTEGER NOT NULL CHECK (goal > 0),
    end_date      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS docs (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    idea_id      INTEGER NOT NULL REFERENCES ideas(id),
    name         TEXT NOT NULL,
    content_type TEXT NOT NULL,
    data         BLOB NOT NULL,
    uploaded_at  INTEGER NOT NULL
);
`
