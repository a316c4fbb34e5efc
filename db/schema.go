// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Forms
CREATE TABLE IF NOT EXISTS form (
    id TEXT PRIMARY KEY,
    form_name TEXT NOT NULL,
    form_description TEXT,
    is_published BOOLEAN NOT NULL DEFAULT FALSE,
    link TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_form_created_at ON form(created_at);

-- Form elements. Owned by exactly one form; position preserves the
-- author's display order.
CREATE TABLE IF NOT EXISTS form_element (
    id TEXT PRIMARY KEY,
    form_id TEXT NOT NULL REFERENCES form(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    input_type TEXT NOT NULL,
    options JSONB NOT NULL DEFAULT '[]',
    is_required BOOLEAN NOT NULL DEFAULT FALSE,
    placeholder TEXT
);

CREATE INDEX IF NOT EXISTS idx_form_element_form_id ON form_element(form_id, position);

-- User responses. Answers are stored as a JSONB array of
-- {elementId, value} pairs; value is a string or an array of strings.
CREATE TABLE IF NOT EXISTS user_response (
    id TEXT PRIMARY KEY,
    form_id TEXT NOT NULL REFERENCES form(id) ON DELETE CASCADE,
    submitted_on TIMESTAMP NOT NULL DEFAULT NOW(),
    answers JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_user_response_form_id ON user_response(form_id);
`
