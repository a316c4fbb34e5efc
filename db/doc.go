// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

Three tables back the form builder:

  - form: form metadata, publish state, share link, timestamps
  - form_element: typed inputs owned by a form, ordered by position
  - user_response: respondent submissions, answers stored as JSONB

Foreign keys cascade on delete, but the handlers do not rely on that
alone: every multi-step cascade (form update with element replacement,
form delete) runs inside an explicit transaction so a partial failure
never leaves a form referencing deleted elements or orphaned responses.

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
	    log.Fatal(err)
	}

CreateSchema is idempotent (IF NOT EXISTS) and safe to run on startup.
*/
package db
