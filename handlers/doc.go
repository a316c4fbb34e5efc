// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the formlet API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - FormHandler: form lifecycle (create, list, get, update, delete)
  - ResponseHandler: submission and review of responses
  - RenderHandler: HTML rendering of published forms

Handlers are created via constructor functions that accept *sql.DB and Config:

	formHandler := handlers.NewFormHandler(db, cfg)

# Form Lifecycle

	POST   /api/forms        → CreateForm (elements stored in order)
	GET    /api/forms        → ListForms (paginated, newest first)
	GET    /api/forms/{id}   → GetForm (elements expanded inline)
	PUT    /api/forms/{id}   → UpdateForm (element replace cascades)
	DELETE /api/forms/{id}   → DeleteForm (cascades)

A published form carries a shareable link of the shape

	{BaseURL}/forms/response/{formID}

and the link exists exactly when isPublished is true.

# Cascade Rules

Replacing a form's elements (PUT with an elements list) deletes every
prior element and every recorded response in one transaction: old
responses point at element ids that are being destroyed. DeleteForm
removes elements, responses, and the form the same way. A partial
cascade never survives a failure.

# Response Flow

	POST /api/responses                      → AddResponse (published forms only)
	GET  /api/responses/{formId}             → ListResponses (tabular view)
	GET  /api/responses/{formId}/{responseId} → GetResponse (expanded view)

AddResponse cross-checks the submission against the form definition:
required elements must carry a non-empty value, choice answers must be
members of the element's options, and multi-value types take lists
where everything else takes a single string.
*/
package handlers
