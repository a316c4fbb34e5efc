// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/formlet/cliparse"
	"github.com/danielhkuo/formlet/middleware"
	"github.com/danielhkuo/formlet/models"
	"github.com/danielhkuo/formlet/validate"
)

type FormHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewFormHandler(db *sql.DB, cfg cliparse.Config) *FormHandler {
	return &FormHandler{db: db, cfg: cfg}
}

// querier is satisfied by both *sql.DB and *sql.Tx so the load/insert
// helpers work inside and outside transactions.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// responseLink builds the public shareable link for a published form.
func responseLink(baseURL, formID string) string {
	return baseURL + "/forms/response/" + formID
}

// CreateForm handles POST /api/forms
func (h *FormHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFormRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validate.CreateForm(req); len(errs) > 0 {
		middleware.ValidationResponse(w, "Invalid form payload", errs)
		return
	}

	formID := uuid.NewString()
	now := time.Now()

	// Absent isPublished means publish.
	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	var link *string
	if isPublished {
		l := responseLink(h.cfg.BaseURL, formID)
		link = &l
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO form (id, form_name, form_description, is_published, link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, formID, req.FormName, req.FormDescription, isPublished, link, now)

	if err != nil {
		slog.Error("failed to insert form", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create form")
		return
	}

	elements, err := insertElements(tx, formID, req.Elements)
	if err != nil {
		slog.Error("failed to insert form elements", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create form")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create form")
		return
	}

	slog.Info("form created", "form_id", formID, "elements", len(elements), "published", isPublished)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateFormResponse{
		Form: models.FormWithElements{
			ID:              formID,
			FormName:        req.FormName,
			FormDescription: req.FormDescription,
			Elements:        elements,
			IsPublished:     isPublished,
			Link:            link,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		FormLink: link,
	})
}

// ListForms handles GET /api/forms?page=&limit=
func (h *FormHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	page, limit := 1, 10

	if s := r.URL.Query().Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid pagination parameters. 'limit' and 'page' must be positive integers.")
			return
		}
		page = v
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid pagination parameters. 'limit' and 'page' must be positive integers.")
			return
		}
		limit = v
	}

	if page <= 0 || limit <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid pagination parameters. 'limit' and 'page' must be greater than 0.")
		return
	}

	var totalForms int
	if err := h.db.QueryRow(`SELECT COUNT(*) FROM form`).Scan(&totalForms); err != nil {
		slog.Error("failed to count forms", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if totalForms == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No forms found! Please create one.")
		return
	}

	totalPages := (totalForms + limit - 1) / limit
	offset := (page - 1) * limit

	rows, err := h.db.Query(`
		SELECT id, form_name, form_description, is_published, link, created_at, updated_at
		FROM form
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`, limit, offset)

	if err != nil {
		slog.Error("failed to query forms", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	forms := []models.Form{}
	for rows.Next() {
		var form models.Form
		if err := rows.Scan(
			&form.ID, &form.FormName, &form.FormDescription,
			&form.IsPublished, &form.Link, &form.CreatedAt, &form.UpdatedAt,
		); err != nil {
			slog.Error("failed to scan form", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		forms = append(forms, form)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListFormsResponse{
		Forms: forms,
		Pagination: models.Pagination{
			TotalForms:  totalForms,
			TotalPages:  totalPages,
			CurrentPage: page,
			Limit:       limit,
		},
	})
}

// GetForm handles GET /api/forms/:id
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	formID := r.PathValue("id")
	if formID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "form id is required")
		return
	}

	form, err := loadForm(h.db, formID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Form not found.")
		return
	}
	if err != nil {
		slog.Error("failed to query form", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	form.Elements, err = loadElements(h.db, formID)
	if err != nil {
		slog.Error("failed to query form elements", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetFormResponse{Form: form})
}

// UpdateForm handles PUT /api/forms/:id
//
// Supplying a new element list replaces every element of the form and
// purges all recorded responses: the old responses reference element ids
// that no longer exist, so they go out with the elements, in the same
// transaction.
func (h *FormHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	formID := r.PathValue("id")
	if formID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "form id is required")
		return
	}

	var req models.UpdateFormRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validate.UpdateForm(req); len(errs) > 0 {
		middleware.ValidationResponse(w, "Invalid form payload", errs)
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var existing models.FormWithElements
	err = tx.QueryRow(`
		SELECT id, form_name, form_description, is_published, link, created_at, updated_at
		FROM form
		WHERE id = $1
		FOR UPDATE
	`, formID).Scan(
		&existing.ID, &existing.FormName, &existing.FormDescription,
		&existing.IsPublished, &existing.Link, &existing.CreatedAt, &existing.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Form not found")
		return
	}
	if err != nil {
		slog.Error("failed to query form", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var elements []models.FormElement
	if req.Elements != nil {
		if _, err := tx.Exec(`DELETE FROM form_element WHERE form_id = $1`, formID); err != nil {
			slog.Error("failed to delete form elements", "error", err, "form_id", formID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update form")
			return
		}
		if _, err := tx.Exec(`DELETE FROM user_response WHERE form_id = $1`, formID); err != nil {
			slog.Error("failed to delete form responses", "error", err, "form_id", formID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update form")
			return
		}
		elements, err = insertElements(tx, formID, req.Elements)
		if err != nil {
			slog.Error("failed to insert form elements", "error", err, "form_id", formID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update form")
			return
		}
	} else {
		elements, err = loadElements(tx, formID)
		if err != nil {
			slog.Error("failed to query form elements", "error", err, "form_id", formID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	formName := existing.FormName
	if req.FormName != nil {
		formName = *req.FormName
	}
	formDescription := existing.FormDescription
	if req.FormDescription != nil {
		formDescription = req.FormDescription
	}

	// Absent isPublished means publish.
	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	var link *string
	if isPublished {
		l := responseLink(h.cfg.BaseURL, formID)
		link = &l
	}

	now := time.Now()
	_, err = tx.Exec(`
		UPDATE form
		SET form_name = $1, form_description = $2, is_published = $3, link = $4, updated_at = $5
		WHERE id = $6
	`, formName, formDescription, isPublished, link, now, formID)

	if err != nil {
		slog.Error("failed to update form", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update form")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update form")
		return
	}

	slog.Info("form updated", "form_id", formID, "elements_replaced", req.Elements != nil, "published", isPublished)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateFormResponse{
		Form: models.FormWithElements{
			ID:              formID,
			FormName:        formName,
			FormDescription: formDescription,
			Elements:        elements,
			IsPublished:     isPublished,
			Link:            link,
			CreatedAt:       existing.CreatedAt,
			UpdatedAt:       now,
		},
		FormLink: link,
	})
}

// DeleteForm handles DELETE /api/forms/:id
//
// Deletes the form's elements and responses along with the form itself,
// all in one transaction.
func (h *FormHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	formID := r.PathValue("id")
	if formID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "form id is required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRow(`SELECT id FROM form WHERE id = $1 FOR UPDATE`, formID).Scan(&id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Form not found")
		return
	}
	if err != nil {
		slog.Error("failed to query form", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if _, err := tx.Exec(`DELETE FROM form_element WHERE form_id = $1`, formID); err != nil {
		slog.Error("failed to delete form elements", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete form")
		return
	}
	if _, err := tx.Exec(`DELETE FROM user_response WHERE form_id = $1`, formID); err != nil {
		slog.Error("failed to delete form responses", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete form")
		return
	}
	if _, err := tx.Exec(`DELETE FROM form WHERE id = $1`, formID); err != nil {
		slog.Error("failed to delete form", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete form")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete form")
		return
	}

	slog.Info("form deleted", "form_id", formID)

	w.WriteHeader(http.StatusNoContent)
}

// insertElements persists a form's element list in order, assigning a
// fresh id per element. Options on non-choice types are dropped.
func insertElements(q querier, formID string, inputs []models.ElementInput) ([]models.FormElement, error) {
	elements := make([]models.FormElement, 0, len(inputs))

	for i, in := range inputs {
		options := in.Options
		if !models.IsChoiceBased(in.InputType) || options == nil {
			options = []string{}
		}

		optionsJSON, err := json.Marshal(options)
		if err != nil {
			return nil, fmt.Errorf("failed to encode options: %w", err)
		}

		el := models.FormElement{
			ID:          uuid.NewString(),
			FormID:      formID,
			Title:       in.Title,
			InputType:   in.InputType,
			Options:     options,
			IsRequired:  in.IsRequired,
			Placeholder: in.Placeholder,
		}

		_, err = q.Exec(`
			INSERT INTO form_element (id, form_id, position, title, input_type, options, is_required, placeholder)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, el.ID, formID, i, el.Title, el.InputType, optionsJSON, el.IsRequired, el.Placeholder)

		if err != nil {
			return nil, fmt.Errorf("failed to insert element: %w", err)
		}

		elements = append(elements, el)
	}

	return elements, nil
}

// loadForm fetches a form row without its elements. Returns
// sql.ErrNoRows when the form does not exist.
func loadForm(q querier, formID string) (models.FormWithElements, error) {
	var form models.FormWithElements
	err := q.QueryRow(`
		SELECT id, form_name, form_description, is_published, link, created_at, updated_at
		FROM form
		WHERE id = $1
	`, formID).Scan(
		&form.ID, &form.FormName, &form.FormDescription,
		&form.IsPublished, &form.Link, &form.CreatedAt, &form.UpdatedAt,
	)
	return form, err
}

// loadElements fetches a form's elements in display order.
func loadElements(q querier, formID string) ([]models.FormElement, error) {
	rows, err := q.Query(`
		SELECT id, form_id, title, input_type, options, is_required, placeholder
		FROM form_element
		WHERE form_id = $1
		ORDER BY position
	`, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	elements := []models.FormElement{}
	for rows.Next() {
		var el models.FormElement
		var optionsJSON []byte
		if err := rows.Scan(
			&el.ID, &el.FormID, &el.Title, &el.InputType,
			&optionsJSON, &el.IsRequired, &el.Placeholder,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(optionsJSON, &el.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options for element %s: %w", el.ID, err)
		}
		elements = append(elements, el)
	}

	return elements, rows.Err()
}
