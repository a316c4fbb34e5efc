// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/formlet/cliparse"
	"github.com/danielhkuo/formlet/middleware"
	"github.com/danielhkuo/formlet/models"
	"github.com/danielhkuo/formlet/validate"
)

type ResponseHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResponseHandler(db *sql.DB, cfg cliparse.Config) *ResponseHandler {
	return &ResponseHandler{db: db, cfg: cfg}
}

// AddResponse handles POST /api/responses
//
// Only published forms accept submissions. The payload is checked
// against the form's element definitions before anything is stored:
// required elements must be answered, choice answers must come from the
// element's options, and value shape must match the element type.
func (h *ResponseHandler) AddResponse(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := validate.Response(req); len(errs) > 0 {
		middleware.ValidationResponse(w, "Invalid response payload", errs)
		return
	}

	var isPublished bool
	err := h.db.QueryRow(`SELECT is_published FROM form WHERE id = $1`, req.FormID).Scan(&isPublished)
	if err == sql.ErrNoRows || (err == nil && !isPublished) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Form not found or is not published.")
		return
	}
	if err != nil {
		slog.Error("failed to query form", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	elements, err := loadElements(h.db, req.FormID)
	if err != nil {
		slog.Error("failed to query form elements", "error", err, "form_id", req.FormID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if errs := validate.Submission(elements, req.Response); len(errs) > 0 {
		middleware.ValidationResponse(w, "Response does not match the form", errs)
		return
	}

	responseID := uuid.NewString()
	submittedOn := time.Now()

	answers, err := json.Marshal(req.Response)
	if err != nil {
		slog.Error("failed to encode answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit response")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO user_response (id, form_id, submitted_on, answers)
		VALUES ($1, $2, $3, $4)
	`, responseID, req.FormID, submittedOn, answers)

	if err != nil {
		slog.Error("failed to insert response", "error", err, "form_id", req.FormID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit response")
		return
	}

	slog.Info("response submitted", "form_id", req.FormID, "response_id", responseID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		ResponseID: responseID,
		Message:    "Your response has been submitted successfully.",
	})
}

// ListResponses handles GET /api/responses/:formId
//
// Returns the form summary, its elements projected to table headers, and
// every response with values aligned to the form's element order.
func (h *ResponseHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	formID := r.PathValue("formId")
	if formID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "form id is required")
		return
	}

	form, err := loadForm(h.db, formID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Form not found")
		return
	}
	if err != nil {
		slog.Error("failed to query form", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	elements, err := loadElements(h.db, formID)
	if err != nil {
		slog.Error("failed to query form elements", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summaries := make([]models.ElementSummary, 0, len(elements))
	for _, el := range elements {
		summaries = append(summaries, models.ElementSummary{
			ID:         el.ID,
			Title:      el.Title,
			IsRequired: el.IsRequired,
		})
	}

	rows, err := h.db.Query(`
		SELECT id, answers
		FROM user_response
		WHERE form_id = $1
		ORDER BY submitted_on, id
	`, formID)
	if err != nil {
		slog.Error("failed to query responses", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	responses := []models.ResponseSummary{}
	for rows.Next() {
		var responseID string
		var answersJSON []byte
		if err := rows.Scan(&responseID, &answersJSON); err != nil {
			slog.Error("failed to scan response", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		var items []models.ResponseItem
		if err := json.Unmarshal(answersJSON, &items); err != nil {
			slog.Error("failed to decode answers", "error", err, "response_id", responseID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		byElement := make(map[string]models.AnswerValue, len(items))
		for _, item := range items {
			byElement[item.ElementID] = item.Value
		}

		// One cell per element, in display order. Skipped optional
		// elements get an empty value of the right shape.
		aligned := make([]models.AnsweredValue, 0, len(elements))
		for _, el := range elements {
			value, ok := byElement[el.ID]
			if !ok && models.IsMultiValue(el.InputType) {
				value = models.MultiValue()
			}
			aligned = append(aligned, models.AnsweredValue{Value: value})
		}

		responses = append(responses, models.ResponseSummary{
			ID:       responseID,
			Response: aligned,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponsesResponse{
		FormData: models.FormSummary{
			ID:              form.ID,
			FormName:        form.FormName,
			FormDescription: form.FormDescription,
		},
		FormElements: summaries,
		Responses:    responses,
	})
}

// GetResponse handles GET /api/responses/:formId/:responseId
//
// Returns one response with its form expanded to name/description and
// each answered element expanded to its title.
func (h *ResponseHandler) GetResponse(w http.ResponseWriter, r *http.Request) {
	responseID := r.PathValue("responseId")
	if responseID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "response id is required")
		return
	}

	var (
		formID          string
		formName        string
		formDescription *string
		submittedOn     time.Time
		answersJSON     []byte
	)
	err := h.db.QueryRow(`
		SELECT ur.form_id, ur.submitted_on, ur.answers, f.form_name, f.form_description
		FROM user_response ur
		JOIN form f ON f.id = ur.form_id
		WHERE ur.id = $1
	`, responseID).Scan(&formID, &submittedOn, &answersJSON, &formName, &formDescription)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Response not found.")
		return
	}
	if err != nil {
		slog.Error("failed to query response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var items []models.ResponseItem
	if err := json.Unmarshal(answersJSON, &items); err != nil {
		slog.Error("failed to decode answers", "error", err, "response_id", responseID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	titles, err := elementTitles(h.db, formID)
	if err != nil {
		slog.Error("failed to query element titles", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	expanded := make([]models.ExpandedResponseItem, 0, len(items))
	for _, item := range items {
		expanded = append(expanded, models.ExpandedResponseItem{
			Element: models.ElementTitle{
				ID:    item.ElementID,
				Title: titles[item.ElementID],
			},
			Value: item.Value,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.GetResponseResponse{
		ID: responseID,
		Form: models.FormSummary{
			ID:              formID,
			FormName:        formName,
			FormDescription: formDescription,
		},
		SubmittedOn: submittedOn,
		Response:    expanded,
	})
}

func elementTitles(q querier, formID string) (map[string]string, error) {
	rows, err := q.Query(`SELECT id, title FROM form_element WHERE form_id = $1`, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make(map[string]string)
	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, err
		}
		titles[id] = title
	}

	return titles, rows.Err()
}
