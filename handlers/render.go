// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/formlet/cliparse"
	"github.com/danielhkuo/formlet/middleware"
	"github.com/danielhkuo/formlet/render"
)

type RenderHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRenderHandler(db *sql.DB, cfg cliparse.Config) *RenderHandler {
	return &RenderHandler{db: db, cfg: cfg}
}

// RenderForm handles GET /api/forms/:id/render
//
// Serves the published form as HTML. Unpublished forms are invisible
// here, same as for submissions.
func (h *RenderHandler) RenderForm(w http.ResponseWriter, r *http.Request) {
	formID := r.PathValue("id")
	if formID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "form id is required")
		return
	}

	form, err := loadForm(h.db, formID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Form not found or is not published.")
		return
	}
	if err != nil {
		slog.Error("failed to query form", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !form.IsPublished {
		middleware.ErrorResponse(w, http.StatusNotFound, "Form not found or is not published.")
		return
	}

	form.Elements, err = loadElements(h.db, formID)
	if err != nil {
		slog.Error("failed to query form elements", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	html, err := render.Form(form)
	if err != nil {
		slog.Error("failed to render form", "error", err, "form_id", formID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render form")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		slog.Error("failed to write rendered form", "error", err)
	}
}
