// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/formlet/cliparse"
	"github.com/danielhkuo/formlet/handlers"
	"github.com/danielhkuo/formlet/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	formHandler := handlers.NewFormHandler(db, cfg)
	responseHandler := handlers.NewResponseHandler(db, cfg)
	renderHandler := handlers.NewRenderHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Form management
	mux.HandleFunc("POST /api/forms", middleware.WithLogging(formHandler.CreateForm))
	mux.HandleFunc("GET /api/forms", middleware.WithLogging(formHandler.ListForms))
	mux.HandleFunc("GET /api/forms/{id}", middleware.WithLogging(formHandler.GetForm))
	mux.HandleFunc("PUT /api/forms/{id}", middleware.WithLogging(formHandler.UpdateForm))
	mux.HandleFunc("DELETE /api/forms/{id}", middleware.WithLogging(formHandler.DeleteForm))

	// Published form rendering
	mux.HandleFunc("GET /api/forms/{id}/render", middleware.WithLogging(renderHandler.RenderForm))

	// Response collection and review
	mux.HandleFunc("POST /api/responses", middleware.WithLogging(responseHandler.AddResponse))
	mux.HandleFunc("GET /api/responses/{formId}", middleware.WithLogging(responseHandler.ListResponses))
	mux.HandleFunc("GET /api/responses/{formId}/{responseId}", middleware.WithLogging(responseHandler.GetResponse))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("formlet API v1"))
	})

	return middleware.CORS(mux)
}
