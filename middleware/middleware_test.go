// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/formlet/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()

	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusNotFound, "Form not found.")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Error != "Not Found" || body.Message != "Form not found." {
		t.Errorf("Unexpected body: %+v", body)
	}
}

func TestValidationResponse(t *testing.T) {
	w := httptest.NewRecorder()

	errs := []models.FieldError{
		{Field: "formName", Message: "formName is required"},
		{Field: "elements", Message: "form must have at least one element"},
	}
	ValidationResponse(w, "Invalid form payload", errs)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Message != "Invalid form payload" {
		t.Errorf("Unexpected message: %q", body.Message)
	}
	if len(body.Errors) != 2 || body.Errors[0].Field != "formName" {
		t.Errorf("Field errors should be attached, got %+v", body.Errors)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"formName":"Survey"}`))

	var payload struct {
		FormName string `json:"formName"`
	}
	if err := ParseJSONBody(req, &payload); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if payload.FormName != "Survey" {
		t.Errorf("Expected Survey, got %q", payload.FormName)
	}

	bad := httptest.NewRequest("POST", "/", strings.NewReader("not json"))
	if err := ParseJSONBody(bad, &payload); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestWithLoggingPassesThrough(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest("GET", "/teapot", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected 418, got %d", w.Code)
	}
	if w.Body.String() != "short and stout" {
		t.Errorf("Body should pass through, got %q", w.Body.String())
	}
}

func TestCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS(inner)

	t.Run("echoes the origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Expected origin echoed, got %q", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest("OPTIONS", "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 on preflight, got %d", w.Code)
		}
		if called {
			t.Error("Preflight should not reach the inner handler")
		}
	})
}
