// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: logs method, path, status, and duration per request
  - CORS: allows cross-origin requests from the frontend

# JSON Helpers

  - JSONResponse: writes a JSON body with the given status
  - ErrorResponse: writes a models.ErrorResponse
  - ValidationResponse: 400 with field-level validation failures attached
  - ParseJSONBody: decodes a request body into a struct
*/
package middleware
