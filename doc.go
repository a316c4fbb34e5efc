// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the formlet API server.

Formlet is a form-builder backend: authors define forms as ordered lists
of typed input elements, publish them to get a shareable response link,
collect submissions, and review results per form or per response.

# Starting the Server

The server requires a database URL via environment or CLI flags:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..."

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - BASE_URL (-base-url): Public base URL embedded in shareable form
    links (default: http://localhost:5173)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (forms, responses, rendering)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response/domain types and the element type catalog
  - validate: Payload validation with field-level errors
  - render: HTML widget rendering per element type
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
