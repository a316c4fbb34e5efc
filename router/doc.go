// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers.

Routes use Go 1.22+ method routing on the standard ServeMux, mounted
under /api, with request logging on every route and CORS applied to the
whole mux:

	GET    /health
	POST   /api/forms
	GET    /api/forms
	GET    /api/forms/{id}
	PUT    /api/forms/{id}
	DELETE /api/forms/{id}
	GET    /api/forms/{id}/render
	POST   /api/responses
	GET    /api/responses/{formId}
	GET    /api/responses/{formId}/{responseId}
*/
package router
