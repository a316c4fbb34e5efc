// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateFormRequest: formName, formDescription, isPublished, elements
  - UpdateFormRequest: same fields, all optional (partial update)
  - SubmitResponseRequest: formId, response ([{elementId, value}])

# Response Types

Types for JSON responses:

  - CreateFormResponse / UpdateFormResponse: form, formLink
  - GetFormResponse: form with elements expanded inline
  - ListFormsResponse: forms, pagination
  - SubmitResponseResponse: responseId, message
  - ListResponsesResponse: formData, formElements, responses
  - GetResponseResponse: one response with form and element titles expanded
  - ErrorResponse: error, message, optional field-level errors

# Domain Types

Internal data structures:

  - Form: form metadata, publish state, share link
  - FormElement: one typed input within a form
  - UserResponse: one respondent's full submission
  - AnswerValue: tagged variant, single string or list of strings

# Element Type Catalog

The closed set of input types lives in catalog.go:

	Text, Textarea, Email, Phone, Dropdown, MultiSelectDropdown,
	Checkbox, Radio, File, Date

Choice-based types (Dropdown, MultiSelectDropdown, Checkbox, Radio)
require a non-empty options list. Multi-value types (MultiSelectDropdown,
Checkbox) collect list-shaped answers; all others collect a single
string. The predicates ValidInputType, IsChoiceBased, and IsMultiValue
answer these questions for validation and rendering.
*/
package models
