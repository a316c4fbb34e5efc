package models

import "time"

// Request types

type ElementInput struct {
	Title       string   `json:"title"`
	InputType   string   `json:"inputType"`
	Options     []string `json:"options"`
	IsRequired  bool     `json:"isRequired"`
	Placeholder *string  `json:"placeholder,omitempty"`
}

type CreateFormRequest struct {
	FormName        string         `json:"formName"`
	FormDescription *string        `json:"formDescription"`
	IsPublished     *bool          `json:"isPublished"`
	Elements        []ElementInput `json:"elements"`
}

// UpdateFormRequest carries partial-update semantics: nil fields keep
// their previous values. A nil Elements slice keeps the current element
// list; a non-nil slice replaces it wholesale.
type UpdateFormRequest struct {
	FormName        *string        `json:"formName"`
	FormDescription *string        `json:"formDescription"`
	IsPublished     *bool          `json:"isPublished"`
	Elements        []ElementInput `json:"elements"`
}

type SubmitResponseRequest struct {
	FormID   string         `json:"formId"`
	Response []ResponseItem `json:"response"`
}

// Response types

type CreateFormResponse struct {
	Form     FormWithElements `json:"form"`
	FormLink *string          `json:"formLink,omitempty"`
}

type UpdateFormResponse struct {
	Form     FormWithElements `json:"form"`
	FormLink *string          `json:"formLink,omitempty"`
}

type GetFormResponse struct {
	Form FormWithElements `json:"form"`
}

type Pagination struct {
	TotalForms  int `json:"totalForms"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

type ListFormsResponse struct {
	Forms      []Form     `json:"forms"`
	Pagination Pagination `json:"pagination"`
}

type SubmitResponseResponse struct {
	ResponseID string `json:"responseId"`
	Message    string `json:"message"`
}

type FormSummary struct {
	ID              string  `json:"id"`
	FormName        string  `json:"formName"`
	FormDescription *string `json:"formDescription,omitempty"`
}

type ElementSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	IsRequired bool   `json:"isRequired"`
}

// AnsweredValue is one cell in the tabular responses view. Rows are
// aligned to the form's element order, so every row has one entry per
// element even when the respondent skipped an optional field.
type AnsweredValue struct {
	Value AnswerValue `json:"value"`
}

type ResponseSummary struct {
	ID       string          `json:"id"`
	Response []AnsweredValue `json:"response"`
}

type ListResponsesResponse struct {
	FormData     FormSummary       `json:"formData"`
	FormElements []ElementSummary  `json:"formElements"`
	Responses    []ResponseSummary `json:"responses"`
}

type ElementTitle struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ExpandedResponseItem struct {
	Element ElementTitle `json:"element"`
	Value   AnswerValue  `json:"value"`
}

type GetResponseResponse struct {
	ID          string                 `json:"id"`
	Form        FormSummary            `json:"form"`
	SubmittedOn time.Time              `json:"submittedOn"`
	Response    []ExpandedResponseItem `json:"response"`
}

// Domain types

type Form struct {
	ID              string    `json:"id"`
	FormName        string    `json:"formName"`
	FormDescription *string   `json:"formDescription,omitempty"`
	IsPublished     bool      `json:"isPublished"`
	Link            *string   `json:"link,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type FormElement struct {
	ID          string   `json:"id"`
	FormID      string   `json:"formId"`
	Title       string   `json:"title"`
	InputType   string   `json:"inputType"`
	Options     []string `json:"options"`
	IsRequired  bool     `json:"isRequired"`
	Placeholder *string  `json:"placeholder,omitempty"`
}

type FormWithElements struct {
	ID              string        `json:"id"`
	FormName        string        `json:"formName"`
	FormDescription *string       `json:"formDescription,omitempty"`
	Elements        []FormElement `json:"elements"`
	IsPublished     bool          `json:"isPublished"`
	Link            *string       `json:"link,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type ResponseItem struct {
	ElementID string      `json:"elementId"`
	Value     AnswerValue `json:"value"`
}

type UserResponse struct {
	ID          string         `json:"id"`
	FormID      string         `json:"formId"`
	SubmittedOn time.Time      `json:"submittedOn"`
	Response    []ResponseItem `json:"response"`
}

// Error response

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}
