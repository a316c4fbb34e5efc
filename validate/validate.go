// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/formlet/models"
)

// Errors is a list of field-level validation failures. A payload is
// accepted or rejected as a whole: any entry here means the operation
// was refused before touching the database.
type Errors []models.FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) add(field, message string) Errors {
	return append(e, models.FieldError{Field: field, Message: message})
}

// Elements checks a form's element list: it must be non-empty, every
// element needs a non-blank title and a recognized inputType, and
// choice-based elements need at least one option. Options supplied on
// non-choice types are accepted and ignored rather than rejected.
func Elements(elements []models.ElementInput) Errors {
	var errs Errors

	if len(elements) == 0 {
		return errs.add("elements", "form must have at least one element")
	}

	for i, el := range elements {
		field := fmt.Sprintf("elements[%d]", i)
		if strings.TrimSpace(el.Title) == "" {
			errs = errs.add(field+".title", "title is required")
		}
		if !models.ValidInputType(el.InputType) {
			errs = errs.add(field+".inputType", fmt.Sprintf("unrecognized input type %q", el.InputType))
			continue
		}
		if models.IsChoiceBased(el.InputType) && len(el.Options) == 0 {
			errs = errs.add(field+".options", fmt.Sprintf("options are required for %s elements", el.InputType))
		}
	}

	return errs
}

// CreateForm checks a form creation payload.
func CreateForm(req models.CreateFormRequest) Errors {
	var errs Errors

	if strings.TrimSpace(req.FormName) == "" {
		errs = errs.add("formName", "formName is required")
	}
	errs = append(errs, Elements(req.Elements)...)

	return errs
}

// UpdateForm checks a form update payload. All fields are optional, but
// any field that is present must be valid, and a supplied element list
// must be non-empty.
func UpdateForm(req models.UpdateFormRequest) Errors {
	var errs Errors

	if req.FormName != nil && strings.TrimSpace(*req.FormName) == "" {
		errs = errs.add("formName", "formName cannot be blank")
	}
	if req.Elements != nil {
		errs = append(errs, Elements(req.Elements)...)
	}

	return errs
}

// Response checks the structural shape of a submission payload. It does
// not look at the form definition; Submission does that once the form's
// elements are loaded.
func Response(req models.SubmitResponseRequest) Errors {
	var errs Errors

	if strings.TrimSpace(req.FormID) == "" {
		errs = errs.add("formId", "formId is required")
	}
	if len(req.Response) == 0 {
		errs = errs.add("response", "response must contain at least one item")
	}
	for i, item := range req.Response {
		if strings.TrimSpace(item.ElementID) == "" {
			errs = errs.add(fmt.Sprintf("response[%d].elementId", i), "elementId is required")
		}
	}

	return errs
}

// Submission cross-checks submitted items against the form's element
// definitions: every item must reference an element of the form, value
// shape must match the element type (list for multi-value types, single
// string otherwise), choice answers must come from the element's
// options, and every required element needs a non-empty answer.
func Submission(elements []models.FormElement, items []models.ResponseItem) Errors {
	var errs Errors

	byID := make(map[string]models.FormElement, len(elements))
	for _, el := range elements {
		byID[el.ID] = el
	}

	answered := make(map[string]models.AnswerValue, len(items))
	for i, item := range items {
		field := fmt.Sprintf("response[%d]", i)

		el, ok := byID[item.ElementID]
		if !ok {
			errs = errs.add(field+".elementId", fmt.Sprintf("element %s does not belong to this form", item.ElementID))
			continue
		}

		if models.IsMultiValue(el.InputType) != item.Value.Multi {
			if item.Value.Multi {
				errs = errs.add(field+".value", fmt.Sprintf("%s elements take a single value", el.InputType))
			} else {
				errs = errs.add(field+".value", fmt.Sprintf("%s elements take a list of values", el.InputType))
			}
			continue
		}

		if models.IsChoiceBased(el.InputType) {
			for _, chosen := range chosenValues(item.Value) {
				if !containsOption(el.Options, chosen) {
					errs = errs.add(field+".value", fmt.Sprintf("%q is not an option of element %q", chosen, el.Title))
				}
			}
		}

		answered[item.ElementID] = item.Value
	}

	for _, el := range elements {
		if !el.IsRequired {
			continue
		}
		value, ok := answered[el.ID]
		if !ok || value.IsEmpty() {
			errs = errs.add("response", fmt.Sprintf("required element %q has no answer", el.Title))
		}
	}

	return errs
}

func chosenValues(v models.AnswerValue) []string {
	if v.Multi {
		return v.Values
	}
	if strings.TrimSpace(v.Text) == "" {
		return nil
	}
	return []string{v.Text}
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
