// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"strings"
	"testing"

	"github.com/danielhkuo/formlet/models"
)

func strptr(s string) *string { return &s }

func TestElements(t *testing.T) {
	tests := []struct {
		name      string
		elements  []models.ElementInput
		wantErrs  int
		wantField string
	}{
		{
			name:      "empty list",
			elements:  []models.ElementInput{},
			wantErrs:  1,
			wantField: "elements",
		},
		{
			name: "blank title",
			elements: []models.ElementInput{
				{Title: "   ", InputType: models.TypeText},
			},
			wantErrs:  1,
			wantField: "elements[0].title",
		},
		{
			name: "unrecognized input type",
			elements: []models.ElementInput{
				{Title: "Rating", InputType: "Slider"},
			},
			wantErrs:  1,
			wantField: "elements[0].inputType",
		},
		{
			name: "dropdown without options",
			elements: []models.ElementInput{
				{Title: "Color", InputType: models.TypeDropdown},
			},
			wantErrs:  1,
			wantField: "elements[0].options",
		},
		{
			name: "radio with empty options",
			elements: []models.ElementInput{
				{Title: "Size", InputType: models.TypeRadio, Options: []string{}},
			},
			wantErrs:  1,
			wantField: "elements[0].options",
		},
		{
			name: "options on a text element are tolerated",
			elements: []models.ElementInput{
				{Title: "Name", InputType: models.TypeText, Options: []string{"ignored"}},
			},
			wantErrs: 0,
		},
		{
			name: "valid mixed list",
			elements: []models.ElementInput{
				{Title: "Name", InputType: models.TypeText, IsRequired: true},
				{Title: "Color", InputType: models.TypeCheckbox, Options: []string{"Red", "Blue"}},
				{Title: "Notes", InputType: models.TypeTextarea, Placeholder: strptr("anything else?")},
			},
			wantErrs: 0,
		},
		{
			name: "multiple failures reported together",
			elements: []models.ElementInput{
				{Title: "", InputType: models.TypeText},
				{Title: "Color", InputType: models.TypeDropdown},
			},
			wantErrs: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Elements(tc.elements)
			if len(errs) != tc.wantErrs {
				t.Fatalf("Expected %d errors, got %d: %v", tc.wantErrs, len(errs), errs)
			}
			if tc.wantField != "" && errs[0].Field != tc.wantField {
				t.Errorf("Expected field %q, got %q", tc.wantField, errs[0].Field)
			}
		})
	}
}

func TestCreateForm(t *testing.T) {
	valid := models.CreateFormRequest{
		FormName: "Survey",
		Elements: []models.ElementInput{
			{Title: "Name", InputType: models.TypeText},
		},
	}
	if errs := CreateForm(valid); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	missingName := valid
	missingName.FormName = "  "
	errs := CreateForm(missingName)
	if len(errs) != 1 || errs[0].Field != "formName" {
		t.Errorf("Expected formName error, got %v", errs)
	}

	noElements := models.CreateFormRequest{FormName: "Survey"}
	if errs := CreateForm(noElements); len(errs) != 1 {
		t.Errorf("Expected elements error, got %v", errs)
	}
}

func TestUpdateForm(t *testing.T) {
	if errs := UpdateForm(models.UpdateFormRequest{}); len(errs) != 0 {
		t.Errorf("Empty patch should be valid, got %v", errs)
	}

	blank := models.UpdateFormRequest{FormName: strptr("  ")}
	if errs := UpdateForm(blank); len(errs) != 1 || errs[0].Field != "formName" {
		t.Errorf("Expected formName error, got %v", errs)
	}

	emptyElements := models.UpdateFormRequest{Elements: []models.ElementInput{}}
	errs := UpdateForm(emptyElements)
	if len(errs) != 1 || errs[0].Field != "elements" {
		t.Errorf("Supplied element list must be non-empty, got %v", errs)
	}
}

func TestResponse(t *testing.T) {
	valid := models.SubmitResponseRequest{
		FormID: "form-1",
		Response: []models.ResponseItem{
			{ElementID: "el-1", Value: models.Scalar("Alice")},
		},
	}
	if errs := Response(valid); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	missing := models.SubmitResponseRequest{}
	errs := Response(missing)
	if len(errs) != 2 {
		t.Fatalf("Expected formId and response errors, got %v", errs)
	}

	noElementID := models.SubmitResponseRequest{
		FormID:   "form-1",
		Response: []models.ResponseItem{{Value: models.Scalar("x")}},
	}
	errs = Response(noElementID)
	if len(errs) != 1 || errs[0].Field != "response[0].elementId" {
		t.Errorf("Expected elementId error, got %v", errs)
	}
}

func submissionElements() []models.FormElement {
	return []models.FormElement{
		{ID: "el-name", Title: "Name", InputType: models.TypeText, IsRequired: true},
		{ID: "el-color", Title: "Color", InputType: models.TypeDropdown, Options: []string{"Red", "Blue"}},
		{ID: "el-toppings", Title: "Toppings", InputType: models.TypeCheckbox, Options: []string{"Ham", "Olives", "Basil"}},
	}
}

func TestSubmission(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.ResponseItem
		wantErrs int
		contains string
	}{
		{
			name: "complete submission",
			items: []models.ResponseItem{
				{ElementID: "el-name", Value: models.Scalar("Alice")},
				{ElementID: "el-color", Value: models.Scalar("Red")},
				{ElementID: "el-toppings", Value: models.MultiValue("Ham", "Basil")},
			},
			wantErrs: 0,
		},
		{
			name: "required answer may be the only one",
			items: []models.ResponseItem{
				{ElementID: "el-name", Value: models.Scalar("Alice")},
			},
			wantErrs: 0,
		},
		{
			name: "missing required element",
			items: []models.ResponseItem{
				{ElementID: "el-color", Value: models.Scalar("Blue")},
			},
			wantErrs: 1,
			contains: "required element",
		},
		{
			name: "blank value for required element",
			items: []models.ResponseItem{
				{ElementID: "el-name", Value: models.Scalar("   ")},
			},
			wantErrs: 1,
			contains: "required element",
		},
		{
			name: "element of another form",
			items: []models.ResponseItem{
				{ElementID: "el-name", Value: models.Scalar("Alice")},
				{ElementID: "el-stranger", Value: models.Scalar("x")},
			},
			wantErrs: 1,
			contains: "does not belong",
		},
		{
			name: "scalar answer for a checkbox",
			items: []models.ResponseItem{
				{ElementID: "el-name", Value: models.Scalar("Alice")},
				{ElementID: "el-toppings", Value: models.Scalar("Ham")},
			},
			wantErrs: 1,
			contains: "list of values",
		},
		{
			name: "list answer for a text element",
			items: []models.ResponseItem{
				{ElementID: "el-name", Value: models.MultiValue("Alice")},
			},
			wantErrs: 2, // shape error plus the required element goes unanswered
		},
		{
			name: "dropdown answer outside the options",
			items: []models.ResponseItem{
				{ElementID: "el-name", Value: models.Scalar("Alice")},
				{ElementID: "el-color", Value: models.Scalar("Green")},
			},
			wantErrs: 1,
			contains: "not an option",
		},
		{
			name: "checkbox answer with a stray option",
			items: []models.ResponseItem{
				{ElementID: "el-name", Value: models.Scalar("Alice")},
				{ElementID: "el-toppings", Value: models.MultiValue("Ham", "Pineapple")},
			},
			wantErrs: 1,
			contains: "not an option",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Submission(submissionElements(), tc.items)
			if len(errs) != tc.wantErrs {
				t.Fatalf("Expected %d errors, got %d: %v", tc.wantErrs, len(errs), errs)
			}
			if tc.contains != "" && !strings.Contains(errs.Error(), tc.contains) {
				t.Errorf("Expected error containing %q, got %q", tc.contains, errs.Error())
			}
		})
	}
}

func TestErrorsMessage(t *testing.T) {
	errs := Errors{
		{Field: "formName", Message: "formName is required"},
		{Field: "elements", Message: "form must have at least one element"},
	}
	want := "formName: formName is required; elements: form must have at least one element"
	if errs.Error() != want {
		t.Errorf("Expected %q, got %q", want, errs.Error())
	}
}
