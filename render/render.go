// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/danielhkuo/formlet/models"
)

// ErrUnknownInputType is returned when an element carries a type outside
// the catalog. Validation prevents such elements from being stored, so
// hitting this means the database holds data this build does not know.
var ErrUnknownInputType = errors.New("unknown input type")

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// textSanitizer strips all markup from author-supplied text. Titles,
// descriptions, and option labels are plain text as far as the renderer
// is concerned.
func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// label sanitizes author text for use inside an HTML text node.
func label(raw string) string {
	return strings.TrimSpace(textSanitizer().Sanitize(raw))
}

// attr escapes a value for use inside a quoted HTML attribute.
func attr(raw string) string {
	return template.HTMLEscapeString(raw)
}

// Form renders a complete HTML form for the given definition, one widget
// per element in display order.
func Form(form models.FormWithElements) (string, error) {
	var b strings.Builder

	b.WriteString(`<form class="formlet-form" data-form-id="` + attr(form.ID) + `">` + "\n")
	b.WriteString(`<h1>` + label(form.FormName) + `</h1>` + "\n")
	if form.FormDescription != nil && *form.FormDescription != "" {
		b.WriteString(`<p class="formlet-description">` + label(*form.FormDescription) + `</p>` + "\n")
	}

	for _, el := range form.Elements {
		widget, err := Element(el)
		if err != nil {
			return "", err
		}
		b.WriteString(widget + "\n")
	}

	b.WriteString(`<button type="submit">Submit</button>` + "\n")
	b.WriteString(`</form>` + "\n")

	return b.String(), nil
}

// Element renders one element as a labeled input widget. The switch is
// exhaustive over the type catalog.
func Element(el models.FormElement) (string, error) {
	var widget string

	switch el.InputType {
	case models.TypeText:
		widget = textInput(el, "text")
	case models.TypeTextarea:
		widget = textarea(el)
	case models.TypeEmail:
		widget = textInput(el, "email")
	case models.TypePhone:
		widget = textInput(el, "tel")
	case models.TypeDate:
		widget = textInput(el, "date")
	case models.TypeFile:
		widget = textInput(el, "file")
	case models.TypeDropdown:
		widget = selectBox(el, false)
	case models.TypeMultiSelectDropdown:
		widget = selectBox(el, true)
	case models.TypeCheckbox:
		widget = choiceGroup(el, "checkbox")
	case models.TypeRadio:
		widget = choiceGroup(el, "radio")
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInputType, el.InputType)
	}

	var b strings.Builder
	b.WriteString(`<div class="formlet-element" data-element-id="` + attr(el.ID) + `">`)
	b.WriteString(`<label for="` + attr(el.ID) + `">` + label(el.Title))
	if el.IsRequired {
		b.WriteString(`<span class="formlet-required" aria-hidden="true">*</span>`)
	}
	b.WriteString(`</label>`)
	b.WriteString(widget)
	b.WriteString(`</div>`)

	return b.String(), nil
}

func textInput(el models.FormElement, inputType string) string {
	var b strings.Builder
	b.WriteString(`<input type="` + inputType + `" id="` + attr(el.ID) + `" name="` + attr(el.ID) + `"`)
	if el.Placeholder != nil && *el.Placeholder != "" {
		b.WriteString(` placeholder="` + attr(*el.Placeholder) + `"`)
	}
	if el.IsRequired {
		b.WriteString(` required`)
	}
	b.WriteString(`>`)
	return b.String()
}

func textarea(el models.FormElement) string {
	var b strings.Builder
	b.WriteString(`<textarea id="` + attr(el.ID) + `" name="` + attr(el.ID) + `"`)
	if el.Placeholder != nil && *el.Placeholder != "" {
		b.WriteString(` placeholder="` + attr(*el.Placeholder) + `"`)
	}
	if el.IsRequired {
		b.WriteString(` required`)
	}
	b.WriteString(`></textarea>`)
	return b.String()
}

func selectBox(el models.FormElement, multiple bool) string {
	var b strings.Builder
	b.WriteString(`<select id="` + attr(el.ID) + `" name="` + attr(el.ID) + `"`)
	if multiple {
		b.WriteString(` multiple`)
	}
	if el.IsRequired {
		b.WriteString(` required`)
	}
	b.WriteString(`>`)
	for _, opt := range el.Options {
		b.WriteString(`<option value="` + attr(opt) + `">` + label(opt) + `</option>`)
	}
	b.WriteString(`</select>`)
	return b.String()
}

func choiceGroup(el models.FormElement, inputType string) string {
	var b strings.Builder
	b.WriteString(`<fieldset class="formlet-choices">`)
	for i, opt := range el.Options {
		id := fmt.Sprintf("%s-%d", el.ID, i)
		b.WriteString(`<div class="formlet-choice">`)
		b.WriteString(`<input type="` + inputType + `" id="` + attr(id) + `" name="` + attr(el.ID) + `" value="` + attr(opt) + `">`)
		b.WriteString(`<label for="` + attr(id) + `">` + label(opt) + `</label>`)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</fieldset>`)
	return b.String()
}
