// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render produces HTML form markup from a stored form definition.

Each element type maps to one widget:

	Text / Email / Phone / Date / File → <input type=...>
	Textarea                           → <textarea>
	Dropdown                           → <select>
	MultiSelectDropdown                → <select multiple>
	Checkbox                           → checkbox group
	Radio                              → radio group

Author-supplied text (titles, descriptions, option labels) is stripped
of markup with bluemonday's strict policy; attribute values are
HTML-escaped. The type switch is exhaustive over the models catalog and
returns ErrUnknownInputType for anything else.
*/
package render
