package models

// Input type constants. This is a closed set: validation rejects anything
// outside it and the renderer switches over it exhaustively.
const (
	TypeText                = "Text"
	TypeTextarea            = "Textarea"
	TypeEmail               = "Email"
	TypePhone               = "Phone"
	TypeDropdown            = "Dropdown"
	TypeMultiSelectDropdown = "MultiSelectDropdown"
	TypeCheckbox            = "Checkbox"
	TypeRadio               = "Radio"
	TypeFile                = "File"
	TypeDate                = "Date"
)

var inputTypes = []string{
	TypeText,
	TypeTextarea,
	TypeEmail,
	TypePhone,
	TypeDropdown,
	TypeMultiSelectDropdown,
	TypeCheckbox,
	TypeRadio,
	TypeFile,
	TypeDate,
}

// ValidInputType reports whether t is a recognized element input type.
func ValidInputType(t string) bool {
	for _, known := range inputTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsChoiceBased reports whether elements of type t answer from a fixed
// options list. Choice-based elements must carry at least one option.
func IsChoiceBased(t string) bool {
	switch t {
	case TypeDropdown, TypeMultiSelectDropdown, TypeCheckbox, TypeRadio:
		return true
	}
	return false
}

// IsMultiValue reports whether elements of type t collect a list of
// values rather than a single string.
func IsMultiValue(t string) bool {
	return t == TypeMultiSelectDropdown || t == TypeCheckbox
}

// InputTypes returns the catalog in declaration order.
func InputTypes() []string {
	out := make([]string, len(inputTypes))
	copy(out, inputTypes)
	return out
}
