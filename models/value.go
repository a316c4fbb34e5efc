package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// AnswerValue is the value a respondent submitted for one element:
// either a single string or an ordered list of strings. Multi-value
// types (MultiSelectDropdown, Checkbox) use the list shape, everything
// else the scalar shape.
type AnswerValue struct {
	Multi  bool     `json:"-"`
	Text   string   `json:"-"`
	Values []string `json:"-"`
}

// Scalar returns a single-string answer value.
func Scalar(s string) AnswerValue {
	return AnswerValue{Text: s}
}

// MultiValue returns a list-shaped answer value.
func MultiValue(values ...string) AnswerValue {
	return AnswerValue{Multi: true, Values: values}
}

// IsEmpty reports whether the value carries no usable answer.
func (v AnswerValue) IsEmpty() bool {
	if v.Multi {
		return len(v.Values) == 0
	}
	return strings.TrimSpace(v.Text) == ""
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.Multi {
		if v.Values == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.Values)
	}
	return json.Marshal(v.Text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	// json.Unmarshal treats null as a no-op for both target shapes
	if string(data) == "null" {
		return errors.New("value must be a string or an array of strings")
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = AnswerValue{Text: s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = AnswerValue{Multi: true, Values: list}
		return nil
	}

	return errors.New("value must be a string or an array of strings")
}
