package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAnswerValueUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AnswerValue
		wantErr bool
	}{
		{"scalar string", `"hello"`, Scalar("hello"), false},
		{"empty string", `""`, Scalar(""), false},
		{"list of strings", `["Red","Blue"]`, MultiValue("Red", "Blue"), false},
		{"empty list", `[]`, MultiValue(), false},
		{"number rejected", `42`, AnswerValue{}, true},
		{"object rejected", `{"a":"b"}`, AnswerValue{}, true},
		{"mixed list rejected", `["a",1]`, AnswerValue{}, true},
		{"null rejected", `null`, AnswerValue{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got AnswerValue
			err := json.Unmarshal([]byte(tc.input), &got)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected error for input %s, got value %+v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnswerValueMarshal(t *testing.T) {
	tests := []struct {
		name  string
		value AnswerValue
		want  string
	}{
		{"scalar", Scalar("hello"), `"hello"`},
		{"zero value is empty string", AnswerValue{}, `""`},
		{"list", MultiValue("a", "b"), `["a","b"]`},
		{"empty list", AnswerValue{Multi: true}, `[]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.value)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestAnswerValueIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value AnswerValue
		want  bool
	}{
		{"blank scalar", Scalar(""), true},
		{"whitespace scalar", Scalar("   "), true},
		{"filled scalar", Scalar("x"), false},
		{"empty list", MultiValue(), true},
		{"filled list", MultiValue("a"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.IsEmpty(); got != tc.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tc.want)
			}
		})
	}
}
