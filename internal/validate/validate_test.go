package validate

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string  `json:"name" validate:"required"`
	Count int     `json:"count" validate:"gt=0"`
	Items []child `json:"items" validate:"dive"`
}

type child struct {
	ID string `json:"id" validate:"required"`
}

func TestStructValid(t *testing.T) {
	v := New()
	if err := v.Struct(sample{Name: "a", Count: 1, Items: []child{{ID: "x"}}}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Struct(sample{Items: []child{{}}})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var fieldErrs Errors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected Errors, got %T", err)
	}

	got := make(map[string]string)
	for _, fe := range fieldErrs {
		got[fe.Field] = fe.Reason
	}
	for _, field := range []string{"name", "count", "items[0].id"} {
		if _, ok := got[field]; !ok {
			t.Errorf("expected error for %q, got %v", field, got)
		}
	}
	if !strings.Contains(got["name"], "required") {
		t.Errorf("expected translated required message, got %q", got["name"])
	}
}
