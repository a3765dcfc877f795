package domain

import (
	"errors"
	"testing"
)

func TestValidationError_Unwrap(t *testing.T) {
	err := NewValidationError("email", "required")
	if !errors.Is(err, ErrValidation) {
		t.Error("expected ValidationError to unwrap to ErrValidation")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("ValidationError must not match other sentinels")
	}
}

func TestValidationError_Error(t *testing.T) {
	single := NewValidationError("email", "required")
	if got, want := single.Error(), "validation: email required"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	multi := NewValidationErrors([]FieldError{
		{Field: "email", Message: "required"},
		{Field: "password", Message: "required"},
	})
	if got, want := multi.Error(), "validation: 2 errors"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
