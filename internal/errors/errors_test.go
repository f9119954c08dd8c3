package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestSeerError_Error(t *testing.T) {
	err := NewInvalidRequest("pass only one of --text or --spec")
	if got := err.Error(); !strings.Contains(got, "INVALID_REQUEST") {
		t.Errorf("Error() = %q, want code prefix", got)
	}
	if err.Status != 2 {
		t.Errorf("Status = %d, want 2", err.Status)
	}
}

func TestNewValidationFailed_Details(t *testing.T) {
	err := NewValidationFailed("duplicate element id", "abc123")
	if err.Details["element_id"] != "abc123" {
		t.Errorf("Details = %v, want element_id abc123", err.Details)
	}
	if err.Code != ErrValidationFailed {
		t.Errorf("Code = %q", err.Code)
	}
}

func TestNewValidationFailed_NoElement(t *testing.T) {
	err := NewValidationFailed("elements missing", "")
	if err.Details != nil {
		t.Errorf("Details = %v, want nil", err.Details)
	}
}

func TestIs(t *testing.T) {
	err := NewCatalogUnreadable("/tmp/lib.excalidrawlib", stderrors.New("no such file"))
	if !Is(err, ErrCatalogUnreadable) {
		t.Error("Is should match ErrCatalogUnreadable")
	}
	if Is(err, ErrValidationFailed) {
		t.Error("Is should not match ErrValidationFailed")
	}
	if Is(stderrors.New("plain"), ErrInternal) {
		t.Error("Is should not match plain errors")
	}
}

func TestNewInternal_NilError(t *testing.T) {
	err := NewInternal(nil)
	if err.Message != "internal error" {
		t.Errorf("Message = %q", err.Message)
	}
}
