package services_test

import (
	"errors"
	"strings"
	"testing"

	"reelscore/internal/runstore"
	"reelscore/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrData, "cleaning", "parse", "bad year", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrData) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"cleaning", "parse", "bad year"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestFailureStatusMapping(t *testing.T) {
	validationErr := services.Wrap(services.ErrValidation, "features", "prepare", "empty matrix", nil)
	if status := services.FailureStatus(validationErr); status != runstore.StatusReview {
		t.Fatalf("expected review for validation error, got %s", status)
	}

	dataErr := services.Wrap(services.ErrData, "modeling", "fit", "singular matrix", errors.New("mat"))
	if status := services.FailureStatus(dataErr); status != runstore.StatusFailed {
		t.Fatalf("expected failed for data error, got %s", status)
	}

	if status := services.FailureStatus(nil); status != runstore.StatusFailed {
		t.Fatalf("expected failed for nil error, got %s", status)
	}
}
