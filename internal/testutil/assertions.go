package testutil

import (
	"errors"
	"testing"

	apperrors "finpredictor/internal/errors"
)

// AssertAppError fails unless err carries the envelope code want, and
// returns the matched error for further checks.
func AssertAppError(t *testing.T, err error, want string) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	switch {
	case err == nil:
		t.Fatalf("want %s, got nil", want)
	case !errors.As(err, &appErr):
		t.Fatalf("want %s, got %T: %v", want, err, err)
	case appErr.Code != want:
		t.Errorf("want %s, got %s (%s)", want, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertNoError stops the test on a non-nil err.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
