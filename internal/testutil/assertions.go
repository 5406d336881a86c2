package testutil

import (
	"errors"
	"math"
	"testing"

	apperrors "zeroledger/internal/errors"
)

// moneyEpsilon is the tolerance used when comparing monetary amounts.
const moneyEpsilon = 0.005

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertMoney compares two monetary amounts within a half-cent tolerance.
func AssertMoney(t *testing.T, got, want float64) {
	t.Helper()

	if math.Abs(got-want) > moneyEpsilon {
		t.Errorf("expected amount %.2f, got %.2f", want, got)
	}
}
