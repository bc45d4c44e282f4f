// Package error defines domain-specific errors for the DumpMyCash application.
package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestAuthErrorWrapsSentinel(t *testing.T) {
	err := NewAuthError(ErrCodeInvalidCredentials, "invalid email or password", ErrInvalidCredentials)

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Error("expected errors.Is to match the wrapped sentinel")
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatal("expected errors.As to match *AuthError")
	}
	if authErr.Code != ErrCodeInvalidCredentials {
		t.Errorf("code = %s, want %s", authErr.Code, ErrCodeInvalidCredentials)
	}
}

func TestAuthErrorMessageIncludesWrapped(t *testing.T) {
	err := NewAuthError(ErrCodeWeakPassword, "password does not meet minimum requirements", ErrWeakPassword)

	want := "password does not meet minimum requirements: password does not meet minimum requirements"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := NewAuthError(ErrCodeWeakPassword, "too short", nil)
	if bare.Error() != "too short" {
		t.Errorf("Error() without wrapped error = %q, want %q", bare.Error(), "too short")
	}
}

func TestErrorTypesSurviveWrapping(t *testing.T) {
	t.Run("account error through fmt.Errorf", func(t *testing.T) {
		inner := NewAccountError(ErrCodeAccountHasActivity, "account has activity", ErrAccountHasActivity)
		wrapped := fmt.Errorf("deleting account: %w", inner)

		var accountErr *AccountError
		if !errors.As(wrapped, &accountErr) {
			t.Fatal("expected errors.As to find *AccountError through fmt.Errorf")
		}
		if accountErr.Code != ErrCodeAccountHasActivity {
			t.Errorf("code = %s, want %s", accountErr.Code, ErrCodeAccountHasActivity)
		}
	})

	t.Run("transfer error through fmt.Errorf", func(t *testing.T) {
		inner := NewTransferError(ErrCodeInsufficientBalance, "insufficient balance", ErrInsufficientBalance)
		wrapped := fmt.Errorf("creating transfer: %w", inner)

		if !errors.Is(wrapped, ErrInsufficientBalance) {
			t.Error("expected errors.Is to match the wrapped sentinel")
		}
	})
}

func TestErrorCodesAreNamespaced(t *testing.T) {
	// Codes are stable API surface; a collision between domains would make
	// client-side handling ambiguous.
	codes := map[string]bool{}
	all := []string{
		string(ErrCodeInvalidEmail),
		string(ErrCodeEmailAlreadyExists),
		string(ErrCodeInvalidCredentials),
		string(ErrCodeInvalidToken),
		string(ErrCodeRateLimited),
		string(ErrCodeAccountNotFound),
		string(ErrCodeAccountHasActivity),
		string(ErrCodeCategoryNotFound),
		string(ErrCodeCategoryAlreadyExists),
		string(ErrCodeCategoryInUse),
		string(ErrCodeTransactionNotFound),
		string(ErrCodeInvalidTransactionAmount),
		string(ErrCodeTransferNotFound),
		string(ErrCodeInsufficientBalance),
		string(ErrCodeInvalidReportPeriod),
	}

	for _, code := range all {
		if codes[code] {
			t.Errorf("duplicate error code %s", code)
		}
		codes[code] = true
	}
}
