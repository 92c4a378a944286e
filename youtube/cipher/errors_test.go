package cipher

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without details",
			err:      NewError(ErrCodeFunctionNotFound, "no candidate"),
			expected: "FUNCTION_NOT_FOUND: no candidate",
		},
		{
			name:     "with details",
			err:      NewError(ErrCodeBodyUnparsable, "bad body", "truncated"),
			expected: "FUNCTION_BODY_UNPARSABLE: bad body (truncated)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMarshalJSON(t *testing.T) {
	e := NewError(ErrCodeCipherDataInvalid, "bad blob")
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"code":"CIPHER_DATA_INVALID"`) {
		t.Errorf("missing code in %s", s)
	}
	if !strings.Contains(s, `"error":"CIPHER_DATA_INVALID: bad blob"`) {
		t.Errorf("missing error string in %s", s)
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"function not found", NewError(ErrCodeFunctionNotFound, "x"), IsNotFound},
		{"object not found", NewError(ErrCodeTransformObjNotFound, "x"), IsNotFound},
		{"unparsable", NewError(ErrCodeBodyUnparsable, "x"), IsUnparsable},
		{"cipher data", NewError(ErrCodeCipherDataInvalid, "x"), IsCipherDataInvalid},
		{"session", NewError(ErrCodeSessionNotInitialized, "x"), IsSessionNotInitialized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Errorf("helper returned false for %v", tt.err)
			}
		})
	}
}

func TestErrorHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("build transform plan: %w", NewError(ErrCodeBodyUnparsable, "empty"))
	if !IsUnparsable(wrapped) {
		t.Errorf("IsUnparsable() false for wrapped error %v", wrapped)
	}
	if IsNotFound(wrapped) {
		t.Errorf("IsNotFound() true for wrapped unparsable error")
	}
}

func TestErrorHelpersRejectForeignErrors(t *testing.T) {
	plain := fmt.Errorf("some other failure")
	if IsNotFound(plain) || IsUnparsable(plain) || IsCipherDataInvalid(plain) || IsSessionNotInitialized(plain) {
		t.Error("helpers matched a non-cipher error")
	}
}
