package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad email")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Message != "bad email" {
		t.Errorf("expected message 'bad email', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("INVALID_INPUT should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeEncryption, "salt source exhausted")
	if !err.Retryable {
		t.Error("ENCRYPTION_FAILED should be retryable")
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.Retryable {
		t.Error("Internal should NOT be retryable")
	}
}

func TestAppError_Misconfigured_Success(t *testing.T) {
	cause := fmt.Errorf("secret key is required")
	err := Misconfigured("encryption.secret_key", cause)
	if err.Code != ErrCodeMisconfigured {
		t.Errorf("expected MISCONFIGURED, got %s", err.Code)
	}
	if err.Details["key"] != "encryption.secret_key" {
		t.Errorf("expected key detail, got %v", err.Details["key"])
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAppError_EncryptionFailed_Success(t *testing.T) {
	err := EncryptionFailed("encrypt", fmt.Errorf("rand: short read"))
	if err.Code != ErrCodeEncryption {
		t.Errorf("expected ENCRYPTION_FAILED, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "encrypt") {
		t.Errorf("expected operation in message, got %q", err.Message)
	}
	if !err.Retryable {
		t.Error("EncryptionFailed should be retryable")
	}
	if EncryptionFailed("decrypt", fmt.Errorf("bad tag")).Retryable {
		t.Error("decrypt failures should not be retryable")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"InvalidInput", InvalidInput("email", "not an address"), ErrCodeInvalidInput},
		{"Validation", Validation("email: is required"), ErrCodeInvalidInput},
		{"MissingField", MissingField("phone"), ErrCodeMissingField},
		{"InvalidFormat", InvalidFormat("phone", "digits"), ErrCodeInvalidFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.Retryable {
				t.Error("validation errors should not be retryable")
			}
		})
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "reason")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key when field is empty")
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Validation("x").WithDetail("a", 1).WithDetail("b", 2)
	if err.Details["a"] != 1 || err.Details["b"] != 2 {
		t.Errorf("expected both details, got %v", err.Details)
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := Validation("email: is required")
	if got := err.Error(); got != "INVALID_INPUT: email: is required" {
		t.Errorf("unexpected format %q", got)
	}

	wrapped := Internal(fmt.Errorf("boom"))
	if !strings.Contains(wrapped.Error(), "(cause: boom)") {
		t.Errorf("expected cause in message, got %q", wrapped.Error())
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Validation("bad")
	wrapped := fmt.Errorf("seal login: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok || got != appErr {
		t.Error("expected to find AppError in chain")
	}

	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected no AppError for plain error")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("expected nil for nil error")
	}

	appErr := MissingField("email")
	if Wrap(fmt.Errorf("ctx: %w", appErr)) != appErr {
		t.Error("expected AppError passthrough")
	}

	plain := fmt.Errorf("plain")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal || got.Cause != plain {
		t.Errorf("expected internal error wrapping cause, got %+v", got)
	}
}

func TestAppError_ToResponse(t *testing.T) {
	err := EncryptionFailed("decrypt", fmt.Errorf("secret detail"))
	data, jsonErr := json.Marshal(err.ToResponse())
	if jsonErr != nil {
		t.Fatalf("marshal failed: %v", jsonErr)
	}
	body := string(data)
	if !strings.Contains(body, `"code":"ENCRYPTION_FAILED"`) {
		t.Errorf("expected code in body, got %s", body)
	}
	if strings.Contains(body, "secret detail") {
		t.Errorf("cause must not leak into response, got %s", body)
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var _ error = &AppError{}
}

func TestAppError_ErrorType(t *testing.T) {
	if got := MissingField("email").ErrorType(); got != "MISSING_FIELD" {
		t.Errorf("expected MISSING_FIELD, got %q", got)
	}
}
