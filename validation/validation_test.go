package validation

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/kbukum/credseal/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("email", "john@example.com")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("email", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("email", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"aes-256-cbc-salted", "aes-256-gcm"}

	v := New()
	v.OneOf("algorithm", "aes-256-gcm", allowed)
	if v.HasErrors() {
		t.Error("expected no error for allowed value")
	}

	v2 := New()
	v2.OneOf("algorithm", "", allowed)
	if v2.HasErrors() {
		t.Error("expected empty value to be skipped")
	}

	v3 := New()
	v3.OneOf("algorithm", "des", allowed)
	if !v3.HasErrors() {
		t.Error("expected error for disallowed value")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "password", "ok")
	if v.HasErrors() {
		t.Error("expected no error for true condition")
	}

	v.Custom(false, "password", "cannot be combined with --stdin")
	if !v.HasErrors() {
		t.Fatal("expected error for false condition")
	}
	if got := v.Errors()[0].Message; got != "cannot be combined with --stdin" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidatorValidate(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := New().Required("email", "").Required("phone", "").Validate()
	if err == nil {
		t.Fatal("expected error")
	}

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected %s, got %s", errors.ErrCodeInvalidInput, appErr.Code)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected two field errors, got %#v", appErr.Details["fields"])
	}
	if !strings.Contains(appErr.Message, "email: is required") || !strings.Contains(appErr.Message, "phone: is required") {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestStructValidateValid(t *testing.T) {
	type Login struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password"`
	}

	if err := Validate(Login{Email: "john@example.com"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	type Registration struct {
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"required,number"`
	}

	err := Validate(Registration{Email: "not-an-email", Phone: "+12"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	errStr := err.Error()
	for _, want := range []string{"full_name: is required", "email: must be a valid email address", "phone: must contain only digits"} {
		if !strings.Contains(errStr, want) {
			t.Errorf("expected error to contain %q, got %q", want, errStr)
		}
	}
}

func TestStructValidateOneOf(t *testing.T) {
	type Input struct {
		Mode string `json:"mode" validate:"oneof=a b"`
	}

	if err := Validate(Input{Mode: "a"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	err := Validate(Input{Mode: "c"})
	if err == nil || !strings.Contains(err.Error(), "mode: must be one of: a b") {
		t.Errorf("expected oneof error, got %v", err)
	}
}

func TestStructValidateNonStruct(t *testing.T) {
	if err := Validate("not a struct"); err == nil {
		t.Error("expected error for non-struct input")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"fullName":  "full_name",
		"SecretKey": "secret_key",
		"email":     "email",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
