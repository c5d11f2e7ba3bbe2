// Package validation checks configuration sections, credential payloads and
// command-line input before anything is encrypted.
//
// Struct tag validation (go-playground/validator) is used for typed inputs;
// the programmatic Validator collects errors for ad-hoc checks such as
// mutually exclusive flags. Both report an *errors.AppError with code
// INVALID_INPUT and per-field details.
//
//	type loginInput struct {
//	    Email string `json:"email" validate:"required,email"`
//	}
//	err := validation.Validate(in)
//
//	err = validation.New().
//	    OneOf("algorithm", flagValue, algorithms).
//	    Custom(fromStdin || len(args) == 1, "plaintext", "is required").
//	    Validate()
package validation
