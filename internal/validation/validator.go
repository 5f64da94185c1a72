package validation

import "github.com/go-playground/validator/v10"

// RequestValidator adapts go-playground/validator to echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request structs
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate validates a struct using its `validate` tags
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
