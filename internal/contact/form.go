// Package contact sequences the contact form and hands the message to a Mailer.
package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator adds singleline, which rejects CR and LF so a field can be used in a mail header.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool { //nolint:errcheck
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	})
	return v
}

// Form is what the visitor typed into the contact form.
type Form struct {
	Name    string `form:"name" json:"name" validate:"required,singleline"`
	Email   string `form:"email" json:"email" validate:"required,email,singleline"`
	Message string `form:"message" json:"message" validate:"required"`
}

// ValidationError names the first field that failed and the rule it broke.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s failed %s", e.Field, e.Tag)
}

// Normalize trims surrounding whitespace so blank input counts as empty.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks the required fields, the email format and that name and email fit on one line.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: strings.ToLower(verrs[0].Field()), Tag: verrs[0].Tag()}
	}
	return fmt.Errorf("failed to validate contact form: %w", err)
}

// Subject is the outgoing mail subject.
func (f Form) Subject() string {
	return fmt.Sprintf("Portfolio Contact from %s", f.Name)
}

// Body is the outgoing mail body.
func (f Form) Body() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", f.Name, f.Email, f.Message)
}
