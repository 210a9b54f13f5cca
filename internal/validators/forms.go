// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

// Package validators defines the declarative form schemas enforced before
// any auth request leaves the client. A form that fails validation is never
// submitted; errors are reported per field so the UI can attach them to the
// offending input.
package validators

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Field names used as keys in [FieldErrors].
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// LoginForm is the login input schema: both fields are required, nothing
// more — length rules apply only at signup.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// SignupForm is the registration input schema. The confirmation field must
// equal the password exactly; a mismatch is reported against the
// confirmation field, not the password.
type SignupForm struct {
	Username        string `validate:"required,min=6,max=75"`
	Password        string `validate:"required,min=6,max=100"`
	ConfirmPassword string `validate:"required,min=6,max=100,eqfield=Password"`
}

// FieldErrors maps a field name to its first violation message. An empty map
// means the form passed.
type FieldErrors map[string]string

// Has reports whether field carries an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

var validate = validator.New()

// ValidateLogin checks form against the login schema and returns field-level
// messages for every violation.
func ValidateLogin(form LoginForm) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return FieldErrors{}
	}

	fe := FieldErrors{}
	for _, v := range validationErrors(err) {
		switch v.StructField() {
		case "Username":
			fe[FieldUsername] = "Please provide a username"
		case "Password":
			fe[FieldPassword] = "Please provide a password"
		}
	}
	return fe
}

// ValidateSignup checks form against the signup schema and returns
// field-level messages for every violation.
func ValidateSignup(form SignupForm) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return FieldErrors{}
	}

	fe := FieldErrors{}
	for _, v := range validationErrors(err) {
		field := signupField(v.StructField())
		if field == "" || fe.Has(field) {
			continue
		}
		fe[field] = signupMessage(field, v)
	}
	return fe
}

func signupField(structField string) string {
	switch structField {
	case "Username":
		return FieldUsername
	case "Password":
		return FieldPassword
	case "ConfirmPassword":
		return FieldConfirmPassword
	}
	return ""
}

func signupMessage(field string, v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		if field == FieldConfirmPassword {
			return "Please provide an input"
		}
		if field == FieldPassword {
			return "Please provide a password"
		}
		return "Please provide a username"
	case "min":
		return "Must contain at least " + v.Param() + " character(s)"
	case "max":
		return "Must contain at most " + v.Param() + " character(s)"
	case "eqfield":
		return "Passwords do not match"
	}
	return "Invalid value"
}

func validationErrors(err error) validator.ValidationErrors {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
