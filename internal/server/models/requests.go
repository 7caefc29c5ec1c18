package models

import (
	"fmt"
	"regexp"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
)

// emailPattern accepts a plain local@domain shape with no whitespace on
// either side of the separator. Deliberately loose; real validation happens
// when mail is actually sent.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate checks that every field is present and that the two password
// fields match. Passwords are compared as supplied, before any hashing.
func (r *SignupRequest) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"username", r.Username},
		{"email", r.Email},
		{"password", r.Password},
		{"confirmPassword", r.ConfirmPassword},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, f.name)
		}
	}

	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", common.ErrorValidation)
	}

	return nil
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both fields are present.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return nil
}

// UpdateProfileRequest is the body of PUT /updateProfile.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// Validate checks that every field is present and the email matches the
// simple local@domain shape.
func (r *UpdateProfileRequest) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"username", r.Username},
		{"email", r.Email},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, f.name)
		}
	}

	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}

	return nil
}
