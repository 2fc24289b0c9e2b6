package service

import (
	"errors"
	"strings"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this phone number already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrWrongPassword      = errors.New("password is incorrect")
	ErrPhoneInUse         = errors.New("phone number already in use")

	ErrCategoryNotFound = errors.New("category not found")
	ErrMenuNotFound     = errors.New("menu not found")
	ErrEmployeeNotFound = errors.New("employee not found")

	ErrCommentNotAnonymous = errors.New("name and phone are required if not anonymous")
)

// ValidationError carries field-level constraint messages; the handler
// boundary turns it into a 422 envelope.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// AsValidation unwraps a ValidationError from an error chain
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
