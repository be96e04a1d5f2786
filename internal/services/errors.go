package services

import "errors"

var (
	// ErrDuplicateEmail means the email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDuplicateUsername means the requested username is taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredential means the password did not match.
	ErrInvalidCredential = errors.New("invalid password")

	// ErrInvalidToken means a bearer token failed verification, or
	// the account it referenced no longer exists. Callers treat both
	// as "not authenticated".
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnsupportedLanguage means a language tag outside the
	// supported set (and not the placeholder) was submitted.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
