// Package service contains the business logic for the todo service.
package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP statuses; anything else is treated as an internal error.
var (
	// ErrInvalidCredentials covers bad logins, bad tokens and wrong old
	// passwords alike, so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("could not validate credentials")

	ErrUsernameTaken     = errors.New("username already taken")
	ErrEmailTaken        = errors.New("email already registered")
	ErrPasswordBreached  = errors.New("password found in a breach")
	ErrBreachUnavailable = errors.New("unable to check password safety right now")
	ErrTodoNotFound      = errors.New("todo not found")
)
