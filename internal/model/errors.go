package model

import "errors"

// Common errors used across the application
var (
	// Action errors
	ErrUnknownAction = errors.New("unknown action")

	// Session errors
	ErrAlreadyAuthenticated = errors.New("already authenticated")

	// Input errors
	ErrInputClosed = errors.New("input closed before login")
)
