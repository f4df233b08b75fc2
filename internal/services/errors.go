package services

import "errors"

// Sentinel errors the handlers map to HTTP statuses.
var (
	// ErrInvalidCaptcha means the third-party check rejected the token.
	ErrInvalidCaptcha = errors.New("invalid captcha")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a 401 never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidStatus means the requested status is outside the workflow set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrMessageNotFound means the status update matched no row.
	ErrMessageNotFound = errors.New("message not found")
)
