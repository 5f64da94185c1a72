package service

import "errors"

// Error kinds surfaced to the HTTP layer
var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("request could not be processed")
	ErrInternal      = errors.New("internal error")
)
