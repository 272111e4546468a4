package api

import "errors"

var (
	ErrInvalidQuery   = errors.New("invalid query parameter")
	ErrLimitExceeded  = errors.New("request exceeds configured limit")
	ErrInvalidPayload = errors.New("invalid request payload")

	errNotFound         = errors.New("not found")
	errMethodNotAllowed = errors.New("method not allowed")
	errInternal         = errors.New("internal server error")
)
