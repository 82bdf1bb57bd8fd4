package service

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNotFound         = errors.New("not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrSignatureInvalid = errors.New("signature verification failed")
)
