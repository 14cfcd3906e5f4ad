package request

import "errors"

var (
	ErrNotFound   = errors.New("request not found")
	ErrValidation = errors.New("validation error")
)
