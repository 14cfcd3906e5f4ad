package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrMaxStay      = errors.New("maximum stay exceeded")
	ErrCityNotFound = errors.New("city not found")
)
