package validators

import "errors"

var (
	// ErrUnsupportedType is returned when the validated value is not a
	// struct or a pointer to one.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a field subset names a field the
	// validated struct does not have.
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrInvalidInput wraps every rule violation found in a request.
	ErrInvalidInput = errors.New("invalid input")
)
