package engine

import "errors"

// Validation errors returned by Calculate. All are user-correctable: the
// error text is exactly the message shown to the user, so presentation
// layers render err.Error() directly.
//
//nolint:staticcheck // Error strings are fixed user-facing product copy.
var (
	// ErrMissingField indicates an unselected gas type or an empty count.
	ErrMissingField = errors.New("Please fill in all fields")

	// ErrUnknownGasType indicates a selection with no catalog record.
	ErrUnknownGasType = errors.New("Invalid gas type selected")

	// ErrInvalidNumber indicates a count that does not parse as an integer.
	ErrInvalidNumber = errors.New("Please enter valid numbers")

	// ErrOutOfRange indicates a negative count or an instrument count
	// below one.
	ErrOutOfRange = errors.New("Counts must not be negative and at least one instrument is required")
)

// IsValidation reports whether err is one of the user-correctable
// validation errors, as opposed to an unexpected failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrUnknownGasType) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrOutOfRange)
}
