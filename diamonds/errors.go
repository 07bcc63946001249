package diamonds

import "errors"

var (
	// ErrSyntax is returned when a table row cannot be parsed.
	ErrSyntax = errors.New("diamonds: malformed row")

	// ErrNoData is returned for files without any data row.
	ErrNoData = errors.New("diamonds: no data")

	// ErrInvalidBundle is returned by [Bundle.Render] for values that the
	// sampler cannot consume.
	ErrInvalidBundle = errors.New("diamonds: invalid configuration")

	// ErrInvalidRun is returned for negative run numbers.
	ErrInvalidRun = errors.New("diamonds: run number must be >= 0")
)
