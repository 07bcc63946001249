package psd

import "errors"

// Validation errors returned by [New] and the readers.
var (
	ErrEmpty          = errors.New("psd: fewer than two samples")
	ErrLengthMismatch = errors.New("psd: frequency and power lengths differ")
	ErrNotAscending   = errors.New("psd: frequencies not strictly ascending")
	ErrNonUniform     = errors.New("psd: frequency spacing not uniform")
	ErrInvalidValue   = errors.New("psd: invalid value")
	ErrSyntax         = errors.New("psd: malformed row")
)
