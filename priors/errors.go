package priors

import "errors"

// Errors returned by the synthesizer.
var (
	ErrInvalidNumax       = errors.New("priors: numax must be finite and > 0")
	ErrEmptyRegion        = errors.New("priors: no PSD samples in region")
	ErrDegenerateBoundary = errors.New("priors: lower boundary not below upper boundary")
	ErrMissingRange       = errors.New("priors: no range derived for parameter")
	ErrInvalidScale       = errors.New("priors: characteristic frequency must be > 0")
)
