package background

import "errors"

// Errors returned by the evaluator and the parameter codec.
var (
	ErrUnknownVariant   = errors.New("background: unknown model variant")
	ErrParamCount       = errors.New("background: parameter count does not match variant")
	ErrInvalidFrequency = errors.New("background: frequencies must be finite and > 0")
	ErrNonPositiveScale = errors.New("background: characteristic frequency or envelope width must be > 0")
)
