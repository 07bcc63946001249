package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWindow is returned by [Parse] for names outside [Types].
	ErrUnknownWindow = errors.New("window: unknown window")

	errZeroSum = errors.New("window: coefficients sum to zero")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}
	return nil
}

func unknownWindowError(name string) error {
	return fmt.Errorf("%w %q (want flat, hanning, hamming, bartlett or blackman)", ErrUnknownWindow, name)
}
