package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a window length is not positive.
	ErrInvalidLength = errors.New("window: length must be positive")

	errMismatchedLength = errors.New("window: samples and coefficients must have the same length")
)

func validateKaiser(beta float64) error {
	if beta < 0 {
		return fmt.Errorf("window: kaiser beta must be >= 0, got %v", beta)
	}

	return nil
}

func validateTukey(alpha float64) error {
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("window: tukey alpha must be in [0, 1], got %v", alpha)
	}

	return nil
}
