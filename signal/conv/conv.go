// Package conv provides discrete linear convolution and polynomial
// multiplication routines.
//
// Two strategies are available:
//
//   - Direct convolution: simple O(N*M) time-domain convolution, best for
//     short kernels such as polynomial coefficient sequences
//   - Overlap-add (OLA): FFT-based block convolution, efficient for long
//     signals with medium kernels
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)
//
// Convolve selects the algorithm automatically: direct convolution for
// kernels shorter than 64 samples, FFT-based overlap-add otherwise.
//
// Multiplying two polynomials is convolving their coefficient sequences;
// Complex covers the complex-coefficient case used when expanding a
// filter's zeros and poles into transfer-function form, switching from
// direct convolution to an FFT product for long operands.
package conv

import (
	"errors"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels.
// For longer kernels, use FFT-based methods like OverlapAdd.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated
// destination. dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	const blockThreshold = 4
	if len(b) >= blockThreshold {
		directToBlocked(dst, a, b)
		return
	}

	directToScalar(dst, a, b)
}

// directToScalar folds the kernel in sample by sample, cheapest for very
// short kernels.
func directToScalar(dst, a, b []float64) {
	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// directToBlocked vectorizes the inner loop: each input sample scales the
// kernel into a scratch block which is accumulated into the destination.
func directToBlocked(dst, a, b []float64) {
	temp := make([]float64, len(b))

	for i := range a {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(dst[i:i+len(b)], temp)
	}
}

// Convolve performs linear convolution with automatic algorithm selection.
// For short kernels (< 64 samples), uses direct convolution.
// For longer kernels, uses FFT-based overlap-add.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Ensure a is the longer signal for efficient processing
	if len(b) > len(a) {
		a, b = b, a
	}

	const directThreshold = 64
	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode performs convolution with the specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeFull:
		return full
	case ModeSame:
		// Center the result to match length of first input
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		// Return only fully overlapping portion
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
