package filter

import (
	"errors"
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/SpookyYomo/sci-go/signal/filter/design"
)

// ErrEmptyResponse is returned when a frequency response is requested on an
// empty grid or for a filter with no coefficients.
var ErrEmptyResponse = errors.New("filter: empty frequency response request")

// FreqzBA evaluates the frequency response of a transfer function at n
// angular frequencies spaced evenly over [0, pi). Returned frequencies are
// in radians per sample.
func FreqzBA(ba design.BA, n int) (w []float64, h []complex128, err error) {
	if n <= 0 || len(ba.B) == 0 || len(ba.A) == 0 {
		return nil, nil, ErrEmptyResponse
	}

	w = frequencyGrid(n)
	h = make([]complex128, n)

	for i, wi := range w {
		z := cmplx.Exp(complex(0, wi))
		h[i] = polyEvalDescending(ba.B, z) / polyEvalDescending(ba.A, z)
	}

	return w, h, nil
}

// FreqzSos evaluates the frequency response of a second-order-section
// cascade at n angular frequencies spaced evenly over [0, pi).
func FreqzSos(sos design.Sos, n int) (w []float64, h []complex128, err error) {
	if n <= 0 {
		return nil, nil, ErrEmptyResponse
	}

	if len(sos.Sections) == 0 {
		return nil, nil, ErrNoSections
	}

	w = frequencyGrid(n)
	h = make([]complex128, n)

	for i, wi := range w {
		z := cmplx.Exp(complex(0, wi))

		resp := complex(1, 0)
		for _, s := range sos.Sections {
			resp *= polyEvalDescending(s.B[:], z) / polyEvalDescending(s.A[:], z)
		}

		h[i] = resp
	}

	return w, h, nil
}

// Magnitude returns |h| for each response sample.
func Magnitude(h []complex128) []float64 {
	re := make([]float64, len(h))
	im := make([]float64, len(h))

	for i, v := range h {
		re[i] = real(v)
		im[i] = imag(v)
	}

	out := make([]float64, len(h))
	vecmath.Magnitude(out, re, im)

	return out
}

// frequencyGrid returns n frequencies evenly spaced over [0, pi), endpoint
// excluded.
func frequencyGrid(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		return w
	}

	floats.Span(w, 0, math.Pi*float64(n-1)/float64(n))

	return w
}

// polyEvalDescending evaluates a polynomial with descending-power real
// coefficients at z^-1, matching the z-transform convention where
// coefficient index k multiplies z^-k.
func polyEvalDescending(coeffs []float64, z complex128) complex128 {
	zinv := 1 / z

	acc := complex(0, 0)
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*zinv + complex(coeffs[i], 0)
	}

	return acc
}
