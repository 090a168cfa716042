package design

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// ButterAp returns the zero-pole-gain form of an analog lowpass Butterworth
// prototype of the given order, with angular cutoff frequency normalized
// to 1 rad/s. The prototype has no zeros, unit gain, and poles spaced
// uniformly on the left half of the unit circle.
func ButterAp(order int) (Zpk, error) {
	if order < 0 {
		return Zpk{}, &InvalidArgError{Arg: "order", Reason: "must be non-negative"}
	}

	p := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / (2 * float64(order))
		p = append(p, -cmplx.Exp(complex(0, theta)))
	}

	return Zpk{P: p, K: 1}, nil
}

// Cheby1Ap returns an analog lowpass Chebyshev type I prototype with rp
// decibels of ripple in the passband. The angular cutoff frequency is
// normalized to 1 rad/s, defined as the point at which the gain first drops
// below -rp.
//
// Order 0 degenerates to a pure gain of 10^(-rp/20) with empty zero and
// pole sets.
func Cheby1Ap(order int, rp float64) (Zpk, error) {
	if order < 0 {
		return Zpk{}, &InvalidArgError{Arg: "order", Reason: "must be non-negative"}
	}

	if rp < 0 {
		return Zpk{}, &InvalidArgError{Arg: "rp", Reason: "passband ripple must be non-negative"}
	}

	if order == 0 {
		return Zpk{K: math.Pow(10, -rp/20)}, nil
	}

	if rp == 0 {
		return Zpk{}, &InvalidArgError{Arg: "rp", Reason: "passband ripple must be positive for order >= 1"}
	}

	// Ripple factor
	eps := math.Sqrt(math.Pow(10, rp/10) - 1)
	mu := math.Asinh(1/eps) / float64(order)

	p := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / (2 * float64(order))
		p = append(p, -cmplx.Sinh(complex(mu, theta)))
	}

	k := real(prodNeg(p))
	if order%2 == 0 {
		k /= math.Sqrt(1 + eps*eps)
	}

	return Zpk{P: p, K: k}, nil
}

// Cheby2Ap returns an analog lowpass Chebyshev type II prototype with at
// least rs decibels of attenuation in the stopband. The angular cutoff
// frequency is normalized to 1 rad/s, defined as the point at which the
// attenuation first reaches rs.
//
// Order 0 degenerates to unit gain with empty zero and pole sets.
func Cheby2Ap(order int, rs float64) (Zpk, error) {
	if order < 0 {
		return Zpk{}, &InvalidArgError{Arg: "order", Reason: "must be non-negative"}
	}

	if rs < 0 {
		return Zpk{}, &InvalidArgError{Arg: "rs", Reason: "stopband attenuation must be non-negative"}
	}

	if order == 0 {
		return Zpk{K: 1}, nil
	}

	if rs == 0 {
		return Zpk{}, &InvalidArgError{Arg: "rs", Reason: "stopband attenuation must be positive for order >= 1"}
	}

	// Ripple factor
	de := 1 / math.Sqrt(math.Pow(10, rs/10)-1)
	mu := math.Asinh(1/de) / float64(order)

	// Zeros on the imaginary axis; the index sequence skips m=0 for odd
	// orders so the zero count stays one below the pole count.
	var ms []int
	if order%2 == 1 {
		for m := -order + 1; m < 0; m += 2 {
			ms = append(ms, m)
		}
		for m := 2; m < order; m += 2 {
			ms = append(ms, m)
		}
	} else {
		for m := -order + 1; m < order; m += 2 {
			ms = append(ms, m)
		}
	}

	z := make([]complex128, 0, len(ms))
	for _, m := range ms {
		s := math.Sin(float64(m) * math.Pi / (2 * float64(order)))
		z = append(z, complex(0, 1/s))
	}

	// Poles start on the Butterworth circle and are warped inward.
	p := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / (2 * float64(order))
		q := -cmplx.Exp(complex(0, theta))
		w := complex(math.Sinh(mu)*real(q), math.Cosh(mu)*imag(q))
		p = append(p, 1/w)
	}

	k := real(prodNeg(p) / prodNeg(z))

	return Zpk{Z: z, P: p, K: k}, nil
}

// EllipAp would return an analog lowpass elliptic (Cauer) prototype with rp
// decibels of passband ripple and rs decibels of stopband attenuation. The
// generator is not implemented.
func EllipAp(order int, rp, rs float64) (Zpk, error) {
	return Zpk{}, fmt.Errorf("elliptic prototype: %w", ErrNotImplemented)
}

// BesselAp would return an analog lowpass Bessel-Thomson prototype. The
// generator is not implemented.
func BesselAp(order int) (Zpk, error) {
	return Zpk{}, fmt.Errorf("bessel prototype: %w", ErrNotImplemented)
}

// prodNeg computes Π(-r) over the given roots; the empty product is 1.
func prodNeg(roots []complex128) complex128 {
	if len(roots) == 0 {
		return 1
	}

	neg := append([]complex128(nil), roots...)
	cmplxs.Scale(-1, neg)

	return cmplxs.Prod(neg)
}
