// Package cmplxpair classifies complex root sets into conjugate pairs and
// real roots. It is shared by the filter representation converters, which
// must know which roots pair up before building real-coefficient sections.
package cmplxpair

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

// ErrUnmatchedConjugate is returned when a root set contains a complex value
// without a matching conjugate within tolerance.
var ErrUnmatchedConjugate = errors.New("cmplxpair: complex value with no matching conjugate")

// DefaultTol is the default relative tolerance for deciding whether a root is
// real and whether two roots are conjugates (100 ULPs of float64).
const DefaultTol = 100 * 2.220446049250313e-16

// IsReal reports whether z lies on the real axis within the relative
// tolerance tol.
func IsReal(z complex128, tol float64) bool {
	return math.Abs(imag(z)) <= tol*cmplx.Abs(z)
}

// CplxReal splits roots into conjugate pairs and real roots.
//
// The returned pairs slice holds one representative per conjugate pair, with
// strictly positive imaginary part, averaged with its mirror to cancel
// rounding asymmetry. The reals slice holds the remaining roots with their
// imaginary parts forced to exactly zero. Both slices are sorted by real
// part, then by imaginary magnitude, so the classification is deterministic.
//
// If tol <= 0, DefaultTol is used.
func CplxReal(roots []complex128, tol float64) (pairs, reals []complex128, err error) {
	if len(roots) == 0 {
		return nil, nil, nil
	}

	if tol <= 0 {
		tol = DefaultTol
	}

	sorted := append([]complex128(nil), roots...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if real(sorted[i]) != real(sorted[j]) {
			return real(sorted[i]) < real(sorted[j])
		}

		return math.Abs(imag(sorted[i])) < math.Abs(imag(sorted[j]))
	})

	var pos, neg []complex128

	for _, r := range sorted {
		switch {
		case IsReal(r, tol):
			reals = append(reals, complex(real(r), 0))
		case imag(r) > 0:
			pos = append(pos, r)
		default:
			neg = append(neg, r)
		}
	}

	if len(pos) != len(neg) {
		return nil, nil, ErrUnmatchedConjugate
	}

	used := make([]bool, len(neg))

	for _, zp := range pos {
		want := cmplx.Conj(zp)
		best := -1
		bestDist := math.MaxFloat64

		for j, zn := range neg {
			if used[j] {
				continue
			}

			if d := cmplx.Abs(zn - want); d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || bestDist > tol*math.Max(1, cmplx.Abs(zp)) {
			return nil, nil, ErrUnmatchedConjugate
		}

		used[best] = true

		pairs = append(pairs, (zp+cmplx.Conj(neg[best]))/2)
	}

	return pairs, reals, nil
}
