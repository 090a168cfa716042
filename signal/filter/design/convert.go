package design

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/SpookyYomo/sci-go/internal/cmplxpair"
	"github.com/SpookyYomo/sci-go/signal/conv"
)

// ZpkToBa expands a zero-pole-gain filter into numerator and denominator
// polynomial coefficients in descending power order. Complex roots must
// occur in conjugate pairs for the coefficients to be real; residual
// imaginary parts from rounding are discarded.
func ZpkToBa(f Zpk) (BA, error) {
	bc, err := polyFromRoots(f.Z)
	if err != nil {
		return BA{}, err
	}

	ac, err := polyFromRoots(f.P)
	if err != nil {
		return BA{}, err
	}

	b := realParts(bc)
	floats.Scale(f.K, b)

	return BA{B: b, A: realParts(ac)}, nil
}

// ZpkToSos converts a zero-pole-gain filter into a cascade of second-order
// sections.
//
// Digital conversions pad the root sets with zeros at the origin until they
// are even and equal in length, then pair poles and zeros so that the poles
// closest to the unit circle end up in the last section, each matched with
// its nearest zeros. Keeping the least-damped poles last and pairing them
// with nearby zeros minimizes the peak round-off noise of the cascade.
//
// Analog conversions build a minimal cascade instead: no padding, so odd
// designs carry one first-order section, and pole badness is distance to the
// imaginary axis. Analog conversion requires at least as many poles as
// zeros.
func ZpkToSos(f Zpk, analog bool) (Sos, error) {
	if len(f.Z) == 0 && len(f.P) == 0 {
		if analog {
			return Sos{Sections: []Section{{B: [3]float64{0, 0, f.K}, A: [3]float64{0, 0, 1}}}}, nil
		}

		return Sos{Sections: []Section{{B: [3]float64{f.K, 0, 0}, A: [3]float64{1, 0, 0}}}}, nil
	}

	zs := append([]complex128(nil), f.Z...)
	ps := append([]complex128(nil), f.P...)

	var nSections int
	if analog {
		if len(ps) < len(zs) {
			return Sos{}, &InvalidArgError{Arg: "zpk", Reason: "analog cascade requires at least as many poles as zeros"}
		}
		nSections = (len(ps) + 1) / 2
	} else {
		for len(zs) < len(ps) {
			zs = append(zs, 0)
		}
		for len(ps) < len(zs) {
			ps = append(ps, 0)
		}
		if len(ps)%2 == 1 {
			zs = append(zs, 0)
			ps = append(ps, 0)
		}
		nSections = len(ps) / 2
	}

	z, err := conjugateOrder(zs, "zeros")
	if err != nil {
		return Sos{}, err
	}

	p, err := conjugateOrder(ps, "poles")
	if err != nil {
		return Sos{}, err
	}

	sections := make([]Section, nSections)

	// Sections are filled back to front so the worst poles land last.
	for si := nSections - 1; si >= 0; si-- {
		p1Idx := idxWorst(p, analog)
		p1 := p[p1Idx]
		p = deleteAt(p, p1Idx)

		switch {
		case isReal(p1) && countReal(p) == 0:
			// Last real pole standing; all other poles are conjugate pairs.
			if !analog {
				z1Idx := nearestIdx(z, p1, matchReal)
				z1 := z[z1Idx]
				z = deleteAt(z, z1Idx)
				sections[si] = sectionFromRoots([]complex128{z1, 0}, []complex128{p1, 0}, 1)
			} else if len(z) > 0 {
				z1Idx := nearestIdx(z, p1, matchReal)
				z1 := z[z1Idx]
				z = deleteAt(z, z1Idx)
				sections[si] = sectionFromRoots([]complex128{z1}, []complex128{p1}, 1)
			} else {
				sections[si] = sectionFromRoots(nil, []complex128{p1}, 1)
			}

		case len(p)+1 == len(z) && !isReal(p1) && countReal(p) == 1 && countReal(z) == 1:
			// One real pole and one real zero remain for a later section, so
			// this complex pole pair must take a complex zero pair.
			z1Idx := nearestIdx(z, p1, matchComplex)
			z1 := z[z1Idx]
			z = deleteAt(z, z1Idx)
			sections[si] = sectionFromRoots([]complex128{z1, cmplx.Conj(z1)}, []complex128{p1, cmplx.Conj(p1)}, 1)

		default:
			var p2 complex128
			if isReal(p1) {
				p2Idx := idxWorstReal(p, analog)
				p2 = p[p2Idx]
				p = deleteAt(p, p2Idx)
			} else {
				p2 = cmplx.Conj(p1)
			}

			if len(z) > 0 {
				z1Idx := nearestIdx(z, p1, matchAny)
				z1 := z[z1Idx]
				z = deleteAt(z, z1Idx)

				if !isReal(z1) {
					sections[si] = sectionFromRoots([]complex128{z1, cmplx.Conj(z1)}, []complex128{p1, p2}, 1)
				} else if len(z) > 0 {
					z2Idx := nearestIdx(z, p1, matchReal)
					z2 := z[z2Idx]
					z = deleteAt(z, z2Idx)
					sections[si] = sectionFromRoots([]complex128{z1, z2}, []complex128{p1, p2}, 1)
				} else {
					sections[si] = sectionFromRoots([]complex128{z1}, []complex128{p1, p2}, 1)
				}
			} else {
				sections[si] = sectionFromRoots(nil, []complex128{p1, p2}, 1)
			}
		}
	}

	// The overall gain rides on the first section's numerator.
	for i := range sections[0].B {
		sections[0].B[i] *= f.K
	}

	return Sos{Sections: sections}, nil
}

// conjugateOrder validates conjugate pairing and returns the roots as one
// representative per complex pair (positive imaginary part) followed by the
// real roots with imaginary parts forced to zero.
func conjugateOrder(roots []complex128, what string) ([]complex128, error) {
	pairs, reals, err := cmplxpair.CplxReal(roots, cmplxpair.DefaultTol)
	if err != nil {
		return nil, &InvalidArgError{Arg: "zpk", Reason: "complex " + what + " must occur in conjugate pairs"}
	}

	return append(pairs, reals...), nil
}

// isReal reports whether a root classified by conjugateOrder is real. The
// classification forces real roots' imaginary parts to exactly zero, so no
// tolerance is needed here.
func isReal(z complex128) bool {
	return imag(z) == 0
}

func countReal(roots []complex128) int {
	n := 0
	for _, r := range roots {
		if isReal(r) {
			n++
		}
	}

	return n
}

// idxWorst returns the index of the pole whose badness is largest: distance
// to the unit circle for digital cascades, distance to the imaginary axis
// for analog ones. Smaller distance is worse.
func idxWorst(p []complex128, analog bool) int {
	best := 0
	bestDist := math.MaxFloat64

	for i, pi := range p {
		var d float64
		if analog {
			d = math.Abs(real(pi))
		} else {
			d = math.Abs(1 - cmplx.Abs(pi))
		}

		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

// idxWorstReal is idxWorst restricted to real poles. Callers guarantee at
// least one real pole remains.
func idxWorstReal(p []complex128, analog bool) int {
	best := -1
	bestDist := math.MaxFloat64

	for i, pi := range p {
		if !isReal(pi) {
			continue
		}

		var d float64
		if analog {
			d = math.Abs(real(pi))
		} else {
			d = math.Abs(1 - cmplx.Abs(pi))
		}

		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

type rootMatch int

const (
	matchAny rootMatch = iota
	matchReal
	matchComplex
)

// nearestIdx returns the index of the root in candidates closest to target,
// restricted to real or complex roots when requested. Callers guarantee a
// matching root exists.
func nearestIdx(candidates []complex128, target complex128, which rootMatch) int {
	best := -1
	bestDist := math.MaxFloat64

	for i, c := range candidates {
		switch which {
		case matchReal:
			if !isReal(c) {
				continue
			}
		case matchComplex:
			if isReal(c) {
				continue
			}
		}

		if d := cmplx.Abs(c - target); d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

// sectionFromRoots expands up to two zeros and two poles into a biquad,
// right-aligning shorter polynomials so first-order sections carry a leading
// zero coefficient.
func sectionFromRoots(z, p []complex128, gain float64) Section {
	bc, _ := polyFromRoots(z)
	ac, _ := polyFromRoots(p)

	b := realParts(bc)
	floats.Scale(gain, b)
	a := realParts(ac)

	var s Section
	copy(s.B[3-len(b):], b)
	copy(s.A[3-len(a):], a)

	return s
}

// polyFromRoots expands Π(x - r_i) into descending-power coefficients; the
// empty product is the constant polynomial 1.
//
// The expansion splits the root set in half and multiplies the two partial
// polynomials, so high-order designs combine long coefficient sequences
// where conv.Complex switches to its FFT product instead of folding one
// root in at a time.
func polyFromRoots(roots []complex128) ([]complex128, error) {
	if len(roots) == 0 {
		return []complex128{1}, nil
	}

	if len(roots) == 1 {
		return []complex128{1, -roots[0]}, nil
	}

	lo, err := polyFromRoots(roots[:len(roots)/2])
	if err != nil {
		return nil, err
	}

	hi, err := polyFromRoots(roots[len(roots)/2:])
	if err != nil {
		return nil, err
	}

	return conv.Complex(lo, hi)
}

func realParts(c []complex128) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}

	return out
}

func deleteAt(s []complex128, i int) []complex128 {
	out := make([]complex128, 0, len(s)-1)
	out = append(out, s[:i]...)

	return append(out, s[i+1:]...)
}
