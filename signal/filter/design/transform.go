package design

import (
	"math/cmplx"
)

// relativeDegree returns the number of poles in excess of zeros. Designs
// with more zeros than poles are improper and rejected.
func relativeDegree(f Zpk) (int, error) {
	d := len(f.P) - len(f.Z)
	if d < 0 {
		return 0, &InvalidArgError{Arg: "zpk", Reason: "must have at least as many poles as zeros"}
	}

	return d, nil
}

// LowpassToLowpass transforms an analog lowpass prototype with unit cutoff
// to a lowpass filter with angular cutoff frequency wo.
func LowpassToLowpass(f Zpk, wo float64) (Zpk, error) {
	if wo <= 0 {
		return Zpk{}, &InvalidArgError{Arg: "wo", Reason: "cutoff frequency must be positive"}
	}

	degree, err := relativeDegree(f)
	if err != nil {
		return Zpk{}, err
	}

	w := complex(wo, 0)

	z := make([]complex128, len(f.Z))
	for i, zi := range f.Z {
		z[i] = zi * w
	}

	p := make([]complex128, len(f.P))
	for i, pi := range f.P {
		p[i] = pi * w
	}

	// Scaling each root by wo multiplies the leading-coefficient ratio by
	// wo^degree.
	k := f.K * intPow(wo, degree)

	return Zpk{Z: z, P: p, K: k}, nil
}

// LowpassToHighpass transforms an analog lowpass prototype with unit cutoff
// to a highpass filter with angular cutoff frequency wo. Roots map to their
// reciprocals scaled by wo, so a root at the origin is rejected.
func LowpassToHighpass(f Zpk, wo float64) (Zpk, error) {
	if wo <= 0 {
		return Zpk{}, &InvalidArgError{Arg: "wo", Reason: "cutoff frequency must be positive"}
	}

	degree, err := relativeDegree(f)
	if err != nil {
		return Zpk{}, err
	}

	w := complex(wo, 0)

	z := make([]complex128, len(f.Z), len(f.Z)+degree)
	for i, zi := range f.Z {
		if zi == 0 {
			return Zpk{}, &InvalidArgError{Arg: "zpk", Reason: "prototype zero at the origin has no highpass image"}
		}
		z[i] = w / zi
	}

	p := make([]complex128, len(f.P))
	for i, pi := range f.P {
		if pi == 0 {
			return Zpk{}, &InvalidArgError{Arg: "zpk", Reason: "prototype pole at the origin has no highpass image"}
		}
		p[i] = w / pi
	}

	// Excess poles of the prototype become zeros at the origin.
	for i := 0; i < degree; i++ {
		z = append(z, 0)
	}

	k := f.K * real(prodNeg(f.Z)/prodNeg(f.P))

	return Zpk{Z: z, P: p, K: k}, nil
}

// LowpassToBandpass transforms an analog lowpass prototype with unit cutoff
// to a bandpass filter with angular center frequency wo and bandwidth bw.
func LowpassToBandpass(f Zpk, wo, bw float64) (Zpk, error) {
	if wo <= 0 {
		return Zpk{}, &InvalidArgError{Arg: "wo", Reason: "center frequency must be positive"}
	}

	if bw <= 0 {
		return Zpk{}, &InvalidArgError{Arg: "bw", Reason: "bandwidth must be positive"}
	}

	degree, err := relativeDegree(f)
	if err != nil {
		return Zpk{}, err
	}

	// Each prototype root r yields the conjugate pair
	// r*bw/2 ± sqrt((r*bw/2)^2 - wo^2).
	z := bandpassRoots(f.Z, wo, bw)
	p := bandpassRoots(f.P, wo, bw)

	// Excess poles of the prototype become zeros at the origin.
	for i := 0; i < degree; i++ {
		z = append(z, 0)
	}

	k := f.K * intPow(bw, degree)

	return Zpk{Z: z, P: p, K: k}, nil
}

// LowpassToBandstop transforms an analog lowpass prototype with unit cutoff
// to a bandstop filter with angular center frequency wo and bandwidth bw.
// Roots pass through a reciprocal map, so a root at the origin is rejected.
func LowpassToBandstop(f Zpk, wo, bw float64) (Zpk, error) {
	if wo <= 0 {
		return Zpk{}, &InvalidArgError{Arg: "wo", Reason: "center frequency must be positive"}
	}

	if bw <= 0 {
		return Zpk{}, &InvalidArgError{Arg: "bw", Reason: "bandwidth must be positive"}
	}

	degree, err := relativeDegree(f)
	if err != nil {
		return Zpk{}, err
	}

	half := complex(bw/2, 0)

	zhp := make([]complex128, len(f.Z))
	for i, zi := range f.Z {
		if zi == 0 {
			return Zpk{}, &InvalidArgError{Arg: "zpk", Reason: "prototype zero at the origin has no bandstop image"}
		}
		zhp[i] = half / zi
	}

	php := make([]complex128, len(f.P))
	for i, pi := range f.P {
		if pi == 0 {
			return Zpk{}, &InvalidArgError{Arg: "zpk", Reason: "prototype pole at the origin has no bandstop image"}
		}
		php[i] = half / pi
	}

	z := splitRoots(zhp, wo)
	p := splitRoots(php, wo)

	// Excess poles of the prototype become zero pairs at ±j*wo.
	for i := 0; i < degree; i++ {
		z = append(z, complex(0, wo))
	}
	for i := 0; i < degree; i++ {
		z = append(z, complex(0, -wo))
	}

	k := f.K * real(prodNeg(f.Z)/prodNeg(f.P))

	return Zpk{Z: z, P: p, K: k}, nil
}

// BilinearZpk discretizes an analog filter with Tustin's method, mapping the
// s-plane to the z-plane via s = 2*fs*(z-1)/(z+1). The caller is expected to
// pre-warp critical frequencies; IIRFilter does this automatically.
func BilinearZpk(f Zpk, fs float64) (Zpk, error) {
	if fs <= 0 {
		return Zpk{}, &InvalidArgError{Arg: "fs", Reason: "sample rate must be positive"}
	}

	degree, err := relativeDegree(f)
	if err != nil {
		return Zpk{}, err
	}

	fs2 := complex(2*fs, 0)

	z := make([]complex128, len(f.Z), len(f.Z)+degree)
	for i, zi := range f.Z {
		if zi == fs2 {
			return Zpk{}, &InvalidArgError{Arg: "zpk", Reason: "zero at 2*fs is a singularity of the bilinear map"}
		}
		z[i] = (fs2 + zi) / (fs2 - zi)
	}

	p := make([]complex128, len(f.P))
	for i, pi := range f.P {
		if pi == fs2 {
			return Zpk{}, &InvalidArgError{Arg: "zpk", Reason: "pole at 2*fs is a singularity of the bilinear map"}
		}
		p[i] = (fs2 + pi) / (fs2 - pi)
	}

	// Zeros at analog infinity land at the Nyquist frequency.
	for i := 0; i < degree; i++ {
		z = append(z, -1)
	}

	num := complex(1, 0)
	for _, zi := range f.Z {
		num *= fs2 - zi
	}
	den := complex(1, 0)
	for _, pi := range f.P {
		den *= fs2 - pi
	}

	k := f.K * real(num/den)

	return Zpk{Z: z, P: p, K: k}, nil
}

// bandpassRoots scales roots by bw/2 and splits each into the conjugate
// pair r ± sqrt(r^2 - wo^2), plus branch first.
func bandpassRoots(roots []complex128, wo, bw float64) []complex128 {
	scaled := make([]complex128, len(roots))
	half := complex(bw/2, 0)
	for i, r := range roots {
		scaled[i] = r * half
	}

	return splitRoots(scaled, wo)
}

// splitRoots maps each root r to the pair r ± sqrt(r^2 - wo^2), all plus
// branches followed by all minus branches.
func splitRoots(roots []complex128, wo float64) []complex128 {
	wo2 := complex(wo*wo, 0)

	out := make([]complex128, 0, 2*len(roots))
	for _, r := range roots {
		out = append(out, r+cmplx.Sqrt(r*r-wo2))
	}
	for _, r := range roots {
		out = append(out, r-cmplx.Sqrt(r*r-wo2))
	}

	return out
}

// intPow computes x^n for small non-negative n without the rounding noise
// of math.Pow near exact integers.
func intPow(x float64, n int) float64 {
	out := 1.0
	for i := 0; i < n; i++ {
		out *= x
	}

	return out
}
