package design

// Zpk is a rational transfer function in zero-pole-gain form:
//
//	H(x) = K * Π(x - Z_i) / Π(x - P_i)
//
// For filters designed from real-valued specifications, complex zeros and
// poles occur in conjugate pairs. The order of the Z and P slices is
// deterministic for a given design but carries no meaning beyond
// reproducibility; consumers must treat them as unordered sets.
type Zpk struct {
	Z []complex128
	P []complex128
	K float64
}

// BA is a transfer function as numerator and denominator polynomial
// coefficients in descending power order. After a design call, A[0] is
// normalized to 1.
type BA struct {
	B []float64
	A []float64
}

// Section is a single second-order (biquad) section. For digital sections
// A[0] is 1; analog cascades may carry first-order sections with a leading
// zero coefficient instead.
type Section struct {
	B [3]float64
	A [3]float64
}

// Sos is a filter as a cascade of second-order sections; the full transfer
// function is the product of the section transfer functions.
type Sos struct {
	Sections []Section
}

// DigitalFilter is the result of a design call: exactly one of Zpk, BA, or
// Sos, selected by the requested Output kind. Callers type-switch on the
// concrete type.
type DigitalFilter interface {
	digitalFilter()
}

func (Zpk) digitalFilter() {}
func (BA) digitalFilter()  {}
func (Sos) digitalFilter() {}

// BandType selects the frequency band of the designed filter and determines
// how many critical frequencies are required: one for Lowpass/Highpass, two
// for Bandpass/Bandstop.
type BandType int

const (
	Lowpass BandType = iota
	Highpass
	Bandpass
	Bandstop
)

func (b BandType) String() string {
	switch b {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	default:
		return "unknown"
	}
}

// Family selects the analog lowpass prototype. ChebyshevI requires the
// passband ripple rp, ChebyshevII the stopband attenuation rs, Elliptic
// both. Elliptic and Bessel are recognized but their prototype generators
// are not implemented.
type Family int

const (
	Butterworth Family = iota
	ChebyshevI
	ChebyshevII
	Elliptic
	Bessel
)

func (f Family) String() string {
	switch f {
	case Butterworth:
		return "butterworth"
	case ChebyshevI:
		return "chebyshev1"
	case ChebyshevII:
		return "chebyshev2"
	case Elliptic:
		return "elliptic"
	case Bessel:
		return "bessel"
	default:
		return "unknown"
	}
}

// Output selects the representation of the designed filter.
type Output int

const (
	OutputBA Output = iota
	OutputZpk
	OutputSos
)

func (o Output) String() string {
	switch o {
	case OutputBA:
		return "ba"
	case OutputZpk:
		return "zpk"
	case OutputSos:
		return "sos"
	default:
		return "unknown"
	}
}
