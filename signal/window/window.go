// Package window generates window functions for spectral analysis and FIR
// design. Windows are symmetric by default; WithPeriodic selects the DFT-even
// form used for FFT framing.
package window

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/SpookyYomo/sci-go/special"
)

// Type identifies a window function.
type Type int

const (
	TypeBoxcar Type = iota
	TypeTriangle
	TypeHann
	TypeHamming
	TypeBlackman
	TypeNuttall
	TypeKaiser
	TypeTukey
)

func (t Type) String() string {
	switch t {
	case TypeBoxcar:
		return "boxcar"
	case TypeTriangle:
		return "triangle"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeNuttall:
		return "nuttall"
	case TypeKaiser:
		return "kaiser"
	case TypeTukey:
		return "tukey"
	default:
		return "unknown"
	}
}

// Generalized cosine window coefficients; the k-th term multiplies
// cos(2*pi*k*x).
var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
	nuttallCoeffs  = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
)

type config struct {
	alpha    float64
	hasAlpha bool
	periodic bool
}

// Option configures window generation.
type Option func(*config)

// WithAlpha sets the shape parameter of parametric windows: beta for Kaiser,
// the taper fraction for Tukey. Ignored by the fixed windows.
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
		c.hasAlpha = true
	}
}

// WithPeriodic selects the periodic (DFT-even) form instead of the symmetric
// one.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns n window coefficients of the given type.
func Generate(t Type, n int, opts ...Option) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	cfg := config{alpha: defaultAlpha(t)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch t {
	case TypeKaiser:
		if err := validateKaiser(cfg.alpha); err != nil {
			return nil, err
		}
	case TypeTukey:
		if err := validateTukey(cfg.alpha); err != nil {
			return nil, err
		}
	}

	out := make([]float64, n)
	for i := range out {
		x := samplePosition(i, n, cfg.periodic)
		out[i] = evalWindow(t, x, cfg.alpha)
	}

	return out, nil
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) error {
	if len(buf) == 0 {
		return nil
	}

	coeffs, err := Generate(t, len(buf), opts...)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// ApplyTo multiplies samples with coefficients into a new slice.
func ApplyTo(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// Kaiser returns Kaiser window coefficients with shape parameter beta.
func Kaiser(n int, beta float64, opts ...Option) ([]float64, error) {
	return Generate(TypeKaiser, n, append(opts, WithAlpha(beta))...)
}

// Tukey returns Tukey window coefficients with taper fraction alpha.
func Tukey(n int, alpha float64, opts ...Option) ([]float64, error) {
	return Generate(TypeTukey, n, append(opts, WithAlpha(alpha))...)
}

func defaultAlpha(t Type) float64 {
	switch t {
	case TypeKaiser:
		return 8.6
	case TypeTukey:
		return 0.5
	default:
		return 0
	}
}

// samplePosition maps sample n to [0, 1]. Periodic windows behave as if
// generated one sample longer and truncated.
func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

func evalWindow(t Type, x, alpha float64) float64 {
	switch t {
	case TypeBoxcar:
		return 1
	case TypeTriangle:
		if x <= 0.5 {
			return 2 * x
		}
		return 2 * (1 - x)
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeNuttall:
		return cosineFromCoeffs(x, nuttallCoeffs)
	case TypeKaiser:
		return kaiserAt(x, alpha)
	case TypeTukey:
		return tukeyAt(x, alpha)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	arg := beta * math.Sqrt(math.Max(0, 1-r*r))

	// The scaled form keeps the ratio finite for large beta, where I0
	// alone overflows.
	return special.I0e(arg) / special.I0e(beta) * math.Exp(arg-beta)
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	if alpha >= 1 {
		return cosineFromCoeffs(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}
