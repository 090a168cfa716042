// Package special provides the scalar special functions the signal packages
// build on.
package special

import "math"

// The modified Bessel functions below use polynomial fits good to about
// seven significant digits on the real line, split at |x| = 3.75 between a
// series in (x/3.75)^2 and an asymptotic form in 3.75/|x|.

// I0 returns the modified Bessel function of the first kind, order zero.
// The result overflows for |x| beyond roughly 709; callers forming ratios
// of large arguments should use I0e instead.
func I0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		return i0Small(ax)
	}

	return math.Exp(ax) / math.Sqrt(ax) * i0LargeScaled(ax)
}

// I0e returns exp(-|x|) * I0(x), the exponentially scaled form. It stays
// finite over the whole real line.
func I0e(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		return math.Exp(-ax) * i0Small(ax)
	}

	return i0LargeScaled(ax) / math.Sqrt(ax)
}

func i0Small(ax float64) float64 {
	y := ax / 3.75
	y *= y

	return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
}

// i0LargeScaled evaluates sqrt(|x|) * exp(-|x|) * I0(x) for |x| >= 3.75.
func i0LargeScaled(ax float64) float64 {
	y := 3.75 / ax

	return 0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377)))))))
}
