package conv

// Complex convolves two complex sequences, returning a new slice of length
// len(a) + len(b) - 1. Short operands go through direct convolution; once
// both operands are long enough the product is formed with a single
// zero-padded FFT instead.
//
// Convolving coefficient sequences multiplies the polynomials they
// represent, so this is the primitive behind expanding a root product
// Π(x - r_i) into polynomial coefficients.
func Complex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	const directThreshold = 32
	if len(a) < directThreshold || len(b) < directThreshold {
		return DirectComplex(a, b)
	}

	return fftComplex(a, b)
}

// DirectComplex performs direct linear convolution of two complex sequences.
// Returns a new slice of length len(a) + len(b) - 1.
func DirectComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]complex128, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			result[i+j] += a[i] * b[j]
		}
	}

	return result, nil
}
