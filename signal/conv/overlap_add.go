package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fftComplex convolves two complex sequences through a single zero-padded
// transform. Linear convolution needs at least len(a)+len(b)-1 points, so
// both operands are padded to the next power of two above that.
func fftComplex(a, b []complex128) ([]complex128, error) {
	outLen := len(a) + len(b) - 1
	size := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: fft plan: %w", err)
	}

	fa := make([]complex128, size)
	copy(fa, a)
	fb := make([]complex128, size)
	copy(fb, b)

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: forward fft: %w", err)
	}

	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("conv: forward fft: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("conv: inverse fft: %w", err)
	}

	return fa[:outLen], nil
}

// OverlapAdd convolves long real signals with a fixed kernel block by block:
// each input block is multiplied against the precomputed kernel spectrum in
// the frequency domain and the block results are summed at their offsets.
// Reusing the kernel spectrum amortizes one forward transform over the whole
// signal.
type OverlapAdd struct {
	kernelFreq []complex128
	kernelLen  int
	blockSize  int
	plan       *algofft.Plan[complex128]
	scratch    []complex128
}

// NewOverlapAdd prepares a convolver for the given kernel. A blockSize of
// zero or less picks one from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = nextPowerOf2(len(kernel))
		if blockSize < 256 {
			blockSize = 256
		}
	}

	size := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: fft plan: %w", err)
	}

	kernelFreq := make([]complex128, size)
	for i, v := range kernel {
		kernelFreq[i] = complex(v, 0)
	}

	if err := plan.Forward(kernelFreq, kernelFreq); err != nil {
		return nil, fmt.Errorf("conv: kernel fft: %w", err)
	}

	return &OverlapAdd{
		kernelFreq: kernelFreq,
		kernelLen:  len(kernel),
		blockSize:  blockSize,
		plan:       plan,
		scratch:    make([]complex128, size),
	}, nil
}

// Process returns the full linear convolution of input with the kernel,
// of length len(input) + kernel length - 1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)

	for start := 0; start < len(input); start += oa.blockSize {
		end := start + oa.blockSize
		if end > len(input) {
			end = len(input)
		}

		for i := range oa.scratch {
			oa.scratch[i] = 0
		}
		for i, v := range input[start:end] {
			oa.scratch[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.scratch, oa.scratch); err != nil {
			return nil, fmt.Errorf("conv: forward fft: %w", err)
		}

		for i := range oa.scratch {
			oa.scratch[i] *= oa.kernelFreq[i]
		}

		if err := oa.plan.Inverse(oa.scratch, oa.scratch); err != nil {
			return nil, fmt.Errorf("conv: inverse fft: %w", err)
		}

		// A block of length L spans L + kernelLen - 1 output samples
		// starting at the block offset.
		span := (end - start) + oa.kernelLen - 1
		for i := 0; i < span && start+i < len(output); i++ {
			output[start+i] += real(oa.scratch[i])
		}
	}

	return output, nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution with an
// automatically sized block.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}

	return oa.Process(signal)
}
