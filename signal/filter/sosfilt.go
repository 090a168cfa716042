// Package filter applies designed filters to sample data and evaluates their
// frequency responses.
package filter

import (
	"errors"

	"github.com/SpookyYomo/sci-go/signal/filter/design"
)

var (
	// ErrNoSections is returned when a cascade contains no sections.
	ErrNoSections = errors.New("filter: cascade has no sections")

	// ErrSingularSection is returned when a section's leading denominator
	// coefficient is zero, so the section cannot be normalized.
	ErrSingularSection = errors.New("filter: section has zero leading denominator coefficient")
)

// SosFilt filters x through a cascade of second-order sections using the
// transposed direct form II structure, one section at a time. State starts
// at zero; sections whose leading denominator coefficient is not 1 are
// normalized first.
func SosFilt(sos design.Sos, x []float64) ([]float64, error) {
	if len(sos.Sections) == 0 {
		return nil, ErrNoSections
	}

	sections := make([]design.Section, len(sos.Sections))
	for i, s := range sos.Sections {
		if s.A[0] == 0 {
			return nil, ErrSingularSection
		}

		if s.A[0] != 1 {
			a0 := s.A[0]
			for j := range s.B {
				s.B[j] /= a0
				s.A[j] /= a0
			}
		}

		sections[i] = s
	}

	y := append([]float64(nil), x...)

	for _, s := range sections {
		var s0, s1 float64

		for i, v := range y {
			out := s.B[0]*v + s0
			s0 = s.B[1]*v - s.A[1]*out + s1
			s1 = s.B[2]*v - s.A[2]*out
			y[i] = out
		}
	}

	return y, nil
}
