// Package stats provides running statistics for playout and self-play
// results.
package stats

import "math"

// Statistic accumulates a running mean and variance over pushed values
// using Welford's algorithm, so long self-play runs never need to hold
// every sample.
type Statistic struct {
	total int

	// For Welford's algorithm:
	oldM float64
	newM float64
	oldS float64
	newS float64

	min float64
	max float64
}

func (s *Statistic) Push(val float64) {
	s.total++
	if s.total == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
		s.min = val
		s.max = val
	} else {
		s.newM = s.oldM + (val-s.oldM)/float64(s.total)
		s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
		s.oldM = s.newM
		s.oldS = s.newS
		if val < s.min {
			s.min = val
		}
		if val > s.max {
			s.max = val
		}
	}
}

func (s *Statistic) Total() int {
	return s.total
}

func (s *Statistic) Mean() float64 {
	if s.total > 0 {
		return s.newM
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.total <= 1 {
		return 0.0
	}
	return s.newS / float64(s.total-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}

// StandardError returns the standard error of the mean.
func (s *Statistic) StandardError(zval float64) float64 {
	if s.total <= 1 {
		return 0.0
	}
	return zval * s.Stdev() / math.Sqrt(float64(s.total))
}
