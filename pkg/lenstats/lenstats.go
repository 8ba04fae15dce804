// 16 Oct 2026

// Package lenstats calculates summary statistics over a set of
// sequence lengths.
package lenstats

import (
	"errors"
	"math"
)

// ErrEmptyInput is returned instead of NaN when there is nothing to average.
var ErrEmptyInput = errors.New("no sequence lengths, mean and standard deviation are undefined")

// Summary holds the mean and population standard deviation.
type Summary struct {
	Mean float64
	SD   float64
}

// CalcMeanSD returns the mean and the population standard deviation
// (divide by N, not N-1) of lengths. We go over the data twice, first
// for the mean and then for the squared deviations from it.
func CalcMeanSD(lengths []int) (Summary, error) {
	n := len(lengths)
	if n == 0 {
		return Summary{}, ErrEmptyInput
	}
	var sum float64
	for _, l := range lengths {
		sum += float64(l)
	}
	mean := sum / float64(n)
	var ss float64
	for _, l := range lengths {
		d := float64(l) - mean
		ss += d * d
	}
	return Summary{Mean: mean, SD: math.Sqrt(ss / float64(n))}, nil
}
