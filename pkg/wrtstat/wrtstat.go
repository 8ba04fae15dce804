// 16 Oct 2026

// Package wrtstat writes a single statistic, rounded to an integer, as
// the whole contents of a file.
package wrtstat

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
)

// ErrOutputAccess is wrapped by any error from creating or writing the output.
var ErrOutputAccess = errors.New("cannot write statistic")

// Rounded rounds half to even, so 14.5 goes to 14 and 15.5 to 16.
// NaN and infinities cannot be written as integers.
func Rounded(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("cannot round %v to an integer", v)
	}
	return int64(math.RoundToEven(v)), nil
}

// WriteRounded creates or truncates fname and writes v, rounded, with no
// trailing newline.
func WriteRounded(fname string, v float64) error {
	n, err := Rounded(v)
	if err != nil {
		return err
	}
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputAccess, err)
	}
	if _, err := fp.WriteString(strconv.FormatInt(n, 10)); err != nil {
		fp.Close()
		return fmt.Errorf("%w: %s: %w", ErrOutputAccess, fname, err)
	}
	if err := fp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrOutputAccess, fname, err)
	}
	return nil
}
