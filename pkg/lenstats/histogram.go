// 16 Oct 2026

package lenstats

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/andrew-torda/matrix"
)

// Columns in the fraction matrix.
const (
	ColFrac    = iota // fraction of all lengths
	ColCumFrac        // fraction of lengths up to and including this one
	nCol
)

// Hist says how often each length occurs. Counts are kept as integers.
// The float32 matrix only holds fractions, so a count is never rounded.
type Hist struct {
	Lengths []int             // distinct lengths in increasing order
	Counts  []int             // Counts[i] is the number of times we saw Lengths[i]
	Frac    *matrix.FMatrix2d // one row per length, columns ColFrac and ColCumFrac
}

// Histogram counts how often each length occurs.
func Histogram(lengths []int) (*Hist, error) {
	if len(lengths) == 0 {
		return nil, ErrEmptyInput
	}
	counts := make(map[int]int)
	for _, l := range lengths {
		counts[l]++
	}
	return histFromCounts(counts), nil
}

// histFromCounts does the work of Histogram, given the number of
// times each length was seen. counts must not be empty.
func histFromCounts(counts map[int]int) *Hist {
	h := &Hist{Lengths: make([]int, 0, len(counts))}
	var total int
	for l, n := range counts {
		h.Lengths = append(h.Lengths, l)
		total += n
	}
	sort.Ints(h.Lengths)

	h.Counts = make([]int, len(h.Lengths))
	h.Frac = matrix.NewFMatrix2d(len(h.Lengths), nCol)
	var cum int
	for i, l := range h.Lengths {
		n := counts[l]
		cum += n
		h.Counts[i] = n
		h.Frac.Mat[i][ColFrac] = float32(float64(n) / float64(total))
		h.Frac.Mat[i][ColCumFrac] = float32(float64(cum) / float64(total))
	}
	return h
}

// WriteHistogram writes the histogram as tab separated columns with
// a heading line.
func WriteHistogram(w io.Writer, h *Hist) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "length\tcount\tfraction\tcumulative")
	for i, l := range h.Lengths {
		row := h.Frac.Mat[i]
		fmt.Fprintf(bw, "%d\t%d\t%.6f\t%.6f\n", l, h.Counts[i], row[ColFrac], row[ColCumFrac])
	}
	return bw.Flush()
}
