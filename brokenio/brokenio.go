// brokenio is a wrapper around an io.ReadCloser. It lets us provoke
// read failures, either at random or after a fixed number of bytes.
// Typical use: You get a file pointer or a reader on standard input.
// You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything then
// functions as before, but with artificial errors.
// When we introduce a failure on the first read, we return without an
// error. This is what one often sees on a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is returned by Read when we decided to fail.
var ErrBroken = errors.New("brokenio: provoked read failure")

// BrknRdrClsr has the values controlling the frequency of errors.
// Probabilities are fractions, so a value of 0.05 means failure in 5% of
// the cases. If verbose is true, print out the amount of data when the
// file is closed.
type BrknRdrClsr struct {
	rdr_orig     io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability that a read fails
	failAfter    int     // Fail once this many bytes have gone through, -1 for never
	nCalled      int
	nByte        int
	verbose      bool
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failing.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes reads fail once n bytes have been handed out.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// SetSeed resets the random number generator.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdr_orig:  rIn,
		rnd:       rand.New(rand.NewSource(1)),
		failAfter: -1,
	}
}

// Read wraps the original reader and sums up the amount of data that
// has gone through. On the first call, we might return zero data to
// simulate a zero length file.
// When we fail, we return the bytes we are allowed to along with ErrBroken.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 {
		if r.rnd.Float32() < r.probZeroFile {
			return 0, io.EOF
		}
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	n, err = r.rdr_orig.Read(p)
	r.nCalled++
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdr_orig.Close()
}
