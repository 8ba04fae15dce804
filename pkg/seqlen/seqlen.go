// 15 May 2025
// 16 Oct 2026 now reads SAM files.

// Package seqlen visits a SAM file and collects the length of every
// sequence which is made of nucleotides. Optionally, only the first
// record for each read name is looked at, so multimappers are only
// counted once.
package seqlen

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/samlen/pkg/common"
	"github.com/andrew-torda/samlen/pkg/samrec"
)

// ErrInputAccess is wrapped by any error from opening or mapping the input.
var ErrInputAccess = errors.New("cannot read SAM input")

// How many lines we read before looking to see if we have been cancelled.
const checkEvery = 4096

// Options contains the choices passed in from the caller.
type Options struct {
	Multimappers bool      // only count the first record for each read name
	Diag         io.Writer // invalid sequences are reported here, nil means stderr
}

// Result is what we found in one pass over the file.
type Result struct {
	Lengths    []int // one entry per accepted record, in file order
	NAccepted  int   // always len(Lengths)
	NInvalid   int   // records whose sequence was not nucleotides
	NDuplicate int   // records skipped since the read name was seen before
	NHeader    int   // header lines
}

// collector holds the state for one scan. The seen set belongs to
// the scan and goes away with it.
type collector struct {
	opts  *Options
	diag  io.Writer
	seen  map[string]struct{}
	res   Result
	nline int
}

func newCollector(opts *Options) *collector {
	if opts == nil {
		opts = &Options{}
	}
	c := &collector{opts: opts, diag: opts.Diag}
	if c.diag == nil {
		c.diag = os.Stderr
	}
	if opts.Multimappers {
		c.seen = make(map[string]struct{})
	}
	return c
}

// start writes the message saying which mode we are in.
func (c *collector) start() {
	mode := "OFF"
	if c.opts.Multimappers {
		mode = "ON"
	}
	fmt.Fprintf(c.diag, "Calculating read lengths (multimappers mode %s)\n", mode)
}

// line looks at one line from the file. The line may or may not still
// have its newline.
func (c *collector) line(b []byte) error {
	c.nline++
	if samrec.IsHeader(b) {
		c.res.NHeader++
		return nil
	}
	rec, err := samrec.Split(b)
	if err != nil {
		var merr *samrec.MalformedError
		if errors.As(err, &merr) {
			merr.Line = c.nline
		}
		return err
	}
	if c.seen != nil {
		if _, ok := c.seen[string(rec.Name)]; ok {
			c.res.NDuplicate++
			return nil
		}
		c.seen[string(rec.Name)] = struct{}{}
	}
	if !samrec.ValidSeq(rec.Seq) {
		c.res.NInvalid++
		fmt.Fprintf(c.diag, "Invalid sequence detected:\n%s\n", rec.Seq)
		return nil
	}
	c.res.NAccepted++
	c.res.Lengths = append(c.res.Lengths, len(rec.Seq))
	return nil
}

// cancelled is called on every line, but only asks the context
// every checkEvery lines.
func (c *collector) cancelled(ctx context.Context) error {
	if c.nline%checkEvery != 0 {
		return nil
	}
	return ctx.Err()
}

// scanBytes walks over a buffer holding the whole file.
func (c *collector) scanBytes(ctx context.Context, buf []byte) error {
	for len(buf) > 0 {
		var ln []byte
		if ndx := bytes.IndexByte(buf, '\n'); ndx == -1 {
			ln, buf = buf, nil
		} else {
			ln, buf = buf[:ndx], buf[ndx+1:]
		}
		if err := c.line(ln); err != nil {
			return err
		}
		if err := c.cancelled(ctx); err != nil {
			return err
		}
	}
	return nil
}

// scanReader reads lines from a stream. There is no limit on line length.
func (c *collector) scanReader(ctx context.Context, rdr io.Reader) error {
	br := bufio.NewReaderSize(rdr, 64*1024)
	for {
		ln, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF { // ln is a partial line, do not look at it
			return fmt.Errorf("reading SAM input after line %d: %w", c.nline, err)
		}
		if len(ln) > 0 {
			if e := c.line(ln); e != nil {
				return e
			}
			if e := c.cancelled(ctx); e != nil {
				return e
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// CollectReader does one pass over a SAM stream.
func CollectReader(ctx context.Context, rdr io.Reader, opts *Options) (*Result, error) {
	c := newCollector(opts)
	c.start()
	if err := c.scanReader(ctx, rdr); err != nil {
		return nil, err
	}
	return &c.res, nil
}

// Collect does one pass over the SAM file fname. If fname is "-", we
// read standard input, otherwise the file is memory mapped.
func Collect(ctx context.Context, fname string, opts *Options) (*Result, error) {
	if fname == common.StdioName {
		return CollectReader(ctx, os.Stdin, opts)
	}
	var fp *os.File
	var err error
	if fp, err = os.Open(fname); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputAccess, err)
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputAccess, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputAccess, fname)
	}

	c := newCollector(opts)
	c.start()
	if fi.Size() == 0 { // Cannot map an empty file. Nothing to read anyway.
		return &c.res, nil
	}
	var mm mmap.MMap
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return nil, fmt.Errorf("%w: mapping %s: %w", ErrInputAccess, fname, err)
	}
	defer mm.Unmap()
	if err := c.scanBytes(ctx, mm); err != nil {
		return nil, err
	}
	return &c.res, nil
}
