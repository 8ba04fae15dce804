// 16 Oct 2026
// Read a SAM file, collect the lengths of the read sequences and write
// the mean and standard deviation, rounded to integers, to two files.

package samlen

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/samlen/pkg/lenstats"
	"github.com/andrew-torda/samlen/pkg/seqlen"
	"github.com/andrew-torda/samlen/pkg/wrtstat"
)

// CmdArgs is filled out from the command line.
type CmdArgs struct {
	SamFname     string // input SAM file, "-" for stdin
	MeanFname    string // where the mean goes
	SdFname      string // and the standard deviation
	HistFname    string // optional length histogram
	Multimappers bool   // count each read name only once
	Quiet        bool   // no summary line
}

// writeHist writes the length histogram to a named file.
func writeHist(fname string, lengths []int) error {
	hist, err := lenstats.Histogram(lengths)
	if err != nil {
		return err
	}
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("%w: %w", wrtstat.ErrOutputAccess, err)
	}
	if err := lenstats.WriteHistogram(fp, hist); err != nil {
		fp.Close()
		return fmt.Errorf("%w: %s: %w", wrtstat.ErrOutputAccess, fname, err)
	}
	if err := fp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", wrtstat.ErrOutputAccess, fname, err)
	}
	return nil
}

// Mymain runs the whole pipeline. Diagnostics go to diag.
func Mymain(ctx context.Context, args *CmdArgs, diag io.Writer) error {
	opts := &seqlen.Options{Multimappers: args.Multimappers, Diag: diag}
	res, err := seqlen.Collect(ctx, args.SamFname, opts)
	if err != nil {
		return err
	}
	if !args.Quiet {
		fmt.Fprintf(diag, "%d sequences accepted, %d invalid, %d duplicate read names skipped\n",
			res.NAccepted, res.NInvalid, res.NDuplicate)
	}
	summ, err := lenstats.CalcMeanSD(res.Lengths)
	if err != nil {
		return fmt.Errorf("%s: %w", args.SamFname, err)
	}
	if err := wrtstat.WriteRounded(args.MeanFname, summ.Mean); err != nil {
		return fmt.Errorf("mean: %w", err)
	}
	if err := wrtstat.WriteRounded(args.SdFname, summ.SD); err != nil {
		return fmt.Errorf("standard deviation: %w", err)
	}
	if args.HistFname != "" {
		if err := writeHist(args.HistFname, res.Lengths); err != nil {
			return fmt.Errorf("histogram: %w", err)
		}
	}
	return nil
}
