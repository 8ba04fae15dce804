// 16 Oct 2026

package samlen_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/samlen/pkg/common"
	"github.com/andrew-torda/samlen/pkg/lenstats"
	. "github.com/andrew-torda/samlen/pkg/samlen"
	"github.com/andrew-torda/samlen/pkg/samrec"
	"github.com/andrew-torda/samlen/pkg/seqlen"
	"github.com/andrew-torda/samlen/pkg/wrtstat"
)

var samstring = "@HD\tVN:1.6\tSO:unsorted\n" +
	"@SQ\tSN:chr1\tLN:5000\n" +
	"r1\t0\tchr1\t100\t255\t10M\t*\t0\t0\tACGTACGTAC\t*\n" +
	"r1\t256\tchr1\t900\t255\t20M\t*\t0\t0\tACGTACGTACGTACGTACGT\t*\n" +
	"r2\t0\tchr1\t300\t255\t5M\t*\t0\t0\tACGXA\t*\n"

// setup writes the SAM string and returns arguments with output files
// in a temporary directory.
func setup(t *testing.T, s string) *CmdArgs {
	t.Helper()
	fname, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	dir := t.TempDir()
	return &CmdArgs{
		SamFname:  fname,
		MeanFname: filepath.Join(dir, "mean"),
		SdFname:   filepath.Join(dir, "sd"),
	}
}

func readBack(t *testing.T, fname string) string {
	t.Helper()
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestMymain(t *testing.T) {
	tests := []struct {
		multi        bool
		mean, sd     string
		naccept, dup int
	}{
		{false, "15", "5", 2, 0},
		{true, "10", "0", 1, 1},
	}
	for _, tt := range tests {
		args := setup(t, samstring)
		args.Multimappers = tt.multi
		var diag bytes.Buffer
		if err := Mymain(context.Background(), args, &diag); err != nil {
			t.Fatal(err)
		}
		if got := readBack(t, args.MeanFname); got != tt.mean {
			t.Errorf("multimappers %v mean %q want %q", tt.multi, got, tt.mean)
		}
		if got := readBack(t, args.SdFname); got != tt.sd {
			t.Errorf("multimappers %v sd %q want %q", tt.multi, got, tt.sd)
		}
		d := diag.String()
		if !strings.Contains(d, "Invalid sequence detected:\nACGXA\n") {
			t.Errorf("invalid sequence not reported in %q", d)
		}
		summ := fmt.Sprintf("%d sequences accepted, 1 invalid, %d duplicate", tt.naccept, tt.dup)
		if !strings.Contains(d, summ) {
			t.Errorf("summary line wrong in %q", d)
		}
	}
}

func TestQuiet(t *testing.T) {
	args := setup(t, samstring)
	args.Quiet = true
	var diag bytes.Buffer
	if err := Mymain(context.Background(), args, &diag); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(diag.String(), "sequences accepted") {
		t.Error("summary written in quiet mode")
	}
}

func TestHistFile(t *testing.T) {
	args := setup(t, samstring)
	args.HistFname = filepath.Join(t.TempDir(), "hist.tsv")
	if err := Mymain(context.Background(), args, io.Discard); err != nil {
		t.Fatal(err)
	}
	want := "length\tcount\tfraction\tcumulative\n10\t1\t0.500000\t0.500000\n20\t1\t0.500000\t1.000000\n"
	if got := readBack(t, args.HistFname); got != want {
		t.Errorf("histogram got %q want %q", got, want)
	}
}

// TestHeaderOnly has no records, so we must get an error and not
// write NaN anywhere.
func TestHeaderOnly(t *testing.T) {
	args := setup(t, "@HD\tVN:1.6\n@SQ\tSN:chr1\tLN:5000\n")
	err := Mymain(context.Background(), args, io.Discard)
	if !errors.Is(err, lenstats.ErrEmptyInput) {
		t.Fatal("want ErrEmptyInput, got", err)
	}
	if _, err := os.Stat(args.MeanFname); !os.IsNotExist(err) {
		t.Error("mean file should not have been written")
	}
}

func TestErrors(t *testing.T) {
	args := setup(t, samstring)
	args.SamFname = filepath.Join(t.TempDir(), "missing.sam")
	if err := Mymain(context.Background(), args, io.Discard); !errors.Is(err, seqlen.ErrInputAccess) {
		t.Error("missing input, want ErrInputAccess, got", err)
	}

	args = setup(t, samstring+"r3\tbroken\n")
	var merr *samrec.MalformedError
	if err := Mymain(context.Background(), args, io.Discard); !errors.As(err, &merr) {
		t.Error("broken line, want MalformedError, got", err)
	}

	args = setup(t, samstring)
	args.SdFname = filepath.Join(t.TempDir(), "nodir", "sd")
	if err := Mymain(context.Background(), args, io.Discard); !errors.Is(err, wrtstat.ErrOutputAccess) {
		t.Error("bad output, want ErrOutputAccess, got", err)
	}
}
