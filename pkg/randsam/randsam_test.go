// 31 July 2020

package randsam_test

import (
	"strings"
	"testing"

	"github.com/andrew-torda/samlen/pkg/randsam"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randsam.RandSamArgs{
		Wrtr:    &sb,
		Nrec:    5000,
		MaxLen:  150,
		DupFrac: 0.2,
		BadFrac: 0.05,
	}
	tally, err := randsam.RandSamMain(&args)
	if err != nil {
		t.Fatal(err)
	}
	var nData, nHead int
	for _, ln := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		if strings.HasPrefix(ln, "@") {
			nHead++
			continue
		}
		nData++
		if n := strings.Count(ln, "\t") + 1; n != 11 {
			t.Fatal("want 11 fields, got", n, "in", ln)
		}
	}
	if nData != args.Nrec {
		t.Fatal("data lines, got ", nData, "expected", args.Nrec)
	}
	if nHead == 0 {
		t.Fatal("no header lines")
	}
	if got := len(tally.Lengths) + tally.NInvalid; got != args.Nrec {
		t.Fatal("valid + invalid is", got, "want", args.Nrec)
	}
	if got := len(tally.UniqLengths) + tally.NUniqInvalid + tally.NDup; got != args.Nrec {
		t.Fatal("unique valid + unique invalid + duplicates is", got, "want", args.Nrec)
	}
	for _, l := range tally.Lengths {
		if l < 1 || l > args.MaxLen {
			t.Fatal("length out of range", l)
		}
	}
}

func TestSameSeed(t *testing.T) {
	var a, b strings.Builder
	argsA := randsam.RandSamArgs{Wrtr: &a, Nrec: 200, MaxLen: 50, Iseed: 7}
	argsB := argsA
	argsB.Wrtr = &b
	if _, err := randsam.RandSamMain(&argsA); err != nil {
		t.Fatal(err)
	}
	if _, err := randsam.RandSamMain(&argsB); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatal("same seed gave different output")
	}
}

func TestBadLength(t *testing.T) {
	var sb strings.Builder
	args := randsam.RandSamArgs{Wrtr: &sb, Nrec: 3}
	if _, err := randsam.RandSamMain(&args); err == nil {
		t.Fatal("zero maximum length should fail")
	}
}
