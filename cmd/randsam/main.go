// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	. "github.com/andrew-torda/samlen/pkg/common"
	"github.com/andrew-torda/samlen/pkg/randsam"
)

func mymain() int {
	f := flag.NewFlagSet("randsam", flag.ExitOnError)
	const iseed int64 = 1637
	var args randsam.RandSamArgs

	f.Float64Var(&args.DupFrac, "d", 0.1, "fraction of records repeating a read name")
	f.Float64Var(&args.BadFrac, "x", 0, "fraction of records with an invalid symbol")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		return ExitUsageError
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandsam [..] file nrec maxlen")
		f.Usage()
		return ExitUsageError
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nrec, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(1))
		return ExitUsageError
	} else {
		args.Nrec = int(nrec)
	}
	if nlen, err := strconv.ParseUint(f.Arg(2), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(2))
		return ExitUsageError
	} else {
		args.MaxLen = int(nlen)
	}

	fname := f.Arg(0)
	if fname == StdioName || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			return ExitFailure
		}
		defer ft.Close()
		args.Wrtr = ft
	}

	tally, err := randsam.RandSamMain(&args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	fmt.Fprintln(os.Stderr, "wrote", args.Nrec, "records,", len(tally.Lengths), "valid,",
		len(tally.UniqLengths), "valid with unique read names")
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
