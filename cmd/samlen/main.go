// 16 Oct 2026

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/samlen/pkg/common"
	"github.com/andrew-torda/samlen/pkg/samlen"
)

const interruptMsg = "User interrupt!"

// How long we wait for a clean stop after an interrupt. Reading
// from a terminal, for example, never looks at the context.
const graceTime = time.Second

// newCmd builds the command. ran is set if we got past flag parsing.
func newCmd(cmdArgs *samlen.CmdArgs, stderr io.Writer, ran *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samlen --sam in.sam --mean mean.txt --sd sd.txt",
		Short: "Calculate mean and standard deviation of read lengths from a SAM file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			return samlen.Mymain(cmd.Context(), cmdArgs, stderr)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	f := cmd.Flags()
	f.StringVar(&cmdArgs.SamFname, "sam", "", "Input SAM file, - for stdin")
	f.StringVar(&cmdArgs.MeanFname, "mean", "", "Text file stating the mean read length")
	f.StringVar(&cmdArgs.SdFname, "sd", "", "Text file stating the standard deviation of the read lengths")
	f.BoolVar(&cmdArgs.Multimappers, "multimappers", false, "Count only unique reads")
	f.StringVar(&cmdArgs.HistFname, "hist", "", "Optional file for a table of read length counts")
	f.BoolVarP(&cmdArgs.Quiet, "quiet", "q", false, "Do not print the summary line")
	for _, name := range []string{"sam", "mean", "sd"} {
		cmd.MarkFlagRequired(name)
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	return cmd
}

// run parses argv, runs and returns the exit code.
func run(ctx context.Context, argv []string, stderr io.Writer) int {
	var cmdArgs samlen.CmdArgs
	var ran bool
	cmd := newCmd(&cmdArgs, stderr, &ran)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(ctx)
	switch {
	case ctx.Err() != nil:
		fmt.Fprintln(stderr, interruptMsg)
		return common.ExitInterrupt
	case err == nil:
		return common.ExitSuccess
	case !ran:
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return common.ExitUsageError
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, interruptMsg)
		return common.ExitInterrupt
	}
	fmt.Fprintln(stderr, "Fatal:", err)
	return common.ExitFailure
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	done := make(chan int, 1)
	go func() { done <- run(ctx, os.Args[1:], os.Stderr) }()

	var code int
	select {
	case code = <-done:
	case <-ctx.Done():
		select {
		case code = <-done:
		case <-time.After(graceTime):
			fmt.Fprintln(os.Stderr, interruptMsg)
			code = common.ExitInterrupt
		}
	}
	stop()
	os.Exit(code)
}
