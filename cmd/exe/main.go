// Command exe loads and runs a binary image:
// exe input.bin [-v] [-m N] [-s addr] [-i].
package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/Nour-HF/MIPS-Project/internal/cliutil"
	"github.com/Nour-HF/MIPS-Project/internal/debugger"
	"github.com/Nour-HF/MIPS-Project/internal/exec"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
	"github.com/Nour-HF/MIPS-Project/internal/runtime"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("exe", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "trace every step to stderr")
	maxSteps := fs.Uint64("m", 0, "override the step limit (default 100000)")
	startStr := fs.String("s", "", "force the start PC, overriding any header")
	interactive := fs.Bool("i", false, "step through the program in an interactive debugger")
	if err := fs.Parse(args); err != nil {
		return cliutil.Fail(mipserr.Wrap(mipserr.IoError, err, "parsing flags"))
	}
	if fs.NArg() != 1 {
		return cliutil.Fail(mipserr.New(mipserr.IoError, "usage: exe input.bin [-v] [-m N] [-s addr] [-i]"))
	}

	image, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return cliutil.Fail(mipserr.Wrap(mipserr.IoError, err, "reading %s", fs.Arg(0)))
	}

	startOverride := runtime.NoOverride
	if *startStr != "" {
		n, err := strconv.ParseUint(*startStr, 0, 32)
		if err != nil {
			return cliutil.Fail(mipserr.Wrap(mipserr.IoError, err, "parsing -s %s", *startStr))
		}
		startOverride = uint32(n)
	}

	opts := runtime.Options{
		StepLimit:     *maxSteps,
		StartOverride: startOverride,
		IO:            exec.NewStdIO(os.Stdin, os.Stdout),
	}
	if *verbose {
		opts.Trace = runtime.NewStderrTracer(os.Stderr)
	}

	if *interactive {
		if err := debugger.Run(image, opts); err != nil {
			return cliutil.Fail(err)
		}
		return 0
	}

	if _, err := runtime.Run(image, opts); err != nil {
		return cliutil.Fail(err)
	}
	return 0
}
