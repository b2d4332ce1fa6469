// Command interp assembles and immediately runs assembly text in one
// process: interp input.asm. The assembled program must define a
// `main` label; execution starts there.
package main

import (
	"os"

	"github.com/Nour-HF/MIPS-Project/internal/asm"
	"github.com/Nour-HF/MIPS-Project/internal/cliutil"
	"github.com/Nour-HF/MIPS-Project/internal/exec"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
	"github.com/Nour-HF/MIPS-Project/internal/runtime"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != 2 {
		return cliutil.Fail(mipserr.New(mipserr.IoError, "usage: interp input.asm"))
	}

	source, err := os.ReadFile(os.Args[1])
	if err != nil {
		return cliutil.Fail(mipserr.Wrap(mipserr.IoError, err, "reading %s", os.Args[1]))
	}

	result, err := asm.Assemble(string(source))
	if err != nil {
		return cliutil.Fail(err)
	}
	if !result.HasMain {
		return cliutil.Fail(mipserr.New(mipserr.ParseError, "assembly does not define a main label"))
	}

	opts := runtime.Options{
		StartOverride: result.MainAddress,
		IO:            exec.NewStdIO(os.Stdin, os.Stdout),
	}
	if _, err := runtime.Run(result.Image, opts); err != nil {
		return cliutil.Fail(err)
	}
	return 0
}
