// Command asm assembles MIPS-like assembly text into a flat binary
// image: asm [input.asm [output.bin]].
package main

import (
	"io"
	"os"

	"github.com/Nour-HF/MIPS-Project/internal/asm"
	"github.com/Nour-HF/MIPS-Project/internal/cliutil"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

func main() {
	os.Exit(run())
}

func run() int {
	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout

	switch len(os.Args) {
	case 1:
	case 2:
		f, err := os.Open(os.Args[1])
		if err != nil {
			return cliutil.Fail(mipserr.Wrap(mipserr.IoError, err, "opening %s", os.Args[1]))
		}
		defer f.Close()
		in = f
	case 3:
		f, err := os.Open(os.Args[1])
		if err != nil {
			return cliutil.Fail(mipserr.Wrap(mipserr.IoError, err, "opening %s", os.Args[1]))
		}
		defer f.Close()
		in = f

		o, err := os.Create(os.Args[2])
		if err != nil {
			return cliutil.Fail(mipserr.Wrap(mipserr.IoError, err, "creating %s", os.Args[2]))
		}
		defer o.Close()
		out = o
	default:
		return cliutil.Fail(mipserr.New(mipserr.ParseError, "usage: asm [input.asm [output.bin]]"))
	}

	source, err := io.ReadAll(in)
	if err != nil {
		return cliutil.Fail(mipserr.Wrap(mipserr.IoError, err, "reading input"))
	}

	result, err := asm.Assemble(string(source))
	if err != nil {
		return cliutil.Fail(err)
	}

	if _, err := out.Write(result.Image); err != nil {
		return cliutil.Fail(mipserr.Wrap(mipserr.IoError, err, "writing output"))
	}
	return 0
}
