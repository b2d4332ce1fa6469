// Package cliutil holds the small pieces of front-end plumbing shared
// by the three command entry points: a colorized stderr stream and
// the Kind-to-exit-code diagnostic reporter they all rely on.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// Stderr returns an ANSI-capable writer over os.Stderr, colorized only
// when stderr is actually a terminal; piped or redirected output gets
// plain bytes.
func Stderr() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return colorable.NewColorable(os.Stderr)
	}
	return os.Stderr
}

// Fail prints a diagnostic for err to stderr and returns the process
// exit code spec.md §7 assigns to its Kind.
func Fail(err error) int {
	fmt.Fprintln(Stderr(), "error:", err)
	return mipserr.ExitCode(err)
}
