package exec

import (
	"bufio"
	"io"
)

// Flusher is satisfied by any output sink the trap handlers must flush
// after every print, per spec §4.3/§6.
type Flusher interface {
	Flush() error
}

// IO bundles the syscall boundary's input source and output sink. Out
// should be a *bufio.Writer (or any Flusher) so PrintInt/PrintChar/
// PrintString can flush deterministically after each write.
type IO struct {
	In  *bufio.Reader
	Out io.Writer
}

func (io_ *IO) flush() error {
	if f, ok := io_.Out.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// NewStdIO wraps the given reader/writer pair the way both front ends
// construct their syscall boundary, using a buffered writer so output
// is flushed explicitly rather than left to the runtime's own
// buffering.
func NewStdIO(in io.Reader, out io.Writer) *IO {
	return &IO{In: bufio.NewReader(in), Out: bufio.NewWriter(out)}
}
