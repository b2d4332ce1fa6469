package runtime

import (
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Nour-HF/MIPS-Project/internal/isa"
)

// StderrTracer prints one pp-formatted line per executed step to an
// ANSI-capable stderr, in the pp.Fprintf(os.Stderr, ...) style of the
// teacher project's assembler (see DESIGN.md).
type StderrTracer struct {
	out io.Writer
	msg *message.Printer
}

// NewStderrTracer wraps stderr in a colorable writer when it's a
// terminal, and leaves escape codes out entirely when it's piped or
// redirected.
func NewStderrTracer(stderr *os.File) *StderrTracer {
	out := io.Writer(stderr)
	if isatty.IsTerminal(stderr.Fd()) || isatty.IsCygwinTerminal(stderr.Fd()) {
		out = colorable.NewColorable(stderr)
	}
	return &StderrTracer{out: out, msg: message.NewPrinter(language.English)}
}

// Step count is printed with a thousands separator since a trace that
// runs anywhere near the step limit otherwise turns into an unreadable
// run of digits.
func (t *StderrTracer) Step(step uint64, pc uint32, word uint32, instr isa.Instruction) {
	name, _ := isa.NameOf(instr)
	line := t.msg.Sprintf("step %d PC=0x%x word=0x%x -> %s %s", step, pc, word, name, describeOperands(instr))
	pp.Fprintf(t.out, "%s\n", line)
}

func (t *StderrTracer) HeaderDetected() {
	pp.Fprintln(t.out, "header detected: 'MIPS' header used to set start PC")
}

func describeOperands(instr isa.Instruction) string {
	switch instr.Kind {
	case isa.KindR:
		return pp.Sprintf("R(funct=%v rs=%v rt=%v rd=%v shamt=%v)", instr.Funct, instr.Rs, instr.Rt, instr.Rd, instr.Shamt)
	case isa.KindJ:
		return pp.Sprintf("J(opcode=%v addr=0x%x)", instr.Opcode, instr.Address<<2)
	default:
		return pp.Sprintf("I(opcode=%v rs=%v rt=%v imm=0x%x)", instr.Opcode, instr.Rs, instr.Rt, instr.Immediate)
	}
}
