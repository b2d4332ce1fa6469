// Package runtime drives the fetch-decode-execute loop over a loaded
// image: header detection, start-PC resolution, the step-limit
// watchdog, and the PC-advance-iff-unchanged discipline that lets
// branches, jumps and fall-through share one increment rule.
package runtime

import (
	"github.com/Nour-HF/MIPS-Project/internal/exec"
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// headerMagic is the optional 8-byte prefix a binary may carry: the
// ASCII bytes "MIPS" followed by a little-endian start address. When
// present, it is stripped before the remaining bytes are loaded at
// address 0, and it supplies the default start PC.
var headerMagic = [4]byte{'M', 'I', 'P', 'S'}

// DefaultStepLimit bounds how many instructions Run executes before
// giving up, guarding against a program that never traps.
const DefaultStepLimit = 100_000

// NoOverride is the start-address sentinel meaning "use the header or
// default to 0", passed by front ends that were not given -s.
const NoOverride = ^uint32(0)

// Options configures one run of the fetch-decode-execute loop.
type Options struct {
	StepLimit    uint64
	StartOverride uint32 // NoOverride if the caller did not pin a start PC
	IO           *exec.IO
	Trace        Tracer // nil disables per-step tracing
}

// Tracer receives one notification per executed step, used by -v to
// print a trace to stderr.
type Tracer interface {
	Step(step uint64, pc uint32, word uint32, instr isa.Instruction)
	HeaderDetected()
}

// Run loads image into a fresh machine and executes it until a trap
// instruction runs or an error occurs. It returns the final machine
// state so a caller (or the interactive debugger) can inspect
// registers and memory after termination.
func Run(image []byte, opts Options) (*machine.Machine, error) {
	if len(image) == 0 {
		return nil, mipserr.New(mipserr.IoError, "binary is empty")
	}

	startPC := uint32(0)
	headerFound := false
	if len(image) >= 8 && image[0] == headerMagic[0] && image[1] == headerMagic[1] &&
		image[2] == headerMagic[2] && image[3] == headerMagic[3] {
		startPC = uint32(image[4]) | uint32(image[5])<<8 | uint32(image[6])<<16 | uint32(image[7])<<24
		headerFound = true
		image = image[8:]
	}
	if opts.StartOverride != NoOverride {
		startPC = opts.StartOverride
	}

	m := machine.New(machine.DefaultMemorySize)
	if err := m.Mem.Load(0, image); err != nil {
		return nil, err
	}
	if !m.Mem.IsValidAddress(startPC, 0) {
		return nil, mipserr.New(mipserr.PcOutOfBounds, "start PC 0x%x is outside loaded binary memory", startPC)
	}
	m.SetPC(startPC)

	limit := opts.StepLimit
	if limit == 0 {
		limit = DefaultStepLimit
	}

	var steps uint64
	for {
		steps++
		if steps > limit {
			return m, mipserr.New(mipserr.StepLimitExceeded, "reached maximum instruction count limit of %d", limit)
		}

		pc := m.PC()
		if !m.Mem.IsValidAddress(pc, 4) {
			return m, mipserr.New(mipserr.PcOutOfBounds, "PC out of bounds at 0x%x", pc)
		}
		word, err := m.Mem.ReadWord(pc)
		if err != nil {
			return m, err
		}
		instr, err := isa.Decode(word)
		if err != nil {
			return m, err
		}

		if opts.Trace != nil {
			opts.Trace.Step(steps, pc, word, instr)
		}

		trapped, err := exec.Step(m, instr, opts.IO)
		if err != nil {
			return m, err
		}
		if m.PC() == pc {
			m.SetPC(pc + 4)
		}
		if trapped {
			break
		}
	}

	if headerFound && opts.Trace != nil {
		opts.Trace.HeaderDetected()
	}
	return m, nil
}
