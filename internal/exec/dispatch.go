// Package exec carries out the semantic effect of one decoded
// Instruction against a machine.Machine. Dispatch is a dense switch on
// Kind and then Opcode/Funct, not a name-keyed map: the set of
// instructions is closed, so the compiler should check it rather than
// a lookup table failing at run time.
package exec

import (
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// Step applies instr to m. It reports trapped=true when instr was a
// trap, regardless of which syscall it requested: the runtime loop
// terminates on any trap, so the caller never needs to know which one.
// Step never advances PC itself for the fall-through case; the caller
// compares PC before and after to decide whether to add 4, per the
// PC-advance-iff-unchanged discipline.
func Step(m *machine.Machine, instr isa.Instruction, io *IO) (trapped bool, err error) {
	switch instr.Kind {
	case isa.KindR:
		return false, stepR(m, instr)
	case isa.KindJ:
		return false, stepJ(m, instr)
	default:
		return stepI(m, instr, io)
	}
}

func stepR(m *machine.Machine, instr isa.Instruction) error {
	switch instr.Funct {
	case isa.FnSll, isa.FnSrl, isa.FnSra, isa.FnSllv, isa.FnSrlv, isa.FnSrav:
		return execShift(m, instr)
	case isa.FnJr:
		return execJr(m, instr)
	case isa.FnJalr:
		return execJalr(m, instr)
	case isa.FnMfhi, isa.FnMflo, isa.FnMthi, isa.FnMtlo:
		return execHiLo(m, instr)
	case isa.FnMult, isa.FnMultu, isa.FnDiv, isa.FnDivu:
		return execMulDiv(m, instr)
	case isa.FnAdd, isa.FnAddu, isa.FnSub, isa.FnSubu,
		isa.FnAnd, isa.FnOr, isa.FnXor, isa.FnNor,
		isa.FnSlt, isa.FnSltu:
		return execAlu(m, instr)
	default:
		return mipserr.New(mipserr.UnknownInstruction, "unhandled funct 0x%02x", uint8(instr.Funct))
	}
}

func stepI(m *machine.Machine, instr isa.Instruction, io *IO) (bool, error) {
	switch instr.Opcode {
	case isa.OpBeq, isa.OpBne, isa.OpBlez, isa.OpBgtz:
		return false, execBranch(m, instr)
	case isa.OpAddi, isa.OpAddiu, isa.OpSlti, isa.OpSltiu,
		isa.OpAndi, isa.OpOri, isa.OpXori, isa.OpLlo, isa.OpLhi:
		return false, execImmediate(m, instr)
	case isa.OpLb, isa.OpLh, isa.OpLw, isa.OpLbu, isa.OpLhu,
		isa.OpSb, isa.OpSh, isa.OpSw:
		return false, execMem(m, instr)
	case isa.OpTrap:
		return true, execTrap(m, instr, io)
	default:
		return false, mipserr.New(mipserr.UnknownInstruction, "unhandled opcode 0x%02x", uint8(instr.Opcode))
	}
}

func stepJ(m *machine.Machine, instr isa.Instruction) error {
	switch instr.Opcode {
	case isa.OpJ:
		return execJ(m, instr)
	case isa.OpJal:
		return execJal(m, instr)
	default:
		return mipserr.New(mipserr.UnknownInstruction, "unhandled jump opcode 0x%02x", uint8(instr.Opcode))
	}
}
