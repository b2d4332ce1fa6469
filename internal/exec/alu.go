package exec

import (
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

// execAlu covers the R-form arithmetic/logic/compare family: rd <- f(rs, rt).
// Overflow wraps silently in both the signed and unsigned variants, since
// two's-complement addition/subtraction is bit-identical either way at a
// fixed width; add/addu and sub/subu are therefore implemented identically.
func execAlu(m *machine.Machine, instr isa.Instruction) error {
	rs := m.GetRegister(instr.Rs)
	rt := m.GetRegister(instr.Rt)

	var result uint32
	switch instr.Funct {
	case isa.FnAdd, isa.FnAddu:
		result = rs + rt
	case isa.FnSub, isa.FnSubu:
		result = rs - rt
	case isa.FnAnd:
		result = rs & rt
	case isa.FnOr:
		result = rs | rt
	case isa.FnXor:
		result = rs ^ rt
	case isa.FnNor:
		result = ^(rs | rt)
	case isa.FnSlt:
		result = boolToWord(int32(rs) < int32(rt))
	case isa.FnSltu:
		result = boolToWord(rs < rt)
	}
	m.SetRegister(instr.Rd, result)
	return nil
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
