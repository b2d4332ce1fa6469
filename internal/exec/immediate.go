package exec

import (
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

// execImmediate covers the I-form arithmetic/logic/compare family plus
// llo/lhi. andi/ori/xori/llo/lhi zero-extend their 16-bit immediate;
// everything else sign-extends it.
func execImmediate(m *machine.Machine, instr isa.Instruction) error {
	rs := m.GetRegister(instr.Rs)

	var result uint32
	switch instr.Opcode {
	case isa.OpAddi, isa.OpAddiu:
		result = rs + isa.SignExtend16(instr.Immediate)
	case isa.OpSlti:
		result = boolToWord(int32(rs) < int32(isa.SignExtend16(instr.Immediate)))
	case isa.OpSltiu:
		result = boolToWord(rs < isa.SignExtend16(instr.Immediate))
	case isa.OpAndi:
		result = rs & isa.ZeroExtend16(instr.Immediate)
	case isa.OpOri:
		result = rs | isa.ZeroExtend16(instr.Immediate)
	case isa.OpXori:
		result = rs ^ isa.ZeroExtend16(instr.Immediate)
	case isa.OpLlo:
		// rt supplies both the untouched upper half and the destination:
		// reading and writing the same register is the documented shape,
		// not an oversight.
		rt := m.GetRegister(instr.Rt)
		result = (rt & 0xFFFF0000) | uint32(instr.Immediate)
	case isa.OpLhi:
		rt := m.GetRegister(instr.Rt)
		result = (rt & 0x0000FFFF) | (uint32(instr.Immediate) << 16)
	}
	m.SetRegister(instr.Rt, result)
	return nil
}
