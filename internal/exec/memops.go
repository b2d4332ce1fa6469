package exec

import (
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

// execMem covers every load/store: address is always rs plus a
// sign-extended 16-bit offset; loads of less than a word choose
// sign- or zero-extension by opcode, stores always truncate rt.
func execMem(m *machine.Machine, instr isa.Instruction) error {
	addr := m.GetRegister(instr.Rs) + isa.SignExtend16(instr.Immediate)

	switch instr.Opcode {
	case isa.OpLb:
		v, err := m.Mem.ReadByte(addr)
		if err != nil {
			return err
		}
		m.SetRegister(instr.Rt, isa.SignExtend8(v))
	case isa.OpLbu:
		v, err := m.Mem.ReadByte(addr)
		if err != nil {
			return err
		}
		m.SetRegister(instr.Rt, isa.ZeroExtend8(v))
	case isa.OpLh:
		v, err := m.Mem.ReadHalf(addr)
		if err != nil {
			return err
		}
		m.SetRegister(instr.Rt, isa.SignExtend16(v))
	case isa.OpLhu:
		v, err := m.Mem.ReadHalf(addr)
		if err != nil {
			return err
		}
		m.SetRegister(instr.Rt, isa.ZeroExtend16(v))
	case isa.OpLw:
		v, err := m.Mem.ReadWord(addr)
		if err != nil {
			return err
		}
		m.SetRegister(instr.Rt, v)
	case isa.OpSb:
		return m.Mem.WriteByte(addr, byte(m.GetRegister(instr.Rt)))
	case isa.OpSh:
		return m.Mem.WriteHalf(addr, uint16(m.GetRegister(instr.Rt)))
	case isa.OpSw:
		return m.Mem.WriteWord(addr, m.GetRegister(instr.Rt))
	}
	return nil
}
