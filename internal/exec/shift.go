package exec

import (
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

// execShift covers sll/srl/sra (shift amount in Shamt) and
// sllv/srlv/srav (shift amount in the low 5 bits of rs).
func execShift(m *machine.Machine, instr isa.Instruction) error {
	rt := m.GetRegister(instr.Rt)

	shamt := instr.Shamt
	switch instr.Funct {
	case isa.FnSllv, isa.FnSrlv, isa.FnSrav:
		shamt = uint8(m.GetRegister(instr.Rs) & 0x1F)
	}

	var result uint32
	switch instr.Funct {
	case isa.FnSll, isa.FnSllv:
		result = rt << shamt
	case isa.FnSrl, isa.FnSrlv:
		result = rt >> shamt
	case isa.FnSra, isa.FnSrav:
		result = uint32(int32(rt) >> shamt)
	}
	m.SetRegister(instr.Rd, result)
	return nil
}
