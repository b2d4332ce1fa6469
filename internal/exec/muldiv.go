package exec

import (
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

// execHiLo covers the four single-register transfers to and from the
// HI/LO pair.
func execHiLo(m *machine.Machine, instr isa.Instruction) error {
	switch instr.Funct {
	case isa.FnMfhi:
		m.SetRegister(instr.Rd, m.HI())
	case isa.FnMflo:
		m.SetRegister(instr.Rd, m.LO())
	case isa.FnMthi:
		m.SetHI(m.GetRegister(instr.Rs))
	case isa.FnMtlo:
		m.SetLO(m.GetRegister(instr.Rs))
	}
	return nil
}

// execMulDiv covers mult/multu (64-bit product split across HI:LO) and
// div/divu (quotient in LO, remainder in HI). A zero divisor is a
// silent no-op: HI/LO are left exactly as they were.
func execMulDiv(m *machine.Machine, instr isa.Instruction) error {
	rs := m.GetRegister(instr.Rs)
	rt := m.GetRegister(instr.Rt)

	switch instr.Funct {
	case isa.FnMult:
		product := int64(int32(rs)) * int64(int32(rt))
		m.SetLO(uint32(product))
		m.SetHI(uint32(product >> 32))
	case isa.FnMultu:
		product := uint64(rs) * uint64(rt)
		m.SetLO(uint32(product))
		m.SetHI(uint32(product >> 32))
	case isa.FnDiv:
		if rt == 0 {
			return nil
		}
		a, b := int32(rs), int32(rt)
		m.SetLO(uint32(a / b))
		m.SetHI(uint32(a % b))
	case isa.FnDivu:
		if rt == 0 {
			return nil
		}
		m.SetLO(rs / rt)
		m.SetHI(rs % rt)
	}
	return nil
}
