package exec

import (
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

// execBranch covers beq/bne/blez/bgtz. A taken branch sets PC to the
// branch's own address plus the sign-extended, word-shifted offset;
// the caller's PC-advance-iff-unchanged check then leaves it there
// instead of adding 4, since a taken branch is exactly the case where
// PC changes during Step.
func execBranch(m *machine.Machine, instr isa.Instruction) error {
	rs := m.GetRegister(instr.Rs)

	taken := false
	switch instr.Opcode {
	case isa.OpBeq:
		taken = rs == m.GetRegister(instr.Rt)
	case isa.OpBne:
		taken = rs != m.GetRegister(instr.Rt)
	case isa.OpBlez:
		taken = int32(rs) <= 0
	case isa.OpBgtz:
		taken = int32(rs) > 0
	}

	if taken {
		offset := isa.SignExtend16(instr.Immediate) << 2
		m.SetPC(m.PC() + offset)
	}
	return nil
}
