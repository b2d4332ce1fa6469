package exec

import (
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

// jumpTarget composes a J-form target: the top 4 bits of PC+4 with the
// 26-bit field shifted left by 2, per spec §4.3.
func jumpTarget(pc uint32, address uint32) uint32 {
	pcPlus4 := pc + 4
	return (pcPlus4 & 0xF0000000) | (address << 2)
}

func execJ(m *machine.Machine, instr isa.Instruction) error {
	m.SetPC(jumpTarget(m.PC(), instr.Address))
	return nil
}

func execJal(m *machine.Machine, instr isa.Instruction) error {
	target := jumpTarget(m.PC(), instr.Address)
	m.SetRegister(machine.Ra, m.PC()+4)
	m.SetPC(target)
	return nil
}

func execJr(m *machine.Machine, instr isa.Instruction) error {
	m.SetPC(m.GetRegister(instr.Rs))
	return nil
}

// execJalr reads rs before writing rd, so `jalr $ra, $ra` still jumps
// to the value $ra held on entry.
func execJalr(m *machine.Machine, instr isa.Instruction) error {
	target := m.GetRegister(instr.Rs)
	m.SetRegister(instr.Rd, m.PC()+4)
	m.SetPC(target)
	return nil
}
