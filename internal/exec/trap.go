package exec

import (
	"fmt"

	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// execTrap dispatches the six syscalls of spec §4.3 on the immediate
// carried by the trap instruction itself. The runtime loop terminates
// after any trap regardless of which syscall ran or whether it
// errored; execTrap only needs to perform the syscall's own effect.
func execTrap(m *machine.Machine, instr isa.Instruction, io *IO) error {
	switch isa.Syscall(instr.Immediate) {
	case isa.SyscallPrintInt:
		return printInt(m, io)
	case isa.SyscallPrintCharacter:
		return printCharacter(m, io)
	case isa.SyscallPrintString:
		return printString(m, io)
	case isa.SyscallReadInt:
		return readInt(m, io)
	case isa.SyscallReadCharacter:
		return readCharacter(m, io)
	case isa.SyscallExit:
		return nil
	default:
		return mipserr.New(mipserr.UnknownSyscall, "unknown syscall number %d", instr.Immediate)
	}
}

func printInt(m *machine.Machine, io *IO) error {
	v := int32(m.GetRegister(machine.A0))
	if _, err := fmt.Fprint(io.Out, v); err != nil {
		return mipserr.Wrap(mipserr.IoError, err, "print_int")
	}
	return io.flush()
}

func printCharacter(m *machine.Machine, io *IO) error {
	ch := byte(m.GetRegister(machine.A0) & 0xFF)
	if _, err := io.Out.Write([]byte{ch}); err != nil {
		return mipserr.Wrap(mipserr.IoError, err, "print_character")
	}
	return io.flush()
}

func printString(m *machine.Machine, io *IO) error {
	addr := m.GetRegister(machine.A0)
	for {
		b, err := m.Mem.ReadByte(addr)
		if err != nil {
			return err
		}
		if b == 0 {
			break
		}
		if _, err := io.Out.Write([]byte{b}); err != nil {
			return mipserr.Wrap(mipserr.IoError, err, "print_string")
		}
		addr++
	}
	return io.flush()
}

func readInt(m *machine.Machine, io *IO) error {
	var v int32
	if _, err := fmt.Fscan(io.In, &v); err != nil {
		return mipserr.Wrap(mipserr.IoError, err, "read_int")
	}
	m.SetRegister(machine.V0, uint32(v))
	return nil
}

func readCharacter(m *machine.Machine, io *IO) error {
	b, err := io.In.ReadByte()
	if err != nil {
		return mipserr.Wrap(mipserr.IoError, err, "read_character")
	}
	m.SetRegister(machine.V0, uint32(b))
	return nil
}
