package machine

// Machine is the full mutable state of one run: 32 general registers
// (register Zero always reads as 0 and discards writes), the program
// counter, HI/LO, and main memory. A fresh Machine has every register,
// PC, HI and LO set to 0.
type Machine struct {
	regs [NumRegisters]uint32
	pc   uint32
	hi   uint32
	lo   uint32
	Mem  *Memory
}

// New constructs a Machine with a memSize-byte memory region, all
// other state zeroed.
func New(memSize uint32) *Machine {
	return &Machine{Mem: NewMemory(memSize)}
}

// GetRegister reads register r. Reading Zero always yields 0.
func (m *Machine) GetRegister(r Register) uint32 {
	if r == Zero {
		return 0
	}
	return m.regs[r]
}

// SetRegister writes register r. Writing Zero is a silent no-op.
func (m *Machine) SetRegister(r Register, v uint32) {
	if r == Zero {
		return
	}
	m.regs[r] = v
}

// PC returns the program counter.
func (m *Machine) PC() uint32 { return m.pc }

// SetPC sets the program counter.
func (m *Machine) SetPC(v uint32) { m.pc = v }

// HI returns the HI register used by multiply/divide.
func (m *Machine) HI() uint32 { return m.hi }

// LO returns the LO register used by multiply/divide.
func (m *Machine) LO() uint32 { return m.lo }

// SetHI sets the HI register.
func (m *Machine) SetHI(v uint32) { m.hi = v }

// SetLO sets the LO register.
func (m *Machine) SetLO(v uint32) { m.lo = v }
