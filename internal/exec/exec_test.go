package exec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

func newTestIO(in string) (*IO, *bytes.Buffer) {
	var out bytes.Buffer
	return NewStdIO(strings.NewReader(in), &out), &out
}

func TestAddOverflowWraps(t *testing.T) {
	m := machine.New(machine.DefaultMemorySize)
	m.SetRegister(machine.T0, 0x7FFFFFFF)
	m.SetRegister(machine.T1, 1)
	instr := isa.Instruction{Kind: isa.KindR, Funct: isa.FnAdd, Rs: machine.T0, Rt: machine.T1, Rd: machine.T2}
	if _, err := Step(m, instr, nil); err != nil {
		t.Fatal(err)
	}
	if got := m.GetRegister(machine.T2); got != 0x80000000 {
		t.Fatalf("add overflow: got 0x%x, want 0x80000000", got)
	}
}

func TestZeroRegisterDiscardsWrites(t *testing.T) {
	m := machine.New(machine.DefaultMemorySize)
	instr := isa.Instruction{Kind: isa.KindR, Funct: isa.FnAddu, Rs: machine.Zero, Rt: machine.Zero, Rd: machine.Zero}
	if _, err := Step(m, instr, nil); err != nil {
		t.Fatal(err)
	}
	if m.GetRegister(machine.Zero) != 0 {
		t.Fatal("write to $zero must not persist")
	}
}

func TestDivByZeroIsNoOp(t *testing.T) {
	m := machine.New(machine.DefaultMemorySize)
	m.SetHI(0xAAAAAAAA)
	m.SetLO(0xBBBBBBBB)
	m.SetRegister(machine.T0, 42)
	m.SetRegister(machine.T1, 0)
	instr := isa.Instruction{Kind: isa.KindR, Funct: isa.FnDiv, Rs: machine.T0, Rt: machine.T1}
	if _, err := Step(m, instr, nil); err != nil {
		t.Fatal(err)
	}
	if m.HI() != 0xAAAAAAAA || m.LO() != 0xBBBBBBBB {
		t.Fatal("division by zero must leave HI/LO untouched")
	}
}

func TestBranchTakenTargetsPcPlusOffset(t *testing.T) {
	m := machine.New(machine.DefaultMemorySize)
	m.SetPC(0x1000)
	m.SetRegister(machine.T0, 5)
	m.SetRegister(machine.T1, 5)
	instr := isa.Instruction{Kind: isa.KindI, Opcode: isa.OpBeq, Rs: machine.T0, Rt: machine.T1, Immediate: 4}
	if _, err := Step(m, instr, nil); err != nil {
		t.Fatal(err)
	}
	if want := uint32(0x1000 + 4*4); m.PC() != want {
		t.Fatalf("branch target: got 0x%x, want 0x%x", m.PC(), want)
	}
}

func TestJalStoresReturnAddressBeforeJump(t *testing.T) {
	m := machine.New(machine.DefaultMemorySize)
	m.SetPC(0x400000)
	instr := isa.Instruction{Kind: isa.KindJ, Opcode: isa.OpJal, Address: 0x10}
	if _, err := Step(m, instr, nil); err != nil {
		t.Fatal(err)
	}
	if got := m.GetRegister(machine.Ra); got != 0x400004 {
		t.Fatalf("$ra: got 0x%x, want 0x400004", got)
	}
	want := (uint32(0x400004) & 0xF0000000) | (0x10 << 2)
	if m.PC() != want {
		t.Fatalf("jal target: got 0x%x, want 0x%x", m.PC(), want)
	}
}

func TestLloPreservesUpperHalf(t *testing.T) {
	m := machine.New(machine.DefaultMemorySize)
	m.SetRegister(machine.T0, 0xDEAD0000)
	instr := isa.Instruction{Kind: isa.KindI, Opcode: isa.OpLlo, Rt: machine.T0, Immediate: 0xBEEF}
	if _, err := Step(m, instr, nil); err != nil {
		t.Fatal(err)
	}
	if got := m.GetRegister(machine.T0); got != 0xDEADBEEF {
		t.Fatalf("llo: got 0x%x, want 0xDEADBEEF", got)
	}
}

func TestLoadByteSignExtends(t *testing.T) {
	m := machine.New(machine.DefaultMemorySize)
	if err := m.Mem.WriteByte(0x100, 0xFF); err != nil {
		t.Fatal(err)
	}
	m.SetRegister(machine.T0, 0x100)
	instr := isa.Instruction{Kind: isa.KindI, Opcode: isa.OpLb, Rs: machine.T0, Rt: machine.T1}
	if _, err := Step(m, instr, nil); err != nil {
		t.Fatal(err)
	}
	if got := m.GetRegister(machine.T1); got != 0xFFFFFFFF {
		t.Fatalf("lb sign-extend: got 0x%x, want 0xFFFFFFFF", got)
	}
}

func TestTrapPrintIntFlushesOutput(t *testing.T) {
	m := machine.New(machine.DefaultMemorySize)
	io, out := newTestIO("")
	m.SetRegister(machine.A0, 42)
	instr := isa.Instruction{Kind: isa.KindI, Opcode: isa.OpTrap, Immediate: uint16(isa.SyscallPrintInt)}
	trapped, err := Step(m, instr, io)
	if err != nil {
		t.Fatal(err)
	}
	if !trapped {
		t.Fatal("trap must report trapped=true")
	}
	if out.String() != "42" {
		t.Fatalf("print_int output: got %q, want %q", out.String(), "42")
	}
}

func TestTrapAlwaysReportsTrappedRegardlessOfSyscall(t *testing.T) {
	m := machine.New(machine.DefaultMemorySize)
	io, _ := newTestIO("")
	instr := isa.Instruction{Kind: isa.KindI, Opcode: isa.OpTrap, Immediate: uint16(isa.SyscallExit)}
	trapped, err := Step(m, instr, io)
	if err != nil {
		t.Fatal(err)
	}
	if !trapped {
		t.Fatal("exit syscall must still report trapped=true")
	}
}
