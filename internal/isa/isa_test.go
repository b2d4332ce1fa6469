package isa

import (
	"testing"

	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

func TestEncodeDecodeRoundTripR(t *testing.T) {
	in := Instruction{Kind: KindR, Rs: machine.T0, Rt: machine.T1, Rd: machine.T2, Funct: FnAdd}
	out, err := Decode(Encode(in))
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestEncodeDecodeRoundTripI(t *testing.T) {
	in := Instruction{Kind: KindI, Opcode: OpAddi, Rs: machine.T0, Rt: machine.T1, Immediate: 0xFFFE}
	out, err := Decode(Encode(in))
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestEncodeDecodeRoundTripJ(t *testing.T) {
	in := Instruction{Kind: KindJ, Opcode: OpJ, Address: 0x03FFFFFF}
	out, err := Decode(Encode(in))
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestSignExtend16(t *testing.T) {
	if got := SignExtend16(0x8000); got != 0xFFFF8000 {
		t.Fatalf("got 0x%x, want 0xFFFF8000", got)
	}
	if got := SignExtend16(0x7FFF); got != 0x00007FFF {
		t.Fatalf("got 0x%x, want 0x00007FFF", got)
	}
}

func TestZeroExtend16(t *testing.T) {
	if got := ZeroExtend16(0xFFFF); got != 0x0000FFFF {
		t.Fatalf("got 0x%x, want 0x0000FFFF", got)
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	word := uint32(0x3F) << 26 // opcode 0x3F is not assigned to anything
	if _, err := Decode(word); err == nil {
		t.Fatal("expected an error decoding an unassigned opcode")
	}
}

func TestJumpCompositionFormula(t *testing.T) {
	pc := uint32(0x1000)
	addr := uint32(0x40)
	got := (pc+4)&0xF0000000 | (addr << 2)
	if got != 0x100 {
		t.Fatalf("got 0x%x, want 0x100", got)
	}
}
