package machine

import (
	"testing"

	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

func TestLittleEndianWordRoundTrip(t *testing.T) {
	m := NewMemory(16)
	if err := m.WriteWord(0, 0x12345678); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x78, 0x56, 0x34, 0x12}
	for i, w := range want {
		b, err := m.ReadByte(uint32(i))
		if err != nil {
			t.Fatal(err)
		}
		if b != w {
			t.Fatalf("byte %d: got 0x%x, want 0x%x", i, b, w)
		}
	}
}

func TestReadWordOnTinyMemoryIsAccessViolation(t *testing.T) {
	m := NewMemory(2)
	_, err := m.ReadWord(0)
	if !mipserr.As(err, mipserr.MemoryAccessViolation) {
		t.Fatalf("expected MemoryAccessViolation, got %v", err)
	}
}

func TestZeroRegisterAlwaysReadsZero(t *testing.T) {
	mach := New(16)
	mach.SetRegister(Zero, 0xFFFFFFFF)
	if mach.GetRegister(Zero) != 0 {
		t.Fatal("register Zero must always read 0")
	}
}
