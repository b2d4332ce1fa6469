package asm

import (
	"testing"

	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

func TestAssembleSimpleAddition(t *testing.T) {
	src := `
.text
main:
    addi $t0, $zero, 5
    addi $t1, $zero, 7
    add  $t2, $t0, $t1
    trap 5
`
	res, err := Assemble(src)
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasMain || res.MainAddress != 0 {
		t.Fatalf("main label: got hasMain=%v addr=%d", res.HasMain, res.MainAddress)
	}
	if len(res.Image) != 16 {
		t.Fatalf("image length: got %d, want 16 (4 instructions)", len(res.Image))
	}
	word := func(i int) uint32 {
		b := res.Image[i*4 : i*4+4]
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	instr, err := isa.Decode(word(2))
	if err != nil {
		t.Fatal(err)
	}
	if instr.Funct != isa.FnAdd {
		t.Fatalf("third instruction funct: got %v, want FnAdd", instr.Funct)
	}
}

func TestAssembleBranchOffsetIsPcRelative(t *testing.T) {
	src := `
.text
loop:
    addi $t0, $t0, -1
    bne  $t0, $zero, loop
    trap 5
`
	res, err := Assemble(src)
	if err != nil {
		t.Fatal(err)
	}
	word := uint32(res.Image[4]) | uint32(res.Image[5])<<8 | uint32(res.Image[6])<<16 | uint32(res.Image[7])<<24
	instr, err := isa.Decode(word)
	if err != nil {
		t.Fatal(err)
	}
	// bne sits at 4 and loop at 0: (0 - (4 + 4)) / 4 = -2 words.
	negTwo := int32(-2)
	if instr.Immediate != uint16(uint32(negTwo)&0xFFFF) {
		t.Fatalf("branch back to loop: got immediate 0x%x, want 0xfffe (-2 words)", instr.Immediate)
	}
}

func TestAssembleDataSectionFollowsText(t *testing.T) {
	src := `
.text
main:
    addi $t0, $zero, msg
    trap 5
.data
msg:
    .asciiz "hi"
`
	res, err := Assemble(src)
	if err != nil {
		t.Fatal(err)
	}
	wantMsgAddr := uint32(8) // two text instructions
	if res.Labels["msg"] != wantMsgAddr {
		t.Fatalf("msg label: got %d, want %d", res.Labels["msg"], wantMsgAddr)
	}
	if res.Image[wantMsgAddr] != 'h' || res.Image[wantMsgAddr+1] != 'i' || res.Image[wantMsgAddr+2] != 0 {
		t.Fatalf("asciiz payload at msg: got %v", res.Image[wantMsgAddr:wantMsgAddr+3])
	}
}

func TestAssembleUnknownMnemonicIsParseError(t *testing.T) {
	_, err := Assemble(".text\n    frobnicate $t0, $t1\n")
	if !mipserr.As(err, mipserr.ParseError) {
		t.Fatalf("expected a parse error for an unknown mnemonic, got %v", err)
	}
}
