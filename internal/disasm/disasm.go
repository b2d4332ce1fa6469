// Package disasm turns a raw instruction image back into readable
// mnemonic lines, the inverse of internal/asm's encoding half.
package disasm

import (
	"fmt"

	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
)

// Line is one disassembled word: its address, the raw word, and the
// mnemonic text a reader would type to reproduce it.
type Line struct {
	Addr uint32
	Word uint32
	Text string // "" if word did not decode to a known instruction
}

// Disassemble decodes every 4-byte-aligned word in image starting at
// base, skipping nothing: callers that only loaded a .text segment
// get a clean listing, and callers handing it raw data get a listing
// with undecodable lines left blank rather than a hard failure, since
// a disassembler's job is to report what it finds, not to validate.
func Disassemble(image []byte, base uint32) []Line {
	var lines []Line
	for off := 0; off+4 <= len(image); off += 4 {
		word := uint32(image[off]) | uint32(image[off+1])<<8 | uint32(image[off+2])<<16 | uint32(image[off+3])<<24
		line := Line{Addr: base + uint32(off), Word: word}
		if instr, err := isa.Decode(word); err == nil {
			line.Text = render(instr)
		}
		lines = append(lines, line)
	}
	return lines
}

func render(instr isa.Instruction) string {
	name, ok := isa.NameOf(instr)
	if !ok {
		return ""
	}
	switch instr.Kind {
	case isa.KindR:
		return renderR(name, instr)
	case isa.KindJ:
		return fmt.Sprintf("%s 0x%x", name, instr.Address<<2)
	default:
		return renderI(name, instr)
	}
}

func renderR(name string, i isa.Instruction) string {
	switch i.Funct {
	case isa.FnSll, isa.FnSrl, isa.FnSra:
		return fmt.Sprintf("%s %s, %s, %d", name, reg(i.Rd), reg(i.Rt), i.Shamt)
	case isa.FnSllv, isa.FnSrlv, isa.FnSrav:
		return fmt.Sprintf("%s %s, %s, %s", name, reg(i.Rd), reg(i.Rt), reg(i.Rs))
	case isa.FnJr, isa.FnMthi, isa.FnMtlo:
		return fmt.Sprintf("%s %s", name, reg(i.Rs))
	case isa.FnJalr:
		return fmt.Sprintf("%s %s, %s", name, reg(i.Rd), reg(i.Rs))
	case isa.FnMfhi, isa.FnMflo:
		return fmt.Sprintf("%s %s", name, reg(i.Rd))
	case isa.FnMult, isa.FnMultu, isa.FnDiv, isa.FnDivu:
		return fmt.Sprintf("%s %s, %s", name, reg(i.Rs), reg(i.Rt))
	default:
		return fmt.Sprintf("%s %s, %s, %s", name, reg(i.Rd), reg(i.Rs), reg(i.Rt))
	}
}

func renderI(name string, i isa.Instruction) string {
	switch i.Opcode {
	case isa.OpLb, isa.OpLbu, isa.OpLh, isa.OpLhu, isa.OpLw, isa.OpSb, isa.OpSh, isa.OpSw:
		return fmt.Sprintf("%s %s, %d(%s)", name, reg(i.Rt), int32(isa.SignExtend16(i.Immediate)), reg(i.Rs))
	case isa.OpBeq, isa.OpBne:
		return fmt.Sprintf("%s %s, %s, %d", name, reg(i.Rs), reg(i.Rt), int32(isa.SignExtend16(i.Immediate)))
	case isa.OpBlez, isa.OpBgtz:
		return fmt.Sprintf("%s %s, %d", name, reg(i.Rs), int32(isa.SignExtend16(i.Immediate)))
	case isa.OpTrap:
		return fmt.Sprintf("%s %d", name, i.Immediate)
	case isa.OpAndi, isa.OpOri, isa.OpXori, isa.OpLlo, isa.OpLhi:
		return fmt.Sprintf("%s %s, %s, 0x%x", name, reg(i.Rt), reg(i.Rs), i.Immediate)
	default:
		return fmt.Sprintf("%s %s, %s, %d", name, reg(i.Rt), reg(i.Rs), int32(isa.SignExtend16(i.Immediate)))
	}
}

func reg(r machine.Register) string { return r.Name() }
