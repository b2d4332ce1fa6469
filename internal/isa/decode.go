package isa

import (
	"github.com/Nour-HF/MIPS-Project/internal/machine"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// Decode dispatches on the top 6 bits of word: 0x00 decodes to R-form
// (Funct from the low 6 bits), 0x02/0x03 decode to J-form, everything
// else decodes to I-form. It does not reject unrecognized Funct/Opcode
// values itself — that is the executor's job, once it looks the
// decoded shape up in its own dense dispatch table — except that a
// major opcode with no I/J meaning at all is reported as unknown here.
func Decode(word uint32) (Instruction, error) {
	opcode := Opcode((word >> 26) & 0x3F)
	switch opcode {
	case OpRType:
		return decodeR(word), nil
	case OpJ, OpJal:
		return decodeJ(word, opcode), nil
	default:
		if !isKnownIOpcode(opcode) {
			return Instruction{}, mipserr.New(mipserr.UnknownInstruction, "unknown opcode 0x%02x in word 0x%08x", uint8(opcode), word)
		}
		return decodeI(word, opcode), nil
	}
}

func decodeR(word uint32) Instruction {
	return Instruction{
		Kind:  KindR,
		Rs:    machine.Register((word >> 21) & 0x1F),
		Rt:    machine.Register((word >> 16) & 0x1F),
		Rd:    machine.Register((word >> 11) & 0x1F),
		Shamt: uint8((word >> 6) & 0x1F),
		Funct: Funct(word & 0x3F),
	}
}

func decodeI(word uint32, opcode Opcode) Instruction {
	return Instruction{
		Kind:      KindI,
		Opcode:    opcode,
		Rs:        machine.Register((word >> 21) & 0x1F),
		Rt:        machine.Register((word >> 16) & 0x1F),
		Immediate: uint16(word & 0xFFFF),
	}
}

func decodeJ(word uint32, opcode Opcode) Instruction {
	return Instruction{
		Kind:    KindJ,
		Opcode:  opcode,
		Address: word & 0x03FFFFFF,
	}
}

func isKnownIOpcode(op Opcode) bool {
	switch op {
	case OpBeq, OpBne, OpBlez, OpBgtz, OpAddi, OpAddiu, OpSlti, OpSltiu,
		OpAndi, OpOri, OpXori, OpLlo, OpLhi, OpTrap,
		OpLb, OpLh, OpLw, OpLbu, OpLhu, OpSb, OpSh, OpSw:
		return true
	default:
		return false
	}
}
