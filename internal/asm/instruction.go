package asm

import (
	"strings"

	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// parseInstructionLine parses one fully-reassembled instruction line
// (mnemonic plus comma-separated operands) into its encoded
// Instruction, resolving any label operand against labels. currentPC
// is the instruction's own absolute address, needed to turn a branch
// target into a PC-relative word offset.
func parseInstructionLine(line string, labels map[string]uint32, currentPC uint32) (isa.Instruction, error) {
	head, rest := splitMnemonic(line)
	mnemonic := strings.ToLower(head)
	m, ok := isa.LookupMnemonic(mnemonic)
	if !ok {
		return isa.Instruction{}, mipserr.New(mipserr.ParseError, "unknown instruction: %s", mnemonic)
	}
	fields := splitFields(rest)

	switch m.Kind {
	case isa.KindR:
		return parseRForm(m, fields)
	case isa.KindJ:
		return parseJForm(m, fields, labels)
	default:
		return parseIForm(m, fields, labels, currentPC)
	}
}

func parseRForm(m isa.Mnemonic, fields []string) (isa.Instruction, error) {
	instr := isa.Instruction{Kind: isa.KindR, Funct: m.Funct}

	switch m.Family {
	case isa.FamilyShiftImm:
		rd, rt, shStr, err := operand3(fields, m.Name)
		if err != nil {
			return instr, err
		}
		instr.Rd, err = parseRegister(rd)
		if err != nil {
			return instr, err
		}
		instr.Rt, err = parseRegister(rt)
		if err != nil {
			return instr, err
		}
		sh, ok := parseNumber(strings.TrimSpace(shStr))
		if !ok {
			return instr, mipserr.New(mipserr.ParseError, "invalid shift amount: %s", shStr)
		}
		instr.Shamt = uint8(sh) & 0x1F
	case isa.FamilyShiftReg:
		rd, rt, rs, err := operand3(fields, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rd, err = parseRegister(rd); err != nil {
			return instr, err
		}
		if instr.Rt, err = parseRegister(rt); err != nil {
			return instr, err
		}
		if instr.Rs, err = parseRegister(rs); err != nil {
			return instr, err
		}
	case isa.FamilyJr:
		rs, err := operand(fields, 0, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rs, err = parseRegister(rs); err != nil {
			return instr, err
		}
	case isa.FamilyJalr:
		if len(fields) == 1 {
			rs, err := parseRegister(fields[0])
			if err != nil {
				return instr, err
			}
			instr.Rs = rs
			instr.Rd = machine.Ra
		} else {
			rd, rs, err := operand2(fields, m.Name)
			if err != nil {
				return instr, err
			}
			if instr.Rd, err = parseRegister(rd); err != nil {
				return instr, err
			}
			if instr.Rs, err = parseRegister(rs); err != nil {
				return instr, err
			}
		}
	case isa.FamilyMfHiLo:
		rd, err := operand(fields, 0, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rd, err = parseRegister(rd); err != nil {
			return instr, err
		}
	case isa.FamilyMtHiLo:
		rs, err := operand(fields, 0, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rs, err = parseRegister(rs); err != nil {
			return instr, err
		}
	case isa.FamilyMulDiv:
		rs, rt, err := operand2(fields, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rs, err = parseRegister(rs); err != nil {
			return instr, err
		}
		if instr.Rt, err = parseRegister(rt); err != nil {
			return instr, err
		}
	default: // FamilyArith3: op rd, rs, rt
		rd, rs, rt, err := operand3(fields, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rd, err = parseRegister(rd); err != nil {
			return instr, err
		}
		if instr.Rs, err = parseRegister(rs); err != nil {
			return instr, err
		}
		if instr.Rt, err = parseRegister(rt); err != nil {
			return instr, err
		}
	}
	return instr, nil
}

func parseIForm(m isa.Mnemonic, fields []string, labels map[string]uint32, currentPC uint32) (isa.Instruction, error) {
	instr := isa.Instruction{Kind: isa.KindI, Opcode: m.Opcode}

	switch m.Family {
	case isa.FamilyMem:
		rt, mem, err := operand2(fields, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rt, err = parseRegister(rt); err != nil {
			return instr, err
		}
		offset, base, err := parseMemoryOperand(mem)
		if err != nil {
			return instr, err
		}
		instr.Rs = base
		instr.Immediate = uint16(offset)
	case isa.FamilyBranchEq:
		rs, rt, label, err := operand3(fields, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rs, err = parseRegister(rs); err != nil {
			return instr, err
		}
		if instr.Rt, err = parseRegister(rt); err != nil {
			return instr, err
		}
		offset, err := branchOffset(label, labels, currentPC)
		if err != nil {
			return instr, err
		}
		instr.Immediate = offset
	case isa.FamilyBranchZ:
		rs, label, err := operand2(fields, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rs, err = parseRegister(rs); err != nil {
			return instr, err
		}
		offset, err := branchOffset(label, labels, currentPC)
		if err != nil {
			return instr, err
		}
		instr.Immediate = offset
	case isa.FamilyTrap:
		if len(fields) >= 1 {
			imm, err := parseImmediate(fields[0], labels)
			if err != nil {
				return instr, err
			}
			instr.Immediate = uint16(imm & 0xFFFF)
		}
	default: // FamilyImmArith: op rt, rs, imm
		rt, rs, immStr, err := operand3(fields, m.Name)
		if err != nil {
			return instr, err
		}
		if instr.Rt, err = parseRegister(rt); err != nil {
			return instr, err
		}
		if instr.Rs, err = parseRegister(rs); err != nil {
			return instr, err
		}
		if m.ZeroExtends {
			imm, err := parseImmediate(immStr, labels)
			if err != nil {
				return instr, err
			}
			instr.Immediate = uint16(imm & 0xFFFF)
		} else {
			imm, err := parseSignedImmediate(immStr, labels)
			if err != nil {
				return instr, err
			}
			instr.Immediate = uint16(uint32(imm) & 0xFFFF)
		}
	}
	return instr, nil
}

func parseJForm(m isa.Mnemonic, fields []string, labels map[string]uint32) (isa.Instruction, error) {
	instr := isa.Instruction{Kind: isa.KindJ, Opcode: m.Opcode}
	target, err := operand(fields, 0, m.Name)
	if err != nil {
		return instr, err
	}
	addr, ok := labels[target]
	if !ok {
		addr, err = parseImmediate(target, labels)
		if err != nil {
			return instr, err
		}
	}
	instr.Address = (addr >> 2) & 0x03FFFFFF
	return instr, nil
}

// branchOffset turns a branch's target label into the PC-relative,
// word-granularity signed offset the encoded immediate carries:
// (target - (currentPC + 4)) / 4.
func branchOffset(label string, labels map[string]uint32, currentPC uint32) (uint16, error) {
	target, ok := labels[label]
	if !ok {
		return 0, mipserr.New(mipserr.ParseError, "unknown label in branch: %s", label)
	}
	diff := int32(target) - int32(currentPC+4)
	offset := diff / 4
	return uint16(uint32(offset) & 0xFFFF), nil
}

func operand2(fields []string, name string) (string, string, error) {
	a, err := operand(fields, 0, name)
	if err != nil {
		return "", "", err
	}
	b, err := operand(fields, 1, name)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

func operand3(fields []string, name string) (string, string, string, error) {
	a, b, err := operand2(fields, name)
	if err != nil {
		return "", "", "", err
	}
	c, err := operand(fields, 2, name)
	if err != nil {
		return "", "", "", err
	}
	return a, b, c, nil
}
