package isa

// Family groups mnemonics by the source operand shape spec.md §4.4
// assigns them, so the assembler can dispatch operand parsing from
// the mnemonic table. The disassembler does not use it; it groups its
// rendering by Opcode/Funct itself.
type Family uint8

const (
	FamilyArith3   Family = iota // op rd, rs, rt
	FamilyShiftImm               // op rd, rt, shamt (rs = 0)
	FamilyShiftReg               // op rd, rt, rs
	FamilyMfHiLo                 // op rd
	FamilyMtHiLo                 // op rs
	FamilyMulDiv                 // op rs, rt
	FamilyJr                     // jr rs
	FamilyJalr                   // jalr rs | jalr rd, rs
	FamilyImmArith               // op rt, rs, imm
	FamilyBranchEq               // op rs, rt, label
	FamilyBranchZ                // op rs, label
	FamilyMem                    // op rt, offset(base)
	FamilyJump                   // op label_or_address
	FamilyTrap                   // trap | trap imm
)

// Mnemonic is the static description of one instruction name: its
// encoding shape and the source-operand family it belongs to.
type Mnemonic struct {
	Name        string
	Kind        Kind
	Opcode      Opcode
	Funct       Funct
	Family      Family
	ZeroExtends bool // andi/ori/xori zero-extend their immediate
}

// mnemonics is the single source of truth for name<->encoding lookup,
// consulted by the assembler (name -> encoding) and the disassembler
// (encoding -> name). It is a lookup table for text tooling, not the
// executor's runtime dispatch, which switches densely on Opcode/Funct
// instead (see internal/exec).
var mnemonics = []Mnemonic{
	{Name: "add", Kind: KindR, Funct: FnAdd, Family: FamilyArith3},
	{Name: "addu", Kind: KindR, Funct: FnAddu, Family: FamilyArith3},
	{Name: "sub", Kind: KindR, Funct: FnSub, Family: FamilyArith3},
	{Name: "subu", Kind: KindR, Funct: FnSubu, Family: FamilyArith3},
	{Name: "and", Kind: KindR, Funct: FnAnd, Family: FamilyArith3},
	{Name: "or", Kind: KindR, Funct: FnOr, Family: FamilyArith3},
	{Name: "xor", Kind: KindR, Funct: FnXor, Family: FamilyArith3},
	{Name: "nor", Kind: KindR, Funct: FnNor, Family: FamilyArith3},
	{Name: "slt", Kind: KindR, Funct: FnSlt, Family: FamilyArith3},
	{Name: "sltu", Kind: KindR, Funct: FnSltu, Family: FamilyArith3},

	{Name: "sll", Kind: KindR, Funct: FnSll, Family: FamilyShiftImm},
	{Name: "srl", Kind: KindR, Funct: FnSrl, Family: FamilyShiftImm},
	{Name: "sra", Kind: KindR, Funct: FnSra, Family: FamilyShiftImm},
	{Name: "sllv", Kind: KindR, Funct: FnSllv, Family: FamilyShiftReg},
	{Name: "srlv", Kind: KindR, Funct: FnSrlv, Family: FamilyShiftReg},
	{Name: "srav", Kind: KindR, Funct: FnSrav, Family: FamilyShiftReg},

	{Name: "mfhi", Kind: KindR, Funct: FnMfhi, Family: FamilyMfHiLo},
	{Name: "mflo", Kind: KindR, Funct: FnMflo, Family: FamilyMfHiLo},
	{Name: "mthi", Kind: KindR, Funct: FnMthi, Family: FamilyMtHiLo},
	{Name: "mtlo", Kind: KindR, Funct: FnMtlo, Family: FamilyMtHiLo},

	{Name: "mult", Kind: KindR, Funct: FnMult, Family: FamilyMulDiv},
	{Name: "multu", Kind: KindR, Funct: FnMultu, Family: FamilyMulDiv},
	{Name: "div", Kind: KindR, Funct: FnDiv, Family: FamilyMulDiv},
	{Name: "divu", Kind: KindR, Funct: FnDivu, Family: FamilyMulDiv},

	{Name: "jr", Kind: KindR, Funct: FnJr, Family: FamilyJr},
	{Name: "jalr", Kind: KindR, Funct: FnJalr, Family: FamilyJalr},

	{Name: "addi", Kind: KindI, Opcode: OpAddi, Family: FamilyImmArith},
	{Name: "addiu", Kind: KindI, Opcode: OpAddiu, Family: FamilyImmArith},
	{Name: "slti", Kind: KindI, Opcode: OpSlti, Family: FamilyImmArith},
	{Name: "sltiu", Kind: KindI, Opcode: OpSltiu, Family: FamilyImmArith},
	{Name: "andi", Kind: KindI, Opcode: OpAndi, Family: FamilyImmArith, ZeroExtends: true},
	{Name: "ori", Kind: KindI, Opcode: OpOri, Family: FamilyImmArith, ZeroExtends: true},
	{Name: "xori", Kind: KindI, Opcode: OpXori, Family: FamilyImmArith, ZeroExtends: true},
	{Name: "llo", Kind: KindI, Opcode: OpLlo, Family: FamilyImmArith},
	{Name: "lhi", Kind: KindI, Opcode: OpLhi, Family: FamilyImmArith},

	{Name: "beq", Kind: KindI, Opcode: OpBeq, Family: FamilyBranchEq},
	{Name: "bne", Kind: KindI, Opcode: OpBne, Family: FamilyBranchEq},
	{Name: "blez", Kind: KindI, Opcode: OpBlez, Family: FamilyBranchZ},
	{Name: "bgtz", Kind: KindI, Opcode: OpBgtz, Family: FamilyBranchZ},

	{Name: "lb", Kind: KindI, Opcode: OpLb, Family: FamilyMem},
	{Name: "lbu", Kind: KindI, Opcode: OpLbu, Family: FamilyMem},
	{Name: "lh", Kind: KindI, Opcode: OpLh, Family: FamilyMem},
	{Name: "lhu", Kind: KindI, Opcode: OpLhu, Family: FamilyMem},
	{Name: "lw", Kind: KindI, Opcode: OpLw, Family: FamilyMem},
	{Name: "sb", Kind: KindI, Opcode: OpSb, Family: FamilyMem},
	{Name: "sh", Kind: KindI, Opcode: OpSh, Family: FamilyMem},
	{Name: "sw", Kind: KindI, Opcode: OpSw, Family: FamilyMem},

	{Name: "j", Kind: KindJ, Opcode: OpJ, Family: FamilyJump},
	{Name: "jal", Kind: KindJ, Opcode: OpJal, Family: FamilyJump},

	{Name: "trap", Kind: KindI, Opcode: OpTrap, Family: FamilyTrap},
}

var (
	byName  map[string]Mnemonic
	byFunct map[Funct]Mnemonic
	byOp    map[Opcode]Mnemonic
)

func init() {
	byName = make(map[string]Mnemonic, len(mnemonics))
	byFunct = make(map[Funct]Mnemonic, len(mnemonics))
	byOp = make(map[Opcode]Mnemonic, len(mnemonics))
	for _, m := range mnemonics {
		byName[m.Name] = m
		if m.Kind == KindR {
			byFunct[m.Funct] = m
		} else {
			byOp[m.Opcode] = m
		}
	}
}

// LookupMnemonic resolves a case-insensitive-at-the-call-site mnemonic
// name (callers lower-case it first) to its static description.
func LookupMnemonic(name string) (Mnemonic, bool) {
	m, ok := byName[name]
	return m, ok
}

// NameOf returns the mnemonic text for a decoded instruction, used by
// the disassembler and by verbose execution traces.
func NameOf(i Instruction) (string, bool) {
	if i.Kind == KindR {
		m, ok := byFunct[i.Funct]
		return m.Name, ok
	}
	m, ok := byOp[i.Opcode]
	return m.Name, ok
}
