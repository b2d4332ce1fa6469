package isa

// Opcode is the 6-bit major opcode field. OpRType (0) is the major
// opcode of every R-form word: encodeR always writes it, and a decoded
// R-form instruction's Opcode field holds it.
type Opcode uint8

const (
	OpRType  Opcode = 0x00
	OpJ      Opcode = 0x02
	OpJal    Opcode = 0x03
	OpBeq    Opcode = 0x04
	OpBne    Opcode = 0x05
	OpBlez   Opcode = 0x06
	OpBgtz   Opcode = 0x07
	OpAddi   Opcode = 0x08
	OpAddiu  Opcode = 0x09
	OpSlti   Opcode = 0x0A
	OpSltiu  Opcode = 0x0B
	OpAndi   Opcode = 0x0C
	OpOri    Opcode = 0x0D
	OpXori   Opcode = 0x0E
	OpLlo    Opcode = 0x18
	OpLhi    Opcode = 0x19
	OpTrap   Opcode = 0x1A
	OpLb     Opcode = 0x20
	OpLh     Opcode = 0x21
	OpLw     Opcode = 0x23
	OpLbu    Opcode = 0x24
	OpLhu    Opcode = 0x25
	OpSb     Opcode = 0x28
	OpSh     Opcode = 0x29
	OpSw     Opcode = 0x2B
)

// Funct is the 6-bit function field, meaningful only when Opcode ==
// OpRType.
type Funct uint8

const (
	FnSll   Funct = 0x00
	FnSrl   Funct = 0x02
	FnSra   Funct = 0x03
	FnSllv  Funct = 0x04
	FnSrlv  Funct = 0x06
	FnSrav  Funct = 0x07
	FnJr    Funct = 0x08
	FnJalr  Funct = 0x09
	FnMfhi  Funct = 0x10
	FnMthi  Funct = 0x11
	FnMflo  Funct = 0x12
	FnMtlo  Funct = 0x13
	FnMult  Funct = 0x18
	FnMultu Funct = 0x19
	FnDiv   Funct = 0x1A
	FnDivu  Funct = 0x1B
	FnAdd   Funct = 0x20
	FnAddu  Funct = 0x21
	FnSub   Funct = 0x22
	FnSubu  Funct = 0x23
	FnAnd   Funct = 0x24
	FnOr    Funct = 0x25
	FnXor   Funct = 0x26
	FnNor   Funct = 0x27
	FnSlt   Funct = 0x2A
	FnSltu  Funct = 0x2B
)

// Syscall identifies a trap's low-16-bit immediate.
type Syscall uint16

const (
	SyscallPrintInt       Syscall = 0
	SyscallPrintCharacter Syscall = 1
	SyscallPrintString    Syscall = 2
	SyscallReadInt        Syscall = 3
	SyscallReadCharacter  Syscall = 4
	SyscallExit           Syscall = 5
)
