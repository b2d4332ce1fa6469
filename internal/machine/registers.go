package machine

// Register is the index of one of the 32 general-purpose registers.
// Slot 0 is hard-wired to the value zero.
type Register uint8

const (
	Zero Register = iota
	At
	V0
	V1
	A0
	A1
	A2
	A3
	T0
	T1
	T2
	T3
	T4
	T5
	T6
	T7
	S0
	S1
	S2
	S3
	S4
	S5
	S6
	S7
	T8
	T9
	K0
	K1
	Gp
	Sp
	S8
	Ra
)

// NumRegisters is the size of the general-purpose register file.
const NumRegisters = 32

// registerNames is indexed by Register and gives the canonical
// symbolic name (without the leading '$') in slot order 0..31.
var registerNames = [NumRegisters]string{
	"zero", "at", "v0", "v1",
	"a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1",
	"gp", "sp", "s8", "ra",
}

// registerByName maps each symbolic register name, with and without
// the leading '$' ("$t0", "t0"), to its Register. Numeric forms
// ("$8", "8") are not in the map; LookupRegister parses those.
var registerByName = func() map[string]Register {
	m := make(map[string]Register, NumRegisters*2)
	for i, name := range registerNames {
		m[name] = Register(i)
		m["$"+name] = Register(i)
	}
	return m
}()

// Name returns the canonical "$name" form of r.
func (r Register) Name() string {
	if int(r) >= NumRegisters {
		return "$?"
	}
	return "$" + registerNames[r]
}

// LookupRegister resolves register syntax accepted by the assembler:
// a symbolic name ("$t0", "t0") or a numeric form ("$8", "8"), with or
// without the leading '$'. The second return value is false if name
// does not name a register.
func LookupRegister(name string) (Register, bool) {
	if r, ok := registerByName[name]; ok {
		return r, true
	}
	if len(name) > 0 && name[0] == '$' {
		if r, ok := registerByName[name[1:]]; ok {
			return r, true
		}
	} else if r, ok := registerByName["$"+name]; ok {
		return r, true
	}
	n, ok := parseRegisterNumber(name)
	if !ok {
		return 0, false
	}
	if n >= NumRegisters {
		return 0, false
	}
	return Register(n), true
}

func parseRegisterNumber(s string) (int, bool) {
	if len(s) > 0 && s[0] == '$' {
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
