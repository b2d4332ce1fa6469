package asm

import (
	"strings"

	"github.com/Nour-HF/MIPS-Project/internal/machine"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

func parseRegister(s string) (machine.Register, error) {
	s = strings.TrimSpace(s)
	r, ok := machine.LookupRegister(s)
	if !ok {
		return 0, mipserr.New(mipserr.ParseError, "unknown register: %s", s)
	}
	return r, nil
}

// parseMemoryOperand parses the "offset(base)" shape used by every
// load/store, e.g. "4($sp)", "($t0)", "-8($t1)".
func parseMemoryOperand(s string) (offset int32, base machine.Register, err error) {
	s = strings.TrimSpace(s)
	lp := strings.IndexByte(s, '(')
	rp := strings.IndexByte(s, ')')
	if lp < 0 || rp < 0 || rp <= lp {
		return 0, 0, mipserr.New(mipserr.ParseError, "invalid memory operand: %s", s)
	}
	offsetStr := strings.TrimSpace(s[:lp])
	if offsetStr != "" {
		n, ok := parseNumber(offsetStr)
		if !ok {
			return 0, 0, mipserr.New(mipserr.ParseError, "invalid memory operand offset: %s", offsetStr)
		}
		offset = int32(n)
	}
	base, err = parseRegister(s[lp+1 : rp])
	if err != nil {
		return 0, 0, err
	}
	return offset, base, nil
}

func operand(fields []string, idx int, mnemonic string) (string, error) {
	if idx >= len(fields) {
		return "", mipserr.New(mipserr.ParseError, "missing operand %d for %s", idx, mnemonic)
	}
	return fields[idx], nil
}
