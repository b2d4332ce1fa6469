package asm

import (
	"strconv"
	"strings"

	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// parseNumber parses a decimal or "0x"-prefixed hexadecimal literal,
// signed or unsigned.
func parseNumber(s string) (int64, bool) {
	base := 10
	t := s
	neg := false
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	} else if strings.HasPrefix(t, "+") {
		t = t[1:]
	}
	if len(t) > 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		base = 16
		t = t[2:]
	}
	n, err := strconv.ParseUint(t, base, 64)
	if err != nil {
		return 0, false
	}
	v := int64(n)
	if neg {
		v = -v
	}
	return v, true
}

// parseImmediate resolves an operand that may be a label, a numeric
// literal, or a "label+N"/"label-N" expression, and returns it as an
// unsigned 32-bit value.
func parseImmediate(s string, labels map[string]uint32) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, mipserr.New(mipserr.ParseError, "empty immediate")
	}
	if v, ok := labels[s]; ok {
		return v, nil
	}
	if n, ok := parseNumber(s); ok {
		return uint32(n), nil
	}
	if v, ok := parseExpression(s, labels); ok {
		return v, nil
	}
	return 0, mipserr.New(mipserr.ParseError, "unable to parse immediate: %s", s)
}

// parseSignedImmediate is parseImmediate's signed counterpart, used
// wherever the result is about to be sign-extended into a 16-bit
// field.
func parseSignedImmediate(s string, labels map[string]uint32) (int32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, mipserr.New(mipserr.ParseError, "empty immediate")
	}
	if v, ok := labels[s]; ok {
		return int32(v), nil
	}
	if n, ok := parseNumber(s); ok {
		return int32(n), nil
	}
	if v, ok := parseExpression(s, labels); ok {
		return int32(v), nil
	}
	return 0, mipserr.New(mipserr.ParseError, "unable to parse immediate: %s", s)
}

// parseExpression handles the only compound operand form the
// assembler accepts: label+N or label-N, where label may itself
// resolve through the label table or as a bare number.
func parseExpression(s string, labels map[string]uint32) (uint32, bool) {
	for i := 1; i < len(s); i++ {
		if s[i] != '+' && s[i] != '-' {
			continue
		}
		a := strings.TrimSpace(s[:i])
		b := strings.TrimSpace(s[i+1:])
		aVal, ok := labels[a]
		if !ok {
			n, numOK := parseNumber(a)
			if !numOK {
				return 0, false
			}
			aVal = uint32(n)
		}
		bVal, ok := parseNumber(b)
		if !ok {
			return 0, false
		}
		if s[i] == '+' {
			return aVal + uint32(bVal), true
		}
		return aVal - uint32(bVal), true
	}
	return 0, false
}
