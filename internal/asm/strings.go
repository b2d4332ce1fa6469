package asm

import (
	"strings"

	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// parseStringLiteral unquotes a ".ascii"/".asciiz" operand and expands
// its backslash escapes. Only the handful of sequences the assembler
// has ever recognized are supported: \n \t \\ \" and \0; anything else
// after a backslash is passed through literally.
func parseStringLiteral(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", mipserr.New(mipserr.ParseError, "invalid string literal: %s", raw)
	}
	inner := s[1 : len(s)-1]

	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case '0':
				b.WriteByte(0)
			default:
				b.WriteByte(inner[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
