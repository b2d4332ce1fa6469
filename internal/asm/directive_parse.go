package asm

import (
	"strconv"
	"strings"

	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// parseDirectiveLine fully parses a directive line in the second
// pass, where the label table is complete and every operand
// expression can be resolved.
func parseDirectiveLine(line string, labels map[string]uint32) (Directive, error) {
	head, rest := splitMnemonic(line)
	switch strings.ToLower(head) {
	case ".byte":
		vals, err := parseSignedList(rest, labels, 0xFF)
		return Directive{Kind: DirByte, Values: vals}, err
	case ".half":
		vals, err := parseSignedList(rest, labels, 0xFFFF)
		return Directive{Kind: DirHalf, Values: vals}, err
	case ".word":
		vals, err := parseUnsignedList(rest, labels)
		return Directive{Kind: DirWord, Values: vals}, err
	case ".ascii":
		text, err := directiveText(rest)
		return Directive{Kind: DirAscii, Text: text}, err
	case ".asciiz":
		text, err := directiveText(rest)
		return Directive{Kind: DirAsciiz, Text: text}, err
	case ".space":
		if rest == "" {
			return Directive{Kind: DirSpace}, nil
		}
		n, err := parseImmediate(rest, labels)
		if err != nil {
			return Directive{}, err
		}
		return Directive{Kind: DirSpace, Values: []uint32{n}}, nil
	case ".align":
		if rest == "" {
			return Directive{Kind: DirAlign}, nil
		}
		n, err := parseImmediate(rest, labels)
		if err != nil {
			return Directive{}, err
		}
		return Directive{Kind: DirAlign, Alignment: n}, nil
	case ".text":
		return Directive{Kind: DirText}, nil
	case ".data":
		return Directive{Kind: DirData}, nil
	case ".float":
		floats, err := parseFloatList(rest)
		return Directive{Kind: DirFloat, Floats: floats}, err
	case ".double":
		doubles, err := parseDoubleList(rest)
		return Directive{Kind: DirDouble, Doubles: doubles}, err
	default:
		return Directive{}, mipserr.New(mipserr.ParseError, "unknown directive: %s", head)
	}
}

func directiveText(rest string) (string, error) {
	if rest == "" {
		return "", nil
	}
	return parseStringLiteral(rest)
}

func parseSignedList(rest string, labels map[string]uint32, mask uint32) ([]uint32, error) {
	if rest == "" {
		return nil, nil
	}
	fields := splitFields(rest)
	vals := make([]uint32, len(fields))
	for i, f := range fields {
		v, err := parseSignedImmediate(f, labels)
		if err != nil {
			return nil, err
		}
		vals[i] = uint32(v) & mask
	}
	return vals, nil
}

func parseUnsignedList(rest string, labels map[string]uint32) ([]uint32, error) {
	if rest == "" {
		return nil, nil
	}
	fields := splitFields(rest)
	vals := make([]uint32, len(fields))
	for i, f := range fields {
		v, err := parseImmediate(f, labels)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func parseFloatList(rest string) ([]float32, error) {
	if rest == "" {
		return nil, nil
	}
	fields := splitFields(rest)
	vals := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, mipserr.Wrap(mipserr.ParseError, err, "invalid .float operand: %s", f)
		}
		vals[i] = float32(v)
	}
	return vals, nil
}

func parseDoubleList(rest string) ([]float64, error) {
	if rest == "" {
		return nil, nil
	}
	fields := splitFields(rest)
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, mipserr.Wrap(mipserr.ParseError, err, "invalid .double operand: %s", f)
		}
		vals[i] = v
	}
	return vals, nil
}
