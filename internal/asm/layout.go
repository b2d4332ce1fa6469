package asm

import (
	"strings"

	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

// itemKind tags a layout item as code or data, mirroring the tagged
// content/is_directive pairing the reference layout pass threads
// through by hand.
type itemKind uint8

const (
	itemInstruction itemKind = iota
	itemDirective
)

// item is one line's worth of layout information: its kind, the
// section it landed in, the section-relative offset it was assigned,
// and the already-comment-stripped, already-label-stripped source
// text, reparsed in full during emission.
type item struct {
	kind    itemKind
	text    string
	inText  bool
	offset  uint32
}

// labelDef records where a label was defined, in section-relative
// terms, before the text/data sections have been laid out back to
// back.
type labelDef struct {
	name   string
	inText bool
	offset uint32
}

// layoutResult is pass one's output: the ordered items, every label's
// section-relative definition, and the final size of each section.
type layoutResult struct {
	items           []item
	labels          []labelDef
	textSize        uint32
	dataSize        uint32
}

// layout performs the assembler's first pass: strip comments and
// labels, track which section each line lands in, and size every
// instruction and directive without resolving any label references
// yet (label addresses aren't known until every line has been sized).
func layout(sourceLines []string) (layoutResult, error) {
	var result layoutResult
	textPC, dataPC := uint32(0), uint32(0)
	inText := true

	for _, raw := range sourceLines {
		line := stripComment(raw)
		if line == "" {
			continue
		}

		labels, rest := stripLabels(line)
		for _, name := range labels {
			offset := textPC
			if !inText {
				offset = dataPC
			}
			result.labels = append(result.labels, labelDef{name: name, inText: inText, offset: offset})
		}
		if rest == "" {
			continue
		}
		line = rest

		head, _ := splitMnemonic(line)
		switch strings.ToLower(head) {
		case ".text":
			inText = true
			result.items = append(result.items, item{kind: itemDirective, text: line, inText: inText, offset: sectionPC(inText, textPC, dataPC)})
			continue
		case ".data":
			inText = false
			result.items = append(result.items, item{kind: itemDirective, text: line, inText: inText, offset: sectionPC(inText, textPC, dataPC)})
			continue
		}

		if isDirectiveLine(line) {
			size, err := directiveSizeForLayout(line, sectionPC(inText, textPC, dataPC))
			if err != nil {
				return layoutResult{}, err
			}
			result.items = append(result.items, item{kind: itemDirective, text: line, inText: inText, offset: sectionPC(inText, textPC, dataPC)})
			if inText {
				textPC += size
			} else {
				dataPC += size
			}
			continue
		}

		// An instruction encountered while in the .data section is kept
		// in the text stream at the running text offset rather than
		// rejected; this mirrors the original assembler's permissive
		// handling of stray code lines inside a .data block.
		result.items = append(result.items, item{kind: itemInstruction, text: line, inText: true, offset: textPC})
		textPC += 4
	}

	result.textSize = textPC
	result.dataSize = dataPC
	return result, nil
}

func sectionPC(inText bool, textPC, dataPC uint32) uint32 {
	if inText {
		return textPC
	}
	return dataPC
}

// directiveSizeForLayout sizes a directive line using only the
// information visible without a completed label table: operand counts
// for .byte/.half/.word, the unescaped length for .ascii/.asciiz, and
// a bare numeric literal (never a label) for .space/.align, exactly as
// far as pass one can see.
func directiveSizeForLayout(line string, currentPC uint32) (uint32, error) {
	head, rest := splitMnemonic(line)
	switch strings.ToLower(head) {
	case ".byte":
		return uint32(len(splitFields(rest))), nil
	case ".half":
		return uint32(len(splitFields(rest))) * 2, nil
	case ".word":
		return uint32(len(splitFields(rest))) * 4, nil
	case ".ascii":
		if rest == "" {
			return 0, nil
		}
		text, err := parseStringLiteral(rest)
		if err != nil {
			return 0, err
		}
		return uint32(len(text)), nil
	case ".asciiz":
		if rest == "" {
			return 1, nil
		}
		text, err := parseStringLiteral(rest)
		if err != nil {
			return 0, err
		}
		return uint32(len(text)) + 1, nil
	case ".space":
		if rest == "" {
			return 0, nil
		}
		n, ok := parseNumber(rest)
		if !ok {
			return 0, mipserr.New(mipserr.ParseError, "invalid .space operand: %s", rest)
		}
		return uint32(n), nil
	case ".align":
		if rest == "" {
			return 0, nil
		}
		n, ok := parseNumber(rest)
		if !ok {
			return 0, mipserr.New(mipserr.ParseError, "invalid .align operand: %s", rest)
		}
		return alignPadding(uint32(n), currentPC), nil
	case ".float":
		return uint32(len(splitFields(rest))) * 4, nil
	case ".double":
		return uint32(len(splitFields(rest))) * 8, nil
	default:
		return 0, mipserr.New(mipserr.ParseError, "unknown directive: %s", head)
	}
}
