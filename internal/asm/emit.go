package asm

import (
	"math"

	"github.com/Nour-HF/MIPS-Project/internal/isa"
)

// Result is a fully assembled program: the flat byte image ready to
// run, and the label table resolved to absolute addresses.
type Result struct {
	Image       []byte
	Labels      map[string]uint32
	HasMain     bool
	MainAddress uint32
}

// Assemble runs the two-pass algorithm over assembly source: pass one
// lays out every instruction and directive to compute section sizes
// and label addresses, pass two re-parses each line now that every
// label is known and emits its bytes. All .text content precedes all
// .data content in the final image regardless of how the sections
// were interleaved in source, matching the reference assembler's
// section-then-concatenate ordering.
func Assemble(source string) (Result, error) {
	lines := splitLines(source)
	lay, err := layout(lines)
	if err != nil {
		return Result{}, err
	}

	textBase := uint32(0)
	dataBase := lay.textSize

	labels := make(map[string]uint32, len(lay.labels))
	for _, l := range lay.labels {
		if l.inText {
			labels[l.name] = textBase + l.offset
		} else {
			labels[l.name] = dataBase + l.offset
		}
	}

	var textItems, dataItems []item
	for _, it := range lay.items {
		if it.inText {
			textItems = append(textItems, it)
		} else {
			dataItems = append(dataItems, it)
		}
	}
	ordered := append(textItems, dataItems...)

	var image []byte
	for _, it := range ordered {
		base := textBase
		if !it.inText {
			base = dataBase
		}
		abs := base + it.offset

		if it.kind == itemInstruction {
			instr, err := parseInstructionLine(it.text, labels, abs)
			if err != nil {
				return Result{}, err
			}
			image = appendWord(image, isa.Encode(instr))
			continue
		}

		dir, err := parseDirectiveLine(it.text, labels)
		if err != nil {
			return Result{}, err
		}
		image = appendDirective(image, dir, it.offset)
	}

	result := Result{Image: image, Labels: labels}
	if addr, ok := labels["main"]; ok {
		result.HasMain = true
		result.MainAddress = addr
	}
	return result, nil
}

func splitLines(source string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, source[start:i])
			start = i + 1
		}
	}
	if start < len(source) {
		lines = append(lines, source[start:])
	}
	return lines
}

func appendWord(image []byte, word uint32) []byte {
	return append(image, byte(word), byte(word>>8), byte(word>>16), byte(word>>24))
}

func appendHalf(image []byte, half uint16) []byte {
	return append(image, byte(half), byte(half>>8))
}

// appendDirective emits one directive's contribution to the image.
// .align pads with zero bytes up to the next boundary of
// sectionOffset, the directive's section-relative offset: the same
// offset the layout pass sized it from, so the labels that follow it
// keep the addresses assigned to them.
func appendDirective(image []byte, d Directive, sectionOffset uint32) []byte {
	switch d.Kind {
	case DirByte:
		for _, v := range d.Values {
			image = append(image, byte(v))
		}
	case DirHalf:
		for _, v := range d.Values {
			image = appendHalf(image, uint16(v))
		}
	case DirWord:
		for _, v := range d.Values {
			image = appendWord(image, v)
		}
	case DirAscii:
		image = append(image, []byte(d.Text)...)
	case DirAsciiz:
		image = append(image, []byte(d.Text)...)
		image = append(image, 0)
	case DirSpace:
		if len(d.Values) > 0 {
			image = append(image, make([]byte, d.Values[0])...)
		}
	case DirAlign:
		pad := alignPadding(d.Alignment, sectionOffset)
		image = append(image, make([]byte, pad)...)
	case DirFloat:
		for _, f := range d.Floats {
			image = appendWord(image, math.Float32bits(f))
		}
	case DirDouble:
		for _, v := range d.Doubles {
			bits := math.Float64bits(v)
			for i := 0; i < 8; i++ {
				image = append(image, byte(bits>>(8*i)))
			}
		}
	}
	return image
}
