package asm

// DirectiveKind enumerates the assembler directives spec.md §3.2
// defines. Kind is a closed set; dispatch over it is a dense switch in
// every file in this package.
type DirectiveKind uint8

const (
	DirByte DirectiveKind = iota
	DirHalf
	DirWord
	DirAscii
	DirAsciiz
	DirSpace
	DirAlign
	DirText
	DirData
	DirFloat
	DirDouble
)

// Directive is a fully parsed directive, ready for emission. Only the
// fields relevant to Kind are populated.
type Directive struct {
	Kind      DirectiveKind
	Values    []uint32  // .byte/.half/.word elements, and .space's single count
	Text      string    // .ascii/.asciiz payload, already unescaped
	Alignment uint32    // .align's raw operand (a power-of-two exponent, not a byte count)
	Floats    []float32 // .float elements
	Doubles   []float64 // .double elements
}

// directiveSize reports how many bytes d contributes to the image.
// currentPC is needed only for .align, whose size depends on where in
// the section it lands.
func directiveSize(d Directive, currentPC uint32) uint32 {
	switch d.Kind {
	case DirByte:
		return uint32(len(d.Values))
	case DirHalf:
		return uint32(len(d.Values)) * 2
	case DirWord:
		return uint32(len(d.Values)) * 4
	case DirAscii:
		return uint32(len(d.Text))
	case DirAsciiz:
		return uint32(len(d.Text)) + 1
	case DirSpace:
		if len(d.Values) == 0 {
			return 0
		}
		return d.Values[0]
	case DirAlign:
		return alignPadding(d.Alignment, currentPC)
	case DirFloat:
		return uint32(len(d.Floats)) * 4
	case DirDouble:
		return uint32(len(d.Doubles)) * 8
	default: // DirText, DirData
		return 0
	}
}

// alignPadding computes how many filler bytes bring currentPC up to
// the next multiple of 2^exponent. An exponent of 31 or higher names
// an alignment wider than the address space and is treated as a no-op,
// matching the original assembler's guard against a left-shift
// overflow.
func alignPadding(exponent uint32, currentPC uint32) uint32 {
	if exponent >= 31 {
		return 0
	}
	alignBytes := uint32(1) << exponent
	return (alignBytes - (currentPC % alignBytes)) % alignBytes
}
