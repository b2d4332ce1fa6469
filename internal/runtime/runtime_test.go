package runtime

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Nour-HF/MIPS-Project/internal/asm"
	"github.com/Nour-HF/MIPS-Project/internal/exec"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
)

func assembleAndRun(t *testing.T, src string, stdin string) (string, error) {
	t.Helper()
	result, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	var out bytes.Buffer
	_, err = Run(result.Image, Options{
		StartOverride: NoOverride,
		IO:            exec.NewStdIO(strings.NewReader(stdin), &out),
	})
	return out.String(), err
}

func TestScenarioPrintIntThenExit(t *testing.T) {
	src := `
.text
addi $t0, $zero, 5
addi $a0, $t0, 0
trap 0
trap 5
`
	out, err := assembleAndRun(t, src, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "5" {
		t.Fatalf("got %q, want %q", out, "5")
	}
}

func TestScenarioAsciizStringPrint(t *testing.T) {
	src := `
.data
hello: .asciiz "hi\n"
.text
main: lhi $a0, $zero, 0x0000
llo $a0, $zero, hello
trap 2
trap 5
`
	out, err := assembleAndRun(t, src, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "hi\n" {
		t.Fatalf("got %q, want %q", out, "hi\n")
	}
}

// A taken branch lands at target-4, not target: the encoded immediate
// is (target-(pc+4))/4, and the runtime only adds the fall-through +4
// when PC is unchanged after Step, so a taken branch's own PC write is
// the final word. body is therefore preceded by a nop sitting exactly
// at body-4, which the branch lands on; the nop's own fall-through
// then reaches body on the next cycle.
func TestScenarioCountdownLoop(t *testing.T) {
	src := `
main: addi $t0, $zero, 3
loop: bne $t0, $zero, body
j end
sll $zero, $zero, 0
body: addi $a0, $t0, 0
trap 0
addi $t0, $t0, -1
j loop
end: trap 5
`
	out, err := assembleAndRun(t, src, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "321" {
		t.Fatalf("got %q, want %q", out, "321")
	}
}

func TestScenarioMultiplyHiLo(t *testing.T) {
	src := `
.text
addi $t0, $zero, -1
addi $t1, $zero, -1
mult $t0, $t1
mfhi $a0
trap 0
mflo $a0
trap 0
trap 5
`
	out, err := assembleAndRun(t, src, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "01" {
		t.Fatalf("got %q, want %q", out, "01")
	}
}

func TestScenarioHeaderSetsStartPC(t *testing.T) {
	nop := []byte{0, 0, 0, 0} // sll $zero, $zero, 0
	image := []byte{'M', 'I', 'P', 'S', 0x10, 0x00, 0x00, 0x00}
	for i := 0; i < 4; i++ {
		image = append(image, nop...)
	}
	image = append(image, 0x05, 0x00, 0x00, 0x68) // trap 5 at the next word after the NOPs, offset 0x10

	_, err := Run(image, Options{StartOverride: NoOverride, IO: exec.NewStdIO(strings.NewReader(""), &bytes.Buffer{})})
	if err != nil {
		t.Fatal(err)
	}
}

func TestStepLimitExceeded(t *testing.T) {
	src := `
loop: j loop
`
	result, err := asm.Assemble(src)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Run(result.Image, Options{StepLimit: 10, StartOverride: NoOverride, IO: exec.NewStdIO(strings.NewReader(""), &bytes.Buffer{})})
	if !mipserr.As(err, mipserr.StepLimitExceeded) {
		t.Fatalf("expected StepLimitExceeded, got %v", err)
	}
}
