// Command objdump prints a mnemonic listing of a binary image, read
// from stdin or from a file named on the command line.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Nour-HF/MIPS-Project/internal/disasm"
)

func main() {
	var r io.Reader = os.Stdin

	if len(os.Args) == 2 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		r = bytes.NewReader(data)
	}

	image, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}

	for _, line := range disasm.Disassemble(image, 0) {
		if line.Text == "" {
			fmt.Printf("%08x: %08x\n", line.Addr, line.Word)
			continue
		}
		fmt.Printf("%08x: %08x  %s\n", line.Addr, line.Word, line.Text)
	}
}
