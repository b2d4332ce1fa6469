// Package debugger is a supplemental terminal UI for single-stepping
// a running program, reached through `exe -i`. It repurposes
// gdamore/tcell/v2 — a dependency the original project carried for a
// graphical register/memory viewer — as a plain terminal screen
// instead, since this module has no graphical front end.
package debugger

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Nour-HF/MIPS-Project/internal/exec"
	"github.com/Nour-HF/MIPS-Project/internal/isa"
	"github.com/Nour-HF/MIPS-Project/internal/machine"
	"github.com/Nour-HF/MIPS-Project/internal/mipserr"
	"github.com/Nour-HF/MIPS-Project/internal/runtime"
)

// Run loads image the same way runtime.Run does, then steps it one
// instruction at a time, redrawing register, HI/LO and memory state
// after every key press until the program traps or the user quits.
func Run(image []byte, opts runtime.Options) error {
	m, startPC, err := loadImage(image, opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return mipserr.Wrap(mipserr.IoError, err, "opening terminal screen")
	}
	if err := screen.Init(); err != nil {
		return mipserr.Wrap(mipserr.IoError, err, "initializing terminal screen")
	}
	defer screen.Fini()

	var lastErr error
	step := uint64(0)
	trapped := false

	draw(screen, m, step, startPC, lastErr, trapped)
	for {
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			switch e.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				switch e.Rune() {
				case 'q':
					return nil
				case 'n', ' ':
					if !trapped && lastErr == nil {
						step++
						trapped, lastErr = stepOnce(m, opts.IO)
					}
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
		draw(screen, m, step, startPC, lastErr, trapped)
	}
}

func loadImage(image []byte, opts runtime.Options) (*machine.Machine, uint32, error) {
	if len(image) == 0 {
		return nil, 0, mipserr.New(mipserr.IoError, "binary is empty")
	}
	startPC := uint32(0)
	if len(image) >= 8 && image[0] == 'M' && image[1] == 'I' && image[2] == 'P' && image[3] == 'S' {
		startPC = uint32(image[4]) | uint32(image[5])<<8 | uint32(image[6])<<16 | uint32(image[7])<<24
		image = image[8:]
	}
	if opts.StartOverride != runtime.NoOverride {
		startPC = opts.StartOverride
	}
	m := machine.New(machine.DefaultMemorySize)
	if err := m.Mem.Load(0, image); err != nil {
		return nil, 0, err
	}
	if !m.Mem.IsValidAddress(startPC, 0) {
		return nil, 0, mipserr.New(mipserr.PcOutOfBounds, "start PC 0x%x is outside loaded binary memory", startPC)
	}
	m.SetPC(startPC)
	return m, startPC, nil
}

func stepOnce(m *machine.Machine, io *exec.IO) (trapped bool, err error) {
	pc := m.PC()
	if !m.Mem.IsValidAddress(pc, 4) {
		return false, mipserr.New(mipserr.PcOutOfBounds, "PC out of bounds at 0x%x", pc)
	}
	word, err := m.Mem.ReadWord(pc)
	if err != nil {
		return false, err
	}
	instr, err := isa.Decode(word)
	if err != nil {
		return false, err
	}
	trapped, err = exec.Step(m, instr, io)
	if err != nil {
		return trapped, err
	}
	if m.PC() == pc {
		m.SetPC(pc + 4)
	}
	return trapped, nil
}

func draw(screen tcell.Screen, m *machine.Machine, step uint64, startPC uint32, err error, trapped bool) {
	screen.Clear()
	style := tcell.StyleDefault

	row := 0
	put := func(s string) {
		for i, r := range s {
			screen.SetContent(i, row, r, nil, style)
		}
		row++
	}

	put(fmt.Sprintf("step %d  PC=0x%08x  start=0x%08x", step, m.PC(), startPC))
	put("")
	for r := machine.Register(0); int(r) < machine.NumRegisters; r++ {
		put(fmt.Sprintf("%-4s 0x%08x", r.Name(), m.GetRegister(r)))
	}
	put("")
	put(fmt.Sprintf("HI=0x%08x  LO=0x%08x", m.HI(), m.LO()))
	put("")
	if err != nil {
		put("error: " + err.Error())
	} else if trapped {
		put("program terminated (trap)")
	}
	put("")
	put("[n/space] step  [q/esc] quit")

	screen.Show()
}
