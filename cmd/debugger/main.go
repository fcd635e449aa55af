// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Command debugger is a terminal front end over the CPU/bus core: a
// RAM viewer, register/flag pane, live disassembly, and cartridge
// header dump, driven entirely by the public internal/bus and
// internal/cpu contracts. It carries no CPU semantics of its own.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gopkg.in/urfave/cli.v2"

	"github.com/sixfiveohtwo/nesgo/internal/bus"
	"github.com/sixfiveohtwo/nesgo/internal/cartridge"
	"github.com/sixfiveohtwo/nesgo/internal/cpu"
)

// cyclesPerFrame approximates one NTSC frame's worth of CPU cycles,
// used by the step-frame control.
const cyclesPerFrame = 29780

// logLine is a minimal cpu.Logger that appends to an in-memory ring so
// the trace can be inspected without a file on disk.
type logLine struct {
	lines []string
}

func (l *logLine) Log(msg string) {
	l.lines = append(l.lines, msg)
	if len(l.lines) > 512 {
		l.lines = l.lines[len(l.lines)-512:]
	}
}

type debugger struct {
	bus  *bus.Bus
	cpu  *cpu.CPU
	cart *cartridge.Cartridge
	log  *logLine

	paragraphCPU  *widgets.Paragraph
	paragraphCode *widgets.Paragraph
	paragraphRam0 *widgets.Paragraph
	paragraphRam1 *widgets.Paragraph
	paragraphInfo *widgets.Paragraph
	paragraphTips *widgets.Paragraph
}

func newDebugger(romPath string, trace bool) (*debugger, error) {
	d := &debugger{cpu: cpu.New(), log: &logLine{}}
	d.bus = bus.New(d.cpu)

	if trace {
		d.cpu.SetLogger(d.log)
		d.cpu.SetTrace(true)
	}

	if romPath != "" {
		f, err := os.Open(romPath)
		if err != nil {
			return nil, fmt.Errorf("debugger: opening rom: %w", err)
		}
		defer f.Close()

		cart, err := cartridge.Load(f)
		if err != nil {
			return nil, fmt.Errorf("debugger: loading rom: %w", err)
		}
		d.cart = cart
		d.bus.InsertCartridge(cart)
	}

	d.bus.Reset()
	return d, nil
}

// stepInstruction drains the current instruction, then executes exactly
// one more. This leaves the CPU on an instruction boundary, which is
// the only time Reset/IRQ/NMI may be delivered.
func (d *debugger) stepInstruction() {
	for !d.cpu.Complete() {
		d.bus.Clock()
	}
	for d.cpu.Complete() {
		d.bus.Clock()
	}
	for !d.cpu.Complete() {
		d.bus.Clock()
	}
}

func (d *debugger) stepFrame() {
	// Bus.Clock is one PPU dot; the CPU ticks on every third call.
	for i := 0; i < cyclesPerFrame*3; i++ {
		d.bus.Clock()
	}
	for !d.cpu.Complete() {
		d.bus.Clock()
	}
}

// interrupt drains to an instruction boundary before delivering
// reset/irq/nmi, per the core's concurrency contract.
func (d *debugger) interrupt(deliver func()) {
	for !d.cpu.Complete() {
		d.bus.Clock()
	}
	deliver()
}

func (d *debugger) renderCPU() {
	sb := &strings.Builder{}
	type flagGlyph struct {
		bit uint8
		ch  rune
	}
	glyphs := []flagGlyph{
		{cpu.FlagNegative, 'N'}, {cpu.FlagOverflow, 'V'}, {cpu.FlagUnused, '-'},
		{cpu.FlagBreak, 'B'}, {cpu.FlagDecimal, 'D'}, {cpu.FlagInterrupt, 'I'},
		{cpu.FlagZero, 'Z'}, {cpu.FlagCarry, 'C'},
	}

	sb.WriteString("STATUS: ")
	for _, g := range glyphs {
		color := "red"
		if d.cpu.GetFlag(g.bit) != 0 {
			color = "green"
		}
		fmt.Fprintf(sb, "[%c](fg:%s) ", g.ch, color)
	}
	fmt.Fprintf(sb, "\nPC: $%04X SP: $%02X\n", d.cpu.PC, d.cpu.SP)
	fmt.Fprintf(sb, "A: $%02X [%d]\n", d.cpu.A, d.cpu.A)
	fmt.Fprintf(sb, "X: $%02X [%d]\n", d.cpu.X, d.cpu.X)
	fmt.Fprintf(sb, "Y: $%02X [%d]\n", d.cpu.Y, d.cpu.Y)
	d.paragraphCPU.Text = sb.String()
}

func (d *debugger) renderRAM(p *widgets.Paragraph, base uint16, rows, cols int) {
	sb := &strings.Builder{}
	addr := base
	for r := 0; r < rows; r++ {
		fmt.Fprintf(sb, "$%04X:", addr)
		for c := 0; c < cols; c++ {
			fmt.Fprintf(sb, " %02X", d.bus.Read(addr, true))
			addr++
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func (d *debugger) renderCode() {
	sb := &strings.Builder{}
	pc := int32(d.cpu.PC)
	disasm := d.cpu.Disassemble(pc-8, pc+40)
	for _, addr := range disasm.Order {
		line := disasm.Lines[addr]
		if line == "" {
			continue
		}
		sb.WriteString(line)
		sb.WriteRune('\n')
	}
	d.paragraphCode.Text = sb.String()
}

func (d *debugger) renderInfo() {
	if d.cart == nil {
		d.paragraphInfo.Text = "no cartridge loaded"
		return
	}
	d.paragraphInfo.Text = d.cart.Header.String()
}

func (d *debugger) renderTips() {
	d.paragraphTips.Text = "SPACE=step  F=frame  R=reset  I=IRQ  N=NMI  Q/Ctrl-C=quit"
}

func (d *debugger) draw() {
	d.renderRAM(d.paragraphRam0, 0x0000, 16, 16)
	d.renderRAM(d.paragraphRam1, 0x8000, 16, 16)
	d.renderCPU()
	d.renderCode()
	d.renderInfo()
	d.renderTips()
	ui.Render(d.paragraphRam0, d.paragraphRam1, d.paragraphCPU, d.paragraphCode, d.paragraphInfo, d.paragraphTips)
}

func (d *debugger) initLayout() {
	d.paragraphRam0 = widgets.NewParagraph()
	d.paragraphRam0.Title = "RAM $0000"
	d.paragraphRam0.SetRect(0, 0, 56, 18)

	d.paragraphRam1 = widgets.NewParagraph()
	d.paragraphRam1.Title = "RAM $8000"
	d.paragraphRam1.SetRect(0, 18, 56, 36)

	d.paragraphCPU = widgets.NewParagraph()
	d.paragraphCPU.Title = "CPU"
	d.paragraphCPU.SetRect(56, 0, 56+36, 7)

	d.paragraphCode = widgets.NewParagraph()
	d.paragraphCode.Title = "Disassembly"
	d.paragraphCode.SetRect(56, 7, 56+36, 7+22)

	d.paragraphInfo = widgets.NewParagraph()
	d.paragraphInfo.Title = "Cartridge"
	d.paragraphInfo.SetRect(56, 29, 56+36, 36)

	d.paragraphTips = widgets.NewParagraph()
	d.paragraphTips.Title = "Tips"
	d.paragraphTips.SetRect(0, 36, 56+36, 39)
}

func (d *debugger) run() {
	d.initLayout()
	d.draw()

	for e := range ui.PollEvents() {
		if e.Type != ui.KeyboardEvent {
			continue
		}
		switch e.ID {
		case "q", "Q", "<C-c>":
			return
		case "<Space>":
			d.stepInstruction()
		case "f", "F":
			d.stepFrame()
		case "r", "R":
			d.interrupt(d.bus.Reset)
		case "i", "I":
			d.interrupt(d.cpu.IRQ)
		case "n", "N":
			d.interrupt(d.cpu.NMI)
		}
		d.draw()
	}
}

func (d *debugger) runHeadless(steps int) {
	for i := 0; i < steps; i++ {
		d.stepInstruction()
	}
	spew.Dump(d.cpu)
	for _, line := range d.log.lines {
		fmt.Println(line)
	}
}

func main() {
	app := &cli.App{
		Name:  "debugger",
		Usage: "step-through debugger for the CPU core",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Aliases: []string{"r"}, Usage: "path to an iNES ROM image"},
			&cli.BoolFlag{Name: "trace", Usage: "log every retired instruction"},
			&cli.BoolFlag{Name: "headless", Usage: "run without the terminal UI"},
			&cli.IntFlag{Name: "steps", Value: 100, Usage: "instructions to run in --headless mode"},
		},
		Action: func(c *cli.Context) error {
			dbg, err := newDebugger(c.String("rom"), c.Bool("trace"))
			if err != nil {
				return err
			}

			if c.Bool("headless") {
				dbg.runHeadless(c.Int("steps"))
				return nil
			}

			if err := ui.Init(); err != nil {
				return fmt.Errorf("debugger: initializing terminal UI: %w", err)
			}
			defer ui.Close()

			dbg.run()
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
