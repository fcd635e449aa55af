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

// Package cpu implements the MOS 6502 CPU core: register file, flag
// register, fetch/decode/execute engine, the 256-entry opcode dispatch
// table, interrupt semantics, and a disassembler.
package cpu

// Bus is the narrow surface the CPU requires from its memory collaborator.
// readOnly reads must have no side effects (important where PPU register
// reads clear status bits) — the disassembler relies on this.
type Bus interface {
	Read(addr uint16, readOnly bool) uint8
	Write(addr uint16, data uint8)
}

// Logger receives per-instruction trace lines when tracing is enabled.
// The default logger discards everything.
type Logger interface {
	Log(msg string)
}

type nopLogger struct{}

func (nopLogger) Log(string) {}

// instruction is an immutable dispatch table entry pairing an addressing
// mode function, an opcode function, and the base cycle count. 256 of
// these, indexed by opcode byte, make up the table in optable.go.
type instruction struct {
	mnemonic string
	addrMode addrModeID
	operate  func(c *CPU) uint8
	addr     func(c *CPU) uint8
	cycles   uint8
}

type addrModeID int

const (
	modeIMP addrModeID = iota
	modeIMM
	modeZP0
	modeZPX
	modeZPY
	modeREL
	modeABS
	modeABX
	modeABY
	modeIND
	modeIZX
	modeIZY
)

// CPU holds MOS 6502 register and execution state. It has no memory of its
// own; all reads and writes are routed through the attached Bus.
type CPU struct {
	A uint8  // accumulator
	X uint8  // index register X
	Y uint8  // index register Y
	SP uint8 // stack pointer; stack lives at 0x0100+SP, grows downward
	PC uint16
	P  uint8 // status register, bits N V U B D I Z C from MSB to LSB

	bus Bus

	fetched uint8  // operand latch for the current instruction
	addrAbs uint16 // effective-address latch
	addrRel uint16 // sign-extended branch offset latch
	opcode  uint8  // current instruction opcode
	cycles  uint8  // cycles still owed to the current instruction

	clockCount uint64 // total ticks since construction; used only for tracing

	logger Logger
	trace  bool
}

// New constructs a CPU with all registers zeroed. Call Attach before
// clocking it.
func New() *CPU {
	return &CPU{logger: nopLogger{}}
}

// Attach binds the CPU to its bus collaborator. Must be called before the
// first Clock/Reset/IRQ/NMI.
func (c *CPU) Attach(bus Bus) {
	c.bus = bus
}

// SetLogger installs a trace sink. Pass nil to discard trace output.
func (c *CPU) SetLogger(l Logger) {
	if l == nil {
		c.logger = nopLogger{}
		return
	}
	c.logger = l
}

// SetTrace enables or disables per-instruction trace logging.
func (c *CPU) SetTrace(enable bool) {
	c.trace = enable
}

// read fetches one byte from the bus with side effects enabled — the
// normal path for every opcode and addressing-mode routine.
func (c *CPU) read(addr uint16) uint8 {
	return c.bus.Read(addr, false)
}

// read16 reads a little-endian 16-bit value starting at addr.
func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

func (c *CPU) write(addr uint16, data uint8) {
	c.bus.Write(addr, data)
}

// push writes a byte to the stack page and decrements SP (wrapping).
func (c *CPU) push(data uint8) {
	c.write(0x0100+uint16(c.SP), data)
	c.SP--
}

// pop increments SP (wrapping) and reads the byte now pointed to.
func (c *CPU) pop() uint8 {
	c.SP++
	return c.read(0x0100 + uint16(c.SP))
}

func (c *CPU) pushPC() {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC & 0x00FF))
}

func (c *CPU) popPC() {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	c.PC = hi<<8 | lo
}

// fetch obtains the operand for the current instruction into c.fetched.
// Implied-mode instructions already latched the accumulator during their
// addressing-mode routine and are left untouched.
func (c *CPU) fetch() uint8 {
	if lookup[c.opcode].addrMode != modeIMP {
		c.fetched = c.read(c.addrAbs)
	}
	return c.fetched
}

// Reset forces the CPU into its power-up state. Registers are cleared
// (A=X=Y=0), SP is set to 0xFD, the status register is cleared except for
// the always-set Unused bit, and PC is loaded from the reset vector at
// 0xFFFC/0xFFFD. RAM is not touched — that is the bus's responsibility,
// matching real hardware.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagUnused

	c.addrAbs = 0xFFFC
	c.PC = c.read16(c.addrAbs)

	c.addrRel = 0
	c.fetched = 0
	c.addrAbs = 0

	c.cycles = 8
}

// IRQ requests a maskable interrupt. If the Interrupt-disable flag is set
// this is a no-op; otherwise the current PC and status are pushed (with
// Break cleared and Unused/Interrupt-disable set before the push), PC is
// loaded from the IRQ vector at 0xFFFE/0xFFFF, and 7 cycles are charged.
func (c *CPU) IRQ() {
	if c.GetFlag(FlagInterrupt) != 0 {
		return
	}

	c.pushPC()

	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagUnused, true)
	c.SetFlag(FlagInterrupt, true)
	c.push(c.P)

	c.addrAbs = 0xFFFE
	c.PC = c.read16(c.addrAbs)

	c.cycles = 7
}

// NMI requests a non-maskable interrupt. Identical push discipline to IRQ
// but cannot be masked and vectors through 0xFFFA/0xFFFB, charging 8
// cycles.
func (c *CPU) NMI() {
	c.pushPC()

	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagUnused, true)
	c.SetFlag(FlagInterrupt, true)
	c.push(c.P)

	c.addrAbs = 0xFFFA
	c.PC = c.read16(c.addrAbs)

	c.cycles = 8
}

// Clock runs one tick of the CPU. If the current instruction has finished
// (cycles == 0), a new instruction is fetched, decoded, and executed; the
// cycle count it owes (base cost plus any earned extra cycle) is latched.
// Every call, including the one that starts an instruction, ends by
// decrementing cycles. Clock must only be called by the system clock
// coordinator (Bus.Clock); Reset/IRQ/NMI must only be delivered when
// Complete() is true.
func (c *CPU) Clock() {
	if c.cycles == 0 {
		c.opcode = c.read(c.PC)
		c.SetFlag(FlagUnused, true)
		c.PC++

		inst := lookup[c.opcode]
		c.cycles = inst.cycles

		addrExtra := inst.addr(c)
		opExtra := inst.operate(c)
		c.cycles += addrExtra & opExtra

		c.SetFlag(FlagUnused, true)

		if c.trace {
			c.logger.Log(c.traceLine(inst))
		}
	}

	c.clockCount++
	c.cycles--
}

// Complete reports whether the current instruction has finished — the
// CPU is on an instruction boundary.
func (c *CPU) Complete() bool {
	return c.cycles == 0
}
