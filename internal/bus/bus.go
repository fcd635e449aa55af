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

// Package bus wires the CPU, PPU, and cartridge together and owns the
// single master clock that steps them in lockstep.
package bus

import (
	"github.com/sixfiveohtwo/nesgo/internal/cartridge"
	"github.com/sixfiveohtwo/nesgo/internal/cpu"
	"github.com/sixfiveohtwo/nesgo/internal/ppu"
)

// ramSize is the amount of physical system RAM; it is mirrored across
// the CPU's full 0x0000-0x1FFF window.
const ramSize = 2048

// Bus mediates every CPU-visible memory access and drives the system
// clock. It implements cpu.Bus.
type Bus struct {
	cpu  *cpu.CPU
	ppu  *ppu.PPU
	cart *cartridge.Cartridge
	ram  [ramSize]uint8

	systemClockCounter uint64
}

// New builds a bus around the given CPU and a fresh PPU stub, and
// attaches the bus to the CPU. No cartridge is inserted yet; reads
// against cartridge-mapped space return 0 until InsertCartridge is
// called.
func New(c *cpu.CPU) *Bus {
	b := &Bus{cpu: c, ppu: ppu.New()}
	c.Attach(b)
	return b
}

// InsertCartridge attaches a cartridge, giving it first refusal on
// every bus transaction and handing the PPU its CHR ROM/RAM access.
func (b *Bus) InsertCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
	b.ppu.AttachCartridge(cart)
}

// Write dispatches a CPU-side write. The cartridge sees every
// transaction first and may claim (and veto further propagation of)
// any address; failing that, RAM is mirrored across 0x0000-0x1FFF and
// the PPU's eight registers are mirrored across 0x2000-0x3FFF. Writes
// to unclaimed addresses are silently dropped, matching open-bus
// hardware behavior.
func (b *Bus) Write(addr uint16, data uint8) {
	if b.cart != nil && b.cart.CpuWrite(addr, data) {
		return
	}
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = data
	case addr >= 0x2000 && addr <= 0x3FFF:
		b.ppu.CpuWrite(addr&0x0007, data)
	}
}

// Read dispatches a CPU-side read, in the same priority order as
// Write. readOnly is forwarded to the PPU so the disassembler can
// inspect registers without clearing their side-effect bits.
func (b *Bus) Read(addr uint16, readOnly bool) uint8 {
	if b.cart != nil {
		if data, ok := b.cart.CpuRead(addr); ok {
			return data
		}
	}
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&0x07FF]
	case addr >= 0x2000 && addr <= 0x3FFF:
		return b.ppu.CpuRead(addr&0x0007, readOnly)
	}
	return 0
}

// Reset re-initializes the CPU's registers and flags and restarts the
// clock counter. System RAM is left untouched, matching hardware: a
// reset line twiddles the CPU, not the memory chips behind it.
func (b *Bus) Reset() {
	b.cpu.Reset()
	b.systemClockCounter = 0
}

// Clock steps the whole system by one PPU dot. The PPU ticks every
// call; the CPU, which runs three times slower, ticks every third
// call. This is the sole entry point for advancing emulated time.
func (b *Bus) Clock() {
	b.ppu.Clock()

	if b.systemClockCounter%3 == 0 {
		b.cpu.Clock()
	}

	b.systemClockCounter++
}

// CPU returns the bus's attached CPU, for callers (tests, the
// debugger) that need direct register/trace access.
func (b *Bus) CPU() *cpu.CPU { return b.cpu }

// PPU returns the bus's attached PPU stub.
func (b *Bus) PPU() *ppu.PPU { return b.ppu }
