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

// Package ppu is a deliberately minimal stand-in for the picture
// processing unit: just enough register surface for the bus to mirror
// its eight-register window at 0x2000-0x3FFF and keep the clock
// coordinator's 1-PPU-tick-per-call contract satisfiable. Rendering,
// nametables, and sprite evaluation are out of scope for the CPU core.
package ppu

import "github.com/sixfiveohtwo/nesgo/internal/cartridge"

// PPU holds the eight CPU-visible registers. Nothing beyond register
// read/write is modeled.
type PPU struct {
	reg  [8]uint8
	cart *cartridge.Cartridge

	Scanline int16
	Cycle    int16
}

// New constructs a PPU with all registers zeroed.
func New() *PPU {
	return &PPU{}
}

// AttachCartridge gives the PPU access to CHR ROM/RAM through the
// cartridge's mapper. A nil cartridge detaches it.
func (p *PPU) AttachCartridge(cart *cartridge.Cartridge) {
	p.cart = cart
}

// CpuWrite handles a write into the mirrored 8-register window; addr is
// expected to already be masked to 0-7 by the caller.
func (p *PPU) CpuWrite(addr uint16, data uint8) {
	p.reg[addr&0x0007] = data
}

// CpuRead handles a read from the mirrored 8-register window. readOnly
// is accepted for symmetry with Bus.Read/CPU.Bus but has no effect yet:
// none of the stubbed registers has read-clears-flag behavior.
func (p *PPU) CpuRead(addr uint16, readOnly bool) uint8 {
	return p.reg[addr&0x0007]
}

// Clock advances the PPU by one dot. Scanline/cycle bookkeeping is kept
// so a future renderer has somewhere to start; no pixel output is
// produced.
func (p *PPU) Clock() {
	p.Cycle++
	if p.Cycle >= 341 {
		p.Cycle = 0
		p.Scanline++
		if p.Scanline >= 261 {
			p.Scanline = -1
		}
	}
}
