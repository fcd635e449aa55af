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

// Package cartridge models a loaded NES ROM image: its PRG/CHR banks,
// its mapper, and the address translation the bus needs to reach them.
package cartridge

import (
	"github.com/sixfiveohtwo/nesgo/internal/ines"
	"github.com/sixfiveohtwo/nesgo/internal/mapper"
)

// Cartridge is a loaded ROM image plus the mapper that translates CPU
// and PPU addresses into offsets within it. A Cartridge always sees
// every bus access first (CpuRead/CpuWrite report ok=false when the
// mapper does not claim the address); the bus falls through to its own
// memory only when ok is false.
type Cartridge struct {
	Header *ines.Header

	memPRG []uint8
	memCHR []uint8
	mapper mapper.Mapper
}

// CpuRead attempts to satisfy a CPU-side read from PRG ROM.
func (c *Cartridge) CpuRead(addr uint16) (data uint8, ok bool) {
	mapped, claimed := c.mapper.CpuMapRead(addr)
	if !claimed {
		return 0, false
	}
	return c.memPRG[mapped], true
}

// CpuWrite attempts to satisfy a CPU-side write into PRG ROM/RAM.
func (c *Cartridge) CpuWrite(addr uint16, data uint8) bool {
	mapped, claimed := c.mapper.CpuMapWrite(addr)
	if !claimed {
		return false
	}
	c.memPRG[mapped] = data
	return true
}

// PpuRead attempts to satisfy a PPU-side read from CHR ROM/RAM.
func (c *Cartridge) PpuRead(addr uint16) (data uint8, ok bool) {
	mapped, claimed := c.mapper.PpuMapRead(addr)
	if !claimed {
		return 0, false
	}
	return c.memCHR[mapped], true
}

// PpuWrite attempts to satisfy a PPU-side write into CHR RAM.
func (c *Cartridge) PpuWrite(addr uint16, data uint8) bool {
	mapped, claimed := c.mapper.PpuMapWrite(addr)
	if !claimed {
		return false
	}
	c.memCHR[mapped] = data
	return true
}
