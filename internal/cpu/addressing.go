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

package cpu

// Addressing modes. Each returns 1 if the mode may need an extra cycle
// (a page boundary was crossed), 0 otherwise. The extra cycle is only
// actually charged if the opcode is also eligible (see CPU.Clock).

// amIMP: no operand; the accumulator is latched for instructions like ASL
// that target it directly.
func amIMP(c *CPU) uint8 {
	c.fetched = c.A
	return 0
}

// amIMM: operand is the next byte in the instruction stream.
func amIMM(c *CPU) uint8 {
	c.addrAbs = c.PC
	c.PC++
	return 0
}

// amZP0: operand addresses the first page (0x0000-0x00FF).
func amZP0(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC))
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// amZPX: zero page, offset by X, wrapping within the page.
func amZPX(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC) + c.X)
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// amZPY: zero page, offset by Y (used by LDX/STX).
func amZPY(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC) + c.Y)
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// amREL: branch-only mode; reads a signed byte offset relative to the
// following instruction.
func amREL(c *CPU) uint8 {
	c.addrRel = uint16(c.read(c.PC))
	c.PC++
	if c.addrRel&0x80 != 0 {
		c.addrRel |= 0xFF00
	}
	return 0
}

// amABS: full 16-bit address, little-endian.
func amABS(c *CPU) uint8 {
	c.addrAbs = c.read16(c.PC)
	c.PC += 2
	return 0
}

// amABX: absolute, offset by X. Costs an extra cycle if the offset
// crosses a page boundary.
func amABX(c *CPU) uint8 {
	base := c.read16(c.PC)
	c.PC += 2
	c.addrAbs = base + uint16(c.X)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// amABY: absolute, offset by Y. Same page-cross rule as amABX.
func amABY(c *CPU) uint8 {
	base := c.read16(c.PC)
	c.PC += 2
	c.addrAbs = base + uint16(c.Y)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// amIND: indirect, used only by JMP. Reproduces the well-known 6502 bug:
// if the pointer's low byte is 0xFF, the high byte of the target is
// fetched from the start of the same page instead of carrying into the
// next one.
func amIND(c *CPU) uint8 {
	ptrLo := uint16(c.read(c.PC))
	c.PC++
	ptrHi := uint16(c.read(c.PC))
	c.PC++
	ptr := ptrHi<<8 | ptrLo

	if ptrLo == 0x00FF {
		c.addrAbs = uint16(c.read(ptr&0xFF00))<<8 | uint16(c.read(ptr))
	} else {
		c.addrAbs = uint16(c.read(ptr+1))<<8 | uint16(c.read(ptr))
	}
	return 0
}

// amIZX: indexed indirect. An 8-bit zero-page pointer is offset by X
// (wrapping within the page) before the 16-bit target is read.
func amIZX(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++

	lo := uint16(c.read((t + uint16(c.X)) & 0x00FF))
	hi := uint16(c.read((t + uint16(c.X) + 1) & 0x00FF))
	c.addrAbs = hi<<8 | lo
	return 0
}

// amIZY: indirect indexed. An 8-bit zero-page pointer yields a 16-bit
// base address which is then offset by Y; a page cross in that final
// addition costs an extra cycle.
func amIZY(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++

	lo := uint16(c.read(t & 0x00FF))
	hi := uint16(c.read((t + 1) & 0x00FF))

	c.addrAbs = hi<<8 | lo
	c.addrAbs += uint16(c.Y)

	if c.addrAbs&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}
