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

import (
	"fmt"
	"strings"
)

// Disassembly holds the result of a Disassemble call: Order lists the
// addresses in the sequence they were decoded (so callers needn't sort
// the map), and Lines holds the formatted text for each. Addresses left
// of zero (padding requested via a negative start) carry an empty line.
type Disassembly struct {
	Order []int32
	Lines map[int32]string
}

// Disassemble renders memory in [start, end] as text, one line per
// instruction, keyed by the address it starts at. It reads exclusively
// through the bus's side-effect-free path and never mutates CPU state.
// If start is negative, that many blank entries are inserted ahead of
// address 0 so callers building a fixed-height view don't need to
// special-case the top of the range.
func (c *CPU) Disassemble(start, end int32) *Disassembly {
	d := &Disassembly{Lines: make(map[int32]string)}

	addr := start
	for addr < 0 {
		d.Order = append(d.Order, addr)
		d.Lines[addr] = ""
		addr++
	}

	a := uint32(addr)
	for a <= uint32(end) {
		lineAddr := int32(a)
		sb := &strings.Builder{}

		if uint16(a) == c.PC {
			sb.WriteString("> ")
		} else {
			sb.WriteString("  ")
		}
		fmt.Fprintf(sb, "$%04X: ", uint16(a))

		opcode := c.bus.Read(uint16(a), true)
		a++
		inst := lookup[opcode]
		sb.WriteString(inst.mnemonic)
		sb.WriteRune(' ')

		switch inst.addrMode {
		case modeIMP:
			sb.WriteString("{IMP}")
		case modeIMM:
			v := c.bus.Read(uint16(a), true)
			a++
			fmt.Fprintf(sb, "#$%02X {IMM}", v)
		case modeZP0:
			lo := c.bus.Read(uint16(a), true)
			a++
			fmt.Fprintf(sb, "$%02X {ZP0}", lo)
		case modeZPX:
			lo := c.bus.Read(uint16(a), true)
			a++
			fmt.Fprintf(sb, "$%02X, X {ZPX}", lo)
		case modeZPY:
			lo := c.bus.Read(uint16(a), true)
			a++
			fmt.Fprintf(sb, "$%02X, Y {ZPY}", lo)
		case modeIZX:
			lo := c.bus.Read(uint16(a), true)
			a++
			fmt.Fprintf(sb, "($%02X, X) {IZX}", lo)
		case modeIZY:
			lo := c.bus.Read(uint16(a), true)
			a++
			fmt.Fprintf(sb, "($%02X, Y) {IZY}", lo)
		case modeABS:
			lo := uint16(c.bus.Read(uint16(a), true))
			a++
			hi := uint16(c.bus.Read(uint16(a), true))
			a++
			fmt.Fprintf(sb, "$%04X {ABS}", hi<<8|lo)
		case modeABX:
			lo := uint16(c.bus.Read(uint16(a), true))
			a++
			hi := uint16(c.bus.Read(uint16(a), true))
			a++
			fmt.Fprintf(sb, "$%04X, X {ABX}", hi<<8|lo)
		case modeABY:
			lo := uint16(c.bus.Read(uint16(a), true))
			a++
			hi := uint16(c.bus.Read(uint16(a), true))
			a++
			fmt.Fprintf(sb, "$%04X, Y {ABY}", hi<<8|lo)
		case modeIND:
			lo := uint16(c.bus.Read(uint16(a), true))
			a++
			hi := uint16(c.bus.Read(uint16(a), true))
			a++
			fmt.Fprintf(sb, "($%04X) {IND}", hi<<8|lo)
		case modeREL:
			v := c.bus.Read(uint16(a), true)
			a++
			offset := int32(v)
			if offset&0x80 != 0 {
				offset |= ^int32(0xFF)
			}
			fmt.Fprintf(sb, "$%02X [$%04X] {REL}", v, uint16(int32(a)+offset))
		}

		d.Order = append(d.Order, lineAddr)
		d.Lines[lineAddr] = sb.String()
	}

	return d
}
