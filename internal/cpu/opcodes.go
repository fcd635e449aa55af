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

// Opcode implementations. Each returns 1 if it is eligible to claim the
// extra cycle offered by its addressing mode, 0 otherwise; Clock() ANDs
// this against the addressing mode's own verdict so the cycle is only
// actually spent when both agree a page was crossed.

func (c *CPU) setZN(v uint8) {
	c.SetFlag(FlagZero, v == 0)
	c.SetFlag(FlagNegative, v&0x80 != 0)
}

// opADC: add with carry. The overflow flag is set when the operands share
// a sign and the result's sign differs from both — signed overflow.
func opADC(c *CPU) uint8 {
	c.fetch()
	temp := uint16(c.A) + uint16(c.fetched) + uint16(c.GetFlag(FlagCarry))

	c.SetFlag(FlagCarry, temp > 255)
	c.SetFlag(FlagZero, temp&0x00FF == 0)
	c.SetFlag(FlagNegative, temp&0x80 != 0)
	c.SetFlag(FlagOverflow, (^(uint16(c.A)^uint16(c.fetched))&(uint16(c.A)^temp))&0x0080 != 0)

	c.A = uint8(temp & 0x00FF)
	return 1
}

// opSBC: subtract with borrow, implemented as ADC against the bitwise
// complement of the operand so the same overflow arithmetic applies.
func opSBC(c *CPU) uint8 {
	c.fetch()
	value := uint16(c.fetched) ^ 0x00FF
	temp := uint16(c.A) + value + uint16(c.GetFlag(FlagCarry))

	c.SetFlag(FlagCarry, temp&0xFF00 != 0)
	c.SetFlag(FlagZero, temp&0x00FF == 0)
	c.SetFlag(FlagNegative, temp&0x0080 != 0)
	c.SetFlag(FlagOverflow, (temp^uint16(c.A))&(temp^value)&0x0080 != 0)

	c.A = uint8(temp & 0x00FF)
	return 1
}

func opAND(c *CPU) uint8 {
	c.fetch()
	c.A &= c.fetched
	c.setZN(c.A)
	return 1
}

func opASL(c *CPU) uint8 {
	c.fetch()
	temp := uint16(c.fetched) << 1
	c.SetFlag(FlagCarry, temp&0xFF00 != 0)
	result := uint8(temp & 0x00FF)
	c.setZN(result)
	if lookup[c.opcode].addrMode == modeIMP {
		c.A = result
	} else {
		c.write(c.addrAbs, result)
	}
	return 0
}

func branchIf(c *CPU, cond bool) uint8 {
	if !cond {
		return 0
	}
	c.cycles++
	c.addrAbs = c.PC + c.addrRel
	if c.addrAbs&0xFF00 != c.PC&0xFF00 {
		c.cycles++
	}
	c.PC = c.addrAbs
	return 0
}

func opBCC(c *CPU) uint8 { return branchIf(c, c.GetFlag(FlagCarry) == 0) }
func opBCS(c *CPU) uint8 { return branchIf(c, c.GetFlag(FlagCarry) == 1) }
func opBEQ(c *CPU) uint8 { return branchIf(c, c.GetFlag(FlagZero) == 1) }
func opBNE(c *CPU) uint8 { return branchIf(c, c.GetFlag(FlagZero) == 0) }
func opBMI(c *CPU) uint8 { return branchIf(c, c.GetFlag(FlagNegative) == 1) }
func opBPL(c *CPU) uint8 { return branchIf(c, c.GetFlag(FlagNegative) == 0) }
func opBVC(c *CPU) uint8 { return branchIf(c, c.GetFlag(FlagOverflow) == 0) }
func opBVS(c *CPU) uint8 { return branchIf(c, c.GetFlag(FlagOverflow) == 1) }

// opBIT: tests bits of the accumulator against memory without altering
// either. Zero reflects A&fetched; N and V are copied straight from bits
// 7 and 6 of the memory operand.
func opBIT(c *CPU) uint8 {
	c.fetch()
	temp := c.A & c.fetched
	c.SetFlag(FlagZero, temp == 0)
	c.SetFlag(FlagNegative, c.fetched&(1<<7) != 0)
	c.SetFlag(FlagOverflow, c.fetched&(1<<6) != 0)
	return 0
}

// opBRK: software interrupt. PC is incremented past the signature byte,
// then the IRQ push sequence runs with Break set in the pushed copy of P.
func opBRK(c *CPU) uint8 {
	c.PC++

	c.SetFlag(FlagInterrupt, true)
	c.pushPC()

	c.SetFlag(FlagBreak, true)
	c.push(c.P)
	c.SetFlag(FlagBreak, false)

	c.PC = c.read16(0xFFFE)
	return 0
}

func opCLC(c *CPU) uint8 { c.SetFlag(FlagCarry, false); return 0 }
func opCLD(c *CPU) uint8 { c.SetFlag(FlagDecimal, false); return 0 }
func opCLI(c *CPU) uint8 { c.SetFlag(FlagInterrupt, false); return 0 }
func opCLV(c *CPU) uint8 { c.SetFlag(FlagOverflow, false); return 0 }
func opSEC(c *CPU) uint8 { c.SetFlag(FlagCarry, true); return 0 }
func opSED(c *CPU) uint8 { c.SetFlag(FlagDecimal, true); return 0 }
func opSEI(c *CPU) uint8 { c.SetFlag(FlagInterrupt, true); return 0 }

func compare(c *CPU, reg uint8) uint8 {
	c.fetch()
	temp := uint16(reg) - uint16(c.fetched)
	c.SetFlag(FlagCarry, reg >= c.fetched)
	c.setZN(uint8(temp & 0x00FF))
	return 1
}

func opCMP(c *CPU) uint8 { return compare(c, c.A) }
func opCPX(c *CPU) uint8 { return compare(c, c.X) }
func opCPY(c *CPU) uint8 { return compare(c, c.Y) }

func opDEC(c *CPU) uint8 {
	c.fetch()
	result := c.fetched - 1
	c.write(c.addrAbs, result)
	c.setZN(result)
	return 0
}

func opDEX(c *CPU) uint8 { c.X--; c.setZN(c.X); return 0 }
func opDEY(c *CPU) uint8 { c.Y--; c.setZN(c.Y); return 0 }

func opEOR(c *CPU) uint8 {
	c.fetch()
	c.A ^= c.fetched
	c.setZN(c.A)
	return 1
}

func opINC(c *CPU) uint8 {
	c.fetch()
	result := c.fetched + 1
	c.write(c.addrAbs, result)
	c.setZN(result)
	return 0
}

func opINX(c *CPU) uint8 { c.X++; c.setZN(c.X); return 0 }
func opINY(c *CPU) uint8 { c.Y++; c.setZN(c.Y); return 0 }

func opJMP(c *CPU) uint8 {
	c.PC = c.addrAbs
	return 0
}

func opJSR(c *CPU) uint8 {
	c.PC--
	c.pushPC()
	c.PC = c.addrAbs
	return 0
}

func opRTS(c *CPU) uint8 {
	c.popPC()
	c.PC++
	return 0
}

// opRTI: return from interrupt. The Break and Unused bits are discarded
// from the popped status, matching the values IRQ/NMI/BRK cleared or set
// when pushing.
func opRTI(c *CPU) uint8 {
	c.P = c.pop()
	c.P &^= FlagBreak
	c.P &^= FlagUnused
	c.popPC()
	return 0
}

func opLDA(c *CPU) uint8 {
	c.fetch()
	c.A = c.fetched
	c.setZN(c.A)
	return 1
}

func opLDX(c *CPU) uint8 {
	c.fetch()
	c.X = c.fetched
	c.setZN(c.X)
	return 1
}

func opLDY(c *CPU) uint8 {
	c.fetch()
	c.Y = c.fetched
	c.setZN(c.Y)
	return 1
}

func opLSR(c *CPU) uint8 {
	c.fetch()
	c.SetFlag(FlagCarry, c.fetched&0x0001 != 0)
	result := c.fetched >> 1
	c.setZN(result)
	if lookup[c.opcode].addrMode == modeIMP {
		c.A = result
	} else {
		c.write(c.addrAbs, result)
	}
	return 0
}

func opNOP(c *CPU) uint8 {
	switch c.opcode {
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return 1
	default:
		return 0
	}
}

func opORA(c *CPU) uint8 {
	c.fetch()
	c.A |= c.fetched
	c.setZN(c.A)
	return 1
}

func opPHA(c *CPU) uint8 {
	c.push(c.A)
	return 0
}

// opPHP: pushes status with Break and Unused both forced set, per the
// documented 6502 behavior for a software-initiated stack push.
func opPHP(c *CPU) uint8 {
	c.push(c.P | FlagBreak | FlagUnused)
	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagUnused, false)
	return 0
}

func opPLA(c *CPU) uint8 {
	c.A = c.pop()
	c.setZN(c.A)
	return 0
}

// opPLP: pulls status from the stack. Unused is forced back on; Break is
// not part of the live register and is left to whatever the popped byte
// carries, matching IRQ/NMI/BRK's own convention of never reading it back.
func opPLP(c *CPU) uint8 {
	c.P = c.pop()
	c.SetFlag(FlagUnused, true)
	return 0
}

func opROL(c *CPU) uint8 {
	c.fetch()
	temp := uint16(c.fetched)<<1 | uint16(c.GetFlag(FlagCarry))
	c.SetFlag(FlagCarry, temp&0xFF00 != 0)
	result := uint8(temp & 0x00FF)
	c.setZN(result)
	if lookup[c.opcode].addrMode == modeIMP {
		c.A = result
	} else {
		c.write(c.addrAbs, result)
	}
	return 0
}

func opROR(c *CPU) uint8 {
	c.fetch()
	temp := uint16(c.GetFlag(FlagCarry))<<7 | uint16(c.fetched)>>1
	c.SetFlag(FlagCarry, c.fetched&0x01 != 0)
	result := uint8(temp & 0x00FF)
	c.setZN(result)
	if lookup[c.opcode].addrMode == modeIMP {
		c.A = result
	} else {
		c.write(c.addrAbs, result)
	}
	return 0
}

func opSTA(c *CPU) uint8 { c.write(c.addrAbs, c.A); return 0 }
func opSTX(c *CPU) uint8 { c.write(c.addrAbs, c.X); return 0 }
func opSTY(c *CPU) uint8 { c.write(c.addrAbs, c.Y); return 0 }

func opTAX(c *CPU) uint8 { c.X = c.A; c.setZN(c.X); return 0 }
func opTAY(c *CPU) uint8 { c.Y = c.A; c.setZN(c.Y); return 0 }
func opTSX(c *CPU) uint8 { c.X = c.SP; c.setZN(c.X); return 0 }
func opTXA(c *CPU) uint8 { c.A = c.X; c.setZN(c.A); return 0 }
func opTXS(c *CPU) uint8 { c.SP = c.X; return 0 }
func opTYA(c *CPU) uint8 { c.A = c.Y; c.setZN(c.A); return 0 }

// opXXX stands in for every undocumented opcode the table maps to a slot.
// It behaves as a NOP costing its slot's listed cycles, which is wrong for several of the real
// illegal opcodes but matches this core's documented scope of official
// instructions only.
func opXXX(c *CPU) uint8 {
	return 0
}
