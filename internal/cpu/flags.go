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

// Status flag bit positions, MSB to LSB: N V U B D I Z C.
const (
	FlagCarry     uint8 = 1 << 0
	FlagZero      uint8 = 1 << 1
	FlagInterrupt uint8 = 1 << 2
	FlagDecimal   uint8 = 1 << 3
	FlagBreak     uint8 = 1 << 4
	FlagUnused    uint8 = 1 << 5
	FlagOverflow  uint8 = 1 << 6
	FlagNegative  uint8 = 1 << 7
)

// GetFlag returns 1 if the given flag bit is set in P, 0 otherwise.
func (c *CPU) GetFlag(flag uint8) uint8 {
	if c.P&flag != 0 {
		return 1
	}
	return 0
}

// SetFlag sets or clears the given flag bit in P.
func (c *CPU) SetFlag(flag uint8, v bool) {
	if v {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// Pack returns the status register as a single byte. Packing is a direct
// bitwise OR of the named bits, never a chained shift — P already lives as
// one packed byte, so this is the identity.
func (c *CPU) Pack() uint8 {
	return c.P
}

// Load replaces the status register wholesale from a packed byte.
func (c *CPU) Load(p uint8) {
	c.P = p
}
