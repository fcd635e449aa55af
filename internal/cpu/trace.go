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

var flagString = [8]struct {
	bit  uint8
	char rune
}{
	{FlagNegative, 'N'},
	{FlagOverflow, 'V'},
	{FlagUnused, 'U'},
	{FlagBreak, 'B'},
	{FlagDecimal, 'D'},
	{FlagInterrupt, 'I'},
	{FlagZero, 'Z'},
	{FlagCarry, 'C'},
}

// traceLine builds a Nintendulator-style trace line for the instruction
// that was just decoded and executed. The PC shown is the value after
// execution, not the address the instruction was fetched from.
func (c *CPU) traceLine(inst instruction) string {
	sb := &strings.Builder{}
	for _, f := range flagString {
		if c.P&f.bit != 0 {
			sb.WriteRune(f.char)
		} else {
			sb.WriteRune('.')
		}
	}
	return fmt.Sprintf("%10d PC:%04X %-3s %s A:%02X X:%02X Y:%02X SP:%02X",
		c.clockCount, c.PC, inst.mnemonic, sb.String(), c.A, c.X, c.Y, c.SP)
}
