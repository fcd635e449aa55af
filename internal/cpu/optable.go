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

import "fmt"

// lookup is the 256-entry opcode dispatch table, indexed by opcode byte.
// Unofficial opcodes not implemented as their real silicon behavior are
// mapped to XXX, a placeholder with no effect whose cost (2 to 8 cycles)
// is the one listed in its slot.
var lookup = [256]instruction{
	{"BRK", modeIMP, opBRK, amIMP, 7}, {"ORA", modeIZX, opORA, amIZX, 6}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"NOP", modeZP0, opNOP, amZP0, 3}, {"ORA", modeZP0, opORA, amZP0, 3}, {"ASL", modeZP0, opASL, amZP0, 5}, {"???", modeIMP, opXXX, amIMP, 5},
	{"PHP", modeIMP, opPHP, amIMP, 3}, {"ORA", modeIMM, opORA, amIMM, 2}, {"ASL", modeIMP, opASL, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 2},
	{"NOP", modeABS, opNOP, amABS, 4}, {"ORA", modeABS, opORA, amABS, 4}, {"ASL", modeABS, opASL, amABS, 6}, {"???", modeIMP, opXXX, amIMP, 6},

	{"BPL", modeREL, opBPL, amREL, 2}, {"ORA", modeIZY, opORA, amIZY, 5}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"NOP", modeZPX, opNOP, amZPX, 4}, {"ORA", modeZPX, opORA, amZPX, 4}, {"ASL", modeZPX, opASL, amZPX, 6}, {"???", modeIMP, opXXX, amIMP, 6},
	{"CLC", modeIMP, opCLC, amIMP, 2}, {"ORA", modeABY, opORA, amABY, 4}, {"NOP", modeIMP, opNOP, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 7},
	{"NOP", modeABX, opNOP, amABX, 4}, {"ORA", modeABX, opORA, amABX, 4}, {"ASL", modeABX, opASL, amABX, 7}, {"???", modeIMP, opXXX, amIMP, 7},

	{"JSR", modeABS, opJSR, amABS, 6}, {"AND", modeIZX, opAND, amIZX, 6}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"BIT", modeZP0, opBIT, amZP0, 3}, {"AND", modeZP0, opAND, amZP0, 3}, {"ROL", modeZP0, opROL, amZP0, 5}, {"???", modeIMP, opXXX, amIMP, 5},
	{"PLP", modeIMP, opPLP, amIMP, 4}, {"AND", modeIMM, opAND, amIMM, 2}, {"ROL", modeIMP, opROL, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 2},
	{"BIT", modeABS, opBIT, amABS, 4}, {"AND", modeABS, opAND, amABS, 4}, {"ROL", modeABS, opROL, amABS, 6}, {"???", modeIMP, opXXX, amIMP, 6},

	{"BMI", modeREL, opBMI, amREL, 2}, {"AND", modeIZY, opAND, amIZY, 5}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"NOP", modeZPX, opNOP, amZPX, 4}, {"AND", modeZPX, opAND, amZPX, 4}, {"ROL", modeZPX, opROL, amZPX, 6}, {"???", modeIMP, opXXX, amIMP, 6},
	{"SEC", modeIMP, opSEC, amIMP, 2}, {"AND", modeABY, opAND, amABY, 4}, {"NOP", modeIMP, opNOP, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 7},
	{"NOP", modeABX, opNOP, amABX, 4}, {"AND", modeABX, opAND, amABX, 4}, {"ROL", modeABX, opROL, amABX, 7}, {"???", modeIMP, opXXX, amIMP, 7},

	{"RTI", modeIMP, opRTI, amIMP, 6}, {"EOR", modeIZX, opEOR, amIZX, 6}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"NOP", modeZP0, opNOP, amZP0, 3}, {"EOR", modeZP0, opEOR, amZP0, 3}, {"LSR", modeZP0, opLSR, amZP0, 5}, {"???", modeIMP, opXXX, amIMP, 5},
	{"PHA", modeIMP, opPHA, amIMP, 3}, {"EOR", modeIMM, opEOR, amIMM, 2}, {"LSR", modeIMP, opLSR, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 2},
	{"JMP", modeABS, opJMP, amABS, 3}, {"EOR", modeABS, opEOR, amABS, 4}, {"LSR", modeABS, opLSR, amABS, 6}, {"???", modeIMP, opXXX, amIMP, 6},

	{"BVC", modeREL, opBVC, amREL, 2}, {"EOR", modeIZY, opEOR, amIZY, 5}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"NOP", modeZPX, opNOP, amZPX, 4}, {"EOR", modeZPX, opEOR, amZPX, 4}, {"LSR", modeZPX, opLSR, amZPX, 6}, {"???", modeIMP, opXXX, amIMP, 6},
	{"CLI", modeIMP, opCLI, amIMP, 2}, {"EOR", modeABY, opEOR, amABY, 4}, {"NOP", modeIMP, opNOP, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 7},
	{"NOP", modeABX, opNOP, amABX, 4}, {"EOR", modeABX, opEOR, amABX, 4}, {"LSR", modeABX, opLSR, amABX, 7}, {"???", modeIMP, opXXX, amIMP, 7},

	{"RTS", modeIMP, opRTS, amIMP, 6}, {"ADC", modeIZX, opADC, amIZX, 6}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"NOP", modeZP0, opNOP, amZP0, 3}, {"ADC", modeZP0, opADC, amZP0, 3}, {"ROR", modeZP0, opROR, amZP0, 5}, {"???", modeIMP, opXXX, amIMP, 5},
	{"PLA", modeIMP, opPLA, amIMP, 4}, {"ADC", modeIMM, opADC, amIMM, 2}, {"ROR", modeIMP, opROR, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 2},
	{"JMP", modeIND, opJMP, amIND, 5}, {"ADC", modeABS, opADC, amABS, 4}, {"ROR", modeABS, opROR, amABS, 6}, {"???", modeIMP, opXXX, amIMP, 6},

	{"BVS", modeREL, opBVS, amREL, 2}, {"ADC", modeIZY, opADC, amIZY, 5}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"NOP", modeZPX, opNOP, amZPX, 4}, {"ADC", modeZPX, opADC, amZPX, 4}, {"ROR", modeZPX, opROR, amZPX, 6}, {"???", modeIMP, opXXX, amIMP, 6},
	{"SEI", modeIMP, opSEI, amIMP, 2}, {"ADC", modeABY, opADC, amABY, 4}, {"NOP", modeIMP, opNOP, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 7},
	{"NOP", modeABX, opNOP, amABX, 4}, {"ADC", modeABX, opADC, amABX, 4}, {"ROR", modeABX, opROR, amABX, 7}, {"???", modeIMP, opXXX, amIMP, 7},

	{"NOP", modeIMM, opNOP, amIMM, 2}, {"STA", modeIZX, opSTA, amIZX, 6}, {"NOP", modeIMM, opNOP, amIMM, 2}, {"???", modeIMP, opXXX, amIMP, 6},
	{"STY", modeZP0, opSTY, amZP0, 3}, {"STA", modeZP0, opSTA, amZP0, 3}, {"STX", modeZP0, opSTX, amZP0, 3}, {"???", modeIMP, opXXX, amIMP, 3},
	{"DEY", modeIMP, opDEY, amIMP, 2}, {"NOP", modeIMM, opNOP, amIMM, 2}, {"TXA", modeIMP, opTXA, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 2},
	{"STY", modeABS, opSTY, amABS, 4}, {"STA", modeABS, opSTA, amABS, 4}, {"STX", modeABS, opSTX, amABS, 4}, {"???", modeIMP, opXXX, amIMP, 4},

	{"BCC", modeREL, opBCC, amREL, 2}, {"STA", modeIZY, opSTA, amIZY, 6}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 6},
	{"STY", modeZPX, opSTY, amZPX, 4}, {"STA", modeZPX, opSTA, amZPX, 4}, {"STX", modeZPY, opSTX, amZPY, 4}, {"???", modeIMP, opXXX, amIMP, 4},
	{"TYA", modeIMP, opTYA, amIMP, 2}, {"STA", modeABY, opSTA, amABY, 5}, {"TXS", modeIMP, opTXS, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 5},
	{"NOP", modeABX, opNOP, amABX, 5}, {"STA", modeABX, opSTA, amABX, 5}, {"???", modeIMP, opXXX, amIMP, 5}, {"???", modeIMP, opXXX, amIMP, 5},

	{"LDY", modeIMM, opLDY, amIMM, 2}, {"LDA", modeIZX, opLDA, amIZX, 6}, {"LDX", modeIMM, opLDX, amIMM, 2}, {"???", modeIMP, opXXX, amIMP, 6},
	{"LDY", modeZP0, opLDY, amZP0, 3}, {"LDA", modeZP0, opLDA, amZP0, 3}, {"LDX", modeZP0, opLDX, amZP0, 3}, {"???", modeIMP, opXXX, amIMP, 3},
	{"TAY", modeIMP, opTAY, amIMP, 2}, {"LDA", modeIMM, opLDA, amIMM, 2}, {"TAX", modeIMP, opTAX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 2},
	{"LDY", modeABS, opLDY, amABS, 4}, {"LDA", modeABS, opLDA, amABS, 4}, {"LDX", modeABS, opLDX, amABS, 4}, {"???", modeIMP, opXXX, amIMP, 4},

	{"BCS", modeREL, opBCS, amREL, 2}, {"LDA", modeIZY, opLDA, amIZY, 5}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 5},
	{"LDY", modeZPX, opLDY, amZPX, 4}, {"LDA", modeZPX, opLDA, amZPX, 4}, {"LDX", modeZPY, opLDX, amZPY, 4}, {"???", modeIMP, opXXX, amIMP, 4},
	{"CLV", modeIMP, opCLV, amIMP, 2}, {"LDA", modeABY, opLDA, amABY, 4}, {"TSX", modeIMP, opTSX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 4},
	{"LDY", modeABX, opLDY, amABX, 4}, {"LDA", modeABX, opLDA, amABX, 4}, {"LDX", modeABY, opLDX, amABY, 4}, {"???", modeIMP, opXXX, amIMP, 4},

	{"CPY", modeIMM, opCPY, amIMM, 2}, {"CMP", modeIZX, opCMP, amIZX, 6}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"CPY", modeZP0, opCPY, amZP0, 3}, {"CMP", modeZP0, opCMP, amZP0, 3}, {"DEC", modeZP0, opDEC, amZP0, 5}, {"???", modeIMP, opXXX, amIMP, 5},
	{"INY", modeIMP, opINY, amIMP, 2}, {"CMP", modeIMM, opCMP, amIMM, 2}, {"DEX", modeIMP, opDEX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 2},
	{"CPY", modeABS, opCPY, amABS, 4}, {"CMP", modeABS, opCMP, amABS, 4}, {"DEC", modeABS, opDEC, amABS, 6}, {"???", modeIMP, opXXX, amIMP, 6},

	{"BNE", modeREL, opBNE, amREL, 2}, {"CMP", modeIZY, opCMP, amIZY, 5}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"NOP", modeZPX, opNOP, amZPX, 4}, {"CMP", modeZPX, opCMP, amZPX, 4}, {"DEC", modeZPX, opDEC, amZPX, 6}, {"???", modeIMP, opXXX, amIMP, 6},
	{"CLD", modeIMP, opCLD, amIMP, 2}, {"CMP", modeABY, opCMP, amABY, 4}, {"NOP", modeIMP, opNOP, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 7},
	{"NOP", modeABX, opNOP, amABX, 4}, {"CMP", modeABX, opCMP, amABX, 4}, {"DEC", modeABX, opDEC, amABX, 7}, {"???", modeIMP, opXXX, amIMP, 7},

	{"CPX", modeIMM, opCPX, amIMM, 2}, {"SBC", modeIZX, opSBC, amIZX, 6}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"CPX", modeZP0, opCPX, amZP0, 3}, {"SBC", modeZP0, opSBC, amZP0, 3}, {"INC", modeZP0, opINC, amZP0, 5}, {"???", modeIMP, opXXX, amIMP, 5},
	{"INX", modeIMP, opINX, amIMP, 2}, {"SBC", modeIMM, opSBC, amIMM, 2}, {"NOP", modeIMP, opNOP, amIMP, 2}, {"SBC", modeIMM, opSBC, amIMM, 2},
	{"CPX", modeABS, opCPX, amABS, 4}, {"SBC", modeABS, opSBC, amABS, 4}, {"INC", modeABS, opINC, amABS, 6}, {"???", modeIMP, opXXX, amIMP, 6},

	{"BEQ", modeREL, opBEQ, amREL, 2}, {"SBC", modeIZY, opSBC, amIZY, 5}, {"???", modeIMP, opXXX, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 8},
	{"NOP", modeZPX, opNOP, amZPX, 4}, {"SBC", modeZPX, opSBC, amZPX, 4}, {"INC", modeZPX, opINC, amZPX, 6}, {"???", modeIMP, opXXX, amIMP, 6},
	{"SED", modeIMP, opSED, amIMP, 2}, {"SBC", modeABY, opSBC, amABY, 4}, {"NOP", modeIMP, opNOP, amIMP, 2}, {"???", modeIMP, opXXX, amIMP, 7},
	{"NOP", modeABX, opNOP, amABX, 4}, {"SBC", modeABX, opSBC, amABX, 4}, {"INC", modeABX, opINC, amABX, 7}, {"???", modeIMP, opXXX, amIMP, 7},
}

// init runs a sanity check over the dispatch table: it must have exactly
// 256 entries and every entry must cost at least 2 cycles, the cheapest
// any real 6502 instruction takes.
func init() {
	if len(lookup) != 256 {
		panic(fmt.Sprintf("cpu: dispatch table has %d entries, want 256", len(lookup)))
	}
	for i, inst := range lookup {
		if inst.cycles < 2 {
			panic(fmt.Sprintf("cpu: opcode 0x%02X (%s) has implausible cycle count %d", i, inst.mnemonic, inst.cycles))
		}
	}
}
