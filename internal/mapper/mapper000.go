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

package mapper

// Mapper000 is the no-bank-switching mapper (iNES id 0, "NROM"). PRG ROM
// of 16KB is mirrored across the whole 0x8000-0xFFFF window; 32KB is
// mapped flat. CHR ROM, when absent, is treated as 8KB of CHR RAM.
type Mapper000 struct {
	prgBanks uint8
	chrBanks uint8
}

// NewMapper000 builds a mapper for a cartridge with the given PRG/CHR
// bank counts (each bank is 16KB PRG / 8KB CHR, per the iNES header).
func NewMapper000(prgBanks, chrBanks uint8) *Mapper000 {
	return &Mapper000{prgBanks: prgBanks, chrBanks: chrBanks}
}

func (m *Mapper000) CpuMapRead(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	if m.prgBanks > 1 {
		return uint32(addr & 0x7FFF), true
	}
	return uint32(addr & 0x3FFF), true
}

func (m *Mapper000) CpuMapWrite(addr uint16) (uint32, bool) {
	return m.CpuMapRead(addr)
}

func (m *Mapper000) PpuMapRead(addr uint16) (uint32, bool) {
	if addr <= 0x1FFF {
		return uint32(addr), true
	}
	return 0, false
}

func (m *Mapper000) PpuMapWrite(addr uint16) (uint32, bool) {
	if addr <= 0x1FFF && m.chrBanks == 0 {
		return uint32(addr), true
	}
	return 0, false
}
