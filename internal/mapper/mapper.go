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

// Package mapper translates CPU and PPU addresses into offsets within a
// cartridge's PRG/CHR ROM images. Each mapper id gets its own type.
package mapper

// Mapper is implemented by every supported cartridge mapper. The two
// Cpu* methods translate addresses on the CPU's 0x8000-0xFFFF window;
// the two Ppu* methods translate addresses on the PPU's 0x0000-0x1FFF
// pattern-table window. The returned bool reports whether the mapper
// claims the address at all; false means the cartridge does not
// respond and the bus should fall through to its own memory.
type Mapper interface {
	CpuMapRead(addr uint16) (mapped uint32, ok bool)
	CpuMapWrite(addr uint16) (mapped uint32, ok bool)
	PpuMapRead(addr uint16) (mapped uint32, ok bool)
	PpuMapWrite(addr uint16) (mapped uint32, ok bool)
}
