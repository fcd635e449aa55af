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

// Package ines parses the 16-byte header every NES ROM dump is prefixed
// with, including the fields a minimal loader can get away with
// ignoring: NES 2.0 detection, TV system, four-screen mirroring, and
// persistent SRAM.
package ines

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// HeaderSize is the fixed length of an iNES header, trainer and ROM
// banks excluded.
const HeaderSize = 16

// MirroringDirection selects how the PPU's two nametables are mirrored
// when the cartridge has no four-screen RAM of its own.
type MirroringDirection int

// TVSystemType is the simple NTSC/PAL bit from flag 9.
type TVSystemType int

// TVCompatibleType is the richer (and sometimes dual) TV-system
// encoding from flag 10, an unofficial extension most dumpers set to
// zero.
type TVCompatibleType int

const (
	MirroringHorizontal MirroringDirection = 0
	MirroringVertical   MirroringDirection = 1

	TVSystemNTSC TVSystemType = 0
	TVSystemPAL  TVSystemType = 1

	TVCompatibleNTSC TVCompatibleType = 0
	TVCompatiblePAL  TVCompatibleType = 2
	TVCompatibleDual TVCompatibleType = 3
)

func (d MirroringDirection) String() string {
	switch d {
	case MirroringHorizontal:
		return "Horizontal"
	case MirroringVertical:
		return "Vertical"
	default:
		return "N/A"
	}
}

func (t TVSystemType) String() string {
	switch t {
	case TVSystemNTSC:
		return "NTSC"
	case TVSystemPAL:
		return "PAL"
	default:
		return "N/A"
	}
}

func (t TVCompatibleType) String() string {
	switch t {
	case TVCompatibleNTSC:
		return "NTSC"
	case TVCompatiblePAL:
		return "PAL"
	case TVCompatibleDual:
		return "DUAL"
	default:
		return "N/A"
	}
}

// Header is a parsed iNES (optionally NES 2.0) header.
type Header struct {
	Identifier [4]byte
	PRG        uint8 // PRG ROM size, 16KB units
	CHR        uint8 // CHR ROM size, 8KB units; 0 means CHR RAM only
	Flag6      uint8 // NNNN FTBM
	Flag7      uint8 // NNNN xxPV
	PRGRAM     uint8 // PRG RAM size, 8KB units; 0 infers 8KB for compatibility
	Flag9      uint8 // xxxx xxxT
	Flag10     uint8 // xxBP xxTT
}

var (
	standardIdentifier = []byte{0x4E, 0x45, 0x53, 0x1A}

	magic2mapper = map[int]string{
		0: "No Mapper", 1: "MMC1", 2: "UNROM", 3: "CNROM", 4: "MMC3", 5: "MMC5",
		7: "AOROM", 9: "MMC2", 10: "MMC4", 11: "Colour Dreams", 13: "CPROM",
		16: "Bandai", 19: "Namcot 106", 21: "Konami VRC4-2A", 22: "Konami VRC4-1B",
		23: "Konami VRC2B", 24: "Konami VRC6", 25: "Konami VRC4", 64: "Rambo-1",
		66: "74161/32", 69: "Sunsoft 5", 71: "Camerica", 85: "VRC7",
	}
)

// NewHeader parses a 16-byte iNES header from r. It returns a wrapped
// error on short reads, a bad magic number, or a padding region that is
// not all zero (NES 2.0 headers use that space for extra fields and are
// accepted regardless).
func NewHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if n, err := io.ReadAtLeast(r, buf, HeaderSize); err != nil || n != HeaderSize {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, errors.Wrap(err, "ines: reading header")
	}

	h := &Header{}
	copy(h.Identifier[:], buf[:4])
	if !bytes.Equal(h.Identifier[:], standardIdentifier) {
		return nil, errors.Errorf("ines: bad magic %x, want %x", h.Identifier, standardIdentifier)
	}

	h.PRG = buf[4]
	h.CHR = buf[5]
	h.Flag6 = buf[6]
	h.Flag7 = buf[7]
	h.PRGRAM = buf[8]
	h.Flag9 = buf[9]
	h.Flag10 = buf[10]

	if !h.NES20() {
		for _, b := range buf[11:16] {
			if b != 0 {
				return nil, errors.New("ines: non-zero padding in an iNES 1.0 header")
			}
		}
	}

	return h, nil
}

// PRGROMSize is the size of the PRG ROM image in bytes.
func (h *Header) PRGROMSize() int { return int(h.PRG) * 16 * 1024 }

// CHRROMSize is the size of the CHR ROM image in bytes.
func (h *Header) CHRROMSize() int { return int(h.CHR) * 8 * 1024 }

// Mapper returns the mapper id: its low nybble is the high nybble of
// Flag6, its high nybble is the high nybble of Flag7.
func (h *Header) Mapper() uint8 {
	return (h.Flag6&0xF0)>>4 | h.Flag7&0xF0
}

// FourScreenMode reports whether the cartridge supplies its own
// four-screen VRAM, overriding the Mirroring() bit entirely.
func (h *Header) FourScreenMode() bool { return h.Flag6&0x08 != 0 }

// Trainer reports whether a 512-byte trainer precedes the PRG ROM.
func (h *Header) Trainer() bool { return h.Flag6&0x04 != 0 }

// PersistentSRAM reports whether the cartridge has battery-backed
// save RAM at 0x6000-0x7FFF.
func (h *Header) PersistentSRAM() bool { return h.Flag6&0x02 != 0 }

// Mirroring returns the nametable mirroring direction.
func (h *Header) Mirroring() MirroringDirection {
	return MirroringDirection(h.Flag6 & 0x01)
}

// NES20 reports whether flags 8-15 should be read as the NES 2.0
// extension rather than the plain iNES 1.0 padding.
func (h *Header) NES20() bool { return h.Flag7&0x0C == 0x08 }

// PlayChoice10 reports the PC-10 hint-screen-data flag.
func (h *Header) PlayChoice10() bool { return h.Flag7&0x02 != 0 }

// Vs reports the Vs. Unisystem flag.
func (h *Header) Vs() bool { return h.Flag7&0x01 != 0 }

// PRGRAMSize is the size of PRG RAM in KB; a zero header byte infers
// 8KB for compatibility with dumpers that predate this field.
func (h *Header) PRGRAMSize() int {
	if h.PRGRAM == 0 {
		return 8
	}
	return int(h.PRGRAM) * 8
}

// TVSystem returns the simple NTSC/PAL flag from byte 9.
func (h *Header) TVSystem() TVSystemType {
	return TVSystemType(h.Flag9 & 0x01)
}

// TVCompatible returns the richer TV-system encoding from byte 10.
func (h *Header) TVCompatible() TVCompatibleType {
	switch h.Flag10 & 0x03 {
	case 1, 3:
		return TVCompatibleDual
	default:
		return TVCompatibleType(h.Flag10 & 0x03)
	}
}

// PRGRAMPresent reports whether the board carries PRG RAM at all.
func (h *Header) PRGRAMPresent() bool { return h.Flag10&0x10 == 0 }

// BusConflict reports whether the board is known to suffer bus
// conflicts on mapper register writes.
func (h *Header) BusConflict() bool { return h.Flag10&0x20 != 0 }

// MapperName looks up a friendly name for a mapper id, or "Unknown".
func MapperName(id int) string {
	if name, ok := magic2mapper[id]; ok {
		return name
	}
	return "Unknown"
}

// String renders a human-readable dump of the header, used by the
// debugger's cartridge-info panel.
func (h *Header) String() string {
	ver := "iNES1.0"
	if h.NES20() {
		ver = "iNES2.0"
	}
	return fmt.Sprintf(`HDR: %s
VER: %s
PRG: %d (%dKB)
CHR: %d (%dKB)
MAP: %d (%s)
PRGRAM: %dKB
FourScreen: %t
Trainer: %t
PersistentSRAM: %t
Mirroring: %s
PlayChoice10: %t
VsUnisystem: %t
TVSystem: %s
TVCompatible: %s
BusConflict: %t`,
		string(h.Identifier[:]), ver,
		h.PRG, h.PRG*16,
		h.CHR, h.CHR*8,
		h.Mapper(), MapperName(int(h.Mapper())),
		h.PRGRAMSize(),
		h.FourScreenMode(),
		h.Trainer(),
		h.PersistentSRAM(),
		h.Mirroring(),
		h.PlayChoice10(),
		h.Vs(),
		h.TVSystem(),
		h.TVCompatible(),
		h.BusConflict(),
	)
}
