package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildROM(prgBanks, chrBanks uint8, trainer bool) []byte {
	header := make([]byte, 16)
	copy(header[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	header[4] = prgBanks
	header[5] = chrBanks
	if trainer {
		header[6] |= 0x04
	}

	buf := &bytes.Buffer{}
	buf.Write(header)
	if trainer {
		buf.Write(make([]byte, 512))
	}
	buf.Write(make([]byte, int(prgBanks)*16*1024))
	buf.Write(make([]byte, int(chrBanks)*8*1024))
	return buf.Bytes()
}

func TestLoadValidROM(t *testing.T) {
	rom := buildROM(2, 1, false)
	cart, err := Load(bytes.NewReader(rom))
	assert.NoError(t, err)
	assert.NotNil(t, cart)

	_, ok := cart.CpuRead(0x7FFF)
	assert.False(t, ok, "below 0x8000 the cartridge must not claim the address")

	_, ok = cart.CpuRead(0x8000)
	assert.True(t, ok)
}

func TestLoadWithTrainerIsDiscarded(t *testing.T) {
	rom := buildROM(1, 1, true)
	cart, err := Load(bytes.NewReader(rom))
	assert.NoError(t, err)
	assert.NotNil(t, cart)
}

func TestLoadNilReader(t *testing.T) {
	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoadTruncatedPRG(t *testing.T) {
	rom := buildROM(2, 1, false)
	rom = rom[:len(rom)-1024] // chop off the tail of PRG ROM
	_, err := Load(bytes.NewReader(rom))
	assert.Error(t, err)
}

func TestLoadUnsupportedMapper(t *testing.T) {
	header := make([]byte, 16)
	copy(header[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	header[4] = 1
	header[5] = 1
	header[6] = 0x10 // mapper low nybble 1 -> mapper id 1 (unsupported)

	buf := &bytes.Buffer{}
	buf.Write(header)
	buf.Write(make([]byte, 16*1024))
	buf.Write(make([]byte, 8*1024))

	_, err := Load(bytes.NewReader(buf.Bytes()))
	assert.Error(t, err)
}

func TestMapper000BankMirroring(t *testing.T) {
	// single 16KB PRG bank: 0x8000 and 0xC000 must mirror the same byte
	rom := buildROM(1, 1, false)
	data := rom[16:]
	data[0x0010] = 0x99

	cart, err := Load(bytes.NewReader(rom))
	assert.NoError(t, err)

	lo, ok := cart.CpuRead(0x8010)
	assert.True(t, ok)
	assert.Equal(t, uint8(0x99), lo)

	hi, ok := cart.CpuRead(0xC010)
	assert.True(t, ok)
	assert.Equal(t, uint8(0x99), hi)
}
