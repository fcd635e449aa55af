package ines

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validHeaderBytes() []byte {
	h := make([]byte, HeaderSize)
	copy(h[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	h[4] = 2    // 2 * 16KB PRG
	h[5] = 1    // 1 * 8KB CHR
	h[6] = 0x01 // vertical mirroring, mapper low nybble 0
	h[7] = 0x00 // mapper high nybble 0
	return h
}

func TestNewHeaderValid(t *testing.T) {
	h, err := NewHeader(bytes.NewReader(validHeaderBytes()))
	assert.NoError(t, err)
	assert.Equal(t, 2*16*1024, h.PRGROMSize())
	assert.Equal(t, 1*8*1024, h.CHRROMSize())
	assert.Equal(t, uint8(0), h.Mapper())
	assert.Equal(t, MirroringVertical, h.Mirroring())
}

func TestNewHeaderBadMagic(t *testing.T) {
	buf := validHeaderBytes()
	buf[0] = 0x00
	_, err := NewHeader(bytes.NewReader(buf))
	assert.Error(t, err)
}

func TestNewHeaderShortRead(t *testing.T) {
	_, err := NewHeader(bytes.NewReader([]byte{0x4E, 0x45, 0x53}))
	assert.Error(t, err)
}

func TestMapperIdAssembly(t *testing.T) {
	buf := validHeaderBytes()
	buf[6] = 0x10 // low nybble of mapper = 1
	buf[7] = 0x20 // high nybble of mapper = 2
	h, err := NewHeader(bytes.NewReader(buf))
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x21), h.Mapper())
}

func TestStringDoesNotPanic(t *testing.T) {
	h, err := NewHeader(bytes.NewReader(validHeaderBytes()))
	assert.NoError(t, err)
	assert.NotEmpty(t, h.String())
}
