package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterWindowReadWrite(t *testing.T) {
	p := New()
	p.CpuWrite(3, 0x7F)
	assert.Equal(t, uint8(0x7F), p.CpuRead(3, false))
}

func TestClockScanlineWrap(t *testing.T) {
	p := New()
	for i := 0; i < 341; i++ {
		p.Clock()
	}
	assert.Equal(t, int16(0), p.Cycle)
	assert.Equal(t, int16(1), p.Scanline)
}
