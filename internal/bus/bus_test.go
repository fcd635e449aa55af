package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixfiveohtwo/nesgo/internal/cpu"
)

func TestRAMMirroring(t *testing.T) {
	b := New(cpu.New())

	b.Write(0x0000, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0x0000, false))
	assert.Equal(t, uint8(0x42), b.Read(0x0800, false), "0x0800 must mirror 0x0000")
	assert.Equal(t, uint8(0x42), b.Read(0x1800, false), "0x1800 must mirror 0x0000")
}

func TestPPURegisterMirroring(t *testing.T) {
	b := New(cpu.New())

	b.Write(0x2000, 0x11)
	assert.Equal(t, uint8(0x11), b.Read(0x2000, false))
	assert.Equal(t, uint8(0x11), b.Read(0x2008, false), "0x2008 must mirror register 0")
	assert.Equal(t, uint8(0x11), b.Read(0x3FF8, false), "0x3FF8 must mirror register 0")
}

func TestUnmappedCartridgeWindowReturnsZero(t *testing.T) {
	b := New(cpu.New())
	assert.Equal(t, uint8(0), b.Read(0x8000, false))
}

func TestResetPreservesRAM(t *testing.T) {
	b := New(cpu.New())
	b.Write(0x0010, 0xFF)
	b.Reset()
	assert.Equal(t, uint8(0xFF), b.Read(0x0010, false), "Reset must not touch RAM, matching hardware")
}

func TestClockStepsCPUEveryThirdTick(t *testing.T) {
	b := New(cpu.New())
	b.Reset() // the CPU now owes 8 reset cycles

	startCounter := b.systemClockCounter
	for i := 0; i < 3; i++ {
		b.Clock()
	}
	assert.Equal(t, startCounter+3, b.systemClockCounter)

	// 21 bus ticks give the CPU 7 of its 8 cycles; the 22nd gives the last.
	for i := 3; i < 21; i++ {
		b.Clock()
	}
	assert.False(t, b.cpu.Complete())
	b.Clock()
	assert.True(t, b.cpu.Complete())
}
