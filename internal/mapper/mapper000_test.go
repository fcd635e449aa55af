package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapper000SingleBankMirror(t *testing.T) {
	m := NewMapper000(1, 1)

	lo, ok := m.CpuMapRead(0x8000)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0000), lo)

	hi, ok := m.CpuMapRead(0xC000)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0000), hi, "16KB PRG mirrors across 0xC000-0xFFFF")
}

func TestMapper000DoubleBankFlat(t *testing.T) {
	m := NewMapper000(2, 1)

	mapped, ok := m.CpuMapRead(0xC000)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x4000), mapped)
}

func TestMapper000BelowWindowUnclaimed(t *testing.T) {
	m := NewMapper000(1, 1)
	_, ok := m.CpuMapRead(0x7FFF)
	assert.False(t, ok)
}

func TestMapper000CHRRAMWhenNoBanks(t *testing.T) {
	m := NewMapper000(1, 0)
	mapped, ok := m.PpuMapWrite(0x0010)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0010), mapped)
}

func TestMapper000CHRROMReadOnly(t *testing.T) {
	m := NewMapper000(1, 1)
	_, ok := m.PpuMapWrite(0x0010)
	assert.False(t, ok, "CHR ROM is not writable")

	_, ok = m.PpuMapRead(0x0010)
	assert.True(t, ok)
}
