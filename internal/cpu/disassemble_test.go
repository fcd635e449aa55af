package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemblePurity(t *testing.T) {
	c, b := newTestCPU()
	b.setResetVector(0x8000)
	b.load([]byte{0xA9, 0x10, 0x8D, 0x00, 0x02, 0x4C, 0x00, 0x80}, 0x8000)
	c.Reset()

	first := c.Disassemble(0x8000, 0x8007)
	pcBefore := c.PC
	aBefore := c.A

	second := c.Disassemble(0x8000, 0x8007)

	assert.Equal(t, first.Order, second.Order)
	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, pcBefore, c.PC)
	assert.Equal(t, aBefore, c.A)
}

func TestDisassembleFormats(t *testing.T) {
	c, b := newTestCPU()
	b.setResetVector(0x8000)
	// LDA #$10 ; STA $0200 ; JMP $8000
	b.load([]byte{0xA9, 0x10, 0x8D, 0x00, 0x02, 0x4C, 0x00, 0x80}, 0x8000)
	c.Reset()

	d := c.Disassemble(0x8000, 0x8007)

	assert.Equal(t, "> $8000: LDA #$10 {IMM}", d.Lines[0x8000])
	assert.Equal(t, "  $8002: STA $0200 {ABS}", d.Lines[0x8002])
	assert.Equal(t, "  $8005: JMP $8000 {ABS}", d.Lines[0x8005])
}

func TestDisassembleNegativeStartPadding(t *testing.T) {
	c, b := newTestCPU()
	b.setResetVector(0x0000)
	b.load([]byte{0xEA}, 0x0000)
	c.Reset()

	d := c.Disassemble(-2, 0x0000)

	assert.Equal(t, []int32{-2, -1, 0}, d.Order)
	assert.Equal(t, "", d.Lines[-2])
	assert.Equal(t, "", d.Lines[-1])
	assert.Contains(t, d.Lines[0], "NOP")
}

func TestDisassembleBranchRelativeTarget(t *testing.T) {
	c, b := newTestCPU()
	b.setResetVector(0x8000)
	b.load([]byte{0x90, 0x04}, 0x8000) // BCC +4
	c.Reset()

	d := c.Disassemble(0x8000, 0x8001)
	assert.Equal(t, "> $8000: BCC $04 [$8006] {REL}", d.Lines[0x8000])
}
