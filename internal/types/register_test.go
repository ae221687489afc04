package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterPairAliasing(t *testing.T) {
	var r Registers
	r.Init()

	r.B = 0x12
	r.C = 0x34
	assert.Equal(t, uint16(0x1234), r.BC.Uint16())

	r.BC.SetUint16(0xBEEF)
	assert.Equal(t, Register(0xBE), r.B)
	assert.Equal(t, Register(0xEF), r.C)

	r.HL.SetUint16(0x8000)
	r.L++
	assert.Equal(t, uint16(0x8001), r.HL.Uint16())
}

func TestAFMasksLowNibble(t *testing.T) {
	var r Registers
	r.Init()

	r.AF.SetUint16(0x12FF)
	assert.Equal(t, Register(0x12), r.A)
	assert.Equal(t, Register(0xF0), r.F)
	assert.Equal(t, uint16(0x12F0), r.AF.Uint16())

	r.AF.SetUint16(0x0005)
	assert.Equal(t, Register(0x00), r.F)
}
