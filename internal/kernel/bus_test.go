package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusInsertAndReadWrite(t *testing.T) {
	bus := NewBus()
	block := NewZeroedMemoryBlock(0x10)
	require.NoError(t, bus.Insert(0x100, NewComponent(block)))

	require.NoError(t, bus.WriteU8(0x105, 0x42))
	v, err := bus.ReadU8(0x105)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), v)
}

func TestBusInsertRejectsNonAddressable(t *testing.T) {
	bus := NewBus()
	err := bus.Insert(0, NewComponent(&Timerless{}))
	assert.Error(t, err)
}

func TestBusGetComponentAtUnmapped(t *testing.T) {
	bus := NewBus()
	_, _, err := bus.GetComponentAt(0, 1)
	assert.Error(t, err)
}

func TestBusReadU16BE(t *testing.T) {
	bus := NewBus()
	block := NewZeroedMemoryBlock(4)
	require.NoError(t, bus.Insert(0, NewComponent(block)))
	require.NoError(t, bus.WriteU16BE(0, 0xABCD))

	v, err := bus.ReadU16BE(0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xABCD), v)
}

// Timerless is a component with no capabilities, used to exercise Bus.Insert's
// rejection of non-addressable components.
type Timerless struct {
	BaseComponent
}
