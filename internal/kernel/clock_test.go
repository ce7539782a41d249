package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationFromNanos(t *testing.T) {
	d := DurationFromNanos(1_000_000)
	assert.Equal(t, uint64(1_000_000), d.Nanos())
}

func TestDurationFromMillis(t *testing.T) {
	d := DurationFromMillis(1)
	assert.Equal(t, uint64(1_000_000), d.Nanos())
}

func TestInstantAdd(t *testing.T) {
	start := Start
	next := start.Add(DurationFromNanos(100))
	assert.True(t, start.Before(next))
}

func TestInstantSubSaturatesAtZero(t *testing.T) {
	early := Start
	late := early.Add(DurationFromNanos(100))

	assert.Equal(t, Duration(0), early.Sub(late))
	assert.Equal(t, DurationFromNanos(100), late.Sub(early))
}
