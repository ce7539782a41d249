package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingComponent steps every period, counting how many times it has run.
type countingComponent struct {
	BaseComponent
	period Duration
	steps  int
}

func (c *countingComponent) Step(backend *Backend) (Duration, error) {
	c.steps++
	return c.period, nil
}

func (c *countingComponent) AsSteppable() Steppable {
	return c
}

func TestBackendStepAdvancesClockAndReschedules(t *testing.T) {
	backend := NewBackend()
	comp := &countingComponent{period: DurationFromNanos(10)}
	backend.AddComponent("counter", NewComponent(comp))

	require.NoError(t, backend.Step())
	assert.Equal(t, Start, backend.Clock())
	assert.Equal(t, 1, comp.steps)

	require.NoError(t, backend.Step())
	assert.Equal(t, Start.Add(DurationFromNanos(10)), backend.Clock())
	assert.Equal(t, 2, comp.steps)
}

func TestBackendRunUntilStepsTheRightNumberOfTimes(t *testing.T) {
	backend := NewBackend()
	comp := &countingComponent{period: DurationFromNanos(10)}
	backend.AddComponent("counter", NewComponent(comp))

	// Steps run at 0, 10, 20, 30, 40 and 50ns: the step at 40ns leaves the
	// clock below the target, so the event due at 50ns still runs.
	require.NoError(t, backend.RunUntil(Start.Add(DurationFromNanos(50))))
	assert.Equal(t, 6, comp.steps)
}

func TestBackendRunsMultipleComponentsInClockOrder(t *testing.T) {
	backend := NewBackend()
	fast := &countingComponent{period: DurationFromNanos(10)}
	slow := &countingComponent{period: DurationFromNanos(25)}
	backend.AddComponent("fast", NewComponent(fast))
	backend.AddComponent("slow", NewComponent(slow))

	require.NoError(t, backend.RunFor(DurationFromNanos(50)))
	assert.Equal(t, 5, fast.steps)
	assert.Equal(t, 3, slow.steps) // 0, 25 and 50ns: slow@50 was queued before fast@50
}

func TestBackendComponentLookup(t *testing.T) {
	backend := NewBackend()
	comp := NewComponent(&countingComponent{period: DurationFromNanos(1)})
	backend.AddComponent("named", comp)

	got, err := backend.Component("named")
	require.NoError(t, err)
	assert.True(t, got.Equal(comp))

	_, err = backend.Component("missing")
	assert.Error(t, err)
}

func TestBackendStepErrorStillReschedules(t *testing.T) {
	backend := NewBackend()
	comp := &erroringComponent{period: DurationFromNanos(5)}
	backend.AddComponent("erroring", NewComponent(comp))

	err := backend.Step()
	assert.Error(t, err)
	err = backend.Step()
	assert.Error(t, err)
	assert.Equal(t, 2, comp.steps)
}

type erroringComponent struct {
	BaseComponent
	period Duration
	steps  int
}

func (c *erroringComponent) Step(backend *Backend) (Duration, error) {
	c.steps++
	return c.period, NewError("boom")
}

func (c *erroringComponent) AsSteppable() Steppable {
	return c
}
