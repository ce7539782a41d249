package kernel

import "container/heap"

// Backend owns the virtual clock, the named component registry, the
// scheduler queue, and the bus. It is the single-threaded driver of an
// emulation session: Step is the only primitive that advances time.
type Backend struct {
	clock      Instant
	components map[string]Component
	queue      eventQueue
	nextSeq    uint64
	bus        *Bus
}

// NewBackend creates an empty Backend with its clock at Start.
func NewBackend() *Backend {
	b := &Backend{
		clock:      Start,
		components: make(map[string]Component),
		bus:        NewBus(),
	}
	heap.Init(&b.queue)
	return b
}

// Bus returns the backend's address bus.
func (b *Backend) Bus() *Bus {
	return b.bus
}

// Component looks up a previously registered component by name.
func (b *Backend) Component(name string) (Component, error) {
	c, ok := b.components[name]
	if !ok {
		return Component{}, NewError("no component named %s", name)
	}
	return c, nil
}

// Clock returns the backend's current virtual-clock position.
func (b *Backend) Clock() Instant {
	return b.clock
}

// AddAddressableComponent mounts component on the bus at address and
// registers it under name, also queueing it for stepping if it is
// steppable.
func (b *Backend) AddAddressableComponent(name string, address MemoryAddress, component Component) error {
	if err := b.bus.Insert(address, component); err != nil {
		return err
	}
	b.AddComponent(name, component)
	return nil
}

// AddComponent registers component under name and queues it for stepping
// if it exposes the Steppable capability. It is not mounted on the bus;
// use AddAddressableComponent for components that need bus access.
func (b *Backend) AddComponent(name string, component Component) {
	b.tryQueue(component)
	b.components[name] = component
}

func (b *Backend) tryQueue(component Component) {
	if component.Impl().AsSteppable() == nil {
		return
	}
	event := &SchedulerEvent{Clock: Start, Component: component, Seq: b.nextSeq}
	b.nextSeq++
	heap.Push(&b.queue, event)
}

// Step pops the earliest scheduled event, advances the clock to its
// timestamp, invokes the component's Step, and re-enqueues it at
// clock + returned duration. An error from Step is returned to the caller,
// but the event is still rescheduled: a transient fault never deschedules
// a component.
func (b *Backend) Step() error {
	if b.queue.Len() == 0 {
		return NewError("scheduler queue is empty, nothing to step")
	}

	next := heap.Pop(&b.queue).(*SchedulerEvent)
	b.clock = next.Clock

	duration, stepErr := next.Component.Impl().AsSteppable().Step(b)
	next.Clock = b.clock.Add(duration)
	next.Seq = b.nextSeq
	b.nextSeq++
	heap.Push(&b.queue, next)

	return stepErr
}

// RunUntil repeatedly steps the backend until its clock reaches target.
func (b *Backend) RunUntil(target Instant) error {
	for b.clock.Before(target) {
		if err := b.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunFor advances the backend's clock by at least duration.
func (b *Backend) RunFor(duration Duration) error {
	return b.RunUntil(b.clock.Add(duration))
}
