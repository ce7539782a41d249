package kernel

import "sync/atomic"

// Addressable is the read/write capability a component can expose on the
// Bus: a byte-addressed region of a known size.
type Addressable interface {
	Size() MemorySize
	Read(address MemoryAddress, buf []byte) error
	Write(address MemoryAddress, buf []byte) error
}

// Steppable is the capability a component exposes to the Scheduler: one
// cooperative slice of work, returning the virtual-time duration until its
// next desired invocation.
type Steppable interface {
	Step(backend *Backend) (Duration, error)
}

// Inspectable is the capability a component exposes to debugging tooling: a
// human-readable dump of its current state.
type Inspectable interface {
	Inspect() []string
}

// Transmutable is the capability projection every component implements.
// Rather than nominal inheritance, a component advertises zero or more
// capabilities by returning non-nil from the corresponding accessor;
// BaseComponent supplies the all-nil default so concrete components only
// override what they support.
type Transmutable interface {
	AsAddressable() Addressable
	AsSteppable() Steppable
	AsInspectable() Inspectable
}

// BaseComponent is embedded by concrete components to get the "supports
// nothing" default capability projection for free.
type BaseComponent struct{}

// AsAddressable implements Transmutable, returning no capability.
func (BaseComponent) AsAddressable() Addressable { return nil }

// AsSteppable implements Transmutable, returning no capability.
func (BaseComponent) AsSteppable() Steppable { return nil }

// AsInspectable implements Transmutable, returning no capability.
func (BaseComponent) AsInspectable() Inspectable { return nil }

// ComponentID uniquely identifies a Component for its lifetime. IDs are
// handed out in monotonically increasing order.
type ComponentID uint64

var nextComponentID atomic.Uint64

func newComponentID() ComponentID {
	return ComponentID(nextComponentID.Add(1))
}

// Component is a capability-bearing handle shared by reference between the
// name registry, the bus, and the scheduler. Equality is by ID, not by the
// underlying implementation.
type Component struct {
	id   ComponentID
	impl Transmutable
}

// NewComponent wraps impl with a freshly allocated, unique ComponentID.
func NewComponent(impl Transmutable) Component {
	return Component{id: newComponentID(), impl: impl}
}

// ID returns the component's unique identifier.
func (c Component) ID() ComponentID {
	return c.id
}

// Impl returns the underlying Transmutable implementation.
func (c Component) Impl() Transmutable {
	return c.impl
}

// Equal reports whether two Component handles refer to the same component.
func (c Component) Equal(other Component) bool {
	return c.id == other.id
}

// ReadU8 reads a single byte from an Addressable at address.
func ReadU8(a Addressable, address MemoryAddress) (byte, error) {
	var buf [1]byte
	if err := a.Read(address, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// WriteU8 writes a single byte to an Addressable at address.
func WriteU8(a Addressable, address MemoryAddress, value byte) error {
	return a.Write(address, []byte{value})
}

// ReadU16BE reads a big-endian 16-bit word from an Addressable at address.
func ReadU16BE(a Addressable, address MemoryAddress) (uint16, error) {
	var buf [2]byte
	if err := a.Read(address, buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// WriteU16BE writes a big-endian 16-bit word to an Addressable at address.
func WriteU16BE(a Addressable, address MemoryAddress, value uint16) error {
	return a.Write(address, []byte{byte(value >> 8), byte(value)})
}
