package kernel

import "sort"

// BusMount owns the half-open address range [Base, Base+Size) on the Bus,
// dispatching reads and writes within that range to Component.
type BusMount struct {
	Base      MemoryAddress
	Size      MemorySize
	Component Component
}

func (m BusMount) contains(address MemoryAddress) bool {
	return m.Base <= address && address < m.Base+m.Size
}

// Bus is an address-decoded multiplexer routing reads and writes to mounted
// components. Mounts are kept sorted by base address.
type Bus struct {
	mounts []BusMount
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Insert mounts component's addressable capability at base, sized to
// whatever component.AsAddressable().Size() reports. Insert does not check
// for overlapping ranges; a misconfigured caller will simply make some
// addresses ambiguous (first match wins in GetComponentAt).
func (b *Bus) Insert(base MemoryAddress, component Component) error {
	addr := component.Impl().AsAddressable()
	if addr == nil {
		return NewError("component is not addressable, cannot mount at %#x", base)
	}
	b.mounts = append(b.mounts, BusMount{Base: base, Size: addr.Size(), Component: component})
	sort.Slice(b.mounts, func(i, j int) bool { return b.mounts[i].Base < b.mounts[j].Base })
	return nil
}

// Mounts returns the current bus mounts, sorted by base address.
func (b *Bus) Mounts() []BusMount {
	return b.mounts
}

// GetComponentAt finds the unique mount whose range fully covers
// [address, address+size), returning the component and the address
// relative to that mount's base.
func (b *Bus) GetComponentAt(address MemoryAddress, size MemorySize) (Component, MemoryAddress, error) {
	if size > 0 {
		for _, m := range b.mounts {
			if m.contains(address) && m.contains(address+size-1) {
				return m.Component, address - m.Base, nil
			}
		}
	}
	return Component{}, 0, NewError(
		"requested address %#x-%#x, but found no mapped component", address, address+size)
}

// Size returns last.Base + last.Size. This is only meaningful when mounts
// are contiguous from zero.
func (b *Bus) Size() MemorySize {
	if len(b.mounts) == 0 {
		return 0
	}
	last := b.mounts[len(b.mounts)-1]
	return last.Base + last.Size
}

// Read delegates to the mount covering [address, address+len(buf)).
func (b *Bus) Read(address MemoryAddress, buf []byte) error {
	component, relative, err := b.GetComponentAt(address, MemorySize(len(buf)))
	if err != nil {
		return err
	}
	return component.Impl().AsAddressable().Read(relative, buf)
}

// Write delegates to the mount covering [address, address+len(buf)).
func (b *Bus) Write(address MemoryAddress, buf []byte) error {
	component, relative, err := b.GetComponentAt(address, MemorySize(len(buf)))
	if err != nil {
		return err
	}
	return component.Impl().AsAddressable().Write(relative, buf)
}

// ReadU8 reads a single byte from the bus.
func (b *Bus) ReadU8(address MemoryAddress) (byte, error) {
	return ReadU8(b, address)
}

// WriteU8 writes a single byte to the bus.
func (b *Bus) WriteU8(address MemoryAddress, value byte) error {
	return WriteU8(b, address, value)
}

// ReadU16BE reads a big-endian 16-bit word from the bus.
func (b *Bus) ReadU16BE(address MemoryAddress) (uint16, error) {
	return ReadU16BE(b, address)
}

// WriteU16BE writes a big-endian 16-bit word to the bus.
func (b *Bus) WriteU16BE(address MemoryAddress, value uint16) error {
	return WriteU16BE(b, address, value)
}
