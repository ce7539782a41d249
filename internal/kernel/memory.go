package kernel

// MemoryAddress indexes into a component's or the bus's address space.
type MemoryAddress = uint

// MemorySize counts bytes of addressable space.
type MemorySize = uint

// MemoryBlock is a contiguous, optionally read-only byte region. It is the
// simplest Addressable component: RAM, ROM, and the interpreter scratch
// area are all MemoryBlocks mounted on the Bus at different bases.
type MemoryBlock struct {
	BaseComponent
	data     []byte
	readOnly bool
}

// NewMemoryBlock creates a MemoryBlock backed by a copy of data.
func NewMemoryBlock(data []byte) *MemoryBlock {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &MemoryBlock{data: cp}
}

// NewZeroedMemoryBlock creates a MemoryBlock of size bytes, all zero.
func NewZeroedMemoryBlock(size MemorySize) *MemoryBlock {
	return &MemoryBlock{data: make([]byte, size)}
}

// SetReadOnly flags the block read-only. Once set it stays set.
func (m *MemoryBlock) SetReadOnly() {
	m.readOnly = true
}

// ReadOnly reports whether the block currently rejects writes.
func (m *MemoryBlock) ReadOnly() bool {
	return m.readOnly
}

// Resize grows the block with zero bytes, or truncates it, to size n.
func (m *MemoryBlock) Resize(n MemorySize) {
	switch {
	case int(n) == len(m.data):
		return
	case int(n) < len(m.data):
		m.data = m.data[:n]
	default:
		grown := make([]byte, n)
		copy(grown, m.data)
		m.data = grown
	}
}

// Size returns the number of addressable bytes in the block.
func (m *MemoryBlock) Size() MemorySize {
	return MemorySize(len(m.data))
}

// Read copies len(buf) bytes starting at address into buf.
func (m *MemoryBlock) Read(address MemoryAddress, buf []byte) error {
	if address+MemoryAddress(len(buf)) > m.Size() {
		return NewEmulatorError(MemoryAccessOutOfBounds,
			"memory block of size %#x, but read %#x-%#x", m.Size(), address, address+MemoryAddress(len(buf)))
	}
	copy(buf, m.data[address:address+MemoryAddress(len(buf))])
	return nil
}

// Write copies buf into the block starting at address.
func (m *MemoryBlock) Write(address MemoryAddress, buf []byte) error {
	if m.readOnly {
		return NewEmulatorError(MemoryAccessReadOnly,
			"memory block of size %#x, request %#x-%#x", m.Size(), address, address+MemoryAddress(len(buf)))
	}
	if address+MemoryAddress(len(buf)) > m.Size() {
		return NewEmulatorError(MemoryAccessOutOfBounds,
			"memory block of size %#x, but wrote %#x-%#x", m.Size(), address, address+MemoryAddress(len(buf)))
	}
	copy(m.data[address:address+MemoryAddress(len(buf))], buf)
	return nil
}

// AsAddressable implements Transmutable.
func (m *MemoryBlock) AsAddressable() Addressable {
	return m
}
