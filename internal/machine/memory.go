package machine

import "github.com/Nour-HF/MIPS-Project/internal/mipserr"

// DefaultMemorySize is the capacity of a freshly constructed Machine
// when the caller does not ask for a specific size.
const DefaultMemorySize = 1 << 20 // 1 MiB

// Memory is a byte-addressable, little-endian, bounds-checked region.
// Half and word accesses compose from byte accesses; that composition
// is the contract, not an implementation detail callers may bypass.
type Memory struct {
	bytes []byte
}

// NewMemory allocates a zero-filled region of the given size.
func NewMemory(size uint32) *Memory {
	return &Memory{bytes: make([]byte, size)}
}

// Size reports the memory's current capacity in bytes.
func (m *Memory) Size() uint32 { return uint32(len(m.bytes)) }

// Resize grows or shrinks the region, zero-filling any newly added
// bytes.
func (m *Memory) Resize(newSize uint32) {
	if uint32(len(m.bytes)) == newSize {
		return
	}
	grown := make([]byte, newSize)
	copy(grown, m.bytes)
	m.bytes = grown
}

func (m *Memory) checkBounds(addr uint32, size uint32) error {
	if uint64(addr)+uint64(size) > uint64(len(m.bytes)) {
		return mipserr.New(mipserr.MemoryAccessViolation,
			"access at address 0x%x of size %d exceeds memory size %d", addr, size, len(m.bytes))
	}
	return nil
}

// ReadByte reads one byte at addr.
func (m *Memory) ReadByte(addr uint32) (byte, error) {
	if err := m.checkBounds(addr, 1); err != nil {
		return 0, err
	}
	return m.bytes[addr], nil
}

// WriteByte writes one byte at addr.
func (m *Memory) WriteByte(addr uint32, v byte) error {
	if err := m.checkBounds(addr, 1); err != nil {
		return err
	}
	m.bytes[addr] = v
	return nil
}

// ReadHalf reads a little-endian 16-bit value: low byte at addr, high
// byte at addr+1.
func (m *Memory) ReadHalf(addr uint32) (uint16, error) {
	if err := m.checkBounds(addr, 2); err != nil {
		return 0, err
	}
	return uint16(m.bytes[addr]) | uint16(m.bytes[addr+1])<<8, nil
}

// WriteHalf writes a little-endian 16-bit value.
func (m *Memory) WriteHalf(addr uint32, v uint16) error {
	if err := m.checkBounds(addr, 2); err != nil {
		return err
	}
	m.bytes[addr] = byte(v)
	m.bytes[addr+1] = byte(v >> 8)
	return nil
}

// ReadWord reads a little-endian 32-bit value, least significant byte
// first.
func (m *Memory) ReadWord(addr uint32) (uint32, error) {
	if err := m.checkBounds(addr, 4); err != nil {
		return 0, err
	}
	return uint32(m.bytes[addr]) |
		uint32(m.bytes[addr+1])<<8 |
		uint32(m.bytes[addr+2])<<16 |
		uint32(m.bytes[addr+3])<<24, nil
}

// WriteWord writes a little-endian 32-bit value.
func (m *Memory) WriteWord(addr uint32, v uint32) error {
	if err := m.checkBounds(addr, 4); err != nil {
		return err
	}
	m.bytes[addr] = byte(v)
	m.bytes[addr+1] = byte(v >> 8)
	m.bytes[addr+2] = byte(v >> 16)
	m.bytes[addr+3] = byte(v >> 24)
	return nil
}

// Load copies data into memory starting at addr, growing the region
// first if necessary to fit it. This is the only bulk-write primitive;
// image loading is its sole caller.
func (m *Memory) Load(addr uint32, data []byte) error {
	need := uint64(addr) + uint64(len(data))
	if need > uint64(len(m.bytes)) {
		if need > 1<<32 {
			return mipserr.New(mipserr.MemoryAccessViolation, "load at 0x%x of %d bytes overflows address space", addr, len(data))
		}
		m.Resize(uint32(need))
	}
	copy(m.bytes[addr:], data)
	return nil
}

// IsValidAddress reports whether an access of size bytes starting at
// addr falls entirely within the region.
func (m *Memory) IsValidAddress(addr uint32, size uint32) bool {
	return uint64(addr)+uint64(size) <= uint64(len(m.bytes))
}
