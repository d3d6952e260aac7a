package field

import (
	"encoding/binary"
	"math"
	"strings"
)

// Provider gives raw access to the guest address space.
// Implementations must be safe for the caller's concurrency pattern; fields add no locking.
type Provider interface {
	ReadMemory(addr uint32, size uint32) ([]byte, error)
	WriteMemory(addr uint32, data []byte) error
	ByteOrder() binary.ByteOrder
}

// readAt resolves addr and reads exactly size bytes. Every failure comes back as a *MemoryError.
func readAt(p Provider, addr Address, size uint32) ([]byte, error) {
	final, err := addr.Resolve(p)
	if err != nil {
		return nil, memoryError("read", addr, err)
	}

	data, err := p.ReadMemory(final, size)
	if err != nil {
		return nil, memoryError("read", addr, err)
	}
	if uint32(len(data)) < size {
		return nil, memoryError("read", addr, ErrShortRead)
	}
	return data[:size], nil
}

// writeAt resolves addr and writes data there
func writeAt(p Provider, addr Address, data []byte) error {
	final, err := addr.Resolve(p)
	if err != nil {
		return memoryError("write", addr, err)
	}

	if err := p.WriteMemory(final, data); err != nil {
		return memoryError("write", addr, err)
	}
	return nil
}

// ReadU8 reads one byte at addr
func ReadU8(p Provider, addr Address) (uint8, error) {
	data, err := readAt(p, addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// ReadU16 reads a 16-bit word at addr in the provider's byte order
func ReadU16(p Provider, addr Address) (uint16, error) {
	data, err := readAt(p, addr, 2)
	if err != nil {
		return 0, err
	}
	return p.ByteOrder().Uint16(data), nil
}

// ReadU32 reads a 32-bit word at addr in the provider's byte order
func ReadU32(p Provider, addr Address) (uint32, error) {
	data, err := readAt(p, addr, 4)
	if err != nil {
		return 0, err
	}
	return p.ByteOrder().Uint32(data), nil
}

// ReadF32 reads a 32-bit IEEE 754 float at addr
func ReadF32(p Provider, addr Address) (float32, error) {
	bits, err := ReadU32(p, addr)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadString reads length bytes and trims null bytes from both ends
func ReadString(p Provider, addr Address, length uint32) (string, error) {
	data, err := readAt(p, addr, length)
	if err != nil {
		return "", err
	}
	return strings.Trim(string(data), "\x00"), nil
}

// WriteU8 writes one byte at addr
func WriteU8(p Provider, addr Address, v uint8) error {
	return writeAt(p, addr, []byte{v})
}

// WriteU16 writes v at addr in the provider's byte order
func WriteU16(p Provider, addr Address, v uint16) error {
	buf := make([]byte, 2)
	p.ByteOrder().PutUint16(buf, v)
	return writeAt(p, addr, buf)
}

// WriteU32 writes v at addr in the provider's byte order
func WriteU32(p Provider, addr Address, v uint32) error {
	buf := make([]byte, 4)
	p.ByteOrder().PutUint32(buf, v)
	return writeAt(p, addr, buf)
}

// WriteF32 writes v at addr as a 32-bit IEEE 754 float
func WriteF32(p Provider, addr Address, v float32) error {
	return WriteU32(p, addr, math.Float32bits(v))
}
