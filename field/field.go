package field

import (
	"fmt"
)

// Scalar is the set of value types a Field can hold
type Scalar interface {
	uint8 | uint16 | uint32 | float32
}

// Field is a typed value at an Address. It caches the last value observed by a
// successful Read; a failed Read leaves the cache untouched.
type Field[T Scalar] struct {
	Addr  Address
	value T
}

// NewField returns a Field at addr with a zero cached value
func NewField[T Scalar](addr Address) Field[T] {
	return Field[T]{Addr: addr}
}

// Value returns the cached value
func (f *Field[T]) Value() T {
	return f.value
}

// Read resolves the address, decodes a T and caches it.
// On failure the previous cached value is returned with the error.
func (f *Field[T]) Read(p Provider) (T, error) {
	v, err := readScalar[T](p, f.Addr)
	if err != nil {
		return f.value, err
	}
	f.value = v
	return v, nil
}

// String formats the cached value, floats with two decimals
func (f *Field[T]) String() string {
	return formatScalar(f.value)
}

// MutableField is a Field that can also be written back to memory
type MutableField[T Scalar] struct {
	Field[T]
}

// NewMutableField returns a writable Field at addr
func NewMutableField[T Scalar](addr Address) MutableField[T] {
	return MutableField[T]{Field: Field[T]{Addr: addr}}
}

// Write stores v at the resolved address and then updates the cache.
// The write is not verified by reading it back.
func (f *MutableField[T]) Write(p Provider, v T) (T, error) {
	if err := writeScalar(p, f.Addr, v); err != nil {
		return f.value, err
	}
	f.value = v
	return v, nil
}

func readScalar[T Scalar](p Provider, addr Address) (T, error) {
	var zero T
	switch any(zero).(type) {
	case uint8:
		v, err := ReadU8(p, addr)
		return T(v), err
	case uint16:
		v, err := ReadU16(p, addr)
		return T(v), err
	case uint32:
		v, err := ReadU32(p, addr)
		return T(v), err
	case float32:
		v, err := ReadF32(p, addr)
		return T(v), err
	}
	return zero, fmt.Errorf("unsupported field type %T", zero)
}

func writeScalar[T Scalar](p Provider, addr Address, v T) error {
	switch x := any(v).(type) {
	case uint8:
		return WriteU8(p, addr, x)
	case uint16:
		return WriteU16(p, addr, x)
	case uint32:
		return WriteU32(p, addr, x)
	case float32:
		return WriteF32(p, addr, x)
	}
	return fmt.Errorf("unsupported field type %T", v)
}

func formatScalar[T Scalar](v T) string {
	if f, ok := any(v).(float32); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return fmt.Sprintf("%v", v)
}
