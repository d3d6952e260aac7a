package field

import (
	"fmt"
	"strings"
)

// PointerSize is the width of a guest pointer in bytes
const PointerSize = 4

// Address is a base address plus an optional pointer chain.
//
// Resolution walks the chain left to right: read a pointer at the current
// address, add the next offset, repeat. The final address is where the
// value lives. With no offsets the base itself is the final address.
type Address struct {
	Base    uint32
	Offsets []int32
}

// At returns a direct address
func At(base uint32) Address {
	return Address{Base: base}
}

// Chain returns an address reached through a pointer at base followed by offsets
func Chain(base uint32, offsets ...int32) Address {
	return Address{Base: base, Offsets: offsets}
}

// Resolve returns the final address
func (a Address) Resolve(p Provider) (uint32, error) {
	current := a.Base
	for i, off := range a.Offsets {
		data, err := p.ReadMemory(current, PointerSize)
		if err != nil {
			return 0, fmt.Errorf("read pointer at step %d (addr=%#x): %w", i, current, err)
		}
		if len(data) < PointerSize {
			return 0, fmt.Errorf("read pointer at step %d (addr=%#x): %w", i, current, ErrShortRead)
		}

		ptr := p.ByteOrder().Uint32(data)
		if ptr == 0 {
			return 0, fmt.Errorf("step %d (addr=%#x): %w", i, current, ErrNullPointer)
		}

		current = uint32(int64(ptr) + int64(off))
	}
	return current, nil
}

func (a Address) String() string {
	if len(a.Offsets) == 0 {
		return fmt.Sprintf("%#08x", a.Base)
	}
	parts := make([]string, len(a.Offsets))
	for i, off := range a.Offsets {
		parts[i] = fmt.Sprintf("%#x", off)
	}
	return fmt.Sprintf("[%#08x]+%s", a.Base, strings.Join(parts, "+"))
}
