package field

import (
	"errors"
	"fmt"
)

var (
	// ErrMemory matches every MemoryError through errors.Is
	ErrMemory = errors.New("memory value unavailable")

	// ErrNullPointer is returned when a pointer chain link reads as zero
	ErrNullPointer = errors.New("null pointer in chain")

	// ErrShortRead is returned when the provider returns fewer bytes than asked for
	ErrShortRead = errors.New("short read")
)

// MemoryError is the single failure kind for field operations. The cause may be
// a detached process, an unmapped address, a bad chain link or a short read;
// callers treat them all as "value currently unavailable".
type MemoryError struct {
	Op   string // "read" or "write"
	Addr Address
	Err  error
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *MemoryError) Unwrap() error {
	return e.Err
}

// Is makes every MemoryError match ErrMemory
func (e *MemoryError) Is(target error) bool {
	return target == ErrMemory
}

func memoryError(op string, addr Address, err error) error {
	var me *MemoryError
	if errors.As(err, &me) {
		return err
	}
	return &MemoryError{Op: op, Addr: addr, Err: err}
}
