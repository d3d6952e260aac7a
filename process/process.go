// Package process provides the host process contract used to reach emulator memory
package process

import "errors"

var (
	// ErrAddressNotMapped is returned when a memory address is not found within any mapped region of a process.
	ErrAddressNotMapped = errors.New("address not mapped")

	// ErrProcessNotOpen is returned when an operation requiring an open process is attempted
	// before the process has been successfully opened or after it has been closed.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrNotWritable is returned when a write targets a region without write permission.
	ErrNotWritable = errors.New("memory region not writable")

	// ErrShortRead is returned when fewer bytes than requested could be read.
	ErrShortRead = errors.New("short read")
)
