//go:build linux

package process_linux

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"wwmem/process"
)

// ListByName returns all processes whose comm or exe basename equals one of names.
// Matching is case-sensitive, like pidof.
func ListByName(names ...string) ([]process.ProcessInfo, error) {
	if len(names) == 0 {
		return nil, errors.New("empty name")
	}

	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("read /proc: %w", err)
	}

	selfPID := os.Getpid()
	var out []process.ProcessInfo

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid <= 0 {
			continue // not a PID dir
		}
		if pid == selfPID {
			continue
		}

		comm, _ := os.ReadFile(filepath.Join("/proc", e.Name(), "comm"))
		comm = bytesTrimNL(comm)

		// exe may fail to resolve for zombies or without permission
		exe, _ := os.Readlink(filepath.Join("/proc", e.Name(), "exe"))

		if name, ok := matchName(names, string(comm), exe); ok {
			out = append(out, process.ProcessInfo{PID: process.ProcessID(pid), Name: name})
		}
	}

	return out, nil
}

// OneByName returns the first match for names (lowest PID), or os.ErrNotExist if none.
func OneByName(names ...string) (process.ProcessInfo, error) {
	ps, err := ListByName(names...)
	if err != nil {
		return process.ProcessInfo{}, err
	}
	if len(ps) == 0 {
		return process.ProcessInfo{}, os.ErrNotExist
	}
	// pick the lowest PID for determinism
	minIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i].PID < ps[minIdx].PID {
			minIdx = i
		}
	}
	return ps[minIdx], nil
}

// OpenByName attaches to the lowest-PID process matching one of names.
func OpenByName(names ...string) (*LinuxProcess, error) {
	info, err := OneByName(names...)
	if err != nil {
		return nil, fmt.Errorf("no process found with name %v: %w", names, err)
	}
	return NewWithPID(info.PID)
}

// ----- helpers -----

func matchName(names []string, comm, exe string) (string, bool) {
	for _, name := range names {
		if comm == name {
			return comm, true
		}
		if exe != "" && filepath.Base(exe) == name {
			return filepath.Base(exe), true
		}
	}
	return "", false
}

func bytesTrimNL(b []byte) []byte {
	// Trim trailing '\n' if present (comm has a newline).
	for len(b) > 0 {
		switch b[len(b)-1] {
		case '\n', '\r', ' ', '\t':
			b = b[:len(b)-1]
		default:
			return b
		}
	}
	return b
}
