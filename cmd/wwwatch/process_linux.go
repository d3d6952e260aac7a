//go:build linux

package main

import (
	"wwmem/process"
	"wwmem/process_linux"
)

func attach(pid process.ProcessID, names []string) (process.Process, error) {
	var (
		proc *process_linux.LinuxProcess
		err  error
	)
	if pid != 0 {
		proc, err = process_linux.NewWithPID(pid)
	} else {
		proc, err = process_linux.OpenByName(names...)
	}
	if err != nil {
		return nil, err
	}
	return proc, nil
}
