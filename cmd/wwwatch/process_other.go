//go:build !linux

package main

import (
	"errors"

	"wwmem/process"
)

func attach(pid process.ProcessID, names []string) (process.Process, error) {
	return nil, errors.New("live attach is only supported on linux, use -replay")
}
