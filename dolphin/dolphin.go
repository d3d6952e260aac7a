// Package dolphin serves GameCube guest memory out of a running Dolphin emulator.
//
// Dolphin keeps the console's main RAM (MEM1) in a 32 MiB shared mapping
// backed by /dev/shm/dolphin-emu.<pid>. Guest addresses in the cached
// (0x80000000) and uncached (0xC0000000) segments both land in it.
package dolphin

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"

	"wwmem/field"
	"wwmem/process"
	"wwmem/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

const (
	// MEM1MappingSize is the size of Dolphin's MEM1 mapping in the host process
	MEM1MappingSize = 0x2000000

	// MEM1Size is the part of the mapping the console can address
	MEM1Size = 0x1800000

	CachedBase   uint32 = 0x80000000
	UncachedBase uint32 = 0xC0000000

	shmPathHint = "dolphin-emu"
)

// ProcessNames are the executable names Dolphin runs under on Linux
var ProcessNames = []string{"dolphin-emu", "dolphin-emu-nogui", "dolphin-emu-qt2", "Dolphin"}

var (
	ErrMEM1NotFound        = errors.New("dolphin MEM1 region not found")
	ErrInvalidGuestAddress = errors.New("guest address outside MEM1")
)

// Dolphin implements field.Provider over a host process
type Dolphin struct {
	proc process.Process
	mem1 memory_map.MemoryMapItem
	log  *logger.Logger
	mu   sync.Mutex
}

var _ field.Provider = (*Dolphin)(nil)

// New locates MEM1 inside proc
func New(proc process.Process) (*Dolphin, error) {
	if err := proc.UpdateMemoryMap(); err != nil {
		return nil, fmt.Errorf("failed to refresh memory map: %w", err)
	}

	mm, err := proc.GetMemoryMap()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory map: %w", err)
	}

	mem1, err := FindMEM1(mm)
	if err != nil {
		return nil, err
	}

	d := &Dolphin{
		proc: proc,
		mem1: mem1,
		log:  logger.NewLogger(coloransi.Color(coloransi.ColorOrange, coloransi.ColorPurple, fmt.Sprintf("dolphin-%d", proc.GetPID()))),
	}
	d.log.Infoln("MEM1 found at", fmt.Sprintf("%x", mem1.Address), mem1.Path)

	return d, nil
}

// FindMEM1 picks the MEM1 mapping out of a memory map. A readable region of the
// right size whose path names dolphin wins; otherwise the first shared one.
func FindMEM1(mm []memory_map.MemoryMapItem) (memory_map.MemoryMapItem, error) {
	var fallback *memory_map.MemoryMapItem
	for i := range mm {
		item := mm[i]
		if item.Size != MEM1MappingSize || !item.IsReadable() {
			continue
		}
		if strings.Contains(item.Path, shmPathHint) {
			return item, nil
		}
		if fallback == nil && item.IsShared() {
			fallback = &mm[i]
		}
	}
	if fallback != nil {
		return *fallback, nil
	}
	return memory_map.MemoryMapItem{}, ErrMEM1NotFound
}

// Translate maps a guest address range to the host address inside MEM1
func (d *Dolphin) Translate(addr uint32, size uint32) (process.ProcessMemoryAddress, error) {
	offset, err := guestOffset(addr, size)
	if err != nil {
		return 0, err
	}
	return process.ProcessMemoryAddress(d.mem1.Address + uint64(offset)), nil
}

func guestOffset(addr uint32, size uint32) (uint32, error) {
	var base uint32
	switch {
	case addr >= CachedBase && addr < CachedBase+MEM1Size:
		base = CachedBase
	case addr >= UncachedBase && addr < UncachedBase+MEM1Size:
		base = UncachedBase
	default:
		return 0, fmt.Errorf("%w: %#08x", ErrInvalidGuestAddress, addr)
	}

	offset := addr - base
	if uint64(offset)+uint64(size) > MEM1Size {
		return 0, fmt.Errorf("%w: %#08x+%d", ErrInvalidGuestAddress, addr, size)
	}
	return offset, nil
}

// IsGuestPointer reports whether v points into MEM1 through either mirror
func IsGuestPointer(v uint32) bool {
	_, err := guestOffset(v, 1)
	return err == nil
}

// ReadMemory reads size bytes at a guest address
func (d *Dolphin) ReadMemory(addr uint32, size uint32) ([]byte, error) {
	host, err := d.Translate(addr, size)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := d.proc.ReadMemory(host, process.ProcessMemorySize(size))
	if err != nil {
		d.log.Debugln("read failed at", fmt.Sprintf("%08x", addr), err)
		return nil, err
	}
	return data, nil
}

// WriteMemory writes data at a guest address
func (d *Dolphin) WriteMemory(addr uint32, data []byte) error {
	host, err := d.Translate(addr, uint32(len(data)))
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.proc.WriteMemory(host, data); err != nil {
		d.log.Debugln("write failed at", fmt.Sprintf("%08x", addr), err)
		return err
	}
	return nil
}

// ByteOrder is big-endian, the console is PowerPC
func (d *Dolphin) ByteOrder() binary.ByteOrder {
	return binary.BigEndian
}

// MEM1 returns the host mapping that backs guest memory
func (d *Dolphin) MEM1() memory_map.MemoryMapItem {
	return d.mem1
}

// Process returns the underlying host process
func (d *Dolphin) Process() process.Process {
	return d.proc
}

// Close closes the underlying process
func (d *Dolphin) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.proc.Close()
}
