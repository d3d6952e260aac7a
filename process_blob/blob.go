package process_blob

import (
	"fmt"
	"sync"

	"wwmem/process"
	"wwmem/process/memory_map"
)

// ProcessBlob is an in-memory process.Process made of byte regions.
// It backs tests and dump replays; writes land in the region data.
type ProcessBlob struct {
	PID  process.ProcessID
	Name string

	mu      sync.Mutex
	mm      []memory_map.MemoryMapItem
	regions map[uint64][]byte // region start address -> data
	closed  bool
}

var _ process.Process = (*ProcessBlob)(nil)

// NewProcessBlob creates an empty, open blob. Add memory with AddRegion.
func NewProcessBlob(pid process.ProcessID, name string) *ProcessBlob {
	return &ProcessBlob{
		PID:     pid,
		Name:    name,
		regions: make(map[uint64][]byte),
	}
}

// AddRegion maps data at item.Address. item.Size is taken from len(data).
func (p *ProcessBlob) AddRegion(item memory_map.MemoryMapItem, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	item.Size = uint(len(data))
	for _, existing := range p.mm {
		if item.Address < existing.End() && existing.Address < item.End() {
			return fmt.Errorf("region 0x%x overlaps 0x%x", item.Address, existing.Address)
		}
	}

	p.mm = append(p.mm, item)
	memory_map.Sort(p.mm)
	p.regions[item.Address] = data
	return nil
}

// Open reopens a closed blob; pid must be the blob's PID
func (p *ProcessBlob) Open(pid process.ProcessID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pid != p.PID {
		return fmt.Errorf("process blob holds PID %d, not %d", p.PID, pid)
	}
	p.closed = false
	return nil
}

// Close makes later reads and writes fail with ErrProcessNotOpen
func (p *ProcessBlob) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *ProcessBlob) GetPID() process.ProcessID {
	return p.PID
}

// UpdateMemoryMap only checks the blob is open
func (p *ProcessBlob) UpdateMemoryMap() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return process.ErrProcessNotOpen
	}
	return nil // the map only changes through AddRegion
}

// IsValidAddress checks if the address falls in a readable region
func (p *ProcessBlob) IsValidAddress(addr process.ProcessMemoryAddress) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	item := memory_map.FindRegion(uint64(addr), p.mm)
	return !p.closed && item != nil && item.IsReadable()
}

// GetMemoryMap returns a copy of the blob's regions, sorted by address
func (p *ProcessBlob) GetMemoryMap() ([]memory_map.MemoryMapItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, process.ErrProcessNotOpen
	}
	result := make([]memory_map.MemoryMapItem, len(p.mm))
	copy(result, p.mm)
	return result, nil
}

// ReadMemory returns a copy of size bytes at addr; the range must sit inside one region
func (p *ProcessBlob) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, offset, err := p.locate(addr, size)
	if err != nil {
		return nil, err
	}

	result := make([]byte, size)
	copy(result, data[offset:offset+uint64(size)])
	return result, nil
}

// WriteMemory copies data into a writable region. A write may not cross a region end.
func (p *ProcessBlob) WriteMemory(addr process.ProcessMemoryAddress, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	region, offset, err := p.locate(addr, process.ProcessMemorySize(len(data)))
	if err != nil {
		return err
	}

	item := memory_map.FindRegion(uint64(addr), p.mm)
	if !item.IsWritable() {
		return fmt.Errorf("%w: %x", process.ErrNotWritable, uint64(addr))
	}

	copy(region[offset:], data)
	return nil
}

// locate assumes the mutex is held
func (p *ProcessBlob) locate(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, uint64, error) {
	if p.closed {
		return nil, 0, process.ErrProcessNotOpen
	}

	item := memory_map.FindRegion(uint64(addr), p.mm)
	if item == nil {
		return nil, 0, process.ErrAddressNotMapped
	}

	if !item.Contains(uint64(addr), uint(size)) {
		return nil, 0, fmt.Errorf("%w: %d bytes at 0x%x crosses region end 0x%x", process.ErrShortRead, size, uint64(addr), item.End())
	}

	return p.regions[item.Address], uint64(addr) - item.Address, nil
}
