package dolphin

import (
	"fmt"

	"wwmem/process"
	"wwmem/process_blob"
)

// SaveMEM1 copies the whole MEM1 mapping into a dump directory readable by process_blob.Load
func (d *Dolphin) SaveMEM1(dirname string, name string) error {
	d.mu.Lock()
	data, err := d.proc.ReadMemory(process.ProcessMemoryAddress(d.mem1.Address), process.ProcessMemorySize(d.mem1.Size))
	d.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to read MEM1: %w", err)
	}

	blob := process_blob.NewProcessBlob(d.proc.GetPID(), name)
	if err := blob.AddRegion(d.mem1, data); err != nil {
		return err
	}

	if err := blob.Save(dirname); err != nil {
		return err
	}

	d.log.Infoln("MEM1 saved to", dirname)
	return nil
}
