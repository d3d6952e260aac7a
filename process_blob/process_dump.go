package process_blob

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wwmem/process"
	"wwmem/process/memory_map"
)

const (
	metadataFile  = "metadata.json"
	memoryMapFile = "process_memory_map.json"
)

type metadata struct {
	PID  process.ProcessID `json:"pid"`
	Name string            `json:"name"`
}

func blobFilename(dirname string, region memory_map.MemoryMapItem) string {
	return filepath.Join(dirname, fmt.Sprintf("blob_0x%x_%d.bin", region.Address, region.Size))
}

// Save writes the blob's metadata, memory map and region data to dirname
func (p *ProcessBlob) Save(dirname string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := os.MkdirAll(dirname, 0755); err != nil {
		return fmt.Errorf("failed to create dump directory: %w", err)
	}

	metadataJSON, err := json.MarshalIndent(metadata{PID: p.PID, Name: p.Name}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirname, metadataFile), metadataJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	memoryMapJSON, err := json.MarshalIndent(p.mm, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal memory map: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirname, memoryMapFile), memoryMapJSON, 0644); err != nil {
		return fmt.Errorf("failed to write memory map file: %w", err)
	}

	for _, region := range p.mm {
		if err := os.WriteFile(blobFilename(dirname, region), p.regions[region.Address], 0644); err != nil {
			return fmt.Errorf("failed to write region 0x%x: %w", region.Address, err)
		}
	}

	return nil
}

// Load reads a dump written by Save
func Load(dirname string) (*ProcessBlob, error) {
	metadataBytes, err := os.ReadFile(filepath.Join(dirname, metadataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var md metadata
	if err := json.Unmarshal(metadataBytes, &md); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	mmBytes, err := os.ReadFile(filepath.Join(dirname, memoryMapFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read memory map: %w", err)
	}

	var mm []memory_map.MemoryMapItem
	if err := json.Unmarshal(mmBytes, &mm); err != nil {
		return nil, fmt.Errorf("failed to unmarshal memory map: %w", err)
	}

	p := NewProcessBlob(md.PID, md.Name)
	for _, region := range mm {
		data, err := os.ReadFile(blobFilename(dirname, region))
		if os.IsNotExist(err) {
			continue // region listed but not saved
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read blob for region 0x%x: %w", region.Address, err)
		}
		if err := p.AddRegion(region, data); err != nil {
			return nil, err
		}
	}

	return p, nil
}
