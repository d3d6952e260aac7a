package dolphin

import (
	"testing"

	"wwmem/field"
	"wwmem/process"
	"wwmem/process/memory_map"
	"wwmem/process_blob"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMEM1Host = 0x7f0000000000

func newTestDolphin(t *testing.T) (*Dolphin, *process_blob.ProcessBlob) {
	t.Helper()
	blob := process_blob.NewProcessBlob(4242, "dolphin-emu")
	require.NoError(t, blob.AddRegion(memory_map.MemoryMapItem{Address: 0x400000, Perms: "r-xp", Path: "/usr/bin/dolphin-emu"}, make([]byte, 0x1000)))
	require.NoError(t, blob.AddRegion(memory_map.MemoryMapItem{Address: testMEM1Host, Perms: "rw-s", Path: "/dev/shm/dolphin-emu.4242"}, make([]byte, MEM1MappingSize)))

	d, err := New(blob)
	require.NoError(t, err)
	return d, blob
}

func TestFindMEM1(t *testing.T) {
	mm := []memory_map.MemoryMapItem{
		{Address: 0x1000, Size: MEM1MappingSize, Perms: "rw-p"},
		{Address: 0x5000000, Size: MEM1MappingSize, Perms: "rw-s", Path: "/memfd:other (deleted)"},
		{Address: 0x9000000, Size: MEM1MappingSize, Perms: "rw-s", Path: "/dev/shm/dolphin-emu.77"},
	}

	got, err := FindMEM1(mm)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x9000000), got.Address)

	got, err = FindMEM1(mm[:2])
	require.NoError(t, err)
	assert.Equal(t, uint64(0x5000000), got.Address)

	_, err = FindMEM1(mm[:1])
	assert.ErrorIs(t, err, ErrMEM1NotFound)
}

func TestNewWithoutMEM1(t *testing.T) {
	blob := process_blob.NewProcessBlob(1, "bash")
	require.NoError(t, blob.AddRegion(memory_map.MemoryMapItem{Address: 0x400000, Perms: "r-xp"}, make([]byte, 0x1000)))

	_, err := New(blob)
	assert.ErrorIs(t, err, ErrMEM1NotFound)
}

func TestTranslate(t *testing.T) {
	d, _ := newTestDolphin(t)

	host, err := d.Translate(0x803C53A4, 1)
	require.NoError(t, err)
	assert.Equal(t, process.ProcessMemoryAddress(testMEM1Host+0x3C53A4), host)

	host, err = d.Translate(0xC03C53A4, 1)
	require.NoError(t, err)
	assert.Equal(t, process.ProcessMemoryAddress(testMEM1Host+0x3C53A4), host)

	_, err = d.Translate(0x00001000, 4)
	assert.ErrorIs(t, err, ErrInvalidGuestAddress)

	_, err = d.Translate(CachedBase+MEM1Size-2, 4)
	assert.ErrorIs(t, err, ErrInvalidGuestAddress)
}

func TestReadWriteBigEndian(t *testing.T) {
	d, blob := newTestDolphin(t)

	require.NoError(t, blob.WriteMemory(testMEM1Host+0x3C4C0C, []byte{0x01, 0xF4}))
	rupees, err := field.ReadU16(d, field.At(0x803C4C0C))
	require.NoError(t, err)
	assert.Equal(t, uint16(500), rupees)

	require.NoError(t, field.WriteF32(d, field.At(0x8035CEEC), 30))
	raw, err := blob.ReadMemory(testMEM1Host+0x35CEEC, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0xF0, 0x00, 0x00}, raw)
}

func TestPointerChainThroughGuestMemory(t *testing.T) {
	d, _ := newTestDolphin(t)

	require.NoError(t, field.WriteU32(d, field.At(0x803CA410), 0x80500000))
	require.NoError(t, field.WriteF32(d, field.At(0x805035BC), 17.5))

	speed, err := field.ReadF32(d, field.Chain(0x803CA410, 0x35BC))
	require.NoError(t, err)
	assert.Equal(t, float32(17.5), speed)

	// a pointer outside MEM1 fails the chain
	require.NoError(t, field.WriteU32(d, field.At(0x803CA410), 0x00500000))
	_, err = field.ReadF32(d, field.Chain(0x803CA410, 0x35BC))
	assert.ErrorIs(t, err, field.ErrMemory)
	assert.ErrorIs(t, err, ErrInvalidGuestAddress)
}

func TestClosedProcessIsMemoryError(t *testing.T) {
	d, _ := newTestDolphin(t)
	require.NoError(t, d.Close())

	_, err := field.ReadU8(d, field.At(0x803C53A4))
	assert.ErrorIs(t, err, field.ErrMemory)
	assert.ErrorIs(t, err, process.ErrProcessNotOpen)
}

func TestGameID(t *testing.T) {
	d, _ := newTestDolphin(t)
	require.NoError(t, d.WriteMemory(GameIDAddress, []byte("GZLE01")))

	id, err := ReadGameID(d)
	require.NoError(t, err)
	assert.Equal(t, "GZLE01", id)
	assert.True(t, IsGame(d, "GZLE01", "GZLE99"))
	assert.False(t, IsGame(d, "GALE01"))
}

func TestSaveMEM1(t *testing.T) {
	d, _ := newTestDolphin(t)
	require.NoError(t, d.WriteMemory(GameIDAddress, []byte("GZLE99")))

	dir := t.TempDir()
	require.NoError(t, d.SaveMEM1(dir, "dolphin-emu"))

	replay, err := process_blob.Load(dir)
	require.NoError(t, err)

	rd, err := New(replay)
	require.NoError(t, err)
	id, err := ReadGameID(rd)
	require.NoError(t, err)
	assert.Equal(t, "GZLE99", id)
}

func TestIsGuestPointer(t *testing.T) {
	assert.True(t, IsGuestPointer(0x80000000))
	assert.True(t, IsGuestPointer(0x817FFFFF))
	assert.True(t, IsGuestPointer(0xC0001000))
	assert.False(t, IsGuestPointer(0x81800000))
	assert.False(t, IsGuestPointer(0))
	assert.False(t, IsGuestPointer(0x7FFFFFFF))
}
