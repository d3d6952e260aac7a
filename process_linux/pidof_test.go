//go:build linux

package process_linux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchName(t *testing.T) {
	name, ok := matchName([]string{"dolphin-emu", "dolphin-emu-nogui"}, "dolphin-emu-nog", "/usr/bin/dolphin-emu-nogui")
	assert.True(t, ok)
	assert.Equal(t, "dolphin-emu-nogui", name)

	name, ok = matchName([]string{"dolphin-emu"}, "dolphin-emu", "")
	assert.True(t, ok)
	assert.Equal(t, "dolphin-emu", name)

	_, ok = matchName([]string{"dolphin-emu"}, "bash", "/bin/bash")
	assert.False(t, ok)
}

func TestBytesTrimNL(t *testing.T) {
	assert.Equal(t, "dolphin-emu", string(bytesTrimNL([]byte("dolphin-emu\n"))))
	assert.Empty(t, bytesTrimNL([]byte("\n\r ")))
}

func TestListByNameRequiresName(t *testing.T) {
	_, err := ListByName()
	assert.Error(t, err)
}
