package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexdump(t *testing.T) {
	data := []byte("sea\x00\x00\x00\x00\x00M_NewD2\x00\x80\x50\x00\x00")

	var buf bytes.Buffer
	opts := DefaultHexdumpOptions()
	opts.IsPointer = func(v uint32) bool { return v >= 0x80000000 && v < 0x81800000 }
	require.NoError(t, Hexdump(&buf, data, 0x803c9d3c, opts))

	want := "803c9d3c  73 65 61 00 00 00 00 00 | 4d 5f 4e 65 77 44 32 00 | sea..... M_NewD2."
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Errorf("first line (-want +got):\n%s", diff)
	}
	assert.True(t, strings.HasPrefix(lines[1], "803c9d4c  80 50 00 00 "))
	assert.True(t, strings.HasSuffix(lines[1], "| .P.. | 0x80500000"))
}

func TestHexdumpColumnsAlign(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Hexdump(&buf, make([]byte, 20), 0, DefaultHexdumpOptions()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "| ."), strings.Index(lines[1], "| ."))
}

func TestHexdumpEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Hexdump(&buf, nil, 0, DefaultHexdumpOptions()))
	assert.Empty(t, buf.String())
}

func TestHexdumpColor(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultHexdumpOptions()
	opts.Color = true
	opts.IsPointer = func(v uint32) bool { return v == 0x80500000 }
	require.NoError(t, Hexdump(&buf, []byte{0x80, 0x50, 0x00, 0x00, 'A'}, 0, opts))

	out := buf.String()
	assert.Contains(t, out, coloransi.Foreground(coloransi.BrightBlack, "00"))
	assert.Contains(t, out, coloransi.Foreground(coloransi.BrightBlack, "."))
	assert.Contains(t, out, coloransi.Foreground(coloransi.Green, "0x80500000"))
	assert.Contains(t, out, "A")
}
