package display

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// HexdumpOptions controls Hexdump output
type HexdumpOptions struct {
	BytesPerLine int
	Color        bool

	// IsPointer marks big-endian words that look like guest pointers;
	// they are listed after the ASCII column. Nil disables the column.
	IsPointer func(v uint32) bool
}

func DefaultHexdumpOptions() HexdumpOptions {
	return HexdumpOptions{BytesPerLine: 16}
}

// Hexdump writes data as rows of hex and ASCII, addresses starting at addr.
//
//	803c9d3c  73 65 61 00 00 00 00 00 | 4d 5f 4e 65 77 44 32 00 | sea..... M_NewD2. | 0x80500000
func Hexdump(w io.Writer, data []byte, addr uint32, opts HexdumpOptions) error {
	if opts.BytesPerLine <= 0 {
		opts.BytesPerLine = 16
	}
	for off := 0; off < len(data); off += opts.BytesPerLine {
		end := min(off+opts.BytesPerLine, len(data))
		if _, err := fmt.Fprintln(w, hexLine(data[off:end], addr+uint32(off), opts)); err != nil {
			return err
		}
	}
	return nil
}

func hexLine(line []byte, addr uint32, opts HexdumpOptions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%08x  ", addr)

	half := opts.BytesPerLine / 2
	for i := 0; i < opts.BytesPerLine; i++ {
		if i > 0 {
			if i == half {
				sb.WriteString(" | ")
			} else {
				sb.WriteByte(' ')
			}
		}
		if i >= len(line) {
			sb.WriteString("  ")
			continue
		}
		h := fmt.Sprintf("%02x", line[i])
		if opts.Color && line[i] == 0 {
			h = coloransi.Foreground(coloransi.BrightBlack, h)
		}
		sb.WriteString(h)
	}

	sb.WriteString(" | ")
	for i, b := range line {
		if i == half {
			sb.WriteByte(' ')
		}
		r := rune(b)
		switch {
		case b < 0x80 && unicode.IsPrint(r):
			sb.WriteRune(r)
		case opts.Color:
			sb.WriteString(coloransi.Foreground(coloransi.BrightBlack, "."))
		default:
			sb.WriteByte('.')
		}
	}

	if opts.IsPointer != nil {
		var ptrs []string
		for i := 0; i+4 <= len(line); i += 4 {
			v := binary.BigEndian.Uint32(line[i:])
			if opts.IsPointer(v) {
				p := fmt.Sprintf("0x%08x", v)
				if opts.Color {
					p = coloransi.Foreground(coloransi.Green, p)
				}
				ptrs = append(ptrs, p)
			}
		}
		if len(ptrs) > 0 {
			sb.WriteString(" | ")
			sb.WriteString(strings.Join(ptrs, " "))
		}
	}

	return sb.String()
}
