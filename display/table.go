// Package display renders game state for a terminal.
package display

import (
	"fmt"
	"io"
	"strings"
)

// FormatFunc colorizes a cell after its width has been measured
type FormatFunc func(value string) string

type Column struct {
	Header     string
	BlankValue string // shown for empty cells, "-" when unset
	FormatFunc FormatFunc
	MinWidth   int
}

// Table is a left aligned text table. Widths ignore ANSI escape sequences.
type Table struct {
	columns []Column
	rows    [][]string
	widths  []int
}

// NewTable creates a table with the given columns
func NewTable(cols ...Column) *Table {
	t := &Table{
		columns: cols,
		widths:  make([]int, len(cols)),
	}
	for i := range t.columns {
		t.widths[i] = max(t.columns[i].MinWidth, visibleLength(t.columns[i].Header))
		if t.columns[i].BlankValue == "" {
			t.columns[i].BlankValue = "-"
		}
	}
	return t
}

// AddRow appends a row; missing or empty cells get the column's BlankValue
// and extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) && cells[i] != "" {
			row[i] = cells[i]
		} else {
			row[i] = t.columns[i].BlankValue
		}
		t.widths[i] = max(t.widths[i], visibleLength(row[i]))
	}
	t.rows = append(t.rows, row)
}

// Render writes the header, a dashed separator and every row to w
func (t *Table) Render(w io.Writer) error {
	headers := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = pad(col.Header, t.widths[i])
		sep[i] = strings.Repeat("-", t.widths[i])
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(headers, " "), " ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, " ")); err != nil {
		return err
	}

	for _, row := range t.rows {
		formatted := make([]string, len(row))
		for i, val := range row {
			if f := t.columns[i].FormatFunc; f != nil {
				val = f(val)
			}
			formatted[i] = pad(val, t.widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(formatted, " "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int) string {
	n := visibleLength(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// visibleLength counts runes outside of ANSI color sequences
func visibleLength(s string) int {
	length := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			length++
		}
	}
	return length
}
