package display

import (
	"fmt"
	"io"
	"strings"

	"wwmem/windwaker"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// RenderSnapshot writes s as a two column table without colors
func RenderSnapshot(w io.Writer, s windwaker.Snapshot) error {
	return SnapshotTable(s, false).Render(w)
}

// SnapshotTable lays s out one value per row. Fields behind a null pointer
// render as "-". With color, low health is red and blank cells are gray.
func SnapshotTable(s windwaker.Snapshot, color bool) *Table {
	value := Column{Header: "Value"}
	if color {
		value.FormatFunc = func(v string) string {
			if v == "-" {
				return coloransi.Foreground(coloransi.BrightBlack, v)
			}
			return v
		}
	}
	t := NewTable(Column{Header: "Field", MinWidth: 10}, value)

	t.AddRow("Game", s.GameID)
	t.AddRow("Stage", fmt.Sprintf("%s (0x%02x)", s.Stage, s.StageCode))
	t.AddRow("Stage name", s.StageName)
	t.AddRow("Next stage", s.NextStageName)
	t.AddRow("Position", fmt.Sprintf("%.2f, %.2f, %.2f", s.Position.X, s.Position.Y, s.Position.Z))
	t.AddRow("Quadrant", s.Quadrant.String())

	hp := fmt.Sprintf("%d/%d", s.HP.Current, s.HP.Max)
	if color && s.HP.Max > 0 {
		if s.HP.Current*4 <= s.HP.Max {
			hp = coloransi.Foreground(coloransi.Red, hp)
		} else {
			hp = coloransi.Foreground(coloransi.Green, hp)
		}
	}
	t.AddRow("HP", hp)
	t.AddRow("MP", fmt.Sprintf("%d/%d", s.MP.Current, s.MP.Max))
	t.AddRow("Rupees", fmt.Sprintf("%d", s.Rupees))

	speed := ""
	if s.Speed != nil {
		speed = fmt.Sprintf("%.2f", *s.Speed)
	}
	t.AddRow("Speed", speed)
	t.AddRow("Speed max", fmt.Sprintf("%.2f", s.SpeedMax))

	boat := ""
	if s.Boat != nil {
		boat = fmt.Sprintf("speed %.2f height %.2f", s.Boat.Speed, s.Boat.Height)
	}
	t.AddRow("Boat", boat)

	t.AddRow("Held", s.Inputs.Held.String())
	t.AddRow("Pressed", s.Inputs.JustPressed.String())
	t.AddRow("Stick", formatStick(s.Inputs.Control))
	t.AddRow("C stick", formatStick(s.Inputs.C))
	return t
}

func formatStick(st windwaker.Stick) string {
	return strings.Join([]string{fmt.Sprintf("%.2f", st.X), fmt.Sprintf("%.2f", st.Y)}, ", ")
}
