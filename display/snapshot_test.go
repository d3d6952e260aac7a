package display

import (
	"bytes"
	"testing"

	"wwmem/windwaker"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() windwaker.Snapshot {
	return windwaker.Snapshot{
		GameID:    "GZLE01",
		StageName: "sea",
		Stage:     windwaker.StageSeaOverworld,
		Position:  windwaker.Position{X: -200000, Y: 12.5, Z: 300000},
		Quadrant:  windwaker.QuadrantOutsetIsland,
		HP:        windwaker.HP{Current: 4, Max: 20},
		MP:        windwaker.MP{Current: 8, Max: 16},
		Rupees:    250,
		SpeedMax:  30,
		Inputs:    windwaker.Inputs{Held: windwaker.ButtonA | windwaker.ButtonB},
	}
}

func TestRenderSnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSnapshot(&buf, testSnapshot()))
	out := buf.String()

	assert.Contains(t, out, "Overworld (0x00)")
	assert.Contains(t, out, "-200000.00, 12.50, 300000.00")
	assert.Contains(t, out, "Outset Island")
	assert.Contains(t, out, "4/20")
	assert.Contains(t, out, "30.00")
	assert.Contains(t, out, "A+B")
	assert.Regexp(t, `(?m)^Speed\s+-$`, out)
	assert.Regexp(t, `(?m)^Boat\s+-$`, out)
	assert.NotContains(t, out, "\033[")
}

func TestRenderSnapshotPointers(t *testing.T) {
	s := testSnapshot()
	speed := float32(17.5)
	s.Speed = &speed
	s.Boat = &windwaker.Boat{Speed: 55, Height: 2}

	var buf bytes.Buffer
	require.NoError(t, RenderSnapshot(&buf, s))
	assert.Regexp(t, `(?m)^Speed\s+17\.50$`, buf.String())
	assert.Contains(t, buf.String(), "speed 55.00 height 2.00")
}

func TestSnapshotTableColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SnapshotTable(testSnapshot(), true).Render(&buf))
	assert.Contains(t, buf.String(), coloransi.Foreground(coloransi.Red, "4/20"))
	assert.Contains(t, buf.String(), coloransi.Foreground(coloransi.BrightBlack, "-"))
}
