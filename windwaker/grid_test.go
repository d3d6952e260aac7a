package windwaker

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridNames(g QuadrantGrid) [GridCells][GridCells]string {
	var names [GridCells][GridCells]string
	for row := 0; row < GridCells; row++ {
		for col := 0; col < GridCells; col++ {
			names[row][col] = g.Cell(row, col).String()
		}
	}
	return names
}

func TestBuildGridDeterministic(t *testing.T) {
	a, b := BuildGrid(), BuildGrid()
	if diff := cmp.Diff(gridNames(a), gridNames(b)); diff != "" {
		t.Errorf("grids differ (-first +second):\n%s", diff)
	}
	assert.Equal(t, a, DefaultGrid())
}

func TestGridCellsAreDistinctAndNamed(t *testing.T) {
	g := BuildGrid()
	seen := map[Quadrant]bool{}
	for row := 0; row < GridCells; row++ {
		for col := 0; col < GridCells; col++ {
			q := g.Cell(row, col)
			require.NotEqual(t, QuadrantUnknown, q)
			assert.False(t, seen[q], "duplicate %s", q)
			seen[q] = true

			r, c, ok := q.Cell()
			require.True(t, ok)
			assert.Equal(t, [2]int{row, col}, [2]int{r, c})
		}
	}
	assert.Len(t, seen, 49)
}

func TestGridLayout(t *testing.T) {
	g := BuildGrid()
	assert.Equal(t, "Forsaken Fortress", g.Cell(0, 0).String())
	assert.Equal(t, "Windfall Island", g.Cell(1, 3).String())
	assert.Equal(t, "Six-Eye Reef", g.Cell(3, 3).String())
	assert.Equal(t, "Outset Island", g.Cell(6, 1).String())
	assert.Equal(t, "Five-Star Isles", g.Cell(6, 6).String())
}

func TestQuadrantAtOutOfRange(t *testing.T) {
	assert.Equal(t, QuadrantUnknown, QuadrantAt(-1, 0))
	assert.Equal(t, QuadrantUnknown, QuadrantAt(0, 7))
	assert.Equal(t, QuadrantUnknown, QuadrantAt(7, 7))

	g := BuildGrid()
	assert.Equal(t, QuadrantUnknown, g.Cell(7, 0))

	_, _, ok := QuadrantUnknown.Cell()
	assert.False(t, ok)
	assert.Equal(t, "Unknown", Quadrant(200).String())
}

func TestRects(t *testing.T) {
	g := BuildGrid()
	rects := g.Rects()
	require.Len(t, rects, 49)

	want := Rect{Quadrant: QuadrantForsakenFortress, MinX: -350000, MinZ: -350000, MaxX: -250000, MaxZ: -250000}
	assert.Equal(t, want, rects[0])

	// row-major: index 8 is row 1, column 1
	assert.Equal(t, QuadrantMotherAndChildIsles, rects[8].Quadrant)
	assert.Equal(t, float32(-250000), rects[8].MinX)
	assert.Equal(t, float32(-250000), rects[8].MinZ)

	assert.Equal(t, float32(350000), rects[48].MaxX)
	assert.Equal(t, float32(350000), rects[48].MaxZ)
}

func TestResolveCorners(t *testing.T) {
	g := BuildGrid()
	assert.Equal(t, QuadrantForsakenFortress, Resolve(StageSeaOverworld, Position{X: -350000, Z: -350000}, &g))
	assert.Equal(t, QuadrantFiveStarIsles, Resolve(StageSeaOverworld, Position{X: 350000, Z: 350000}, &g))
}

func TestResolveColumnTieBreak(t *testing.T) {
	g := BuildGrid()
	got := Resolve(StageSeaOverworld, Position{X: -250000, Z: -350000}, &g)
	assert.Equal(t, QuadrantForsakenFortress, got)
	assert.NotEqual(t, QuadrantStarIsland, got)
}

func TestResolveRowTieBreak(t *testing.T) {
	g := BuildGrid()
	// on the edge between row 0 and row 1, inside column 3
	assert.Equal(t, QuadrantGaleIsle, Resolve(StageSeaAlt, Position{X: 0, Z: -250000}, &g))
	// on the corner shared by four cells
	assert.Equal(t, QuadrantTingleIsland, Resolve(StageSeaAlt, Position{X: -50000, Z: -50000}, &g))
}

func TestResolveInterior(t *testing.T) {
	g := BuildGrid()
	assert.Equal(t, QuadrantSixEyeReef, Resolve(StageSeaOverworld, Position{X: 1, Y: 500, Z: 1}, &g))
	assert.Equal(t, QuadrantOutsetIsland, Resolve(StageSeaOverworld, Position{X: -200000, Z: 300000}, &g))
	assert.Equal(t, QuadrantDragonRoostIsland, Resolve(StageSeaOverworld, Position{X: 200000, Z: -200000}, &g))
}

func TestResolveNonSeaIsUnknown(t *testing.T) {
	g := BuildGrid()
	for code := 2; code <= 255; code++ {
		stage := DecodeStageID(uint8(code))
		assert.Equal(t, QuadrantUnknown, Resolve(stage, Position{}, &g), "stage %s", stage)
	}
	assert.Equal(t, QuadrantUnknown, Resolve(StageTestMaps, Position{}, &g))
	assert.Equal(t, QuadrantUnknown, Resolve(StageHyrule, Position{X: -350000, Z: -350000}, &g))
}

func TestResolveOffChart(t *testing.T) {
	g := BuildGrid()
	assert.Equal(t, QuadrantUnknown, Resolve(StageSeaAlt, Position{X: 400000, Z: 0}, &g))
	assert.Equal(t, QuadrantUnknown, Resolve(StageSeaAlt, Position{X: 0, Z: -350001}, &g))

	nan := float32(math.NaN())
	assert.Equal(t, QuadrantUnknown, Resolve(StageSeaOverworld, Position{X: nan, Z: 0}, &g))
	inf := float32(math.Inf(1))
	assert.Equal(t, QuadrantUnknown, Resolve(StageSeaOverworld, Position{X: 0, Z: inf}, &g))
}

func TestQuadrantChartSpelling(t *testing.T) {
	want := map[Quadrant]string{
		QuadrantGaleIsle:       "Gale Isle",
		QuadrantSevenStarIsles: "Seven-Star Isles",
		QuadrantPawprintIsle:   "Pawprint Isle",
		QuadrantNeedleRockIsle: "Needle Rock Isle",
		QuadrantBirdsPeakRock:  "Bird's Peak Rock",
	}
	for q, name := range want {
		assert.Equal(t, name, q.String())
		text, err := q.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))
	}
}
