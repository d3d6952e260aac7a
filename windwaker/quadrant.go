package windwaker

// Quadrant is one of the 49 named sea chart squares, or QuadrantUnknown.
// String and MarshalText use the sea chart spelling listed in the package doc.
type Quadrant uint8

const (
	QuadrantUnknown Quadrant = iota

	// row 0
	QuadrantForsakenFortress
	QuadrantStarIsland
	QuadrantNorthernFairyIsland
	QuadrantGaleIsle
	QuadrantCrescentMoonIsland
	QuadrantSevenStarIsles
	QuadrantOverlookIsland

	// row 1
	QuadrantFourEyeReef
	QuadrantMotherAndChildIsles
	QuadrantSpectacleIsland
	QuadrantWindfallIsland
	QuadrantPawprintIsle
	QuadrantDragonRoostIsland
	QuadrantFlightControlPlatform

	// row 2
	QuadrantWesternFairyIsland
	QuadrantRockSpireIsle
	QuadrantTingleIsland
	QuadrantNorthernTriangleIsle
	QuadrantEasternFairyIsland
	QuadrantFireMountain
	QuadrantStarBeltArchipelago

	// row 3
	QuadrantThreeEyeReef
	QuadrantGreatfishIsle
	QuadrantCyclopsReef
	QuadrantSixEyeReef // the map's center, (0, 0) in overworld coordinates
	QuadrantTowerOfTheGods
	QuadrantEasternTriangleIsland
	QuadrantThornedFairyIsland

	// row 4
	QuadrantNeedleRockIsle
	QuadrantIsletOfSteel
	QuadrantStoneWatcherIsland
	QuadrantSouthernTriangleIsland
	QuadrantPrivateOasis
	QuadrantBombIsland
	QuadrantBirdsPeakRock

	// row 5
	QuadrantDiamondSteppeIsland
	QuadrantFiveEyeReef
	QuadrantSharkIsland
	QuadrantSouthernFairyIsland
	QuadrantIceRingIsle
	QuadrantForestHaven
	QuadrantCliffPlateauIsles

	// row 6
	QuadrantHorseshoeIsland
	QuadrantOutsetIsland
	QuadrantHeadstoneIsland
	QuadrantTwoEyeReef
	QuadrantAngularIsles
	QuadrantBoatingCourse
	QuadrantFiveStarIsles

	quadrantCount
)

var quadrantNames = [quadrantCount]string{
	QuadrantUnknown: "Unknown",

	QuadrantForsakenFortress:    "Forsaken Fortress",
	QuadrantStarIsland:          "Star Island",
	QuadrantNorthernFairyIsland: "Northern Fairy Island",
	QuadrantGaleIsle:            "Gale Isle",
	QuadrantCrescentMoonIsland:  "Crescent Moon Island",
	QuadrantSevenStarIsles:      "Seven-Star Isles",
	QuadrantOverlookIsland:      "Overlook Island",

	QuadrantFourEyeReef:           "Four-Eye Reef",
	QuadrantMotherAndChildIsles:   "Mother & Child Isles",
	QuadrantSpectacleIsland:       "Spectacle Island",
	QuadrantWindfallIsland:        "Windfall Island",
	QuadrantPawprintIsle:          "Pawprint Isle",
	QuadrantDragonRoostIsland:     "Dragon Roost Island",
	QuadrantFlightControlPlatform: "Flight Control Platform",

	QuadrantWesternFairyIsland:   "Western Fairy Island",
	QuadrantRockSpireIsle:        "Rock Spire Isle",
	QuadrantTingleIsland:         "Tingle Island",
	QuadrantNorthernTriangleIsle: "Northern Triangle Isle",
	QuadrantEasternFairyIsland:   "Eastern Fairy Island",
	QuadrantFireMountain:         "Fire Mountain",
	QuadrantStarBeltArchipelago:  "Star Belt Archipelago",

	QuadrantThreeEyeReef:          "Three-Eye Reef",
	QuadrantGreatfishIsle:         "Greatfish Isle",
	QuadrantCyclopsReef:           "Cyclops Reef",
	QuadrantSixEyeReef:            "Six-Eye Reef",
	QuadrantTowerOfTheGods:        "Tower of the Gods",
	QuadrantEasternTriangleIsland: "Eastern Triangle Island",
	QuadrantThornedFairyIsland:    "Thorned Fairy Island",

	QuadrantNeedleRockIsle:         "Needle Rock Isle",
	QuadrantIsletOfSteel:           "Islet of Steel",
	QuadrantStoneWatcherIsland:     "Stone Watcher Island",
	QuadrantSouthernTriangleIsland: "Southern Triangle Island",
	QuadrantPrivateOasis:           "Private Oasis",
	QuadrantBombIsland:             "Bomb Island",
	QuadrantBirdsPeakRock:          "Bird's Peak Rock",

	QuadrantDiamondSteppeIsland: "Diamond Steppe Island",
	QuadrantFiveEyeReef:         "Five-Eye Reef",
	QuadrantSharkIsland:         "Shark Island",
	QuadrantSouthernFairyIsland: "Southern Fairy Island",
	QuadrantIceRingIsle:         "Ice Ring Isle",
	QuadrantForestHaven:         "Forest Haven",
	QuadrantCliffPlateauIsles:   "Cliff Plateau Isles",

	QuadrantHorseshoeIsland: "Horseshoe Island",
	QuadrantOutsetIsland:    "Outset Island",
	QuadrantHeadstoneIsland: "Headstone Island",
	QuadrantTwoEyeReef:      "Two-Eye Reef",
	QuadrantAngularIsles:    "Angular Isles",
	QuadrantBoatingCourse:   "Boating Course",
	QuadrantFiveStarIsles:   "Five-Star Isles",
}

// String returns the display name; out of range values are "Unknown"
func (q Quadrant) String() string {
	if q >= quadrantCount {
		return quadrantNames[QuadrantUnknown]
	}
	return quadrantNames[q]
}

func (q Quadrant) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// Cell returns the chart row and column, ok is false for QuadrantUnknown
func (q Quadrant) Cell() (row, col int, ok bool) {
	if q == QuadrantUnknown || q >= quadrantCount {
		return 0, 0, false
	}
	i := int(q) - 1
	return i / GridCells, i % GridCells, true
}

// QuadrantAt is the fixed chart layout. Cells outside the 7x7 chart are QuadrantUnknown.
func QuadrantAt(row, col int) Quadrant {
	if row < 0 || row >= GridCells || col < 0 || col >= GridCells {
		return QuadrantUnknown
	}
	return Quadrant(1 + row*GridCells + col)
}
