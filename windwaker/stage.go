package windwaker

import (
	"fmt"

	"wwmem/field"
)

// StageID is the class of stage the player is in. The zero value is StageUnknown.
type StageID uint8

const (
	StageUnknown StageID = iota
	StageSeaOverworld
	StageSeaAlt
	StageForsakenFortress
	StageDragonRoostCavern
	StageForbiddenWoods
	StageTowerOfTheGods
	StageEarthTemple
	StageWindTemple
	StageGanonsTower
	StageHyrule
	StageInteriorsShips
	StageInteriorsHouses
	StageCavesInteriors
	StageCavesAlt
	StageTestMaps
)

// StageClass groups the sub-variants of a StageID
type StageClass uint8

const (
	ClassUnknown StageClass = iota
	ClassSea
	ClassDungeon
	ClassHyrule
	ClassInteriors
	ClassCaves
	ClassTestMaps
)

// stageCodes is indexed by the raw stage byte. 0x0E is reserved and stays
// StageUnknown on its own entry so it can be given a meaning later without
// touching the catch-all.
var stageCodes = [...]StageID{
	0x00: StageSeaOverworld,
	0x01: StageSeaAlt,
	0x02: StageForsakenFortress,
	0x03: StageDragonRoostCavern,
	0x04: StageForbiddenWoods,
	0x05: StageTowerOfTheGods,
	0x06: StageEarthTemple,
	0x07: StageWindTemple,
	0x08: StageGanonsTower,
	0x09: StageHyrule,
	0x0A: StageInteriorsShips,
	0x0B: StageInteriorsHouses,
	0x0C: StageCavesInteriors,
	0x0D: StageCavesAlt,
	0x0E: StageUnknown,
}

// DecodeStageID maps a raw stage byte to a StageID. Every byte maps to
// exactly one value; codes without an entry are StageUnknown.
func DecodeStageID(code uint8) StageID {
	if int(code) < len(stageCodes) {
		return stageCodes[code]
	}
	return StageUnknown
}

var stageNames = map[StageID]string{
	StageUnknown:           "Unknown",
	StageSeaOverworld:      "Overworld",
	StageSeaAlt:            "Overworld (alt)",
	StageForsakenFortress:  "Forsaken Fortress",
	StageDragonRoostCavern: "Dragon Roost Cavern",
	StageForbiddenWoods:    "Forbidden Woods",
	StageTowerOfTheGods:    "Tower of the Gods",
	StageEarthTemple:       "Earth Temple",
	StageWindTemple:        "Wind Temple",
	StageGanonsTower:       "Ganons Tower",
	StageHyrule:            "Hyrule",
	StageInteriorsShips:    "Interiors (ships)",
	StageInteriorsHouses:   "Interiors (houses)",
	StageCavesInteriors:    "Caves (interior)",
	StageCavesAlt:          "Caves (alt)",
	StageTestMaps:          "Test Maps",
}

var stageKeys = map[StageID]string{
	StageUnknown:           "unknown",
	StageSeaOverworld:      "sea/overworld",
	StageSeaAlt:            "sea/alt",
	StageForsakenFortress:  "forsakenfortress",
	StageDragonRoostCavern: "dragonroostcavern",
	StageForbiddenWoods:    "forbiddenwoods",
	StageTowerOfTheGods:    "towerofthegods",
	StageEarthTemple:       "earthtemple",
	StageWindTemple:        "windtemple",
	StageGanonsTower:       "ganonstower",
	StageHyrule:            "hyrule",
	StageInteriorsShips:    "interiors/ships",
	StageInteriorsHouses:   "interiors/houses",
	StageCavesInteriors:    "caves/interiors",
	StageCavesAlt:          "caves/alt",
	StageTestMaps:          "testmaps",
}

func (s StageID) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return stageNames[StageUnknown]
}

// Class returns the top level of the taxonomy
func (s StageID) Class() StageClass {
	switch s {
	case StageSeaOverworld, StageSeaAlt:
		return ClassSea
	case StageForsakenFortress, StageDragonRoostCavern, StageForbiddenWoods, StageTowerOfTheGods,
		StageEarthTemple, StageWindTemple, StageGanonsTower:
		return ClassDungeon
	case StageHyrule:
		return ClassHyrule
	case StageInteriorsShips, StageInteriorsHouses:
		return ClassInteriors
	case StageCavesInteriors, StageCavesAlt:
		return ClassCaves
	case StageTestMaps:
		return ClassTestMaps
	}
	return ClassUnknown
}

// IsSea reports whether the stage is one of the overworld sea variants
func (s StageID) IsSea() bool {
	return s.Class() == ClassSea
}

// MarshalText encodes the stage as its short key, e.g. "sea/overworld"
func (s StageID) MarshalText() ([]byte, error) {
	key, ok := stageKeys[s]
	if !ok {
		key = stageKeys[StageUnknown]
	}
	return []byte(key), nil
}

func (s *StageID) UnmarshalText(text []byte) error {
	for id, key := range stageKeys {
		if key == string(text) {
			*s = id
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", text)
}

// StageField reads the stage byte and decodes it
type StageField struct {
	raw   field.Field[uint8]
	value StageID
}

// NewStageField reads the stage byte at StageIDAddress
func NewStageField() StageField {
	return StageField{raw: field.NewField[uint8](field.At(StageIDAddress))}
}

// Read never fails to decode; only the memory read can fail
func (f *StageField) Read(p field.Provider) (StageID, error) {
	code, err := f.raw.Read(p)
	if err != nil {
		return f.value, err
	}
	f.value = DecodeStageID(code)
	return f.value, nil
}

func (f *StageField) Value() StageID {
	return f.value
}

// Code returns the raw byte last read
func (f *StageField) Code() uint8 {
	return f.raw.Value()
}
