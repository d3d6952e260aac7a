package windwaker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStageIDKnownCodes(t *testing.T) {
	want := []StageID{
		StageSeaOverworld,
		StageSeaAlt,
		StageForsakenFortress,
		StageDragonRoostCavern,
		StageForbiddenWoods,
		StageTowerOfTheGods,
		StageEarthTemple,
		StageWindTemple,
		StageGanonsTower,
		StageHyrule,
		StageInteriorsShips,
		StageInteriorsHouses,
		StageCavesInteriors,
		StageCavesAlt,
	}
	for code, id := range want {
		assert.Equal(t, id, DecodeStageID(uint8(code)), "code %d", code)
	}
}

func TestDecodeStageIDOtherCodesAreUnknown(t *testing.T) {
	for code := 14; code <= 255; code++ {
		assert.Equal(t, StageUnknown, DecodeStageID(uint8(code)), "code %d", code)
	}
}

func TestStageIDZeroValueIsUnknown(t *testing.T) {
	var s StageID
	assert.Equal(t, StageUnknown, s)
	assert.Equal(t, "Unknown", s.String())
}

func TestStageClass(t *testing.T) {
	assert.True(t, StageSeaOverworld.IsSea())
	assert.True(t, StageSeaAlt.IsSea())
	assert.False(t, StageForsakenFortress.IsSea())
	assert.Equal(t, ClassDungeon, StageWindTemple.Class())
	assert.Equal(t, ClassInteriors, StageInteriorsShips.Class())
	assert.Equal(t, ClassCaves, StageCavesAlt.Class())
	assert.Equal(t, ClassHyrule, StageHyrule.Class())
	assert.Equal(t, ClassTestMaps, StageTestMaps.Class())
	assert.Equal(t, ClassUnknown, StageUnknown.Class())
}

func TestStageIDText(t *testing.T) {
	assert.Equal(t, "Overworld (alt)", StageSeaAlt.String())
	assert.Equal(t, "Caves (interior)", StageCavesInteriors.String())

	data, err := json.Marshal(map[string]StageID{"stage": StageInteriorsHouses})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stage":"interiors/houses"}`, string(data))

	var s StageID
	require.NoError(t, s.UnmarshalText([]byte("sea/overworld")))
	assert.Equal(t, StageSeaOverworld, s)
	assert.Error(t, s.UnmarshalText([]byte("lost woods")))
}
