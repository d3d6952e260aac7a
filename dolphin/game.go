package dolphin

import (
	"slices"

	"wwmem/field"
)

// GameIDAddress is where the disc header's six character game id is loaded
const GameIDAddress uint32 = 0x80000000

// ReadGameID returns the running game's id, e.g. "GZLE01"
func ReadGameID(p field.Provider) (string, error) {
	id := field.NewStringField(field.At(GameIDAddress), 6)
	return id.Read(p)
}

// IsGame reports whether the running game id is one of ids
func IsGame(p field.Provider, ids ...string) bool {
	id, err := ReadGameID(p)
	if err != nil {
		return false
	}
	return slices.Contains(ids, id)
}
