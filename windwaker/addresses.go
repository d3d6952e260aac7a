// Package windwaker reads The Legend of Zelda: The Wind Waker (NTSC-U) state
// out of guest memory and turns it into a semantic view of the game.
//
// Quadrant names follow the in-game sea chart spelling. A few differ from
// strings other Wind Waker memory tools print: "Gale Isle" (not "Gale Island"),
// "Seven-Star Isles" (not "Seven-Star Island"), "Pawprint Isle" (not "Pawprint
// Island"), "Needle Rock Isle" (not "Needle rock Isle") and "Bird's Peak Rock"
// (not "Birds Peak Rock"). Match on Quadrant values, or on these names, when
// consuming the JSON output.
package windwaker

// SupportedGameIDs are the disc ids whose memory layout matches the addresses below
var SupportedGameIDs = []string{"GZLE01", "GZLE99"}

const (
	// StageIDAddress holds the class of the loaded stage: it tells the player
	// is on the sea, not which quadrant.
	StageIDAddress uint32 = 0x803C53A4

	StageNameAddress     uint32 = 0x803C9D3C
	NextStageNameAddress uint32 = 0x803C9D48
	StageNameLength      uint32 = 8

	PlayerXAddress uint32 = 0x803E440C
	PlayerYAddress uint32 = 0x803E4410
	PlayerZAddress uint32 = 0x803E4414

	// PlayerPointer points at whoever the player controls (Link, Medli, Makar, a seagull...)
	PlayerPointer      uint32 = 0x803CA410
	PlayerSpeedOffset  int32  = 0x35BC
	PlayerSpeedMaxAddr uint32 = 0x8035CEEC

	PlayerHPAddress    uint32 = 0x803C4C0A
	PlayerHPMaxAddress uint32 = 0x803C4C08
	PlayerMPAddress    uint32 = 0x803C4C1C
	PlayerMPMaxAddress uint32 = 0x803C4C1B
	RupeesAddress      uint32 = 0x803C4C0C

	// BoatPointer points at the King of Red Lions
	BoatPointer      uint32 = 0x803CA75C
	BoatSpeedOffset  int32  = 0x254
	BoatHeightOffset int32  = 0x1FC

	ControlStickXAddress uint32 = 0x803A4DF0
	ControlStickYAddress uint32 = 0x803A4DF4
	CStickXAddress       uint32 = 0x803A4E00
	CStickYAddress       uint32 = 0x803A4E04
	ButtonsAddress       uint32 = 0x803A4E20
)
