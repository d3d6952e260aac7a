package windwaker

import (
	"errors"
	"fmt"

	"wwmem/dolphin"
	"wwmem/field"
)

// IsSupported reports whether the running game uses the layout this package reads
func IsSupported(p field.Provider) bool {
	return dolphin.IsGame(p, SupportedGameIDs...)
}

// Snapshot is one poll of the game state. Fields are read one after another,
// so a snapshot taken while the game runs can be torn.
type Snapshot struct {
	GameID        string   `json:"game_id"`
	StageName     string   `json:"stage_name"`
	NextStageName string   `json:"next_stage_name"`
	Stage         StageID  `json:"stage"`
	StageCode     uint8    `json:"stage_code"`
	Position      Position `json:"position"`
	Quadrant      Quadrant `json:"quadrant"`
	HP            HP       `json:"hp"`
	MP            MP       `json:"mp"`
	Rupees        uint16   `json:"rupees"`
	SpeedMax      float32  `json:"speed_max"`
	Inputs        Inputs   `json:"inputs"`

	// Behind pointers that are null while the object isn't loaded
	Speed *float32 `json:"speed,omitempty"`
	Boat  *Boat    `json:"boat,omitempty"`
}

// Reader holds one of each game field and the sea chart.
// It is not safe for concurrent use.
type Reader struct {
	grid QuadrantGrid

	gameID        field.StringField
	stageName     field.StringField
	nextStageName field.StringField
	stage         StageField
	position      PositionField
	hp            HPField
	mp            MPField
	rupees        field.Field[uint16]
	speed         field.MutableField[float32]
	speedMax      field.MutableField[float32]
	boat          BoatField
	inputs        InputsField
}

// NewReader builds a Reader over the default sea chart
func NewReader() *Reader {
	return &Reader{
		grid:          DefaultGrid(),
		gameID:        field.NewStringField(field.At(dolphin.GameIDAddress), 6),
		stageName:     field.NewStringField(field.At(StageNameAddress), StageNameLength),
		nextStageName: field.NewStringField(field.At(NextStageNameAddress), StageNameLength),
		stage:         NewStageField(),
		position:      NewPositionField(),
		hp:            NewHPField(),
		mp:            NewMPField(),
		rupees:        NewRupeesField(),
		speed:         NewSpeedField(),
		speedMax:      NewSpeedMaxField(),
		boat:          NewBoatField(),
		inputs:        NewInputsField(),
	}
}

// Snapshot reads every field. Any read failure aborts the snapshot, except a
// pointer-chained field whose pointer is null or off MEM1: that one is left nil.
func (r *Reader) Snapshot(p field.Provider) (Snapshot, error) {
	var s Snapshot
	var err error

	steps := []struct {
		name string
		read func() error
	}{
		{"game id", func() error { s.GameID, err = r.gameID.Read(p); return err }},
		{"stage name", func() error { s.StageName, err = r.stageName.Read(p); return err }},
		{"next stage name", func() error { s.NextStageName, err = r.nextStageName.Read(p); return err }},
		{"stage", func() error { s.Stage, err = r.stage.Read(p); return err }},
		{"position", func() error { s.Position, err = r.position.Read(p); return err }},
		{"hp", func() error { s.HP, err = r.hp.Read(p); return err }},
		{"mp", func() error { s.MP, err = r.mp.Read(p); return err }},
		{"rupees", func() error { s.Rupees, err = r.rupees.Read(p); return err }},
		{"speed max", func() error { s.SpeedMax, err = r.speedMax.Read(p); return err }},
		{"inputs", func() error { s.Inputs, err = r.inputs.Read(p); return err }},
	}

	for _, step := range steps {
		if err := step.read(); err != nil {
			return s, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	s.StageCode = r.stage.Code()
	s.Quadrant = Resolve(s.Stage, s.Position, &r.grid)

	v, err := r.speed.Read(p)
	switch {
	case err == nil:
		s.Speed = &v
	case !unloaded(err):
		return s, fmt.Errorf("speed: %w", err)
	}

	b, err := r.boat.Read(p)
	switch {
	case err == nil:
		s.Boat = &b
	case !unloaded(err):
		return s, fmt.Errorf("boat: %w", err)
	}

	return s, nil
}

// unloaded reports whether err comes from a pointer that is null or points
// outside guest memory, which is how the game marks an object that isn't loaded
func unloaded(err error) bool {
	return errors.Is(err, field.ErrNullPointer) || errors.Is(err, dolphin.ErrInvalidGuestAddress)
}

// GameID reads the disc id, e.g. "GZLE01"
func (r *Reader) GameID(p field.Provider) (string, error) {
	return r.gameID.Read(p)
}

// StageName reads the internal name of the current stage, e.g. "sea"
func (r *Reader) StageName(p field.Provider) (string, error) {
	return r.stageName.Read(p)
}

// NextStageName reads the stage being loaded next
func (r *Reader) NextStageName(p field.Provider) (string, error) {
	return r.nextStageName.Read(p)
}

func (r *Reader) Stage(p field.Provider) (StageID, error) {
	return r.stage.Read(p)
}

func (r *Reader) Position(p field.Provider) (Position, error) {
	return r.position.Read(p)
}

// Quadrant reads the stage and position and resolves them on the chart
func (r *Reader) Quadrant(p field.Provider) (Quadrant, error) {
	stage, err := r.stage.Read(p)
	if err != nil {
		return QuadrantUnknown, fmt.Errorf("stage: %w", err)
	}
	if !stage.IsSea() {
		return QuadrantUnknown, nil
	}
	pos, err := r.position.Read(p)
	if err != nil {
		return QuadrantUnknown, fmt.Errorf("position: %w", err)
	}
	return Resolve(stage, pos, &r.grid), nil
}

// HP reads current and max health
func (r *Reader) HP(p field.Provider) (HP, error) {
	return r.hp.Read(p)
}

func (r *Reader) MP(p field.Provider) (MP, error) {
	return r.mp.Read(p)
}

// SetMP writes the current magic; the max is left alone
func (r *Reader) SetMP(p field.Provider, current uint8) (MP, error) {
	return r.mp.WriteCurrent(p, current)
}

func (r *Reader) Rupees(p field.Provider) (uint16, error) {
	return r.rupees.Read(p)
}

// Speed reads the controlled character's speed through PlayerPointer
func (r *Reader) Speed(p field.Provider) (float32, error) {
	return r.speed.Read(p)
}

// SetSpeed writes the controlled character's speed
func (r *Reader) SetSpeed(p field.Provider, v float32) (float32, error) {
	return r.speed.Write(p, v)
}

func (r *Reader) SpeedMax(p field.Provider) (float32, error) {
	return r.speedMax.Read(p)
}

// SetSpeedMax writes the speed cap shared by every character
func (r *Reader) SetSpeedMax(p field.Provider, v float32) (float32, error) {
	return r.speedMax.Write(p, v)
}

// Boat reads the King of Red Lions through BoatPointer; fails with ErrNullPointer when it isn't loaded
func (r *Reader) Boat(p field.Provider) (Boat, error) {
	return r.boat.Read(p)
}

// Inputs reads the buttons and both sticks
func (r *Reader) Inputs(p field.Provider) (Inputs, error) {
	return r.inputs.Read(p)
}
