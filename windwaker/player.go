package windwaker

import (
	"fmt"

	"wwmem/field"
)

// Position is the player's world position. The three axes are separate reads.
type Position struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (p Position) String() string {
	return fmt.Sprintf("x: %.2f y: %.2f z: %.2f", p.X, p.Y, p.Z)
}

type PositionField struct {
	X, Y, Z field.Field[float32]
}

// NewPositionField reads the player's x, y, z
func NewPositionField() PositionField {
	return PositionField{
		X: field.NewField[float32](field.At(PlayerXAddress)),
		Y: field.NewField[float32](field.At(PlayerYAddress)),
		Z: field.NewField[float32](field.At(PlayerZAddress)),
	}
}

// Read stops at the first failing axis; axes already read keep their new values
func (f *PositionField) Read(p field.Provider) (Position, error) {
	for _, axis := range []*field.Field[float32]{&f.X, &f.Y, &f.Z} {
		if _, err := axis.Read(p); err != nil {
			return f.Value(), err
		}
	}
	return f.Value(), nil
}

func (f *PositionField) Value() Position {
	return Position{X: f.X.Value(), Y: f.Y.Value(), Z: f.Z.Value()}
}

// HP is measured in quarter hearts
type HP struct {
	Current uint16 `json:"current"`
	Max     uint16 `json:"max"`
}

func (h HP) String() string {
	return fmt.Sprintf("%d/%d", h.Current, h.Max)
}

type HPField struct {
	Current, Max field.Field[uint16]
}

// NewHPField reads current and max hearts
func NewHPField() HPField {
	return HPField{
		Current: field.NewField[uint16](field.At(PlayerHPAddress)),
		Max:     field.NewField[uint16](field.At(PlayerHPMaxAddress)),
	}
}

func (f *HPField) Read(p field.Provider) (HP, error) {
	if _, err := f.Current.Read(p); err != nil {
		return f.Value(), err
	}
	if _, err := f.Max.Read(p); err != nil {
		return f.Value(), err
	}
	return f.Value(), nil
}

func (f *HPField) Value() HP {
	return HP{Current: f.Current.Value(), Max: f.Max.Value()}
}

type MP struct {
	Current uint8 `json:"current"`
	Max     uint8 `json:"max"`
}

func (m MP) String() string {
	return fmt.Sprintf("%d/%d", m.Current, m.Max)
}

type MPField struct {
	Current field.MutableField[uint8]
	Max     field.Field[uint8]
}

// NewMPField reads current and max magic; the current value is writable
func NewMPField() MPField {
	return MPField{
		Current: field.NewMutableField[uint8](field.At(PlayerMPAddress)),
		Max:     field.NewField[uint8](field.At(PlayerMPMaxAddress)),
	}
}

func (f *MPField) Read(p field.Provider) (MP, error) {
	if _, err := f.Current.Read(p); err != nil {
		return f.Value(), err
	}
	if _, err := f.Max.Read(p); err != nil {
		return f.Value(), err
	}
	return f.Value(), nil
}

// WriteCurrent sets the magic meter; the max is left alone
func (f *MPField) WriteCurrent(p field.Provider, current uint8) (MP, error) {
	if _, err := f.Current.Write(p, current); err != nil {
		return f.Value(), err
	}
	return f.Value(), nil
}

func (f *MPField) Value() MP {
	return MP{Current: f.Current.Value(), Max: f.Max.Value()}
}

// NewRupeesField reads the wallet
func NewRupeesField() field.Field[uint16] {
	return field.NewField[uint16](field.At(RupeesAddress))
}

// NewSpeedField is the controlled character's speed, through PlayerPointer
func NewSpeedField() field.MutableField[float32] {
	return field.NewMutableField[float32](field.Chain(PlayerPointer, PlayerSpeedOffset))
}

// NewSpeedMaxField is the speed cap at a fixed address
func NewSpeedMaxField() field.MutableField[float32] {
	return field.NewMutableField[float32](field.At(PlayerSpeedMaxAddr))
}
