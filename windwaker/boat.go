package windwaker

import (
	"fmt"

	"wwmem/field"
)

// Boat is the King of Red Lions. Its pointer is null while the boat isn't loaded.
type Boat struct {
	Speed  float32 `json:"speed"`
	Height float32 `json:"height"`
}

func (b Boat) String() string {
	return fmt.Sprintf("speed: %.2f height: %.2f", b.Speed, b.Height)
}

type BoatField struct {
	Speed, Height field.Field[float32]
}

// NewBoatField reads speed and height through BoatPointer
func NewBoatField() BoatField {
	return BoatField{
		Speed:  field.NewField[float32](field.Chain(BoatPointer, BoatSpeedOffset)),
		Height: field.NewField[float32](field.Chain(BoatPointer, BoatHeightOffset)),
	}
}

func (f *BoatField) Read(p field.Provider) (Boat, error) {
	if _, err := f.Speed.Read(p); err != nil {
		return f.Value(), err
	}
	if _, err := f.Height.Read(p); err != nil {
		return f.Value(), err
	}
	return f.Value(), nil
}

func (f *BoatField) Value() Boat {
	return Boat{Speed: f.Speed.Value(), Height: f.Height.Value()}
}
