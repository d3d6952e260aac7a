package windwaker

import (
	"strings"

	"wwmem/field"
)

// Buttons is a controller button set. The low byte mirrors the first button
// byte in memory, the high byte the second.
type Buttons uint16

const (
	ButtonA Buttons = 1 << iota
	ButtonL
	ButtonR
	ButtonZ
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadRight
	ButtonDPadLeft
	_
	_
	_
	_
	ButtonStart
	ButtonY
	ButtonX
	ButtonB
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonA, "A"}, {ButtonB, "B"}, {ButtonX, "X"}, {ButtonY, "Y"},
	{ButtonL, "L"}, {ButtonR, "R"}, {ButtonZ, "Z"}, {ButtonStart, "Start"},
	{ButtonDPadUp, "Up"}, {ButtonDPadDown, "Down"}, {ButtonDPadLeft, "Left"}, {ButtonDPadRight, "Right"},
}

// Has reports whether every button in o is set
func (b Buttons) Has(o Buttons) bool {
	return b&o == o
}

// String joins the set button names with "+"
func (b Buttons) String() string {
	var names []string
	for _, bn := range buttonNames {
		if b.Has(bn.b) {
			names = append(names, bn.name)
		}
	}
	return strings.Join(names, "+")
}

func (b Buttons) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Stick is an analog stick, each axis in [-1, 1]
type Stick struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

type Inputs struct {
	Held        Buttons `json:"held"`
	JustPressed Buttons `json:"just_pressed"`
	Control     Stick   `json:"control"`
	C           Stick   `json:"c"`
}

// DecodeButtons splits the 32-bit button word at ButtonsAddress.
// Bytes 0 and 1 are held buttons, bytes 2 and 3 buttons pressed this frame.
func DecodeButtons(word uint32) (held, justPressed Buttons) {
	held = Buttons(word>>24) | Buttons(word>>16&0xFF)<<8
	justPressed = Buttons(word>>8&0xFF) | Buttons(word&0xFF)<<8
	return held, justPressed
}

type InputsField struct {
	Buttons            field.Field[uint32]
	ControlX, ControlY field.Field[float32]
	CX, CY             field.Field[float32]
}

// NewInputsField reads the button word and both sticks
func NewInputsField() InputsField {
	return InputsField{
		Buttons:  field.NewField[uint32](field.At(ButtonsAddress)),
		ControlX: field.NewField[float32](field.At(ControlStickXAddress)),
		ControlY: field.NewField[float32](field.At(ControlStickYAddress)),
		CX:       field.NewField[float32](field.At(CStickXAddress)),
		CY:       field.NewField[float32](field.At(CStickYAddress)),
	}
}

func (f *InputsField) Read(p field.Provider) (Inputs, error) {
	if _, err := f.Buttons.Read(p); err != nil {
		return f.Value(), err
	}
	for _, axis := range []*field.Field[float32]{&f.ControlX, &f.ControlY, &f.CX, &f.CY} {
		if _, err := axis.Read(p); err != nil {
			return f.Value(), err
		}
	}
	return f.Value(), nil
}

func (f *InputsField) Value() Inputs {
	held, just := DecodeButtons(f.Buttons.Value())
	return Inputs{
		Held:        held,
		JustPressed: just,
		Control:     Stick{X: f.ControlX.Value(), Y: f.ControlY.Value()},
		C:           Stick{X: f.CX.Value(), Y: f.CY.Value()},
	}
}
