package windwaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeButtons(t *testing.T) {
	held, just := DecodeButtons(0x01_10_80_20)

	assert.True(t, held.Has(ButtonA))
	assert.True(t, held.Has(ButtonStart))
	assert.False(t, held.Has(ButtonB))
	assert.Equal(t, "A+Start", held.String())

	assert.True(t, just.Has(ButtonDPadLeft))
	assert.True(t, just.Has(ButtonY))
	assert.Equal(t, "Y+Left", just.String())
}

func TestDecodeButtonsNone(t *testing.T) {
	held, just := DecodeButtons(0)
	assert.Equal(t, Buttons(0), held)
	assert.Equal(t, "", just.String())
}
