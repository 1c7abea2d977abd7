package ui

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKelvinToRGB(t *testing.T) {
	warm := KelvinToRGB(2000)
	neutral := KelvinToRGB(6600)
	cool := KelvinToRGB(12000)

	assert.Equal(t, uint8(255), warm.R)
	assert.Less(t, warm.B, warm.G, "warm light has less blue than green")
	assert.Equal(t, uint8(255), neutral.R)
	assert.Equal(t, uint8(255), cool.B)
	assert.Less(t, cool.R, uint8(255))
	assert.Greater(t, cool.B, warm.B)
}

func TestKelvinToRGB_ClampsInput(t *testing.T) {
	assert.Equal(t, KelvinToRGB(1000), KelvinToRGB(10))
	assert.Equal(t, KelvinToRGB(40000), KelvinToRGB(90000))
}

func TestGenerateSunIcon(t *testing.T) {
	data := GenerateSunIcon(4500)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 22, img.Bounds().Dx())

	// The center pixel carries the temperature tint.
	r, g, b, _ := img.At(11, 11).RGBA()
	want := KelvinToRGB(4500)
	assert.Equal(t, uint32(want.R), r>>8)
	assert.Equal(t, uint32(want.G), g>>8)
	assert.Equal(t, uint32(want.B), b>>8)
}

func TestGenerateSunIcon_DiffersByTemperature(t *testing.T) {
	assert.False(t, bytes.Equal(GenerateSunIcon(3000), GenerateSunIcon(9000)))
}
