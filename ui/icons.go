// Package ui provides the graphical user interface for Redshift Tray.
// This file contains icon generation utilities for the system tray.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/yllada/redshift-tray/common"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	RayColor    color.RGBA
	Rays        int
}

// SunIconConfig returns the config for a sun tinted by a color temperature.
func SunIconConfig(kelvin int) IconConfig {
	fill := KelvinToRGB(kelvin)
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   fill,
		BorderColor: shade(fill, 0.7),
		RayColor:    shade(fill, 0.85),
		Rays:        8,
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	img := g.Image()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		common.LogError("Failed to encode tray icon: %v", err)
		return nil
	}
	return buf.Bytes()
}

// Image draws the icon.
func (g *IconGenerator) Image() *image.RGBA {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	g.drawRays(img)
	g.drawDisc(img)
	return img
}

// drawDisc draws the filled sun disc with a one pixel border.
func (g *IconGenerator) drawDisc(img *image.RGBA) {
	size := g.config.Size
	center := float64(size) / 2
	radius := float64(size) * 0.28

	inDisc := func(x, y float64) bool {
		dx, dy := x-center, y-center
		return dx*dx+dy*dy <= radius*radius
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !inDisc(fx, fy) {
				continue
			}
			isBorder := !inDisc(fx-1, fy) || !inDisc(fx+1, fy) ||
				!inDisc(fx, fy-1) || !inDisc(fx, fy+1)
			if isBorder {
				img.Set(x, y, g.config.BorderColor)
			} else {
				img.Set(x, y, g.config.FillColor)
			}
		}
	}
}

// drawRays draws short spokes around the disc.
func (g *IconGenerator) drawRays(img *image.RGBA) {
	if g.config.Rays <= 0 {
		return
	}
	size := float64(g.config.Size)
	center := size / 2
	inner, outer := size*0.36, size*0.48

	for i := 0; i < g.config.Rays; i++ {
		angle := 2 * math.Pi * float64(i) / float64(g.config.Rays)
		dx, dy := math.Cos(angle), math.Sin(angle)
		for r := inner; r <= outer; r += 0.5 {
			x := int(center + dx*r)
			y := int(center + dy*r)
			if x >= 0 && x < g.config.Size && y >= 0 && y < g.config.Size {
				img.Set(x, y, g.config.RayColor)
			}
		}
	}
}

// KelvinToRGB approximates the color of a black body at the given
// temperature. Input is clamped to 1000-40000K.
func KelvinToRGB(kelvin int) color.RGBA {
	t := float64(min(max(kelvin, 1000), 40000)) / 100

	var r, g, b float64
	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}

	switch {
	case t >= 66:
		b = 255
	case t <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return color.RGBA{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: 255}
}

func clampByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

func shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: clampByte(float64(c.R) * factor),
		G: clampByte(float64(c.G) * factor),
		B: clampByte(float64(c.B) * factor),
		A: c.A,
	}
}

// GenerateSunIcon generates the tray icon for a color temperature.
func GenerateSunIcon(kelvin int) []byte {
	return NewIconGenerator(SunIconConfig(kelvin)).Generate()
}
