package gfx

import (
	"image/color"

	"github.com/vovakirdan/descent/internal/core"
)

// Background is the window clear colour.
var Background = color.RGBA{R: 0x0b, G: 0x0d, B: 0x17, A: 0xff}

// palette mirrors the terminal colours so both frontends look alike.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	core.ColorRed:          {R: 0xcd, G: 0x31, B: 0x31, A: 0xff},
	core.ColorGreen:        {R: 0x0d, G: 0xbc, B: 0x79, A: 0xff},
	core.ColorYellow:       {R: 0xe5, G: 0xe5, B: 0x10, A: 0xff},
	core.ColorBlue:         {R: 0x24, G: 0x72, B: 0xc8, A: 0xff},
	core.ColorMagenta:      {R: 0xbc, G: 0x3f, B: 0xbc, A: 0xff},
	core.ColorCyan:         {R: 0x11, G: 0xa8, B: 0xcd, A: 0xff},
	core.ColorWhite:        {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightRed:    {R: 0xf1, G: 0x4c, B: 0x4c, A: 0xff},
	core.ColorBrightYellow: {R: 0xf5, G: 0xf5, B: 0x43, A: 0xff},
	core.ColorBrightCyan:   {R: 0x29, G: 0xb8, B: 0xdb, A: 0xff},
	core.ColorOrange:       {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	core.ColorGray:         {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	core.ColorDarkGray:     {R: 0x44, G: 0x44, B: 0x44, A: 0xff},
}

// Palette returns the RGBA colour for a screen colour. Unknown colours map
// to the default foreground.
func Palette(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
