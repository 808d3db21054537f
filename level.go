package contribgif

import "image/color"

// Levels is the number of intensity buckets.
const Levels = 5

// Level buckets a day's count into an intensity level in [0, Levels).
//
//	0     -> 0
//	1-2   -> 1
//	3-6   -> 2
//	7-12  -> 3
//	13+   -> 4
//
// Negative counts are treated as zero.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 6:
		return 2
	case count <= 12:
		return 3
	default:
		return 4
	}
}

// Palette maps an intensity level to a cell fill color.
type Palette [Levels]color.RGBA

// Color returns the fill for count, after bucketing it with Level.
func (p Palette) Color(count int) color.RGBA {
	return p[Level(count)]
}

// PurplePalette is the default ramp, darkest (empty) to brightest.
var PurplePalette = Palette{
	{0x16, 0x1b, 0x22, 0xff},
	{0x2d, 0x16, 0x55, 0xff},
	{0x4c, 0x1d, 0x95, 0xff},
	{0x6d, 0x28, 0xd9, 0xff},
	{0x8b, 0x5c, 0xf6, 0xff},
}

// Colors shared by the renderers.
var (
	Background = color.RGBA{0x0d, 0x11, 0x17, 0xff} // GitHub dark
	Border     = color.RGBA{0x16, 0x1b, 0x22, 0xff}
	TextColor  = color.RGBA{0xc9, 0xd1, 0xd9, 0xff}
)
