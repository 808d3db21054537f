package contribgif

import (
	"bufio"
	"image"
	"io"

	"github.com/nfnt/resize"
)

// DefaultPreviewWidth is the preview width in terminal columns.
const DefaultPreviewWidth = 80

/*
Preview prints img to w as braille, at most cols characters wide. Each symbol
covers 2x4 pixels of the shrunken image; a dot is raised where the pixel is
brighter than an empty cell, so busy days and the character show up and
the background does not.
*/
func Preview(w io.Writer, img image.Image, cols int) error {
	if cols <= 0 {
		cols = DefaultPreviewWidth
	}
	// Two dots per column; Thumbnail keeps the aspect ratio and never enlarges.
	img = resize.Thumbnail(uint(cols*2), uint(img.Bounds().Dy()), img, resize.NearestNeighbor)
	// Halfway between an empty and a quiet day.
	threshold := (luminance(PurplePalette[0].RGBA()) + luminance(PurplePalette[1].RGBA())) / 2

	bw := bufio.NewWriter(w)
	bounds := img.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py += 4 {
		for px := bounds.Min.X; px < bounds.Max.X; px += 2 {
			var d cellDots
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					// The last row and column may hang past the image.
					if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
						continue
					}
					d[x][y] = luminance(img.At(px+x, py+y).RGBA()) > threshold
				}
			}
			if _, err := bw.WriteRune(d.Rune()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// 0.21 R + 0.72 G + 0.07 B
func luminance(r, g, b, _ uint32) float32 {
	return 0.21*float32(r) + 0.72*float32(g) + 0.07*float32(b)
}
