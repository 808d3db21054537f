package contribgif

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/google/renameio"
)

// DefaultDelay is how long each frame is shown.
const DefaultDelay = 140 * time.Millisecond

// maxColors is the GIF palette limit.
const maxColors = 256

type GIFOpt func(enc *GIFEncoder)

// WithDelay sets the per-frame display time. GIF stores it in hundredths of a
// second, so it is rounded down to 10ms.
func WithDelay(d time.Duration) GIFOpt {
	return func(enc *GIFEncoder) {
		enc.delay = d
	}
}

// WithDither maps colors missing from a frame's palette with Floyd-Steinberg
// diffusion instead of nearest match.
func WithDither() GIFOpt {
	return func(enc *GIFEncoder) {
		enc.drawer = draw.FloydSteinberg
	}
}

// GIFEncoder turns RGBA frames into a looping animated GIF.
type GIFEncoder struct {
	delay  time.Duration
	drawer draw.Drawer
}

func NewGIFEncoder(opts ...GIFOpt) *GIFEncoder {
	enc := GIFEncoder{
		delay:  DefaultDelay,
		drawer: draw.Src,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// GIF converts frames to paletted images, each with its own adaptive palette,
// preserving their order. The result loops forever.
func (enc *GIFEncoder) GIF(frames []*image.RGBA) *gif.GIF {
	delay := int(enc.delay / (10 * time.Millisecond))
	giff := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, frame := range frames {
		giff.Image = append(giff.Image, enc.paletted(frame))
		giff.Delay = append(giff.Delay, delay)
	}
	return giff
}

// Encode writes frames to w as an animated GIF.
func (enc *GIFEncoder) Encode(w io.Writer, frames []*image.RGBA) error {
	return gif.EncodeAll(w, enc.GIF(frames))
}

func (enc *GIFEncoder) paletted(img image.Image) *image.Paletted {
	paletted := image.NewPaletted(img.Bounds(), AdaptivePalette(img, maxColors))
	enc.drawer.Draw(paletted, paletted.Bounds(), img, img.Bounds().Min)
	return paletted
}

// pinnedColors is how many of the most frequent colors are kept exact before
// the rest of the palette is quantized.
const pinnedColors = 32

/*
AdaptivePalette picks at most n colors for img. When img has n colors or fewer
they are all kept. Otherwise the most frequent colors (the grid's flat fills
and background) are pinned exactly and median cut spends the remaining slots on
everything else, such as a glow gradient.
*/
func AdaptivePalette(img image.Image, n int) color.Palette {
	counts := make(map[color.RGBA]int)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			counts[c]++
		}
	}

	colors := make([]color.RGBA, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		ci, cj := counts[colors[i]], counts[colors[j]]
		if ci != cj {
			return ci > cj
		}
		return rgbaKey(colors[i]) < rgbaKey(colors[j])
	})

	if len(colors) <= n {
		palette := make(color.Palette, len(colors))
		for i, c := range colors {
			palette[i] = c
		}
		return palette
	}

	pinned := pinnedColors
	if pinned > n/2 {
		pinned = n / 2
	}
	palette := make(color.Palette, 0, n)
	for _, c := range colors[:pinned] {
		palette = append(palette, c)
	}
	return quantize.MedianCutQuantizer{}.Quantize(palette, img)
}

func rgbaKey(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// WriteGIF encodes frames fully in memory and only then writes path, creating
// its directory. A failed encode or write leaves nothing at path.
func WriteGIF(path string, enc *GIFEncoder, frames []*image.RGBA) (int, error) {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, frames); err != nil {
		return 0, err
	}
	if err := writeFile(path, buf.Bytes()); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// writeFile replaces path with data atomically, so readers see either the old
// file or the complete new one.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return renameio.WriteFile(path, data, 0644)
}
