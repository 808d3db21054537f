package contribgif

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/nfnt/resize"
)

// Sprite draws the character for a pose. anchor is the center of the target
// cell.
type Sprite interface {
	Draw(dst *image.RGBA, anchor image.Point, pose Pose)
}

// Character colors.
var (
	AlienGreen = color.RGBA{0x57, 0xd3, 0x64, 0xff}
	AlienDark  = color.RGBA{0x0b, 0x0f, 0x14, 0xff}
	ShirtColor = color.RGBA{0xc9, 0xd1, 0xd9, 0xff}
	PantsColor = color.RGBA{0x8b, 0x94, 0x9e, 0xff}
)

// Alien is a procedurally drawn walker: oval head, big eyes, shirt, swinging
// arms and striding legs.
type Alien struct {
	scale float64
}

func NewAlien(scale float64) *Alien {
	if scale <= 0 {
		scale = 1
	}
	return &Alien{scale: scale}
}

func (a *Alien) px(v float64) float64 {
	return math.Floor(v * a.scale)
}

// Size is the bounding box of the alien at rest: head, neck, body and legs.
func (a *Alien) Size() image.Point {
	return image.Pt(int(a.px(18)), int(a.px(22+3+18+12)))
}

func (a *Alien) Draw(dst *image.RGBA, anchor image.Point, pose Pose) {
	size := a.Size()
	// Feet sit a little below the cell center.
	x := float64(anchor.X - size.X/2)
	y := float64(anchor.Y - size.Y + 12)

	swing := math.Sin(pose.Phase * 2 * math.Pi)
	bob := math.Trunc(swing * 1.5 * a.scale)

	headW, headH := a.px(18), a.px(22)
	bodyW, bodyH := a.px(14), a.px(18)
	neckW, neckH := a.px(5), a.px(3)

	gc := draw2dimg.NewGraphicContext(dst)

	// Head and eyes.
	gc.SetFillColor(AlienGreen)
	gc.BeginPath()
	draw2dkit.Ellipse(gc, x+headW/2, y+bob+headH/2, headW/2, headH/2)
	gc.Fill()

	eyeW, eyeH := a.px(5), a.px(7)
	eyeX, eyeY := a.px(4), a.px(7)
	gc.SetFillColor(AlienDark)
	for _, ex := range []float64{x + eyeX, x + headW - eyeX - eyeW} {
		gc.BeginPath()
		draw2dkit.Ellipse(gc, ex+eyeW/2, y+eyeY+bob+eyeH/2, eyeW/2, eyeH/2)
		gc.Fill()
	}

	// Neck.
	nx := x + math.Floor(headW/2) - math.Floor(neckW/2)
	ny := y + headH + bob - 1
	gc.SetFillColor(AlienGreen)
	gc.BeginPath()
	draw2dkit.Rectangle(gc, nx, ny, nx+neckW, ny+neckH)
	gc.Fill()

	// Torso.
	tx0 := x + math.Floor(headW/2) - math.Floor(bodyW/2)
	ty0 := y + headH + neckH + bob
	tx1, ty1 := tx0+bodyW, ty0+bodyH
	arc := 2 * math.Max(1, a.px(3))
	gc.SetFillColor(ShirtColor)
	gc.BeginPath()
	draw2dkit.RoundedRectangle(gc, tx0, ty0, tx1, ty1, arc, arc)
	gc.Fill()

	// Arms swing opposite each other.
	armLen := a.px(10)
	armY := ty0 + a.px(5)
	lift := a.px(3) * swing
	gc.SetLineWidth(math.Max(1, a.px(2)))
	gc.SetStrokeColor(AlienGreen)
	stroke(gc, tx0, armY, tx0-armLen, armY+lift)
	stroke(gc, tx1, armY, tx1+armLen, armY-lift)

	// Legs and feet.
	legLen := a.px(12)
	hipX, hipY := x+math.Floor(headW/2), ty1
	stride := a.px(3) * swing
	gc.SetLineWidth(math.Max(1, a.px(3)))
	gc.SetStrokeColor(PantsColor)
	stroke(gc, hipX-a.px(3), hipY, hipX-a.px(5)-stride, hipY+legLen)
	stroke(gc, hipX+a.px(3), hipY, hipX+a.px(5)+stride, hipY+legLen)
	stroke(gc, hipX-a.px(7), hipY+legLen, hipX-a.px(2), hipY+legLen)
	stroke(gc, hipX+a.px(2), hipY+legLen, hipX+a.px(7), hipY+legLen)
}

func stroke(gc *draw2dimg.GraphicContext, x0, y0, x1, y1 float64) {
	gc.BeginPath()
	gc.MoveTo(x0, y0)
	gc.LineTo(x1, y1)
	gc.Stroke()
}

// Mask is an 8x8 one-bit sprite, one byte per row, most significant bit on
// the left.
type Mask [8]uint8

// InvaderMask is a tiny space invader.
var InvaderMask = Mask{
	0x3c, // ..####..
	0x7e, // .######.
	0xdb, // ##.##.##
	0xff, // ########
	0xff, // ########
	0x24, // ..#..#..
	0x5a, // .#.##.#.
	0xa5, // #.#..#.#
}

// Set reports whether the pixel at (x, y) is part of the sprite.
func (m Mask) Set(x, y int) bool {
	return m[y]&(0x80>>uint(x)) != 0
}

// Image renders the mask at 1x: c where set, transparent elsewhere.
func (m Mask) Image(c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if m.Set(x, y) {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// PixelSprite draws a Mask scaled up by an integer factor.
type PixelSprite struct {
	img image.Image
}

func NewPixelSprite(m Mask, scale int, c color.Color) *PixelSprite {
	if scale < 1 {
		scale = 1
	}
	side := uint(8 * scale)
	return &PixelSprite{
		// Nearest neighbor keeps the pixels square.
		img: resize.Resize(side, side, m.Image(c), resize.NearestNeighbor),
	}
}

// Size is the scaled sprite's edge length.
func (s *PixelSprite) Size() image.Point {
	return s.img.Bounds().Size()
}

func (s *PixelSprite) Draw(dst *image.RGBA, anchor image.Point, pose Pose) {
	size := s.Size()
	origin := image.Pt(anchor.X-size.X/2, anchor.Y-size.Y/2-pose.Jump)
	draw.Draw(dst, image.Rectangle{Min: origin, Max: origin.Add(size)}, s.img, s.img.Bounds().Min, draw.Over)
}
