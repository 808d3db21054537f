package contribgif

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// Layout holds the pixel geometry of the grid.
type Layout struct {
	Cell   int // Cell edge length
	Gap    int // Space between cells
	PadX   int // Left and right margin
	PadY   int // Top and bottom margin
	Radius int // Cell corner radius
	Header int // Extra band above the grid, zero when untitled
}

// DefaultLayout matches the dimensions of GitHub's own calendar closely enough
// to sit on a profile README.
var DefaultLayout = Layout{
	Cell:   10,
	Gap:    3,
	PadX:   18,
	PadY:   14,
	Radius: 2,
}

// HeaderHeight is the band reserved for a title.
const HeaderHeight = 26

// Size is the canvas size for a grid of cols weeks.
func (l Layout) Size(cols int) image.Point {
	return image.Pt(
		2*l.PadX+cols*(l.Cell+l.Gap)-l.Gap,
		2*l.PadY+l.Header+DaysPerWeek*(l.Cell+l.Gap)-l.Gap,
	)
}

// CellRect is the square covered by the cell at (week, day).
func (l Layout) CellRect(week, day int) image.Rectangle {
	x := l.PadX + week*(l.Cell+l.Gap)
	y := l.PadY + l.Header + day*(l.Cell+l.Gap)
	return image.Rect(x, y, x+l.Cell, y+l.Cell)
}

// CellCenter is the middle pixel of the cell at (week, day).
func (l Layout) CellCenter(week, day int) image.Point {
	r := l.CellRect(week, day)
	return image.Pt(r.Min.X+l.Cell/2, r.Min.Y+l.Cell/2)
}

type GridOpt func(r *GridRenderer)

// WithLayout replaces DefaultLayout.
func WithLayout(l Layout) GridOpt {
	return func(r *GridRenderer) {
		r.layout = l
	}
}

// WithPalette replaces PurplePalette.
func WithPalette(p Palette) GridOpt {
	return func(r *GridRenderer) {
		r.palette = p
	}
}

// WithTitle reserves a header band and writes title into it.
func WithTitle(title string) GridOpt {
	return func(r *GridRenderer) {
		r.title = title
	}
}

// GridRenderer draws the static calendar every frame starts from.
type GridRenderer struct {
	layout     Layout
	palette    Palette
	background color.Color
	title      string
}

func NewGridRenderer(opts ...GridOpt) *GridRenderer {
	r := GridRenderer{
		layout:     DefaultLayout,
		palette:    PurplePalette,
		background: Background,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.title != "" {
		r.layout.Header = HeaderHeight
	}
	return &r
}

// Layout is the geometry Render uses, header included.
func (r *GridRenderer) Layout() Layout {
	return r.layout
}

/*
Render draws the base canvas: a solid background and one rounded cell per day,
colored by intensity level. Short weeks are padded with empty days, so every
column has DaysPerWeek cells.
*/
func (r *GridRenderer) Render(cal Calendar) *image.RGBA {
	size := r.layout.Size(cal.Cols())
	canvas := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(canvas)
	arc := float64(2 * r.layout.Radius)
	for x, week := range cal {
		for y, day := range week.Padded() {
			cell := r.layout.CellRect(x, y)
			gc.SetFillColor(r.palette.Color(day.Count))
			gc.BeginPath()
			draw2dkit.RoundedRectangle(gc,
				float64(cell.Min.X), float64(cell.Min.Y),
				float64(cell.Max.X), float64(cell.Max.Y),
				arc, arc)
			gc.Fill()
		}
	}

	if r.title != "" {
		drawLabel(canvas, r.layout.PadX, r.layout.PadY+16, r.title, TextColor)
	}
	return canvas
}
