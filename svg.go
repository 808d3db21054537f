package contribgif

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"io"
	"text/template"
)

var svgTemplate = template.Must(template.New("svg").Funcs(template.FuncMap{
	"hex": hexColor,
	"esc": html.EscapeString,
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
  <rect width="100%" height="100%" rx="12" fill="{{hex .Background}}" stroke="{{hex .Border}}" />
{{- if .Title}}
  <text x="{{.TitleX}}" y="{{.TitleY}}" font-family="ui-sans-serif, system-ui" font-size="14" fill="{{hex .Text}}">{{esc .Title}}</text>
{{- end}}
{{- range .Cells}}
  <rect x="{{.X}}" y="{{.Y}}" width="{{.Size}}" height="{{.Size}}" rx="{{.Radius}}" fill="{{hex .Fill}}">
    <title>{{esc .Date}}: {{.Count}} contributions</title>
  </rect>
{{- end}}
</svg>
`))

type svgCell struct {
	X, Y, Size, Radius int
	Fill               color.RGBA
	Date               string
	Count              int
}

type svgDoc struct {
	Width, Height  int
	Background     color.RGBA
	Border         color.RGBA
	Text           color.RGBA
	Title          string
	TitleX, TitleY int
	Cells          []svgCell
}

// SVG writes the static grid, without the character, as an SVG document.
// Each cell carries a hover title with its date and count.
func (r *GridRenderer) SVG(w io.Writer, cal Calendar) error {
	size := r.layout.Size(cal.Cols())
	doc := svgDoc{
		Width:      size.X,
		Height:     size.Y,
		Background: Background,
		Border:     Border,
		Text:       TextColor,
		Title:      r.title,
		TitleX:     r.layout.PadX,
		TitleY:     r.layout.PadY + 16,
	}
	for x, week := range cal {
		for y, day := range week.Padded() {
			cell := r.layout.CellRect(x, y)
			doc.Cells = append(doc.Cells, svgCell{
				X:      cell.Min.X,
				Y:      cell.Min.Y,
				Size:   r.layout.Cell,
				Radius: r.layout.Radius,
				Fill:   r.palette.Color(day.Count),
				Date:   day.Date,
				Count:  day.Count,
			})
		}
	}
	return svgTemplate.Execute(w, doc)
}

// WriteSVG renders the grid and writes it to path, creating its directory.
func WriteSVG(path string, r *GridRenderer, cal Calendar) error {
	var buf bytes.Buffer
	if err := r.SVG(&buf, cal); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
