package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/katalvlaran/tilewalk/grid"
	"github.com/katalvlaran/tilewalk/scene"
)

// ErrBadScale is returned when a PNG cell size is too small to draw.
var ErrBadScale = errors.New("render: cell size must be at least 4 pixels")

// PNGOptions tunes the image.
type PNGOptions struct {
	// CellSize is the edge of one cell in pixels.
	CellSize int
	// Labels prints each cell's cost in its centre.
	Labels bool
	// PathLine strokes a line through the centres of the path cells.
	PathLine bool
}

// DefaultPNGOptions returns 32 px cells with labels and the path line.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{CellSize: 32, Labels: true, PathLine: true}
}

var (
	gridLine  = color.RGBA{R: 0x11, G: 0x11, B: 0x14, A: 0xff}
	labelInk  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	pathInk   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
	wallColor = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

// PNG encodes sn as a PNG image to w.
func PNG(w io.Writer, sn *scene.Snapshot, opts PNGOptions) error {
	if opts.CellSize < 4 {
		return fmt.Errorf("%w: got %d", ErrBadScale, opts.CellSize)
	}
	dc := Draw(sn, opts)
	return dc.EncodePNG(w)
}

// Draw paints sn onto a new drawing context sized to the grid.
func Draw(sn *scene.Snapshot, opts PNGOptions) *gg.Context {
	s := float64(opts.CellSize)
	dc := gg.NewContext(sn.Width*opts.CellSize, sn.Height*opts.CellSize)
	dc.SetColor(gridLine)
	dc.Clear()

	k := NewClassifier(sn)
	for _, v := range sn.Cells {
		x, y := float64(v.Coord.Col)*s, float64(v.Coord.Row)*s
		dc.SetColor(Palette[k.Kind(v)])
		dc.DrawRectangle(x+1, y+1, s-2, s-2)
		dc.Fill()
	}

	// severed links: a bar on the cell side, drawn once per pair
	dc.SetColor(wallColor)
	dc.SetLineWidth(2)
	for _, v := range sn.Cells {
		x, y := float64(v.Coord.Col)*s, float64(v.Coord.Row)*s
		if v.Coord.Col < sn.Width-1 && !v.Links[grid.Right] {
			dc.DrawLine(x+s, y, x+s, y+s)
		}
		if v.Coord.Row < sn.Height-1 && !v.Links[grid.Bottom] {
			dc.DrawLine(x, y+s, x+s, y+s)
		}
	}
	dc.Stroke()

	if opts.PathLine && len(sn.Path) > 1 {
		dc.SetColor(pathInk)
		dc.SetLineWidth(s / 4)
		first := sn.Path[0]
		dc.MoveTo(float64(first.Col)*s+s/2, float64(first.Row)*s+s/2)
		for _, p := range sn.Path[1:] {
			dc.LineTo(float64(p.Col)*s+s/2, float64(p.Row)*s+s/2)
		}
		dc.Stroke()
	}

	if opts.Labels {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(labelInk)
		for _, v := range sn.Cells {
			cx := float64(v.Coord.Col)*s + s/2
			cy := float64(v.Coord.Row)*s + s/2
			dc.DrawStringAnchored(fmt.Sprintf("%.1f", v.Cost), cx, cy, 0.5, 0.5)
		}
	}

	return dc
}
