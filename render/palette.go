package render

import (
	"image/color"

	"github.com/katalvlaran/tilewalk/grid"
	"github.com/katalvlaran/tilewalk/scene"
)

// Kind is what a cell shows, after markers and the path are layered over
// its status.
type Kind int

const (
	KindUnvisited Kind = iota
	KindOpen
	KindClosed
	KindPath
	KindStart
	KindGoal
)

// Palette maps each Kind to a fill colour.
var Palette = map[Kind]color.RGBA{
	KindUnvisited: {R: 0x2b, G: 0x2b, B: 0x33, A: 0xff},
	KindOpen:      {R: 0x3f, G: 0x7f, B: 0xbf, A: 0xff},
	KindClosed:    {R: 0x8c, G: 0x3a, B: 0x3a, A: 0xff},
	KindPath:      {R: 0xe6, G: 0xc2, B: 0x29, A: 0xff},
	KindStart:     {R: 0x2e, G: 0xb8, B: 0x5c, A: 0xff},
	KindGoal:      {R: 0xd9, G: 0x4f, B: 0xd9, A: 0xff},
}

// Glyphs maps each Kind to its terminal character.
var Glyphs = map[Kind]rune{
	KindUnvisited: '.',
	KindOpen:      'o',
	KindClosed:    'x',
	KindPath:      '*',
	KindStart:     'S',
	KindGoal:      'G',
}

// Classifier resolves the Kind of every cell of one snapshot.
type Classifier struct {
	sn     *scene.Snapshot
	onPath map[grid.Coordinate]bool
}

// NewClassifier indexes the path of sn.
func NewClassifier(sn *scene.Snapshot) *Classifier {
	onPath := make(map[grid.Coordinate]bool, len(sn.Path))
	for _, c := range sn.Path {
		onPath[c] = true
	}
	return &Classifier{sn: sn, onPath: onPath}
}

// Kind layers markers over the path and the path over status.
func (k *Classifier) Kind(v scene.CellView) Kind {
	switch {
	case v.Coord == k.sn.Start:
		return KindStart
	case v.Coord == k.sn.Goal:
		return KindGoal
	case k.onPath[v.Coord]:
		return KindPath
	}
	switch v.Status {
	case grid.Open:
		return KindOpen
	case grid.Closed:
		return KindClosed
	}
	return KindUnvisited
}
