package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilewalk/scene"
)

// Text draws sn as one line of glyphs per row followed by a status line.
func Text(sn *scene.Snapshot) string {
	k := NewClassifier(sn)
	var b strings.Builder
	b.Grow((sn.Width + 1) * (sn.Height + 1))
	for row := 0; row < sn.Height; row++ {
		for col := 0; col < sn.Width; col++ {
			v, _ := sn.At(col, row)
			b.WriteRune(Glyphs[k.Kind(v)])
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "state=%s path=%d open=%d closed=%d\n", sn.State, len(sn.Path), len(sn.Open), len(sn.Closed))

	return b.String()
}

// Costs draws the cost field as a table with one decimal per cell.
func Costs(sn *scene.Snapshot) string {
	var b strings.Builder
	for row := 0; row < sn.Height; row++ {
		for col := 0; col < sn.Width; col++ {
			v, _ := sn.At(col, row)
			if col > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%5.1f", v.Cost)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
