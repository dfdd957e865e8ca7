package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilewalk/grid"
	"github.com/katalvlaran/tilewalk/render"
	"github.com/katalvlaran/tilewalk/scene"
	"github.com/katalvlaran/tilewalk/search"
)

const stepInterval = 60 * time.Millisecond

// viewer is the terminal control panel: a cursor over the grid and single
// keys for every scene command.
type viewer struct {
	screen tcell.Screen
	scene  *scene.Scene
	chime  *chime
	log    logrus.FieldLogger

	cursor    grid.Coordinate
	labels    bool
	animating bool
	message   string
	pngPath   string
}

func newViewer(sc *scene.Scene, ch *chime, pngPath string, log logrus.FieldLogger) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &viewer{
		screen:  screen,
		scene:   sc,
		chime:   ch,
		log:     log,
		cursor:  sc.Start(),
		pngPath: pngPath,
		message: "arrows move, s start, g goal, f find, n step, a animate, r reset, i isolate, c costs, p png, q quit",
	}, nil
}

func (v *viewer) run() {
	defer v.screen.Fini()

	ticker := time.NewTicker(stepInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handle(ev) {
				return
			}
		case <-ticker.C:
			if !v.animating {
				continue
			}
			v.step()
		}
		v.draw()
	}
}

// handle applies one event; false means quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.move(grid.Top)
		case tcell.KeyRight:
			v.move(grid.Right)
		case tcell.KeyDown:
			v.move(grid.Bottom)
		case tcell.KeyLeft:
			v.move(grid.Left)
		case tcell.KeyRune:
			return v.command(ev.Rune())
		}
	}
	return true
}

func (v *viewer) move(d grid.Direction) {
	next := v.cursor.Step(d)
	cfg := v.scene.Config()
	if next.Col < 0 || next.Col >= cfg.Width || next.Row < 0 || next.Row >= cfg.Height {
		return
	}
	v.cursor = next
}

func (v *viewer) command(r rune) bool {
	var err error
	switch r {
	case 'q', 'Q':
		return false
	case 's':
		v.animating = false
		err = v.scene.SetStart(v.cursor)
	case 'g':
		v.animating = false
		err = v.scene.SetGoal(v.cursor)
	case 'f':
		v.animating = false
		var res *search.Result
		if res, err = v.scene.FindPath(); err == nil {
			v.outcome(res.State)
		}
	case 'n':
		v.step()
	case 'a':
		v.animating = !v.animating
	case 'r':
		v.animating = false
		err = v.scene.Reset()
	case 'i':
		v.animating = false
		for _, d := range grid.Directions {
			if err = v.scene.Sever(v.cursor, d); err != nil {
				break
			}
		}
	case 'c':
		v.labels = !v.labels
	case 'p':
		err = v.savePNG()
	}
	if err != nil {
		v.report(err)
	}
	return true
}

func (v *viewer) step() {
	st, err := v.scene.Step()
	if err != nil {
		v.animating = false
		v.report(err)
		return
	}
	if st.Terminal() {
		v.animating = false
		v.outcome(st)
	}
}

func (v *viewer) outcome(st search.State) {
	if st == search.Found {
		v.chime.found()
		v.message = fmt.Sprintf("path found, %d cells", len(v.scene.Path()))
		return
	}
	v.chime.exhausted()
	reachable, err := v.scene.Diagnose()
	switch {
	case err != nil:
		v.report(err)
	case reachable:
		v.message = "no path: the walk dead-ended, the goal is reachable"
	default:
		v.message = "no path: the goal is cut off"
	}
}

func (v *viewer) report(err error) {
	if errors.Is(err, search.ErrInvalidState) {
		v.message = "search finished, press r to reset"
	} else {
		v.message = err.Error()
	}
	v.log.WithError(err).Debug("command rejected")
}

func (v *viewer) savePNG() error {
	f, err := os.Create(v.pngPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render.PNG(f, v.scene.Snapshot(), render.DefaultPNGOptions()); err != nil {
		return err
	}
	v.message = "saved " + v.pngPath
	v.log.WithField("file", v.pngPath).Info("snapshot saved")
	return nil
}

func styleFor(k render.Kind) tcell.Style {
	c := render.Palette[k]
	return tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Foreground(tcell.ColorWhite)
}

func (v *viewer) draw() {
	v.screen.Clear()
	sn := v.scene.Snapshot()
	k := render.NewClassifier(sn)

	width := 2
	if v.labels {
		width = 5
	}
	for _, cv := range sn.Cells {
		kind := k.Kind(cv)
		style := styleFor(kind)
		if cv.Coord == v.cursor {
			style = style.Reverse(true)
		}
		text := string(render.Glyphs[kind])
		if v.labels {
			text = fmt.Sprintf("%4.1f", cv.Cost)
		}
		x := cv.Coord.Col * width
		for i := 0; i < width; i++ {
			r := ' '
			if i < len(text) {
				r = rune(text[i])
			}
			v.screen.SetContent(x+i, cv.Coord.Row, r, nil, style)
		}
	}

	status := fmt.Sprintf("%s  cursor=%v start=%v goal=%v path=%d closed=%d",
		sn.State, v.cursor, sn.Start, sn.Goal, len(sn.Path), len(sn.Closed))
	v.text(0, sn.Height+1, status)
	v.text(0, sn.Height+2, v.message)
	v.screen.Show()
}

func (v *viewer) text(x, y int, s string) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
