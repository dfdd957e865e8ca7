// Command tilewalk shows a greedy walk between two markers on a grid.
//
// Interactive mode draws the grid in the terminal and maps keys to scene
// commands. Headless mode runs one search and prints the result, optionally
// saving a PNG snapshot.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilewalk/render"
	"github.com/katalvlaran/tilewalk/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tilewalk: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg := scene.DefaultConfig()
	fs := flag.NewFlagSet("tilewalk", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid columns")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid rows")
	fs.Var(coordFlag{&cfg.Start}, "start", "start marker as col,row")
	fs.Var(coordFlag{&cfg.Goal}, "goal", "goal marker as col,row")
	headless := fs.Bool("headless", false, "run one search, print it and exit")
	costs := fs.Bool("costs", false, "headless: also print the cost field")
	pngPath := fs.String("png", "tilewalk.png", "snapshot file (headless writes it only when set explicitly)")
	logPath := fs.String("log", "", "log file; interactive mode discards logs when empty")
	level := fs.String("level", "info", "log level")
	sound := fs.Bool("sound", true, "interactive: chime on search outcome")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pngSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "png" {
			pngSet = true
		}
	})

	log, closeLog, err := newLogger(*logPath, *level, *headless)
	if err != nil {
		return err
	}
	defer closeLog()

	sc, err := scene.New(cfg, scene.WithLogger(log))
	if err != nil {
		return err
	}

	if *headless {
		return runHeadless(sc, stdout, *costs, pngSet, *pngPath)
	}

	ch := newChime(*sound, log)
	defer ch.close()
	v, err := newViewer(sc, ch, *pngPath, log)
	if err != nil {
		return err
	}
	v.run()
	return nil
}

func runHeadless(sc *scene.Scene, stdout io.Writer, costs, writePNG bool, pngPath string) error {
	if _, err := sc.FindPath(); err != nil {
		return err
	}
	sn := sc.Snapshot()
	fmt.Fprint(stdout, render.Text(sn))
	if costs {
		fmt.Fprint(stdout, render.Costs(sn))
	}
	if !writePNG {
		return nil
	}
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := render.PNG(f, sn, render.DefaultPNGOptions()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// newLogger writes to the given file, or to stderr in headless mode. The
// interactive screen owns the terminal, so there logs are dropped unless a
// file is named.
func newLogger(path, level string, headless bool) (*logrus.Logger, func(), error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		l.SetOutput(f)
		return l, func() { _ = f.Close() }, nil
	case headless:
		l.SetOutput(os.Stderr)
	default:
		l.SetOutput(io.Discard)
	}
	return l, func() {}, nil
}
