package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

// chime plays short tones on search outcomes. A chime whose speaker failed
// to open stays silent.
type chime struct {
	ok  bool
	log logrus.FieldLogger
}

func newChime(enabled bool, log logrus.FieldLogger) *chime {
	c := &chime{log: log}
	if !enabled {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// non-fatal, the viewer runs without sound
		log.WithError(err).Warn("audio init failed")
		return c
	}
	c.ok = true
	return c
}

func (c *chime) tone(freq int, d time.Duration) {
	if !c.ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		c.log.WithError(err).Debug("tone")
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (c *chime) found()     { c.tone(880, 120*time.Millisecond) }
func (c *chime) exhausted() { c.tone(220, 200*time.Millisecond) }

func (c *chime) close() {
	if c.ok {
		speaker.Close()
	}
}
