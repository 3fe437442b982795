package main

import (
	"time"

	"github.com/daimeng/gloamwood/pkg/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound - короткие тоны на события партии. Без звуковой карты молчит.
type Sound struct {
	enabled bool
}

func NewSound(enabled bool) *Sound {
	s := &Sound{}
	if !enabled {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		logger.Log.WithError(err).Warn("Audio initialization failed, running muted.")
		return s
	}
	s.enabled = true
	return s
}

// Hit - героя ранили.
func (s *Sound) Hit() {
	s.tone(220, 80*time.Millisecond)
}

// Kill - монстр пал.
func (s *Sound) Kill() {
	s.tone(660, 50*time.Millisecond)
}

// GameOver - победа звучит выше поражения.
func (s *Sound) GameOver(won bool) {
	if won {
		s.tone(880, 300*time.Millisecond)
		return
	}
	s.tone(110, 400*time.Millisecond)
}

func (s *Sound) tone(freq float64, d time.Duration) {
	if !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (s *Sound) Close() {
	if s.enabled {
		speaker.Close()
	}
}
