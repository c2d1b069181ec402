package tui

import (
	"github.com/charmbracelet/log"

	"github.com/HC-Build/Hustle-Trail/internal/core"
)

// CueSink receives the sound cues a game step emits. The core only
// names the moment; the sink decides what becomes of it. No sink
// synthesizes audio, the shipped ones log or drop cues.
type CueSink interface {
	Play(c core.Cue)
}

// NullSink drops every cue.
type NullSink struct{}

// Play implements CueSink.
func (NullSink) Play(core.Cue) {}

// LogSink writes cues to a logger at debug level. The SSH server uses
// it to trace remote runs.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink that logs every cue.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Play implements CueSink.
func (s *LogSink) Play(c core.Cue) {
	if c == core.CueNone {
		return
	}
	s.logger.Debug("cue", "kind", c.String())
}
