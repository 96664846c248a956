package panelcast

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and counts. Only populated when
// Scene.debug is true.
type debugStats struct {
	advanceTime time.Duration
	drawTime    time.Duration
	panelCount  int
	blurCount   int
}

// SetDebugMode enables or disables debug mode. When enabled, rejected edits
// and per-frame timing stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// debugLog prints timing stats to stderr.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	st := s.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[panelcast] advance: %v | draw: %v | panels: %d | blurred: %d | mode: %s\n",
		st.advanceTime, st.drawTime, st.panelCount, st.blurCount, s.Settings.AnimationMode)
}

// debugf prints a formatted diagnostic line to stderr in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[panelcast] "+format+"\n", args...)
}
