package panelcast

import "fmt"

// Mode selects the motion rule that moves panels across the canvas.
type Mode uint8

const (
	ModeBounce           Mode = iota // straight-line motion reflecting off the canvas edges
	ModeVerticalDrop                 // falls top to bottom, re-entering at a random column
	ModeHorizontalSweep              // sweeps left to right, re-entering at a random row
	ModeClockwise                    // fixed-radius circle around the canvas center
	ModeCounterClockwise             // the same circle, reversed
	ModeClockHand                    // sweeps like a clock hand from the exact center
	ModePendulum                     // bounded swing from a pivot above the center
	ModeWaterfall                    // falls with a sideways sway
	ModeSpiral                       // repeating outward spiral
	ModeOrbit                        // lobed orbit around the center
	ModeZigzag                       // horizontal advance on a sine track
	ModeWave                         // horizontal advance on a per-panel phase wave
	ModeFloat                        // slow drift around the creation position
	modeCount
)

var modeNames = [modeCount]string{
	ModeBounce:           "bounce",
	ModeVerticalDrop:     "verticalDrop",
	ModeHorizontalSweep:  "horizontalSweep",
	ModeClockwise:        "clockwise",
	ModeCounterClockwise: "counterClockwise",
	ModeClockHand:        "clockHand",
	ModePendulum:         "pendulum",
	ModeWaterfall:        "waterfall",
	ModeSpiral:           "spiral",
	ModeOrbit:            "orbit",
	ModeZigzag:           "zigzag",
	ModeWave:             "wave",
	ModeFloat:            "float",
}

// Modes returns every animation mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// String returns the mode's settings name, e.g. "counterClockwise".
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode looks up a mode by its settings name.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown animation mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("marshal animation mode: invalid %s", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// elapsedDriven reports whether the mode derives its motion from the time
// since panel creation rather than the per-frame delta.
func (m Mode) elapsedDriven() bool {
	switch m {
	case ModePendulum, ModeSpiral, ModeFloat:
		return true
	}
	return false
}
