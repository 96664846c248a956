package panelcast

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// frameUnitMs is the reference frame duration. Delta-driven motion is
// expressed per 60 Hz frame and scaled by deltaTime/frameUnitMs.
const frameUnitMs = 16.67

// Frame carries everything Advance needs besides the panel itself.
type Frame struct {
	PanelW, PanelH   float64 // panel size on the canvas, pixels
	CanvasW, CanvasH float64 // canvas size, pixels
	// SpeedMultiplier is Settings.MovementSpeed.
	SpeedMultiplier float64
	// DeltaTime is the time since the previous frame in milliseconds.
	DeltaTime float64
	Mode      Mode
	// Now is the frame timestamp from a monotonic clock.
	Now time.Time
	// Rand picks re-entry offsets for wrapping modes. Nil uses the
	// package-level source.
	Rand *rand.Rand
}

// motion holds the per-call quantities shared by the mode steps.
type motion struct {
	f       Frame
	dt      float64 // frames elapsed at 60 Hz
	speed   float64
	elapsed float64 // seconds since panel creation
	centerX float64 // panel X that centers it on the canvas
	centerY float64
	maxX    float64 // largest X that keeps the panel inside the canvas
	maxY    float64
	minDim  float64 // smaller canvas dimension
}

func newMotion(p PanelState, f Frame) motion {
	m := motion{f: f}
	if f.DeltaTime > 0 && !math.IsInf(f.DeltaTime, 0) {
		m.dt = f.DeltaTime / frameUnitMs
	}
	m.speed = f.SpeedMultiplier * 2
	if math.IsNaN(m.speed) {
		m.speed = 0
	}
	if !f.Now.IsZero() && !p.StartTime.IsZero() {
		m.elapsed = float64(f.Now.Sub(p.StartTime)) / float64(time.Second)
	}
	m.centerX = f.CanvasW/2 - f.PanelW/2
	m.centerY = f.CanvasH/2 - f.PanelH/2
	m.maxX = max(0, f.CanvasW-f.PanelW)
	m.maxY = max(0, f.CanvasH-f.PanelH)
	m.minDim = max(0, min(f.CanvasW, f.CanvasH))
	return m
}

// radius scales the smaller canvas dimension, never going negative.
func (m motion) radius(scale float64) float64 {
	return max(0, scale*m.minDim)
}

type stepFunc func(p PanelState, m motion) PanelState

var modeSteps = [modeCount]stepFunc{
	ModeBounce:           stepBounce,
	ModeVerticalDrop:     stepVerticalDrop,
	ModeHorizontalSweep:  stepHorizontalSweep,
	ModeClockwise:        stepClockwise,
	ModeCounterClockwise: stepCounterClockwise,
	ModeClockHand:        stepClockHand,
	ModePendulum:         stepPendulum,
	ModeWaterfall:        stepWaterfall,
	ModeSpiral:           stepSpiral,
	ModeOrbit:            stepOrbit,
	ModeZigzag:           stepZigzag,
	ModeWave:             stepWave,
	ModeFloat:            stepFloat,
}

// Advance returns the panel one frame later. It is a pure function of its
// arguments: the input panel is not modified and no state is kept between
// calls.
//
// Delta-driven modes return the panel unchanged when f.DeltaTime <= 0.
// Pendulum, spiral and float derive their path from the time since the
// panel was created and give the same result for the same f.Now.
//
// Advance panics if f.Mode is not a known mode.
func Advance(p PanelState, f Frame) PanelState {
	if !f.Mode.Valid() {
		panic(fmt.Sprintf("panelcast: advance with unknown animation mode %d", uint8(f.Mode)))
	}
	m := newMotion(p, f)
	if m.dt == 0 && !f.Mode.elapsedDriven() {
		return p
	}
	return modeSteps[f.Mode](p, m)
}

func stepBounce(p PanelState, m motion) PanelState {
	p.X += p.VX * m.speed * m.dt
	p.Y += p.VY * m.speed * m.dt
	if p.X < 0 {
		p.X = 0
		p.VX = math.Abs(p.VX)
	} else if p.X > m.maxX {
		p.X = m.maxX
		p.VX = -math.Abs(p.VX)
	}
	if p.Y < 0 {
		p.Y = 0
		p.VY = math.Abs(p.VY)
	} else if p.Y > m.maxY {
		p.Y = m.maxY
		p.VY = -math.Abs(p.VY)
	}
	p.Rotation += p.RotationSpeed * m.dt
	return p
}

func stepVerticalDrop(p PanelState, m motion) PanelState {
	p.Y += m.speed * 3 * m.dt
	if p.Y > m.f.CanvasH {
		p.Y = -m.f.PanelH
		p.X = randFloat(m.f.Rand) * m.maxX
	}
	p.Rotation += p.RotationSpeed * m.dt
	return p
}

func stepHorizontalSweep(p PanelState, m motion) PanelState {
	p.X += m.speed * 3 * m.dt
	if p.X > m.f.CanvasW {
		p.X = -m.f.PanelW
		p.Y = randFloat(m.f.Rand) * m.maxY
	}
	p.Rotation += p.RotationSpeed * m.dt
	return p
}

func stepClockwise(p PanelState, m motion) PanelState {
	p.Angle += m.speed * 0.02 * m.dt
	return circle(p, m, m.radius(0.35))
}

func stepCounterClockwise(p PanelState, m motion) PanelState {
	p.Angle -= m.speed * 0.02 * m.dt
	return circle(p, m, m.radius(0.35))
}

// circle places the panel on a circle of radius r around the canvas center
// and turns it along the tangent.
func circle(p PanelState, m motion, r float64) PanelState {
	sin, cos := math.Sincos(p.Angle)
	p.X = m.centerX + cos*r
	p.Y = m.centerY + sin*r
	p.Rotation = degrees(p.Angle) + 90
	return p
}

func stepClockHand(p PanelState, m motion) PanelState {
	p.Angle += m.speed * 0.015 * m.dt
	r := m.radius(0.4)
	sin, cos := math.Sincos(p.Angle)
	p.X = m.f.CanvasW/2 + cos*r - m.f.PanelW/2
	p.Y = m.f.CanvasH/2 + sin*r - m.f.PanelH/2
	p.Rotation = degrees(p.Angle) + 90
	return p
}

// pendulumPivot is the pivot height as a fraction of the canvas height.
const pendulumPivot = 0.1

func stepPendulum(p PanelState, m motion) PanelState {
	swing := math.Sin(m.elapsed*m.speed) * 0.8
	arm := max(0, 0.4*m.f.CanvasH)
	sin, cos := math.Sincos(swing)
	p.X = m.f.CanvasW/2 + sin*arm - m.f.PanelW/2
	p.Y = m.f.CanvasH*pendulumPivot + cos*arm - m.f.PanelH/2
	p.Rotation = swing * 45
	return p
}

func stepWaterfall(p PanelState, m motion) PanelState {
	p.Y += m.speed * 4 * m.dt
	p.X = clamp(p.X+math.Sin(p.Y*0.02+p.Phase)*m.speed*m.dt, 0, m.maxX)
	if p.Y > m.f.CanvasH {
		p.Y = -m.f.PanelH
		p.X = randFloat(m.f.Rand) * m.maxX
	}
	p.Rotation += p.RotationSpeed * 0.5 * m.dt
	return p
}

func stepSpiral(p PanelState, m motion) PanelState {
	p.Angle += m.speed * 0.02 * m.dt
	var r float64
	if maxR := m.radius(0.45); maxR > 0 {
		r = math.Mod(m.elapsed*m.speed*20, maxR)
		if r < 0 {
			r += maxR
		}
	}
	sin, cos := math.Sincos(p.Angle)
	p.X = m.centerX + cos*r
	p.Y = m.centerY + sin*r
	p.Rotation += p.RotationSpeed * m.dt
	return p
}

func stepOrbit(p PanelState, m motion) PanelState {
	p.Angle += m.speed * 0.01 * m.dt
	r := max(0, m.radius(0.3)+math.Sin(p.Angle*3)*30)
	sin, cos := math.Sincos(p.Angle)
	p.X = m.centerX + cos*r
	p.Y = m.centerY + sin*r
	p.Rotation += p.RotationSpeed * m.dt
	return p
}

func stepZigzag(p PanelState, m motion) PanelState {
	p.X += m.speed * 2 * m.dt
	if p.X > m.f.CanvasW {
		p.X = -m.f.PanelW
	}
	p.Y = m.centerY + math.Sin(p.X*0.02)*0.3*m.f.CanvasH
	p.Rotation = math.Cos(p.X*0.02) * 15
	return p
}

func stepWave(p PanelState, m motion) PanelState {
	p.X += m.speed * 2 * m.dt
	if p.X > m.f.CanvasW {
		p.X = -m.f.PanelW
	}
	wave := math.Sin(p.X*0.01 + p.Phase)
	p.Y = m.centerY + wave*0.2*m.f.CanvasH
	p.Rotation = wave * 10
	return p
}

func stepFloat(p PanelState, m motion) PanelState {
	p.X = clamp(p.OriginX+math.Sin(m.elapsed*0.5+p.Phase)*50*m.speed, 0, m.maxX)
	p.Y = clamp(p.OriginY+math.Cos(m.elapsed*0.3+p.Phase)*30*m.speed, 0, m.maxY)
	p.Rotation += math.Sin(m.elapsed) * 0.2 * m.dt
	return p
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
