package panelcast

import (
	"math"
	"math/rand/v2"
	"time"
)

// minPanelOpacity is the floor for randomized panel opacity.
const minPanelOpacity = 0.3

// goldenAngle spreads successive panels around circular paths.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// PanelState is the animated on-canvas instance of a Region. Position and
// velocity are in canvas pixels; rotation is in degrees; Phase and Angle are
// in radians.
//
// RegionID is a relation only: the region itself is looked up by the host.
// Phase, StartTime, OriginX and OriginY never change after creation, and
// Advance never touches Opacity or BlurAmount.
type PanelState struct {
	RegionID      string    `yaml:"regionId" json:"regionId"`
	X             float64   `yaml:"x" json:"x"`
	Y             float64   `yaml:"y" json:"y"`
	VX            float64   `yaml:"vx" json:"vx"`
	VY            float64   `yaml:"vy" json:"vy"`
	Rotation      float64   `yaml:"rotation" json:"rotation"`
	RotationSpeed float64   `yaml:"rotationSpeed" json:"rotationSpeed"`
	Opacity       float64   `yaml:"opacity" json:"opacity"`
	BlurAmount    float64   `yaml:"blurAmount" json:"blurAmount"`
	Phase         float64   `yaml:"phase" json:"phase"`
	Angle         float64   `yaml:"angle" json:"angle"`
	OriginX       float64   `yaml:"originX" json:"originX"`
	OriginY       float64   `yaml:"originY" json:"originY"`
	StartTime     time.Time `yaml:"startTime" json:"startTime"`
}

// NewPanel creates the panel for one region. index is the panel's position
// among all panels of the session and staggers circular modes. canvasW and
// canvasH bound the random starting position. A nil rng uses the
// package-level source.
func NewPanel(region Region, canvasW, canvasH float64, s Settings, index int, now time.Time, rng *rand.Rand) PanelState {
	size := s.PanelSize
	if size <= 0 {
		size = DefaultSettings().PanelSize
	}
	x := Range{0, max(0, canvasW-size)}.Random(rng)
	y := Range{0, max(0, canvasH-size)}.Random(rng)

	p := PanelState{
		RegionID:   region.ID,
		X:          x,
		Y:          y,
		VX:         Range{-2, 2}.Random(rng),
		VY:         Range{-2, 2}.Random(rng),
		Opacity:    max(minPanelOpacity, 1-randFloat(rng)*clamp01(s.OpacityVariation)),
		BlurAmount: randFloat(rng) * max(0, s.BlurIntensity),
		Phase:      randFloat(rng) * 2 * math.Pi,
		Angle:      math.Mod(float64(index)*goldenAngle, 2*math.Pi),
		OriginX:    x,
		OriginY:    y,
		StartTime:  now,
	}
	if s.EnableRotation {
		p.Rotation = randFloat(rng) * 360
		p.RotationSpeed = Range{-1, 1}.Random(rng)
	}
	return p
}

// PanelSize returns the on-canvas size of a panel showing region r from a
// source frame of the given pixel size. The long edge is longEdge pixels and
// the region's aspect ratio in source pixels is kept. Degenerate input
// yields a square.
func PanelSize(r Region, source Vec2, longEdge float64) Vec2 {
	w := r.Width * source.X
	h := r.Height * source.Y
	if longEdge <= 0 {
		return Vec2{}
	}
	if w <= 0 || h <= 0 || math.IsNaN(w) || math.IsNaN(h) {
		return Vec2{longEdge, longEdge}
	}
	if w >= h {
		return Vec2{longEdge, longEdge * h / w}
	}
	return Vec2{longEdge * w / h, longEdge}
}
