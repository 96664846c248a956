package panelcast

import (
	"math"

	"github.com/google/uuid"
)

// MinRegionSize is the smallest width or height a region may have, as a
// fraction of the source frame.
const MinRegionSize = 0.05

// regionEpsilon absorbs float noise when checking invariants.
const regionEpsilon = 1e-9

// Region is a rectangular sub-area of a source frame in normalized
// coordinates. X and Y are the top-left corner; all four values are
// fractions of the frame's width or height.
//
// A valid region satisfies X, Y >= 0, Width, Height >= MinRegionSize,
// X+Width <= 1 and Y+Height <= 1. Every mutator in this package returns
// valid regions.
type Region struct {
	ID     string  `yaml:"id" json:"id"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// NewRegion creates a region with a fresh random ID. The values are clamped
// into a valid region.
func NewRegion(x, y, width, height float64) Region {
	r := Region{ID: uuid.NewString(), X: x, Y: y, Width: width, Height: height}
	return r.Clamp()
}

// FullFrame returns a region covering the entire source frame.
func FullFrame() Region {
	return NewRegion(0, 0, 1, 1)
}

// Valid reports whether the region satisfies every boundary and minimum-size
// invariant.
func (r Region) Valid() bool {
	for _, v := range [4]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.X >= -regionEpsilon && r.Y >= -regionEpsilon &&
		r.Width >= MinRegionSize-regionEpsilon && r.Height >= MinRegionSize-regionEpsilon &&
		r.X+r.Width <= 1+regionEpsilon && r.Y+r.Height <= 1+regionEpsilon
}

// Clamp returns the nearest valid region: sizes are forced into
// [MinRegionSize, 1] first, then the position is pulled inside the frame.
// NaN components fall back to the full-frame default for that axis.
func (r Region) Clamp() Region {
	r.X, r.Width = clampAxis(r.X, r.Width)
	r.Y, r.Height = clampAxis(r.Y, r.Height)
	return r
}

func clampAxis(pos, size float64) (float64, float64) {
	if math.IsNaN(size) {
		size = 1
	}
	if math.IsNaN(pos) {
		pos = 0
	}
	size = clamp(size, MinRegionSize, 1)
	pos = clamp(pos, 0, 1-size)
	return pos, size
}

// Contains reports whether the normalized point (nx, ny) lies inside the region.
func (r Region) Contains(nx, ny float64) bool {
	return nx >= r.X && nx <= r.X+r.Width &&
		ny >= r.Y && ny <= r.Y+r.Height
}

// PixelRect maps the region onto a source frame of the given pixel size.
func (r Region) PixelRect(frameW, frameH float64) Rect {
	return Rect{
		X:      r.X * frameW,
		Y:      r.Y * frameH,
		Width:  r.Width * frameW,
		Height: r.Height * frameH,
	}
}

// ScreenRect maps the region into an on-screen container, typically the
// preview box the source frame is displayed in.
func (r Region) ScreenRect(container Rect) Rect {
	pr := r.PixelRect(container.Width, container.Height)
	pr.X += container.X
	pr.Y += container.Y
	return pr
}

// sameGeometry reports whether two regions have identical geometry,
// ignoring IDs.
func (r Region) sameGeometry(o Region) bool {
	return r.X == o.X && r.Y == o.Y && r.Width == o.Width && r.Height == o.Height
}
