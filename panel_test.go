package panelcast

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewPanelRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := DefaultSettings()
	s.OpacityVariation = 1
	s.BlurIntensity = 8
	r := Region{ID: "r", Width: 0.5, Height: 0.5}

	for i := 0; i < 500; i++ {
		p := NewPanel(r, 800, 600, s, i, testEpoch, rng)
		if p.RegionID != "r" {
			t.Fatalf("RegionID = %q", p.RegionID)
		}
		if p.X < 0 || p.X > 600 || p.Y < 0 || p.Y > 400 {
			t.Fatalf("position (%v, %v) outside the canvas", p.X, p.Y)
		}
		if p.OriginX != p.X || p.OriginY != p.Y {
			t.Fatal("origin should equal the starting position")
		}
		if p.VX < -2 || p.VX > 2 || p.VY < -2 || p.VY > 2 {
			t.Fatalf("velocity (%v, %v) outside [-2, 2]", p.VX, p.VY)
		}
		if p.Opacity < minPanelOpacity || p.Opacity > 1 {
			t.Fatalf("Opacity = %v", p.Opacity)
		}
		if p.BlurAmount < 0 || p.BlurAmount > 8 {
			t.Fatalf("BlurAmount = %v", p.BlurAmount)
		}
		if p.Phase < 0 || p.Phase >= 2*math.Pi {
			t.Fatalf("Phase = %v", p.Phase)
		}
		if p.Angle < 0 || p.Angle >= 2*math.Pi {
			t.Fatalf("Angle = %v", p.Angle)
		}
		if p.Rotation < 0 || p.Rotation > 360 || p.RotationSpeed < -1 || p.RotationSpeed > 1 {
			t.Fatalf("rotation %v speed %v", p.Rotation, p.RotationSpeed)
		}
		if !p.StartTime.Equal(testEpoch) {
			t.Fatal("StartTime not set")
		}
	}
}

func TestNewPanelStaggersAngle(t *testing.T) {
	r := Region{ID: "r", Width: 1, Height: 1}
	a := NewPanel(r, 800, 600, DefaultSettings(), 0, testEpoch, nil)
	b := NewPanel(r, 800, 600, DefaultSettings(), 1, testEpoch, nil)
	assertNear(t, "Angle[0]", a.Angle, 0)
	assertNear(t, "Angle[1]", b.Angle, goldenAngle)
}

func TestNewPanelNoRotation(t *testing.T) {
	s := DefaultSettings()
	s.EnableRotation = false
	p := NewPanel(Region{ID: "r"}, 800, 600, s, 0, testEpoch, rand.New(rand.NewPCG(3, 4)))
	if p.Rotation != 0 || p.RotationSpeed != 0 {
		t.Errorf("rotation %v speed %v, want zero", p.Rotation, p.RotationSpeed)
	}
}

func TestNewPanelNoVariation(t *testing.T) {
	s := DefaultSettings()
	s.OpacityVariation = 0
	s.BlurIntensity = 0
	p := NewPanel(Region{ID: "r"}, 800, 600, s, 0, testEpoch, rand.New(rand.NewPCG(5, 6)))
	if p.Opacity != 1 || p.BlurAmount != 0 {
		t.Errorf("opacity %v blur %v, want 1 and 0", p.Opacity, p.BlurAmount)
	}
}

func TestNewPanelSmallCanvas(t *testing.T) {
	p := NewPanel(Region{ID: "r"}, 50, 50, DefaultSettings(), 0, testEpoch, rand.New(rand.NewPCG(1, 1)))
	if p.X != 0 || p.Y != 0 {
		t.Errorf("position (%v, %v), want origin when the panel is larger than the canvas", p.X, p.Y)
	}
}

func TestPanelSize(t *testing.T) {
	tests := []struct {
		name     string
		r        Region
		source   Vec2
		longEdge float64
		want     Vec2
	}{
		{"landscape", Region{Width: 0.5, Height: 0.25}, Vec2{1920, 1080}, 200, Vec2{200, 56.25}},
		{"portrait", Region{Width: 0.1, Height: 0.5}, Vec2{1000, 1000}, 100, Vec2{20, 100}},
		{"square", Region{Width: 0.5, Height: 0.5}, Vec2{100, 100}, 64, Vec2{64, 64}},
		{"no source", Region{Width: 0.5, Height: 0.25}, Vec2{}, 200, Vec2{200, 200}},
		{"zero long edge", Region{Width: 0.5, Height: 0.5}, Vec2{100, 100}, 0, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PanelSize(tt.r, tt.source, tt.longEdge)
			assertNear(t, "X", got.X, tt.want.X)
			assertNear(t, "Y", got.Y, tt.want.Y)
		})
	}
}
