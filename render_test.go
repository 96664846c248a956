package panelcast

import (
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDrawEditor(t *testing.T) {
	s := newInputScene()
	s.Source = ebiten.NewImage(64, 36)
	s.ClearColor = Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
	screen := ebiten.NewImage(400, 400)

	s.processPointer(0, 300, 300, true, MouseButtonLeft)
	// Draw with an active drag and handles highlighted; verify no panic.
	s.Draw(screen)
}

func TestDrawPanels(t *testing.T) {
	s := newInputScene()
	s.CanvasW, s.CanvasH = 400, 400
	s.Settings.BlurIntensity = 6
	s.Settings.PanelsPerRegion = 4
	s.Rand = rand.New(rand.NewPCG(8, 8))
	s.Source = ebiten.NewImage(64, 36)
	if err := s.Confirm(); err != nil {
		t.Fatal(err)
	}
	screen := ebiten.NewImage(400, 400)
	s.Draw(screen)

	if len(s.blur.filters) > len(s.panels) {
		t.Errorf("blur filters = %d, more than %d panels", len(s.blur.filters), len(s.panels))
	}

	s.RemoveRegion("a")
	s.Draw(screen)
	if len(s.blur.filters) != 0 {
		t.Errorf("blur filters = %d after removing every panel, want 0", len(s.blur.filters))
	}
}

func TestDrawPanelsWithoutSource(t *testing.T) {
	s := newInputScene()
	s.CanvasW, s.CanvasH = 400, 400
	if err := s.Confirm(); err != nil {
		t.Fatal(err)
	}
	s.SetDebugMode(true)
	s.Draw(ebiten.NewImage(400, 400))
	if s.stats.panelCount != 1 {
		t.Errorf("panelCount = %d, want 1", s.stats.panelCount)
	}
	if s.stats.blurCount != 0 {
		t.Error("placeholder panels should not be blurred")
	}
}

func TestPanelImageCrop(t *testing.T) {
	s := NewScene()
	s.Source = ebiten.NewImage(200, 100)
	img, w, h := s.panelImage(Region{X: 0.25, Y: 0.5, Width: 0.5, Height: 0.5})
	if w != 100 || h != 50 {
		t.Errorf("crop size = %vx%v, want 100x50", w, h)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("image bounds = %v", b)
	}
}
