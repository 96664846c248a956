package panelcast

import (
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay colors for the region editor.
var (
	OverlayColor       = Color{R: 1, G: 1, B: 1, A: 0.8}
	OverlayActiveColor = Color{R: 0.3, G: 0.7, B: 1, A: 1}
	OverlayHoverColor  = Color{R: 1, G: 0.8, B: 0.2, A: 1}
	// PlaceholderColor fills panels while no source frame is available.
	PlaceholderColor = Color{R: 0.3, G: 0.3, B: 0.35, A: 1}
)

const overlayStroke = 2

// whitePixel is a 1x1 white image for solid-color panels.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(Color{1, 1, 1, 1}.toRGBA())
	}
	return whitePixel
}

// Draw renders the scene onto screen: the source preview with region
// overlays while editing, or the animated panels while visualizing.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	if s.visualizing {
		s.drawPanels(screen)
	} else {
		s.drawEditor(screen)
	}

	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.stats.panelCount = len(s.panels)
		s.debugLog()
	}
	s.flushScreenshots(screen)
}

// drawEditor draws the source frame into Container and a box with handles
// for every region.
func (s *Scene) drawEditor(screen *ebiten.Image) {
	c := s.Container
	if c.Empty() {
		return
	}
	if s.Source != nil {
		var op ebiten.DrawImageOptions
		b := s.Source.Bounds()
		op.GeoM.Scale(c.Width/float64(b.Dx()), c.Height/float64(b.Dy()))
		op.GeoM.Translate(c.X, c.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(s.Source, &op)
	}

	hoverID, hoverKind, hovering := s.HoverHandle()
	if kind, id, ok := s.editor.Dragging(); ok {
		hoverID, hoverKind, hovering = id, kind, true
	}

	for _, r := range s.editor.regions {
		active := r.ID == s.editor.activeID
		clr := OverlayColor
		if active {
			clr = OverlayActiveColor
		}
		sr := r.ScreenRect(c)
		vector.StrokeRect(screen, float32(sr.X), float32(sr.Y), float32(sr.Width), float32(sr.Height),
			overlayStroke, clr.toRGBA(), false)
		if !active || s.editor.Locked() {
			continue
		}
		for _, h := range Handles(r, c) {
			if h.Kind.Move {
				continue
			}
			hc := clr
			if hovering && hoverID == r.ID && hoverKind == h.Kind {
				hc = OverlayHoverColor
			}
			vector.DrawFilledRect(screen, float32(h.Rect.X), float32(h.Rect.Y),
				float32(h.Rect.Width), float32(h.Rect.Height), hc.toRGBA(), false)
		}
	}
}

// drawPanels draws every panel: the region's pixels cropped from the
// source frame, blurred, scaled to the panel size, rotated about the panel
// center and faded by its opacity.
func (s *Scene) drawPanels(screen *ebiten.Image) {
	src := s.sourceSize()
	blurred := 0
	for i, p := range s.panels {
		r, ok := s.editor.Region(p.RegionID)
		if !ok {
			continue
		}
		size := PanelSize(r, src, s.Settings.PanelSize)
		if size.X <= 0 || size.Y <= 0 {
			continue
		}

		img, imgW, imgH := s.panelImage(r)
		if s.Source != nil && p.BlurAmount >= 2 {
			img = s.blur.apply(i, img, int(p.BlurAmount))
			blurred++
		}

		var op ebiten.DrawImageOptions
		op.GeoM.Scale(size.X/imgW, size.Y/imgH)
		op.GeoM.Translate(-size.X/2, -size.Y/2)
		op.GeoM.Rotate(p.Rotation * math.Pi / 180)
		op.GeoM.Translate(p.X+size.X/2, p.Y+size.Y/2)
		if s.Source == nil {
			op.ColorScale.ScaleWithColor(PlaceholderColor.toRGBA())
		}
		op.ColorScale.ScaleAlpha(float32(clamp01(p.Opacity)))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, &op)
	}
	s.blur.trim(len(s.panels))
	s.stats.blurCount = blurred
}

// panelImage returns the source pixels for r and their size. Without a
// source frame a 1x1 white pixel stands in.
func (s *Scene) panelImage(r Region) (*ebiten.Image, float64, float64) {
	if s.Source == nil {
		return solidPixel(), 1, 1
	}
	b := s.Source.Bounds()
	pr := r.PixelRect(float64(b.Dx()), float64(b.Dy()))
	rect := image.Rect(
		b.Min.X+int(pr.X), b.Min.Y+int(pr.Y),
		b.Min.X+int(math.Ceil(pr.X+pr.Width)), b.Min.Y+int(math.Ceil(pr.Y+pr.Height)),
	).Intersect(b)
	if rect.Empty() {
		return solidPixel(), 1, 1
	}
	sub := s.Source.SubImage(rect).(*ebiten.Image)
	return sub, float64(rect.Dx()), float64(rect.Dy())
}
