package panelcast

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoRegions is returned by Confirm when there is nothing to visualize.
var ErrNoRegions = errors.New("panelcast: no regions to confirm")

// EventStore is the interface for optional event forwarding, for example
// into an ECS world. When set on a Scene, region and panel events are sent
// to it.
type EventStore interface {
	EmitEvent(event PanelEvent)
}

// PanelEvent carries region and panel lifecycle data for an EventStore.
type PanelEvent struct {
	Type     EventType
	RegionID string
	// Region is the value after the event (zero for panel events).
	Region Region
	// Kind is the handle for EventDragBegin and EventDragEnd.
	Kind DragKind
	// Panels is the panel count for EventPanelsSpawned.
	Panels int
}

// Scene is the top-level object that owns the regions being edited, the
// panels being animated, input state and the frame clock.
//
// While editing, Draw shows the source frame inside Container with a box
// per region; once confirmed, every panel is advanced once per Update and
// drawn onto the canvas.
type Scene struct {
	// Container is the on-screen rect the source preview is drawn into.
	// Region handles are hit-tested against it.
	Container Rect
	// CanvasW and CanvasH are the size of the panel canvas in pixels.
	CanvasW, CanvasH float64
	// Source is the latest frame from the capture source. May be nil.
	Source *ebiten.Image
	// Settings are read at panel creation and on every frame.
	Settings Settings
	// ClearColor fills the screen before drawing. Zero leaves it untouched.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// Now is the frame clock. Defaults to time.Now.
	Now func() time.Time
	// Rand drives panel creation and wrap offsets. Nil uses the
	// package-level source.
	Rand *rand.Rand

	editor      *RegionEditor
	panels      []PanelState
	visualizing bool
	lastFrame   time.Time
	tweens      []*RegionTween

	store EventStore
	debug bool
	stats debugStats

	// Input state
	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	testRunner   *TestRunner

	// Render state
	screenshotQueue []string
	blur            blurCache
}

// NewScene creates a scene editing the given regions with default settings.
func NewScene(regions ...Region) *Scene {
	s := &Scene{
		Settings:      DefaultSettings(),
		ScreenshotDir: "screenshots",
		Now:           time.Now,
		editor:        NewRegionEditor(regions...),
	}
	s.editor.events = s
	s.editor.emit = s.emitEvent
	return s
}

// Editor returns the scene's region editor.
func (s *Scene) Editor() *RegionEditor {
	return s.editor
}

// Visualizing reports whether regions are confirmed and panels are animating.
func (s *Scene) Visualizing() bool {
	return s.visualizing
}

// Panels returns a copy of the current panel states.
func (s *Scene) Panels() []PanelState {
	out := make([]PanelState, len(s.panels))
	copy(out, s.panels)
	return out
}

// AddRegion adds a region. While visualizing, its panels are spawned at once.
func (s *Scene) AddRegion(r Region) Region {
	r = s.editor.Add(r)
	if s.visualizing {
		s.spawn(r, s.now())
	}
	return r
}

// RemoveRegion deletes a region along with the panels bound to it.
func (s *Scene) RemoveRegion(id string) bool {
	if !s.editor.Remove(id) {
		return false
	}
	kept := s.panels[:0]
	for _, p := range s.panels {
		if p.RegionID != id {
			kept = append(kept, p)
		}
	}
	clear(s.panels[len(kept):])
	s.panels = kept
	return true
}

// SetMode switches the animation mode. Panels keep their angle and phase.
func (s *Scene) SetMode(m Mode) {
	s.Settings.AnimationMode = m
}

// Confirm locks the regions and spawns Settings.PanelsPerRegion panels for
// each of them. Calling it while already visualizing is a no-op.
func (s *Scene) Confirm() error {
	if s.visualizing {
		return nil
	}
	if s.editor.Len() == 0 {
		return ErrNoRegions
	}
	s.editor.Lock()
	now := s.now()
	s.panels = s.panels[:0]
	for _, r := range s.editor.regions {
		s.spawn(r, now)
	}
	s.visualizing = true
	s.lastFrame = time.Time{}
	s.emitEvent(PanelEvent{Type: EventPanelsSpawned, Panels: len(s.panels)})
	return nil
}

// Stop ends the visualizer session: panels are destroyed and the regions
// become editable again.
func (s *Scene) Stop() {
	if !s.visualizing {
		return
	}
	clear(s.panels)
	s.panels = s.panels[:0]
	s.visualizing = false
	s.editor.Unlock()
	s.emitEvent(PanelEvent{Type: EventPanelsStopped})
}

func (s *Scene) spawn(r Region, now time.Time) {
	n := max(1, s.Settings.PanelsPerRegion)
	for i := 0; i < n; i++ {
		p := NewPanel(r, s.CanvasW, s.CanvasH, s.Settings, len(s.panels), now, s.Rand)
		s.panels = append(s.panels, p)
	}
}

// Update processes input, advances region tweens and, while visualizing,
// advances every panel by the time since the previous Update.
func (s *Scene) Update() {
	now := s.now()
	var deltaMs float64
	if !s.lastFrame.IsZero() {
		deltaMs = float64(now.Sub(s.lastFrame)) / float64(time.Millisecond)
	}
	s.lastFrame = now

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.updateTweens(float32(deltaMs / 1000))

	if s.visualizing {
		t0 := time.Now()
		s.advancePanels(deltaMs, now)
		if s.debug {
			s.stats.advanceTime = time.Since(t0)
		}
	}
}

// advancePanels runs the animation engine once per panel.
func (s *Scene) advancePanels(deltaMs float64, now time.Time) {
	src := s.sourceSize()
	for i, p := range s.panels {
		r, ok := s.editor.Region(p.RegionID)
		if !ok {
			continue
		}
		size := PanelSize(r, src, s.Settings.PanelSize)
		s.panels[i] = Advance(p, Frame{
			PanelW:          size.X,
			PanelH:          size.Y,
			CanvasW:         s.CanvasW,
			CanvasH:         s.CanvasH,
			SpeedMultiplier: s.Settings.MovementSpeed,
			DeltaTime:       deltaMs,
			Mode:            s.Settings.AnimationMode,
			Now:             now,
			Rand:            s.Rand,
		})
	}
}

// sourceSize returns the source frame size, or a unit square when no frame
// has arrived yet.
func (s *Scene) sourceSize() Vec2 {
	if s.Source == nil {
		return Vec2{1, 1}
	}
	b := s.Source.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}

func (s *Scene) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// SetEventStore sets the optional event sink.
func (s *Scene) SetEventStore(store EventStore) {
	s.store = store
}

func (s *Scene) emitEvent(ev PanelEvent) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(ev)
}
