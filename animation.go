package panelcast

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RegionTween animates the four geometry fields of one region towards a
// target. Each step goes through RegionEditor.Set, so every intermediate
// value is clamped and reported like any other edit. If the region is
// removed, locked, or dragged by the user, the tween stops.
//
// Tweens started with Scene.TweenRegion are advanced by Scene.Update; a
// standalone tween is advanced by calling Update yourself.
type RegionTween struct {
	tweens [4]*gween.Tween
	editor *RegionEditor
	id     string
	Done   bool
}

// NewRegionTween creates a tween that moves region id of editor to target
// over duration seconds using the easing function. The target ID is ignored.
func NewRegionTween(editor *RegionEditor, id string, target Region, duration float32, fn ease.TweenFunc) *RegionTween {
	t := &RegionTween{editor: editor, id: id}
	from, ok := editor.Region(id)
	if !ok {
		t.Done = true
		return t
	}
	target = target.Clamp()
	t.tweens[0] = gween.New(float32(from.X), float32(target.X), duration, fn)
	t.tweens[1] = gween.New(float32(from.Y), float32(target.Y), duration, fn)
	t.tweens[2] = gween.New(float32(from.Width), float32(target.Width), duration, fn)
	t.tweens[3] = gween.New(float32(from.Height), float32(target.Height), duration, fn)
	return t
}

// Update advances the tween by dt seconds and writes the interpolated region
// back to the editor.
func (t *RegionTween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.editor.Locked() {
		t.Done = true
		return
	}
	if _, id, dragging := t.editor.Dragging(); dragging && id == t.id {
		t.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i, tw := range t.tweens {
		v, finished := tw.Update(dt)
		vals[i] = float64(v)
		if !finished {
			allDone = false
		}
	}
	r := Region{ID: t.id, X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if _, err := t.editor.Set(r); err != nil {
		t.Done = true
		return
	}
	t.Done = allDone
}

// TweenRegion animates a region to target over duration seconds. The tween
// is advanced by Update until it finishes.
func (s *Scene) TweenRegion(id string, target Region, duration float32, fn ease.TweenFunc) *RegionTween {
	t := NewRegionTween(s.editor, id, target, duration, fn)
	if !t.Done {
		s.tweens = append(s.tweens, t)
	}
	return t
}

// updateTweens advances scene-owned tweens and drops finished ones.
func (s *Scene) updateTweens(dt float32) {
	kept := s.tweens[:0]
	for _, t := range s.tweens {
		t.Update(dt)
		if !t.Done {
			kept = append(kept, t)
		}
	}
	clear(s.tweens[len(kept):])
	s.tweens = kept
}
