package panelcast

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
)

// PointerContext describes a pointer event in screen coordinates. When the
// pointer is over the region overlay, RegionID and Kind identify the handle
// under it.
type PointerContext struct {
	ScreenX   float64
	ScreenY   float64
	PointerID int
	Button    MouseButton
	Pressed   bool
	RegionID  string
	Kind      DragKind
	OverKind  bool // RegionID and Kind are set
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
	hover  handleHit
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	pointerMove []pointerHandler
	nextID      uint32
	// dispatch is reused to iterate a stable copy while handlers remove
	// themselves mid-dispatch.
	dispatch []pointerHandler
}

type handlerEvent uint8

const (
	handlerPointerDown handlerEvent = iota
	handlerPointerUp
	handlerPointerMove
)

// CallbackHandle allows removing a registered scene-level callback.
// The zero value is valid and Remove on it does nothing.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event handlerEvent
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case handlerPointerDown:
		h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
	case handlerPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	case handlerPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event handlerEvent, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	h := pointerHandler{id: r.nextID, fn: fn}
	switch event {
	case handlerPointerDown:
		r.pointerDown = append(r.pointerDown, h)
	case handlerPointerUp:
		r.pointerUp = append(r.pointerUp, h)
	case handlerPointerMove:
		r.pointerMove = append(r.pointerMove, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// fire calls every handler registered at the time of the call, even if a
// handler removes itself or another one.
func (r *handlerRegistry) fire(handlers []pointerHandler, ctx PointerContext) {
	if len(handlers) == 0 {
		return
	}
	buf := append(r.dispatch[:0], handlers...)
	r.dispatch = nil
	for _, h := range buf {
		h.fn(ctx)
	}
	clear(buf)
	r.dispatch = buf[:0]
}

// --- Scene-level event registration ---

// OnPointerDown registers a scene-level callback for pointer presses.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(handlerPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer releases. It
// fires wherever the pointer is released.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(handlerPointerUp, fn)
}

// OnPointerMove registers a scene-level callback for pointer movement,
// with or without a button held.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(handlerPointerMove, fn)
}

// HoverHandle returns the handle under the mouse pointer, if any.
func (s *Scene) HoverHandle() (regionID string, kind DragKind, ok bool) {
	h := s.pointers[0].hover
	return h.regionID, h.kind, h.ok
}

// --- Input processing ---

// processInput is called from Scene.Update to handle mouse and touch input.
// Injected events take priority over real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, keep the stored button so it does not
	// change mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
// A press over a region handle begins an edit; movement and release are
// broadcast to scene-level handlers, which is where an active edit listens.
func (s *Scene) processPointer(pointerID int, sx, sy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	var hit handleHit
	if !s.editor.Locked() {
		hit = hitRegions(s.editor.regions, s.editor.activeID, s.Container, sx, sy)
	}
	ps.hover = hit

	ctx := PointerContext{
		ScreenX:   sx,
		ScreenY:   sy,
		PointerID: pointerID,
		Button:    button,
		Pressed:   pressed,
		RegionID:  hit.regionID,
		Kind:      hit.kind,
		OverKind:  hit.ok,
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.lastX, ps.lastY = sx, sy

		s.handlers.fire(s.handlers.pointerDown, ctx)
		if hit.ok && button == MouseButtonLeft {
			if err := s.editor.begin(pointerID, hit.regionID, hit.kind, sx, sy, s.Container); err != nil {
				s.debugf("begin %s on %s: %v", hit.kind, hit.regionID, err)
			}
		}

	case !pressed && ps.down:
		ctx.Button = ps.button
		ps.down = false
		ps.lastX, ps.lastY = sx, sy
		s.handlers.fire(s.handlers.pointerUp, ctx)

	case pressed && ps.down:
		ctx.Button = ps.button
		if sx != ps.lastX || sy != ps.lastY {
			s.handlers.fire(s.handlers.pointerMove, ctx)
		}
		ps.lastX, ps.lastY = sx, sy

	default:
		// Hover move.
		if sx != ps.lastX || sy != ps.lastY {
			s.handlers.fire(s.handlers.pointerMove, ctx)
			ps.lastX, ps.lastY = sx, sy
		}
	}
}
