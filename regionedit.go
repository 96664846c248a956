package panelcast

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Errors returned by RegionEditor.Begin.
var (
	ErrDragInProgress = errors.New("panelcast: drag already in progress")
	ErrLocked         = errors.New("panelcast: regions are locked")
	ErrUnknownRegion  = errors.New("panelcast: unknown region")
	ErrEmptyContainer = errors.New("panelcast: container rect has no area")
	ErrInvalidDrag    = errors.New("panelcast: invalid drag kind")
)

// ApplyDrag derives a new region from the drag-start region start and the
// normalized pointer delta (dx, dy) since the drag began.
//
// A move is clamped so the rectangle stays inside the frame. Resizes are
// reject-and-hold: each edge rule is checked on its own and, if the
// candidate would cross the frame boundary or shrink below MinRegionSize,
// that axis keeps its start values. Corner kinds apply their two edge rules
// independently. The boolean reports whether any rule was accepted.
func ApplyDrag(start Region, kind DragKind, dx, dy float64) (Region, bool) {
	out := start
	if kind.Move {
		out.X = clamp(start.X+dx, 0, max(0, 1-start.Width))
		out.Y = clamp(start.Y+dy, 0, max(0, 1-start.Height))
		return out, true
	}

	accepted := false
	switch kind.Horizontal {
	case EdgeWest:
		x := start.X + dx
		w := start.Width - dx
		if x >= 0 && w >= MinRegionSize {
			out.X, out.Width = x, w
			accepted = true
		}
	case EdgeEast:
		w := start.Width + dx
		if start.X+w <= 1 && w >= MinRegionSize {
			out.Width = w
			accepted = true
		}
	}
	switch kind.Vertical {
	case EdgeNorth:
		y := start.Y + dy
		h := start.Height - dy
		if y >= 0 && h >= MinRegionSize {
			out.Y, out.Height = y, h
			accepted = true
		}
	case EdgeSouth:
		h := start.Height + dy
		if start.Y+h <= 1 && h >= MinRegionSize {
			out.Height = h
			accepted = true
		}
	}
	return out, accepted
}

// EditState is the state of a RegionEditor.
type EditState uint8

const (
	EditIdle    EditState = iota // no pointer interaction
	EditEditing                  // a handle is being dragged
)

func (s EditState) String() string {
	switch s {
	case EditIdle:
		return "idle"
	case EditEditing:
		return "editing"
	default:
		return fmt.Sprintf("EditState(%d)", uint8(s))
	}
}

// dragRef is the reference frame captured when a drag begins. It is only
// valid between Begin and End.
type dragRef struct {
	pointerID int
	regionID  string
	kind      DragKind
	container Rect // on-screen rect of the preview, snapshotted once
	startNX   float64
	startNY   float64
	start     Region
}

// pointerEvents is the subscription surface the editor listens on while a
// drag is active. Scene implements it.
type pointerEvents interface {
	OnPointerMove(fn func(PointerContext)) CallbackHandle
	OnPointerUp(fn func(PointerContext)) CallbackHandle
}

// RegionEditor owns a set of editable regions and the single active drag.
//
// Regions are kept in z-order: later regions are drawn above earlier ones.
// Once locked, regions are read-only until Unlock.
type RegionEditor struct {
	// OnActivate fires when Begin or SetActive selects a different region.
	OnActivate func(Region)
	// OnChange fires once per accepted pointer move with the new value.
	OnChange func(Region)

	regions  []Region
	activeID string
	locked   bool

	state EditState
	drag  dragRef

	events     pointerEvents
	moveHandle CallbackHandle
	upHandle   CallbackHandle

	emit func(PanelEvent)
}

// NewRegionEditor creates an editor for the given regions. Invalid regions
// are clamped. The first region, if any, becomes active.
func NewRegionEditor(regions ...Region) *RegionEditor {
	e := &RegionEditor{}
	for _, r := range regions {
		e.Add(r)
	}
	return e
}

// State returns Idle or Editing.
func (e *RegionEditor) State() EditState {
	return e.state
}

// Dragging returns the active drag kind and region ID, if any.
func (e *RegionEditor) Dragging() (DragKind, string, bool) {
	if e.state != EditEditing {
		return DragKind{}, "", false
	}
	return e.drag.kind, e.drag.regionID, true
}

// Add appends a region on top of the others and returns the stored value.
// A region without an ID gets one.
func (e *RegionEditor) Add(r Region) Region {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r = r.Clamp()
	e.regions = append(e.regions, r)
	if e.activeID == "" {
		e.activeID = r.ID
	}
	return r
}

// Remove deletes a region. Removing the region being dragged ends the drag.
func (e *RegionEditor) Remove(id string) bool {
	i := e.index(id)
	if i < 0 {
		return false
	}
	if e.state == EditEditing && e.drag.regionID == id {
		e.End()
	}
	copy(e.regions[i:], e.regions[i+1:])
	e.regions[len(e.regions)-1] = Region{}
	e.regions = e.regions[:len(e.regions)-1]
	if e.activeID == id {
		e.activeID = ""
		if len(e.regions) > 0 {
			e.activeID = e.regions[len(e.regions)-1].ID
		}
	}
	return true
}

// Region returns the region with the given ID.
func (e *RegionEditor) Region(id string) (Region, bool) {
	i := e.index(id)
	if i < 0 {
		return Region{}, false
	}
	return e.regions[i], true
}

// Regions returns a copy of all regions in z-order.
func (e *RegionEditor) Regions() []Region {
	out := make([]Region, len(e.regions))
	copy(out, e.regions)
	return out
}

// Len returns the number of regions.
func (e *RegionEditor) Len() int {
	return len(e.regions)
}

// Active returns the active region.
func (e *RegionEditor) Active() (Region, bool) {
	return e.Region(e.activeID)
}

// ActiveID returns the active region's ID, or "" when there are no regions.
func (e *RegionEditor) ActiveID() string {
	return e.activeID
}

// SetActive selects a region, firing OnActivate if the selection changed.
func (e *RegionEditor) SetActive(id string) bool {
	i := e.index(id)
	if i < 0 {
		return false
	}
	e.activate(e.regions[i])
	return true
}

// Lock freezes the regions. An active drag is ended first.
func (e *RegionEditor) Lock() {
	if e.state == EditEditing {
		e.End()
	}
	e.locked = true
}

// Unlock makes the regions editable again.
func (e *RegionEditor) Unlock() {
	e.locked = false
}

// Locked reports whether the regions are frozen.
func (e *RegionEditor) Locked() bool {
	return e.locked
}

// Set replaces a region's geometry outside of a drag, for example from a
// tween or a preset. The value is clamped. It fails while locked.
func (e *RegionEditor) Set(r Region) (Region, error) {
	if e.locked {
		return Region{}, ErrLocked
	}
	i := e.index(r.ID)
	if i < 0 {
		return Region{}, fmt.Errorf("set region %q: %w", r.ID, ErrUnknownRegion)
	}
	r = r.Clamp()
	if e.regions[i].sameGeometry(r) {
		return r, nil
	}
	e.regions[i] = r
	e.changed(r)
	return r, nil
}

// Begin starts a drag of region id with the given handle at screen
// coordinates (screenX, screenY). container is the on-screen rect the
// source frame is displayed in; it is captured once and reused until End,
// so later layout changes do not disturb the drag.
//
// Begin fails without side effects if a drag is already active, the regions
// are locked, the region is unknown, or the container is empty.
func (e *RegionEditor) Begin(id string, kind DragKind, screenX, screenY float64, container Rect) error {
	return e.begin(0, id, kind, screenX, screenY, container)
}

func (e *RegionEditor) begin(pointerID int, id string, kind DragKind, screenX, screenY float64, container Rect) error {
	if e.state == EditEditing {
		return ErrDragInProgress
	}
	if e.locked {
		return ErrLocked
	}
	if !kind.Valid() {
		return fmt.Errorf("begin %s: %w", kind, ErrInvalidDrag)
	}
	if container.Empty() {
		return ErrEmptyContainer
	}
	i := e.index(id)
	if i < 0 {
		return fmt.Errorf("begin drag on %q: %w", id, ErrUnknownRegion)
	}

	r := e.regions[i]
	e.activate(r)

	nx, ny := toNormalized(container, screenX, screenY)
	e.drag = dragRef{
		pointerID: pointerID,
		regionID:  id,
		kind:      kind,
		container: container,
		startNX:   nx,
		startNY:   ny,
		start:     r,
	}
	e.state = EditEditing

	if e.events != nil {
		e.moveHandle = e.events.OnPointerMove(func(ctx PointerContext) {
			if ctx.PointerID == e.drag.pointerID {
				e.Move(ctx.ScreenX, ctx.ScreenY)
			}
		})
		e.upHandle = e.events.OnPointerUp(func(ctx PointerContext) {
			if ctx.PointerID == e.drag.pointerID {
				e.End()
			}
		})
	}
	e.emitEvent(PanelEvent{Type: EventDragBegin, RegionID: id, Region: r, Kind: kind})
	return nil
}

// Move applies the pointer position (screen coordinates) to the active
// drag. It returns the region value after the event and whether any edge
// rule accepted the event; each accepted event fires OnChange once.
// Outside a drag it does nothing.
func (e *RegionEditor) Move(screenX, screenY float64) (Region, bool) {
	if e.state != EditEditing {
		return Region{}, false
	}
	d := &e.drag
	i := e.index(d.regionID)
	if i < 0 {
		e.End()
		return Region{}, false
	}

	nx, ny := toNormalized(d.container, screenX, screenY)
	next, ok := ApplyDrag(d.start, d.kind, nx-d.startNX, ny-d.startNY)
	if !ok {
		return e.regions[i], false
	}
	e.regions[i] = next
	e.changed(next)
	return next, true
}

// End finishes the active drag, releasing the container snapshot and the
// pointer subscriptions. It is a no-op when idle.
func (e *RegionEditor) End() {
	if e.state != EditEditing {
		return
	}
	e.moveHandle.Remove()
	e.upHandle.Remove()
	e.moveHandle = CallbackHandle{}
	e.upHandle = CallbackHandle{}

	id := e.drag.regionID
	kind := e.drag.kind
	e.drag = dragRef{}
	e.state = EditIdle

	r, _ := e.Region(id)
	e.emitEvent(PanelEvent{Type: EventDragEnd, RegionID: id, Region: r, Kind: kind})
}

func (e *RegionEditor) activate(r Region) {
	if e.activeID == r.ID {
		return
	}
	e.activeID = r.ID
	if e.OnActivate != nil {
		e.OnActivate(r)
	}
	e.emitEvent(PanelEvent{Type: EventRegionActivated, RegionID: r.ID, Region: r})
}

func (e *RegionEditor) changed(r Region) {
	if e.OnChange != nil {
		e.OnChange(r)
	}
	e.emitEvent(PanelEvent{Type: EventRegionChanged, RegionID: r.ID, Region: r})
}

func (e *RegionEditor) emitEvent(ev PanelEvent) {
	if e.emit != nil {
		e.emit(ev)
	}
}

func (e *RegionEditor) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range e.regions {
		if e.regions[i].ID == id {
			return i
		}
	}
	return -1
}

// toNormalized maps screen coordinates into the container's [0,1] space.
// The container must be non-empty.
func toNormalized(container Rect, sx, sy float64) (float64, float64) {
	return (sx - container.X) / container.Width, (sy - container.Y) / container.Height
}
