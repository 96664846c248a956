package panelcast

// HandleSize is the side length, in screen pixels, of the square resize
// handles drawn on a region overlay.
const HandleSize = 12.0

// Handle is one grabbable part of a region overlay in screen coordinates.
type Handle struct {
	Kind DragKind
	Rect Rect
}

// handleHit is the result of hit testing the overlay.
type handleHit struct {
	regionID string
	kind     DragKind
	ok       bool
}

// resizeHandles lists the resize kinds in hit-test priority: corners win
// over edges where they overlap.
var resizeHandles = []DragKind{
	DragResizeNW, DragResizeNE, DragResizeSW, DragResizeSE,
	DragResizeN, DragResizeS, DragResizeW, DragResizeE,
}

// Handles returns the eight resize handles of a region shown inside
// container, followed by the move handle covering the region body.
func Handles(r Region, container Rect) []Handle {
	sr := r.ScreenRect(container)
	out := make([]Handle, 0, len(resizeHandles)+1)
	for _, k := range resizeHandles {
		out = append(out, Handle{Kind: k, Rect: handleRect(sr, k)})
	}
	return append(out, Handle{Kind: DragMove, Rect: sr})
}

// handleRect centers a HandleSize square on the edge or corner point of sr
// that kind moves.
func handleRect(sr Rect, kind DragKind) Rect {
	cx := sr.X + sr.Width/2
	cy := sr.Y + sr.Height/2
	switch kind.Horizontal {
	case EdgeWest:
		cx = sr.X
	case EdgeEast:
		cx = sr.X + sr.Width
	}
	switch kind.Vertical {
	case EdgeNorth:
		cy = sr.Y
	case EdgeSouth:
		cy = sr.Y + sr.Height
	}
	return Rect{X: cx - HandleSize/2, Y: cy - HandleSize/2, Width: HandleSize, Height: HandleSize}
}

// HitRegion finds the region handle under screen point (x, y). The active
// region is tested first, then the others from topmost to bottom. Within a
// region, resize handles take priority over the body.
func HitRegion(regions []Region, activeID string, container Rect, x, y float64) (id string, kind DragKind, ok bool) {
	h := hitRegions(regions, activeID, container, x, y)
	return h.regionID, h.kind, h.ok
}

func hitRegions(regions []Region, activeID string, container Rect, x, y float64) handleHit {
	if container.Empty() {
		return handleHit{}
	}
	for i := range regions {
		if regions[i].ID == activeID {
			if k, ok := hitHandles(regions[i], container, x, y); ok {
				return handleHit{regionID: activeID, kind: k, ok: true}
			}
			break
		}
	}
	for i := len(regions) - 1; i >= 0; i-- {
		if regions[i].ID == activeID {
			continue
		}
		if k, ok := hitHandles(regions[i], container, x, y); ok {
			return handleHit{regionID: regions[i].ID, kind: k, ok: true}
		}
	}
	return handleHit{}
}

func hitHandles(r Region, container Rect, x, y float64) (DragKind, bool) {
	sr := r.ScreenRect(container)
	for _, k := range resizeHandles {
		if handleRect(sr, k).Contains(x, y) {
			return k, true
		}
	}
	if sr.Contains(x, y) {
		return DragMove, true
	}
	return DragKind{}, false
}
