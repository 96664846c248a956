package panelcast

import "fmt"

// EdgeV selects the vertical edge a resize drag moves.
type EdgeV uint8

const (
	EdgeVNone  EdgeV = iota // top and bottom edges stay put
	EdgeNorth               // the top edge follows the pointer
	EdgeSouth               // the bottom edge follows the pointer
)

// EdgeH selects the horizontal edge a resize drag moves.
type EdgeH uint8

const (
	EdgeHNone EdgeH = iota // left and right edges stay put
	EdgeEast               // the right edge follows the pointer
	EdgeWest               // the left edge follows the pointer
)

// DragKind identifies which overlay handle drives an edit. A move drag
// translates the whole region; otherwise the vertical and horizontal edges
// are resized independently, so a corner handle is simply both.
type DragKind struct {
	Move       bool
	Vertical   EdgeV
	Horizontal EdgeH
}

// The nine handles of a region overlay.
var (
	DragMove     = DragKind{Move: true}
	DragResizeN  = DragKind{Vertical: EdgeNorth}
	DragResizeS  = DragKind{Vertical: EdgeSouth}
	DragResizeE  = DragKind{Horizontal: EdgeEast}
	DragResizeW  = DragKind{Horizontal: EdgeWest}
	DragResizeNE = DragKind{Vertical: EdgeNorth, Horizontal: EdgeEast}
	DragResizeNW = DragKind{Vertical: EdgeNorth, Horizontal: EdgeWest}
	DragResizeSE = DragKind{Vertical: EdgeSouth, Horizontal: EdgeEast}
	DragResizeSW = DragKind{Vertical: EdgeSouth, Horizontal: EdgeWest}
)

// DragKinds lists every valid drag kind, move first.
var DragKinds = []DragKind{
	DragMove,
	DragResizeN, DragResizeS, DragResizeE, DragResizeW,
	DragResizeNE, DragResizeNW, DragResizeSE, DragResizeSW,
}

// Valid reports whether k names one of the nine handles.
func (k DragKind) Valid() bool {
	if k.Move {
		return k.Vertical == EdgeVNone && k.Horizontal == EdgeHNone
	}
	if k.Vertical > EdgeSouth || k.Horizontal > EdgeWest {
		return false
	}
	return k.Vertical != EdgeVNone || k.Horizontal != EdgeHNone
}

// String returns the handle token, e.g. "move" or "resize-nw".
func (k DragKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("DragKind(%t,%d,%d)", k.Move, k.Vertical, k.Horizontal)
	}
	if k.Move {
		return "move"
	}
	s := "resize-"
	switch k.Vertical {
	case EdgeNorth:
		s += "n"
	case EdgeSouth:
		s += "s"
	}
	switch k.Horizontal {
	case EdgeEast:
		s += "e"
	case EdgeWest:
		s += "w"
	}
	return s
}

// ParseDragKind parses a handle token as produced by DragKind.String.
func ParseDragKind(s string) (DragKind, error) {
	for _, k := range DragKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return DragKind{}, fmt.Errorf("unknown drag kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k DragKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("marshal drag kind: invalid %s", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *DragKind) UnmarshalText(b []byte) error {
	parsed, err := ParseDragKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
