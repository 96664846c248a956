package panelcast

import "testing"

func TestDragKindString(t *testing.T) {
	tests := []struct {
		kind DragKind
		want string
	}{
		{DragMove, "move"},
		{DragResizeN, "resize-n"},
		{DragResizeS, "resize-s"},
		{DragResizeE, "resize-e"},
		{DragResizeW, "resize-w"},
		{DragResizeNE, "resize-ne"},
		{DragResizeNW, "resize-nw"},
		{DragResizeSE, "resize-se"},
		{DragResizeSW, "resize-sw"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		parsed, err := ParseDragKind(tt.want)
		if err != nil {
			t.Errorf("ParseDragKind(%q): %v", tt.want, err)
			continue
		}
		if parsed != tt.kind {
			t.Errorf("ParseDragKind(%q) = %+v, want %+v", tt.want, parsed, tt.kind)
		}
	}
	if len(DragKinds) != len(tests) {
		t.Errorf("len(DragKinds) = %d, want %d", len(DragKinds), len(tests))
	}
}

func TestDragKindValid(t *testing.T) {
	for _, k := range DragKinds {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
	}
	invalid := []DragKind{
		{},
		{Move: true, Vertical: EdgeNorth},
		{Move: true, Horizontal: EdgeWest},
		{Vertical: 7},
		{Horizontal: 9},
	}
	for _, k := range invalid {
		if k.Valid() {
			t.Errorf("%+v should be invalid", k)
		}
	}
}

func TestParseDragKindUnknown(t *testing.T) {
	for _, s := range []string{"", "resize", "resize-x", "resize-wn", "MOVE"} {
		if _, err := ParseDragKind(s); err == nil {
			t.Errorf("ParseDragKind(%q) should fail", s)
		}
	}
}

func TestDragKindText(t *testing.T) {
	b, err := DragResizeSW.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var k DragKind
	if err := k.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if k != DragResizeSW {
		t.Errorf("round trip = %s, want resize-sw", k)
	}
	if _, err := (DragKind{}).MarshalText(); err == nil {
		t.Error("marshalling the zero DragKind should fail")
	}
	if err := k.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("unmarshalling an unknown token should fail")
	}
}
