package panelcast

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"initial", "initial"},
		{"after drag", "after_drag"},
		{"a/b\\c", "a_b_c"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"v1.2-final", "v1.2-final"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, G: 127, B: 0, A: 128}) {
		t.Errorf("pixel 0 = %+v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("pixel 1 = %+v", got)
	}
	if got := img.NRGBAAt(2, 0); got.A != 0 {
		t.Errorf("pixel 2 = %+v", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PNG file")
	}
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := NewScene()
	s.Screenshot("one")
	s.Screenshot("two")
	if len(s.screenshotQueue) != 2 {
		t.Errorf("queue = %d, want 2", len(s.screenshotQueue))
	}
}
