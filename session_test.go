package panelcast

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newVisualizingScene(t *testing.T) *Scene {
	t.Helper()
	s := NewScene(
		Region{ID: "a", X: 0.1, Y: 0.1, Width: 0.3, Height: 0.3},
		Region{ID: "b", X: 0.5, Y: 0.5, Width: 0.4, Height: 0.2},
	)
	s.CanvasW, s.CanvasH = 800, 600
	s.Now = func() time.Time { return testEpoch }
	s.Rand = rand.New(rand.NewPCG(9, 9))
	if err := s.Confirm(); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	src := newVisualizingScene(t)
	src.SetMode(ModeOrbit)
	path := filepath.Join(t.TempDir(), "session.yaml")

	if err := WriteSession(src.Snapshot(), path); err != nil {
		t.Fatal(err)
	}
	sess, err := ReadSession(path)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Settings != src.Settings {
		t.Errorf("settings = %+v, want %+v", sess.Settings, src.Settings)
	}
	if !sess.Locked || sess.ActiveID != "a" {
		t.Errorf("locked=%v active=%q", sess.Locked, sess.ActiveID)
	}

	dst := NewScene()
	if err := dst.Restore(sess); err != nil {
		t.Fatal(err)
	}
	if !dst.Visualizing() || !dst.Editor().Locked() {
		t.Error("restored scene should resume visualizing")
	}
	gotR, wantR := dst.Editor().Regions(), src.Editor().Regions()
	if len(gotR) != len(wantR) {
		t.Fatalf("regions = %d, want %d", len(gotR), len(wantR))
	}
	for i := range wantR {
		if gotR[i] != wantR[i] {
			t.Errorf("region %d = %+v, want %+v", i, gotR[i], wantR[i])
		}
	}
	gotP, wantP := dst.Panels(), src.Panels()
	if len(gotP) != len(wantP) {
		t.Fatalf("panels = %d, want %d", len(gotP), len(wantP))
	}
	for i := range wantP {
		g, w := gotP[i], wantP[i]
		if g.RegionID != w.RegionID || g.X != w.X || g.Y != w.Y || g.Phase != w.Phase ||
			g.Angle != w.Angle || !g.StartTime.Equal(w.StartTime) {
			t.Errorf("panel %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestRestoreDropsOrphanPanels(t *testing.T) {
	sess := newVisualizingScene(t).Snapshot()
	sess.Regions = sess.Regions[:1]
	sess.ActiveID = "b"

	s := NewScene()
	if err := s.Restore(sess); err != nil {
		t.Fatal(err)
	}
	for _, p := range s.Panels() {
		if p.RegionID != "a" {
			t.Errorf("orphan panel for %q kept", p.RegionID)
		}
	}
	if len(s.Panels()) != 1 {
		t.Errorf("panels = %d, want 1", len(s.Panels()))
	}
	if s.Editor().ActiveID() != "a" {
		t.Errorf("active = %q, want fallback to a", s.Editor().ActiveID())
	}
}

func TestRestoreKeepsCallbacksAndWiring(t *testing.T) {
	s := NewScene()
	s.Container = Rect{Width: 100, Height: 100}
	calls := 0
	s.Editor().OnChange = func(Region) { calls++ }

	sess := Session{
		Version:  sessionVersion,
		Settings: DefaultSettings(),
		Regions:  []Region{{ID: "x", X: 0.2, Y: 0.2, Width: 0.2, Height: 0.2}},
	}
	if err := s.Restore(sess); err != nil {
		t.Fatal(err)
	}
	if s.Visualizing() {
		t.Error("unlocked session should restore into editing")
	}
	if err := s.Editor().Begin("x", DragMove, 30, 30, s.Container); err != nil {
		t.Fatal(err)
	}
	if len(s.handlers.pointerMove) != 1 {
		t.Error("restored editor is not subscribed to scene pointer events")
	}
	s.processPointer(0, 40, 30, true, MouseButtonLeft)
	s.processPointer(0, 50, 30, true, MouseButtonLeft)
	if calls == 0 {
		t.Error("OnChange was not carried over")
	}
}

func TestRestoreInvalidSettings(t *testing.T) {
	s := NewScene(Region{ID: "keep", Width: 0.5, Height: 0.5})
	sess := Session{Version: sessionVersion, Settings: Settings{}}
	if err := s.Restore(sess); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := s.Editor().Region("keep"); !ok {
		t.Error("failed Restore replaced the regions")
	}
}

func TestReadSessionVersion(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"future":  "version: \"2\"\nregions: []\n",
		"missing": "regions: []\n",
	} {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadSession(path); err == nil {
			t.Errorf("%s: expected version error", name)
		}
	}
}

func TestReadSessionDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	body := "version: \"1\"\nsettings:\n  animationMode: float\nregions:\n  - {id: a, x: 0.1, y: 0.1, width: 0.2, height: 0.2}\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	sess, err := ReadSession(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultSettings()
	want.AnimationMode = ModeFloat
	if sess.Settings != want {
		t.Errorf("settings = %+v, want %+v", sess.Settings, want)
	}
	if len(sess.Regions) != 1 || sess.Regions[0].ID != "a" {
		t.Errorf("regions = %+v", sess.Regions)
	}
}
