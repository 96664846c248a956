package panelcast

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// sessionVersion is written into every saved session.
const sessionVersion = "1"

// Session is the serializable state of a scene: its regions, settings and,
// while visualizing, the panels.
type Session struct {
	Version  string       `yaml:"version"`
	Settings Settings     `yaml:"settings"`
	Regions  []Region     `yaml:"regions"`
	ActiveID string       `yaml:"activeId,omitempty"`
	Locked   bool         `yaml:"locked,omitempty"`
	Panels   []PanelState `yaml:"panels,omitempty"`
}

// Snapshot captures the scene's current state.
func (s *Scene) Snapshot() Session {
	return Session{
		Version:  sessionVersion,
		Settings: s.Settings,
		Regions:  s.editor.Regions(),
		ActiveID: s.editor.activeID,
		Locked:   s.visualizing,
		Panels:   s.Panels(),
	}
}

// Restore replaces the scene's regions, settings and panels with those of
// sess. Regions are clamped; panels whose region is missing are dropped.
// A session saved while visualizing resumes visualizing.
func (s *Scene) Restore(sess Session) error {
	if err := sess.Settings.Validate(); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	s.editor.End()
	ed := NewRegionEditor(sess.Regions...)
	ed.OnActivate = s.editor.OnActivate
	ed.OnChange = s.editor.OnChange
	ed.events = s
	ed.emit = s.emitEvent
	if _, ok := ed.Region(sess.ActiveID); ok {
		ed.activeID = sess.ActiveID
	}

	s.editor = ed
	s.tweens = s.tweens[:0]
	s.Settings = sess.Settings
	s.panels = s.panels[:0]
	for _, p := range sess.Panels {
		if _, ok := ed.Region(p.RegionID); ok {
			s.panels = append(s.panels, p)
		}
	}
	s.visualizing = sess.Locked && len(ed.regions) > 0
	if s.visualizing {
		ed.Lock()
	}
	s.lastFrame = time.Time{}
	return nil
}

// WriteSession writes a session to a YAML file.
func WriteSession(sess Session, path string) error {
	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ReadSession reads a session from a YAML file. Settings missing from the
// file take their default values.
func ReadSession(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	sess := Session{Settings: DefaultSettings()}
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("parse session %s: %w", path, err)
	}
	if sess.Version != sessionVersion {
		return Session{}, fmt.Errorf("session %s: unsupported version %q", path, sess.Version)
	}
	return sess, nil
}
