package panelcast

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the per-session visualizer knobs. Opacity, blur and rotation
// are read when panels are created; MovementSpeed and AnimationMode are read
// every frame.
type Settings struct {
	// OpacityVariation in [0, 1] is the maximum random opacity reduction.
	OpacityVariation float64 `yaml:"opacityVariation" json:"opacityVariation"`
	// BlurIntensity is the maximum random blur radius in pixels.
	BlurIntensity float64 `yaml:"blurIntensity" json:"blurIntensity"`
	// EnableRotation seeds panels with a random rotation and spin.
	EnableRotation bool `yaml:"enableRotation" json:"enableRotation"`
	// MovementSpeed scales every mode. 1 is the reference speed.
	MovementSpeed float64 `yaml:"movementSpeed" json:"movementSpeed"`
	// AnimationMode is the active motion rule.
	AnimationMode Mode `yaml:"animationMode" json:"animationMode"`
	// PanelSize is the long edge of a panel on the canvas, in pixels.
	PanelSize float64 `yaml:"panelSize" json:"panelSize"`
	// PanelsPerRegion is how many panels each confirmed region spawns.
	PanelsPerRegion int `yaml:"panelsPerRegion" json:"panelsPerRegion"`
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		OpacityVariation: 0.3,
		BlurIntensity:    0,
		EnableRotation:   true,
		MovementSpeed:    1,
		AnimationMode:    ModeBounce,
		PanelSize:        200,
		PanelsPerRegion:  1,
	}
}

// Validate reports the first out-of-range field.
func (s Settings) Validate() error {
	switch {
	case s.OpacityVariation < 0 || s.OpacityVariation > 1:
		return fmt.Errorf("opacityVariation %v out of range [0, 1]", s.OpacityVariation)
	case s.BlurIntensity < 0:
		return fmt.Errorf("blurIntensity %v must not be negative", s.BlurIntensity)
	case s.MovementSpeed < 0:
		return fmt.Errorf("movementSpeed %v must not be negative", s.MovementSpeed)
	case !s.AnimationMode.Valid():
		return fmt.Errorf("animationMode: invalid %s", s.AnimationMode)
	case s.PanelSize <= 0:
		return fmt.Errorf("panelSize %v must be positive", s.PanelSize)
	case s.PanelsPerRegion < 1:
		return fmt.Errorf("panelsPerRegion %d must be at least 1", s.PanelsPerRegion)
	}
	return nil
}

// LoadSettings reads settings from a YAML file. Fields missing from the file
// keep their DefaultSettings values.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes settings to a YAML file.
func SaveSettings(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
