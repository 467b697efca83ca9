package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks a rig config that parsed but cannot drive a rig.
var ErrInvalidConfig = errors.New("invalid rig config")

// LoadRigConfig reads a YAML rig config from path. Fields missing from the file keep
// their default values.
func LoadRigConfig(path string) (RigConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RigConfig{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := ParseRigConfig(data)
	if err != nil {
		return RigConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseRigConfig decodes YAML over the defaults and validates the result.
func ParseRigConfig(data []byte) (RigConfig, error) {
	cfg := DefaultRigConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RigConfig{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RigConfig{}, err
	}
	return cfg, nil
}

// MarshalRigConfig encodes cfg as YAML, the same shape ParseRigConfig reads.
func MarshalRigConfig(cfg RigConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate checks that every binding is usable.
func (c RigConfig) Validate() error {
	kb := c.Keyboard
	keySets := []struct {
		name string
		keys []KeyCode
	}{
		{"forward", kb.Forward},
		{"backward", kb.Backward},
		{"left", kb.Left},
		{"right", kb.Right},
		{"clockwise", kb.Clockwise},
		{"counter_clockwise", kb.CounterClockwise},
	}
	for _, set := range keySets {
		if len(set.keys) == 0 {
			return fmt.Errorf("%w: keyboard.%s has no keys", ErrInvalidConfig, set.name)
		}
		for _, k := range set.keys {
			if k == "" {
				return fmt.Errorf("%w: keyboard.%s has an empty key", ErrInvalidConfig, set.name)
			}
		}
	}
	if kb.YawStep < 0 {
		return fmt.Errorf("%w: keyboard.yaw_step must not be negative", ErrInvalidConfig)
	}

	m := c.Mouse
	if !m.Rotate.Known() {
		return fmt.Errorf("%w: mouse.rotate: unknown button %q", ErrInvalidConfig, m.Rotate)
	}
	if !m.Drag.Known() {
		return fmt.Errorf("%w: mouse.drag: unknown button %q", ErrInvalidConfig, m.Drag)
	}
	if m.ZoomSensitivity <= 0 {
		return fmt.Errorf("%w: mouse.zoom_sensitivity must be positive", ErrInvalidConfig)
	}
	return nil
}
