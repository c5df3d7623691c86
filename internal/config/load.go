package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile loads path over the defaults without consulting flags.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// findConfigFile looks for config in the working directory.
func findConfigFile() string {
	for _, path := range []string{"./vrgrab.yaml", "./config.yaml"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks ranges. Enum names are checked where they are applied.
func (c *Config) Validate() error {
	if c.Physics.FixedStep <= 0 {
		return fmt.Errorf("physics.fixed_step must be positive, got %v", c.Physics.FixedStep)
	}
	if c.Physics.MaxSteps < 1 {
		return fmt.Errorf("physics.max_steps must be at least 1, got %d", c.Physics.MaxSteps)
	}
	g := c.Grabber
	if g.GripThreshold < 0 || g.GripThreshold > 1 {
		return fmt.Errorf("grabber.grip_threshold must be within [0, 1], got %v", g.GripThreshold)
	}
	if g.ReleaseThreshold < 0 || g.ReleaseThreshold > g.GripThreshold {
		return fmt.Errorf("grabber.release_threshold must be within [0, grip_threshold], got %v", g.ReleaseThreshold)
	}
	if g.GrabGraceWindow < 0 {
		return fmt.Errorf("grabber.grab_grace_window must not be negative, got %v", g.GrabGraceWindow)
	}
	if c.Tracker.SampleCount < 1 {
		return fmt.Errorf("tracker.sample_count must be at least 1, got %d", c.Tracker.SampleCount)
	}
	if c.Grabbable.BreakDistance < 0 {
		return fmt.Errorf("grabbable.break_distance must not be negative, got %v", c.Grabbable.BreakDistance)
	}
	if c.Grabbable.GrabSpeed <= 0 {
		return fmt.Errorf("grabbable.grab_speed must be positive, got %v", c.Grabbable.GrabSpeed)
	}
	if c.Remote.Distance < 0 {
		return fmt.Errorf("remote.distance must not be negative, got %v", c.Remote.Distance)
	}
	if c.Remote.FlickTime <= 0 {
		return fmt.Errorf("remote.flick_time must be positive, got %v", c.Remote.FlickTime)
	}
	if c.Sim.FrameTime <= 0 {
		return fmt.Errorf("sim.frame_time must be positive, got %v", c.Sim.FrameTime)
	}
	return nil
}
