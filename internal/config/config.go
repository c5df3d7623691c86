// Package config loads the simulation and grab tuning settings.
package config

// Config holds all settings.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Grabber   GrabberConfig   `yaml:"grabber"`
	Grabbable GrabbableConfig `yaml:"grabbable"`
	Tracker   TrackerConfig   `yaml:"tracker"`
	Remote    RemoteConfig    `yaml:"remote"`
	Sim       SimConfig       `yaml:"sim"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// PhysicsConfig holds the fixed-step loop and world settings.
type PhysicsConfig struct {
	FixedStep float32    `yaml:"fixed_step"` // Seconds per physics tick
	MaxSteps  int        `yaml:"max_steps"`  // Ticks allowed per frame before dropping time
	Gravity   [3]float32 `yaml:"gravity"`
}

// GrabberConfig holds per-hand input settings.
type GrabberConfig struct {
	GrabButton           string  `yaml:"grab_button"`
	HoldType             string  `yaml:"hold_type"`
	GripThreshold        float32 `yaml:"grip_threshold"`
	ReleaseThreshold     float32 `yaml:"release_threshold"`
	GrabGraceWindow      float32 `yaml:"grab_grace_window"`
	FlickMinAngularSpeed float32 `yaml:"flick_min_angular_speed"`
}

// GrabbableConfig holds the defaults applied to every grabbable.
type GrabbableConfig struct {
	GrabPhysics                 string  `yaml:"grab_physics"`
	GrabMechanic                string  `yaml:"grab_mechanic"`
	SecondaryGrabBehavior       string  `yaml:"secondary_grab_behavior"`
	TwoHandedDrop               string  `yaml:"two_handed_drop"`
	TwoHandedRotation           string  `yaml:"two_handed_rotation"`
	TwoHandedPosition           string  `yaml:"two_handed_position"`
	ParentToHands               bool    `yaml:"parent_to_hands"`
	GrabSpeed                   float32 `yaml:"grab_speed"`
	ThrowForceMultiplier        float32 `yaml:"throw_force_multiplier"`
	ThrowForceMultiplierAngular float32 `yaml:"throw_force_multiplier_angular"`
	BreakDistance               float32 `yaml:"break_distance"`
	Spring                      float32 `yaml:"spring"`
	Damper                      float32 `yaml:"damper"`
	CollisionSpring             float32 `yaml:"collision_spring"`
	CollisionDamper             float32 `yaml:"collision_damper"`
	MaxLinearSpeed              float32 `yaml:"max_linear_speed"`
	MaxVelocityChange           float32 `yaml:"max_velocity_change"`
	MaxAngularSpeed             float32 `yaml:"max_angular_speed"`
	MaxAngularVelocityChange    float32 `yaml:"max_angular_velocity_change"`
}

// TrackerConfig holds velocity tracker settings.
type TrackerConfig struct {
	SampleCount       int  `yaml:"sample_count"`
	UseDeviceVelocity bool `yaml:"use_device_velocity"`
}

// RemoteConfig holds remote grab settings.
type RemoteConfig struct {
	Enabled            bool    `yaml:"enabled"`
	Movement           string  `yaml:"movement"`
	Distance           float32 `yaml:"distance"`
	VelocityGain       float32 `yaml:"velocity_gain"`
	FlickTime          float32 `yaml:"flick_time"`
	FlickCatchDistance float32 `yaml:"flick_catch_distance"`
	LineOfSight        bool    `yaml:"line_of_sight"`
}

// SimConfig holds settings for the headless sandbox.
type SimConfig struct {
	Steps     int     `yaml:"steps"`      // Frame budget for each scripted wait
	FrameTime float32 `yaml:"frame_time"` // Seconds per frame
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Physics: PhysicsConfig{
			FixedStep: 0.02,
			MaxSteps:  8,
			Gravity:   [3]float32{0, -9.81, 0},
		},
		Grabber: GrabberConfig{
			GrabButton:           "grip",
			HoldType:             "hold-down",
			GripThreshold:        0.9,
			ReleaseThreshold:     0.5,
			GrabGraceWindow:      0.1,
			FlickMinAngularSpeed: 8,
		},
		Grabbable: GrabbableConfig{
			GrabPhysics:                 "velocity",
			GrabMechanic:                "snap",
			SecondaryGrabBehavior:       "swap-hands",
			TwoHandedDrop:               "drop",
			TwoHandedRotation:           "none",
			TwoHandedPosition:           "none",
			ParentToHands:               true,
			GrabSpeed:                   15,
			ThrowForceMultiplier:        2,
			ThrowForceMultiplierAngular: 1.5,
			Spring:                      600,
			Damper:                      40,
			CollisionSpring:             150,
			CollisionDamper:             25,
			MaxLinearSpeed:              20,
			MaxVelocityChange:           10,
			MaxAngularSpeed:             20,
			MaxAngularVelocityChange:    20,
		},
		Tracker: TrackerConfig{
			SampleCount:       3,
			UseDeviceVelocity: true,
		},
		Remote: RemoteConfig{
			Enabled:            true,
			Movement:           "linear",
			Distance:           2,
			VelocityGain:       10,
			FlickTime:          0.5,
			FlickCatchDistance: 0.25,
			LineOfSight:        true,
		},
		Sim: SimConfig{
			Steps:     300,
			FrameTime: 1.0 / 90,
		},
	}
}
