package api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/roomgraph/pkg/algorithms"
	"github.com/dd0wney/roomgraph/pkg/rooms"
	"github.com/dd0wney/roomgraph/pkg/validation"
)

// Config holds the server configuration.
type Config struct {
	Port           int             `yaml:"port"`
	BodyLimitBytes int64           `yaml:"body_limit_bytes"`
	Detection      DetectionConfig `yaml:"detection"`
}

// DetectionConfig holds the default detection parameters. Requests may
// override the thresholds per call; the enumeration limits are server-side
// only.
type DetectionConfig struct {
	AreaThreshold      float64 `yaml:"area_threshold"`
	DoorGapThreshold   float64 `yaml:"door_gap_threshold"`
	OuterBoundaryRatio float64 `yaml:"outer_boundary_ratio"`
	MaxCycles          int     `yaml:"max_cycles"`
	MaxCycleLength     int     `yaml:"max_cycle_length"`
}

// DefaultConfig returns the standard server configuration.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		BodyLimitBytes: 10 * 1024 * 1024,
		Detection: DetectionConfig{
			AreaThreshold:      rooms.DefaultAreaThreshold,
			DoorGapThreshold:   0,
			OuterBoundaryRatio: rooms.DefaultOuterBoundaryRatio,
			MaxCycles:          algorithms.DefaultMaxCycles,
			MaxCycleLength:     algorithms.DefaultMaxCycleLength,
		},
	}
}

// LoadConfig reads a YAML config file and applies it over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	return validation.NewConfigValidator("Config").
		IntRange("Port", c.Port, 1, 65535).
		PositiveInt("BodyLimitBytes", int(c.BodyLimitBytes)).
		PositiveFloat("Detection.AreaThreshold", c.Detection.AreaThreshold).
		NonNegativeFloat("Detection.DoorGapThreshold", c.Detection.DoorGapThreshold).
		FloatAbove("Detection.OuterBoundaryRatio", c.Detection.OuterBoundaryRatio, 1).
		PositiveInt("Detection.MaxCycles", c.Detection.MaxCycles).
		PositiveInt("Detection.MaxCycleLength", c.Detection.MaxCycleLength).
		Validate()
}

// Options converts the detection config into pipeline options.
func (c DetectionConfig) Options() rooms.Options {
	return rooms.Options{
		AreaThreshold:      c.AreaThreshold,
		DoorGapThreshold:   c.DoorGapThreshold,
		OuterBoundaryRatio: c.OuterBoundaryRatio,
		Limits: algorithms.Limits{
			MaxCycles:      c.MaxCycles,
			MaxCycleLength: c.MaxCycleLength,
		},
	}
}
