package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gokturkdogan/journey/internal/camera"
	"github.com/gokturkdogan/journey/internal/geom"
	"github.com/gokturkdogan/journey/internal/landmark"
	"github.com/gokturkdogan/journey/internal/sim"
	"github.com/gokturkdogan/journey/internal/vehicle"
)

const (
	DefaultFrameRate       = 60
	DefaultProximityRadius = 15.0

	// DefaultIntensityRate is the delta-scaled form of the reference
	// tuning (0.05 per frame at 60 Hz).
	DefaultIntensityRate = 3.0
)

// LandmarkConfig is one waypoint of the route, in traversal order.
type LandmarkConfig struct {
	ID    string  `yaml:"id"`
	Title string  `yaml:"title"`
	Year  int     `yaml:"year"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
}

// ActivationConfig tunes the proximity engine.
type ActivationConfig struct {
	ProximityRadius float64 `yaml:"proximity_radius"`
	IntensityRate   float64 `yaml:"intensity_rate"`
}

// Config is the full simulation setup loaded from yaml.
type Config struct {
	Route      []LandmarkConfig `yaml:"route"`
	Spawn      geom.Vec3        `yaml:"spawn"`
	Steering   string           `yaml:"steering"` // "free" or "fixed"
	Vehicle    vehicle.Tuning   `yaml:"vehicle"`
	Camera     camera.Tuning    `yaml:"camera"`
	Activation ActivationConfig `yaml:"activation"`
	FrameRate  int              `yaml:"frame_rate"`
	Script     []sim.ScriptStep `yaml:"script,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Route: []LandmarkConfig{
			{ID: "first-home", Title: "First Home", Year: 1994, Z: -20},
			{ID: "school", Title: "Primary School", Year: 2000, Z: -60},
			{ID: "first-car", Title: "First Car", Year: 2008, Z: -100},
			{ID: "graduation", Title: "Graduation", Year: 2012, Z: -140},
			{ID: "wedding", Title: "Wedding", Year: 2016, Z: -180},
			{ID: "new-city", Title: "Moving Cities", Year: 2019, Z: -220},
		},
		Spawn:    geom.Vec3{Y: 0.5},
		Steering: "fixed",
		Vehicle:  vehicle.DefaultTuning(),
		Camera:   camera.DefaultTuning(),
		Activation: ActivationConfig{
			ProximityRadius: DefaultProximityRadius,
			IntensityRate:   DefaultIntensityRate,
		},
		FrameRate: DefaultFrameRate,
	}
}

// Load reads a yaml file over the defaults, so partial files only
// override what they mention.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SteeringMode parses the steering field.
func (c *Config) SteeringMode() (vehicle.SteeringMode, error) {
	switch c.Steering {
	case "", "fixed":
		return vehicle.SteeringFixedHeading, nil
	case "free":
		return vehicle.SteeringFree, nil
	default:
		return 0, fmt.Errorf("unknown steering mode: %q", c.Steering)
	}
}

// BuildRegistry constructs the landmark registry from the route.
func (c *Config) BuildRegistry() (*landmark.Registry, error) {
	landmarks := make([]*landmark.Landmark, 0, len(c.Route))
	for _, lc := range c.Route {
		landmarks = append(landmarks, &landmark.Landmark{
			ID:       lc.ID,
			Title:    lc.Title,
			Year:     lc.Year,
			Position: geom.Vec3{X: lc.X, Y: lc.Y, Z: lc.Z},
		})
	}
	return landmark.NewRegistry(landmarks)
}
