package config

// Presets are named route/tuning combinations selectable from the CLI.
var Presets = map[string]func() *Config{
	// The default drive-through chronology: fixed heading, zone camera.
	"timeline": DefaultConfig,

	// Free steering with pointer-orbit camera, no zone framing.
	"freeride": func() *Config {
		cfg := DefaultConfig()
		cfg.Steering = "free"
		cfg.Camera.OrbitInput = true
		cfg.Vehicle.MaxSpeed = 28
		return cfg
	},

	// Densely packed landmarks, slow vehicle, tight camera framing.
	"museum": func() *Config {
		cfg := DefaultConfig()
		cfg.Route = []LandmarkConfig{
			{ID: "hall-1", Title: "Childhood", Year: 1994, Z: -15},
			{ID: "hall-2", Title: "School Days", Year: 2001, Z: -30},
			{ID: "hall-3", Title: "First Job", Year: 2010, Z: -45},
			{ID: "hall-4", Title: "Family", Year: 2016, Z: -60},
		}
		cfg.Vehicle.MaxSpeed = 8
		cfg.Activation.ProximityRadius = 8
		cfg.Camera.ZoneRadius = 8
		cfg.Camera.Distance = 8
		return cfg
	},
}

// Preset returns a fresh config for the named preset, or nil.
func Preset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}
