// Package simulation provides tuning configuration for the ghost animation.
// The values are loaded from an optional JSON file so the motion can be
// tweaked without recompiling.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all tuning values for the animation
type Config struct {
	// Window
	Window WindowConfig `json:"window"`

	// Ghost motion and geometry
	Ghost GhostConfig `json:"ghost"`

	// Eye geometry
	Eye EyeConfig `json:"eye"`

	// Scene population
	Scene SceneConfig `json:"scene"`
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width  int    `json:"width"`  // Initial window width in pixels
	Height int    `json:"height"` // Initial window height in pixels
	Title  string `json:"title"`  // Window title
}

// GhostConfig defines a single ghost's geometry and motion
type GhostConfig struct {
	Radius         float64 `json:"radius"`          // Body circle radius
	EyeDistance    float64 `json:"eye_distance"`    // Horizontal offset of each eye from center
	EyeRaise       float64 `json:"eye_raise"`       // Vertical offset of the eyes above center
	HandSpread     float64 `json:"hand_spread"`     // Horizontal offset of each hand from center
	HandDrop       float64 `json:"hand_drop"`       // Vertical offset of the hands below center
	HandRadius     float64 `json:"hand_radius"`     // Hand circle radius
	BounceDistance float64 `json:"bounce_distance"` // Amplitude of the body bounce per frame
	BounceSpeed    float64 `json:"bounce_speed"`    // Phase advance per frame
	HandPhaseLag   float64 `json:"hand_phase_lag"`  // Phase offset between body and hand bounce
	MinSpeed       float64 `json:"min_speed"`       // Lower bound of velocity magnitude (inclusive)
	MaxSpeed       float64 `json:"max_speed"`       // Upper bound of velocity magnitude (exclusive)
	RerollChance   float64 `json:"reroll_chance"`   // Per-frame probability of re-sampling velocity
	MaxStartPhase  int     `json:"max_start_phase"` // Upper bound of the random initial bounce phase
}

// EyeConfig defines eye geometry
type EyeConfig struct {
	MoveRadius float64 `json:"move_radius"` // Distance the iris sits from the eye anchor
	IrisRadius float64 `json:"iris_radius"` // Rendered iris radius
}

// SceneConfig defines how the scene populates itself
type SceneConfig struct {
	DensityDivisor float64 `json:"density_divisor"` // Ghost count = round((w+h)/divisor)
}

// DefaultConfig returns the stock animation tuning
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Ghostly",
		},
		Ghost: GhostConfig{
			Radius:         50,
			EyeDistance:    10,
			EyeRaise:       10,
			HandSpread:     45,
			HandDrop:       10,
			HandRadius:     10,
			BounceDistance: 0.5,
			BounceSpeed:    0.05,
			HandPhaseLag:   10,
			MinSpeed:       1,
			MaxSpeed:       3,
			RerollChance:   0.01,
			MaxStartPhase:  100,
		},
		Eye: EyeConfig{
			MoveRadius: 20,
			IrisRadius: 5,
		},
		Scene: SceneConfig{
			DensityDivisor: 200,
		},
	}
}

// LoadConfig loads animation tuning from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read animation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse animation config: %w", err)
	}

	return config, nil
}
