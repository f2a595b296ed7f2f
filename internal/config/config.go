// Package config loads service configuration from the environment
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// StatRanges holds the tunable stat math. The base ranges and clamps differ
// across deployments, so they are configuration rather than constants.
type StatRanges struct {
	DamageMin int `env:"STAT_DAMAGE_MIN" envDefault:"30"`
	DamageMax int `env:"STAT_DAMAGE_MAX" envDefault:"100"`
	SpeedMin  int `env:"STAT_SPEED_MIN" envDefault:"20"`
	SpeedMax  int `env:"STAT_SPEED_MAX" envDefault:"90"`

	DamageClampMin int `env:"STAT_DAMAGE_CLAMP_MIN" envDefault:"20"`
	DamageClampMax int `env:"STAT_DAMAGE_CLAMP_MAX" envDefault:"100"`
	SpeedClampMin  int `env:"STAT_SPEED_CLAMP_MIN" envDefault:"10"`
	SpeedClampMax  int `env:"STAT_SPEED_CLAMP_MAX" envDefault:"100"`
}

// Config is the full server configuration
type Config struct {
	HTTPPort int `env:"API_PORT" envDefault:"8083"`

	RedisEndpoint string `env:"REDIS_ENDPOINT" envDefault:"localhost:6379"`

	// WeaponOutputDir is where mesh artifacts are written
	WeaponOutputDir string `env:"WEAPON_OUTPUT_DIR" envDefault:"./generated_weapons"`

	// PersonalityConfigPath optionally overlays catalog entries from JSON
	PersonalityConfigPath string `env:"PERSONALITY_CONFIG_PATH" envDefault:"config/personalities.json"`

	// MaxWeaponsPerRequest bounds a single generation call
	MaxWeaponsPerRequest int `env:"MAX_WEAPONS_PER_REQUEST" envDefault:"4"`

	// TextBackendURL is an OpenAI-compatible completion endpoint. Empty
	// disables the text backend; the composer then always uses templates.
	TextBackendURL   string `env:"TEXT_BACKEND_URL"`
	TextBackendKey   string `env:"TEXT_BACKEND_API_KEY"`
	TextBackendModel string `env:"TEXT_BACKEND_MODEL" envDefault:"distilgpt2"`

	// MeshBackendURL is the generative mesh sidecar. Empty disables it;
	// the static body selector then serves every request.
	MeshBackendURL string `env:"MESH_BACKEND_URL"`

	Stats StatRanges
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
