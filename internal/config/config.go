package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration for the course data core.
type Config struct {
	// DataDir is the directory holding one JSON document per course.
	DataDir string `validate:"required"`
	// EagerLoad normalizes every course during the initial scan instead of
	// on first access.
	EagerLoad bool
	// MaxCacheSize bounds the course cache; zero means unlimited.
	MaxCacheSize int `validate:"gte=0"`
	// EnableFuzzy allows prefix/substring identifier resolution when every
	// exact match fails. Off by default: short queries can shadow many ids.
	EnableFuzzy bool
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CLAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("data.dir", "data")
	v.SetDefault("eager.load", true)
	v.SetDefault("max.cache.size", 0)
	v.SetDefault("enable.fuzzy", false)

	cfg := Config{
		DataDir:      v.GetString("data.dir"),
		EagerLoad:    v.GetBool("eager.load"),
		MaxCacheSize: v.GetInt("max.cache.size"),
		EnableFuzzy:  v.GetBool("enable.fuzzy"),
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
