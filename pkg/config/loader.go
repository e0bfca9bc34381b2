package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration struct.
//
// The first call attempts to load a .env file from the working directory;
// a missing file is fine and silently ignored. Values are then bound by
// `env:"..."` struct tags with `envDefault` fallbacks.
//
// Example:
//
//	type SiteConfig struct {
//		OpsEmail        string `env:"OPS_EMAIL" envDefault:"thehorseprojectsb@gmail.com"`
//		VolunteersEmail string `env:"VOLUNTEERS_EMAIL" envDefault:"volunteers@thehorseprojectsantabarbara.com"`
//	}
//
//	var cfg SiteConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Used for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
