package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		LogLevel string `envconfig:"LOG_LEVEL"`
	} `envconfig:"SERVER"`

	App struct {
		Timezone string `envconfig:"TIMEZONE"`
	} `envconfig:"APP"`

	Booking struct {
		GuestNameMax      int  `envconfig:"GUEST_NAME_MAX"       default:"100"`
		GuestEmailMax     int  `envconfig:"GUEST_EMAIL_MAX"      default:"100"`
		GuestPhoneMax     int  `envconfig:"GUEST_PHONE_MAX"      default:"20"`
		MinNights         int  `envconfig:"MIN_NIGHTS"           default:"0"`
		RejectPastCheckIn bool `envconfig:"REJECT_PAST_CHECK_IN" default:"false"`
	} `envconfig:"BOOKING"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Booking client configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// Load processes the environment into a fresh Config without touching the shared one.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	return &cfg, nil
}
