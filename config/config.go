package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DBPath        string
	LogLevel      string
	LogFile       string
	CycleOrdering string  // strict|lenient
	DefaultArea   float64 // hectares used when a simulation omits area
	SeedProfiles  string
	SeedHistory   string
	SeedOnStart   bool
}

func Load(log zerolog.Logger) AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("[cfg] no .env file loaded")
	}
	return FromEnv(os.Getenv, log)
}

// FromEnv builds the config from a lookup function so tests can avoid the
// process environment.
func FromEnv(getenv func(string) string, log zerolog.Logger) AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		raw := get(k, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			log.Warn().Str("key", k).Str("value", raw).Float64("default", def).Msg("[cfg] invalid number, using default")
			return def
		}
		return v
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		Timezone:      get("TZ", "America/Sao_Paulo"),
		DBPath:        get("DB_PATH", "cropplan.db"),
		LogLevel:      get("LOG_LEVEL", "info"),
		LogFile:       get("LOG_FILE", ""),
		CycleOrdering: get("CYCLE_ORDERING", "strict"),
		DefaultArea:   getFloat("SIM_DEFAULT_AREA", 50),
		SeedProfiles:  get("SEED_PROFILES", ""),
		SeedHistory:   get("SEED_HISTORY", ""),
		SeedOnStart:   get("SEED_ON_START", "true") == "true",
	}
	log.Info().Interface("config", cfg).Msg("[cfg] loaded")
	return cfg
}

// Location resolves Timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		return loc
	}
	return time.UTC
}
