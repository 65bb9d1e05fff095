package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ServerSettings configures the HTTP server
type ServerSettings struct {
	Port        string
	DBPath      string
	LogLevel    slog.Level
	CORSOrigins []string
}

// DefaultServerSettings returns the settings used when nothing is configured
func DefaultServerSettings() ServerSettings {
	return ServerSettings{
		Port:        "8080",
		DBPath:      "money-for-life.db",
		LogLevel:    slog.LevelInfo,
		CORSOrigins: []string{"*"},
	}
}

// LoadServerSettings reads PORT, DB_PATH, LOG_LEVEL and CORS_ORIGINS from the
// environment after loading the given .env files. Missing .env files are not an
// error; the defaults cover anything left unset.
func LoadServerSettings(envFiles ...string) (ServerSettings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return ServerSettings{}, fmt.Errorf("failed to load env file: %w", err)
	}

	s := DefaultServerSettings()
	if v := os.Getenv("PORT"); v != "" {
		s.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		s.DBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := s.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return ServerSettings{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			s.CORSOrigins = origins
		}
	}
	return s, nil
}

// Addr returns the listen address for the configured port
func (s ServerSettings) Addr() string {
	return ":" + s.Port
}
