package config

import (
	"os"

	"github.com/labstack/gommon/log"
)

type Config struct {
	Port   string
	DBPath string

	// TimezoneID is the IANA identifier the office operates in;
	// TZLabel is the short label stored on each appointment row.
	TimezoneID string
	TZLabel    string
}

func Load() *Config {
	return &Config{
		Port:       getEnvOrDefault("PORT", "6060"),
		DBPath:     getEnvOrDefault("DB_PATH", "./appointments.db"),
		TimezoneID: getEnvOrDefault("BUSINESS_TIMEZONE", "America/Chicago"),
		TZLabel:    getEnvOrDefault("BUSINESS_TZ_LABEL", "CST"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Infof("%s is not set, using default %q", key, fallback)
	return fallback
}
