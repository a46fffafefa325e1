package utils

import (
	"log"
	"os"
	"strconv"
)

// Typed environment lookups for driver configuration. A variable that is
// set but does not parse logs once and falls back instead of aborting
// startup.

func GetEnvString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("env %s: %v, falling back to %d", key, err, fallback)
		return fallback
	}
	return parsed
}

func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("env %s: %v, falling back to %t", key, err, fallback)
		return fallback
	}
	return parsed
}
