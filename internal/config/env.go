// Package config provides shared configuration utilities and the game tuning file.
package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvUint parses the environment variable named by the key as an unsigned
// integer. fallback is returned when the variable is unset or malformed.
func GetEnvUint(key string, fallback uint64) uint64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
