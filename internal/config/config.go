// Package config resolves configuration values from flags, config files,
// and the environment through Viper.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/fairwaylabs/coursesync/pkg/errors"
)

// Environment variables recognized for the provider API key, in lookup
// order. The second name is a legacy alias.
var apiKeyEnvVars = []string{"GOLFCOURSEAPI_KEY", "GOLFCOURSE_API_KEY"}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// APIKey resolves the provider API key. An explicit value (from a flag)
// wins; otherwise the recognized environment variables and Viper
// configuration are consulted in order. A missing key is a run-fatal
// configuration error.
func APIKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range apiKeyEnvVars {
		if value := GetString(name); value != "" {
			return value, nil
		}
	}
	return "", &errors.ConfigError{
		Component: "provider",
		Message:   "missing GOLFCOURSEAPI_KEY; set the environment variable or pass --api-key",
		Err:       errors.ErrAPIKeyRequired,
	}
}

// MaskKey redacts an API key for logs and run metadata: first 3 and last 2
// characters kept, everything else replaced. Keys shorter than 6 characters
// are fully redacted.
func MaskKey(key string) string {
	if len(key) < 6 {
		return "***"
	}
	return key[:3] + "***" + key[len(key)-2:]
}
