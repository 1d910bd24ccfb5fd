package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is a snapshot of the process environment taken at startup.
type Config map[string]string

func New() Config {
	environ := os.Environ()
	envAsMap := make(Config, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func (c Config) GetString(key string, defaultValue string) string {
	if c == nil {
		return defaultValue
	}
	if val, ok := c[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func (c Config) GetInt(key string, defaultValue int) int {
	if c == nil {
		return defaultValue
	}

	s, ok := c[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func (c Config) GetDuration(key string, defaultValue time.Duration) time.Duration {
	if c == nil {
		return defaultValue
	}

	s, ok := c[key]
	if !ok {
		return defaultValue
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}

	return d
}
