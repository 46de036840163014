package cli

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Host      string
	Port      int
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values, overridden by environment
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("KARTGATE_SERVER", "http://localhost:8080"),
		Host:      getEnvOrDefault("KARTGATE_HOST", ""),
		Port:      getEnvIntOrDefault("KARTGATE_PORT", 8080),
		Output:    getEnvOrDefault("KARTGATE_OUTPUT", "text"),
		Verbose:   false,
	}
}

// Validate checks values that flags and environment cannot constrain
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
