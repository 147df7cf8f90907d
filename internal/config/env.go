package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "LIVEGEN_ADDR",
		apply: func(c *Config, v string) {
			c.Server.Addr = v
		},
	},
	{
		envVar: "LIVEGEN_OUTPUT_DIR",
		apply: func(c *Config, v string) {
			c.Output.Dir = v
		},
	},
	{
		envVar: "LIVEGEN_LOG_LEVEL",
		apply: func(c *Config, v string) {
			c.Log.Level = v
		},
	},
	{
		envVar: "LIVEGEN_LOG_DIR",
		apply: func(c *Config, v string) {
			c.Log.Dir = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
