package config

const (
	DefaultAddr      = ":8080"
	DefaultOutputDir = "."
	DefaultLogLevel  = "info"
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
