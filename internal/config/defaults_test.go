package config

import "testing"

func TestDefaultConfig_Server(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected Server.Addr to be ':8080', got %q", cfg.Server.Addr)
	}
}

func TestDefaultConfig_Output(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Output.Dir != "." {
		t.Errorf("expected Output.Dir to be '.', got %q", cfg.Output.Dir)
	}
	if cfg.Output.Force {
		t.Error("expected Output.Force to be false")
	}
}

func TestDefaultConfig_LogLevel(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Log.Level != "info" {
		t.Errorf("expected Log.Level to be 'info', got %q", cfg.Log.Level)
	}
}

func TestDefaultConfig_ProjectDefaults(t *testing.T) {
	cfg := DefaultConfig()
	defaults := cfg.ProjectDefaults()
	if defaults.Resources.CPU != "1" {
		t.Errorf("expected CPU to be '1', got %q", defaults.Resources.CPU)
	}
	if defaults.Resources.Memory != "512" {
		t.Errorf("expected Memory to be '512', got %q", defaults.Resources.Memory)
	}
	if defaults.Command != "" {
		t.Errorf("expected Command to be empty, got %q", defaults.Command)
	}
}
