package testutil

import "testing"

var livegenEnvVars = []string{
	"LIVEGEN_ADDR",
	"LIVEGEN_OUTPUT_DIR",
	"LIVEGEN_LOG_LEVEL",
	"LIVEGEN_LOG_DIR",
}

// UnsetLivegenEnv clears the environment overrides for the duration of t so a
// developer's shell cannot redirect output or logging in tests.
func UnsetLivegenEnv(t testing.TB) {
	t.Helper()
	for _, key := range livegenEnvVars {
		t.Setenv(key, "")
	}
}
