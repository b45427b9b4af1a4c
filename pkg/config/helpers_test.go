package config_test

import (
	"os"
	"testing"
)

// unset removes variables for the duration of the test. t.Setenv registers
// the restore; the variable is then cleared.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}
