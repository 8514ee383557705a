package config

import (
	"os"

	"github.com/csscript/gocs/internal/config/value"
)

// Environment variables backing process-wide settings. These must be
// visible to the compilers and child processes the engine spawns, which
// inherit environment state only, so their storage is the process
// environment rather than a Settings field. They live for the process
// lifetime and are never unset.
const (
	// EnvRoslynDir overrides the directory the Roslyn-style compiler
	// server is loaded from.
	EnvRoslynDir = "CSSCRIPT_ROSLYN"

	// EnvCustomTempDir overrides the engine's temp/cache directory.
	EnvCustomTempDir = "CSS_CUSTOM_TEMPDIR"

	// EnvLegacyTimestampCaching re-enables timestamp-based cache
	// validation instead of content hashing.
	EnvLegacyTimestampCaching = "CSS_LEGACY_TIMESTAMP_CACHING"

	// EnvProbingLegacyOrder switches assembly probing back to the legacy
	// order. Read-only from this subsystem's perspective; the engine's
	// loader consumes it directly.
	EnvProbingLegacyOrder = "CSS_PROBING_LEGACY_ORDER"
)

// RoslynDir returns the alternate compiler directory from the process
// environment. Unrelated instances and child processes observe the same
// value.
func (s *Settings) RoslynDir() string {
	return os.Getenv(EnvRoslynDir)
}

// SetRoslynDir stores the alternate compiler directory in the process
// environment.
func (s *Settings) SetRoslynDir(dir string) {
	os.Setenv(EnvRoslynDir, dir)
}

// CustomTempDirectory returns the custom temp directory from the process
// environment.
func (s *Settings) CustomTempDirectory() string {
	return os.Getenv(EnvCustomTempDir)
}

// SetCustomTempDirectory stores the custom temp directory in the process
// environment.
func (s *Settings) SetCustomTempDirectory(dir string) {
	os.Setenv(EnvCustomTempDir, dir)
}

// LegacyTimestampCaching reports whether timestamp-based cache
// validation is enabled. Only the exact tokens "true"/"false"
// (case-insensitive) are honored; anything else reads as false.
func (s *Settings) LegacyTimestampCaching() bool {
	b, err := value.ParseBool(os.Getenv(EnvLegacyTimestampCaching))
	return err == nil && b
}

// SetLegacyTimestampCaching stores the caching toggle in the process
// environment.
func (s *Settings) SetLegacyTimestampCaching(enabled bool) {
	os.Setenv(EnvLegacyTimestampCaching, formatBool(enabled))
}

// ProbingLegacyOrder reports whether legacy assembly probing order is
// requested via the environment.
func ProbingLegacyOrder() bool {
	b, err := value.ParseBool(os.Getenv(EnvProbingLegacyOrder))
	return err == nil && b
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
