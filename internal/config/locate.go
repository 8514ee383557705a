package config

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the settings file shared by all engine invocations.
const ConfigFileName = "css_config.xml"

// runtimeVariant names the alternate engine build, set via ldflags
// (e.g. -X .../config.runtimeVariant=portable). Variant builds prefer a
// sibling css_config.<variant>.xml when one exists, so a machine can
// carry separate settings for each deployment.
var runtimeVariant = ""

// executable is swappable for tests.
var executable = os.Executable

// DefaultConfigFile resolves the default config file path next to the
// running executable. Returns ErrNoConfigPath when the executable
// location cannot be determined; callers must then run on defaults and
// skip persistence.
func DefaultConfigFile() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", ErrNoConfigPath
	}

	path := filepath.Join(filepath.Dir(exe), ConfigFileName)
	if runtimeVariant != "" {
		alt := variantConfigFile(path, runtimeVariant)
		if _, err := os.Stat(alt); err == nil {
			return alt, nil
		}
	}
	return path, nil
}

// variantConfigFile turns <dir>/css_config.xml into
// <dir>/css_config.<variant>.xml.
func variantConfigFile(path, variant string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "." + variant + ext
}
