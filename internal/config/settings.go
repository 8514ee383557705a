package config

import (
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/csscript/gocs/internal/config/notify"
)

// Default values for settings with non-zero defaults.
const (
	DefaultArgumentsDefault = "-c -sconfig"
	DefaultSearchDirs       = "%CSSCRIPT_DIR%/lib;%CSSCRIPT_INC%;"
	DefaultConsoleEncoding  = "utf-8"
)

// HideOptions controls what the engine does with the files it generates
// next to a script during compilation.
type HideOptions uint8

const (
	// HideNone leaves auto-generated files in place.
	HideNone HideOptions = iota
	// HideAll moves every auto-generated file to the cache directory.
	HideAll
	// HideMostFiles keeps only the compiled assembly beside the script.
	HideMostFiles
)

var hideOptionNames = []string{"DoNotHide", "HideAll", "HideMostFiles"}

// String returns the member name written to the config file.
func (h HideOptions) String() string {
	if int(h) < len(hideOptionNames) {
		return hideOptionNames[h]
	}
	return "DoNotHide"
}

// ConcurrencyControl selects how concurrent invocations of the same
// script coordinate access to the compiled-assembly cache.
type ConcurrencyControl uint8

const (
	// ConcurrencyStandard serializes compilation with a file lock.
	ConcurrencyStandard ConcurrencyControl = iota
	// ConcurrencyHighResolution adds sub-second cache timestamps.
	ConcurrencyHighResolution
	// ConcurrencyNone performs no coordination.
	ConcurrencyNone
)

var concurrencyControlNames = []string{"Standard", "HighResolution", "None"}

// String returns the member name written to the config file.
func (c ConcurrencyControl) String() string {
	if int(c) < len(concurrencyControlNames) {
		return concurrencyControlNames[c]
	}
	return "Standard"
}

// Settings is a bag of current values for every known engine setting.
//
// A process normally holds a single live instance loaded from the default
// config file. Additional instances can be built in memory, but the
// environment-backed settings (Roslyn directory, custom temp directory,
// legacy timestamp caching) alias process-wide environment state and are
// therefore shared between instances regardless of how many exist.
//
// All operations are synchronous and perform no internal locking; callers
// that share an instance across goroutines must serialize access
// themselves (the engine loads and saves settings before spawning any
// concurrent script execution).
type Settings struct {
	// DefaultArguments is prepended to every engine invocation.
	DefaultArguments string

	// DefaultRefAssemblies lists assemblies referenced by every script.
	DefaultRefAssemblies string

	// SearchDirs is the probing path list for scripts and assemblies.
	SearchDirs string

	// UseAlternativeCompiler is the path of a compiler-server binary to
	// use instead of the built-in compiler. Empty selects the default.
	UseAlternativeCompiler string

	// ConsoleEncoding is the encoding applied to the process console.
	ConsoleEncoding string

	// InMemoryAssembly loads compiled assemblies from memory instead of
	// from the cache file.
	InMemoryAssembly bool

	// HideCompilerWarnings suppresses compiler warning output.
	HideCompilerWarnings bool

	// ReportDetailedErrorInfo includes full exception chains in script
	// error reports.
	ReportDetailedErrorInfo bool

	// HideAutoGenFiles controls placement of compilation by-products.
	HideAutoGenFiles HideOptions

	// AutoClassDecorateAlways wraps classless scripts even when they
	// already declare a class.
	AutoClassDecorateAlways bool

	// Precompiler is the path of a script precompiler to run before
	// compilation. Empty disables precompilation.
	Precompiler string

	// ConcurrencyControl selects the cache coordination mode.
	ConcurrencyControl ConcurrencyControl

	// OpenEndDirectiveSyntax allows //css_ directives without a
	// terminating semicolon. The directive parser mirrors this value
	// after every load; see WithPostLoad.
	OpenEndDirectiveSyntax bool

	// CustomHashing uses the engine's own content hash for cache keys
	// instead of file timestamps.
	CustomHashing bool

	notifier *notify.Notifier
}

// NewSettings returns a settings instance holding pure defaults.
func NewSettings() *Settings {
	return &Settings{
		DefaultArguments:       DefaultArgumentsDefault,
		SearchDirs:             DefaultSearchDirs,
		ConsoleEncoding:        DefaultConsoleEncoding,
		InMemoryAssembly:       true,
		HideAutoGenFiles:       HideAll,
		OpenEndDirectiveSyntax: true,
		CustomHashing:          true,
	}
}

// Bind attaches a change notifier. Subsequent dynamic Set calls and
// watcher-driven reloads publish changes through it. A nil notifier
// detaches.
func (s *Settings) Bind(n *notify.Notifier) {
	s.notifier = n
}

func (s *Settings) notifySet(name, old, new string) {
	if s.notifier != nil && old != new {
		s.notifier.NotifySet(name, old, new)
	}
}

// SearchDirList returns SearchDirs split into individual directories.
// Empty entries produced by trailing separators are dropped; the
// %VAR% placeholders are returned unexpanded.
func (s *Settings) SearchDirList() []string {
	var dirs []string
	for _, part := range strings.Split(s.SearchDirs, ";") {
		// A directory appended via add: arrives space-separated.
		for _, dir := range strings.Fields(part) {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs
}

// DefaultRefAssemblyList returns DefaultRefAssemblies split into
// individual assembly names.
func (s *Settings) DefaultRefAssemblyList() []string {
	return strings.Fields(strings.ReplaceAll(s.DefaultRefAssemblies, ";", " "))
}

// ValidateConsoleEncoding checks ConsoleEncoding against the IANA
// character set registry. Names and registered aliases are matched
// case-insensitively. Returns a PropertyError wrapping
// ErrUnknownEncoding for a name the registry does not know.
func (s *Settings) ValidateConsoleEncoding() error {
	if _, err := ianaindex.IANA.Encoding(s.ConsoleEncoding); err != nil {
		return &PropertyError{Name: "consoleEncoding", Value: s.ConsoleEncoding, Err: ErrUnknownEncoding}
	}
	return nil
}
