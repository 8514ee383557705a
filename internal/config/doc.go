// Package config implements the settings subsystem of the gocs script
// engine: a named-property store controlling compiler selection, search
// paths, encoding, caching, and concurrency behavior.
//
// # Model
//
// Every setting is described by a static Descriptor carrying its
// canonical name, value type (string, boolean, or enum), default,
// storage kind, and persistence policy. The descriptor table is fixed
// at compile time; there is no runtime registration.
//
// A Settings instance holds the current values. Callers address
// settings by name through the dynamic path, with relaxed spelling
// (case and underscores are ignored, so "Default_Arguments" and
// "defaultarguments" are the same setting):
//
//	s := config.Load(path, config.WithCreateMissing())
//	err := s.Set("SearchDirs", "add:/opt/libs")
//	name, v, err := s.Get("searchdirs")
//
// List-like string settings accept the add:/del: amendment grammar;
// the amendment is applied against the current value at Set time, so
// the stored value is always the effective one.
//
// # Storage kinds
//
// Most settings are plain fields. A small set (RoslynDir,
// CustomTempDirectory, LegacyTimestampCaching) is backed by process
// environment variables instead, because the compilers and child
// processes the engine spawns can only inherit environment state. Those
// settings are process-wide: every instance in the process observes the
// same value, and nothing ever unsets them.
//
// # Persistence
//
// Settings persist to a css_config.xml document next to the engine
// executable, shared by all invocations. A fixed field set is always
// written; the remaining fields are written only when they differ from
// their defaults, keeping the file short for the common case. Save is
// best-effort unless WithStrict is given; Load never fails, degrading
// to defaults (or to nil when not asked to create them).
//
// # Sub-packages
//
//   - value: scalar codec and the add:/del: amendment grammar
//   - notify: change notification for engine components
//   - watcher: fsnotify-based live reload of the shared config file
//
// # Concurrency
//
// The subsystem itself performs no locking around settings fields, file
// I/O, or environment access. Concurrent Save/Load against the same
// file is last-writer-wins, and environment-backed settings are global
// mutable state. The engine loads and saves settings before spawning
// concurrent script execution; any other sharing must be serialized by
// the caller.
package config
