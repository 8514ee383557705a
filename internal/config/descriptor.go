package config

import (
	"github.com/csscript/gocs/internal/config/value"
)

// ValueType is the data type of a setting reachable through the dynamic
// name-based path. Only these three types are settable by name; settings
// of any other shape are reachable only through their typed accessors.
type ValueType uint8

const (
	// TypeString represents a free-form or list-like string value.
	TypeString ValueType = iota
	// TypeBool represents a "true"/"false" value.
	TypeBool
	// TypeEnum represents a value from a fixed member set.
	TypeEnum
)

// String returns the type name.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "boolean"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Storage identifies where a setting's authoritative value lives.
type Storage uint8

const (
	// StorageField stores the value on the Settings instance.
	StorageField Storage = iota
	// StorageEnvironment stores the value in a process environment
	// variable, making it process-wide state shared by all instances.
	StorageEnvironment
)

// PersistPolicy controls whether Save writes a setting to the config
// file.
type PersistPolicy uint8

const (
	// PersistAlways writes the setting unconditionally.
	PersistAlways PersistPolicy = iota
	// PersistNonDefault writes the setting only when its value differs
	// from the default, keeping the file minimal for the common case.
	PersistNonDefault
	// PersistNever keeps the setting out of the config file entirely.
	PersistNever
)

// Descriptor is the static metadata for one named setting: its type,
// default, storage kind, persistence policy, and typed accessor
// closures. The descriptor set is a compile-time constant; there is no
// runtime registration.
type Descriptor struct {
	// Name is the canonical property name, also used as the config file
	// element name.
	Name string

	// Type is the setting's value type.
	Type ValueType

	// Storage is the setting's storage kind.
	Storage Storage

	// Persist is the setting's persistence policy.
	Persist PersistPolicy

	// Amendable marks list-like string settings that accept the
	// add:/del: value grammar.
	Amendable bool

	// Default is the default value in its textual form, used by the
	// PersistNonDefault policy.
	Default string

	// Enum lists the member names for enum-typed settings.
	Enum []string

	// Category and Description document the setting. Neither has any
	// runtime effect.
	Category    string
	Description string

	get func(s *Settings) string
	set func(s *Settings, text string) error
}

// Value returns the current value of this setting on s, formatted as
// plain text.
func (d *Descriptor) Value(s *Settings) string {
	return d.get(s)
}

// IsDefault reports whether the setting currently holds its default
// value on s.
func (d *Descriptor) IsDefault(s *Settings) bool {
	return d.get(s) == d.Default
}

func stringProp(get func(*Settings) string, set func(*Settings, string)) (func(*Settings) string, func(*Settings, string) error) {
	return get, func(s *Settings, text string) error {
		set(s, text)
		return nil
	}
}

func boolProp(get func(*Settings) bool, set func(*Settings, bool)) (func(*Settings) string, func(*Settings, string) error) {
	return func(s *Settings) string {
			return formatBool(get(s))
		}, func(s *Settings, text string) error {
			b, err := value.ParseBool(text)
			if err != nil {
				return ErrInvalidBooleanValue
			}
			set(s, b)
			return nil
		}
}

func enumProp(members []string, get func(*Settings) int, set func(*Settings, int)) (func(*Settings) string, func(*Settings, string) error) {
	return func(s *Settings) string {
			return members[get(s)]
		}, func(s *Settings, text string) error {
			i, err := value.ParseEnum(text, members)
			if err != nil {
				return ErrInvalidEnumValue
			}
			set(s, i)
			return nil
		}
}

func newDescriptor(name string, t ValueType, d Descriptor) *Descriptor {
	d.Name = name
	d.Type = t
	return &d
}

// descriptors is the full property table in config file order.
var descriptors = buildDescriptors()

// descriptorIndex maps normalized names to descriptors.
var descriptorIndex = buildIndex(descriptors)

func buildIndex(all []*Descriptor) map[string]*Descriptor {
	index := make(map[string]*Descriptor, len(all))
	for _, d := range all {
		index[normalizeName(d.Name)] = d
	}
	return index
}

func buildDescriptors() []*Descriptor {
	var table []*Descriptor

	add := func(d *Descriptor) {
		table = append(table, d)
	}

	{
		get, set := stringProp(
			func(s *Settings) string { return s.DefaultArguments },
			func(s *Settings, v string) { s.DefaultArguments = v })
		add(newDescriptor("defaultArguments", TypeString, Descriptor{
			Amendable:   true,
			Default:     DefaultArgumentsDefault,
			Category:    "execution",
			Description: "Arguments prepended to every engine invocation.",
			get:         get, set: set,
		}))
	}
	{
		get, set := stringProp(
			func(s *Settings) string { return s.DefaultRefAssemblies },
			func(s *Settings, v string) { s.DefaultRefAssemblies = v })
		add(newDescriptor("defaultRefAssemblies", TypeString, Descriptor{
			Amendable:   true,
			Category:    "compilation",
			Description: "Assemblies referenced by every script.",
			get:         get, set: set,
		}))
	}
	{
		get, set := stringProp(
			func(s *Settings) string { return s.SearchDirs },
			func(s *Settings, v string) { s.SearchDirs = v })
		add(newDescriptor("searchDirs", TypeString, Descriptor{
			Amendable:   true,
			Default:     DefaultSearchDirs,
			Category:    "compilation",
			Description: "Probing directories for scripts and assemblies.",
			get:         get, set: set,
		}))
	}
	{
		get, set := stringProp(
			func(s *Settings) string { return s.UseAlternativeCompiler },
			func(s *Settings, v string) { s.UseAlternativeCompiler = v })
		add(newDescriptor("useAlternativeCompiler", TypeString, Descriptor{
			Category:    "compilation",
			Description: "Path of an alternative compiler-server binary.",
			get:         get, set: set,
		}))
	}
	{
		get, set := stringProp(
			func(s *Settings) string { return s.ConsoleEncoding },
			func(s *Settings, v string) { s.ConsoleEncoding = v })
		add(newDescriptor("consoleEncoding", TypeString, Descriptor{
			Default:     DefaultConsoleEncoding,
			Category:    "execution",
			Description: "Encoding applied to the process console.",
			get:         get, set: set,
		}))
	}
	{
		get, set := boolProp(
			func(s *Settings) bool { return s.InMemoryAssembly },
			func(s *Settings, v bool) { s.InMemoryAssembly = v })
		add(newDescriptor("inMemoryAssembly", TypeBool, Descriptor{
			Default:     "true",
			Category:    "execution",
			Description: "Load compiled assemblies from memory.",
			get:         get, set: set,
		}))
	}
	{
		get, set := boolProp(
			func(s *Settings) bool { return s.HideCompilerWarnings },
			func(s *Settings, v bool) { s.HideCompilerWarnings = v })
		add(newDescriptor("hideCompilerWarnings", TypeBool, Descriptor{
			Default:     "false",
			Category:    "compilation",
			Description: "Suppress compiler warning output.",
			get:         get, set: set,
		}))
	}
	{
		get, set := boolProp(
			func(s *Settings) bool { return s.ReportDetailedErrorInfo },
			func(s *Settings, v bool) { s.ReportDetailedErrorInfo = v })
		add(newDescriptor("reportDetailedErrorInfo", TypeBool, Descriptor{
			Default:     "false",
			Category:    "execution",
			Description: "Include full exception chains in error reports.",
			get:         get, set: set,
		}))
	}
	{
		get, set := enumProp(hideOptionNames,
			func(s *Settings) int { return int(s.HideAutoGenFiles) },
			func(s *Settings, i int) { s.HideAutoGenFiles = HideOptions(i) })
		add(newDescriptor("hideAutoGenFiles", TypeEnum, Descriptor{
			Persist:     PersistNonDefault,
			Default:     HideAll.String(),
			Enum:        hideOptionNames,
			Category:    "compilation",
			Description: "Placement of auto-generated compilation files.",
			get:         get, set: set,
		}))
	}
	{
		get, set := boolProp(
			func(s *Settings) bool { return s.AutoClassDecorateAlways },
			func(s *Settings, v bool) { s.AutoClassDecorateAlways = v })
		add(newDescriptor("autoClassDecorateAlways", TypeBool, Descriptor{
			Persist:     PersistNonDefault,
			Default:     "false",
			Category:    "compilation",
			Description: "Always wrap scripts in the auto-class decoration.",
			get:         get, set: set,
		}))
	}
	{
		get, set := stringProp(
			func(s *Settings) string { return s.CustomTempDirectory() },
			func(s *Settings, v string) { s.SetCustomTempDirectory(v) })
		add(newDescriptor("customTempDirectory", TypeString, Descriptor{
			Storage:     StorageEnvironment,
			Persist:     PersistNonDefault,
			Category:    "execution",
			Description: "Custom temp/cache directory (environment-backed).",
			get:         get, set: set,
		}))
	}
	{
		get, set := stringProp(
			func(s *Settings) string { return s.Precompiler },
			func(s *Settings, v string) { s.Precompiler = v })
		add(newDescriptor("precompiler", TypeString, Descriptor{
			Persist:     PersistNonDefault,
			Category:    "compilation",
			Description: "Path of a script precompiler.",
			get:         get, set: set,
		}))
	}
	{
		get, set := enumProp(concurrencyControlNames,
			func(s *Settings) int { return int(s.ConcurrencyControl) },
			func(s *Settings, i int) { s.ConcurrencyControl = ConcurrencyControl(i) })
		add(newDescriptor("concurrencyControl", TypeEnum, Descriptor{
			Persist:     PersistNonDefault,
			Default:     ConcurrencyStandard.String(),
			Enum:        concurrencyControlNames,
			Category:    "execution",
			Description: "Cache coordination mode for concurrent invocations.",
			get:         get, set: set,
		}))
	}
	{
		get, set := boolProp(
			func(s *Settings) bool { return s.OpenEndDirectiveSyntax },
			func(s *Settings, v bool) { s.OpenEndDirectiveSyntax = v })
		add(newDescriptor("openEndDirectiveSyntax", TypeBool, Descriptor{
			Persist:     PersistNonDefault,
			Default:     "true",
			Category:    "parsing",
			Description: "Allow //css_ directives without a closing semicolon.",
			get:         get, set: set,
		}))
	}
	{
		get, set := boolProp(
			func(s *Settings) bool { return s.CustomHashing },
			func(s *Settings, v bool) { s.CustomHashing = v })
		add(newDescriptor("customHashing", TypeBool, Descriptor{
			Persist:     PersistNonDefault,
			Default:     "true",
			Category:    "execution",
			Description: "Use content hashing for compiled-script cache keys.",
			get:         get, set: set,
		}))
	}
	{
		get, set := stringProp(
			func(s *Settings) string { return s.RoslynDir() },
			func(s *Settings, v string) { s.SetRoslynDir(v) })
		add(newDescriptor("roslynDir", TypeString, Descriptor{
			Storage:     StorageEnvironment,
			Persist:     PersistNever,
			Category:    "compilation",
			Description: "Alternative compiler directory (environment-backed).",
			get:         get, set: set,
		}))
	}
	{
		get, set := boolProp(
			func(s *Settings) bool { return s.LegacyTimestampCaching() },
			func(s *Settings, v bool) { s.SetLegacyTimestampCaching(v) })
		add(newDescriptor("legacyTimestampCaching", TypeBool, Descriptor{
			Storage:     StorageEnvironment,
			Persist:     PersistNever,
			Default:     "false",
			Category:    "execution",
			Description: "Timestamp-based cache validation (environment-backed).",
			get:         get, set: set,
		}))
	}

	return table
}
