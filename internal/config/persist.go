package config

import (
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// rootElement is the single root of the config document.
const rootElement = "CS-Script"

// fieldComments holds the explanatory comment emitted immediately
// before selected elements when saving.
var fieldComments = map[string]string{
	"searchDirs":             "';'-separated directories probed for scripts and referenced assemblies",
	"inMemoryAssembly":       "execute compiled assemblies from memory without writing them to disk",
	"hideAutoGenFiles":       "DoNotHide | HideAll | HideMostFiles",
	"concurrencyControl":     "Standard | HighResolution | None",
	"openEndDirectiveSyntax": "allow //css_ directives without a closing ';'",
	"customHashing":          "use content hashing instead of timestamps for cache validation",
}

type saveOptions struct {
	strict bool
}

// SaveOption configures a Save call.
type SaveOption func(*saveOptions)

// WithStrict makes Save propagate I/O errors instead of swallowing
// them. By default persistence is best-effort: a read-only install must
// not crash the host engine.
func WithStrict() SaveOption {
	return func(o *saveOptions) {
		o.strict = true
	}
}

// Save serializes the settings to path as an XML document with one
// setting per line. Settings with the PersistNonDefault policy are
// written only when their value differs from the default; PersistNever
// settings are skipped entirely. The file is written to a temp sibling
// and renamed into place.
//
// Errors are swallowed unless WithStrict is given.
func (s *Settings) Save(path string, opts ...SaveOption) error {
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}

	err := s.save(path)
	if err != nil && o.strict {
		return &PersistError{Path: path, Op: "save", Err: err}
	}
	return nil
}

func (s *Settings) save(path string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement(rootElement)

	for _, d := range descriptors {
		switch d.Persist {
		case PersistNever:
			continue
		case PersistNonDefault:
			if d.IsDefault(s) {
				continue
			}
		}
		if comment, ok := fieldComments[d.Name]; ok {
			root.CreateComment(" " + comment + " ")
		}
		root.CreateElement(d.Name).SetText(d.Value(s))
	}

	doc.Indent(4)
	data, err := doc.WriteToBytes()
	if err != nil {
		return err
	}

	// Write-then-rename so a racing reader never sees a torn file.
	tmp := path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

type loadOptions struct {
	createMissing bool
	postLoad      func(*Settings)
}

// LoadOption configures a Load call.
type LoadOption func(*loadOptions)

// WithCreateMissing makes Load fall back to defaults when the file is
// missing or unreadable, and best-effort write the defaults back to the
// requested path. Without it, Load returns nil ("no settings") instead.
func WithCreateMissing() LoadOption {
	return func(o *loadOptions) {
		o.createMissing = true
	}
}

// WithPostLoad registers a hook invoked with the resulting instance
// before Load returns. The engine uses it to mirror
// OpenEndDirectiveSyntax into the directive parser; keeping the
// propagation in a caller-supplied hook makes that cross-component
// dependency explicit.
func WithPostLoad(fn func(*Settings)) LoadOption {
	return func(o *loadOptions) {
		o.postLoad = fn
	}
}

// Load reads settings from path, overlaying any recognized elements on
// the defaults. Element names are matched like property names, ignoring
// case and underscores; unrecognized elements and unparseable values
// are ignored; missing elements keep their defaults.
//
// An empty path yields defaults. A relative path that does not resolve
// as given is retried against the running executable's directory. Load
// never fails: a missing or corrupt file degrades to defaults when
// WithCreateMissing is set, and to nil ("no settings") otherwise, so
// the engine can always start.
func Load(path string, opts ...LoadOption) *Settings {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	finish := func(s *Settings) *Settings {
		if s != nil && o.postLoad != nil {
			o.postLoad(s)
		}
		return s
	}

	if path == "" {
		return finish(NewSettings())
	}

	s, err := parseFile(resolvePath(path))
	if err != nil {
		if !o.createMissing {
			return nil
		}
		// An unreadable file is replaced with the written-back defaults;
		// in this mode the engine must always end up with a usable config.
		s = NewSettings()
		s.Save(path)
		return finish(s)
	}
	return finish(s)
}

// resolvePath retries a not-found relative path against the directory
// of the running executable.
func resolvePath(path string) string {
	if _, err := os.Stat(path); err == nil || filepath.IsAbs(path) {
		return path
	}
	exe, err := executable()
	if err != nil {
		return path
	}
	return filepath.Join(filepath.Dir(exe), path)
}

func parseFile(path string) (*Settings, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, &PersistError{Path: path, Op: "load", Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &PersistError{Path: path, Op: "parse", Err: os.ErrInvalid}
	}

	s := NewSettings()
	for _, el := range root.ChildElements() {
		d, ok := Lookup(el.Tag)
		if !ok {
			continue
		}
		// A malformed value keeps the default rather than failing the
		// whole load.
		_ = d.set(s, el.Text())
	}
	return s, nil
}
