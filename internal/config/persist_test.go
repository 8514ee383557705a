package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoad_RoundTripDefaults(t *testing.T) {
	t.Setenv(EnvCustomTempDir, "")
	path := filepath.Join(t.TempDir(), "css_config.xml")

	defaults := NewSettings()
	if err := defaults.Save(path, WithStrict()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load(path)
	if loaded == nil {
		t.Fatal("Load returned no settings")
	}

	for _, d := range AllDescriptors() {
		if got, want := d.Value(loaded), d.Value(defaults); got != want {
			t.Errorf("%s = %q after round trip, want %q", d.Name, got, want)
		}
	}
}

func TestSave_SelectivePersistence(t *testing.T) {
	t.Setenv(EnvCustomTempDir, "")
	path := filepath.Join(t.TempDir(), "css_config.xml")

	if err := NewSettings().Save(path, WithStrict()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)

	always := []string{
		"defaultArguments", "defaultRefAssemblies", "searchDirs",
		"useAlternativeCompiler", "consoleEncoding", "inMemoryAssembly",
		"hideCompilerWarnings", "reportDetailedErrorInfo",
	}
	for _, name := range always {
		if !strings.Contains(content, "<"+name+">") && !strings.Contains(content, "<"+name+"/>") {
			t.Errorf("unconditional field %s missing from file:\n%s", name, content)
		}
	}

	conditional := []string{
		"hideAutoGenFiles", "autoClassDecorateAlways", "customTempDirectory",
		"precompiler", "concurrencyControl", "openEndDirectiveSyntax", "customHashing",
	}
	for _, name := range conditional {
		if strings.Contains(content, "<"+name) {
			t.Errorf("conditional field %s written at its default:\n%s", name, content)
		}
	}

	// Env-only settings never reach the file.
	for _, name := range []string{"roslynDir", "legacyTimestampCaching"} {
		if strings.Contains(content, name) {
			t.Errorf("env-only field %s written to file", name)
		}
	}
}

func TestSave_NonDefaultConditionalFields(t *testing.T) {
	t.Setenv(EnvCustomTempDir, "")
	path := filepath.Join(t.TempDir(), "css_config.xml")

	s := NewSettings()
	s.ConcurrencyControl = ConcurrencyNone
	s.HideAutoGenFiles = HideNone
	s.OpenEndDirectiveSyntax = false
	if err := s.Save(path, WithStrict()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load(path)
	if loaded == nil {
		t.Fatal("Load returned no settings")
	}
	if loaded.ConcurrencyControl != ConcurrencyNone {
		t.Errorf("ConcurrencyControl = %v, want None", loaded.ConcurrencyControl)
	}
	if loaded.HideAutoGenFiles != HideNone {
		t.Errorf("HideAutoGenFiles = %v, want DoNotHide", loaded.HideAutoGenFiles)
	}
	if loaded.OpenEndDirectiveSyntax {
		t.Error("OpenEndDirectiveSyntax = true, want false")
	}
	// Untouched conditional fields stay default after reload.
	if !loaded.CustomHashing {
		t.Error("CustomHashing lost its default")
	}
}

func TestSave_Comments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "css_config.xml")

	if err := NewSettings().Save(path, WithStrict()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "<!--") {
		t.Fatal("expected explanatory comments in the file")
	}
	if !strings.Contains(content, fieldComments["searchDirs"]) {
		t.Error("searchDirs comment missing")
	}
}

func TestSave_BestEffortByDefault(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "css_config.xml")

	if err := NewSettings().Save(bad); err != nil {
		t.Errorf("best-effort Save returned %v, want nil", err)
	}

	err := NewSettings().Save(bad, WithStrict())
	var pe *PersistError
	if !errors.As(err, &pe) {
		t.Fatalf("strict Save err = %v, want *PersistError", err)
	}
	if pe.Op != "save" {
		t.Errorf("PersistError.Op = %q, want %q", pe.Op, "save")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "css_config.xml")

	if s := Load(path); s != nil {
		t.Error("Load without WithCreateMissing should return nil for a missing file")
	}

	s := Load(path, WithCreateMissing())
	if s == nil {
		t.Fatal("Load with WithCreateMissing returned nil")
	}
	if s.SearchDirs != DefaultSearchDirs {
		t.Errorf("SearchDirs = %q, want default", s.SearchDirs)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults were not written back: %v", err)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "css_config.xml")
	if err := os.WriteFile(path, []byte("<CS-Script><broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if s := Load(path); s != nil {
		t.Error("corrupt file without WithCreateMissing should yield nil")
	}
	if s := Load(path, WithCreateMissing()); s == nil {
		t.Error("corrupt file with WithCreateMissing should yield defaults")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	s := Load("")
	if s == nil {
		t.Fatal("empty path should yield defaults")
	}
	if s.ConsoleEncoding != DefaultConsoleEncoding {
		t.Errorf("ConsoleEncoding = %q, want default", s.ConsoleEncoding)
	}
}

func TestLoad_CaseInsensitiveElements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "css_config.xml")
	doc := `<?xml version="1.0"?>
<CS-Script>
    <SEARCHDIRS>/one;/two</SEARCHDIRS>
    <Hide_Compiler_Warnings>true</Hide_Compiler_Warnings>
    <somethingUnknown>ignored</somethingUnknown>
    <inMemoryAssembly>banana</inMemoryAssembly>
</CS-Script>`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Load(path)
	if s == nil {
		t.Fatal("Load returned no settings")
	}
	if s.SearchDirs != "/one;/two" {
		t.Errorf("SearchDirs = %q, want overlay from file", s.SearchDirs)
	}
	if !s.HideCompilerWarnings {
		t.Error("HideCompilerWarnings should be overlaid from the file")
	}
	// A malformed value keeps the default.
	if !s.InMemoryAssembly {
		t.Error("InMemoryAssembly should keep its default on a malformed value")
	}
}

func TestLoad_PostLoadHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "css_config.xml")
	s := NewSettings()
	s.OpenEndDirectiveSyntax = false
	if err := s.Save(path, WithStrict()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	mirrored := true
	loaded := Load(path, WithPostLoad(func(s *Settings) {
		mirrored = s.OpenEndDirectiveSyntax
	}))
	if loaded == nil {
		t.Fatal("Load returned no settings")
	}
	if mirrored {
		t.Error("post-load hook did not observe the loaded value")
	}
}

func TestLoad_RelativePathAgainstExecutableDir(t *testing.T) {
	dir := t.TempDir()
	restore := setExecutable(t, filepath.Join(dir, "gocs"))
	defer restore()

	s := NewSettings()
	s.Precompiler = "/opt/pre"
	if err := s.Save(filepath.Join(dir, "css_config.xml"), WithStrict()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Relative name, not present in the working directory: resolved
	// against the executable's directory.
	loaded := Load("css_config.xml")
	if loaded == nil {
		t.Fatal("Load returned no settings")
	}
	if loaded.Precompiler != "/opt/pre" {
		t.Errorf("Precompiler = %q, want value from exe-dir file", loaded.Precompiler)
	}
}
