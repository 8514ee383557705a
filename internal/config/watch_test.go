package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/csscript/gocs/internal/config/notify"
)

func TestStartWatch_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "css_config.xml")
	if err := NewSettings().Save(path, WithStrict()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	n := notify.New()
	reloads := make(chan notify.Change, 4)
	n.Subscribe(func(c notify.Change) {
		if c.Type == notify.ChangeReload {
			reloads <- c
		}
	})

	fresh := make(chan *Settings, 4)
	w, err := StartWatch(path, n, func(s *Settings) { fresh <- s })
	if err != nil {
		t.Fatalf("StartWatch failed: %v", err)
	}
	defer w.Close()

	// Another invocation rewrites the shared file.
	changed := NewSettings()
	changed.Precompiler = "/opt/pre"
	if err := changed.Save(path, WithStrict()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	select {
	case s := <-fresh:
		if s.Precompiler != "/opt/pre" {
			t.Errorf("reloaded Precompiler = %q, want /opt/pre", s.Precompiler)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	select {
	case <-reloads:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for the reload notification")
	}
}
