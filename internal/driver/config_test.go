package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, text string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[resolve]
max_diagnostics = 8
jobs = 2
show_traces = true

[cache]
enabled = true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Resolve.MaxDiagnostics != 8 || cfg.Resolve.Jobs != 2 || !cfg.Resolve.ShowTraces {
		t.Errorf("resolve section: %+v", cfg.Resolve)
	}
	if !cfg.Cache.Enabled {
		t.Errorf("cache section: %+v", cfg.Cache)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Resolve.MaxDiagnostics != DefaultConfig().Resolve.MaxDiagnostics {
		t.Errorf("max diagnostics default: %d", cfg.Resolve.MaxDiagnostics)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should default to disabled")
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindConfig(nested)
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %s, want manifest in %s", path, root)
	}
}

func TestLoadConfigFromWithoutManifest(t *testing.T) {
	cfg, err := LoadConfigFrom(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}
