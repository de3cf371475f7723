package fixture

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFixture = `
[[stream]]
name = "shared prefix"
context = "decls"
tokens = [
    "dir input",
    "type logic",
    "range 7:0",
    "ident a",
    "comma",
    "ident b",
]

[[stream]]
context = "module_items"
tokens = ["ident fifo", "ident f0", "args clk=clk"]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleFixture))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(f.Streams) != 2 {
		t.Fatalf("streams: got %d, want 2", len(f.Streams))
	}
	first := f.Streams[0]
	if first.Name != "shared prefix" || first.Context != "decls" {
		t.Errorf("header: got %q / %q", first.Name, first.Context)
	}
	if len(first.Tokens) != 6 {
		t.Errorf("tokens: got %d, want 6", len(first.Tokens))
	}
	if f.Streams[1].Name != "" {
		t.Errorf("name should default to empty, got %q", f.Streams[1].Name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := os.WriteFile(path, []byte(sampleFixture), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(f.Streams) != 2 {
		t.Fatalf("streams: got %d, want 2", len(f.Streams))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseContext(t *testing.T) {
	for name, want := range contextNames {
		got, ok := ParseContext(name)
		if !ok || got != want {
			t.Errorf("ParseContext(%q): got %v, %v", name, got, ok)
		}
		if got.String() != name {
			t.Errorf("round trip: got %q, want %q", got.String(), name)
		}
	}
	if _, ok := ParseContext("statements"); ok {
		t.Error("unknown context accepted")
	}
}
