package fixture

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Stream is one [[stream]] table: a labeled token stream bound to a
// resolve context.
type Stream struct {
	Name    string   `toml:"name"`
	Context string   `toml:"context"`
	Tokens  []string `toml:"tokens"`
}

// File is a decoded fixture file.
type File struct {
	Streams []Stream `toml:"stream"`
}

// Load parses a fixture file from disk.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &f, nil
}

// Parse parses fixture file contents.
func Parse(data []byte) (*File, error) {
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return &f, nil
}
