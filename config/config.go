// Package config reads graphlet.toml, the optional settings file for the
// language server and the HTTP endpoint.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const FileName = "graphlet.toml"

// Config holds every setting graphlet reads from disk. Zero values are never
// used directly: Default fills them and the file overrides what it names.
type Config struct {
	Path  string `toml:"-"`
	Log   Log    `toml:"log"`
	LSP   LSP    `toml:"lsp"`
	Serve Serve  `toml:"serve"`
}

// Log.Verbosity follows commonlog: 0 logs notices, each step up adds a
// level down to debug at 2, and -4 silences everything.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

type LSP struct {
	Name              string   `toml:"name"`
	TriggerCharacters []string `toml:"trigger_characters"`
	Transport         string   `toml:"transport"`
	Address           string   `toml:"address"`
}

type Serve struct {
	Addr string `toml:"addr"`
}

const (
	TransportStdio     = "stdio"
	TransportTCP       = "tcp"
	TransportWebSocket = "ws"
)

func Default() Config {
	return Config{
		LSP: LSP{
			Name:              "graphlet",
			TriggerCharacters: []string{">", "-", "[", "(", "{", "=", "."},
			Transport:         TransportStdio,
		},
		Serve: Serve{
			Addr: ":8080",
		},
	}
}

// Load looks for graphlet.toml in the current directory and its parents.
// A missing file is not an error; the defaults are returned.
func Load() (Config, error) {
	return LoadFrom(".")
}

func LoadFrom(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

// Find walks from startDir up to the filesystem root and returns the first
// graphlet.toml it sees.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// LoadFile decodes path on top of the defaults. Unknown keys are rejected so
// typos do not go unnoticed.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: parse toml: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.LSP.Transport {
	case TransportStdio:
	case TransportTCP, TransportWebSocket:
		if c.LSP.Address == "" {
			return fmt.Errorf("lsp transport %q needs an address", c.LSP.Transport)
		}
	default:
		return fmt.Errorf("unknown lsp transport %q (expected stdio, tcp or ws)", c.LSP.Transport)
	}
	if c.Log.Verbosity < -4 {
		return fmt.Errorf("log verbosity must be at least -4, got %d", c.Log.Verbosity)
	}
	return nil
}
