package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML form of Config. Precision is a pointer so that an
// explicit 0 can be told apart from an absent key.
type FileConfig struct {
	LogLevel   string `toml:"log_level"`
	Format     string `toml:"format"`
	Precision  *int   `toml:"precision"`
	Overflow   string `toml:"overflow"`
	WASMModule string `toml:"wasm_module"`
}

// LoadFileConfig reads and parses a TOML config file. Unknown keys are an
// error so that typos do not go unnoticed.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.corgi/config.toml, or "" if the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".corgi", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("format", fc.Format, &cfg.Format)
	s.setInt("precision", fc.Precision, &cfg.Precision)
	s.setString("overflow", fc.Overflow, &cfg.Overflow)
	s.setString("module", fc.WASMModule, &cfg.WASMModule)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
