package cliconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adenflorian/corgi.fm/pkg/arith"
)

// ErrInvalidConfig is returned when configuration validation fails.
var ErrInvalidConfig = errors.New("corgi: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// MaxPrecision is the largest number of decimal places accepted for
// frequency output. float64 carries at most 17 significant digits.
const MaxPrecision = 17

// Config holds CLI configuration for corgi.
type Config struct {
	LogLevel string
	Format   string

	// Precision is the number of decimal places printed for frequencies.
	// -1 prints the shortest representation that round-trips.
	Precision int

	// Overflow selects wrap, checked or saturate for the add command.
	Overflow string

	// WASMModule is the corgi-wasm module used by the wasm commands.
	WASMModule string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:  zerolog.WarnLevel.String(),
		Format:    FormatText,
		Precision: -1,
		Overflow:  string(arith.OverflowWrap),
	}
}

// Validate checks the configuration and normalises enum values.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = zerolog.WarnLevel.String()
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %v", ErrInvalidConfig, err)
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case "":
		c.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format must be %q or %q, got %q", ErrInvalidConfig, FormatText, FormatJSON, c.Format)
	}

	if c.Precision < -1 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision must be between -1 and %d, got %d", ErrInvalidConfig, MaxPrecision, c.Precision)
	}

	mode, err := arith.ParseOverflowMode(c.Overflow)
	if err != nil {
		return fmt.Errorf("%w: overflow: %v", ErrInvalidConfig, err)
	}
	c.Overflow = mode.String()

	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// OverflowMode returns the parsed overflow mode, falling back to wrap.
func (c Config) OverflowMode() arith.OverflowMode {
	mode, err := arith.ParseOverflowMode(c.Overflow)
	if err != nil {
		return arith.OverflowWrap
	}
	return mode
}

// configSetter applies values only when the corresponding flag was not
// set explicitly on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Zero and negative values are kept; precision uses both.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}
