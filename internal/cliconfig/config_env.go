package cliconfig

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "CORGI_"

// ApplyEnvConfig applies CORGI_* environment variables to cfg, skipping
// flags in changed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("format", os.Getenv(EnvPrefix+"FORMAT"), &cfg.Format)
	s.setString("overflow", os.Getenv(EnvPrefix+"OVERFLOW"), &cfg.Overflow)
	s.setString("module", os.Getenv(EnvPrefix+"WASM_MODULE"), &cfg.WASMModule)

	if err := s.setIntFromString("precision", os.Getenv(EnvPrefix+"PRECISION"), &cfg.Precision); err != nil {
		return err
	}

	return nil
}
