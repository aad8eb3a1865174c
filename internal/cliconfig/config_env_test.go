package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"CORGI_LOG_LEVEL":   "debug",
				"CORGI_FORMAT":      "json",
				"CORGI_PRECISION":   "4",
				"CORGI_OVERFLOW":    "checked",
				"CORGI_WASM_MODULE": "/opt/corgi.wasm",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				LogLevel:   "debug",
				Format:     "json",
				Precision:  4,
				Overflow:   "checked",
				WASMModule: "/opt/corgi.wasm",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"CORGI_FORMAT":    "json",
				"CORGI_PRECISION": "2",
			},
			changed: map[string]bool{"format": true},
			initial: Config{Format: "text", Precision: -1},
			expected: Config{
				Format:    "text",
				Precision: 2,
			},
		},
		{
			name: "precision zero is applied",
			envVars: map[string]string{
				"CORGI_PRECISION": "0",
			},
			changed:  map[string]bool{},
			initial:  Config{Precision: -1},
			expected: Config{Precision: 0},
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"CORGI_PRECISION": "many",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:     "no env leaves config untouched",
			envVars:  map[string]string{},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"LOG_LEVEL", "FORMAT", "PRECISION", "OVERFLOW", "WASM_MODULE"} {
				t.Setenv(EnvPrefix+k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Precedence: flags > env > file > defaults.
func TestConfigPrecedence(t *testing.T) {
	precision := 2
	fileConf := FileConfig{
		LogLevel:   "info",
		Format:     "json",
		Precision:  &precision,
		WASMModule: "/file/corgi.wasm",
	}

	t.Setenv("CORGI_LOG_LEVEL", "")
	t.Setenv("CORGI_PRECISION", "")
	t.Setenv("CORGI_WASM_MODULE", "")
	t.Setenv("CORGI_FORMAT", "text")
	t.Setenv("CORGI_OVERFLOW", "saturate")

	changed := map[string]bool{"overflow": true}

	cfg := DefaultConfig()
	cfg.Overflow = "checked"

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.Overflow != "checked" {
		t.Errorf("Overflow = %v, want checked (flag should win)", cfg.Overflow)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text (env should override file)", cfg.Format)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info (file should set)", cfg.LogLevel)
	}
	if cfg.Precision != 2 {
		t.Errorf("Precision = %v, want 2 (file should set)", cfg.Precision)
	}
	if cfg.WASMModule != "/file/corgi.wasm" {
		t.Errorf("WASMModule = %v, want /file/corgi.wasm", cfg.WASMModule)
	}
}
