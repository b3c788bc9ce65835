package docfill

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", config.LogLevel)
	}
	if config.MinAssetPadding != 25 {
		t.Errorf("MinAssetPadding = %d, want 25", config.MinAssetPadding)
	}
	if config.MinSectionPadding != 30 {
		t.Errorf("MinSectionPadding = %d, want 30", config.MinSectionPadding)
	}
	if config.StrictMode {
		t.Error("StrictMode should default to false")
	}
	if err := config.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("DOCFILL_LOG_LEVEL", "debug")
	t.Setenv("DOCFILL_MIN_ASSET_PADDING", "40")
	t.Setenv("DOCFILL_STRICT_MODE", "yes")

	config := ConfigFromEnvironment()

	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
	if config.MinAssetPadding != 40 {
		t.Errorf("MinAssetPadding = %d, want 40", config.MinAssetPadding)
	}
	if !config.StrictMode {
		t.Error("StrictMode should be enabled")
	}
}

func TestConfigFromEnvironmentIgnoresGarbage(t *testing.T) {
	t.Setenv("DOCFILL_MIN_ASSET_PADDING", "not-a-number")

	config := ConfigFromEnvironment()
	if config.MinAssetPadding != 25 {
		t.Errorf("MinAssetPadding = %d, want default 25", config.MinAssetPadding)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "zero asset padding", mutate: func(c *Config) { c.MinAssetPadding = 0 }, wantErr: true},
		{name: "negative margin", mutate: func(c *Config) { c.PaddingMargin = -1 }, wantErr: true},
		{name: "off level is valid", mutate: func(c *Config) { c.LogLevel = "off" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
