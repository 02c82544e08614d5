package wordml

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.LogLevel != "info" {
		t.Errorf("DefaultConfig LogLevel = %s, want info", config.LogLevel)
	}

	if config.StyleMapPath != "" {
		t.Errorf("DefaultConfig StyleMapPath = %q, want empty", config.StyleMapPath)
	}

	if config.DefaultParagraphStyle != "Normal" {
		t.Errorf("DefaultConfig DefaultParagraphStyle = %s, want Normal", config.DefaultParagraphStyle)
	}

	if config.DefaultCharacterStyle != "Default Paragraph Font" {
		t.Errorf("DefaultConfig DefaultCharacterStyle = %s, want Default Paragraph Font", config.DefaultCharacterStyle)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, config *Config)
	}{
		{
			name:    "log level",
			envVars: map[string]string{"WORDML_LOG_LEVEL": "debug"},
			check: func(t *testing.T, config *Config) {
				if config.LogLevel != "debug" {
					t.Errorf("LogLevel = %s, want debug", config.LogLevel)
				}
			},
		},
		{
			name:    "upper case log level",
			envVars: map[string]string{"WORDML_LOG_LEVEL": "DEBUG"},
			check: func(t *testing.T, config *Config) {
				if err := config.Validate(); err != nil {
					t.Errorf("Validate() = %v", err)
				}
				if ParseLogLevel(config.LogLevel) != LogDebug {
					t.Errorf("ParseLogLevel(%q) = %v", config.LogLevel, ParseLogLevel(config.LogLevel))
				}
			},
		},
		{
			name:    "style map",
			envVars: map[string]string{"WORDML_STYLE_MAP": "/etc/wordml/styles.yaml"},
			check: func(t *testing.T, config *Config) {
				if config.StyleMapPath != "/etc/wordml/styles.yaml" {
					t.Errorf("StyleMapPath = %s", config.StyleMapPath)
				}
			},
		},
		{
			name: "default style names",
			envVars: map[string]string{
				"WORDML_DEFAULT_PARAGRAPH_STYLE": "Standard",
				"WORDML_DEFAULT_CHARACTER_STYLE": "Absatz-Standardschriftart",
			},
			check: func(t *testing.T, config *Config) {
				if config.DefaultParagraphStyle != "Standard" {
					t.Errorf("DefaultParagraphStyle = %s, want Standard", config.DefaultParagraphStyle)
				}
				if config.DefaultCharacterStyle != "Absatz-Standardschriftart" {
					t.Errorf("DefaultCharacterStyle = %s", config.DefaultCharacterStyle)
				}
			},
		},
		{
			name:    "unset variables keep defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, config *Config) {
				if config.LogLevel != "info" || config.DefaultParagraphStyle != "Normal" {
					t.Errorf("unexpected config %+v", config)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"WORDML_LOG_LEVEL", "WORDML_STYLE_MAP", "WORDML_DEFAULT_PARAGRAPH_STYLE", "WORDML_DEFAULT_CHARACTER_STYLE"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			tt.check(t, ConfigFromEnvironment())
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"off level", func(c *Config) { c.LogLevel = "off" }, false},
		{"upper case level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"padded level", func(c *Config) { c.LogLevel = " warn " }, false},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"empty paragraph default", func(c *Config) { c.DefaultParagraphStyle = "" }, true},
		{"empty character default", func(c *Config) { c.DefaultCharacterStyle = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGlobalConfigIsCopied(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	config := DefaultConfig()
	config.LogLevel = "error"
	SetGlobalConfig(config)

	got := GetGlobalConfig()
	got.LogLevel = "debug"
	if GetGlobalConfig().LogLevel != "error" {
		t.Error("GetGlobalConfig returned a shared pointer")
	}
	if GetLogger().Level() != LogError {
		t.Error("logger level not updated from config")
	}
}
