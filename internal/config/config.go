package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the project-level config file
const FileName = ".bennu.json"

// Config represents the full Bennu configuration
type Config struct {
	Auth          AuthConfig          `json:"auth"`
	Accessibility AccessibilityConfig `json:"accessibility"`
	Tasks         TasksConfig         `json:"tasks"`
	Log           LogConfig           `json:"log"`
}

// AuthConfig contains the hosted auth provider settings
type AuthConfig struct {
	URL         string `json:"url"`
	AnonKey     string `json:"anonKey"`
	TimeoutMs   int    `json:"timeoutMs"`
	SessionFile string `json:"sessionFile"`
}

// Timeout returns TimeoutMs as a duration
func (a AuthConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutMs) * time.Millisecond
}

// AccessibilityConfig holds the initial view settings
type AccessibilityConfig struct {
	FontSize      string `json:"fontSize"`
	ColorScheme   string `json:"colorScheme"`
	Density       string `json:"density"`
	ReducedMotion bool   `json:"reducedMotion"`
}

// TasksConfig contains task list behaviour
type TasksConfig struct {
	DefaultSort    string `json:"defaultSort"`
	DefaultFilter  string `json:"defaultFilter"`
	SearchPolicy   string `json:"searchPolicy"`
	SkipSampleData bool   `json:"skipSampleData"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// HomeDir returns ~/.bennu, falling back to a relative path
func HomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".bennu"
	}
	return filepath.Join(homeDir, ".bennu")
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	base := HomeDir()

	return &Config{
		Auth: AuthConfig{
			TimeoutMs:   10000,
			SessionFile: filepath.Join(base, "session.json"),
		},
		Accessibility: AccessibilityConfig{
			FontSize:    "medium",
			ColorScheme: "default",
			Density:     "comfortable",
		},
		Tasks: TasksConfig{
			DefaultSort:   "priority",
			DefaultFilter: "all",
			SearchPolicy:  "combine",
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(base, "logs", "bennu.log"),
		},
	}
}

// LoadConfig loads configuration from dir with priority:
// 1. .bennu.json (with version migration support)
// 2. package.json "bennu" key
// 3. Defaults
// Flags and environment variables are layered on top by the caller.
func LoadConfig(dir string) (*Config, error) {
	bennuPath := filepath.Join(dir, FileName)
	if data, err := os.ReadFile(bennuPath); err == nil {
		cfg, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
		return MergeWithDefaults(cfg), nil
	}

	packagePath := filepath.Join(dir, "package.json")
	if data, err := os.ReadFile(packagePath); err == nil {
		var packageJSON struct {
			Bennu json.RawMessage `json:"bennu"`
		}
		if err := json.Unmarshal(data, &packageJSON); err == nil && packageJSON.Bennu != nil {
			cfg, err := ParseVersionedConfig(packageJSON.Bennu)
			if err != nil {
				return nil, fmt.Errorf("failed to parse package.json bennu config: %w", err)
			}
			return MergeWithDefaults(cfg), nil
		}
	}

	return DefaultConfig(), nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Auth
	if cfg.Auth.TimeoutMs == 0 {
		cfg.Auth.TimeoutMs = defaults.Auth.TimeoutMs
	}
	if cfg.Auth.SessionFile == "" {
		cfg.Auth.SessionFile = defaults.Auth.SessionFile
	}

	// Accessibility
	if cfg.Accessibility.FontSize == "" {
		cfg.Accessibility.FontSize = defaults.Accessibility.FontSize
	}
	if cfg.Accessibility.ColorScheme == "" {
		cfg.Accessibility.ColorScheme = defaults.Accessibility.ColorScheme
	}
	if cfg.Accessibility.Density == "" {
		cfg.Accessibility.Density = defaults.Accessibility.Density
	}

	// Tasks
	if cfg.Tasks.DefaultSort == "" {
		cfg.Tasks.DefaultSort = defaults.Tasks.DefaultSort
	}
	if cfg.Tasks.DefaultFilter == "" {
		cfg.Tasks.DefaultFilter = defaults.Tasks.DefaultFilter
	}
	if cfg.Tasks.SearchPolicy == "" {
		cfg.Tasks.SearchPolicy = defaults.Tasks.SearchPolicy
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
