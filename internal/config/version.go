package config

import (
	"encoding/json"
	"fmt"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 1

// VersionedConfig wraps a Config with a version field for migrations
type VersionedConfig struct {
	Version int     `json:"version"`
	Config  *Config `json:"config,omitempty"`
}

// Migration represents a config migration function
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]interface{}) (map[string]interface{}, error)
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// Migration 0 -> 1: flat provider keys move under "auth", "theme" becomes
	// accessibility.colorScheme
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			auth, _ := data["auth"].(map[string]interface{})
			if auth == nil {
				auth = make(map[string]interface{})
			}
			if url, ok := data["supabaseUrl"]; ok {
				if _, set := auth["url"]; !set {
					auth["url"] = url
				}
				delete(data, "supabaseUrl")
			}
			if key, ok := data["supabaseAnonKey"]; ok {
				if _, set := auth["anonKey"]; !set {
					auth["anonKey"] = key
				}
				delete(data, "supabaseAnonKey")
			}
			if len(auth) > 0 {
				data["auth"] = auth
			}

			if theme, ok := data["theme"]; ok {
				access, _ := data["accessibility"].(map[string]interface{})
				if access == nil {
					access = make(map[string]interface{})
				}
				if _, set := access["colorScheme"]; !set {
					access["colorScheme"] = theme
				}
				data["accessibility"] = access
				delete(data, "theme")
			}

			data["version"] = 1
			return data, nil
		},
	},
}

// ParseVersionedConfig parses config data with version migration support
func ParseVersionedConfig(data []byte) (*Config, error) {
	// First, parse as raw JSON to get version
	var rawConfig map[string]interface{}
	if err := json.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Detect version (0 if not present = legacy config)
	version := 0
	if v, ok := rawConfig["version"].(float64); ok {
		version = int(v)
	}

	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	if version < CurrentVersion {
		var err error
		rawConfig, err = ApplyMigrations(rawConfig, version)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate config: %w", err)
		}
	}

	// Re-marshal and unmarshal to get proper types
	migratedData, err := json.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migrated config: %w", err)
	}

	// Nested {"version":1,"config":{...}} form
	var versioned VersionedConfig
	if err := json.Unmarshal(migratedData, &versioned); err != nil {
		return nil, fmt.Errorf("failed to parse versioned config: %w", err)
	}
	if versioned.Config != nil {
		return versioned.Config, nil
	}

	// Flat form
	var cfg Config
	if err := json.Unmarshal(migratedData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flat config: %w", err)
	}

	return &cfg, nil
}

// ApplyMigrations applies all migrations from the given version to CurrentVersion
func ApplyMigrations(data map[string]interface{}, fromVersion int) (map[string]interface{}, error) {
	for _, migration := range migrations {
		if migration.FromVersion == fromVersion {
			var err error
			data, err = migration.Migrate(data)
			if err != nil {
				return nil, fmt.Errorf("migration %d -> %d failed: %w",
					migration.FromVersion, migration.ToVersion, err)
			}
			fromVersion = migration.ToVersion
		}
	}

	if fromVersion < CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d to %d", fromVersion, CurrentVersion)
	}

	return data, nil
}

// MarshalVersionedConfig serializes a config as a flat object with a version key
func MarshalVersionedConfig(cfg *Config) ([]byte, error) {
	cfgData, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	var cfgMap map[string]interface{}
	if err := json.Unmarshal(cfgData, &cfgMap); err != nil {
		return nil, err
	}

	result := make(map[string]interface{}, len(cfgMap)+1)
	result["version"] = CurrentVersion
	for k, v := range cfgMap {
		result[k] = v
	}

	return json.MarshalIndent(result, "", "  ")
}
