package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/riordanpawley/bennu/internal/config"
)

// EnvPrefix namespaces the environment overrides (BENNU_AUTH_URL and so on)
const EnvPrefix = "BENNU"

// Keys bound to flags and environment variables
const (
	KeyConfigDir    = "config.dir"
	KeyAuthURL      = "auth.url"
	KeyAnonKey      = "auth.anon_key"
	KeyLogFile      = "log.file"
	KeyLogLevel     = "log.level"
	KeySearchPolicy = "tasks.search_policy"
)

// NewViper returns a viper instance reading BENNU_* variables and the given
// flags. flagKeys maps flag names to config keys.
func NewViper(flags *pflag.FlagSet, flagKeys map[string]string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// ApplyOverrides layers flag and environment values over cfg. Only values
// that were explicitly set replace the file or default ones.
func ApplyOverrides(cfg *config.Config, v *viper.Viper) *config.Config {
	set := func(key string, dst *string) {
		if v.IsSet(key) {
			if s := v.GetString(key); s != "" {
				*dst = s
			}
		}
	}

	set(KeyAuthURL, &cfg.Auth.URL)
	set(KeyAnonKey, &cfg.Auth.AnonKey)
	set(KeyLogFile, &cfg.Log.File)
	set(KeyLogLevel, &cfg.Log.Level)
	set(KeySearchPolicy, &cfg.Tasks.SearchPolicy)
	return cfg
}

// LoadConfig reads the config file from the configured directory and applies
// flag and environment overrides
func LoadConfig(v *viper.Viper) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if dir := v.GetString(KeyConfigDir); dir != "" {
		cfg, err = config.LoadConfig(dir)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	return ApplyOverrides(cfg, v), nil
}

// ErrConfigExists is returned by InitConfigCommand when a config file is
// already present and overwriting was not requested
var ErrConfigExists = errors.New("config file already exists (use --force to overwrite)")

// InitConfigCommand writes a versioned config file holding the defaults plus
// any flag and environment overrides. The file goes to the configured
// directory, or the current one.
func InitConfigCommand(v *viper.Viper, force bool, w io.Writer) error {
	dir := v.GetString(KeyConfigDir)
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	cfg := ApplyOverrides(config.DefaultConfig(), v)
	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}

	fmt.Fprintf(w, "✓ Wrote %s\n", path)
	return nil
}
