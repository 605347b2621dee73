// Package main provides the entry point for the Bennu TUI application.
//
// Bennu is a terminal task manager with hosted sign-in, a prioritized task
// list, a focus view and a progress dashboard. The UI uses The Elm
// Architecture (TEA) via Bubbletea.
//
// Usage:
//
//	bennu [flags]
//	bennu sign-out
//	bennu whoami
//	bennu tasks [--status active] [--sort dueDate] [--search text]
//	bennu config init [--force]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riordanpawley/bennu/internal/cli"
)

// Version is set at build time
var Version = "dev"

var flagKeys = map[string]string{
	"config-dir":    cli.KeyConfigDir,
	"auth-url":      cli.KeyAuthURL,
	"anon-key":      cli.KeyAnonKey,
	"log-file":      cli.KeyLogFile,
	"log-level":     cli.KeyLogLevel,
	"search-policy": cli.KeySearchPolicy,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var v *viper.Viper

	rootCmd := &cobra.Command{
		Use:           "bennu",
		Short:         "Bennu - a terminal task manager",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			v, err = cli.NewViper(cmd.Flags(), flagKeys)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(v, runTUI)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config-dir", "", "directory holding .bennu.json (default: current directory)")
	flags.String("auth-url", "", "auth provider base URL (env BENNU_AUTH_URL)")
	flags.String("anon-key", "", "auth provider anon key (env BENNU_AUTH_ANON_KEY)")
	flags.String("log-file", "", "log file path (default ~/.bennu/logs/bennu.log)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("search-policy", "", "how search meets the status filter: combine or override")

	rootCmd.AddCommand(signOutCmd(&v))
	rootCmd.AddCommand(whoAmICmd(&v))
	rootCmd.AddCommand(tasksCmd(&v))
	rootCmd.AddCommand(configCmd(&v))

	return rootCmd
}

// withDeps loads config, opens the log file and builds the services
func withDeps(v *viper.Viper, run func(*cli.Dependencies) error) error {
	cfg, err := cli.LoadConfig(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := cli.OpenLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	deps, err := cli.NewDependencies(cfg, logger)
	if err != nil {
		return err
	}
	return run(deps)
}
