package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riordanpawley/bennu/internal/app"
	"github.com/riordanpawley/bennu/internal/cli"
	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/suggest"
)

func runTUI(deps *cli.Dependencies) error {
	deps.Logger.Info("starting bennu", "version", Version)

	model := app.New(app.Deps{
		Config:    deps.Config,
		Provider:  deps.Provider,
		Store:     deps.Store,
		Suggester: suggest.New(),
		Seed:      deps.Seed,
		Network:   deps.Network,
		Logger:    deps.Logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func signOutCmd(v **viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sign-out",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(*v, func(deps *cli.Dependencies) error {
				return cli.SignOutCommand(deps, os.Stdout)
			})
		},
	}
}

func whoAmICmd(v **viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(*v, func(deps *cli.Dependencies) error {
				return cli.WhoAmICommand(deps, os.Stdout)
			})
		},
	}
}

func tasksCmd(v **viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Print the sample task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			sortKey, _ := cmd.Flags().GetString("sort")
			search, _ := cmd.Flags().GetString("search")

			return withDeps(*v, func(deps *cli.Dependencies) error {
				q := domain.Query{
					Status:       domain.ParseStatusFilter(status),
					Search:       search,
					SortKey:      domain.ParseSortKey(sortKey),
					SearchPolicy: domain.ParseSearchPolicy(deps.Config.Tasks.SearchPolicy),
				}
				return cli.TasksCommand(deps, q, os.Stdout)
			})
		},
	}

	cmd.Flags().String("status", "all", "Status filter (all, active, completed)")
	cmd.Flags().String("sort", "priority", "Sort key (priority, dueDate, category)")
	cmd.Flags().String("search", "", "Search text")

	return cmd
}

func configCmd(v **viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the .bennu.json config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return cli.InitConfigCommand(*v, force, os.Stdout)
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}
