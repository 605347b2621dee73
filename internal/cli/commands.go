// Package cli wires the services behind the bennu command and implements its
// non-interactive subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/riordanpawley/bennu/internal/auth"
	"github.com/riordanpawley/bennu/internal/config"
	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/seed"
	"github.com/riordanpawley/bennu/internal/services/network"
	"github.com/riordanpawley/bennu/internal/store"
)

// ErrNoAuthURL is returned when no provider endpoint is configured
var ErrNoAuthURL = errors.New("no auth URL configured (set --auth-url or BENNU_AUTH_URL)")

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config   *config.Config
	Provider auth.Provider
	Sessions *auth.SessionFile
	Store    *store.Memory
	Seed     *seed.Data
	Network  *network.StatusChecker
	Logger   *slog.Logger
}

// NewDependencies creates a new Dependencies instance with all required services
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	if cfg.Auth.URL == "" {
		return nil, ErrNoAuthURL
	}
	if logger == nil {
		logger = slog.Default()
	}

	sessions := auth.NewSessionFile(cfg.Auth.SessionFile)
	provider := auth.NewGoTrueClient(auth.Config{
		URL:     cfg.Auth.URL,
		AnonKey: cfg.Auth.AnonKey,
		Timeout: cfg.Auth.Timeout(),
	}, sessions, logger)

	data, err := seed.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load sample data: %w", err)
	}

	return &Dependencies{
		Config:   cfg,
		Provider: provider,
		Sessions: sessions,
		Store:    store.NewMemory(store.WithAllocator(store.UUIDAllocator{}), store.WithLogger(logger)),
		Seed:     data,
		Network:  network.NewStatusChecker(cfg.Auth.URL, cfg.Auth.AnonKey, logger),
		Logger:   logger,
	}, nil
}

func (d *Dependencies) context() (context.Context, context.CancelFunc) {
	timeout := d.Config.Auth.Timeout()
	if timeout <= 0 {
		timeout = auth.DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// SignOutCommand drops the stored session. The local session file is
// removed even when the provider cannot be reached.
func SignOutCommand(deps *Dependencies, w io.Writer) error {
	ctx, cancel := deps.context()
	defer cancel()

	deps.Logger.Info("signing out")

	if err := deps.Provider.SignOut(ctx); err != nil {
		deps.Logger.Warn("remote sign out failed", "error", err)
		if deps.Sessions != nil {
			if err := deps.Sessions.Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
		}
	}

	fmt.Fprintln(w, "✓ Signed out")
	return nil
}

// WhoAmICommand prints the signed-in user
func WhoAmICommand(deps *Dependencies, w io.Writer) error {
	ctx, cancel := deps.context()
	defer cancel()

	session, err := deps.Provider.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if session == nil || session.User == nil {
		fmt.Fprintln(w, "Not signed in")
		return nil
	}

	fmt.Fprintf(w, "%s <%s>\n", session.User.DisplayName(), session.User.Email)
	if !session.ExpiresAt.IsZero() {
		fmt.Fprintf(w, "Session expires %s\n", session.ExpiresAt.Local().Format("Jan 2, 2006 15:04"))
	}
	return nil
}

// truncate shortens s to at most n runes, ending in "..." when cut
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// TasksCommand prints the sample task list through a query
func TasksCommand(deps *Dependencies, q domain.Query, w io.Writer) error {
	if deps.Store.Len() == 0 && deps.Seed != nil {
		if err := deps.Store.Load(deps.Seed.Tasks); err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
	}

	tasks := domain.View(deps.Store.All(), q)
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DONE\tPRIORITY\tCATEGORY\tDUE\tTITLE")
	fmt.Fprintln(tw, "----\t--------\t--------\t---\t-----")

	for _, task := range tasks {
		done := " "
		if task.Completed {
			done = "x"
		}
		due := "-"
		if task.DueDate != nil {
			due = task.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "[%s]\t%s\t%s\t%s\t%s\n", done, task.Priority, task.Category, due, truncate(task.Title, 60))
	}

	return tw.Flush()
}
