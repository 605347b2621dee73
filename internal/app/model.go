// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/auth"
	"github.com/riordanpawley/bennu/internal/config"
	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/seed"
	"github.com/riordanpawley/bennu/internal/services/accessibility"
	"github.com/riordanpawley/bennu/internal/services/editor"
	"github.com/riordanpawley/bennu/internal/services/gate"
	"github.com/riordanpawley/bennu/internal/services/network"
	"github.com/riordanpawley/bennu/internal/store"
	"github.com/riordanpawley/bennu/internal/suggest"
	"github.com/riordanpawley/bennu/internal/types"
	"github.com/riordanpawley/bennu/internal/ui/authview"
	"github.com/riordanpawley/bennu/internal/ui/dashboard"
	"github.com/riordanpawley/bennu/internal/ui/overlay"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

const toastTick = time.Second

// Deps are the collaborators the model is built from
type Deps struct {
	Config    *config.Config
	Provider  auth.Provider
	Store     *store.Memory
	Suggester suggest.Suggester
	Seed      *seed.Data
	Network   *network.StatusChecker
	Logger    *slog.Logger
	Now       func() time.Time
}

// Model is the application state
type Model struct {
	// Services
	gate      *gate.Gate
	provider  auth.Provider
	timeout   time.Duration
	store     *store.Memory
	suggester suggest.Suggester
	editor    *editor.Service
	a11y      *accessibility.Controller
	network   *network.StatusChecker

	// UI state
	styles       *styles.Styles
	overlayStack *overlay.Stack
	authForm     *authview.Form
	spinner      spinner.Model
	tab          types.Tab
	toasts       []Toast
	progress     dashboard.Progress
	online       bool

	width  int
	height int

	logger *slog.Logger
	now    func() time.Time
}

// New creates the application model. Sample tasks from the seed are loaded
// into the store unless the config skips them.
func New(deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	st := deps.Store
	if st == nil {
		st = store.NewMemory(store.WithLogger(logger), store.WithClock(now))
	}
	suggester := deps.Suggester
	if suggester == nil {
		suggester = suggest.New()
	}
	timeout := cfg.Auth.Timeout()
	if timeout <= 0 {
		timeout = auth.DefaultTimeout
	}

	var progress dashboard.Progress
	if deps.Seed != nil {
		progress = dashboard.Progress{
			Week:         deps.Seed.Week,
			Achievements: deps.Seed.Achievements,
			Streak:       deps.Seed.Streak,
		}
		if !cfg.Tasks.SkipSampleData {
			if err := st.Load(deps.Seed.Tasks); err != nil {
				logger.Error("failed to load sample tasks", "error", err)
			}
		}
	}

	a11y := accessibility.NewController(accessibility.ParseConfiguration(
		cfg.Accessibility.FontSize,
		cfg.Accessibility.ColorScheme,
		cfg.Accessibility.Density,
		cfg.Accessibility.ReducedMotion,
	), logger)

	// Overlays and views keep this pointer; restyling replaces its value.
	sty := styles.New(a11y.Configuration())
	a11y.OnChange(func(c accessibility.Configuration) {
		*sty = *styles.New(c)
	})

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sty.Cursor

	query := domain.Query{
		Status:       domain.ParseStatusFilter(cfg.Tasks.DefaultFilter),
		SortKey:      domain.ParseSortKey(cfg.Tasks.DefaultSort),
		SearchPolicy: domain.ParseSearchPolicy(cfg.Tasks.SearchPolicy),
	}

	return Model{
		gate:         gate.New(logger),
		provider:     deps.Provider,
		timeout:      timeout,
		store:        st,
		suggester:    suggester,
		editor:       editor.NewServiceWithQuery(query),
		a11y:         a11y,
		network:      deps.Network,
		styles:       sty,
		overlayStack: overlay.NewStack(),
		authForm:     authview.NewForm(deps.Provider, timeout, sty),
		spinner:      sp,
		tab:          types.TabTasks,
		progress:     progress,
		online:       true,
		logger:       logger,
		now:          now,
	}
}

// Init starts session resolution
func (m Model) Init() tea.Cmd {
	m.gate.Start()
	cmds := []tea.Cmd{
		m.spinner.Tick,
		m.resolveSessionCmd(),
		tickEvery(toastTick),
	}
	if m.network != nil {
		cmds = append(cmds, m.network.CheckCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.gate.State() == gate.StateLoading && m.styles.Animate {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		m.authForm, cmd = m.authForm.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(toastTick)

	case network.StatusMsg:
		m.online = msg.Online
		if msg.Changed {
			if msg.Online {
				m.addToast(ToastInfo, "Connection restored")
			} else {
				m.addToast(ToastWarning, "Can't reach the sign-in service")
			}
		}
		if m.network == nil {
			return m, nil
		}
		return m, m.network.ScheduleCmd(network.DefaultInterval)

	case sessionResolvedMsg:
		return m.handleSessionResolved(msg)

	case authview.SignedInMsg:
		if err := m.gate.Succeed(msg.Session); err != nil {
			m.logger.Warn("sign in rejected", "error", err)
			m.addToast(ToastError, errorMessage(err))
			return m, nil
		}
		m.authForm.Reset()
		m.tab = types.TabTasks
		m.logger.Info("signed in", "user", msg.Session.User.ID)
		m.addToast(ToastSuccess, "Welcome, "+m.gate.User().DisplayName())
		return m, nil

	case authview.BackMsg:
		if err := m.gate.Back(); err != nil {
			return m, nil
		}
		m.authForm.Reset()
		return m, nil

	case signedOutMsg:
		return m.handleSignedOut(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		if m.editor.IsSearch() {
			m.editor.ExitMode()
		}
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.SearchMsg:
		m.editor.SetSearchQuery(msg.Query)
		m.editor.ClampCursor(len(m.visibleTasks()))
		if search, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
			search.SetMatchCount(len(m.visibleTasks()))
		}
		return m, nil

	case overlay.TaskCreatedMsg:
		m.logger.Info("task created", "id", msg.Task.ID, "title", msg.Task.Title)
		m.addToast(ToastSuccess, "Task created: "+msg.Task.Title)
		m.editor.ClampCursor(len(m.visibleTasks()))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (cursor blink and similar) goes to whatever has input
	switch {
	case m.gate.State() == gate.StateAuthenticating:
		var cmd tea.Cmd
		m.authForm, cmd = m.authForm.Update(msg)
		return m, cmd
	case !m.overlayStack.IsEmpty():
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// handleSessionResolved finishes the loading state
func (m Model) handleSessionResolved(msg sessionResolvedMsg) (tea.Model, tea.Cmd) {
	session := msg.session
	if msg.err != nil {
		m.logger.Warn("could not restore session", "error", msg.err)
		m.addToast(ToastWarning, "Could not restore your session: "+errorMessage(msg.err))
		session = nil
	}
	if session != nil && !session.Valid(m.now()) {
		m.logger.Info("stored session expired")
		session = nil
	}
	if err := m.gate.Resolve(session); err != nil {
		return m, nil
	}
	if m.gate.State() == gate.StateActive {
		m.addToast(ToastInfo, "Welcome back, "+m.gate.User().DisplayName())
	}
	return m, nil
}

// handleSignedOut returns to the landing page
func (m Model) handleSignedOut(msg signedOutMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("remote sign out failed", "error", msg.err)
	}
	if err := m.gate.SignOut(); err != nil {
		return m, nil
	}
	m.overlayStack.Clear()
	m.editor.ClearFocus()
	m.authForm.Reset()
	m.addToast(ToastInfo, "Signed out")
	return m, nil
}

// handleSelection applies a choice made in a menu overlay
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	switch msg.Key {
	case overlay.SelectionSort:
		if key, ok := msg.Value.(domain.SortKey); ok {
			m.editor.SetSortKey(key)
			m.overlayStack.Pop()
		}

	case overlay.SelectionStatus:
		if status, ok := msg.Value.(domain.StatusFilter); ok {
			m.editor.SetStatus(status)
			m.editor.ClampCursor(len(m.visibleTasks()))
		}

	case overlay.SelectionSearchPolicy:
		if policy, ok := msg.Value.(domain.SearchPolicy); ok {
			m.editor.SetSearchPolicy(policy)
			m.editor.ClampCursor(len(m.visibleTasks()))
		}

	case actionSignOut:
		if res, ok := msg.Value.(overlay.ConfirmResult); ok && res.Confirmed {
			return m, m.signOutCmd()
		}
	}
	return m, nil
}

// visibleTasks returns the store contents through the current query
func (m Model) visibleTasks() []domain.Task {
	return m.editor.FilterAndSort(m.store.All())
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level ToastLevel, message string) {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: m.now().Add(toastDuration(level)),
	})
}

func toastDuration(level ToastLevel) time.Duration {
	if level == ToastError {
		return 8 * time.Second
	}
	return 3 * time.Second
}

// expireToasts removes expired toasts from the list
func (m *Model) expireToasts() {
	now := m.now()
	filtered := make([]Toast, 0, len(m.toasts))
	for _, toast := range m.toasts {
		if toast.Expires.After(now) {
			filtered = append(filtered, toast)
		}
	}
	m.toasts = filtered
}
