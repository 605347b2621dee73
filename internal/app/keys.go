package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/services/gate"
	"github.com/riordanpawley/bennu/internal/types"
	"github.com/riordanpawley/bennu/internal/ui/overlay"
)

// handleKey routes key presses by gate state
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.gate.State() {
	case gate.StateLoading:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case gate.StateLanding:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", "g":
			_ = m.gate.GetStarted()
			m.authForm.Reset()
		}
		return m, nil

	case gate.StateAuthenticating:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.authForm, cmd = m.authForm.Update(msg)
		return m, cmd
	}

	if !m.overlayStack.IsEmpty() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleOverlayKey(msg)
	}
	return m.handleActiveKey(msg)
}

// handleOverlayKey forwards key messages to the current overlay
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	return m, m.overlayStack.Update(msg)
}

// handleActiveKey handles keys on the signed-in screens
func (m Model) handleActiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.styles))
	case "a":
		return m, m.overlayStack.Push(overlay.NewAccessibilitySettings(m.a11y, m.styles))
	case "S":
		return m, m.overlayStack.Push(overlay.NewConfirmDialog(
			actionSignOut,
			"Sign Out",
			"Sign out of "+m.gate.User().DisplayName()+"?",
			m.styles,
		))
	case "tab":
		m.tab = m.tab.Next()
		return m, nil
	case "shift+tab":
		m.tab = m.tab.Prev()
		return m, nil
	case "1":
		m.tab = types.TabTasks
		return m, nil
	case "2":
		m.tab = types.TabFocus
		return m, nil
	case "3":
		m.tab = types.TabProgress
		return m, nil
	}

	switch m.tab {
	case types.TabTasks:
		return m.handleTasksKey(msg)
	case types.TabFocus:
		return m.handleFocusKey(msg)
	}
	return m, nil
}

// handleTasksKey handles list navigation and task actions
func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()
	switch msg.String() {
	case "j", "down":
		m.editor.MoveCursor(1, len(visible))
	case "k", "up":
		m.editor.MoveCursor(-1, len(visible))
	case "g", "home":
		m.editor.MoveCursor(-len(visible), len(visible))
	case "G", "end":
		m.editor.MoveCursor(len(visible), len(visible))
	case "x", " ":
		if task, ok := m.editor.Selected(visible); ok {
			m.toggleCompletion(task.ID, !task.Completed)
		}
	case "n":
		return m, m.overlayStack.Push(overlay.NewCreateTaskOverlay(m.store, m.suggester, m.styles))
	case "/":
		m.editor.EnterSearch()
		search := overlay.NewSearchOverlay(m.editor.Query().Search, m.styles)
		search.SetMatchCount(len(visible))
		return m, m.overlayStack.Push(search)
	case "s":
		return m, m.overlayStack.Push(overlay.NewSortMenu(m.editor.Query().SortKey, m.styles))
	case "F":
		return m, m.overlayStack.Push(overlay.NewFilterMenu(m.editor.Query(), m.styles))
	case "c":
		status := m.editor.CycleStatus()
		m.addToast(ToastInfo, "Showing "+status.String()+" tasks")
	case "f":
		if task, ok := m.editor.Selected(visible); ok && !task.Completed {
			m.editor.SetFocus(task.ID)
			m.tab = types.TabFocus
		}
	case "esc":
		m.editor.ClearSearch()
	}
	return m, nil
}

// handleFocusKey handles the focus tab
func (m Model) handleFocusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "x", " ":
		if task, ok := m.editor.FocusTask(m.store.All()); ok {
			m.toggleCompletion(task.ID, !task.Completed)
		}
	case "esc":
		m.editor.ClearFocus()
	}
	return m, nil
}

// toggleCompletion persists a completion change and reports failures
func (m *Model) toggleCompletion(id string, completed bool) {
	if err := m.store.SetCompletion(id, completed); err != nil {
		m.logger.Error("failed to update task", "id", id, "error", err)
		m.addToast(ToastError, errorMessage(err))
		return
	}
	m.editor.ClampCursor(len(m.visibleTasks()))
	if completed {
		m.addToast(ToastSuccess, "Task completed")
	}
}
