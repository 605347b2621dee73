package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/services/gate"
	"github.com/riordanpawley/bennu/internal/types"
	"github.com/riordanpawley/bennu/internal/ui/authview"
	"github.com/riordanpawley/bennu/internal/ui/dashboard"
	"github.com/riordanpawley/bennu/internal/ui/overlay"
	"github.com/riordanpawley/bennu/internal/ui/statusbar"
	"github.com/riordanpawley/bennu/internal/ui/tasklist"
	"github.com/riordanpawley/bennu/internal/ui/toast"
)

// View renders the application
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.gate.State() {
	case gate.StateLoading:
		return m.renderLoading()
	case gate.StateLanding:
		return m.center(authview.Landing(m.styles, min(m.width, 72)))
	case gate.StateAuthenticating:
		return m.center(m.authForm.View())
	}
	return m.renderActive()
}

// renderLoading shows the spinner while the session is resolved
func (m Model) renderLoading() string {
	indicator := "…"
	if m.styles.Animate {
		indicator = m.spinner.View()
	}
	return m.center(indicator + " " + m.styles.Muted.Render("Checking your session..."))
}

func (m Model) center(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderActive lays out the signed-in screen. The body takes whatever
// height the chrome leaves.
func (m Model) renderActive() string {
	all := m.store.All()
	visible := m.editor.FilterAndSort(all)
	now := m.now()

	header := m.renderHeader()
	stats := dashboard.New(m.styles, m.width).QuickStats(
		domain.ComputeQuickStats(all, now, m.progress.Streak),
	)

	var search string
	modal := m.overlayStack.Current()
	if so, ok := modal.(*overlay.SearchOverlay); ok {
		search = so.View()
		modal = nil
	}

	status := statusbar.New(m.editor.GetMode(), m.tab, m.width, m.styles).
		WithInfo(tasklist.Summary(len(visible), len(all), m.editor.Query())).
		Render()
	toasts := toast.New(m.styles).Render(m.toasts, m.width)

	chrome := []string{header, stats}
	footer := []string{}
	if search != "" {
		footer = append(footer, search)
	}
	footer = append(footer, status)
	if toasts != "" {
		footer = append(footer, toasts)
	}

	used := 0
	for _, part := range append(chrome, footer...) {
		used += lipgloss.Height(part)
	}
	bodyHeight := max(m.height-used, 0)

	var body string
	if modal != nil {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderOverlay(modal))
	} else {
		body = m.renderBody(visible, all, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)

	parts := chrome
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, footer...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader shows the brand, the tab strip and the signed-in user
func (m Model) renderHeader() string {
	s := m.styles
	tabs := make([]string, 0, len(types.Tabs))
	for _, t := range types.Tabs {
		style := s.Tab
		if t == m.tab {
			style = s.TabActive
		}
		tabs = append(tabs, style.Render(t.String()))
	}

	left := s.Brand.Render("◎ Bennu") + "  " + strings.Join(tabs, " ")
	right := s.User.Render(m.gate.User().DisplayName())
	if !m.online {
		right = s.Error.Render("offline") + "  " + right
	}
	inner := m.width - s.Header.GetHorizontalFrameSize()
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderBody(visible, all []domain.Task, height int) string {
	now := m.now()
	switch m.tab {
	case types.TabFocus:
		task, ok := m.editor.FocusTask(all)
		return dashboard.New(m.styles, m.width).Focus(task, ok, ok && m.editor.IsFocus(task.ID), now)
	case types.TabProgress:
		return dashboard.New(m.styles, m.width).Progress(m.progress)
	}

	lv := tasklist.NewListView(visible, m.width, height, m.styles)
	lv.SetCursor(m.editor.Cursor())
	lv.SetNow(now)
	if task, ok := m.editor.FocusTask(all); ok && m.editor.IsFocus(task.ID) {
		lv.SetFocus(task.ID)
	}
	return lv.Render()
}

// renderOverlay frames an overlay with its title
func (m Model) renderOverlay(o overlay.Overlay) string {
	w, _ := o.Size()
	w = min(w, m.width-2)
	content := o.View()
	if title := o.Title(); title != "" {
		content = m.styles.OverlayTitle.Render(title) + "\n\n" + content
	}
	return m.styles.Overlay.Width(w).Render(content)
}

// fitHeight pads or clips s to exactly h lines
func fitHeight(s string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
