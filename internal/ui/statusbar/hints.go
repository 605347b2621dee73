package statusbar

import "github.com/riordanpawley/bennu/internal/types"

// GetHints returns the keybinding hints for the given mode and tab
func GetHints(mode types.Mode, tab types.Tab) string {
	if mode == types.ModeSearch {
		return "Type to search  Enter: confirm  Esc: clear"
	}
	switch tab {
	case types.TabTasks:
		return "j/k: move  x: done  n: new  /: search  s: sort  f: focus  ?: help"
	case types.TabFocus:
		return "x: done  tab: next view  ?: help"
	case types.TabProgress:
		return "tab: next view  a: accessibility  ?: help"
	default:
		return ""
	}
}
