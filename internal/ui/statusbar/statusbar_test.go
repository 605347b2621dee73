package statusbar

import (
	"strings"
	"testing"

	"github.com/riordanpawley/bennu/internal/types"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

func TestStatusBar_RenderNormalMode(t *testing.T) {
	sb := New(types.ModeNormal, types.TabTasks, 120, styles.Default())

	result := sb.Render()

	if !strings.Contains(result, "NORMAL") {
		t.Errorf("Expected status bar to contain 'NORMAL', got: %s", result)
	}
	if !strings.Contains(result, "n: new") {
		t.Errorf("Expected status bar to contain create hint, got: %s", result)
	}
	if !strings.Contains(result, "/: search") {
		t.Errorf("Expected status bar to contain search hint, got: %s", result)
	}
}

func TestStatusBar_RenderSearchMode(t *testing.T) {
	sb := New(types.ModeSearch, types.TabTasks, 120, styles.Default())

	result := sb.Render()

	if !strings.Contains(result, "SEARCH") {
		t.Errorf("Expected status bar to contain 'SEARCH', got: %s", result)
	}
	if !strings.Contains(result, "Type to search") {
		t.Errorf("Expected search hints, got: %s", result)
	}
}

func TestStatusBar_WithInfo(t *testing.T) {
	sb := New(types.ModeNormal, types.TabProgress, 140, styles.Default()).WithInfo("3/5 done")

	result := sb.Render()

	if !strings.Contains(result, "3/5 done") {
		t.Errorf("Expected info text, got: %s", result)
	}
	if !strings.Contains(result, "a: accessibility") {
		t.Errorf("Expected progress hints, got: %s", result)
	}
}

func TestGetHints(t *testing.T) {
	tests := []struct {
		name string
		mode types.Mode
		tab  types.Tab
		want string
	}{
		{"tasks", types.ModeNormal, types.TabTasks, "x: done"},
		{"focus", types.ModeNormal, types.TabFocus, "tab: next view"},
		{"search overrides tab", types.ModeSearch, types.TabProgress, "Enter: confirm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetHints(tt.mode, tt.tab); !strings.Contains(got, tt.want) {
				t.Errorf("GetHints() = %q, want to contain %q", got, tt.want)
			}
		})
	}

	if got := GetHints(types.ModeNormal, types.Tab(99)); got != "" {
		t.Errorf("GetHints(unknown tab) = %q, want empty", got)
	}
}
