package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

func TestNewSortMenu(t *testing.T) {
	menu := NewSortMenu(domain.SortByDueDate, styles.Default())
	require.NotNil(t, menu)
	assert.Len(t, menu.options, 3)
	assert.Equal(t, 1, menu.cursor, "cursor starts on the current key")
	assert.Equal(t, "Sort", menu.Title())
}

func TestSortMenuShortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want domain.SortKey
	}{
		{"p", domain.SortByPriority},
		{"d", domain.SortByDueDate},
		{"c", domain.SortByCategory},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			menu := NewSortMenu(domain.SortByPriority, styles.Default())
			cmd := sendKey(menu, tt.key)
			require.NotNil(t, cmd)

			sel, ok := cmd().(SelectionMsg)
			require.True(t, ok)
			assert.Equal(t, SelectionSort, sel.Key)
			assert.Equal(t, tt.want, sel.Value)
		})
	}
}

func TestSortMenuCursorSelect(t *testing.T) {
	menu := NewSortMenu(domain.SortByPriority, styles.Default())

	sendKey(menu, "down")
	sendKey(menu, "down")
	cmd := sendKey(menu, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, domain.SortByCategory, cmd().(SelectionMsg).Value)

	sendKey(menu, "down")
	assert.Equal(t, 0, menu.cursor, "cursor wraps")
}

func TestSortMenuView(t *testing.T) {
	menu := NewSortMenu(domain.SortByCategory, styles.Default())
	view := menu.View()

	assert.Contains(t, view, "Priority")
	assert.Contains(t, view, "Due Date")
	assert.Contains(t, view, "Category")
	assert.Contains(t, view, "●")
}

func TestSortMenuEscapeCloses(t *testing.T) {
	menu := NewSortMenu(domain.SortByPriority, styles.Default())
	cmd := sendKey(menu, "esc")
	require.NotNil(t, cmd)
	_, ok := cmd().(CloseOverlayMsg)
	assert.True(t, ok)
}
