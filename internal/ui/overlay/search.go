package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// SearchMsg is emitted on every keystroke for live filtering
type SearchMsg struct {
	Query string
}

// SearchOverlay is the single-line search bar
type SearchOverlay struct {
	input      textinput.Model
	matchCount int
	styles     *styles.Styles
}

// NewSearchOverlay creates a search bar seeded with the active query
func NewSearchOverlay(query string, s *styles.Styles) *SearchOverlay {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search title, description or tags..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50
	ti.SetValue(query)

	return &SearchOverlay{input: ti, styles: s}
}

// SetMatchCount updates the match count display
func (s *SearchOverlay) SetMatchCount(count int) {
	s.matchCount = count
}

// Query returns the current input
func (s *SearchOverlay) Query() string {
	return s.input.Value()
}

// Init implements tea.Model
func (s *SearchOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s *SearchOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			// keeps the query applied
			return s, closeCmd()
		case tea.KeyEsc:
			s.input.SetValue("")
			return s, tea.Batch(
				func() tea.Msg { return SearchMsg{Query: ""} },
				closeCmd(),
			)
		}
	}

	prev := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if query := s.input.Value(); query != prev {
		return s, tea.Batch(cmd, func() tea.Msg { return SearchMsg{Query: query} })
	}
	return s, cmd
}

// View implements tea.Model
func (s *SearchOverlay) View() string {
	view := s.input.View()
	if s.input.Value() != "" {
		view += s.styles.Muted.Render(fmt.Sprintf(" (%d matches)", s.matchCount))
	}
	return view
}

// Title is empty; the search bar renders without a frame
func (s *SearchOverlay) Title() string {
	return ""
}

// Size is full width, one line
func (s *SearchOverlay) Size() (width, height int) {
	return 0, 1
}
