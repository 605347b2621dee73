package overlay

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/services/creation"
	"github.com/riordanpawley/bennu/internal/suggest"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

const dueDateLayout = "2006-01-02"

const (
	focusTitle = iota
	focusDescription
	focusPriority
	focusCategory
	focusDueDate
	focusTags
	focusSuggestions
	focusSubmit
	focusCount
)

// CreateTaskOverlay is the new-task form. It drives a creation.Flow and
// hosts the flow's close signal.
type CreateTaskOverlay struct {
	flow        *creation.Flow
	title       textinput.Model
	description textarea.Model
	dueDate     textinput.Model
	tagInput    textinput.Model
	focusIndex  int
	err         string
	closed      bool
	created     *domain.Task
	styles      *styles.Styles
}

// NewCreateTaskOverlay creates the form over store with live suggestions
func NewCreateTaskOverlay(store creation.Creator, suggester suggest.Suggester, s *styles.Styles) *CreateTaskOverlay {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 56

	ta := textarea.New()
	ta.Placeholder = "Add details (optional)..."
	ta.CharLimit = 2000
	ta.SetWidth(56)
	ta.SetHeight(3)

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = len(dueDateLayout)
	due.Width = 12

	tags := textinput.New()
	tags.Placeholder = "type a tag, Enter to add"
	tags.CharLimit = 40
	tags.Width = 30

	c := &CreateTaskOverlay{
		title:       ti,
		description: ta,
		dueDate:     due,
		tagInput:    tags,
		focusIndex:  focusTitle,
		styles:      s,
	}
	c.flow = creation.New(store, suggester, c.onClose, nil)
	return c
}

// onClose records the flow's close signal; Update turns it into messages
func (c *CreateTaskOverlay) onClose(task *domain.Task) {
	c.closed = true
	c.created = task
}

// Flow exposes the underlying creation flow
func (c *CreateTaskOverlay) Flow() *creation.Flow {
	return c.flow
}

// Init initializes the overlay
func (c *CreateTaskOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (c *CreateTaskOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := c.handleKey(key); handled {
			return c, cmd
		}
	}

	var cmd tea.Cmd
	switch c.focusIndex {
	case focusTitle:
		c.title, cmd = c.title.Update(msg)
		c.flow.SetTitle(c.title.Value())
	case focusDescription:
		c.description, cmd = c.description.Update(msg)
		c.flow.SetDescription(c.description.Value())
	case focusDueDate:
		c.dueDate, cmd = c.dueDate.Update(msg)
	case focusTags:
		c.tagInput, cmd = c.tagInput.Update(msg)
	}
	return c, cmd
}

func (c *CreateTaskOverlay) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		c.flow.Cancel()
		return true, c.closeCmd()

	case "ctrl+s":
		return true, c.submit()

	case "tab":
		c.setFocus((c.focusIndex + 1) % focusCount)
		return true, nil

	case "shift+tab":
		c.setFocus((c.focusIndex - 1 + focusCount) % focusCount)
		return true, nil

	case "enter":
		switch c.focusIndex {
		case focusSubmit:
			return true, c.submit()
		case focusTags:
			if c.flow.AddTag(c.tagInput.Value()) {
				c.tagInput.SetValue("")
			}
			return true, nil
		case focusSuggestions:
			c.acceptAll()
			return true, nil
		case focusTitle:
			c.setFocus(focusDescription)
			return true, nil
		}
	}

	switch c.focusIndex {
	case focusPriority:
		return c.handlePriorityKey(msg.String())
	case focusCategory:
		return c.handleCategoryKey(msg.String())
	case focusTags:
		if msg.String() == "backspace" && c.tagInput.Value() == "" {
			if tags := c.flow.Draft().Tags; len(tags) > 0 {
				c.flow.RemoveTag(tags[len(tags)-1])
			}
			return true, nil
		}
	case focusSuggestions:
		switch msg.String() {
		case "p":
			c.flow.Accept(domain.SuggestPriority)
			return true, nil
		case "c":
			c.flow.Accept(domain.SuggestCategory)
			return true, nil
		case "t":
			c.flow.Accept(domain.SuggestTags)
			return true, nil
		case "a":
			c.acceptAll()
			return true, nil
		}
	}
	return false, nil
}

// priorityKeys maps number keys to priorities, 1 being the lowest
var priorityKeys = map[string]domain.Priority{
	"1": domain.PriorityLow,
	"2": domain.PriorityMedium,
	"3": domain.PriorityHigh,
	"4": domain.PriorityUrgent,
}

// priorityOrder is the selector order, lowest first
var priorityOrder = []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent}

func (c *CreateTaskOverlay) handlePriorityKey(key string) (bool, tea.Cmd) {
	current := c.flow.Draft().Priority
	switch key {
	case "left", "h":
		c.flow.SetPriority(cycle(priorityOrder, current, -1))
	case "right", "l":
		c.flow.SetPriority(cycle(priorityOrder, current, 1))
	default:
		p, ok := priorityKeys[key]
		if !ok {
			return false, nil
		}
		c.flow.SetPriority(p)
	}
	return true, nil
}

func (c *CreateTaskOverlay) handleCategoryKey(key string) (bool, tea.Cmd) {
	current := c.flow.Draft().Category
	switch key {
	case "left", "h":
		c.flow.SetCategory(cycle(domain.Categories, current, -1))
	case "right", "l":
		c.flow.SetCategory(cycle(domain.Categories, current, 1))
	default:
		return false, nil
	}
	return true, nil
}

func (c *CreateTaskOverlay) acceptAll() {
	for _, kind := range []domain.SuggestionKind{domain.SuggestPriority, domain.SuggestCategory, domain.SuggestTags} {
		c.flow.Accept(kind)
	}
}

func (c *CreateTaskOverlay) setFocus(idx int) {
	c.focusIndex = idx
	c.title.Blur()
	c.description.Blur()
	c.dueDate.Blur()
	c.tagInput.Blur()

	switch idx {
	case focusTitle:
		c.title.Focus()
	case focusDescription:
		c.description.Focus()
	case focusDueDate:
		c.dueDate.Focus()
	case focusTags:
		c.tagInput.Focus()
	}
}

// applyDueDate copies the due date field into the draft
func (c *CreateTaskOverlay) applyDueDate() error {
	raw := strings.TrimSpace(c.dueDate.Value())
	if raw == "" {
		c.flow.ClearDueDate()
		return nil
	}
	due, err := time.ParseInLocation(dueDateLayout, raw, time.Local)
	if err != nil {
		return &domain.ValidationError{Field: "due date", Message: "use YYYY-MM-DD"}
	}
	c.flow.SetDueDate(due)
	return nil
}

// submit stores the draft. Validation and store errors keep the form open.
func (c *CreateTaskOverlay) submit() tea.Cmd {
	if err := c.applyDueDate(); err != nil {
		c.err = err.Error()
		return nil
	}
	if _, err := c.flow.Submit(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) && verr.Field == "title" {
			c.err = "Title is required"
		} else {
			c.err = err.Error()
		}
		return nil
	}
	return c.closeCmd()
}

// closeCmd emits the messages that correspond to the flow's close signal
func (c *CreateTaskOverlay) closeCmd() tea.Cmd {
	if !c.closed {
		return nil
	}
	if c.created == nil {
		return closeCmd()
	}
	task := *c.created
	return tea.Batch(
		func() tea.Msg { return TaskCreatedMsg{Task: task} },
		closeCmd(),
	)
}

// View renders the form
func (c *CreateTaskOverlay) View() string {
	s := c.styles
	draft := c.flow.Draft()
	var b strings.Builder

	b.WriteString(fieldLabel(s, "Title", c.focusIndex == focusTitle))
	b.WriteString("\n")
	b.WriteString(c.title.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel(s, "Description", c.focusIndex == focusDescription))
	b.WriteString("\n")
	b.WriteString(c.description.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel(s, "Priority", c.focusIndex == focusPriority))
	b.WriteString("  ")
	b.WriteString(renderChoices(s, priorityOrder, draft.Priority, func(p domain.Priority) string { return p.String() }))
	b.WriteString("\n")

	b.WriteString(fieldLabel(s, "Category", c.focusIndex == focusCategory))
	b.WriteString("  ")
	b.WriteString(renderChoices(s, domain.Categories, draft.Category, func(cat string) string { return cat }))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel(s, "Due date", c.focusIndex == focusDueDate))
	b.WriteString("  ")
	b.WriteString(c.dueDate.View())
	b.WriteString("\n")

	b.WriteString(fieldLabel(s, "Tags", c.focusIndex == focusTags))
	b.WriteString("  ")
	for _, tag := range draft.Tags {
		b.WriteString(s.Tag.Render("#" + tag))
		b.WriteString(" ")
	}
	b.WriteString(c.tagInput.View())
	b.WriteString("\n\n")

	b.WriteString(c.renderSuggestions())

	b.WriteString(s.Separator.Render(strings.Repeat("─", 56)))
	b.WriteString("\n")

	submitStyle := s.MenuItem
	if c.focusIndex == focusSubmit {
		submitStyle = s.MenuItemActive
	}
	b.WriteString(submitStyle.Render("[ Create Task ]"))

	if c.err != "" {
		b.WriteString("\n")
		b.WriteString(s.Error.Render(c.err))
	}
	b.WriteString("\n")

	b.WriteString(renderHints(s,
		hint{"Tab", "Next field"},
		hint{"Ctrl+S", "Create"},
		hint{"Esc", "Cancel"},
	))

	return b.String()
}

func (c *CreateTaskOverlay) renderSuggestions() string {
	s := c.styles
	pending := c.flow.PendingSuggestions()
	focused := c.focusIndex == focusSuggestions

	var b strings.Builder
	b.WriteString(fieldLabel(s, "Suggestions", focused))
	if pending.Empty() {
		b.WriteString("  ")
		b.WriteString(s.Muted.Render("none"))
		b.WriteString("\n\n")
		return b.String()
	}

	b.WriteString("\n")
	if pending.Priority != "" {
		b.WriteString("  " + s.MenuKey.Render("p") + " " + s.Suggestion.Render("priority: "+pending.Priority.String()) + "\n")
	}
	if pending.Category != "" {
		b.WriteString("  " + s.MenuKey.Render("c") + " " + s.Suggestion.Render("category: "+pending.Category) + "\n")
	}
	if len(pending.Tags) > 0 {
		b.WriteString("  " + s.MenuKey.Render("t") + " " + s.Suggestion.Render("tags: #"+strings.Join(pending.Tags, " #")) + "\n")
	}
	if focused {
		b.WriteString("  " + s.MenuKey.Render("a") + " " + s.Muted.Render("accept all") + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Title returns the overlay title
func (c *CreateTaskOverlay) Title() string {
	return "Create New Task"
}

// Size returns the overlay dimensions
func (c *CreateTaskOverlay) Size() (width, height int) {
	return 64, 30
}
