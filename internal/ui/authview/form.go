package authview

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/auth"
	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// Messages shown after sign-up and resend
const (
	VerifyMessage = "Please check your email for a verification link."
	ResendMessage = "Verification email sent! Please check your inbox."
)

// Mode is the screen the form shows
type Mode int

const (
	ModeSignUp Mode = iota
	ModeSignIn
	ModeVerify
)

// SignedInMsg reports a session obtained by sign-in or an auto-confirmed sign-up
type SignedInMsg struct {
	Session *domain.Session
}

// BackMsg asks the host to return to the landing page
type BackMsg struct{}

type signUpDoneMsg struct {
	result *auth.SignUpResult
	err    error
}

type signInDoneMsg struct {
	session *domain.Session
	err     error
}

type resendDoneMsg struct {
	err error
}

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

// Form is the authentication form
type Form struct {
	provider auth.Provider
	timeout  time.Duration
	styles   *styles.Styles

	mode    Mode
	inputs  []textinput.Model
	focus   int
	loading bool
	message string
	err     string
	spinner spinner.Model
}

// NewForm creates a form in sign-up mode. timeout bounds each provider call.
func NewForm(provider auth.Provider, timeout time.Duration, s *styles.Styles) *Form {
	name := textinput.New()
	name.Placeholder = "Enter your full name"
	name.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "Enter your email"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Cursor

	f := &Form{
		provider: provider,
		timeout:  timeout,
		styles:   s,
		inputs:   []textinput.Model{name, email, password},
		spinner:  sp,
	}
	f.setMode(ModeSignUp)
	return f
}

// Mode returns the current screen
func (f *Form) Mode() Mode {
	return f.mode
}

// Loading reports whether a provider call is in flight
func (f *Form) Loading() bool {
	return f.loading
}

// Message returns the informational message, if any
func (f *Form) Message() string {
	return f.message
}

// Err returns the error message, if any
func (f *Form) Err() string {
	return f.err
}

// Email returns the email field
func (f *Form) Email() string {
	return strings.TrimSpace(f.inputs[fieldEmail].Value())
}

// Reset clears the form and returns to sign-up
func (f *Form) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.loading = false
	f.message = ""
	f.err = ""
	f.setMode(ModeSignUp)
}

func (f *Form) setMode(m Mode) {
	f.mode = m
	f.err = ""
	if m == ModeSignUp {
		f.setFocus(fieldName)
	} else {
		f.setFocus(fieldEmail)
	}
}

// fields returns the indexes of the inputs shown in the current mode
func (f *Form) fields() []int {
	switch f.mode {
	case ModeSignUp:
		return []int{fieldName, fieldEmail, fieldPassword}
	case ModeSignIn:
		return []int{fieldEmail, fieldPassword}
	default:
		return nil
	}
}

func (f *Form) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *Form) moveFocus(delta int) {
	fields := f.fields()
	if len(fields) == 0 {
		return
	}
	pos := 0
	for i, idx := range fields {
		if idx == f.focus {
			pos = i
		}
	}
	n := len(fields)
	f.setFocus(fields[((pos+delta)%n+n)%n])
}

// Init starts the cursor blink
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.loading {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd

	case signUpDoneMsg:
		return f, f.handleSignUp(msg)

	case signInDoneMsg:
		f.loading = false
		if msg.err != nil {
			f.err = errorText(msg.err)
			return f, nil
		}
		session := msg.session
		return f, func() tea.Msg { return SignedInMsg{Session: session} }

	case resendDoneMsg:
		f.loading = false
		if msg.err != nil {
			f.err = errorText(msg.err)
			return f, nil
		}
		f.message = ResendMessage
		return f, nil

	case tea.KeyMsg:
		if f.loading {
			return f, nil
		}
		if f.mode == ModeVerify {
			return f, f.handleVerifyKey(msg)
		}
		if handled, cmd := f.handleKey(msg); handled {
			return f, cmd
		}
	}

	if f.mode == ModeVerify {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *Form) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, func() tea.Msg { return BackMsg{} }
	case "tab", "down":
		f.moveFocus(1)
		return true, nil
	case "shift+tab", "up":
		f.moveFocus(-1)
		return true, nil
	case "ctrl+t":
		if f.mode == ModeSignUp {
			f.setMode(ModeSignIn)
		} else {
			f.setMode(ModeSignUp)
		}
		f.message = ""
		return true, nil
	case "enter":
		fields := f.fields()
		if f.focus != fields[len(fields)-1] {
			f.moveFocus(1)
			return true, nil
		}
		return true, f.submit()
	}
	return false, nil
}

func (f *Form) handleVerifyKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r", "enter":
		return f.resend()
	case "s":
		f.message = ""
		f.setMode(ModeSignIn)
	case "esc", "b":
		return func() tea.Msg { return BackMsg{} }
	}
	return nil
}

// submit validates the fields and starts the provider call
func (f *Form) submit() tea.Cmd {
	email := f.Email()
	password := f.inputs[fieldPassword].Value()
	if email == "" || password == "" {
		f.err = "Email and password are required"
		return nil
	}

	f.err = ""
	f.message = ""
	if f.mode == ModeSignUp {
		name := strings.TrimSpace(f.inputs[fieldName].Value())
		return f.start(f.signUpCmd(email, password, name))
	}
	return f.start(f.signInCmd(email, password))
}

func (f *Form) resend() tea.Cmd {
	f.err = ""
	f.message = ""
	email := f.Email()
	provider, timeout := f.provider, f.timeout
	return f.start(func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return resendDoneMsg{err: provider.ResendVerification(ctx, email)}
	})
}

// start marks the form busy and runs cmd, ticking the spinner when animated
func (f *Form) start(cmd tea.Cmd) tea.Cmd {
	f.loading = true
	if f.styles.Animate {
		return tea.Batch(cmd, f.spinner.Tick)
	}
	return cmd
}

func (f *Form) signUpCmd(email, password, name string) tea.Cmd {
	provider, timeout := f.provider, f.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := provider.SignUp(ctx, email, password, auth.Profile{FullName: name})
		return signUpDoneMsg{result: res, err: err}
	}
}

func (f *Form) signInCmd(email, password string) tea.Cmd {
	provider, timeout := f.provider, f.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		session, err := provider.SignInWithPassword(ctx, email, password)
		return signInDoneMsg{session: session, err: err}
	}
}

// handleSignUp moves to verification, or signs straight in when the provider
// confirmed the account
func (f *Form) handleSignUp(msg signUpDoneMsg) tea.Cmd {
	if msg.err != nil {
		f.loading = false
		f.err = errorText(msg.err)
		return nil
	}
	res := msg.result
	if res == nil || !res.EmailConfirmed {
		f.loading = false
		f.message = VerifyMessage
		f.mode = ModeVerify
		return nil
	}
	if res.Session != nil {
		f.loading = false
		session := res.Session
		return func() tea.Msg { return SignedInMsg{Session: session} }
	}
	return f.signInCmd(f.Email(), f.inputs[fieldPassword].Value())
}

// errorText returns the message shown for a failed provider call
func errorText(err error) string {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return authErr.Display()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The request timed out. Please try again."
	}
	return err.Error()
}

// View renders the current screen
func (f *Form) View() string {
	if f.mode == ModeVerify {
		return f.viewVerify()
	}

	s := f.styles
	var b strings.Builder

	title, subtitle, action, busy := "Create Your Account", "Start your journey with Bennu", "Create Account", "Creating Account..."
	switchHint := "Already have an account? ctrl+t to sign in"
	if f.mode == ModeSignIn {
		title, subtitle, action, busy = "Welcome Back", "Sign in to continue to your dashboard", "Sign In", "Signing In..."
		switchHint = "New here? ctrl+t to create an account"
	}

	b.WriteString(s.SectionTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(subtitle))
	b.WriteString("\n\n")

	labels := map[int]string{fieldName: "Full Name", fieldEmail: "Email", fieldPassword: "Password"}
	for _, idx := range f.fields() {
		label := s.MenuHeader
		if idx == f.focus {
			label = s.MenuItemActive
		}
		b.WriteString(label.Render(labels[idx]))
		b.WriteString("\n")
		b.WriteString(f.inputs[idx].View())
		b.WriteString("\n\n")
	}

	b.WriteString(f.renderStatus())

	if f.loading {
		b.WriteString(f.busyLabel(busy))
	} else {
		b.WriteString(s.TabActive.Render(action))
	}
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render(switchHint))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("tab: next field  enter: submit  esc: back"))

	return s.Card.Render(b.String())
}

func (f *Form) viewVerify() string {
	s := f.styles
	var b strings.Builder

	b.WriteString(s.SectionTitle.Render("Check Your Email"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("We've sent a verification link to " + f.Email()))
	b.WriteString("\n\n")
	b.WriteString("Click the verification link in your email to activate your\naccount and start using Bennu.")
	b.WriteString("\n\n")

	b.WriteString(f.renderStatus())

	if f.loading {
		b.WriteString(f.busyLabel("Sending..."))
	} else {
		b.WriteString(s.MenuKey.Render("r") + " " + s.MenuItem.Render("Resend Verification Email"))
	}
	b.WriteString("\n")
	b.WriteString(s.MenuKey.Render("s") + " " + s.MenuItem.Render("Sign in"))
	b.WriteString("\n")
	b.WriteString(s.MenuKey.Render("b") + " " + s.MenuItem.Render("Back to Landing"))

	return s.Card.Render(b.String())
}

func (f *Form) renderStatus() string {
	s := f.styles
	var b strings.Builder
	if f.message != "" {
		b.WriteString(s.Success.Render("✓ " + f.message))
		b.WriteString("\n\n")
	}
	if f.err != "" {
		b.WriteString(s.Error.Render("✗ " + f.err))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (f *Form) busyLabel(text string) string {
	if f.styles.Animate {
		return f.spinner.View() + " " + f.styles.Muted.Render(text)
	}
	return f.styles.Muted.Render(text)
}
