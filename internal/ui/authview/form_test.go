package authview

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/bennu/internal/auth"
	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/services/accessibility"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

type fakeProvider struct {
	signUp    *auth.SignUpResult
	signUpErr error
	session   *domain.Session
	signInErr error
	resendErr error

	signUpProfile auth.Profile
	signInCalls   int
	resendEmail   string
}

func (p *fakeProvider) SignUp(_ context.Context, _, _ string, profile auth.Profile) (*auth.SignUpResult, error) {
	p.signUpProfile = profile
	return p.signUp, p.signUpErr
}

func (p *fakeProvider) SignInWithPassword(context.Context, string, string) (*domain.Session, error) {
	p.signInCalls++
	return p.session, p.signInErr
}

func (p *fakeProvider) ResendVerification(_ context.Context, email string) error {
	p.resendEmail = email
	return p.resendErr
}

func (p *fakeProvider) CurrentSession(context.Context) (*domain.Session, error) {
	return nil, nil
}

func (p *fakeProvider) SignOut(context.Context) error {
	return nil
}

// staticStyles disables animation so provider commands come back unbatched
func staticStyles() *styles.Styles {
	cfg := accessibility.DefaultConfiguration()
	cfg.ReducedMotion = true
	return styles.New(cfg)
}

func newTestForm(p *fakeProvider) *Form {
	return NewForm(p, time.Second, staticStyles())
}

func typeInto(f *Form, text string) {
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func key(f *Form, k tea.KeyType) tea.Cmd {
	_, cmd := f.Update(tea.KeyMsg{Type: k})
	return cmd
}

// fillSignUp fills name, email and password and leaves focus on password
func fillSignUp(f *Form) {
	typeInto(f, "Ada Lovelace")
	key(f, tea.KeyTab)
	typeInto(f, "ada@example.com")
	key(f, tea.KeyTab)
	typeInto(f, "secret")
}

// run executes cmd and feeds the result back until the form stops emitting
// internal messages, returning the first external message
func run(t *testing.T, f *Form, cmd tea.Cmd) tea.Msg {
	t.Helper()
	for i := 0; cmd != nil && i < 5; i++ {
		msg := cmd()
		switch msg.(type) {
		case signUpDoneMsg, signInDoneMsg, resendDoneMsg:
			_, cmd = f.Update(msg)
		default:
			return msg
		}
	}
	return nil
}

func TestNewFormStartsInSignUp(t *testing.T) {
	f := newTestForm(&fakeProvider{})
	assert.Equal(t, ModeSignUp, f.Mode())
	assert.Equal(t, fieldName, f.focus)
	assert.Contains(t, f.View(), "Create Your Account")
	assert.Contains(t, f.View(), "Full Name")
}

func TestFormSwitchesToSignIn(t *testing.T) {
	f := newTestForm(&fakeProvider{})
	key(f, tea.KeyCtrlT)

	assert.Equal(t, ModeSignIn, f.Mode())
	assert.Equal(t, fieldEmail, f.focus)
	view := f.View()
	assert.Contains(t, view, "Welcome Back")
	assert.NotContains(t, view, "Full Name")
}

func TestFormRequiresEmailAndPassword(t *testing.T) {
	p := &fakeProvider{}
	f := newTestForm(p)
	key(f, tea.KeyTab)
	key(f, tea.KeyTab)

	cmd := key(f, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", f.Err())
	assert.False(t, f.Loading())
}

func TestSignUpNeedsVerification(t *testing.T) {
	p := &fakeProvider{signUp: &auth.SignUpResult{User: &domain.User{ID: "u1"}}}
	f := newTestForm(p)
	fillSignUp(f)

	cmd := key(f, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, f.Loading())

	assert.Nil(t, run(t, f, cmd))
	assert.Equal(t, ModeVerify, f.Mode())
	assert.Equal(t, VerifyMessage, f.Message())
	assert.Equal(t, "Ada Lovelace", p.signUpProfile.FullName)
	assert.Contains(t, f.View(), "ada@example.com")
}

func TestSignUpAutoConfirmed(t *testing.T) {
	session := &domain.Session{AccessToken: "t", User: &domain.User{ID: "u1"}}
	p := &fakeProvider{signUp: &auth.SignUpResult{EmailConfirmed: true, Session: session}}
	f := newTestForm(p)
	fillSignUp(f)

	msg := run(t, f, key(f, tea.KeyEnter))
	signed, ok := msg.(SignedInMsg)
	require.True(t, ok)
	assert.Same(t, session, signed.Session)
	assert.Equal(t, 0, p.signInCalls)
}

func TestSignUpConfirmedWithoutSessionSignsIn(t *testing.T) {
	session := &domain.Session{AccessToken: "t", User: &domain.User{ID: "u1"}}
	p := &fakeProvider{signUp: &auth.SignUpResult{EmailConfirmed: true}, session: session}
	f := newTestForm(p)
	fillSignUp(f)

	msg := run(t, f, key(f, tea.KeyEnter))
	require.IsType(t, SignedInMsg{}, msg)
	assert.Equal(t, 1, p.signInCalls)
}

func TestSignInFailureShowsMessage(t *testing.T) {
	p := &fakeProvider{signInErr: &domain.AuthError{Op: "signin", Status: 400, Message: "Invalid login credentials"}}
	f := newTestForm(p)
	key(f, tea.KeyCtrlT)
	typeInto(f, "ada@example.com")
	key(f, tea.KeyTab)
	typeInto(f, "wrong")

	assert.Nil(t, run(t, f, key(f, tea.KeyEnter)))
	assert.Equal(t, "Invalid login credentials", f.Err())
	assert.Equal(t, ModeSignIn, f.Mode())
	assert.False(t, f.Loading())
	assert.Contains(t, f.View(), "Invalid login credentials")
}

func TestSignInTimeoutMessage(t *testing.T) {
	p := &fakeProvider{signInErr: context.DeadlineExceeded}
	f := newTestForm(p)
	key(f, tea.KeyCtrlT)
	typeInto(f, "ada@example.com")
	key(f, tea.KeyTab)
	typeInto(f, "pw")

	run(t, f, key(f, tea.KeyEnter))
	assert.Contains(t, f.Err(), "timed out")
}

func TestResendVerification(t *testing.T) {
	p := &fakeProvider{signUp: &auth.SignUpResult{}}
	f := newTestForm(p)
	fillSignUp(f)
	run(t, f, key(f, tea.KeyEnter))
	require.Equal(t, ModeVerify, f.Mode())

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	run(t, f, cmd)

	assert.Equal(t, "ada@example.com", p.resendEmail)
	assert.Equal(t, ResendMessage, f.Message())
}

func TestVerifyBackAndSignIn(t *testing.T) {
	p := &fakeProvider{signUp: &auth.SignUpResult{}}
	f := newTestForm(p)
	fillSignUp(f)
	run(t, f, key(f, tea.KeyEnter))

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Equal(t, ModeSignIn, f.Mode())
	assert.Equal(t, "ada@example.com", f.Email(), "email carries over")
}

func TestEscapeGoesBack(t *testing.T) {
	f := newTestForm(&fakeProvider{})
	cmd := key(f, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
}

func TestReset(t *testing.T) {
	p := &fakeProvider{signUp: &auth.SignUpResult{}}
	f := newTestForm(p)
	fillSignUp(f)
	run(t, f, key(f, tea.KeyEnter))

	f.Reset()
	assert.Equal(t, ModeSignUp, f.Mode())
	assert.Empty(t, f.Email())
	assert.Empty(t, f.Message())
}

func TestAnimatedSubmitTicksSpinner(t *testing.T) {
	p := &fakeProvider{signUp: &auth.SignUpResult{}}
	f := NewForm(p, time.Second, styles.Default())
	fillSignUp(f)

	cmd := key(f, tea.KeyEnter)
	require.NotNil(t, cmd)
	_, isBatch := cmd().(tea.BatchMsg)
	assert.True(t, isBatch)
	assert.Contains(t, f.View(), "Creating Account...")
}

func TestLanding(t *testing.T) {
	out := Landing(styles.Default(), 80)
	for _, want := range []string{"Bennu", "AI-Powered Task Manager", "Get Started", "Focus Mode"} {
		assert.Contains(t, out, want)
	}
}
