package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/riordanpawley/bennu/internal/domain"
)

// DefaultTimeout bounds each provider request
const DefaultTimeout = 10 * time.Second

// Config holds the provider endpoint settings
type Config struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

// GoTrueClient implements Provider against the GoTrue REST API
type GoTrueClient struct {
	baseURL  string
	anonKey  string
	http     *http.Client
	sessions *SessionFile
	logger   *slog.Logger
	now      func() time.Time
}

var _ Provider = (*GoTrueClient)(nil)

// NewGoTrueClient creates a client. sessions may be nil, in which case
// sessions live only in memory for the life of the process.
func NewGoTrueClient(cfg Config, sessions *SessionFile, logger *slog.Logger) *GoTrueClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GoTrueClient{
		baseURL:  strings.TrimRight(cfg.URL, "/") + "/auth/v1",
		anonKey:  cfg.AnonKey,
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// wire types

type userResponse struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	EmailConfirmedAt string         `json:"email_confirmed_at"`
	ConfirmedAt      string         `json:"confirmed_at"`
	UserMetadata     map[string]any `json:"user_metadata"`
}

func (u *userResponse) toDomain() *domain.User {
	if u == nil || u.ID == "" {
		return nil
	}
	user := &domain.User{
		ID:             u.ID,
		Email:          u.Email,
		EmailConfirmed: u.EmailConfirmedAt != "" || u.ConfirmedAt != "",
	}
	if name, ok := u.UserMetadata["full_name"].(string); ok {
		user.FullName = name
	}
	return user
}

type tokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	ExpiresAt    int64         `json:"expires_at"`
	User         *userResponse `json:"user"`
}

// signUpResponse is either a bare user (confirmation pending) or a token
// response (auto-confirmed projects)
type signUpResponse struct {
	userResponse
	tokenResponse
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e errorResponse) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// SignUp registers a new account
func (c *GoTrueClient) SignUp(ctx context.Context, email, password string, profile Profile) (*SignUpResult, error) {
	c.logger.Debug("signing up", "email", email)

	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": profile.FullName},
	}

	var resp signUpResponse
	if err := c.do(ctx, "signup", http.MethodPost, "/signup", "", body, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		session, err := c.sessionFromToken(&resp.tokenResponse)
		if err != nil {
			return nil, &domain.AuthError{Op: "signup", Err: err}
		}
		c.persist(session)
		return &SignUpResult{User: session.User, EmailConfirmed: true, Session: session}, nil
	}

	user := resp.userResponse.toDomain()
	if user == nil {
		return nil, &domain.AuthError{Op: "signup", Message: "provider returned no user"}
	}
	c.logger.Info("account created", "user_id", user.ID, "confirmed", user.EmailConfirmed)
	return &SignUpResult{User: user, EmailConfirmed: user.EmailConfirmed}, nil
}

// SignInWithPassword exchanges credentials for a session and stores it
func (c *GoTrueClient) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	c.logger.Debug("signing in", "email", email)

	body := map[string]string{"email": email, "password": password}

	var resp tokenResponse
	if err := c.do(ctx, "signin", http.MethodPost, "/token?grant_type=password", "", body, &resp); err != nil {
		return nil, err
	}

	session, err := c.sessionFromToken(&resp)
	if err != nil {
		return nil, &domain.AuthError{Op: "signin", Err: err}
	}
	c.persist(session)

	c.logger.Info("signed in", "user_id", session.User.ID)
	return session, nil
}

// ResendVerification asks the provider to send the sign-up email again
func (c *GoTrueClient) ResendVerification(ctx context.Context, email string) error {
	c.logger.Debug("resending verification", "email", email)

	body := map[string]string{"type": "signup", "email": email}
	return c.do(ctx, "resend", http.MethodPost, "/resend", "", body, nil)
}

// CurrentSession returns the stored session after confirming it with the
// provider. Expired, revoked, missing or corrupt sessions yield nil, nil.
func (c *GoTrueClient) CurrentSession(ctx context.Context) (*domain.Session, error) {
	if c.sessions == nil {
		return nil, nil
	}

	session, err := c.sessions.Load()
	if err != nil {
		c.logger.Warn("discarding unreadable session", "error", err)
		_ = c.sessions.Clear()
		return nil, nil
	}
	if session == nil {
		return nil, nil
	}
	if !session.Valid(c.now()) {
		c.logger.Info("stored session expired")
		_ = c.sessions.Clear()
		return nil, nil
	}

	var user userResponse
	if err := c.do(ctx, "session", http.MethodGet, "/user", session.AccessToken, nil, &user); err != nil {
		var authErr *domain.AuthError
		if errors.As(err, &authErr) && (authErr.Status == http.StatusUnauthorized || authErr.Status == http.StatusForbidden) {
			c.logger.Info("stored session rejected by provider", "status", authErr.Status)
			_ = c.sessions.Clear()
			return nil, nil
		}
		return nil, err
	}

	if u := user.toDomain(); u != nil {
		session.User = u
	}
	return session, nil
}

// SignOut revokes the session with the provider and removes the local copy.
// The local copy is removed even when the provider call fails.
func (c *GoTrueClient) SignOut(ctx context.Context) error {
	if c.sessions == nil {
		return nil
	}

	session, _ := c.sessions.Load()
	var remoteErr error
	if session != nil {
		remoteErr = c.do(ctx, "signout", http.MethodPost, "/logout", session.AccessToken, nil, nil)
		if remoteErr != nil {
			c.logger.Warn("provider logout failed", "error", remoteErr)
		}
	}

	if err := c.sessions.Clear(); err != nil {
		return &domain.AuthError{Op: "signout", Err: err}
	}
	c.logger.Info("signed out")
	return remoteErr
}

func (c *GoTrueClient) sessionFromToken(resp *tokenResponse) (*domain.Session, error) {
	claims, err := ParseClaims(resp.AccessToken)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    claims.Expiry(),
		User:         resp.User.toDomain(),
	}
	switch {
	case resp.ExpiresAt > 0:
		session.ExpiresAt = time.Unix(resp.ExpiresAt, 0)
	case session.ExpiresAt.IsZero() && resp.ExpiresIn > 0:
		session.ExpiresAt = c.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	if session.User == nil {
		session.User = claims.User()
	}
	if session.User.FullName == "" {
		session.User.FullName = claims.UserMetadata.FullName
	}
	return session, nil
}

func (c *GoTrueClient) persist(session *domain.Session) {
	if c.sessions == nil {
		return
	}
	if err := c.sessions.Save(session); err != nil {
		c.logger.Error("failed to save session", "error", err, "path", c.sessions.Path())
	}
}

// do sends a JSON request and decodes a JSON response into out (if non-nil)
func (c *GoTrueClient) do(ctx context.Context, op, method, path, bearer string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &domain.AuthError{Op: op, Message: "failed to encode request", Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &domain.AuthError{Op: op, Err: err}
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.AuthError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &domain.AuthError{Op: op, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		_ = json.Unmarshal(raw, &e)
		c.logger.Debug("auth request failed", "op", op, "status", resp.StatusCode)
		return &domain.AuthError{Op: op, Status: resp.StatusCode, Message: e.text()}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.AuthError{Op: op, Status: resp.StatusCode, Message: "failed to parse response", Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
