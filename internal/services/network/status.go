// Package network tracks whether the auth provider is reachable.
package network

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is how often the app re-checks reachability
const DefaultInterval = 30 * time.Second

// healthPath is the GoTrue liveness endpoint
const healthPath = "/auth/v1/health"

// StatusChecker polls the auth provider's health endpoint
type StatusChecker struct {
	mu        sync.RWMutex
	isOnline  bool
	lastCheck time.Time

	url     string
	anonKey string
	client  *http.Client
	logger  *slog.Logger
	now     func() time.Time
}

// StatusMsg reports the result of a check. Changed is true when the
// reachability differs from the previous check.
type StatusMsg struct {
	Online  bool
	Changed bool
}

// NewStatusChecker creates a checker for the provider at baseURL
func NewStatusChecker(baseURL, anonKey string, logger *slog.Logger) *StatusChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusChecker{
		isOnline: true, // Optimistically assume online
		url:      strings.TrimRight(baseURL, "/") + healthPath,
		anonKey:  anonKey,
		client: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
		logger: logger,
		now:    time.Now,
	}
}

// Check pings the provider. Any 2xx or 3xx response means online.
func (s *StatusChecker) Check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		s.setOnline(false)
		return false
	}
	if s.anonKey != "" {
		req.Header.Set("apikey", s.anonKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("provider unreachable", "error", err)
		s.setOnline(false)
		return false
	}
	defer resp.Body.Close()

	online := resp.StatusCode >= 200 && resp.StatusCode < 400
	s.setOnline(online)
	return online
}

// IsOnline returns the cached online status
func (s *StatusChecker) IsOnline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOnline
}

// LastCheck returns the time of the last connectivity check
func (s *StatusChecker) LastCheck() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastCheck
}

// setOnline updates the cached status and reports whether it changed
func (s *StatusChecker) setOnline(online bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.isOnline != online
	if changed {
		s.logger.Info("provider reachability changed", "online", online)
	}
	s.isOnline = online
	s.lastCheck = s.now()
	return changed
}

// CheckCmd returns a tea.Cmd that performs a one-time check
func (s *StatusChecker) CheckCmd() tea.Cmd {
	return func() tea.Msg {
		before := s.IsOnline()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		online := s.Check(ctx)
		return StatusMsg{Online: online, Changed: online != before}
	}
}

// ScheduleCmd runs CheckCmd after interval
func (s *StatusChecker) ScheduleCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return s.CheckCmd()()
	})
}
