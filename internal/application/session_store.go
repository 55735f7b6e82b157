package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/mvetrov/assetmart-cli/internal/ports"
	"go.uber.org/zap"
)

// SessionStore is the one mutable shared state in the client. Every change
// goes through the closed operation set below; nothing else writes session
// fields, including the file watcher, which funnels into Logout.
type SessionStore struct {
	mu      sync.Mutex
	session domain.Session
	repo    ports.SessionRepository
	logger  *zap.Logger
}

func NewSessionStore(repo ports.SessionRepository, logger *zap.Logger) *SessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionStore{repo: repo, logger: logger}
}

// Restore loads persisted tokens at startup. A stored token without user data
// leaves the store in the hydrating state until the current-user fetch
// resolves it one way or the other.
func (s *SessionStore) Restore(ctx context.Context) error {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stored session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{
		Token:        stored.AuthToken,
		RefreshToken: stored.RefreshToken,
	}
	s.logger.Debug("session restored", zap.String("state", string(s.session.State())))

	return nil
}

// Session returns a snapshot; User is an immutable value shared by reference.
func (s *SessionStore) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}

func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.Token
}

// SetToken commits tokens to durable storage before exposing them in memory,
// so any call that depends on the token can rely on it having been persisted.
func (s *SessionStore) SetToken(ctx context.Context, tokens domain.TokenPair) error {
	if err := s.repo.SaveTokens(ctx, tokens.AccessToken, tokens.RefreshToken); err != nil {
		return fmt.Errorf("persist tokens: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{
		Token:        tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	s.logger.Debug("session token set", zap.String("state", string(s.session.State())))

	return nil
}

func (s *SessionStore) SetCredentials(ctx context.Context, user domain.User, tokens domain.TokenPair) error {
	if err := s.repo.SaveTokens(ctx, tokens.AccessToken, tokens.RefreshToken); err != nil {
		return fmt.Errorf("persist tokens: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{
		Token:        tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         &user,
	}
	s.logger.Debug("session authenticated",
		zap.String("username", user.Username),
		zap.Bool("admin", user.IsAdmin()))

	return nil
}

// RecordError keeps the last failure message on the session for display; it
// does not change the session state.
func (s *SessionStore) RecordError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Error = message
}

// Logout clears memory and durable storage. It is idempotent: clearing an
// already-anonymous session is a no-op that still succeeds.
func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.repo.ClearTokens(ctx); err != nil {
		return fmt.Errorf("clear persisted tokens: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}
	s.logger.Debug("session cleared")

	return nil
}
