package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/mvetrov/assetmart-cli/internal/ports"
	"go.uber.org/zap"
)

// AuthService composes the session store and the remote auth endpoints into
// the sign-in, sign-up, sign-out and startup-hydration flows.
type AuthService struct {
	api      ports.AuthAPI
	sessions *SessionStore
	logger   *zap.Logger
}

func NewAuthService(api ports.AuthAPI, sessions *SessionStore, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AuthService{api: api, sessions: sessions, logger: logger}
}

type SignInResult struct {
	User domain.User
	// ProfileCompletion is nil when the best-effort fetch failed.
	ProfileCompletion *domain.ProfileCompletion
}

// SignIn logs in, persists the tokens, then resolves the current user. The
// token is committed before the user fetch because that fetch authorizes with
// it. The profile-completion fetch afterwards is best-effort: its failure is
// logged, never surfaced.
func (s *AuthService) SignIn(ctx context.Context, identifier, password string) (SignInResult, error) {
	tokens, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		s.sessions.RecordError(err.Error())
		return SignInResult{}, err
	}

	if err := s.sessions.SetToken(ctx, tokens); err != nil {
		return SignInResult{}, err
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.sessions.RecordError(err.Error())
		if isAuthFailure(err) {
			// The server rejected its own freshly issued token; drop it
			// rather than keep a session that cannot hydrate.
			if logoutErr := s.sessions.Logout(ctx); logoutErr != nil {
				return SignInResult{}, errors.Join(err, logoutErr)
			}
		}
		return SignInResult{}, err
	}

	if err := s.sessions.SetCredentials(ctx, user, tokens); err != nil {
		return SignInResult{}, err
	}

	result := SignInResult{User: user}
	completion, err := s.api.ProfileCompletion(ctx)
	if err != nil {
		s.logger.Warn("fetch profile completion", zap.Error(err))
	} else {
		result.ProfileCompletion = &completion
	}

	return result, nil
}

// SignUp registers the account but does not authenticate it; the server
// requires an explicit login afterwards.
func (s *AuthService) SignUp(ctx context.Context, email, password, username string) error {
	if strings.TrimSpace(username) == "" {
		username = emailLocalPart(email)
	}

	if err := s.api.Register(ctx, domain.Registration{
		Email:    email,
		Password: password,
		Username: username,
	}); err != nil {
		return fmt.Errorf("register account: %w", err)
	}

	return nil
}

// SignOut notifies the server best-effort and always clears the local
// session.
func (s *AuthService) SignOut(ctx context.Context) error {
	if s.sessions.Session().IsAuthenticated() {
		if err := s.api.Logout(ctx); err != nil {
			s.logger.Warn("remote logout failed", zap.Error(err))
		}
	}

	return s.sessions.Logout(ctx)
}

// Hydrate resolves a persisted token into a user exactly once per startup. An
// authentication failure means the stored token is stale, so the session is
// torn down instead of retried; that teardown is not an error to the caller.
func (s *AuthService) Hydrate(ctx context.Context) error {
	session := s.sessions.Session()
	if !session.IsAuthenticated() || session.User != nil {
		return nil
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		if isAuthFailure(err) {
			s.logger.Debug("stale session token, logging out", zap.Error(err))
			return s.sessions.Logout(ctx)
		}
		return fmt.Errorf("hydrate session: %w", err)
	}

	return s.sessions.SetCredentials(ctx, user, domain.TokenPair{
		AccessToken:  session.Token,
		RefreshToken: session.RefreshToken,
	})
}

func isAuthFailure(err error) bool {
	var normalized *domain.NormalizedError
	return errors.As(err, &normalized) && normalized.Unauthorized()
}

func emailLocalPart(email string) string {
	if local, _, found := strings.Cut(email, "@"); found {
		return local
	}

	return email
}
