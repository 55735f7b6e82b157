package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/mvetrov/assetmart-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthAPI struct {
	loginFn             func(ctx context.Context, identifier, password string) (domain.TokenPair, error)
	registerFn          func(ctx context.Context, registration domain.Registration) error
	logoutFn            func(ctx context.Context) error
	currentUserFn       func(ctx context.Context) (domain.User, error)
	profileCompletionFn func(ctx context.Context) (domain.ProfileCompletion, error)
}

var _ ports.AuthAPI = (*fakeAuthAPI)(nil)

func (f *fakeAuthAPI) Login(ctx context.Context, identifier, password string) (domain.TokenPair, error) {
	if f.loginFn == nil {
		return domain.TokenPair{}, errors.New("unexpected Login call")
	}
	return f.loginFn(ctx, identifier, password)
}

func (f *fakeAuthAPI) Register(ctx context.Context, registration domain.Registration) error {
	if f.registerFn == nil {
		return errors.New("unexpected Register call")
	}
	return f.registerFn(ctx, registration)
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	if f.logoutFn == nil {
		return errors.New("unexpected Logout call")
	}
	return f.logoutFn(ctx)
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) (domain.User, error) {
	if f.currentUserFn == nil {
		return domain.User{}, errors.New("unexpected CurrentUser call")
	}
	return f.currentUserFn(ctx)
}

func (f *fakeAuthAPI) ProfileCompletion(ctx context.Context) (domain.ProfileCompletion, error) {
	if f.profileCompletionFn == nil {
		return domain.ProfileCompletion{}, errors.New("unexpected ProfileCompletion call")
	}
	return f.profileCompletionFn(ctx)
}

func unauthorizedError() *domain.NormalizedError {
	return &domain.NormalizedError{StatusCode: http.StatusUnauthorized, Message: "invalid credentials"}
}

func TestSignInSuccess(t *testing.T) {
	store, repo := newTestStore(t)
	user := domain.User{ID: 3, Email: "seller@example.com", Username: "seller1"}

	api := &fakeAuthAPI{
		loginFn: func(_ context.Context, identifier, password string) (domain.TokenPair, error) {
			assert.Equal(t, "seller@example.com", identifier)
			assert.Equal(t, "hunter2", password)
			return domain.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
		},
		currentUserFn: func(_ context.Context) (domain.User, error) {
			// The token must already be committed when this fetch runs.
			assert.Equal(t, "access-token", store.Token())
			return user, nil
		},
		profileCompletionFn: func(_ context.Context) (domain.ProfileCompletion, error) {
			return domain.ProfileCompletion{Percent: 80, MissingFields: []string{"country"}}, nil
		},
	}

	service := NewAuthService(api, store, nil)

	result, err := service.SignIn(context.Background(), "seller@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, user, result.User)
	require.NotNil(t, result.ProfileCompletion)
	assert.Equal(t, float64(80), result.ProfileCompletion.Percent)

	session := store.Session()
	assert.Equal(t, domain.SessionAuthenticated, session.State())

	stored, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-token", stored.AuthToken)
	assert.Equal(t, "refresh-token", stored.RefreshToken)
}

func TestSignInInvalidCredentials(t *testing.T) {
	store, repo := newTestStore(t)
	api := &fakeAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (domain.TokenPair, error) {
			return domain.TokenPair{}, unauthorizedError()
		},
	}

	service := NewAuthService(api, store, nil)

	_, err := service.SignIn(context.Background(), "seller@example.com", "wrong")
	require.Error(t, err)

	session := store.Session()
	assert.Equal(t, domain.SessionAnonymous, session.State())
	assert.Equal(t, "invalid credentials", session.Error)

	stored, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored.AuthToken)
}

func TestSignInRejectedTokenIsDropped(t *testing.T) {
	store, repo := newTestStore(t)
	api := &fakeAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (domain.TokenPair, error) {
			return domain.TokenPair{AccessToken: "access-token"}, nil
		},
		currentUserFn: func(_ context.Context) (domain.User, error) {
			return domain.User{}, unauthorizedError()
		},
	}

	service := NewAuthService(api, store, nil)

	_, err := service.SignIn(context.Background(), "seller@example.com", "hunter2")
	require.Error(t, err)

	assert.Equal(t, domain.SessionAnonymous, store.Session().State())

	stored, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored.AuthToken)
}

func TestSignInProfileCompletionFailureIsSwallowed(t *testing.T) {
	store, _ := newTestStore(t)
	api := &fakeAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (domain.TokenPair, error) {
			return domain.TokenPair{AccessToken: "access-token"}, nil
		},
		currentUserFn: func(_ context.Context) (domain.User, error) {
			return domain.User{ID: 3, Username: "seller1"}, nil
		},
		profileCompletionFn: func(_ context.Context) (domain.ProfileCompletion, error) {
			return domain.ProfileCompletion{}, errors.New("boom")
		},
	}

	service := NewAuthService(api, store, nil)

	result, err := service.SignIn(context.Background(), "seller@example.com", "hunter2")
	require.NoError(t, err)
	assert.Nil(t, result.ProfileCompletion)
	assert.Equal(t, domain.SessionAuthenticated, store.Session().State())
}

func TestSignUpDefaultsUsernameToEmailLocalPart(t *testing.T) {
	store, _ := newTestStore(t)
	var got domain.Registration
	api := &fakeAuthAPI{
		registerFn: func(_ context.Context, registration domain.Registration) error {
			got = registration
			return nil
		},
	}

	service := NewAuthService(api, store, nil)

	require.NoError(t, service.SignUp(context.Background(), "jane.doe@example.com", "hunter2", ""))
	assert.Equal(t, "jane.doe", got.Username)

	require.NoError(t, service.SignUp(context.Background(), "jane.doe@example.com", "hunter2", "janed"))
	assert.Equal(t, "janed", got.Username)
}

func TestSignOutClearsSessionEvenWhenRemoteFails(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCredentials(ctx, domain.User{ID: 3}, domain.TokenPair{AccessToken: "access-token"}))

	api := &fakeAuthAPI{
		logoutFn: func(_ context.Context) error { return errors.New("server unreachable") },
	}

	service := NewAuthService(api, store, nil)

	require.NoError(t, service.SignOut(ctx))
	assert.Equal(t, domain.SessionAnonymous, store.Session().State())

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored.AuthToken)
}

func TestSignOutAnonymousSkipsRemoteCall(t *testing.T) {
	store, _ := newTestStore(t)

	// logoutFn left nil: a remote call would fail the test.
	service := NewAuthService(&fakeAuthAPI{}, store, nil)

	require.NoError(t, service.SignOut(context.Background()))
}

func TestHydrateResolvesStoredToken(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, domain.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}))

	api := &fakeAuthAPI{
		currentUserFn: func(_ context.Context) (domain.User, error) {
			return domain.User{ID: 3, Username: "seller1"}, nil
		},
	}

	service := NewAuthService(api, store, nil)

	require.NoError(t, service.Hydrate(ctx))

	session := store.Session()
	assert.Equal(t, domain.SessionAuthenticated, session.State())
	assert.Equal(t, "access-token", session.Token)
	assert.Equal(t, "refresh-token", session.RefreshToken)
}

func TestHydrateStaleTokenLogsOutSilently(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, domain.TokenPair{AccessToken: "stale-token"}))

	api := &fakeAuthAPI{
		currentUserFn: func(_ context.Context) (domain.User, error) {
			return domain.User{}, unauthorizedError()
		},
	}

	service := NewAuthService(api, store, nil)

	require.NoError(t, service.Hydrate(ctx))
	assert.Equal(t, domain.SessionAnonymous, store.Session().State())

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored.AuthToken)
}

func TestHydrateTransientFailureKeepsSession(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetToken(ctx, domain.TokenPair{AccessToken: "access-token"}))

	api := &fakeAuthAPI{
		currentUserFn: func(_ context.Context) (domain.User, error) {
			return domain.User{}, &domain.NormalizedError{StatusCode: http.StatusInternalServerError, Message: "server error"}
		},
	}

	service := NewAuthService(api, store, nil)

	require.Error(t, service.Hydrate(ctx))

	session := store.Session()
	assert.Equal(t, domain.SessionHydrating, session.State())
	assert.Equal(t, "access-token", session.Token)
}

func TestHydrateIsNoOpWhenNotHydrating(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// currentUserFn left nil: any fetch would fail the test.
	service := NewAuthService(&fakeAuthAPI{}, store, nil)

	require.NoError(t, service.Hydrate(ctx))

	require.NoError(t, store.SetCredentials(ctx, domain.User{ID: 3}, domain.TokenPair{AccessToken: "access-token"}))
	require.NoError(t, service.Hydrate(ctx))
}
